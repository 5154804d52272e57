// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements the wall mount optimization pipeline: mesh
// generation, region classification, boundary condition selection, mesh
// serialization, problem compilation and the external solver runs
package opt

import (
	"sync"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/prashanthgadwala/3d-topo-tv-mount/bcs"
	"github.com/prashanthgadwala/3d-topo-tv-mount/cfs"
	"github.com/prashanthgadwala/3d-topo-tv-mount/inp"
	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
	"github.com/prashanthgadwala/3d-topo-tv-mount/rgn"
)

// CaseResult holds the solver results of one load case
type CaseResult struct {
	Name            string  // load case name
	ProblemPath     string  // compiled problem document path
	Compliance      float64 // from solver
	MaxStress       float64 // from solver [Pa]
	MaxDisplacement float64 // from solver [m]
	SafetyFactor    float64 // from the load case definition
	Converged       bool    // from solver
}

// Summary holds the results of one pipeline run
type Summary struct {
	Material string         // material name
	MeshPath string         // mesh file path
	Nodes    int            // number of nodes
	Elements int            // number of elements
	Counts   rgn.Counts     // region distribution
	SetSizes map[string]int // BC set name => number of member nodes
	Cases    []*CaseResult  // per load case results
	Elapsed  time.Duration  // total pipeline time
}

// Main holds all data for one optimization pipeline run
type Main struct {

	// input
	Sim      *inp.Simulation  // simulation data
	Mat      *inp.Material    // selected material
	Solver   cfs.SolverClient // external solver client
	FailFast bool             // reject empty boundary condition sets
	Verbose  bool             // show messages

	// derived
	Msh     *msh.Mesh // the classified mesh
	Summary *Summary  // results of the last Run
}

// NewMain returns a new pipeline from validated simulation input
//  Input:
//   sim    -- simulation data from inp.ReadSim
//   solver -- external solver client; e.g. cfs.StubSolver{}
func NewMain(sim *inp.Simulation, solver cfs.SolverClient, verbose bool) (o *Main, err error) {
	o = &Main{Sim: sim, Solver: solver, FailFast: true, Verbose: verbose}
	o.Mat = sim.Mats.Get(sim.Data.Material)
	if o.Mat == nil {
		return nil, chk.Err("material %q is not in the materials database", sim.Data.Material)
	}
	return
}

// Run executes the pipeline: grid generation, thickness validation, the
// concurrent classification and selection passes, mesh serialization,
// per-case problem compilation and solver analysis. Nothing external
// exists before serialization, so failures before that point leave no
// partial state behind
func (o *Main) Run() (err error) {

	start := time.Now()
	sim := o.Sim
	g := &sim.Geo

	// grid
	m, err := msh.New(sim.Res, g.Domain())
	if err != nil {
		return err
	}
	o.Msh = m
	if o.Verbose {
		io.Pf("mesh: %d × %d × %d = %d elements, %d nodes\n",
			sim.Res.Nx, sim.Res.Ny, sim.Res.Nz, len(m.Cells), len(m.Verts))
		xmin, xmax, ymin, ymax, zmin, zmax := m.Limits()
		io.Pf("limits: x=[%g,%g] y=[%g,%g] z=[%g,%g]\n", xmin, xmax, ymin, ymax, zmin, zmax)
	}

	// layer thicknesses must match the z discretization
	if err = rgn.CheckThickness(g.Twall, m.Dz); err != nil {
		return chk.Err("wall plate: %v", err)
	}
	if err = rgn.CheckThickness(g.Tmount, m.Dz); err != nil {
		return chk.Err("TV mounting surface: %v", err)
	}

	// classification and selection are independent once the grid exists
	pset := rgn.WallMountSet(g.Domain(), g.Twall, g.Tmount)
	fixed := bcs.FixedSpec{
		Name: "back_support",
		Box:  rgn.Box{X0: 0.4 * g.Width, X1: 0.6 * g.Width, Y0: 0, Y1: g.Height, Z0: 0, Z1: g.Twall},
	}
	specs := make([]bcs.ForceSpec, len(g.Mounts))
	for j, mp := range g.Mounts {
		specs[j] = bcs.ForceSpec{
			Cx: mp[0], Cy: mp[1], R: g.HoleRadius,
			Zmin: g.Depth - g.Tmount, Zmax: g.Depth,
		}
	}
	caseNames := make([]string, len(sim.LoadCases))
	for i, lc := range sim.LoadCases {
		caseNames[i] = lc.Name
	}
	var counts rgn.Counts
	var selErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		counts = rgn.Classify(m, pset)
	}()
	go func() {
		defer wg.Done()
		selErr = bcs.Select(m, fixed, specs, caseNames, bcs.Options{FailFast: o.FailFast, Verbose: o.Verbose})
	}()
	wg.Wait()
	if selErr != nil {
		return selErr
	}
	if o.Verbose {
		io.Pf("regions: solid=%d void=%d mech=%d\n", counts.Solid, counts.Void, counts.Mech)
	}

	// serialize mesh
	meshPath, err := m.Write(sim.DirOut+"/meshes", g.Twall)
	if err != nil {
		return err
	}
	if o.Verbose {
		io.Pfblue2("file <%s> written\n", meshPath)
	}

	// compile and analyze each load case
	results := make([]*CaseResult, len(sim.LoadCases))
	for i, lc := range sim.LoadCases {
		fnpath, err := cfs.WriteProblem(sim.DirOut+"/simulations", lc, len(g.Mounts), sim.Opt)
		if err != nil {
			return err
		}
		res, err := o.Solver.Analyze(fnpath, meshPath)
		if err != nil {
			return chk.Err("solver failed on load case %q:\n%v", lc.Name, err)
		}
		results[i] = &CaseResult{
			Name:            lc.Name,
			ProblemPath:     fnpath,
			Compliance:      res.Compliance,
			MaxStress:       res.MaxStress,
			MaxDisplacement: res.MaxDisplacement,
			SafetyFactor:    lc.SafetyFactor,
			Converged:       res.Converged,
		}
		if o.Verbose {
			io.Pf("load case %-24s compliance=%.3e converged=%v\n", lc.Name, res.Compliance, res.Converged)
		}
	}

	// summary
	sizes := make(map[string]int)
	for _, s := range m.Sets {
		sizes[s.Name] = len(s.Nodes)
	}
	o.Summary = &Summary{
		Material: o.Mat.Name,
		MeshPath: meshPath,
		Nodes:    len(m.Verts),
		Elements: len(m.Cells),
		Counts:   counts,
		SetSizes: sizes,
		Cases:    results,
		Elapsed:  time.Since(start),
	}
	return
}
