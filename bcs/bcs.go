// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements the selection of boundary condition node sets:
// the fixed wall support and the circular force regions at the TV mounting
// points, replicated per load case
package bcs

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
	"github.com/prashanthgadwala/3d-topo-tv-mount/rgn"
)

// FixedSpec identifies the rigidly fixed support surface by an open
// axis-aligned box over node coordinates
type FixedSpec struct {
	Name string  // set name; e.g. "back_support"
	Box  rgn.Box // region containing the fixed nodes
}

// ForceSpec identifies one physical mounting point: a circle of radius R
// around (Cx,Cy) within the z-layer band (Zmin,Zmax). The z band is an
// open interval like the region boxes, but the radial test is inclusive
// ((x-cx)² + (y-cy)² ≤ r²); this asymmetry mirrors the mounting hole
// definition and is kept deliberately
type ForceSpec struct {
	Cx, Cy float64 // mounting point center in the (x,y) plane
	R      float64 // radius of the circular force region
	Zmin   float64 // lower bound of the z-layer band (exclusive)
	Zmax   float64 // upper bound of the z-layer band (exclusive)
}

// In reports whether a node at (x,y,z) belongs to the mounting point
func (o ForceSpec) In(x, y, z float64) bool {
	if z <= o.Zmin || z >= o.Zmax {
		return false
	}
	dx, dy := x-o.Cx, y-o.Cy
	return dx*dx+dy*dy <= o.R*o.R
}

// Options holds selection options
type Options struct {
	FailFast bool // return DegenerateBoundaryConditionError when a configured set matches zero nodes
	Verbose  bool // print set sizes
}

// DegenerateBoundaryConditionError indicates that a configured force or
// support region matched zero nodes. The caller recovers by reconfiguring
// (larger radius, finer mesh); retrying with the same inputs is pointless
type DegenerateBoundaryConditionError struct {
	Name string // name of the empty set
}

func (e *DegenerateBoundaryConditionError) Error() string {
	return io.Sf("boundary condition set %q matched zero nodes; enlarge the region or refine the mesh", e.Name)
}

// Select assigns every node to zero or more named sets in a single pass:
// the fixed support set plus one force set per load case and mounting
// point, named <case>_force_<i> with i counting mounting points from 1.
// The geometric test is load-case independent, so the sets of two cases
// sharing a mounting point have identical membership under distinct names.
// The pass is a parallel map over contiguous node chunks merged in chunk
// order, keeping member order lattice-ascending and deterministic.
// Result sets are registered on the mesh
func Select(m *msh.Mesh, fixed FixedSpec, specs []ForceSpec, caseNames []string, opts Options) error {

	// per-worker accumulation: the fixed members and, per mounting point,
	// the member nodes (case independent)
	nv := len(m.Verts)
	nw := runtime.NumCPU()
	if nw > nv {
		nw = nv
	}
	type local struct {
		fixed  []int
		mounts [][]int
	}
	sub := make([]local, nw)
	csz := (nv + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo, hi := w*csz, (w+1)*csz
		if hi > nv {
			hi = nv
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			sub[w].mounts = make([][]int, len(specs))
			for _, v := range m.Verts[lo:hi] {
				x, y, z := v.C[0], v.C[1], v.C[2]
				if fixed.Box.Contains(x, y, z) {
					sub[w].fixed = append(sub[w].fixed, v.Id)
				}
				for j, spec := range specs {
					if spec.In(x, y, z) {
						sub[w].mounts[j] = append(sub[w].mounts[j], v.Id)
					}
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	// merge in chunk order
	support := m.AddSet(fixed.Name)
	forceSets := make([][]*msh.NodeSet, len(caseNames))
	for i, name := range caseNames {
		forceSets[i] = make([]*msh.NodeSet, len(specs))
		for j := range specs {
			forceSets[i][j] = m.AddSet(io.Sf("%s_force_%d", name, j+1))
		}
	}
	for w := 0; w < nw; w++ {
		for _, nid := range sub[w].fixed {
			support.Add(nid)
		}
		for j := range specs {
			for _, nid := range sub[w].mounts[j] {
				for i := range caseNames {
					forceSets[i][j].Add(nid)
				}
			}
		}
	}

	// diagnostics and degenerate sets
	if opts.Verbose {
		io.Pf("boundary conditions:\n")
		for _, s := range m.Sets {
			io.Pf("  %-32s %6d nodes\n", s.Name, len(s.Nodes))
		}
	}
	for _, s := range m.Sets {
		if len(s.Nodes) == 0 {
			if opts.FailFast {
				return &DegenerateBoundaryConditionError{s.Name}
			}
			io.Pforan("warning: boundary condition set %q matched zero nodes\n", s.Name)
		}
	}
	return nil
}
