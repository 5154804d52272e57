// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file:
// geometry, mesh resolution, load cases and optimization parameters
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
)

// gravitational acceleration [m/s²]
const Gravity = 9.81

// load case types
var LoadTypes = []string{"static", "dynamic", "fatigue", "seismic", "thermal"}

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Matfile  string `json:"matfile"`  // materials file path; "" => built-in database
	Material string `json:"material"` // material name; e.g. "steel"
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/tvmount
}

// Geometry holds the wall mount geometry. Zero thicknesses are derived as
// twice the x-cell size so they always satisfy the layer discretization
// constraint when ny and nz follow the aspect ratios
type Geometry struct {
	Width      float64     `json:"width"`      // domain width (x) [m]
	Height     float64     `json:"height"`     // domain height (y) [m]
	Depth      float64     `json:"depth"`      // domain depth (z, wall to TV) [m]
	Twall      float64     `json:"twall"`      // wall plate thickness [m]; 0 => derived
	Tmount     float64     `json:"tmount"`     // TV mounting surface thickness [m]; 0 => derived
	TvWeight   float64     `json:"tvweight"`   // TV weight [kg]
	Mounts     [][]float64 `json:"mounts"`     // mounting point centers [(x,y)...]
	HoleRadius float64     `json:"holeradius"` // radius of the circular force regions [m]
}

// Domain returns the design domain
func (o *Geometry) Domain() msh.Domain {
	return msh.Domain{W: o.Width, H: o.Height, D: o.Depth}
}

// MeshData holds the mesh resolution. Zero ny/nz are derived from the
// domain aspect ratios based on nx, as in ny = int((H/W)·nx)
type MeshData struct {
	Nx int `json:"nx"` // number of elements along x
	Ny int `json:"ny"` // number of elements along y; 0 => derived
	Nz int `json:"nz"` // number of elements along z; 0 => derived
}

// LoadCase holds one named combination of force magnitude, direction and
// type under which the structure is analyzed. Immutable after reading
type LoadCase struct {
	Name         string  `json:"name"`         // name; e.g. "static_tv_weight"
	Type         string  `json:"type"`         // one of LoadTypes
	Magnitude    float64 `json:"magnitude"`    // force magnitude per mounting point [N]
	Direction    r3.Vec  `json:"direction"`    // unit force direction
	Frequency    float64 `json:"frequency"`    // [Hz] for dynamic loads; 0 => n/a
	Cycles       int     `json:"cycles"`       // for fatigue analysis; 0 => n/a
	SafetyFactor float64 `json:"safetyfactor"` // safety factor
	Desc         string  `json:"desc"`         // free-text description
}

// OptData holds the topology optimization parameters
type OptData struct {
	VolFrac   float64 `json:"volfrac"`   // volume fraction upper bound
	MaxIt     int     `json:"maxit"`     // max optimizer iterations
	ConvTol   float64 `json:"convtol"`   // convergence tolerance on design change
	FilterRad float64 `json:"filterrad"` // density filter radius
	Penalty   float64 `json:"penalty"`   // SIMP penalty exponent
	MoveLimit float64 `json:"movelimit"` // move limit per iteration
}

// SetDefault sets default optimization parameters
func (o *OptData) SetDefault() {
	o.VolFrac = 0.1
	o.MaxIt = 100
	o.ConvTol = 1e-6
	o.FilterRad = 1.7
	o.Penalty = 3.0
	o.MoveLimit = 0.2
}

// SetDefault sets the reference wall mount geometry
func (o *Geometry) SetDefault() {
	o.Width = 10.0
	o.Height = 8.0
	o.Depth = 6.0
	o.TvWeight = 50.0
	o.Mounts = [][]float64{{2, 2}, {8, 2}, {2, 6}, {8, 6}}
	o.HoleRadius = 0.2
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`         // global data
	Geo       Geometry    `json:"geometry"`     // wall mount geometry
	Msh       MeshData    `json:"mesh"`         // mesh resolution
	LoadCases []*LoadCase `json:"loadcases"`    // load cases; empty => defaults
	Opt       OptData     `json:"optimization"` // optimization parameters

	// derived
	Key    string         // simulation key; e.g. tvmount.sim => tvmount
	DirOut string         // directory to save results
	Res    msh.Resolution // complete mesh resolution
	Mats   *MatDb         // materials database
}

// ReadSim reads all simulation data from a .sim JSON file, fills defaults
// and validates the input
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50

	// decode
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(simfilepath)
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/tvmount/" + o.Key
	}

	// derived data and validation
	if err = o.derive(); err != nil {
		return nil, err
	}
	return
}

// derive fills derived fields and validates the input
func (o *Simulation) derive() (err error) {

	// geometry
	g := &o.Geo
	if g.Width <= 0 || g.Height <= 0 || g.Depth <= 0 {
		return chk.Err("geometry: dimensions must be positive: width=%g height=%g depth=%g", g.Width, g.Height, g.Depth)
	}
	if g.HoleRadius <= 0 {
		return chk.Err("geometry: mounting hole radius must be positive: %g", g.HoleRadius)
	}
	if len(g.Mounts) < 1 {
		return chk.Err("geometry: at least one mounting point is required")
	}
	for _, mp := range g.Mounts {
		if len(mp) != 2 {
			return chk.Err("geometry: mounting points must be (x,y) pairs: %v", mp)
		}
		if mp[0] < 0 || mp[0] > g.Width || mp[1] < 0 || mp[1] > g.Height {
			return chk.Err("geometry: mounting point (%g,%g) lies outside the domain", mp[0], mp[1])
		}
	}

	// resolution; ny and nz keep the domain aspect ratios
	if o.Msh.Nx < 1 {
		return chk.Err("mesh: nx must be ≥ 1: %d", o.Msh.Nx)
	}
	o.Res = msh.Resolution{Nx: o.Msh.Nx, Ny: o.Msh.Ny, Nz: o.Msh.Nz}
	if o.Res.Ny == 0 {
		o.Res.Ny = int((g.Height / g.Width) * float64(o.Msh.Nx))
	}
	if o.Res.Nz == 0 {
		o.Res.Nz = int((g.Depth / g.Width) * float64(o.Msh.Nx))
	}

	// layer thicknesses; t must match c·dz with c=1,2,3,...
	if g.Twall == 0 {
		g.Twall = 2 * g.Width / float64(o.Msh.Nx)
	}
	if g.Tmount == 0 {
		g.Tmount = 2 * g.Width / float64(o.Msh.Nx)
	}

	// load cases
	if len(o.LoadCases) == 0 {
		o.LoadCases = DefaultLoadCases(g.TvWeight, len(g.Mounts))
	}
	seen := make(map[string]bool)
	for _, lc := range o.LoadCases {
		if lc.Name == "" {
			return chk.Err("load case without name")
		}
		if seen[lc.Name] {
			return chk.Err("duplicate load case name %q", lc.Name)
		}
		seen[lc.Name] = true
		ok := false
		for _, t := range LoadTypes {
			if lc.Type == t {
				ok = true
			}
		}
		if !ok {
			return chk.Err("load case %q: unknown type %q", lc.Name, lc.Type)
		}
		if lc.Magnitude <= 0 {
			return chk.Err("load case %q: force magnitude must be positive: %g", lc.Name, lc.Magnitude)
		}
		if lc.SafetyFactor <= 0 {
			return chk.Err("load case %q: safety factor must be positive: %g", lc.Name, lc.SafetyFactor)
		}
		norm := r3.Norm(lc.Direction)
		if norm < 1e-14 {
			return chk.Err("load case %q: force direction must be a nonzero vector", lc.Name)
		}
		if math.Abs(norm-1) > 1e-9 {
			lc.Direction = r3.Scale(1/norm, lc.Direction)
		}
	}

	// optimization parameters
	if o.Opt.VolFrac <= 0 || o.Opt.VolFrac > 1 {
		return chk.Err("optimization: volume fraction must be within (0,1]: %g", o.Opt.VolFrac)
	}
	if o.Opt.MaxIt < 1 {
		return chk.Err("optimization: max iterations must be ≥ 1: %d", o.Opt.MaxIt)
	}

	// materials
	if o.Data.Matfile != "" {
		o.Mats, err = ReadMat(o.Data.Matfile)
		if err != nil {
			return err
		}
	} else {
		o.Mats = DefaultMats()
	}
	if o.Data.Material == "" {
		o.Data.Material = "steel"
	}
	if o.Mats.Get(o.Data.Material) == nil {
		return chk.Err("material %q is not in the materials database", o.Data.Material)
	}
	return
}

// DefaultLoadCases builds the four standard load cases of the wall mount
// from the TV weight, each force distributed across the mounting points
func DefaultLoadCases(tvWeight float64, nmounts int) []*LoadCase {
	perPoint := tvWeight * Gravity / float64(nmounts)
	down := r3.Vec{X: 0, Y: -1, Z: 0}
	return []*LoadCase{
		{
			Name:         "static_tv_weight",
			Type:         "static",
			Magnitude:    perPoint,
			Direction:    down,
			SafetyFactor: 2.5,
			Desc:         "Static load from TV weight",
		},
		{
			Name:         "dynamic_vibration",
			Type:         "dynamic",
			Magnitude:    perPoint * 0.2,
			Direction:    down,
			Frequency:    10.0,
			SafetyFactor: 1.8,
			Desc:         "Dynamic vibration loads",
		},
		{
			Name:         "seismic_horizontal",
			Type:         "seismic",
			Magnitude:    perPoint * 0.4,
			Direction:    r3.Vec{X: 1, Y: 0, Z: 0},
			SafetyFactor: 3.0,
			Desc:         "Horizontal seismic loads",
		},
		{
			Name:         "fatigue_cycling",
			Type:         "fatigue",
			Magnitude:    perPoint * 0.1,
			Direction:    down,
			Cycles:       1000000,
			SafetyFactor: 4.0,
			Desc:         "Fatigue loading from TV on/off cycles",
		},
	}
}
