// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read full simulation file")

	sim, err := ReadSim("data/tvmount.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("key=%q dirout=%q\n", sim.Key, sim.DirOut)
	chk.String(tst, sim.Key, "tvmount")
	chk.String(tst, sim.Data.Material, "steel")

	// resolution: ny and nz derived from the aspect ratios
	chk.Int(tst, "nx", sim.Res.Nx, 50)
	chk.Int(tst, "ny", sim.Res.Ny, 40)
	chk.Int(tst, "nz", sim.Res.Nz, 30)

	// geometry
	chk.Float64(tst, "twall", 1e-15, sim.Geo.Twall, 0.4)
	chk.Float64(tst, "tmount", 1e-15, sim.Geo.Tmount, 0.4)
	chk.Int(tst, "mounting points", len(sim.Geo.Mounts), 4)

	// default load cases built from the TV weight
	chk.Int(tst, "load cases", len(sim.LoadCases), 4)
	lc := sim.LoadCases[0]
	chk.String(tst, lc.Name, "static_tv_weight")
	chk.String(tst, lc.Type, "static")
	chk.Float64(tst, "static magnitude", 1e-12, lc.Magnitude, 50*Gravity/4)
	chk.Float64(tst, "static dir y", 1e-15, lc.Direction.Y, -1)
	chk.Float64(tst, "seismic magnitude", 1e-12, sim.LoadCases[2].Magnitude, 50*Gravity/4*0.4)
	chk.Float64(tst, "seismic dir x", 1e-15, sim.LoadCases[2].Direction.X, 1)
	chk.Int(tst, "fatigue cycles", sim.LoadCases[3].Cycles, 1000000)

	// optimization parameters
	chk.Float64(tst, "volfrac", 1e-15, sim.Opt.VolFrac, 0.1)
	chk.Int(tst, "maxit", sim.Opt.MaxIt, 100)
	chk.Float64(tst, "convtol", 1e-20, sim.Opt.ConvTol, 1e-6)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. defaults for a minimal file")

	sim, err := ReadSim("data/minimal.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Data.Material, "steel")
	chk.String(tst, sim.DirOut, "/tmp/tvmount/minimal")
	chk.Int(tst, "nx", sim.Res.Nx, 50)
	chk.Int(tst, "ny", sim.Res.Ny, 40)
	chk.Int(tst, "nz", sim.Res.Nz, 30)

	// thicknesses derived as twice the x-cell size
	chk.Float64(tst, "twall", 1e-15, sim.Geo.Twall, 2*10.0/50)
	chk.Float64(tst, "tmount", 1e-15, sim.Geo.Tmount, 2*10.0/50)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. input validation")

	// missing input files are errors, not panics
	if _, err := ReadSim("data/no_such_file.sim"); err == nil {
		tst.Errorf("missing simulation file must fail\n")
		return
	}
	if _, err := ReadMat("data/no_such_file.mat"); err == nil {
		tst.Errorf("missing materials file must fail\n")
		return
	}

	// bad geometry
	o := new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50
	o.Geo.Width = 0
	if err := o.derive(); err == nil {
		tst.Errorf("zero width must fail\n")
		return
	}

	// mounting point outside the domain
	o = new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50
	o.Geo.Mounts = [][]float64{{11, 2}}
	if err := o.derive(); err == nil {
		tst.Errorf("mounting point outside the domain must fail\n")
		return
	}

	// duplicate load case names
	o = new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50
	cases := DefaultLoadCases(50, 4)
	cases[1].Name = cases[0].Name
	o.LoadCases = cases
	if err := o.derive(); err == nil {
		tst.Errorf("duplicate load case names must fail\n")
		return
	}

	// zero force direction
	o = new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50
	cases = DefaultLoadCases(50, 4)
	cases[0].Direction.X = 0
	cases[0].Direction.Y = 0
	cases[0].Direction.Z = 0
	o.LoadCases = cases
	if err := o.derive(); err == nil {
		tst.Errorf("zero force direction must fail\n")
		return
	}

	// non-unit directions are normalized
	o = new(Simulation)
	o.Geo.SetDefault()
	o.Opt.SetDefault()
	o.Msh.Nx = 50
	cases = DefaultLoadCases(50, 4)
	cases[0].Direction.Y = -2
	o.LoadCases = cases
	if err := o.derive(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "normalized dir y", 1e-15, cases[0].Direction.Y, -1)
}
