// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. lattice generation")

	m, err := New(Resolution{5, 4, 3}, Domain{10, 8, 6})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nverts", len(m.Verts), 120)
	chk.Int(tst, "ncells", len(m.Cells), 60)
	chk.Float64(tst, "dx", 1e-15, m.Dx, 2.0)
	chk.Float64(tst, "dy", 1e-15, m.Dy, 2.0)
	chk.Float64(tst, "dz", 1e-15, m.Dz, 2.0)

	// node id = i + j·(nx+1) + k·(nx+1)·(ny+1)
	chk.Int(tst, "id(1,0,0)", m.VertId(1, 0, 0), 1)
	chk.Int(tst, "id(0,1,0)", m.VertId(0, 1, 0), 6)
	chk.Int(tst, "id(0,0,1)", m.VertId(0, 0, 1), 30)
	chk.Int(tst, "id(5,4,3)", m.VertId(5, 4, 3), 119)

	// coordinates
	chk.Array(tst, "verts[0].C", 1e-15, m.Verts[0].C, []float64{0, 0, 0})
	chk.Array(tst, "verts[31].C", 1e-15, m.Verts[31].C, []float64{2, 0, 2})
	chk.Array(tst, "verts[119].C", 1e-15, m.Verts[119].C, []float64{10, 8, 6})

	// barycenters and default region
	chk.Array(tst, "cells[0].X", 1e-15, m.Cells[0].X, []float64{1, 1, 1})
	chk.Array(tst, "cells[59].X", 1e-15, m.Cells[59].X, []float64{9, 7, 5})
	for _, c := range m.Cells {
		if c.Region != RegionMech {
			tst.Errorf("cell %d: default region must be %q but is %q\n", c.Id, RegionMech, c.Region)
			return
		}
	}

	// limits
	xmin, xmax, ymin, ymax, zmin, zmax := m.Limits()
	io.Pforan("lims = [%g, %g, %g, %g, %g, %g]\n", xmin, xmax, ymin, ymax, zmin, zmax)
	chk.Float64(tst, "xmax", 1e-15, xmax, 10)
	chk.Float64(tst, "ymax", 1e-15, ymax, 8)
	chk.Float64(tst, "zmax", 1e-15, zmax, 6)
	chk.Float64(tst, "xmin", 1e-15, xmin, 0)
	chk.Float64(tst, "ymin", 1e-15, ymin, 0)
	chk.Float64(tst, "zmin", 1e-15, zmin, 0)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. construction errors")

	_, err := New(Resolution{0, 4, 3}, Domain{10, 8, 6})
	if err == nil {
		tst.Errorf("zero nx must fail\n")
		return
	}
	var resErr *InvalidResolutionError
	if !errors.As(err, &resErr) {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("OK: %v\n", err)

	_, err = New(Resolution{5, 4, 3}, Domain{-1, 8, 6})
	if err == nil {
		tst.Errorf("negative width must fail\n")
		return
	}
	var domErr *InvalidDomainError
	if !errors.As(err, &domErr) {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("OK: %v\n", err)
}

func Test_nset01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nset01. named node sets")

	m, err := New(Resolution{2, 2, 2}, Domain{1, 1, 1})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s := m.AddSet("back_support")
	if !s.Add(3) {
		tst.Errorf("first Add must succeed\n")
		return
	}
	if s.Add(3) {
		tst.Errorf("duplicate Add must be rejected\n")
		return
	}
	s.Add(7)
	s.Add(5)
	chk.Ints(tst, "nodes in insertion order", s.Nodes, []int{3, 7, 5})

	// AddSet with an existing name returns the existing set
	if m.AddSet("back_support") != s {
		tst.Errorf("AddSet must return the existing set\n")
		return
	}
	chk.Int(tst, "total BC nodes", m.NbcNodes(), 3)
}
