// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01. mesh file round trip")

	m, err := New(Resolution{5, 4, 3}, Domain{10, 8, 6})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s := m.AddSet("back_support")
	s.Add(0)
	s.Add(1)
	s.Add(2)
	f := m.AddSet("static_tv_weight_force_1")
	f.Add(100)

	fnpath, err := m.Write("/tmp/tvmount/msh", 0.4)
	if err != nil {
		tst.Errorf("write failed:\n%v", err)
		return
	}
	io.Pforan("fnpath = %v\n", fnpath)
	chk.String(tst, filepath.Base(fnpath), "Tv_WallMount-0.40-nx_5-ny_4-nz_3.mesh")

	// the header counts must match a recount of the body
	c, err := ReadCounts(fnpath)
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	chk.Int(tst, "nodes", c.Nodes, 120)
	chk.Int(tst, "elements", c.Elements, 60)
	chk.Int(tst, "sets", c.Sets, 2)
	chk.Int(tst, "bc nodes", c.BcNodes, 4)
}

func Test_write02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write02. tampered header is detected")

	tampered := `[Info]
Version 1
Dimension 3
NumNodes 9
Num3DElements 1
Num2DElements 0
Num1DElements 0
NumNodeBC 0

[Nodes]
1  0.000000  0.000000  0.000000
2  1.000000  0.000000  0.000000

[Elements]
1  brick  mech

[BoundaryConditions]
`
	fnpath := filepath.Join("/tmp/tvmount/msh", "tampered.mesh")
	if err := os.MkdirAll("/tmp/tvmount/msh", 0777); err != nil {
		tst.Errorf("cannot create directory:\n%v", err)
		return
	}
	if err := os.WriteFile(fnpath, []byte(tampered), 0666); err != nil {
		tst.Errorf("cannot write file:\n%v", err)
		return
	}
	if _, err := ReadCounts(fnpath); err == nil {
		tst.Errorf("count mismatch must be detected\n")
		return
	}
}

func Test_write03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write03. missing mesh file is an error, not a panic")

	_, err := ReadCounts("/tmp/tvmount/msh/no_such_file.mesh")
	if err == nil {
		tst.Errorf("missing file must be rejected\n")
		return
	}
	var serr *SerializationIOError
	if !errors.As(err, &serr) {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("OK: %v\n", err)
}
