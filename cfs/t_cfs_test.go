// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfs

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/prashanthgadwala/3d-topo-tv-mount/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_problem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem01. deterministic problem document")

	var opt inp.OptData
	opt.SetDefault()
	lc := inp.DefaultLoadCases(50, 4)[0] // static_tv_weight, 122.625 N down

	doc1 := Problem(lc, 4, opt).String()
	doc2 := Problem(lc, 4, opt).String()
	chk.String(tst, doc1, doc2)

	// one force entry per mounting point with Cartesian components
	// magnitude·direction
	for _, want := range []string{
		"<fix name=\"back_support\">",
		"<force name=\"static_tv_weight_force_1\">",
		"<force name=\"static_tv_weight_force_4\">",
		"<comp dof=\"y\" value=\"-122.625000\"/>",
		"<comp dof=\"x\" value=\"0.000000\"/>",
		"<constraint type=\"volume\" value=\"0.1\" bound=\"upperBound\"",
		"<optimizer type=\"optimalityCondition\" maxIterations=\"100\">",
		"<transferFunction type=\"simp\" application=\"mech\" param=\"3\"/>",
		"<filter neighborhood=\"maxEdge\" value=\"1.7\" type=\"density\"/>",
		"<region name=\"mech\" material=\"99lines\"/>",
	} {
		if !strings.Contains(doc1, want) {
			tst.Errorf("document must contain %q\n", want)
			return
		}
	}
	if strings.Contains(doc1, "static_tv_weight_force_5") {
		tst.Errorf("document must not contain a fifth force entry\n")
		return
	}
}

func Test_problem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem02. write and re-derive byte-for-byte")

	var opt inp.OptData
	opt.SetDefault()
	lc := inp.DefaultLoadCases(50, 4)[2] // seismic_horizontal

	fnpath, err := WriteProblem("/tmp/tvmount/cfs", lc, 4, opt)
	if err != nil {
		tst.Errorf("write failed:\n%v", err)
		return
	}
	io.Pforan("fnpath = %v\n", fnpath)
	if !strings.HasSuffix(fnpath, "TvSupport_seismic_horizontal.xml") {
		tst.Errorf("wrong problem filename: %q\n", fnpath)
		return
	}
	b, err := os.ReadFile(fnpath)
	if err != nil {
		tst.Errorf("cannot read back problem file:\n%v", err)
		return
	}
	chk.String(tst, string(b), Problem(lc, 4, opt).String())
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. stub solver determinism")

	var opt inp.OptData
	opt.SetDefault()
	lc := inp.DefaultLoadCases(50, 4)[0]
	fnpath, err := WriteProblem("/tmp/tvmount/cfs", lc, 4, opt)
	if err != nil {
		tst.Errorf("write failed:\n%v", err)
		return
	}

	// a missing problem document is an error, not a panic
	var solver StubSolver
	if _, err = solver.Analyze("/tmp/tvmount/cfs/no_such_file.xml", ""); err == nil {
		tst.Errorf("missing problem document must fail\n")
		return
	}

	r1, err := solver.Analyze(fnpath, "")
	if err != nil {
		tst.Errorf("analyze failed:\n%v", err)
		return
	}
	r2, err := solver.Analyze(fnpath, "")
	if err != nil {
		tst.Errorf("analyze failed:\n%v", err)
		return
	}
	chk.Float64(tst, "compliance", 0, r1.Compliance, r2.Compliance)
	chk.Float64(tst, "max stress", 0, r1.MaxStress, r2.MaxStress)
	chk.Float64(tst, "max displacement", 0, r1.MaxDisplacement, r2.MaxDisplacement)
	if !r1.Converged {
		tst.Errorf("stub solver must report convergence\n")
		return
	}
	if r1.Compliance < 1e-6 || r1.Compliance > 1e-4 {
		tst.Errorf("compliance out of the documented range: %v\n", r1.Compliance)
		return
	}
	if r1.MaxStress < 1e6 || r1.MaxStress > 50e6 {
		tst.Errorf("max stress out of the documented range: %v\n", r1.MaxStress)
		return
	}
}
