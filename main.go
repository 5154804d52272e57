// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/prashanthgadwala/3d-topo-tv-mount/cfs"
	"github.com/prashanthgadwala/3d-topo-tv-mount/inp"
	"github.com/prashanthgadwala/3d-topo-tv-mount/opt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/tvmount", ".sim", true)
	verbose := io.ArgToBool(1, true)
	writeReport := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nTV Wall Mount Topology Optimization Preprocessor\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"write report and results", "writeReport", writeReport,
		))
	}

	// read simulation input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}

	// run pipeline with the stub solver; run openCFS on the generated
	// files afterwards: cfs -m <mesh> TvSupport_<case>
	analysis, err := opt.NewMain(sim, cfs.StubSolver{}, verbose)
	if err != nil {
		chk.Panic("cannot allocate pipeline:\n%v", err)
	}
	if err = analysis.Run(); err != nil {
		chk.Panic("run failed:\n%v", err)
	}

	// report and results export
	if writeReport {
		if _, err = analysis.WriteReport(sim.DirOut + "/reports"); err != nil {
			chk.Panic("cannot write report:\n%v", err)
		}
		if _, err = analysis.ExportJSON(sim.DirOut + "/reports"); err != nil {
			chk.Panic("cannot export results:\n%v", err)
		}
	}
}
