// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfs

import (
	"hash/fnv"
	"os"
)

// AnalysisResult holds the numbers read back from one solver run. The
// solver's own result files (hdf5) are opaque to this pipeline
type AnalysisResult struct {
	Compliance      float64 // final compliance
	MaxStress       float64 // maximum von Mises stress [Pa]
	MaxDisplacement float64 // maximum displacement [m]
	Converged       bool    // optimizer converged within maxIterations
}

// SolverClient runs the external structural solve for one compiled problem
// document and mesh file. Implementations must not mutate the inputs
type SolverClient interface {
	Analyze(problemPath, meshPath string) (*AnalysisResult, error)
}

// StubSolver is a deterministic stand-in for openCFS: it derives its
// numbers from a hash of the problem document so repeated pipelines over
// the same inputs report identical results. Use it wherever the pipeline
// must run without a solver installation
type StubSolver struct{}

// Analyze returns deterministic placeholder results
func (o StubSolver) Analyze(problemPath, meshPath string) (*AnalysisResult, error) {
	b, err := os.ReadFile(problemPath)
	if err != nil {
		return nil, err
	}
	h := fnv.New64a()
	h.Write(b)
	u := h.Sum64()
	frac := func(shift uint) float64 {
		return float64((u>>shift)&0xffff) / 65535.0
	}
	return &AnalysisResult{
		Compliance:      1e-6 + frac(0)*(1e-4-1e-6),
		MaxStress:       1e6 + frac(16)*(50e6-1e6),
		MaxDisplacement: 1e-6 + frac(32)*(1e-3-1e-6),
		Converged:       true,
	}, nil
}
