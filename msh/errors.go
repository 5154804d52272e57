// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/io"
)

// InvalidResolutionError indicates a non-positive element count along some
// axis. No partial grid is usable after this error
type InvalidResolutionError struct {
	Nx, Ny, Nz int
}

func (e *InvalidResolutionError) Error() string {
	return io.Sf("invalid mesh resolution nx=%d ny=%d nz=%d: all counts must be ≥ 1", e.Nx, e.Ny, e.Nz)
}

// InvalidDomainError indicates a non-positive domain dimension
type InvalidDomainError struct {
	W, H, D float64
}

func (e *InvalidDomainError) Error() string {
	return io.Sf("invalid domain dimensions w=%g h=%g d=%g: all dimensions must be positive", e.W, e.H, e.D)
}

// SerializationIOError wraps an IO failure while writing or reading a mesh
// file. It is surfaced as-is; partial files are left for the caller to
// detect. No retries: the failure is a deterministic function of the inputs
type SerializationIOError struct {
	Filename string
	Err      error
}

func (e *SerializationIOError) Error() string {
	return io.Sf("mesh file %q: %v", e.Filename, e.Err)
}

func (e *SerializationIOError) Unwrap() error {
	return e.Err
}
