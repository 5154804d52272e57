// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
)

// FnKey returns the mesh filename key encoding the wall thickness and the
// resolution; e.g. Tv_WallMount-0.40-nx_50-ny_40-nz_30
func FnKey(thickness float64, res Resolution) string {
	return io.Sf("Tv_WallMount-%.2f-nx_%d-ny_%d-nz_%d", thickness, res.Nx, res.Ny, res.Nz)
}

// Write serializes the mesh into an openCFS/Ansys text mesh file under
// dirout and returns the complete filename path. Node and element ids are
// written 1-based. The [Info] header carries the counts that ReadCounts
// verifies against the body. On failure a SerializationIOError is returned
// and any partial file is left behind for the caller to detect
func (o *Mesh) Write(dirout string, thickness float64) (fnpath string, err error) {

	// header
	nv, nc := len(o.Verts), len(o.Cells)
	buf := new(bytes.Buffer)
	io.Ff(buf, "# ANSYS Mesh File\n")
	io.Ff(buf, "# Generated by TV Mount Optimizer\n")
	io.Ff(buf, "# Nodes: %d\n", nv)
	io.Ff(buf, "# Elements: %d\n", nc)
	io.Ff(buf, "# Boundary Conditions: %d\n", len(o.Sets))
	io.Ff(buf, "\n[Info]\n")
	io.Ff(buf, "Version 1\n")
	io.Ff(buf, "Dimension 3\n")
	io.Ff(buf, "NumNodes %d\n", nv)
	io.Ff(buf, "Num3DElements %d\n", nc)
	io.Ff(buf, "Num2DElements 0\n")
	io.Ff(buf, "Num1DElements 0\n")
	io.Ff(buf, "NumNodeBC %d\n", o.NbcNodes())

	// nodes
	io.Ff(buf, "\n[Nodes]\n")
	for _, v := range o.Verts {
		io.Ff(buf, "%d  %.6f  %.6f  %.6f\n", v.Id+1, v.C[0], v.C[1], v.C[2])
	}

	// elements
	io.Ff(buf, "\n[Elements]\n")
	for _, c := range o.Cells {
		io.Ff(buf, "%d  brick  %s\n", c.Id+1, c.Region)
	}

	// boundary conditions
	io.Ff(buf, "\n[BoundaryConditions]\n")
	for _, s := range o.Sets {
		io.Ff(buf, "%s: %d nodes\n", s.Name, len(s.Nodes))
	}

	// write file
	fnpath = filepath.Join(dirout, FnKey(thickness, o.Res)+".mesh")
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", &SerializationIOError{fnpath, err}
	}
	if err = os.WriteFile(fnpath, buf.Bytes(), 0666); err != nil {
		return "", &SerializationIOError{fnpath, err}
	}
	return
}
