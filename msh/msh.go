// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the structured hexahedral mesh used by the wall
// mount topology optimization pipeline: grid generation, named node sets
// and the openCFS mesh file writer/reader
package msh

import (
	"github.com/cpmech/gosl/utl"
)

// region names assigned to cells. "mech" is the optimizable default; the
// optimizer may remove material there but never in "solid" and never adds
// material in "void"
const (
	RegionSolid = "solid"
	RegionVoid  = "void"
	RegionMech  = "mech"
)

// Domain holds the dimensions of the rectangular design domain [m]
type Domain struct {
	W float64 `json:"w"` // width (x-direction)
	H float64 `json:"h"` // height (y-direction)
	D float64 `json:"d"` // depth (z-direction, wall to TV)
}

// Resolution holds the number of elements along each axis
type Resolution struct {
	Nx int `json:"nx"` // number of elements along x
	Ny int `json:"ny"` // number of elements along y
	Nz int `json:"nz"` // number of elements along z
}

// Vert holds vertex data
type Vert struct {
	Id int       // id (lattice order)
	C  []float64 // coordinates (size==3)
}

// Cell holds cell (hex8 element) data
type Cell struct {
	Id     int       // id (lattice order over cell indices)
	X      []float64 // barycenter (size==3)
	Region string    // region name; see Region... constants
}

// NodeSet is a named boundary condition set holding vertex ids in
// insertion order. Duplicates within a set are rejected by Add
type NodeSet struct {
	Name  string // name; e.g. "back_support"
	Nodes []int  // member vertex ids

	// derived
	seen map[int]bool // members, for duplicate rejection
}

// Add appends a vertex id unless it is already a member
func (o *NodeSet) Add(nid int) bool {
	if o.seen == nil {
		o.seen = make(map[int]bool)
	}
	if o.seen[nid] {
		return false
	}
	o.seen[nid] = true
	o.Nodes = append(o.Nodes, nid)
	return true
}

// Mesh holds a structured hexahedral grid over a rectangular domain
type Mesh struct {

	// input
	Dom Domain     // domain dimensions
	Res Resolution // number of elements along each axis

	// derived
	Dx, Dy, Dz float64    // cell sizes
	Verts      []*Vert    // all vertices; (nx+1)(ny+1)(nz+1) in lattice order
	Cells      []*Cell    // all cells; nx·ny·nz in lattice order
	Sets       []*NodeSet // named node sets in creation order

	// derived: maps
	Name2set map[string]*NodeSet // set name => set
}

// New generates the node lattice and cell list for the given resolution and
// domain. Vertex id = i + j·(nx+1) + k·(nx+1)·(ny+1) with the outer loop
// over k; cell ids follow the analogous order over cell indices. Every cell
// starts in region "mech"
func New(res Resolution, dom Domain) (o *Mesh, err error) {

	// check
	if res.Nx < 1 || res.Ny < 1 || res.Nz < 1 {
		return nil, &InvalidResolutionError{res.Nx, res.Ny, res.Nz}
	}
	if dom.W <= 0 || dom.H <= 0 || dom.D <= 0 {
		return nil, &InvalidDomainError{dom.W, dom.H, dom.D}
	}

	// allocate
	o = &Mesh{Dom: dom, Res: res}
	o.Dx = dom.W / float64(res.Nx)
	o.Dy = dom.H / float64(res.Ny)
	o.Dz = dom.D / float64(res.Nz)
	o.Verts = make([]*Vert, (res.Nx+1)*(res.Ny+1)*(res.Nz+1))
	o.Cells = make([]*Cell, res.Nx*res.Ny*res.Nz)
	o.Name2set = make(map[string]*NodeSet)

	// vertices
	for k := 0; k < res.Nz+1; k++ {
		for j := 0; j < res.Ny+1; j++ {
			for i := 0; i < res.Nx+1; i++ {
				id := o.VertId(i, j, k)
				o.Verts[id] = &Vert{
					Id: id,
					C:  []float64{float64(i) * o.Dx, float64(j) * o.Dy, float64(k) * o.Dz},
				}
			}
		}
	}

	// cells with barycenters
	id := 0
	for k := 0; k < res.Nz; k++ {
		for j := 0; j < res.Ny; j++ {
			for i := 0; i < res.Nx; i++ {
				o.Cells[id] = &Cell{
					Id: id,
					X: []float64{
						(float64(i) + 0.5) * o.Dx,
						(float64(j) + 0.5) * o.Dy,
						(float64(k) + 0.5) * o.Dz,
					},
					Region: RegionMech,
				}
				id++
			}
		}
	}
	return
}

// VertId returns the vertex id for lattice indices (i,j,k)
func (o *Mesh) VertId(i, j, k int) int {
	return i + j*(o.Res.Nx+1) + k*(o.Res.Nx+1)*(o.Res.Ny+1)
}

// AddSet creates an empty named node set and registers it. If a set with
// this name exists already, the existing one is returned
func (o *Mesh) AddSet(name string) *NodeSet {
	if s, ok := o.Name2set[name]; ok {
		return s
	}
	s := &NodeSet{Name: name}
	o.Sets = append(o.Sets, s)
	o.Name2set[name] = s
	return s
}

// Set returns a named node set or nil
func (o *Mesh) Set(name string) *NodeSet {
	return o.Name2set[name]
}

// NbcNodes returns the total number of node-BC entries over all sets
func (o *Mesh) NbcNodes() (n int) {
	for _, s := range o.Sets {
		n += len(s.Nodes)
	}
	return
}

// Limits returns the coordinate limits of the lattice
func (o *Mesh) Limits() (xmin, xmax, ymin, ymax, zmin, zmax float64) {
	xmin, xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	ymin, ymax = o.Verts[0].C[1], o.Verts[0].C[1]
	zmin, zmax = o.Verts[0].C[2], o.Verts[0].C[2]
	for _, v := range o.Verts {
		xmin, xmax = utl.Min(xmin, v.C[0]), utl.Max(xmax, v.C[0])
		ymin, ymax = utl.Min(ymin, v.C[1]), utl.Max(ymax, v.C[1])
		zmin, zmax = utl.Min(zmin, v.C[2]), utl.Max(zmax, v.C[2])
	}
	return
}
