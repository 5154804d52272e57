// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rgn implements the geometric region classification of mesh cells
// into "solid", "void" and the optimizable default "mech"
package rgn

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
)

// Box is an axis-aligned box with open-interval containment on all six
// bounds: a coordinate exactly on a face matches neither side of that face
// and the cell falls through to the default region. Note the contrast with
// the inclusive radial test of the boundary node selector
type Box struct {
	X0, X1 float64 // x-interval (open)
	Y0, Y1 float64 // y-interval (open)
	Z0, Z1 float64 // z-interval (open)
}

// Contains reports whether the point lies strictly inside the box
func (o Box) Contains(x, y, z float64) bool {
	return x > o.X0 && x < o.X1 &&
		y > o.Y0 && y < o.Y1 &&
		z > o.Z0 && z < o.Z1
}

// Predicate is one named pure geometric test over a barycenter
type Predicate struct {
	Name string                     // name; e.g. "wall_plate"
	F    func(x, y, z float64) bool // test
}

// Boxes builds a predicate matching the union of the given boxes
func Boxes(name string, boxes ...Box) Predicate {
	return Predicate{Name: name, F: func(x, y, z float64) bool {
		for _, b := range boxes {
			if b.Contains(x, y, z) {
				return true
			}
		}
		return false
	}}
}

// PredicateSet is an ordered list of predicates in two priority tiers.
// Classification evaluates the Solid tier first (in list order), then the
// Void tier; the first match wins and "mech" is the fallback. The tier
// order is policy: a point matched by both tiers is solid
type PredicateSet struct {
	Solid []Predicate // solid tier (higher priority)
	Void  []Predicate // void tier
}

// Counts holds per-region cell counts emitted as diagnostics
type Counts struct {
	Solid int // cells tagged solid
	Void  int // cells tagged void
	Mech  int // cells left in the optimizable default
}

// region applies the tiers to one point
func (o *PredicateSet) region(x, y, z float64) string {
	for _, p := range o.Solid {
		if p.F(x, y, z) {
			return msh.RegionSolid
		}
	}
	for _, p := range o.Void {
		if p.F(x, y, z) {
			return msh.RegionVoid
		}
	}
	return msh.RegionMech
}

// Classify tags every cell of the mesh with exactly one region, evaluating
// the predicate set at the cell barycenter. The pass is a parallel map
// over contiguous cell chunks; each cell is touched by exactly one worker
// and the result is independent of the number of workers. Re-running with
// the same set yields identical tags
func Classify(m *msh.Mesh, set *PredicateSet) (counts Counts) {
	nc := len(m.Cells)
	nw := runtime.NumCPU()
	if nw > nc {
		nw = nc
	}
	sub := make([]Counts, nw)
	csz := (nc + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo, hi := w*csz, (w+1)*csz
		if hi > nc {
			hi = nc
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for _, c := range m.Cells[lo:hi] {
				c.Region = set.region(c.X[0], c.X[1], c.X[2])
				switch c.Region {
				case msh.RegionSolid:
					sub[w].Solid++
				case msh.RegionVoid:
					sub[w].Void++
				default:
					sub[w].Mech++
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, s := range sub {
		counts.Solid += s.Solid
		counts.Void += s.Void
		counts.Mech += s.Mech
	}
	return
}

// InvalidThicknessDiscretizationError indicates a layer thickness that is
// not an integer multiple of the z-cell size. Ignoring this would silently
// shift which element layer gets classified, hence it is fatal
type InvalidThicknessDiscretizationError struct {
	T  float64 // layer thickness
	Dz float64 // z-cell size
}

func (e *InvalidThicknessDiscretizationError) Error() string {
	return io.Sf("thickness t=%g is not an integer multiple of the z-cell size dz=%g (t = c·dz with c=1,2,3,...)", e.T, e.Dz)
}

// CheckThickness verifies that the wall/mount layer thickness equals an
// integer multiple of the z-cell size
func CheckThickness(t, dz float64) error {
	if t <= 0 || dz <= 0 {
		return &InvalidThicknessDiscretizationError{t, dz}
	}
	c := t / dz
	if c < 1-1e-10 || math.Abs(c-math.Round(c)) > 1e-10*c {
		return &InvalidThicknessDiscretizationError{t, dz}
	}
	return nil
}
