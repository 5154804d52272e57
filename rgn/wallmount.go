// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgn

import (
	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
)

// WallMountSet builds the predicate set of the TV wall mount. Two layers
// are classified: the wall plate at the back (z from 0 to twall) and the
// TV mounting surface at the front (z from D-tmount to D); everything in
// between stays optimizable. The box proportions reproduce the reference
// 10×8×6 design scaled to the domain:
//
//	wall plate solid    x ∈ (0.4W, 0.6W)
//	wall plate voids    x ∈ (0, 0.4W) ∪ (0.6W, W)
//	corner supports     x ∈ (0.1W, 0.3W) ∪ (0.7W, 0.9W)
//	side supports       x ∈ (0.3W, 0.7W), y ∈ (0, 0.375H) ∪ (0.625H, H)
//	center mount        x ∈ (0.3W, 0.7W), y ∈ (0.375H, 0.625H)
//	top/bottom cutouts  same boxes as the side supports
//	left/right voids    x ∈ (0, 0.1W) ∪ (0.9W, W)
//
// The side supports and the top/bottom cutouts cover the same boxes on
// purpose: the solid tier wins by the first-match-wins policy
func WallMountSet(dom msh.Domain, twall, tmount float64) *PredicateSet {
	W, H, D := dom.W, dom.H, dom.D
	zback := Box{Z0: 0, Z1: twall}
	zfront := Box{Z0: D - tmount, Z1: D}
	return &PredicateSet{
		Solid: []Predicate{
			Boxes("wall_plate",
				Box{0.4 * W, 0.6 * W, 0, H, zback.Z0, zback.Z1},
			),
			Boxes("corner_support",
				Box{0.1 * W, 0.3 * W, 0, H, zfront.Z0, zfront.Z1},
				Box{0.7 * W, 0.9 * W, 0, H, zfront.Z0, zfront.Z1},
			),
			Boxes("side_support",
				Box{0.3 * W, 0.7 * W, 0, 0.375 * H, zfront.Z0, zfront.Z1},
				Box{0.3 * W, 0.7 * W, 0.625 * H, H, zfront.Z0, zfront.Z1},
			),
			Boxes("center_mount",
				Box{0.3 * W, 0.7 * W, 0.375 * H, 0.625 * H, zfront.Z0, zfront.Z1},
			),
		},
		Void: []Predicate{
			Boxes("wall_void",
				Box{0, 0.4 * W, 0, H, zback.Z0, zback.Z1},
				Box{0.6 * W, W, 0, H, zback.Z0, zback.Z1},
			),
			Boxes("cutout_top_bottom",
				Box{0.3 * W, 0.7 * W, 0, 0.375 * H, zfront.Z0, zfront.Z1},
				Box{0.3 * W, 0.7 * W, 0.625 * H, H, zfront.Z0, zfront.Z1},
			),
			Boxes("cutout_left_right",
				Box{0, 0.1 * W, 0, H, zfront.Z0, zfront.Z1},
				Box{0.9 * W, W, 0, H, zfront.Z0, zfront.Z1},
			),
		},
	}
}
