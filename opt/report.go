// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteReport writes a markdown report of the last Run under dirout.
// The content is fully determined by the summary
func (o *Main) WriteReport(dirout string) (fnpath string, err error) {
	if o.Summary == nil {
		return "", chk.Err("no summary available: call Run first")
	}
	s := o.Summary
	g := &o.Sim.Geo

	buf := new(bytes.Buffer)
	io.Ff(buf, "# TV Wall Mount Optimization Report\n\n")
	io.Ff(buf, "## Project Overview\n")
	io.Ff(buf, "**Material**: %s\n", s.Material)
	io.Ff(buf, "**Mesh**: %s\n\n", s.MeshPath)
	io.Ff(buf, "## Geometry Configuration\n")
	io.Ff(buf, "- Dimensions: %g x %g x %g m\n", g.Width, g.Height, g.Depth)
	io.Ff(buf, "- TV Weight: %g kg\n", g.TvWeight)
	io.Ff(buf, "- Mounting Points: %d\n", len(g.Mounts))
	io.Ff(buf, "- Wall Thickness: %g m\n\n", g.Twall)
	io.Ff(buf, "## Mesh\n")
	io.Ff(buf, "- Nodes: %d\n", s.Nodes)
	io.Ff(buf, "- Elements: %d (solid=%d void=%d mech=%d)\n\n", s.Elements, s.Counts.Solid, s.Counts.Void, s.Counts.Mech)
	io.Ff(buf, "## Load Case Analysis Results\n\n")
	for _, c := range s.Cases {
		io.Ff(buf, "### %s\n", c.Name)
		io.Ff(buf, "- **Max Stress**: %.2f MPa\n", c.MaxStress/1e6)
		io.Ff(buf, "- **Max Displacement**: %.3f mm\n", c.MaxDisplacement*1000)
		io.Ff(buf, "- **Compliance**: %.2e\n", c.Compliance)
		io.Ff(buf, "- **Safety Factor**: %g\n", c.SafetyFactor)
		io.Ff(buf, "- **Converged**: %v\n\n", c.Converged)
	}
	io.Ff(buf, "## Optimization Parameters\n")
	io.Ff(buf, "- Volume Fraction: %g\n", o.Sim.Opt.VolFrac)
	io.Ff(buf, "- Max Iterations: %d\n", o.Sim.Opt.MaxIt)
	io.Ff(buf, "- Filter Radius: %g\n", o.Sim.Opt.FilterRad)
	io.Ff(buf, "- Penalty Parameter: %g\n", o.Sim.Opt.Penalty)

	fnpath = filepath.Join(dirout, io.Sf("report_%s.md", o.Sim.Key))
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create report directory %q:\n%v", dirout, err)
	}
	if err = os.WriteFile(fnpath, buf.Bytes(), 0666); err != nil {
		return "", chk.Err("cannot write report %q:\n%v", fnpath, err)
	}
	return
}

// ExportJSON writes the summary of the last Run as JSON under dirout
func (o *Main) ExportJSON(dirout string) (fnpath string, err error) {
	if o.Summary == nil {
		return "", chk.Err("no summary available: call Run first")
	}
	b, err := json.MarshalIndent(o.Summary, "", "  ")
	if err != nil {
		return "", chk.Err("cannot marshal summary:\n%v", err)
	}
	fnpath = filepath.Join(dirout, io.Sf("results_%s.json", o.Sim.Key))
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create results directory %q:\n%v", dirout, err)
	}
	if err = os.WriteFile(fnpath, b, 0666); err != nil {
		return "", chk.Err("cannot write results %q:\n%v", fnpath, err)
	}
	return
}
