// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Counts holds the entity counts of a serialized mesh file
type Counts struct {
	Nodes    int // number of nodes in [Info] and in the [Nodes] body
	Elements int // number of 3D elements in [Info] and in the [Elements] body
	Sets     int // number of named sets in [BoundaryConditions]
	BcNodes  int // NumNodeBC in [Info] and the sum of set sizes in the body
}

// ReadCounts reparses a mesh file written by Write, recounts nodes,
// elements and BC members from the section bodies and verifies them
// against the [Info] header. A mismatch means the file is truncated or was
// tampered with
func ReadCounts(fnpath string) (c Counts, err error) {

	// read file
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return c, &SerializationIOError{fnpath, err}
	}

	// scan sections
	var hdrNodes, hdrElems, hdrBcNodes int
	section := ""
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			section = line
			continue
		}
		switch section {
		case "[Info]":
			fields := strings.Fields(line)
			if len(fields) != 2 {
				continue
			}
			n, e := strconv.Atoi(fields[1])
			if e != nil {
				return c, chk.Err("cannot parse [Info] line %q in %q", line, fnpath)
			}
			switch fields[0] {
			case "NumNodes":
				hdrNodes = n
			case "Num3DElements":
				hdrElems = n
			case "NumNodeBC":
				hdrBcNodes = n
			}
		case "[Nodes]":
			c.Nodes++
		case "[Elements]":
			c.Elements++
		case "[BoundaryConditions]":
			fields := strings.Fields(line)
			if len(fields) != 3 || fields[2] != "nodes" {
				return c, chk.Err("cannot parse boundary condition line %q in %q", line, fnpath)
			}
			n, e := strconv.Atoi(fields[1])
			if e != nil {
				return c, chk.Err("cannot parse boundary condition line %q in %q", line, fnpath)
			}
			c.Sets++
			c.BcNodes += n
		}
	}
	if err = scanner.Err(); err != nil {
		return c, &SerializationIOError{fnpath, err}
	}

	// verify body against header
	if c.Nodes != hdrNodes {
		return c, chk.Err("node count mismatch in %q: header says %d but body has %d", fnpath, hdrNodes, c.Nodes)
	}
	if c.Elements != hdrElems {
		return c, chk.Err("element count mismatch in %q: header says %d but body has %d", fnpath, hdrElems, c.Elements)
	}
	if c.BcNodes != hdrBcNodes {
		return c, chk.Err("BC node count mismatch in %q: header says %d but body has %d", fnpath, hdrBcNodes, c.BcNodes)
	}
	return
}
