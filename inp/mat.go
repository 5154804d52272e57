// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Material holds the read-only properties of one material
type Material struct {
	Name     string  `json:"name"`     // name; e.g. "steel"
	Density  float64 `json:"density"`  // [kg/m³]
	Young    float64 `json:"young"`    // elastic modulus [Pa]
	Poisson  float64 `json:"poisson"`  // Poisson's ratio
	Yield    float64 `json:"yield"`    // yield strength [Pa]
	Ultimate float64 `json:"ultimate"` // ultimate strength [Pa]
	Fatigue  float64 `json:"fatigue"`  // fatigue limit [Pa]
	Cost     float64 `json:"cost"`     // cost per kg [USD]
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials []*Material `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// Get returns a material by name or nil
func (o *MatDb) Get(name string) *Material {
	return o.byName[name]
}

// index fills the name map
func (o *MatDb) index() error {
	o.byName = make(map[string]*Material)
	for _, m := range o.Materials {
		if m.Name == "" {
			return chk.Err("material without name in database")
		}
		if _, ok := o.byName[m.Name]; ok {
			return chk.Err("duplicate material %q in database", m.Name)
		}
		if m.Density <= 0 || m.Young <= 0 {
			return chk.Err("material %q: density and elastic modulus must be positive", m.Name)
		}
		o.byName[m.Name] = m
	}
	return nil
}

// ReadMat reads a materials database from a .mat JSON file
func ReadMat(fnpath string) (mdb *MatDb, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("ReadMat: cannot read materials file %q:\n%v", fnpath, err)
	}
	mdb = new(MatDb)
	if err = json.Unmarshal(b, mdb); err != nil {
		return nil, chk.Err("ReadMat: cannot unmarshal materials file %q:\n%v", fnpath, err)
	}
	if err = mdb.index(); err != nil {
		return nil, err
	}
	return
}

// DefaultMats returns the built-in materials database
func DefaultMats() *MatDb {
	mdb := &MatDb{Materials: []*Material{
		{Name: "steel", Density: 7850, Young: 200e9, Poisson: 0.30, Yield: 250e6, Ultimate: 400e6, Fatigue: 120e6, Cost: 1.5},
		{Name: "aluminum", Density: 2700, Young: 70e9, Poisson: 0.33, Yield: 276e6, Ultimate: 310e6, Fatigue: 90e6, Cost: 4.0},
		{Name: "carbon_fiber", Density: 1600, Young: 150e9, Poisson: 0.25, Yield: 800e6, Ultimate: 1000e6, Fatigue: 400e6, Cost: 50.0},
	}}
	mdb.index()
	return mdb
}
