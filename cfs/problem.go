// Copyright 2025 Prashanth Gadwala. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfs compiles openCFS problem-definition documents and defines
// the client interface to the external solver process
package cfs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/prashanthgadwala/3d-topo-tv-mount/inp"
	"github.com/prashanthgadwala/3d-topo-tv-mount/msh"
)

// Problem compiles the openCFS simulation document for one load case. The
// document references the regions "mech" and "solid", fixes the
// "back_support" node set and applies one distributed force per mounting
// point with Cartesian components magnitude·direction. The output is fully
// determined by the inputs: compiling twice yields identical bytes
func Problem(lc *inp.LoadCase, nmounts int, opt inp.OptData) *bytes.Buffer {

	// header and static comments
	buf := new(bytes.Buffer)
	io.Ff(buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n\n")
	io.Ff(buf, "<cfsSimulation xmlns=\"http://www.cfs++.org/simulation\"\n")
	io.Ff(buf, "  xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"\n")
	io.Ff(buf, "  xsi:schemaLocation=\"http://www.cfs++.org/simulation\n")
	io.Ff(buf, "  https://opencfs.gitlab.io/cfs/xml/CFS-Simulation/CFS.xsd\">\n\n")
	io.Ff(buf, "  <!-- %s -->\n", lc.Desc)
	io.Ff(buf, "  <!-- Load Case: %s -->\n", lc.Name)
	io.Ff(buf, "  <!-- Safety Factor: %g -->\n\n", lc.SafetyFactor)

	// file formats
	io.Ff(buf, "  <fileFormats>\n")
	io.Ff(buf, "    <output>\n")
	io.Ff(buf, "      <hdf5 directory=\"results_%s\"/>\n", lc.Name)
	io.Ff(buf, "      <info/>\n")
	io.Ff(buf, "    </output>\n")
	io.Ff(buf, "    <materialData file=\"mat.xml\" format=\"xml\"/>\n")
	io.Ff(buf, "  </fileFormats>\n\n")

	// domain
	io.Ff(buf, "  <domain geometryType=\"3d\">\n")
	io.Ff(buf, "    <regionList>\n")
	io.Ff(buf, "      <region name=\"%s\" material=\"99lines\"/>\n", msh.RegionMech)
	io.Ff(buf, "      <region name=\"%s\" material=\"99lines\"/>\n", msh.RegionSolid)
	io.Ff(buf, "    </regionList>\n")
	io.Ff(buf, "  </domain>\n\n")

	// analysis
	io.Ff(buf, "  <sequenceStep index=\"1\">\n")
	io.Ff(buf, "    <analysis>\n")
	io.Ff(buf, "      <static/>\n")
	io.Ff(buf, "    </analysis>\n\n")
	io.Ff(buf, "    <pdeList>\n")
	io.Ff(buf, "      <mechanic subType=\"3d\">\n")
	io.Ff(buf, "        <regionList>\n")
	io.Ff(buf, "          <region name=\"%s\"/>\n", msh.RegionMech)
	io.Ff(buf, "          <region name=\"%s\"/>\n", msh.RegionSolid)
	io.Ff(buf, "        </regionList>\n\n")

	// boundary conditions and loads
	io.Ff(buf, "        <bcsAndLoads>\n")
	io.Ff(buf, "          <fix name=\"back_support\">\n")
	io.Ff(buf, "            <comp dof=\"x\"/>\n")
	io.Ff(buf, "            <comp dof=\"y\"/>\n")
	io.Ff(buf, "            <comp dof=\"z\"/>\n")
	io.Ff(buf, "          </fix>\n")
	for i := 0; i < nmounts; i++ {
		fx := lc.Magnitude * lc.Direction.X
		fy := lc.Magnitude * lc.Direction.Y
		fz := lc.Magnitude * lc.Direction.Z
		io.Ff(buf, "          <force name=\"%s_force_%d\">\n", lc.Name, i+1)
		io.Ff(buf, "            <comp dof=\"x\" value=\"%.6f\"/>\n", fx)
		io.Ff(buf, "            <comp dof=\"y\" value=\"%.6f\"/>\n", fy)
		io.Ff(buf, "            <comp dof=\"z\" value=\"%.6f\"/>\n", fz)
		io.Ff(buf, "          </force>\n")
	}
	io.Ff(buf, "        </bcsAndLoads>\n\n")

	// result exports
	io.Ff(buf, "        <storeResults>\n")
	io.Ff(buf, "          <nodeResult type=\"mechDisplacement\">\n")
	io.Ff(buf, "            <regionList>\n")
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionMech)
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionSolid)
	io.Ff(buf, "            </regionList>\n")
	io.Ff(buf, "          </nodeResult>\n")
	io.Ff(buf, "          <elemResult type=\"physicalPseudoDensity\">\n")
	io.Ff(buf, "            <regionList>\n")
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionMech)
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionSolid)
	io.Ff(buf, "            </regionList>\n")
	io.Ff(buf, "          </elemResult>\n")
	io.Ff(buf, "          <elemResult type=\"optResult_1\">\n")
	io.Ff(buf, "            <regionList>\n")
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionMech)
	io.Ff(buf, "            </regionList>\n")
	io.Ff(buf, "          </elemResult>\n")
	io.Ff(buf, "          <elemResult type=\"mechStress\">\n")
	io.Ff(buf, "            <regionList>\n")
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionMech)
	io.Ff(buf, "              <region name=\"%s\"/>\n", msh.RegionSolid)
	io.Ff(buf, "            </regionList>\n")
	io.Ff(buf, "          </elemResult>\n")
	io.Ff(buf, "        </storeResults>\n")
	io.Ff(buf, "      </mechanic>\n")
	io.Ff(buf, "    </pdeList>\n\n")

	// linear system
	io.Ff(buf, "    <linearSystems>\n")
	io.Ff(buf, "      <system>\n")
	io.Ff(buf, "        <solverList>\n")
	io.Ff(buf, "          <cholmod/>\n")
	io.Ff(buf, "        </solverList>\n")
	io.Ff(buf, "      </system>\n")
	io.Ff(buf, "    </linearSystems>\n")
	io.Ff(buf, "  </sequenceStep>\n\n")

	// optimization block
	io.Ff(buf, "  <optimization>\n")
	io.Ff(buf, "    <costFunction type=\"compliance\" task=\"minimize\">\n")
	io.Ff(buf, "      <stopping queue=\"999\" value=\"%g\" type=\"designChange\"/>\n", opt.ConvTol)
	io.Ff(buf, "    </costFunction>\n\n")
	io.Ff(buf, "    <constraint type=\"volume\" value=\"%g\" bound=\"upperBound\" linear=\"false\" mode=\"constraint\"/>\n", opt.VolFrac)
	io.Ff(buf, "    <constraint type=\"volume\" mode=\"observation\" access=\"physical\"/>\n")
	io.Ff(buf, "    <constraint type=\"greyness\" mode=\"observation\"/>\n")
	io.Ff(buf, "    <constraint type=\"greyness\" mode=\"observation\" access=\"physical\"/>\n\n")
	io.Ff(buf, "    <optimizer type=\"optimalityCondition\" maxIterations=\"%d\">\n", opt.MaxIt)
	io.Ff(buf, "      <snopt>\n")
	io.Ff(buf, "        <option name=\"major_feasibility_tolerance\" type=\"real\" value=\"1e-9\"/>\n")
	io.Ff(buf, "      </snopt>\n")
	io.Ff(buf, "    </optimizer>\n\n")
	io.Ff(buf, "    <ersatzMaterial region=\"%s\" material=\"mechanic\" method=\"simp\">\n", msh.RegionMech)
	io.Ff(buf, "      <filters>\n")
	io.Ff(buf, "        <filter neighborhood=\"maxEdge\" value=\"%g\" type=\"density\"/>\n", opt.FilterRad)
	io.Ff(buf, "      </filters>\n\n")
	io.Ff(buf, "      <design name=\"density\" initial=\"%g\" physical_lower=\"1e-9\" upper=\"1.0\"/>\n\n", opt.VolFrac)
	io.Ff(buf, "      <transferFunction type=\"simp\" application=\"mech\" param=\"%g\"/>\n", opt.Penalty)
	io.Ff(buf, "      <export save=\"last\" write=\"iteration\" compress=\"false\"/>\n")
	io.Ff(buf, "      <result value=\"costGradient\" id=\"optResult_1\"/>\n")
	io.Ff(buf, "    </ersatzMaterial>\n")
	io.Ff(buf, "    <commit mode=\"each_forward\" stride=\"1\"/>\n")
	io.Ff(buf, "  </optimization>\n")
	io.Ff(buf, "</cfsSimulation>\n")
	return buf
}

// WriteProblem compiles and writes the problem document for one load case
// under dirout as TvSupport_<case>.xml, returning the filename path
func WriteProblem(dirout string, lc *inp.LoadCase, nmounts int, opt inp.OptData) (fnpath string, err error) {
	buf := Problem(lc, nmounts, opt)
	fnpath = filepath.Join(dirout, io.Sf("TvSupport_%s.xml", lc.Name))
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", &msh.SerializationIOError{Filename: fnpath, Err: err}
	}
	if err = os.WriteFile(fnpath, buf.Bytes(), 0666); err != nil {
		return "", &msh.SerializationIOError{Filename: fnpath, Err: err}
	}
	return
}
