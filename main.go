// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/geoplusplus/halfspace/ana"
	"github.com/geoplusplus/halfspace/angles"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	strike := io.ArgToFloat(0, 0)
	dip := io.ArgToFloat(1, 90)
	sxx := io.ArgToFloat(2, 0)
	syy := io.ArgToFloat(3, 0)
	szz := io.ArgToFloat(4, 0)
	sxy := io.ArgToFloat(5, 0)
	syz := io.ArgToFloat(6, 0)
	sxz := io.ArgToFloat(7, 0)
	rho := io.ArgToFloat(8, 2700)
	g := io.ArgToFloat(9, 9.81)
	depth := io.ArgToFloat(10, 0)
	phi := io.ArgToFloat(11, 0)
	obsSlip := io.ArgToFloat(12, math.NaN())
	verbose := io.ArgToBool(13, true)

	// message
	if verbose {
		io.Pf("\nhalfspace -- stresses resolved on a fault plane\n\n")
		io.Pf("%-28s %12s = %v\n", "strike [deg]", "strike", strike)
		io.Pf("%-28s %12s = %v\n", "dip [deg]", "dip", dip)
		io.Pf("%-28s %12s = %v %v %v\n", "normal components", "sxx syy szz", sxx, syy, szz)
		io.Pf("%-28s %12s = %v %v %v\n", "shear components", "sxy syz sxz", sxy, syz, sxz)
		io.Pf("%-28s %12s = %v\n", "density", "rho", rho)
		io.Pf("%-28s %12s = %v\n", "gravity", "g", g)
		io.Pf("%-28s %12s = %v\n", "depth", "depth", depth)
		io.Pf("%-28s %12s = %v\n", "pore pressure fraction", "phi", phi)
		io.Pf("%-28s %12s = %v\n\n", "observed slip angle [deg]", "obsSlip", obsSlip)
	}

	// model
	var mdl ana.Model
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "rho", V: rho},
		&dbf.P{N: "g", V: g},
		&dbf.P{N: "depth", V: depth},
		&dbf.P{N: "phi", V: phi},
	})
	if err != nil {
		chk.Panic("cannot initialise model:\n%v", err)
	}

	// resolve
	p := ana.Plane{Strike: strike, Dip: dip}
	m := ana.Tensor{Sxx: sxx, Syy: syy, Szz: szz, Sxy: sxy, Syz: syz, Sxz: sxz}
	res := mdl.Resolve(p, m)

	// results
	io.Pforan("strike shear    τs = %g\n", res.StrikeShear)
	io.Pforan("dip shear       τd = %g\n", res.DipShear)
	io.Pforan("eff. normal     σn = %g\n", res.EffNormal)
	io.Pforan("shear magnitude |τ| = %g\n", res.Shear())
	io.Pforan("slip angle         = %g\n", res.SlipAngle())
	if !math.IsNaN(obsSlip) {
		io.Pforan("slip misfit        = %g\n", angles.Diff(res.SlipAngle(), obsSlip, true))
	}
}
