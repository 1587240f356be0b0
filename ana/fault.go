// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Plane holds the orientation of a fault plane
//
//  Strike -- azimuth of the horizontal trace [degrees], clockwise from north
//  Dip    -- angle below the horizontal [degrees]; the plane dips to the
//            right of the strike direction
//
// Values are not clamped; out-of-range angles go straight to the trig functions.
type Plane struct {
	Strike float64
	Dip    float64
}

// trig returns sin and cos of strike and dip
func (o Plane) trig() (ss, cs, sd, cd float64) {
	sr := o.Strike * math.Pi / 180.0
	dr := o.Dip * math.Pi / 180.0
	return math.Sin(sr), math.Cos(sr), math.Sin(dr), math.Cos(dr)
}

// Traction holds the stress resolved on a plane
type Traction struct {
	StrikeShear float64 // τs: shear along strike
	DipShear    float64 // τd: shear along dip (positive down-dip)
	EffNormal   float64 // σn: effective normal stress
}

// Shear returns the magnitude of the shear traction
func (o Traction) Shear() float64 {
	return math.Hypot(o.StrikeShear, o.DipShear)
}

// SlipAngle returns the direction of the shear traction within the plane
// [degrees], measured from the strike direction towards down-dip
func (o Traction) SlipAngle() float64 {
	return math.Atan2(o.DipShear, o.StrikeShear) * 180.0 / math.Pi
}

// Model holds the physical parameters used to resolve stresses on a fault at depth.
// The input tensor is augmented by a lithostatic term p = ρ・g・depth
//
//    σxx' = σxx + p + p・txx
//    σyy' = σyy + p + p・tyy
//    σzz' = σzz + p
//    σxy' = σxy + p・txy
//
// and, for the normal stress only, reduced by the pore pressure
//
//    pf = φ・(σxx' + σyy' + σzz') / 3
//
type Model struct {
	Rho   float64 // ρ: density
	G     float64 // g: gravitational acceleration
	Depth float64 // depth of the fault point
	Txx   float64 // horizontal xx gradient multiplier
	Tyy   float64 // horizontal yy gradient multiplier
	Txy   float64 // horizontal xy gradient multiplier
	Phi   float64 // φ: fraction of mean stress carried by the pore fluid
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) error {

	// default values
	o.Rho = 2700.0
	o.G = 9.81
	o.Depth = 0
	o.Txx, o.Tyy, o.Txy = 0, 0, 0
	o.Phi = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "g":
			o.G = p.V
		case "depth":
			o.Depth = p.V
		case "txx":
			o.Txx = p.V
		case "tyy":
			o.Tyy = p.V
		case "txy":
			o.Txy = p.V
		case "phi":
			o.Phi = p.V
		default:
			return chk.Err("ana: parameter named %q is not available in fault model", p.N)
		}
	}
	return nil
}

// Lithostatic returns p = ρ・g・depth
func (o Model) Lithostatic() float64 {
	return o.Rho * o.G * o.Depth
}

// Augment adds the lithostatic terms to m
func (o Model) Augment(m Tensor) Tensor {
	p := o.Lithostatic()
	m.Sxx += p + p*o.Txx
	m.Syy += p + p*o.Tyy
	m.Szz += p
	m.Sxy += p * o.Txy
	return m
}

// PorePressure returns the fluid pressure φ・tr(σ')/3
func (o Model) PorePressure(m Tensor) float64 {
	return o.Phi * o.Augment(m).Mean()
}

// StrikeShear computes the shear stress along strike
func (o Model) StrikeShear(p Plane, m Tensor) float64 {
	a := o.Augment(m)
	ss, cs, sd, cd := p.trig()
	tx := a.Sxx*ss + a.Sxy*cs
	ty := a.Sxy*ss + a.Syy*cs
	tz := a.Sxz*ss + a.Syz*cs
	return cs*sd*tx - ss*sd*ty - cd*tz
}

// DipShear computes the shear stress along dip
func (o Model) DipShear(p Plane, m Tensor) float64 {
	a := o.Augment(m)
	ss, cs, sd, cd := p.trig()
	tx := a.Sxx*cd*cs - a.Sxy*cd*ss + a.Sxz*sd
	ty := a.Sxy*cd*cs - a.Syy*cd*ss + a.Syz*sd
	tz := a.Sxz*cd*cs - a.Syz*cd*ss + a.Szz*sd
	return cs*sd*tx - ss*sd*ty - cd*tz
}

// EffNormalStress computes the effective normal stress. With φ = 0 this is the
// normal component of the augmented tensor
func (o Model) EffNormalStress(p Plane, m Tensor) float64 {
	a := o.Augment(m).AddIso(-o.PorePressure(m))
	ss, cs, sd, cd := p.trig()
	tx := a.Sxx*cs*sd - a.Sxy*ss*sd - a.Sxz*cd
	ty := a.Sxy*cs*sd - a.Syy*ss*sd - a.Syz*cd
	tz := a.Sxz*cs*sd - a.Syz*ss*sd - a.Szz*cd
	return cs*sd*tx - ss*sd*ty - cd*tz
}

// Resolve computes all tractions on plane p
func (o Model) Resolve(p Plane, m Tensor) Traction {
	return Traction{
		StrikeShear: o.StrikeShear(p, m),
		DipShear:    o.DipShear(p, m),
		EffNormal:   o.EffNormalStress(p, m),
	}
}
