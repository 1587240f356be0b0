// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "math"

// Tensor holds the six independent components of a symmetric stress (or moment)
// tensor. The frame is x = east, y = north, z = down.
//
//        / Sxx Sxy Sxz \
//    σ = | Sxy Syy Syz |
//        \ Sxz Syz Szz /
//
type Tensor struct {
	Sxx, Syy, Szz float64 // normal components
	Sxy, Syz, Sxz float64 // shear components
}

// Trace returns σxx + σyy + σzz
func (o Tensor) Trace() float64 {
	return o.Sxx + o.Syy + o.Szz
}

// Mean returns the mean (isotropic) stress
func (o Tensor) Mean() float64 {
	return o.Trace() / 3.0
}

// Add returns o + b
func (o Tensor) Add(b Tensor) Tensor {
	return Tensor{
		Sxx: o.Sxx + b.Sxx, Syy: o.Syy + b.Syy, Szz: o.Szz + b.Szz,
		Sxy: o.Sxy + b.Sxy, Syz: o.Syz + b.Syz, Sxz: o.Sxz + b.Sxz,
	}
}

// AddIso returns o + p・I
func (o Tensor) AddIso(p float64) Tensor {
	o.Sxx += p
	o.Syy += p
	o.Szz += p
	return o
}

// Mat returns the full 3x3 matrix
func (o Tensor) Mat() [][]float64 {
	return [][]float64{
		{o.Sxx, o.Sxy, o.Sxz},
		{o.Sxy, o.Syy, o.Syz},
		{o.Sxz, o.Syz, o.Szz},
	}
}

// FromPrincipal computes the horizontal components of stress from the principal
// values s1 (maximum) and s3 (minimum) and the angle θ [degrees] of s1 measured
// counter-clockwise from the x-axis (east)
//
//    σxx = s1・cos²θ + s3・sin²θ
//    σyy = s1・sin²θ + s3・cos²θ
//    σxy = (s1 - s3)・sinθ・cosθ
//
func FromPrincipal(s1, s3, θ float64) (sxx, syy, sxy float64) {
	θr := θ * math.Pi / 180.0
	si, co := math.Sin(θr), math.Cos(θr)
	ss, cc := si*si, co*co
	sxx = s1*cc + s3*ss
	syy = s1*ss + s3*cc
	sxy = (s1 - s3) * si * co
	return
}

// FromAzimuth is like FromPrincipal but takes the azimuth of s1 [degrees]
// measured clockwise from north; i.e. the same convention used for strike
func FromAzimuth(s1, s3, az float64) (sxx, syy, sxy float64) {
	return FromPrincipal(s1, s3, 90.0-az)
}

// HorizontalTensor assembles a tensor with principal horizontal stresses s1 and
// s3, s1 oriented along azimuth az [degrees], and vertical stress sv
func HorizontalTensor(s1, s3, sv, az float64) Tensor {
	sxx, syy, sxy := FromAzimuth(s1, s3, az)
	return Tensor{Sxx: sxx, Syy: syy, Szz: sv, Sxy: sxy}
}
