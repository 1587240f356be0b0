// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// ToPrincipal computes the horizontal principal stresses s1 ≥ s3 and the angle θ
// [degrees] of s1 measured counter-clockwise from the x-axis; θ is in (-90, 90].
// This is the inverse of FromPrincipal
func ToPrincipal(sxx, syy, sxy float64) (s1, s3, θ float64) {
	c := (sxx + syy) / 2.0
	r := math.Hypot((sxx-syy)/2.0, sxy)
	s1, s3 = c+r, c-r
	θ = 0.5 * math.Atan2(2.0*sxy, sxx-syy) * 180.0 / math.Pi
	if θ <= -90 {
		θ += 180
	}
	return
}

// Azimuth returns the azimuth [degrees] of s1, clockwise from north, in [0, 180)
func Azimuth(sxx, syy, sxy float64) float64 {
	_, _, θ := ToPrincipal(sxx, syy, sxy)
	az := 90.0 - θ
	if az >= 180 {
		az -= 180
	}
	return az
}

// RotateHorizontal computes the horizontal components w.r.t axes rotated by β
// [degrees] counter-clockwise about z
func RotateHorizontal(sxx, syy, sxy, β float64) (sxxR, syyR, sxyR float64) {
	βr := β * math.Pi / 180.0
	si, co := math.Sin(βr), math.Cos(βr)
	ss, cc, cs := si*si, co*co, co*si
	sxxR = cc*sxx + ss*syy + 2.0*cs*sxy
	syyR = ss*sxx + cc*syy - 2.0*cs*sxy
	sxyR = -cs*sxx + cs*syy + (cc-ss)*sxy
	return
}
