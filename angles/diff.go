// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package angles compares orientation angles given in degrees
package angles

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Diff returns the signed difference a2 - a1 [degrees] reduced to (-180, 180].
// Differences of exactly -180 and +180 are returned unchanged.
// NaN and ±Inf are returned as computed (no correction is applied).
//  abs -- return |a2 - a1| instead
func Diff(a1, a2 float64, abs bool) float64 {
	d := wrap(a2 - a1)
	if abs {
		return math.Abs(d)
	}
	return d
}

// Diffs computes Diff for each pair (a1[i], a2[i]). A slice of length 1 is
// broadcast against the other one.
func Diffs(a1, a2 []float64, abs bool) (res []float64, err error) {
	n1, n2 := len(a1), len(a2)
	n := n1
	switch {
	case n1 == n2:
	case n1 == 1:
		n = n2
	case n2 == 1:
	default:
		return nil, chk.Err("angles: cannot compare %d angles with %d angles", n1, n2)
	}
	res = make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = Diff(a1[i%n1], a2[i%n2], abs)
	}
	return
}

// wrap adds or subtracts full turns until d is within [-180, 180]
func wrap(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return d
	}
	if d >= -180 && d <= 180 {
		return d
	}
	d = math.Mod(d, 360)
	if d < -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}
