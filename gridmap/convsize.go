// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridmap

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// ConvMode defines the size of a convolution output
type ConvMode string

// convolution modes
const (
	Full  ConvMode = "full"  // all overlaps: a1 + a2 - 1
	Same  ConvMode = "same"  // size of the larger operand
	Valid ConvMode = "valid" // complete overlaps only: |a2 - a1| + 1
)

// ConvSize computes the dimensions of the output of convolving arrays with
// dimensions a1 and a2. With Same, the larger operand is the one with more elements
func ConvSize(a1, a2 []int, mode ConvMode) (res []int, err error) {
	if len(a1) != len(a2) {
		return nil, chk.Err("gridmap: dimensions of convolved arrays must have the same length. %d != %d", len(a1), len(a2))
	}
	res = make([]int, len(a1))
	switch mode {
	case Full:
		for i := range a1 {
			res[i] = a1[i] + a2[i] - 1
		}
	case Same:
		if prod(a1) > prod(a2) {
			copy(res, a1)
		} else {
			copy(res, a2)
		}
	case Valid:
		for i := range a1 {
			res[i] = a2[i] - a1[i]
			if res[i] < 0 {
				res[i] = -res[i]
			}
			res[i]++
		}
	default:
		return nil, fmt.Errorf("gridmap: convolution mode %q: %w", string(mode), ErrUnsupportedMode)
	}
	return
}

// prod returns the number of elements
func prod(a []int) (n int) {
	n = 1
	for _, v := range a {
		n *= v
	}
	return
}
