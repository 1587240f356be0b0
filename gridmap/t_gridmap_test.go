// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gridmap

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func Test_gridmap01(tst *testing.T) {

	chk.PrintTitle("gridmap01. 1d maps")

	y, err := Forward1d(3, 2, 10, Linear)
	require.NoError(tst, err)
	require.InDelta(tst, 16.0, y, 1e-15)

	x, err := Inverse1d(16, 2, 10, Linear)
	require.NoError(tst, err)
	require.InDelta(tst, 3.0, x, 1e-15)

	// integer-like steps still divide as reals
	x, err = Inverse1d(5, 2, 0, Linear)
	require.NoError(tst, err)
	require.InDelta(tst, 2.5, x, 1e-15)

	_, err = Forward1d(3, 2, 10, "log")
	require.ErrorIs(tst, err, ErrUnsupportedMode)

	_, err = Inverse1d(3, 2, 10, "")
	require.ErrorIs(tst, err, ErrUnsupportedMode)
}

func Test_gridmap02(tst *testing.T) {

	chk.PrintTitle("gridmap02. coordinates")

	m, err := NewMap(Linear, []float64{10, -10, 2}, []float64{500000, 4200000, -100})
	require.NoError(tst, err)
	require.Equal(tst, 3, m.Ndim())

	w, err := m.Forward(geom.Coord{1, 2, 3})
	require.NoError(tst, err)
	require.InDeltaSlice(tst, []float64{500010, 4199980, -94}, []float64(w), 1e-9)

	g, err := m.Inverse(w)
	require.NoError(tst, err)
	require.InDeltaSlice(tst, []float64{1, 2, 3}, []float64(g), 1e-9)

	// extra ordinates are copied
	m2, err := NewMap(Linear, []float64{0.5, 0.5}, []float64{1, 1})
	require.NoError(tst, err)
	g, err = m2.Inverse(geom.Coord{2, 3, 7})
	require.NoError(tst, err)
	require.InDeltaSlice(tst, []float64{2, 4, 7}, []float64(g), 1e-15)

	// the input is not modified
	c := geom.Coord{2, 3}
	_, err = m2.Forward(c)
	require.NoError(tst, err)
	require.Equal(tst, geom.Coord{2, 3}, c)

	_, err = m.Forward(geom.Coord{1, 2})
	require.Error(tst, err)
}

func Test_gridmap03(tst *testing.T) {

	chk.PrintTitle("gridmap03. invalid maps")

	_, err := NewMap("nonlinear", []float64{1}, []float64{0})
	require.ErrorIs(tst, err, ErrUnsupportedMode)

	_, err = NewMap(Linear, []float64{1, 2}, []float64{0})
	require.Error(tst, err)

	_, err = NewMap(Linear, nil, nil)
	require.Error(tst, err)

	_, err = NewMap(Linear, []float64{1, 1, 1, 1}, []float64{0, 0, 0, 0})
	require.Error(tst, err)

	m := Map{Steps: []float64{1}, Shifts: []float64{0}, Mode: "cubic"}
	_, err = m.Forward(geom.Coord{1, 2})
	require.ErrorIs(tst, err, ErrUnsupportedMode)
}

func Test_gridmap04(tst *testing.T) {

	chk.PrintTitle("gridmap04. points")

	m, err := NewMap(Linear, []float64{10, 10, 5}, []float64{100, 200, 0})
	require.NoError(tst, err)

	p := geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}).SetSRID(32633)
	q, err := m.ForwardPoint(p)
	require.NoError(tst, err)
	require.Equal(tst, geom.XYZ, q.Layout())
	require.Equal(tst, 32633, q.SRID())
	require.InDeltaSlice(tst, []float64{110, 220, 15}, q.FlatCoords(), 1e-12)
	require.InDeltaSlice(tst, []float64{1, 2, 3}, p.FlatCoords(), 1e-15)

	r, err := m.InversePoint(q)
	require.NoError(tst, err)
	require.InDeltaSlice(tst, []float64{1, 2, 3}, r.FlatCoords(), 1e-12)

	// M is not a spatial ordinate
	m2, err := NewMap(Linear, []float64{10, 10}, []float64{100, 200})
	require.NoError(tst, err)
	pm := geom.NewPointFlat(geom.XYZM, []float64{1, 2, 3, 42})
	q, err = m2.ForwardPoint(pm)
	require.NoError(tst, err)
	require.InDeltaSlice(tst, []float64{110, 220, 3, 42}, q.FlatCoords(), 1e-12)

	_, err = m.ForwardPoint(geom.NewPointFlat(geom.XYM, []float64{1, 2, 3}))
	require.Error(tst, err)

	_, err = m.ForwardPoint(geom.NewPointEmpty(geom.XY))
	require.Error(tst, err)
}

func Test_convsize01(tst *testing.T) {

	chk.PrintTitle("convsize01")

	res, err := ConvSize([]int{5, 4}, []int{3, 3}, Full)
	require.NoError(tst, err)
	require.Equal(tst, []int{7, 6}, res)

	res, err = ConvSize([]int{5, 4}, []int{3, 3}, Same)
	require.NoError(tst, err)
	require.Equal(tst, []int{5, 4}, res)

	res, err = ConvSize([]int{3, 3}, []int{5, 4}, Same)
	require.NoError(tst, err)
	require.Equal(tst, []int{5, 4}, res)

	res, err = ConvSize([]int{5, 4}, []int{3, 3}, Valid)
	require.NoError(tst, err)
	require.Equal(tst, []int{3, 2}, res)

	_, err = ConvSize([]int{5, 4}, []int{3, 3}, "circular")
	require.ErrorIs(tst, err, ErrUnsupportedMode)

	_, err = ConvSize([]int{5, 4}, []int{3}, Full)
	require.Error(tst, err)
}
