// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gridmap maps grid indices to world coordinates and back
package gridmap

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/twpayne/go-geom"
)

// ErrUnsupportedMode is returned (wrapped) when a map or convolution mode is not available
var ErrUnsupportedMode = errors.New("unsupported mode")

// Mode defines the kind of map
type Mode string

// Linear maps y = step・x + shift
const Linear Mode = "linear"

// check returns an error if mode is not supported
func (o Mode) check() error {
	if o != Linear {
		return fmt.Errorf("gridmap: map mode %q: %w", string(o), ErrUnsupportedMode)
	}
	return nil
}

// Forward1d maps grid coordinate x to world coordinate: step・x + shift
func Forward1d(x, step, shift float64, mode Mode) (float64, error) {
	if err := mode.check(); err != nil {
		return 0, err
	}
	return step*x + shift, nil
}

// Inverse1d maps world coordinate y to grid coordinate: (y - shift) / step
func Inverse1d(y, step, shift float64, mode Mode) (float64, error) {
	if err := mode.check(); err != nil {
		return 0, err
	}
	return (y - shift) / step, nil
}

// Map holds one step and one shift for each axis (x, y and, optionally, z)
type Map struct {
	Steps  []float64 // grid spacing
	Shifts []float64 // world coordinate of grid index zero
	Mode   Mode      // only Linear is available
}

// NewMap returns a new map with 1, 2 or 3 axes
func NewMap(mode Mode, steps, shifts []float64) (o *Map, err error) {
	if err = mode.check(); err != nil {
		return
	}
	if len(steps) != len(shifts) {
		return nil, chk.Err("gridmap: number of steps (%d) and shifts (%d) must be equal", len(steps), len(shifts))
	}
	if len(steps) < 1 || len(steps) > 3 {
		return nil, chk.Err("gridmap: number of axes must be 1, 2 or 3. %d is invalid", len(steps))
	}
	o = &Map{Steps: steps, Shifts: shifts, Mode: mode}
	return
}

// Ndim returns the number of axes
func (o Map) Ndim() int {
	return len(o.Steps)
}

// Forward maps grid coordinates c to world coordinates. Ordinates beyond Ndim are copied
func (o Map) Forward(c geom.Coord) (geom.Coord, error) {
	return o.apply(c, Forward1d)
}

// Inverse maps world coordinates c to grid coordinates. Ordinates beyond Ndim are copied
func (o Map) Inverse(c geom.Coord) (geom.Coord, error) {
	return o.apply(c, Inverse1d)
}

// ForwardPoint maps the spatial ordinates of a point from grid to world
func (o Map) ForwardPoint(p *geom.Point) (*geom.Point, error) {
	return o.applyPoint(p, Forward1d)
}

// InversePoint maps the spatial ordinates of a point from world to grid
func (o Map) InversePoint(p *geom.Point) (*geom.Point, error) {
	return o.applyPoint(p, Inverse1d)
}

// apply runs fcn over each axis
func (o Map) apply(c geom.Coord, fcn func(v, step, shift float64, mode Mode) (float64, error)) (res geom.Coord, err error) {
	if len(c) < o.Ndim() {
		return nil, chk.Err("gridmap: coordinate has %d ordinates but map has %d axes", len(c), o.Ndim())
	}
	res = c.Clone()
	for i := 0; i < o.Ndim(); i++ {
		res[i], err = fcn(c[i], o.Steps[i], o.Shifts[i], o.Mode)
		if err != nil {
			return nil, err
		}
	}
	return
}

// applyPoint runs fcn over x, y and z (if present); M is copied
func (o Map) applyPoint(p *geom.Point, fcn func(v, step, shift float64, mode Mode) (float64, error)) (*geom.Point, error) {
	if p.Empty() {
		return nil, chk.Err("gridmap: cannot map empty point")
	}
	idx := []int{0, 1}
	if iz := p.Layout().ZIndex(); iz > 0 {
		idx = append(idx, iz)
	}
	if o.Ndim() > len(idx) {
		return nil, chk.Err("gridmap: point with layout %v has %d spatial ordinates but map has %d axes", p.Layout(), len(idx), o.Ndim())
	}
	res := p.Coords().Clone()
	for i := 0; i < o.Ndim(); i++ {
		k := idx[i]
		v, err := fcn(res[k], o.Steps[i], o.Shifts[i], o.Mode)
		if err != nil {
			return nil, err
		}
		res[k] = v
	}
	return geom.NewPointFlat(p.Layout(), res).SetSRID(p.SRID()), nil
}
