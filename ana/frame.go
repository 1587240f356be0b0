// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/la"

// Frame computes the unit vectors attached to plane p (x = east, y = north, z = down)
//
//    s = ( sin(ψ),         cos(ψ),        0      )  strike
//    d = ( cos(δ)・cos(ψ), -cos(δ)・sin(ψ), sin(δ) )  down-dip
//    n = ( sin(δ)・cos(ψ), -sin(δ)・sin(ψ), -cos(δ) ) normal
//
// where ψ is the strike and δ is the dip
func Frame(p Plane) (s, d, n la.Vector) {
	ss, cs, sd, cd := p.trig()
	s = la.Vector{ss, cs, 0}
	d = la.Vector{cd * cs, -cd * ss, sd}
	n = la.Vector{sd * cs, -sd * ss, -cd}
	return
}

// RotationMatrix returns R with rows {s, d, n}, i.e. σ' = R・σ・Rᵀ is the tensor
// in the fault frame
func RotationMatrix(p Plane) *la.Matrix {
	s, d, n := Frame(p)
	return la.NewMatrixDeep2([][]float64{s, d, n})
}

// Rotate computes σ' = R・σ・Rᵀ. The last row of σ' holds {τs, τd, σn}
func Rotate(p Plane, m Tensor) *la.Matrix {
	R := RotationMatrix(p)
	Rt := la.NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Rt.Set(i, j, R.Get(j, i))
		}
	}
	tmp := la.NewMatrix(3, 3)
	res := la.NewMatrix(3, 3)
	la.MatMatMul(tmp, 1, la.NewMatrixDeep2(m.Mat()), Rt)
	la.MatMatMul(res, 1, R, tmp)
	return res
}

// ResolveMatrix computes the same tractions as Resolve by explicit contractions
// with the frame vectors: τs = n・σ'・s, τd = n・σ'・d and σn = n・(σ' - pf・I)・n
func (o Model) ResolveMatrix(p Plane, m Tensor) Traction {
	s, d, n := Frame(p)
	a := la.NewMatrixDeep2(o.Augment(m).Mat())
	an := la.NewVector(3)
	la.MatVecMul(an, 1, a, n) // σ' is symmetric: n・σ'・v = (σ'・n)・v
	return Traction{
		StrikeShear: la.VecDot(an, s),
		DipShear:    la.VecDot(an, d),
		EffNormal:   la.VecDot(an, n) - o.PorePressure(m)*la.VecDot(n, n),
	}
}
