// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun"
)

// BodyForce returns the body force density at position x
type BodyForce func(x float64) float64

// ConstForces returns a body force equal to fl on the left of xsep and fr elsewhere
func ConstForces(fl, fr, xsep float64) BodyForce {
	return func(x float64) float64 {
		if x < xsep {
			return fl
		}
		return fr
	}
}

// RodForces returns a body force computed by fl on the left of xsep and by fr elsewhere
//  Note: the position is given to the functions as t and as x = {position}
func RodForces(fl, fr fun.Func, xsep float64) BodyForce {
	return func(x float64) float64 {
		if x < xsep {
			return fl.F(x, []float64{x})
		}
		return fr.F(x, []float64{x})
	}
}

// SpringMode selects the spring constant
type SpringMode int

// spring modes
const (
	Compression SpringMode = iota // gap is closing; uses Springs[0]
	Tension                       // gap is opening (or unchanged); uses Springs[1]
)

// String returns the name of the mode
func (m SpringMode) String() string {
	if m == Compression {
		return "compression"
	}
	return "tension"
}

// Functional implements the total potential energy of the spring-rods system
//
//   F(u) = ½ <Au, u> + j(u) - <f, u>
//
// where <Au, u> is the stiffness product (plus an optional penalty term), j(u) is the energy
// of the spring and <f, u> is the work of body forces. The displacement field given to F and
// Grad excludes the two outer nodes, which are under homogeneous Dirichlet conditions
//
//  Note: F and Grad use a scratchpad; thus, a Functional must not be used concurrently
type Functional struct {

	// data
	Dom     *Domain    // the domain
	Alphas  [2]float64 // material constants of (left, right) rods
	Springs [2]float64 // spring constants (compression, tension)
	Penalty *Penalty   // penalty added to the stiffness product; nil => plain functional

	// body forces
	bfe []float64 // [nelems] body forces at the centres of elements; left rod first

	// scratchpad
	ufull []float64 // [ntotal] displacements of all nodes
	gfull []float64 // [ntotal] gradient w.r.t all nodes
}

// NewFunctional returns a new functional
//  Input:
//   dom     -- the domain
//   alphas  -- material constants of (left, right) rods; must be positive
//   springs -- spring constants (compression, tension); must be non-negative
//   bf      -- body force function
func NewFunctional(dom *Domain, alphas, springs [2]float64, bf BodyForce) (o *Functional, err error) {
	if dom == nil {
		return nil, Errf(ErrPrecondition, "domain is required")
	}
	o = new(Functional)
	o.Dom = dom
	err = o.SetMaterialConst(alphas)
	if err != nil {
		return nil, err
	}
	err = o.SetSpringConst(springs)
	if err != nil {
		return nil, err
	}
	err = o.SetBodyForces(bf)
	if err != nil {
		return nil, err
	}
	o.ufull = make([]float64, dom.Ntotal())
	o.gfull = make([]float64, dom.Ntotal())
	return
}

// SetMaterialConst sets the material constants of (left, right) rods
func (o *Functional) SetMaterialConst(alphas [2]float64) error {
	for side, α := range alphas {
		if !(α > 0) {
			return Errf(ErrPrecondition, "material constant of rod %d must be positive; α=%g is invalid", side, α)
		}
	}
	o.Alphas = alphas
	return nil
}

// SetSpringConst sets the spring constants (compression, tension)
func (o *Functional) SetSpringConst(springs [2]float64) error {
	for i, k := range springs {
		if !(k >= 0) {
			return Errf(ErrPrecondition, "spring constant %d must be non-negative; k=%g is invalid", i, k)
		}
	}
	o.Springs = springs
	return nil
}

// SetBodyForces samples the body force function at the centres of all elements
func (o *Functional) SetBodyForces(bf BodyForce) error {
	if bf == nil {
		return Errf(ErrPrecondition, "body force function is required")
	}
	xc := o.Dom.Centers()
	bfe := make([]float64, len(xc))
	for e, x := range xc {
		bfe[e] = bf(x)
	}
	o.bfe = bfe
	return nil
}

// BodyForces returns the body forces at the centres of elements; left rod first
func (o *Functional) BodyForces() []float64 { return o.bfe }

// Penalized tells whether the stiffness product includes a penalty term
func (o *Functional) Penalized() bool { return o.Penalty != nil }

// F computes the total potential energy
//  Input:
//   x -- displacements of free nodes (all nodes but the two outer ones)
func (o *Functional) F(x []float64) float64 {
	u := o.pad(x)
	return o.StiffnessProd(u)/2.0 + o.SpringEffect(u) - o.BodyForcesEffect(u)
}

// Grad computes the gradient of F
//  Input:
//   x -- displacements of free nodes
//  Output:
//   g -- [nfree] gradient
func (o *Functional) Grad(g, x []float64) {
	u := o.pad(x)
	for i := range o.gfull {
		o.gfull[i] = 0
	}
	nl := o.Dom.Nnodes(Left)
	offset := [2]int{0, nl}

	// stiffness and body forces
	e := 0
	for side := 0; side < 2; side++ {
		α, dx, us := o.Alphas[side], o.Dom.Lengths(side), u[side]
		for i, h := range dx {
			I := offset[side] + i
			s := α * (us[i+1] - us[i]) / h
			w := o.bfe[e] * h / 2.0
			o.gfull[I] += -s - w
			o.gfull[I+1] += s - w
			e++
		}
	}

	// spring
	k, gap := o.springConst(u)
	o.gfull[nl-1] -= k * gap
	o.gfull[nl] += k * gap

	// penalty
	if o.Penalty != nil {
		o.Penalty.addGrad(o.gfull, o.ufull, nl)
	}
	copy(g, o.gfull[1:len(o.gfull)-1])
}

// StiffnessProd computes the stiffness product <Au, u> = Σ α ∫ (du/dx)² dx (plus penalty)
func (o *Functional) StiffnessProd(u [2][]float64) (res float64) {
	for side := 0; side < 2; side++ {
		α, dx, us := o.Alphas[side], o.Dom.Lengths(side), u[side]
		for i, h := range dx {
			du := us[i+1] - us[i]
			res += α * du * du / h
		}
	}
	if o.Penalty != nil {
		res += o.Penalty.Func(u) / o.Penalty.Const
	}
	return
}

// SpringEffect computes the energy stored in the spring: k (uR[0] - uL[last])² / 2
func (o *Functional) SpringEffect(u [2][]float64) float64 {
	k, gap := o.springConst(u)
	return k * gap * gap / 2.0
}

// SpringMode returns the active spring mode and the change of gap length
func (o *Functional) SpringMode(u [2][]float64) (mode SpringMode, gap float64) {
	gap = u[Right][0] - u[Left][len(u[Left])-1]
	if gap < 0 {
		return Compression, gap
	}
	return Tension, gap
}

// BodyForcesEffect computes the work of body forces <f, u> = Σ f_e (u_i + u_{i+1})/2 Δx
func (o *Functional) BodyForcesEffect(u [2][]float64) (res float64) {
	e := 0
	for side := 0; side < 2; side++ {
		dx, us := o.Dom.Lengths(side), u[side]
		for i, h := range dx {
			res += o.bfe[e] * h * (us[i] + us[i+1]) / 2.0
			e++
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// springConst returns the spring constant corresponding to the current mode
func (o *Functional) springConst(u [2][]float64) (k, gap float64) {
	mode, gap := o.SpringMode(u)
	return o.Springs[mode], gap
}

// pad copies the free displacements into the scratchpad and returns the rods' fields
func (o *Functional) pad(x []float64) (u [2][]float64) {
	n := len(o.ufull)
	if len(x) != n-2 {
		panic(Errf(ErrPrecondition, "free displacement field must have %d values; it has %d", n-2, len(x)))
	}
	o.ufull[0], o.ufull[n-1] = 0, 0
	copy(o.ufull[1:n-1], x)
	nl := o.Dom.Nnodes(Left)
	u[Left], u[Right] = o.ufull[:nl:nl], o.ufull[nl:]
	return
}
