// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/fun"
	"gonum.org/v1/gonum/diff/fd"
)

// PenaltyFunc computes a penalty from the displacements of (left, right) rods
type PenaltyFunc func(u [2][]float64) float64

// Penalty holds a penalty term that is added to the stiffness product as Func(u) / Const
type Penalty struct {
	Func  PenaltyFunc // penalty function
	Const float64     // penalisation constant; smaller => stiffer penalty
	Step  float64     // step for central differences; 0 => gonum's default

	// scratchpad
	nl   int       // number of nodes in left rod
	grad []float64 // [ntotal] gradient of Func
}

// NewPenalizedFunctional returns a functional with a penalty added to the stiffness product
//  Input:
//   penalty  -- penalty function
//   penConst -- penalisation constant; must be positive
func NewPenalizedFunctional(dom *Domain, alphas, springs [2]float64, bf BodyForce, penalty PenaltyFunc, penConst float64) (o *Functional, err error) {
	if penalty == nil {
		return nil, Errf(ErrPrecondition, "penalty function is required")
	}
	if !(penConst > 0) {
		return nil, Errf(ErrPrecondition, "penalisation constant must be positive; c=%g is invalid", penConst)
	}
	o, err = NewFunctional(dom, alphas, springs, bf)
	if err != nil {
		return
	}
	o.Penalty = &Penalty{Func: penalty, Const: penConst}
	return
}

// GapPenalty returns the squared violation of closure ≤ springLen, where closure is
// uL[last] - uR[0]:
//
//   P(u) = ramp(closure - springLen)²
func GapPenalty(springLen float64) PenaltyFunc {
	return func(u [2][]float64) float64 {
		v := fun.Ramp(closure(u) - springLen)
		return v * v
	}
}

// SmoothGapPenalty returns a smooth version of GapPenalty
//  Input:
//   β -- smoothing coefficient of the ramp function; larger => closer to GapPenalty
func SmoothGapPenalty(springLen, β float64) PenaltyFunc {
	return func(u [2][]float64) float64 {
		v := fun.Sramp(closure(u)-springLen, β)
		return v * v
	}
}

// closure returns how much the gap has closed: uL[last] - uR[0]
func closure(u [2][]float64) float64 {
	return u[Left][len(u[Left])-1] - u[Right][0]
}

// addGrad adds the gradient of Func/(2 Const) to g
//  Input:
//   u  -- [ntotal] displacements of all nodes
//   nl -- number of nodes in left rod
func (o *Penalty) addGrad(g, u []float64, nl int) {
	if len(o.grad) != len(u) {
		o.grad = make([]float64, len(u))
	}
	o.nl = nl
	fd.Gradient(o.grad, o.eval, u, &fd.Settings{Formula: fd.Central, Step: o.Step})
	for i, v := range o.grad {
		g[i] += v / (2.0 * o.Const)
	}
}

// eval evaluates Func at all-nodes displacements
func (o *Penalty) eval(y []float64) float64 {
	return o.Func([2][]float64{y[:o.nl:o.nl], y[o.nl:]})
}
