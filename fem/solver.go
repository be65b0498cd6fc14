// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/KOS-UJ/Spring-Rods-System-Approximation/opt"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Solver finds the equilibrium of the spring-rods system by minimising a functional
//
//  The closure of the gap is c = uL[last] - uR[0]. When Constrained is set, the minimisation
//  is subject to Lower ≤ c ≤ Upper; by default, the rods cannot close the gap by more than
//  its reference length
type Solver struct {

	// input
	Fcn *Functional   // functional to be minimised
	Min opt.Minimizer // minimiser; nil => augmented Lagrangian built by Solve with NmaxIt and Verbose

	// settings
	Lower       float64 // lower bound of the closure of the gap
	Upper       float64 // upper bound of the closure of the gap
	NmaxIt      int     // max number of iterations of the default minimiser
	Constrained bool    // subject minimisation to closure bounds
	Verbose     bool    // show messages

	// results
	Res *opt.Result // results from the minimiser of the last call to Solve
}

// NewSolver returns a new solver
//  Input:
//   fcn       -- functional. a penalised functional is solved without the closure bounds
//   minimizer -- minimiser; may be nil => augmented Lagrangian
func NewSolver(fcn *Functional, minimizer opt.Minimizer) (o *Solver, err error) {
	if fcn == nil {
		return nil, Errf(ErrPrecondition, "functional is required")
	}
	o = new(Solver)
	o.Fcn = fcn
	o.Min = minimizer
	o.Lower = math.Inf(-1)
	o.Upper = fcn.Dom.SpringLen
	o.NmaxIt = 1000
	o.Constrained = !fcn.Penalized()
	return
}

// SetClosureBounds sets the bounds of the closure of the gap
//  Note: use ±Inf for one-sided bounds
func (o *Solver) SetClosureBounds(lower, upper float64) error {
	if !(lower < upper) {
		return Errf(ErrPrecondition, "lower bound must be smaller than upper bound; [%g, %g] is invalid", lower, upper)
	}
	o.Lower, o.Upper = lower, upper
	return nil
}

// Problem returns the minimisation problem on free displacements
func (o *Solver) Problem() (prob *opt.Problem) {
	prob = &opt.Problem{Func: o.Fcn.F, Grad: o.Fcn.Grad}
	if o.Constrained {
		a := make([]float64, o.Fcn.Dom.Nfree())
		nl := o.Fcn.Dom.Nnodes(Left)
		a[nl-2] = 1  // last node of left rod
		a[nl-1] = -1 // first node of right rod
		prob.Cons = []opt.LinCons{{A: a, Lb: o.Lower, Ub: o.Upper}}
	}
	return
}

// Solve finds the displacements at equilibrium, starting from the zero field
//  Output:
//   ul, ur -- displacements of all nodes of (left, right) rods
func (o *Solver) Solve() (ul, ur []float64, err error) {

	// minimiser
	minimizer := o.Min
	if minimizer == nil {
		minimizer, err = opt.New("auglag", &opt.Settings{NmaxIt: o.NmaxIt, Verbose: o.Verbose})
		if err != nil {
			return
		}
	}

	// minimise
	dom := o.Fcn.Dom
	x0 := make([]float64, dom.Nfree())
	res, err := minimizer.Minimize(o.Problem(), x0)
	if err != nil {
		return nil, nil, Errf(ErrSolveDiverged, "%v", err)
	}
	o.Res = res
	if !res.Success {
		return nil, nil, Errf(ErrSolveDiverged, "%s", res.Status)
	}
	if o.Verbose {
		io.Pfyel("solver: %s. F = %g  |u| = %g  viol = %g\n", res.Status, res.F, la.VecNorm(res.X), res.Viol)
	}

	// displacements of rods
	full, err := dom.Pad(res.X)
	if err != nil {
		return
	}
	u, err := dom.Split(full)
	if err != nil {
		return
	}

	// check deformed geometry
	pos, err := dom.Deformed(u)
	if err != nil {
		return
	}
	for side, x := range pos {
		for i := 1; i < len(x); i++ {
			if !(x[i] > x[i-1]) {
				return nil, nil, Errf(ErrGeometryInvalid, "nodes of rod %d overlap after deformation: x[%d]=%g and x[%d]=%g", side, i-1, x[i-1], i, x[i])
			}
		}
	}
	return u[Left], u[Right], nil
}

// Stresses computes the stresses α du/dx in each element of (left, right) rods
func (o *Solver) Stresses(u [2][]float64) (sl, sr []float64, err error) {
	var sig [2][]float64
	for side := 0; side < 2; side++ {
		dx := o.Fcn.Dom.Lengths(side)
		if len(u[side]) != len(dx)+1 {
			return nil, nil, Errf(ErrPrecondition, "rod %d has %d nodes but %d displacements were given", side, len(dx)+1, len(u[side]))
		}
		α := o.Fcn.Alphas[side]
		sig[side] = make([]float64, len(dx))
		for i, h := range dx {
			sig[side][i] = α * (u[side][i+1] - u[side][i]) / h
		}
	}
	return sig[Left], sig[Right], nil
}
