// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// AugLag implements the augmented Lagrangian method for linear inequality constraints.
// Each constraint or bound is written as c(x) = a · x + b ≥ 0 and the inner unconstrained
// problems are solved by gonum's optimize package:
//
//   L(x) = f(x) + Σ ψ(c(x), λ, ρ)
//
//   ψ = -λ c + ρ c² / 2   if c ≤ λ / ρ
//   ψ = -λ² / (2 ρ)       otherwise
//
// After each inner solution: λ ← max(0, λ - ρ c); ρ is increased if the violation did not
// decrease enough
type AugLag struct {
	Settings // settings

	// constraints c = a · x + b ≥ 0
	a [][]float64
	b []float64

	// multipliers and penalty parameter
	lam []float64
	rho float64

	// problem
	prob *Problem

	// scratchpad
	c []float64
}

// add allocator to database
func init() {
	allocators["auglag"] = func(s *Settings) Minimizer {
		return &AugLag{Settings: *s}
	}
}

// Minimize minimises p starting at x0
func (o *AugLag) Minimize(p *Problem, x0 []float64) (res *Result, err error) {

	// check
	ndim := len(x0)
	if ndim == 0 {
		return nil, chk.Err("starting point must have at least one value")
	}
	err = p.Check(ndim)
	if err != nil {
		return
	}
	o.prob = p
	o.setConstraints(ndim)

	// inner method
	method, err := innerMethod(o.Method)
	if err != nil {
		return
	}
	// results
	x := make([]float64, ndim)
	copy(x, x0)
	res = &Result{X: x}
	defer func() {
		if res == nil {
			return
		}
		res.F = p.Func(res.X)
		res.Viol = p.Violation(res.X)
	}()

	// tolerances on the gradient are relative to its size at x0
	g := make([]float64, ndim)
	o.lagrangianGrad(g, x)
	scale := math.Max(1, floats.Norm(g, math.Inf(1)))
	gtol, gacc := o.Gtol*scale, o.Gacc()*scale

	// inner problem
	inner := optimize.Problem{Func: o.lagrangian, Grad: o.lagrangianGrad}
	settings := &optimize.Settings{
		GradientThreshold: gtol,
		MajorIterations:   o.NmaxIn,
		Converger:         optimize.NeverTerminate{},
	}

	// outer iterations
	prevViol := math.Inf(1)
	for it := 0; it < o.NmaxIt; it++ {
		res.Nit = it + 1

		// inner solution
		r, e := optimize.Minimize(inner, x, settings, method)
		if r == nil {
			return nil, chk.Err("inner minimisation failed at iteration %d: %v", it, e)
		}
		res.Nfeval += r.FuncEvaluations
		copy(x, r.X)
		o.lagrangianGrad(g, x)
		gnorm := floats.Norm(g, math.Inf(1))
		innerok := gnorm <= gtol || (e == nil && !r.Status.Early())
		if !innerok && gnorm <= gacc {
			innerok = true
		}
		if o.Verbose {
			io.Pf("%4d : status = %v  |∇L| = %10.3e  ρ = %10.3e", it, r.Status, gnorm, o.rho)
		}

		// constraints and multipliers
		viol := o.update(x)
		if o.Verbose {
			io.Pf("  viol = %10.3e\n", viol)
		}
		if innerok && viol <= o.Ctol && o.complementary() {
			res.Success = true
			res.Status = io.Sf("converged after %d iterations", res.Nit)
			return
		}
		if viol > 0.25*prevViol {
			o.rho = math.Min(o.rho*o.RhoMul, o.RhoMax)
		}
		prevViol = viol
	}
	res.Status = io.Sf("max number of iterations reached (%d)", o.NmaxIt)
	return
}

// Gacc returns the gradient norm accepted when the inner method stops with an error, e.g.
// when the line search cannot decrease L below round-off. Both Gtol and Gacc are scaled by
// max(1, |∇L(x0)|∞)
func (o *AugLag) Gacc() float64 {
	return 1e2 * o.Gtol
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// setConstraints converts linear constraints and bounds to a · x + b ≥ 0
func (o *AugLag) setConstraints(ndim int) {
	o.a, o.b = nil, nil
	add := func(a []float64, b float64) {
		o.a = append(o.a, a)
		o.b = append(o.b, b)
	}
	for _, c := range o.prob.Cons {
		if !math.IsInf(c.Lb, -1) {
			add(c.A, -c.Lb)
		}
		if !math.IsInf(c.Ub, 1) {
			a := make([]float64, ndim)
			floats.ScaleTo(a, -1, c.A)
			add(a, c.Ub)
		}
	}
	for j := 0; j < ndim; j++ {
		if o.prob.Lower != nil && !math.IsInf(o.prob.Lower[j], -1) {
			a := make([]float64, ndim)
			a[j] = 1
			add(a, -o.prob.Lower[j])
		}
		if o.prob.Upper != nil && !math.IsInf(o.prob.Upper[j], 1) {
			a := make([]float64, ndim)
			a[j] = -1
			add(a, o.prob.Upper[j])
		}
	}
	o.lam = make([]float64, len(o.a))
	o.c = make([]float64, len(o.a))
	o.rho = o.Rho0
}

// lagrangian computes the augmented Lagrangian
func (o *AugLag) lagrangian(x []float64) (l float64) {
	l = o.prob.Func(x)
	for j, a := range o.a {
		c := floats.Dot(a, x) + o.b[j]
		if c <= o.lam[j]/o.rho {
			l += -o.lam[j]*c + o.rho*c*c/2.0
		} else {
			l -= o.lam[j] * o.lam[j] / (2.0 * o.rho)
		}
	}
	return
}

// lagrangianGrad computes the gradient of the augmented Lagrangian
func (o *AugLag) lagrangianGrad(g, x []float64) {
	if o.prob.Grad != nil {
		o.prob.Grad(g, x)
	} else {
		fd.Gradient(g, o.prob.Func, x, &fd.Settings{Formula: fd.Central})
	}
	for j, a := range o.a {
		c := floats.Dot(a, x) + o.b[j]
		if c <= o.lam[j]/o.rho {
			floats.AddScaled(g, o.rho*c-o.lam[j], a)
		}
	}
}

// update computes the constraints at x, updates the multipliers and returns the violation
func (o *AugLag) update(x []float64) (viol float64) {
	for j, a := range o.a {
		o.c[j] = floats.Dot(a, x) + o.b[j]
		viol = math.Max(viol, -o.c[j])
		o.lam[j] = math.Max(0, o.lam[j]-o.rho*o.c[j])
	}
	return
}

// complementary tells whether no inactive constraint holds a positive multiplier
func (o *AugLag) complementary() bool {
	for j, c := range o.c {
		if c > o.Ctol && o.lam[j] > 0 {
			return false
		}
	}
	return true
}

// innerMethod returns the unconstrained method
func innerMethod(name string) (optimize.Method, error) {
	switch name {
	case "lbfgs":
		return &optimize.LBFGS{}, nil
	case "bfgs":
		return &optimize.BFGS{}, nil
	case "cg":
		return &optimize.CG{}, nil
	}
	return nil, chk.Err("inner method %q is not available. options: lbfgs, bfgs, cg", name)
}
