// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements minimisers of smooth functions subject to linear constraints
package opt

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Problem defines a minimisation problem
//
//   minimise  Func(x)
//   subject to  Cons[i].Lb ≤ Cons[i].A · x ≤ Cons[i].Ub
//               Lower[j] ≤ x[j] ≤ Upper[j]
//
//  Note: Func and Grad must not modify x
type Problem struct {
	Func  func(x []float64) float64 // objective function
	Grad  func(g, x []float64)      // gradient; may be nil => central differences
	Cons  []LinCons                 // linear constraints; may be empty
	Lower []float64                 // lower bounds; may be nil; use -Inf for free variables
	Upper []float64                 // upper bounds; may be nil; use +Inf for free variables
}

// LinCons defines a linear constraint Lb ≤ A · x ≤ Ub. Use ±Inf for one-sided constraints
type LinCons struct {
	A  []float64 // coefficients
	Lb float64   // lower bound
	Ub float64   // upper bound
}

// Result holds the results of a minimisation
type Result struct {
	X       []float64 // solution
	F       float64   // objective at X
	Success bool      // converged
	Status  string    // message
	Nit     int       // number of (outer) iterations
	Nfeval  int       // number of evaluations of Func
	Viol    float64   // largest constraint violation at X
}

// Minimizer defines black-box minimisers
type Minimizer interface {
	Minimize(p *Problem, x0 []float64) (res *Result, err error)
}

// MinimizerFunc adapts a function to the Minimizer interface
type MinimizerFunc func(p *Problem, x0 []float64) (*Result, error)

// Minimize calls f(p, x0)
func (f MinimizerFunc) Minimize(p *Problem, x0 []float64) (*Result, error) {
	return f(p, x0)
}

// Settings holds settings for minimisers
type Settings struct {
	NmaxIt  int     // max number of outer iterations
	NmaxIn  int     // max number of inner (unconstrained) iterations per outer iteration
	Method  string  // inner method: "lbfgs", "bfgs" or "cg"
	Gtol    float64 // tolerance on the gradient norm, relative to max(1, |∇L(x0)|∞)
	Ctol    float64 // tolerance on the constraint violation
	Rho0    float64 // initial penalty parameter
	RhoMul  float64 // multiplier of the penalty parameter
	RhoMax  float64 // max penalty parameter
	Verbose bool    // show messages
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	if o.NmaxIt < 1 {
		o.NmaxIt = 1000
	}
	if o.NmaxIn < 1 {
		o.NmaxIn = 10000
	}
	if o.Method == "" {
		o.Method = "lbfgs"
	}
	if o.Gtol <= 0 {
		o.Gtol = 1e-6
	}
	if o.Ctol <= 0 {
		o.Ctol = 1e-8
	}
	if o.Rho0 <= 0 {
		o.Rho0 = 10
	}
	if o.RhoMul <= 1 {
		o.RhoMul = 10
	}
	if o.RhoMax <= 0 {
		o.RhoMax = 1e12
	}
}

// allocators holds all available minimisers; name => allocator
var allocators = make(map[string]func(s *Settings) Minimizer)

// New returns a new minimiser
//  Input:
//   name -- name of minimiser; e.g. "auglag"
//   s    -- settings; may be nil => default values
func New(name string, s *Settings) (Minimizer, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find minimiser named %q. available: %v", name, Names())
	}
	if s == nil {
		s = new(Settings)
	}
	s.SetDefault()
	return allocator(s), nil
}

// Names returns the names of all available minimisers
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Check checks the dimensions of the problem
func (o *Problem) Check(ndim int) (err error) {
	if o.Func == nil {
		return chk.Err("objective function is required")
	}
	if o.Lower != nil && len(o.Lower) != ndim {
		return chk.Err("lower bounds must have %d values; it has %d", ndim, len(o.Lower))
	}
	if o.Upper != nil && len(o.Upper) != ndim {
		return chk.Err("upper bounds must have %d values; it has %d", ndim, len(o.Upper))
	}
	for i, c := range o.Cons {
		if len(c.A) != ndim {
			return chk.Err("constraint %d must have %d coefficients; it has %d", i, ndim, len(c.A))
		}
		if c.Lb > c.Ub {
			return chk.Err("constraint %d has lower bound %g greater than upper bound %g", i, c.Lb, c.Ub)
		}
	}
	return
}

// Violation returns the largest violation of constraints and bounds at x
func (o *Problem) Violation(x []float64) (viol float64) {
	for _, c := range o.Cons {
		var ax float64
		for j, a := range c.A {
			ax += a * x[j]
		}
		viol = math.Max(viol, c.Lb-ax)
		viol = math.Max(viol, ax-c.Ub)
	}
	for j := range x {
		if o.Lower != nil {
			viol = math.Max(viol, o.Lower[j]-x[j])
		}
		if o.Upper != nil {
			viol = math.Max(viol, x[j]-o.Upper[j])
		}
	}
	return
}
