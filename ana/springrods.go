// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// SpringRods implements the solution to two rods coupled by a spring under constant body forces
//
//         fl →                               fr →
//   |o=================o   ~~~~~~~~~~~   o=================o|
//   xmin              -slen/2          slen/2            xmax
//
//  The outer ends are fixed. At the gap, both rods carry the same stress R = α du/dx:
//   R = k g                 where g = uR(slen/2) - uL(-slen/2) and k is the spring constant
//                           (kc if g < 0; kt otherwise)
//   g = -closure bound      if the closure -g of the gap reaches one of its bounds
type SpringRods struct {

	// input
	xmin float64 // left end of left rod
	xmax float64 // right end of right rod
	slen float64 // spring length
	αl   float64 // material constant of left rod
	αr   float64 // material constant of right rod
	kc   float64 // spring constant in compression
	kt   float64 // spring constant in tension
	fl   float64 // body force on left rod
	fr   float64 // body force on right rod
	cmin float64 // lower bound of closure
	cmax float64 // upper bound of closure

	// derived
	a, b   float64 // ends of left and right rods at the gap
	ll, lr float64 // lengths of rods
	g      float64 // change of gap length
	R      float64 // stress at the gap
	cl, cr float64 // coefficients
	active bool    // closure bound is active
}

// Init initialises this structure
func (o *SpringRods) Init(prms fun.Prms) {

	// default values
	o.xmin = -10
	o.xmax = 10
	o.slen = 3
	o.αl, o.αr = 1, 1
	o.kc, o.kt = 1, 0.75
	o.fl, o.fr = 1, -1
	o.cmin = math.Inf(-1)
	o.cmax = math.NaN()

	// parameters
	for _, p := range prms {
		switch p.N {
		case "xmin":
			o.xmin = p.V
		case "xmax":
			o.xmax = p.V
		case "slen":
			o.slen = p.V
		case "al":
			o.αl = p.V
		case "ar":
			o.αr = p.V
		case "kc":
			o.kc = p.V
		case "kt":
			o.kt = p.V
		case "fl":
			o.fl = p.V
		case "fr":
			o.fr = p.V
		case "cmin":
			o.cmin = p.V
		case "cmax":
			o.cmax = p.V
		default:
			chk.Panic("SpringRods: parameter named %q is invalid", p.N)
		}
	}
	if math.IsNaN(o.cmax) {
		o.cmax = o.slen
	}

	// geometry
	o.a, o.b = -o.slen/2.0, o.slen/2.0
	o.ll, o.lr = o.a-o.xmin, o.xmax-o.b

	// change of gap length without bounds
	C := o.ll/o.αl + o.lr/o.αr
	D := o.fr*o.lr*o.lr/(2.0*o.αr) - o.fl*o.ll*o.ll/(2.0*o.αl)
	k := o.kt
	if D < 0 {
		k = o.kc
	}
	o.g = D / (1.0 + k*C)
	o.R = k * o.g

	// closure bounds
	o.active = false
	if -o.g > o.cmax {
		o.g, o.active = -o.cmax, true
	}
	if -o.g < o.cmin {
		o.g, o.active = -o.cmin, true
	}
	if o.active {
		o.R = (D - o.g) / C
	}

	// coefficients
	o.cl = (o.R + o.fl*o.ll) / o.αl
	o.cr = (o.R - o.fr*o.lr) / o.αr
}

// Gap returns the change of gap length uR(slen/2) - uL(-slen/2)
func (o *SpringRods) Gap() float64 { return o.g }

// Active tells whether a closure bound is active
func (o *SpringRods) Active() bool { return o.active }

// Displ computes the displacement at x of rod side (0=left, 1=right)
func (o *SpringRods) Displ(side int, x float64) float64 {
	if side == 0 {
		d := x - o.xmin
		return -o.fl/(2.0*o.αl)*d*d + o.cl*d
	}
	d := x - o.xmax
	return -o.fr/(2.0*o.αr)*d*d + o.cr*d
}

// Stress computes the stress α du/dx at x of rod side (0=left, 1=right)
func (o *SpringRods) Stress(side int, x float64) float64 {
	if side == 0 {
		return -o.fl*(x-o.xmin) + o.αl*o.cl
	}
	return -o.fr*(x-o.xmax) + o.αr*o.cr
}

// Fcn returns the displacement of one rod as a function of x
func (o *SpringRods) Fcn(side int) func(x float64) float64 {
	return func(x float64) float64 { return o.Displ(side, x) }
}

// CheckDispl checks displacements at the nodes x of rod side
func (o *SpringRods) CheckDispl(tst *testing.T, side int, x, u []float64, tol float64) {
	if len(x) != len(u) {
		tst.Errorf("rod %d has %d nodes but %d displacements were given", side, len(x), len(u))
		return
	}
	var maxerr float64
	for i := range x {
		maxerr = utl.Max(maxerr, math.Abs(u[i]-o.Displ(side, x[i])))
	}
	if maxerr > tol {
		tst.Errorf("rod %d: max error of displacements = %g is greater than %g", side, maxerr, tol)
		return
	}
	if chk.Verbose {
		io.Pf("rod %d: max error of displacements = %g  OK\n", side, maxerr)
	}
}
