// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_springrods01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("springrods01. rods pushed against each other")

	var sol SpringRods
	sol.Init(nil)

	// the free solution would close the gap by more than its length
	if !sol.Active() {
		tst.Errorf("closure bound should be active")
		return
	}
	chk.Scalar(tst, "g", 1e-15, sol.Gap(), -3)

	// boundary conditions and gap
	chk.Scalar(tst, "uL(xmin)", 1e-15, sol.Displ(0, -10), 0)
	chk.Scalar(tst, "uR(xmax)", 1e-15, sol.Displ(1, 10), 0)
	chk.Scalar(tst, "uL(-1.5)", 1e-14, sol.Displ(0, -1.5), 1.5)
	chk.Scalar(tst, "uR(+1.5)", 1e-14, sol.Displ(1, 1.5), -1.5)

	// both rods carry the same stress at the gap
	R := (-72.25 + 3.0) / 17.0
	chk.Scalar(tst, "σL(-1.5)", 1e-14, sol.Stress(0, -1.5), R)
	chk.Scalar(tst, "σR(+1.5)", 1e-14, sol.Stress(1, 1.5), R)

	// antisymmetry
	for _, x := range []float64{-10, -7.3, -4, -1.5} {
		chk.Scalar(tst, io.Sf("u(%g)", x), 1e-14, sol.Displ(0, x), -sol.Displ(1, -x))
	}
}

func Test_springrods02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("springrods02. rods pulled apart")

	var sol SpringRods
	sol.Init(fun.Prms{
		&fun.Prm{N: "fl", V: -1},
		&fun.Prm{N: "fr", V: 1},
		&fun.Prm{N: "al", V: 2},
	})
	if sol.Active() {
		tst.Errorf("closure bound should not be active")
		return
	}

	// spring in tension
	g := sol.Displ(1, 1.5) - sol.Displ(0, -1.5)
	chk.Scalar(tst, "g", 1e-14, sol.Gap(), g)
	if g <= 0 {
		tst.Errorf("gap should open. g = %g", g)
	}
	chk.Scalar(tst, "σL(-1.5)", 1e-13, sol.Stress(0, -1.5), 0.75*g)
	chk.Scalar(tst, "σR(+1.5)", 1e-13, sol.Stress(1, 1.5), 0.75*g)

	// stresses and equilibrium: -dσ/dx = f
	for side, α := range []float64{2, 1} {
		for _, x := range []float64{-8, -5, -2, 2, 5, 8} {
			if (side == 0) != (x < 0) {
				continue
			}
			du, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
				return sol.Displ(side, t)
			}, x, 1e-3)
			chk.AnaNum(tst, io.Sf("σ(%g)", x), 1e-8, sol.Stress(side, x), α*du, chk.Verbose)
			dσ, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
				return sol.Stress(side, t)
			}, x, 1e-3)
			f := []float64{-1, 1}[side]
			chk.Scalar(tst, io.Sf("-dσ/dx(%g)", x), 1e-8, -dσ, f)
		}
	}
}

func Test_springrods03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("springrods03. no forces and lower bound")

	var sol SpringRods
	sol.Init(fun.Prms{&fun.Prm{N: "fl", V: 0}, &fun.Prm{N: "fr", V: 0}})
	chk.Scalar(tst, "g", 1e-17, sol.Gap(), 0)
	chk.Scalar(tst, "u(-5)", 1e-17, sol.Displ(0, -5), 0)

	// closure must be at least 0.5 => gap changes by -0.5
	sol.Init(fun.Prms{&fun.Prm{N: "fl", V: 0}, &fun.Prm{N: "fr", V: 0}, &fun.Prm{N: "cmin", V: 0.5}})
	if !sol.Active() {
		tst.Errorf("lower bound should be active")
		return
	}
	chk.Scalar(tst, "g", 1e-17, sol.Gap(), -0.5)
	chk.Scalar(tst, "uL(-1.5)-uR(1.5)", 1e-14, sol.Displ(0, -1.5)-sol.Displ(1, 1.5), 0.5)
}
