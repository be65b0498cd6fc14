// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. rods pushed against each other")

	sim, err := ReadSim("data/rods01.sim", "", true)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	io.Pforan("sim.Data = %+v\n", sim.Data)

	// derived
	chk.StrAssert(sim.Key, "rods01")
	chk.StrAssert(sim.DirOut, "/tmp/springrods/inp")
	chk.StrAssert(sim.EncType, "json")

	// domain and material
	chk.Scalar(tst, "step", 1e-17, sim.Domain.Step, 0.1)
	chk.IntAssert(sim.Domain.Nnodes, 0)
	alphas, springs := sim.Mat2()
	chk.Vector(tst, "alphas", 1e-17, alphas[:], []float64{5, 5})
	chk.Vector(tst, "springs", 1e-17, springs[:], []float64{1, 0.75})

	// forces
	chk.Scalar(tst, "fl", 1e-17, sim.Fleft.F(-5, []float64{-5}), 1)
	chk.Scalar(tst, "fr", 1e-17, sim.Fright.F(5, []float64{5}), -1)

	// solver
	chk.StrAssert(sim.Solver.Type, "auglag")
	chk.StrAssert(sim.Solver.Method, "lbfgs")
	chk.IntAssert(sim.Solver.NmaxIt, 500)
	lower, upper := sim.Closure(3)
	chk.Scalar(tst, "lower", 1e-17, lower, -1)
	chk.Scalar(tst, "upper", 1e-17, upper, 3)
	if sim.Penalty.On {
		tst.Errorf("penalty should be off")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. penalised functional with custom nodes")

	sim, err := ReadSim("data/rods02.sim", "alias", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.StrAssert(sim.Key, "rods02-alias")
	chk.StrAssert(sim.DirOut, "/tmp/springrods/rods02")
	chk.StrAssert(sim.EncType, "gob")
	chk.Vector(tst, "left", 1e-17, sim.Domain.Left, []float64{-4, -3, -2.5, -1})
	chk.Vector(tst, "right", 1e-17, sim.Domain.Right, []float64{1, 2, 4})

	// penalty
	if !sim.Penalty.On {
		tst.Errorf("penalty should be on")
	}
	chk.StrAssert(sim.Penalty.Type, "sramp")
	chk.Scalar(tst, "const", 1e-17, sim.Penalty.Const, 0.01)
	chk.Scalar(tst, "beta", 1e-17, sim.Penalty.Beta, 50)

	// forces: linear function of position on the left and zero on the right
	chk.Scalar(tst, "fl(-2)", 1e-15, sim.Fleft.F(-2, []float64{-2}), -0.2)
	chk.Scalar(tst, "fr(3)", 1e-17, sim.Fright.F(3, []float64{3}), 0)

	// default bounds
	lower, upper := sim.Closure(2)
	if !math.IsInf(lower, -1) {
		tst.Errorf("lower bound should be -∞")
	}
	chk.Scalar(tst, "upper", 1e-17, upper, 2)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. invalid files")

	for _, fn := range []string{"data/bad01.sim", "data/bad02.sim", "data/inexistent.sim"} {
		_, err := ReadSim(fn, "", false)
		if err == nil {
			tst.Errorf("ReadSim should have failed with %q", fn)
			continue
		}
		io.Pforan("%s: %v\n", fn, err)
	}

	// functions
	var funcs FuncsData
	_, err := funcs.Get("zero")
	if err != nil {
		tst.Errorf("zero function should always be available:\n%v", err)
	}
	_, err = funcs.Get("load")
	if err == nil {
		tst.Errorf("Get should have failed with unknown function")
	}
}
