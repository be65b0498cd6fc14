// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element approximation of two elastic rods joined by a spring
package fem

import (
	"time"

	"github.com/KOS-UJ/Spring-Rods-System-Approximation/inp"
	"github.com/KOS-UJ/Spring-Rods-System-Approximation/opt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FEM holds all data for a simulation of the spring-rods system
type FEM struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // the two rods
	Fcn     *Functional     // energy functional; maybe penalised
	Solver  *Solver         // equilibrium solver
	U       [2][]float64    // displacements of (left, right) rods after Run
	Sig     [2][]float64    // stresses in elements of (left, right) rods after Run
	Verbose bool            // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, verbose bool) (o *FEM, err error) {

	// new FEM object
	o = new(FEM)
	o.Verbose = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev)
	if err != nil {
		return nil, err
	}

	// domain
	o.Dom, err = NewDomainFromData(&o.Sim.Domain)
	if err != nil {
		return nil, err
	}

	// body forces are switched at the middle of the gap
	nl := o.Dom.Nnodes(Left)
	xsep := (o.Dom.Rod(Left)[nl-1] + o.Dom.Rod(Right)[0]) / 2.0
	bf := RodForces(o.Sim.Fleft, o.Sim.Fright, xsep)

	// functional
	alphas, springs := o.Sim.Mat2()
	lower, upper := o.Sim.Closure(o.Dom.SpringLen)
	pen := o.Sim.Penalty
	if pen.On {
		var pfcn PenaltyFunc
		switch pen.Type {
		case "ramp":
			pfcn = GapPenalty(upper)
		case "sramp":
			pfcn = SmoothGapPenalty(upper, pen.Beta)
		default:
			return nil, Errf(ErrPrecondition, "penalty type %q is not available. use \"ramp\" or \"sramp\"", pen.Type)
		}
		o.Fcn, err = NewPenalizedFunctional(o.Dom, alphas, springs, bf, pfcn, pen.Const)
	} else {
		o.Fcn, err = NewFunctional(o.Dom, alphas, springs, bf)
	}
	if err != nil {
		return nil, err
	}

	// minimiser
	s := o.Sim.Solver
	minimizer, err := opt.New(s.Type, &opt.Settings{
		NmaxIt:  s.NmaxIt,
		NmaxIn:  s.NmaxIn,
		Method:  s.Method,
		Gtol:    s.Gtol,
		Ctol:    s.Ctol,
		Verbose: o.Sim.Data.ShowR,
	})
	if err != nil {
		return nil, err
	}

	// solver
	o.Solver, err = NewSolver(o.Fcn, minimizer)
	if err != nil {
		return nil, err
	}
	o.Solver.Verbose = verbose
	if !pen.On {
		err = o.Solver.SetClosureBounds(lower, upper)
	}
	return
}

// NewDomainFromData returns the domain described by input data
//  Note: custom nodes have priority over step which has priority over number of nodes
func NewDomainFromData(d *inp.DomainData) (*Domain, error) {
	if len(d.Left) > 0 || len(d.Right) > 0 {
		return NewDomainRods(d.Left, d.Right)
	}
	if d.Step > 0 {
		return NewDomainStep(d.Xmin, d.Xmax, d.SpringLen, d.Step)
	}
	return NewDomain(d.Xmin, d.Xmax, d.SpringLen, d.Nnodes)
}

// Run finds the equilibrium, computes stresses and saves results
func (o *FEM) Run() (err error) {

	// solve
	cputime := time.Now()
	o.U[Left], o.U[Right], err = o.Solver.Solve()
	if err != nil {
		return
	}

	// stresses
	o.Sig[Left], o.Sig[Right], err = o.Solver.Stresses(o.U)
	if err != nil {
		return
	}

	// message
	if o.Verbose {
		mode, gap := o.Fcn.SpringMode(o.U)
		io.Pf("\nspring     = %v (gap = %g)\n", mode, gap)
		io.Pf("energy     = %g\n", o.Solver.Res.F)
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}

	// save results
	return SaveResults(o.Results(), o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Verbose)
}

// Results collects the results of the last Run
func (o *FEM) Results() *Results {
	if o.U[Left] == nil {
		chk.Panic("results are not available before a successful Run")
	}
	res := &Results{
		Nodes:   [2][]float64{o.Dom.Rod(Left), o.Dom.Rod(Right)},
		U:       o.U,
		Sig:     o.Sig,
		Closure: closure(o.U),
	}
	if o.Solver.Res != nil {
		res.F = o.Solver.Res.F
		res.Status = o.Solver.Res.Status
	}
	return res
}
