// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/springrods
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	ShowR   bool   `json:"showr"`   // show messages of minimiser
}

// DomainData holds data to generate the two rods
//  Note: either Nnodes or Step must be given
type DomainData struct {
	Xmin      float64   `json:"xmin"`      // left end of left rod
	Xmax      float64   `json:"xmax"`      // right end of right rod
	SpringLen float64   `json:"springlen"` // length of spring; i.e. gap between rods
	Nnodes    int       `json:"nnodes"`    // number of nodes per rod
	Step      float64   `json:"step"`      // step size
	Left      []float64 `json:"left"`      // custom nodes of left rod; overrides the above
	Right     []float64 `json:"right"`     // custom nodes of right rod; overrides the above
}

// MatData holds material data
type MatData struct {
	Alphas  []float64 `json:"alphas"`  // material constants of (left, right) rods
	Springs []float64 `json:"springs"` // spring constants (compression, tension)
}

// ForcesData holds the names of body force functions
//  Note: the functions are evaluated with t = position
type ForcesData struct {
	Left  string `json:"left"`  // function for left rod
	Right string `json:"right"` // function for right rod
}

// PenaltyData holds data for penalised functionals
type PenaltyData struct {
	On    bool    `json:"on"`    // use penalised functional instead of closure bounds
	Type  string  `json:"type"`  // type of penalty: "ramp" or "sramp" (smooth ramp)
	Const float64 `json:"const"` // penalisation constant
	Beta  float64 `json:"beta"`  // coefficient of smooth ramp
}

// SolverData holds minimiser data
type SolverData struct {
	Type   string   `json:"type"`   // minimiser type; e.g. "auglag"
	Method string   `json:"method"` // inner method; e.g. "lbfgs", "bfgs", "cg"
	NmaxIt int      `json:"nmaxit"` // max number of iterations
	NmaxIn int      `json:"nmaxin"` // max number of inner iterations
	Gtol   float64  `json:"gtol"`   // tolerance on gradient
	Ctol   float64  `json:"ctol"`   // tolerance on constraint violation
	Lower  *float64 `json:"lower"`  // lower bound of closure of gap; nil => -∞
	Upper  *float64 `json:"upper"`  // upper bound of closure of gap; nil => spring length
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Functions FuncsData   `json:"functions"` // stores all functions
	Domain    DomainData  `json:"domain"`    // domain data
	Material  MatData     `json:"material"`  // material data
	Forces    ForcesData  `json:"forces"`    // body forces
	Penalty   PenaltyData `json:"penalty"`   // penalty data
	Solver    SolverData  `json:"solver"`    // minimiser data

	// derived
	DirOut  string   // directory to save results
	Key     string   // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string   // encoder type
	Fleft   fun.Func // body force on left rod
	Fright  fun.Func // body force on right rod
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.Penalty.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/springrods/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// check material data
	if len(o.Material.Alphas) != 2 {
		return nil, chk.Err("ReadSim: two material constants (left, right) are required; %d were given", len(o.Material.Alphas))
	}
	if len(o.Material.Springs) != 2 {
		return nil, chk.Err("ReadSim: two spring constants (compression, tension) are required; %d were given", len(o.Material.Springs))
	}

	// body forces
	if o.Forces.Left == "" {
		o.Forces.Left = "zero"
	}
	if o.Forces.Right == "" {
		o.Forces.Right = "zero"
	}
	o.Fleft, err = o.Functions.Get(o.Forces.Left)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot get body force of left rod:\n%v", err)
	}
	o.Fright, err = o.Functions.Get(o.Forces.Right)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot get body force of right rod:\n%v", err)
	}
	return
}

// Closure returns the bounds of the closure of the gap
func (o *Simulation) Closure(springLen float64) (lower, upper float64) {
	lower, upper = math.Inf(-1), springLen
	if o.Solver.Lower != nil {
		lower = *o.Solver.Lower
	}
	if o.Solver.Upper != nil {
		upper = *o.Solver.Upper
	}
	return
}

// Mat2 returns the material constants as arrays
func (o *Simulation) Mat2() (alphas, springs [2]float64) {
	copy(alphas[:], o.Material.Alphas)
	copy(springs[:], o.Material.Springs)
	return
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "auglag"
	o.Method = "lbfgs"
	o.NmaxIt = 1000
	o.NmaxIn = 10000
	o.Gtol = 1e-6
	o.Ctol = 1e-8
}

// SetDefault sets default values
func (o *PenaltyData) SetDefault() {
	o.Type = "ramp"
	o.Const = 1e-3
	o.Beta = 50
}
