// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/KOS-UJ/Spring-Rods-System-Approximation/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nSpring-rods -- equilibrium of two elastic rods joined by a spring\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// analysis data
	analysis, err := fem.NewFEM(fnamepath, alias, erasePrev, verbose)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	if verbose {
		for side, name := range []string{"left", "right"} {
			u := analysis.U[side]
			io.Pf("%-6s rod: u(first) = %12.6f  u(last) = %12.6f  max|σ| = %12.6f\n",
				name, u[0], u[len(u)-1], la.VecLargest(analysis.Sig[side], 1))
		}
	}
}

