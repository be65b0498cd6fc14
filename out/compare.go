// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing tools to compare solutions on different meshes
package out

import (
	"errors"
	"fmt"
	"math"

	"github.com/KOS-UJ/Spring-Rods-System-Approximation/fem"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// ErrOutOfDomain is returned when target positions are not within the reference positions
var ErrOutOfDomain = errors.New("positions are out of domain")

// TolC is the tolerance used to compare the ends of two sets of positions
var TolC = 1e-10

// L2Norm computes the L2 norm of the piecewise linear interpolant of values on both rods
//
//   ‖v‖² = Σ_e h_e (v0² + v0 v1 + v1²) / 3
//
//  Input:
//   values -- [2][nnodes] nodal values on (left, right) rods
func L2Norm(values [2][]float64, dom *fem.Domain) (res float64, err error) {
	for side := 0; side < 2; side++ {
		dx, v := dom.Lengths(side), values[side]
		if len(v) != len(dx)+1 {
			return 0, fem.Errf(fem.ErrPrecondition, "rod %d has %d nodes but %d values were given", side, len(dx)+1, len(v))
		}
		for i, h := range dx {
			v0, v1 := v[i], v[i+1]
			res += h * (v0*v0 + v0*v1 + v1*v1) / 3.0
		}
	}
	return math.Sqrt(res), nil
}

// L2Dist computes the L2 norm of the difference between two fields on the same domain
func L2Dist(a, b [2][]float64, dom *fem.Domain) (float64, error) {
	var diff [2][]float64
	for side := 0; side < 2; side++ {
		if len(a[side]) != len(b[side]) {
			return 0, fem.Errf(fem.ErrPrecondition, "fields on rod %d have different lengths: %d != %d", side, len(a[side]), len(b[side]))
		}
		diff[side] = make([]float64, len(a[side]))
		floats.SubTo(diff[side], a[side], b[side])
	}
	return L2Norm(diff, dom)
}

// ApproximateInPositions linearly interpolates values given at ref positions onto target positions
//  Input:
//   values -- [nref] values at ref positions
//   ref    -- [nref] strictly increasing positions
//   target -- [ntarget] strictly increasing positions spanning the same interval as ref
//  Output:
//   res -- [ntarget] interpolated values. the values at the ends are copied
//  Note: both sets are traversed once
func ApproximateInPositions(values, ref, target []float64) (res []float64, err error) {
	nr, nt := len(ref), len(target)
	if len(values) != nr {
		return nil, fem.Errf(fem.ErrPrecondition, "number of values (%d) and reference positions (%d) differ", len(values), nr)
	}
	if nr < 2 || nt < 2 {
		return nil, fem.Errf(fem.ErrPrecondition, "at least two positions are required; nref=%d ntarget=%d", nr, nt)
	}
	if math.Abs(ref[0]-target[0]) > TolC || math.Abs(ref[nr-1]-target[nt-1]) > TolC {
		return nil, fem.Errf(ErrOutOfDomain, "target [%g, %g] and reference [%g, %g] do not span the same interval", target[0], target[nt-1], ref[0], ref[nr-1])
	}
	for j := 1; j < nr; j++ {
		if !(ref[j] > ref[j-1]) {
			return nil, fem.Errf(fem.ErrPrecondition, "reference positions must be strictly increasing; x[%d]=%g and x[%d]=%g", j-1, ref[j-1], j, ref[j])
		}
	}
	for i := 1; i < nt; i++ {
		if !(target[i] > target[i-1]) {
			return nil, fem.Errf(fem.ErrPrecondition, "target positions must be strictly increasing; x[%d]=%g and x[%d]=%g", i-1, target[i-1], i, target[i])
		}
	}
	res = make([]float64, nt)
	res[0], res[nt-1] = values[0], values[nr-1]
	j := 0
	for i := 1; i < nt-1; i++ {
		x := target[i]
		for j < nr-2 && ref[j+1] < x {
			j++
		}
		h := ref[j+1] - ref[j]
		t := (x - ref[j]) / h
		res[i] = values[j] + t*(values[j+1]-values[j])
	}
	return
}

// ApproximateRods interpolates values on both rods of ref onto the rods of target
func ApproximateRods(values [2][]float64, ref, target *fem.Domain) (res [2][]float64, err error) {
	for side := 0; side < 2; side++ {
		res[side], err = ApproximateInPositions(values[side], ref.Rod(side), target.Rod(side))
		if err != nil {
			return res, fmt.Errorf("rod %d: %w", side, err)
		}
	}
	return
}

// L2ErrorAna computes the L2 norm of the difference between the piecewise linear interpolant
// of values and the functions fcn on (left, right) rods
//  Input:
//   nip -- number of Gauss-Legendre integration points per element
func L2ErrorAna(values [2][]float64, dom *fem.Domain, fcn [2]func(x float64) float64, nip int) (res float64, err error) {
	if nip < 1 {
		return 0, fem.Errf(fem.ErrPrecondition, "number of integration points must be positive; nip=%d is invalid", nip)
	}
	for side := 0; side < 2; side++ {
		x, v := dom.Rod(side), values[side]
		if len(v) != len(x) {
			return 0, fem.Errf(fem.ErrPrecondition, "rod %d has %d nodes but %d values were given", side, len(x), len(v))
		}
		for i := 1; i < len(x); i++ {
			x0, x1, v0, v1 := x[i-1], x[i], v[i-1], v[i]
			e2 := func(t float64) float64 {
				vh := v0 + (t-x0)*(v1-v0)/(x1-x0)
				d := vh - fcn[side](t)
				return d * d
			}
			res += quad.Fixed(e2, x0, x1, nip, quad.Legendre{}, 0)
		}
	}
	return math.Sqrt(res), nil
}

// Rates computes the observed orders of convergence between consecutive refinements
//
//   rate_i = log(err_{i+1}/err_i) / log(h_{i+1}/h_i)
func Rates(hs, errs []float64) (rates []float64, err error) {
	if len(hs) != len(errs) {
		return nil, fem.Errf(fem.ErrPrecondition, "number of sizes (%d) and errors (%d) differ", len(hs), len(errs))
	}
	for i := 1; i < len(hs); i++ {
		if !(hs[i] > 0 && hs[i-1] > 0 && errs[i] > 0 && errs[i-1] > 0) || hs[i] == hs[i-1] {
			return nil, fem.Errf(fem.ErrPrecondition, "sizes and errors must be positive and sizes must differ; i=%d", i)
		}
		rates = append(rates, math.Log(errs[i]/errs[i-1])/math.Log(hs[i]/hs[i-1]))
	}
	return
}
