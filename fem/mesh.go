// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// rod indices
const (
	Left  = 0 // left rod
	Right = 1 // right rod
)

// TolStep is the relative tolerance used to check that a step size reproduces the rod ends
var TolStep = 1e-8

// Domain holds the nodes of two collinear rods separated by a gap (the spring)
//
//          left rod               spring             right rod
//   o----o----o----o----o  ~~~~~~~~~~~~~~~~~~~  o----o----o----o----o
//   xmin           -slen/2                      slen/2            xmax
//
// The node coordinates must not be modified after construction
type Domain struct {
	SpringLen float64 // reference gap length: right[0] - left[last]

	rods [2][]float64 // [2][nnodes] node coordinates
	dx   [2][]float64 // [2][nelems] element lengths
}

// NewDomain returns a domain with nnodes evenly spaced nodes in each rod
//  Input:
//   xmin, xmax -- outer ends of the left and right rods
//   springLen  -- reference gap length. the rods are [xmin,-springLen/2] and [springLen/2,xmax]
//   nnodes     -- number of nodes per rod; nnodes ≥ 2
func NewDomain(xmin, xmax, springLen float64, nnodes int) (o *Domain, err error) {
	err = check_interval(xmin, xmax, springLen)
	if err != nil {
		return
	}
	if nnodes < 2 {
		return nil, Errf(ErrDomainConstruction, "number of nodes per rod must be at least 2; nnodes=%d is invalid", nnodes)
	}
	h := springLen / 2.0
	left := utl.LinSpace(xmin, -h, nnodes)
	right := utl.LinSpace(h, xmax, nnodes)
	left[0], left[nnodes-1] = xmin, -h
	right[0], right[nnodes-1] = h, xmax
	return NewDomainRods(left, right)
}

// NewDomainStep returns a domain with nodes sampled at a constant step in each rod
//  Note: the step must divide both rod lengths (within TolStep); the last node is then
//        snapped onto the rod end
func NewDomainStep(xmin, xmax, springLen, step float64) (o *Domain, err error) {
	err = check_interval(xmin, xmax, springLen)
	if err != nil {
		return
	}
	if step <= 0 {
		return nil, Errf(ErrDomainConstruction, "step size must be positive; step=%g is invalid", step)
	}
	h := springLen / 2.0
	left, err := sample_rod(xmin, -h, step)
	if err != nil {
		return
	}
	right, err := sample_rod(h, xmax, step)
	if err != nil {
		return
	}
	return NewDomainRods(left, right)
}

// NewDomainRods returns a domain with the given rods
//  Note: the slices are copied
func NewDomainRods(left, right []float64) (o *Domain, err error) {
	o = new(Domain)
	for side, x := range [][]float64{left, right} {
		if len(x) < 2 {
			return nil, Errf(ErrDomainConstruction, "rod %d must have at least 2 nodes; it has %d", side, len(x))
		}
		o.rods[side] = make([]float64, len(x))
		o.dx[side] = make([]float64, len(x)-1)
		copy(o.rods[side], x)
		for i := 1; i < len(x); i++ {
			o.dx[side][i-1] = x[i] - x[i-1]
			if !(o.dx[side][i-1] > 0) {
				return nil, Errf(ErrDomainConstruction, "nodes of rod %d must be strictly increasing; x[%d]=%g and x[%d]=%g", side, i-1, x[i-1], i, x[i])
			}
		}
	}
	o.SpringLen = right[0] - left[len(left)-1]
	if !(o.SpringLen > 0) {
		return nil, Errf(ErrDomainConstruction, "left rod must end before the right rod starts; %g ≥ %g", left[len(left)-1], right[0])
	}
	return
}

// Rod returns the node coordinates of one rod
func (o *Domain) Rod(side int) []float64 { return o.rods[side] }

// Lengths returns the element lengths of one rod
func (o *Domain) Lengths(side int) []float64 { return o.dx[side] }

// Nnodes returns the number of nodes of one rod
func (o *Domain) Nnodes(side int) int { return len(o.rods[side]) }

// Nelems returns the number of elements of one rod
func (o *Domain) Nelems(side int) int { return len(o.dx[side]) }

// Ntotal returns the number of nodes in both rods
func (o *Domain) Ntotal() int { return len(o.rods[Left]) + len(o.rods[Right]) }

// Nfree returns the number of nodes not under Dirichlet conditions
func (o *Domain) Nfree() int { return o.Ntotal() - 2 }

// Centers returns the centres of all elements; left rod first
func (o *Domain) Centers() (xc []float64) {
	xc = make([]float64, 0, o.Nelems(Left)+o.Nelems(Right))
	for _, x := range o.rods {
		for i := 1; i < len(x); i++ {
			xc = append(xc, (x[i]+x[i-1])/2.0)
		}
	}
	return
}

// Split splits a displacement field of all nodes (left rod first) into the rods' fields
//  Note: the returned slices share memory with u
func (o *Domain) Split(u []float64) (rods [2][]float64, err error) {
	if len(u) != o.Ntotal() {
		return rods, Errf(ErrPrecondition, "displacement field must have %d values; it has %d", o.Ntotal(), len(u))
	}
	nl := o.Nnodes(Left)
	rods[Left], rods[Right] = u[:nl:nl], u[nl:]
	return
}

// Pad returns the displacement field of all nodes given the values at free nodes
func (o *Domain) Pad(x []float64) (u []float64, err error) {
	if len(x) != o.Nfree() {
		return nil, Errf(ErrPrecondition, "free displacement field must have %d values; it has %d", o.Nfree(), len(x))
	}
	u = make([]float64, o.Ntotal())
	copy(u[1:], x)
	return
}

// Deformed returns the positions of nodes after the displacements u are applied
func (o *Domain) Deformed(u [2][]float64) (pos [2][]float64, err error) {
	for side, x := range o.rods {
		if len(u[side]) != len(x) {
			return pos, Errf(ErrPrecondition, "rod %d has %d nodes but %d displacements were given", side, len(x), len(u[side]))
		}
		pos[side] = make([]float64, len(x))
		for i := range x {
			pos[side][i] = x[i] + u[side][i]
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func check_interval(xmin, xmax, springLen float64) error {
	if !(springLen > 0) {
		return Errf(ErrDomainConstruction, "spring length must be positive; springLen=%g is invalid", springLen)
	}
	h := springLen / 2.0
	if !(xmin < -h && xmax > h) {
		return Errf(ErrDomainConstruction, "interval [%g, %g] must enclose the spring [%g, %g]", xmin, xmax, -h, h)
	}
	return nil
}

func sample_rod(start, end, step float64) (x []float64, err error) {
	span := end - start
	nsteps := math.Round(span / step)
	if nsteps < 1 {
		return nil, Errf(ErrDomainConstruction, "step=%g is larger than the rod [%g, %g]", step, start, end)
	}
	last := start + nsteps*step
	if math.Abs(last-end) > TolStep*utl.Max(1.0, math.Abs(span)) {
		return nil, Errf(ErrDomainConstruction, "step=%g does not reproduce the rod end %g; last sampled node is %g", step, end, last)
	}
	n := int(nsteps) + 1
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = start + float64(i)*step
	}
	x[n-1] = end
	return
}
