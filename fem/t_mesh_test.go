// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. number of nodes")

	dom, err := NewDomain(-10, 10, 3, 5)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	io.Pforan("left  = %v\n", dom.Rod(Left))
	io.Pforan("right = %v\n", dom.Rod(Right))
	chk.Vector(tst, "left", 1e-15, dom.Rod(Left), []float64{-10, -7.875, -5.75, -3.625, -1.5})
	chk.Vector(tst, "right", 1e-15, dom.Rod(Right), []float64{1.5, 3.625, 5.75, 7.875, 10})
	chk.Vector(tst, "dx", 1e-15, dom.Lengths(Right), []float64{2.125, 2.125, 2.125, 2.125})
	chk.Scalar(tst, "spring length", 1e-15, dom.SpringLen, 3)
	chk.IntAssert(dom.Nnodes(Left), 5)
	chk.IntAssert(dom.Nelems(Right), 4)
	chk.IntAssert(dom.Ntotal(), 10)
	chk.IntAssert(dom.Nfree(), 8)
	chk.Vector(tst, "centers", 1e-15, dom.Centers(), []float64{
		-8.9375, -6.8125, -4.6875, -2.5625,
		2.5625, 4.6875, 6.8125, 8.9375,
	})

	// minimal mesh
	dom, err = NewDomain(-2, 2, 1, 2)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	chk.Vector(tst, "left (minimal)", 1e-15, dom.Rod(Left), []float64{-2, -0.5})
	chk.Vector(tst, "right (minimal)", 1e-15, dom.Rod(Right), []float64{0.5, 2})
	chk.IntAssert(dom.Nfree(), 2)
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. step size")

	dom, err := NewDomainStep(-10, 10, 3, 0.1)
	if err != nil {
		tst.Errorf("NewDomainStep failed:\n%v", err)
		return
	}
	chk.IntAssert(dom.Nnodes(Left), 86)
	chk.IntAssert(dom.Nnodes(Right), 86)
	chk.Scalar(tst, "left[0]", 1e-17, dom.Rod(Left)[0], -10)
	chk.Scalar(tst, "left[last]", 1e-17, dom.Rod(Left)[85], -1.5)
	chk.Scalar(tst, "right[0]", 1e-17, dom.Rod(Right)[0], 1.5)
	chk.Scalar(tst, "right[last]", 1e-17, dom.Rod(Right)[85], 10)
	chk.Scalar(tst, "left[10]", 1e-14, dom.Rod(Left)[10], -9)
	for side := 0; side < 2; side++ {
		for _, h := range dom.Lengths(side) {
			chk.Scalar(tst, "h", 1e-13, h, 0.1)
		}
	}

	// step does not reproduce the ends
	_, err = NewDomainStep(-10, 10, 3, 0.3)
	if !errors.Is(err, ErrDomainConstruction) {
		tst.Errorf("step=0.3 should fail with domain construction error. err = %v", err)
	}
	io.Pforan("err = %v\n", err)

	// step larger than rod
	_, err = NewDomainStep(-10, 10, 3, 20)
	if !errors.Is(err, ErrDomainConstruction) {
		tst.Errorf("step=20 should fail with domain construction error. err = %v", err)
	}
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. invalid input")

	for i, f := range []func() (*Domain, error){
		func() (*Domain, error) { return NewDomain(-10, 10, 3, 1) },
		func() (*Domain, error) { return NewDomain(-10, 10, 0, 5) },
		func() (*Domain, error) { return NewDomain(-1, 10, 3, 5) },
		func() (*Domain, error) { return NewDomain(-10, 1.5, 3, 5) },
		func() (*Domain, error) { return NewDomainStep(-10, 10, 3, 0) },
		func() (*Domain, error) { return NewDomainStep(-10, 10, 3, -0.1) },
		func() (*Domain, error) { return NewDomainRods([]float64{0}, []float64{1, 2}) },
		func() (*Domain, error) { return NewDomainRods([]float64{0, 0, 1}, []float64{2, 3}) },
		func() (*Domain, error) { return NewDomainRods([]float64{0, 2}, []float64{1, 3}) },
		func() (*Domain, error) { return NewDomainRods([]float64{0, 1}, []float64{1, 3}) },
	} {
		dom, err := f()
		if !errors.Is(err, ErrDomainConstruction) {
			tst.Errorf("case %d should fail with domain construction error. err = %v", i, err)
		}
		if dom != nil {
			tst.Errorf("case %d should not return a domain", i)
		}
	}
}

func Test_mesh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh04. fields")

	dom, err := NewDomainRods([]float64{-3, -2, -1}, []float64{1, 2})
	if err != nil {
		tst.Errorf("NewDomainRods failed:\n%v", err)
		return
	}

	// pad and split
	full, err := dom.Pad([]float64{1, 2, 3})
	if err != nil {
		tst.Errorf("Pad failed:\n%v", err)
		return
	}
	chk.Vector(tst, "full", 1e-17, full, []float64{0, 1, 2, 3, 0})
	u, err := dom.Split(full)
	if err != nil {
		tst.Errorf("Split failed:\n%v", err)
		return
	}
	chk.Vector(tst, "uL", 1e-17, u[Left], []float64{0, 1, 2})
	chk.Vector(tst, "uR", 1e-17, u[Right], []float64{3, 0})

	// deformed positions
	pos, err := dom.Deformed(u)
	if err != nil {
		tst.Errorf("Deformed failed:\n%v", err)
		return
	}
	chk.Vector(tst, "xL+uL", 1e-17, pos[Left], []float64{-3, -1, 1})
	chk.Vector(tst, "xR+uR", 1e-17, pos[Right], []float64{4, 2})

	// wrong lengths
	_, err = dom.Pad([]float64{1, 2})
	if !errors.Is(err, ErrPrecondition) {
		tst.Errorf("Pad should have failed. err = %v", err)
	}
	_, err = dom.Split(full[1:])
	if !errors.Is(err, ErrPrecondition) {
		tst.Errorf("Split should have failed. err = %v", err)
	}
	_, err = dom.Deformed([2][]float64{u[Left], nil})
	if !errors.Is(err, ErrPrecondition) {
		tst.Errorf("Deformed should have failed. err = %v", err)
	}
}
