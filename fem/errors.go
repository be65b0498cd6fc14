// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// error kinds. use errors.Is to check for them
var (
	ErrDomainConstruction = errors.New("domain construction failed")
	ErrSolveDiverged      = errors.New("minimiser did not converge")
	ErrGeometryInvalid    = errors.New("deformed geometry is invalid")
	ErrPrecondition       = errors.New("precondition failed")
)

// Errf returns an error of the given kind with a formatted message
func Errf(kind error, msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, io.Sf(msg, prm...))
}
