// Copyright 2026 Reverse ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public API for reverse-mode automatic
// differentiation.
//
// Create a Tape, register inputs on it, build an expression with the Var
// method set, then call Grad on the result to obtain the derivative with
// respect to every input in a single backward pass.
//
// Example:
//
//	import "github.com/reverse-ml/reverse/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    a := tape.AddVar(230.3)
//	    b := tape.AddVar(33.2)
//	    y := a.Div(b).Sub(a).Mul(b.Div(a).Add(a).Add(b)).Mul(a.Sub(b))
//	    grads := y.Grad()
//	    fmt.Println(grads.Wrt(a), grads.Wrt(b))
//	}
//
// Operations between Vars of different tapes panic with an error wrapping
// ErrTapeMismatch; recover it as a plain error with
// exceptions.TryCatch[error] from github.com/gomlx/exceptions when the
// expression inputs are not trusted.
package autodiff

import (
	"github.com/reverse-ml/reverse/internal/autodiff"
)

// Tape is the append-only log of differentiable computations (Wengert list).
type Tape = autodiff.Tape

// Var is a differentiable value recorded on a Tape.
type Var = autodiff.Var

// Adjoints is the dense backward-pass result, queried with Wrt and WrtVars.
type Adjoints = autodiff.Adjoints

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Sum folds the variables into pairwise additions. It panics with an error
// wrapping ErrEmptySum when vars is empty.
func Sum(vars []Var) Var {
	return autodiff.Sum(vars)
}

// ScalarSub computes c - v for a constant c.
func ScalarSub(c float64, v Var) Var {
	return autodiff.ScalarSub(c, v)
}

// ScalarDiv computes c / v for a constant c.
func ScalarDiv(c float64, v Var) Var {
	return autodiff.ScalarDiv(c, v)
}

// ScalarPow raises a constant base to a variable exponent.
func ScalarPow(c float64, v Var) Var {
	return autodiff.ScalarPow(c, v)
}

// SameTape reports whether two variables share one tape instance.
func SameTape(a, b Var) bool {
	return autodiff.SameTape(a, b)
}

// Sentinel errors panicked (wrapped) by precondition violations.
var (
	ErrTapeMismatch = autodiff.ErrTapeMismatch
	ErrEmptySum     = autodiff.ErrEmptySum
)
