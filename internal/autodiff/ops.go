package autodiff

import (
	"math"

	"github.com/pkg/errors"
)

// Binary and scalar-mixed arithmetic. Each call records exactly one node;
// derived forms (Sub, Div, Neg, Cbrt) are rewritten into the primitive they
// are built from, so their single node comes from that primitive. Scalars
// are constants: they occupy no tape position and their weight slot is zero.

// Add computes v + rhs. Weights: [1, 1].
func (v Var) Add(rhs Var) Var {
	mustSameTape("Add", v, rhs)
	return Var{
		value:    v.value + rhs.value,
		location: v.tape.addNode(v.location, rhs.location, 1, 1),
		tape:     v.tape,
	}
}

// AddScalar computes v + c. Weights: [1, 0].
func (v Var) AddScalar(c float64) Var {
	return v.unary(v.value+c, 1)
}

// Sub computes v - rhs, recorded as v + (-rhs).
func (v Var) Sub(rhs Var) Var {
	return v.Add(rhs.Neg())
}

// SubScalar computes v - c.
func (v Var) SubScalar(c float64) Var {
	return v.AddScalar(-c)
}

// ScalarSub computes c - v. Weights: [0, -1] on v's node slot.
func ScalarSub(c float64, v Var) Var {
	return Var{
		value:    c - v.value,
		location: v.tape.addNode(v.location, v.location, 0, -1),
		tape:     v.tape,
	}
}

// Mul computes v * rhs. Weights: [rhs, v].
func (v Var) Mul(rhs Var) Var {
	mustSameTape("Mul", v, rhs)
	return Var{
		value:    v.value * rhs.value,
		location: v.tape.addNode(v.location, rhs.location, rhs.value, v.value),
		tape:     v.tape,
	}
}

// MulScalar computes v * c. Weights: [c, 0].
func (v Var) MulScalar(c float64) Var {
	return v.unary(v.value*c, c)
}

// Div computes v / rhs, recorded as v * (1/rhs).
func (v Var) Div(rhs Var) Var {
	mustSameTape("Div", v, rhs)
	return v.Mul(rhs.Recip())
}

// DivScalar computes v / c.
func (v Var) DivScalar(c float64) Var {
	return v.MulScalar(1 / c)
}

// ScalarDiv computes c / v. Weights: [0, -c/v²].
func ScalarDiv(c float64, v Var) Var {
	return Var{
		value:    c / v.value,
		location: v.tape.addNode(v.location, v.location, 0, -c/(v.value*v.value)),
		tape:     v.tape,
	}
}

// Neg computes -v, recorded as v * (-1).
func (v Var) Neg() Var {
	return v.MulScalar(-1)
}

// Pow raises v to a variable exponent. Weights: [y·x^(y-1), x^y·ln x].
func (v Var) Pow(rhs Var) Var {
	mustSameTape("Pow", v, rhs)
	return Var{
		value: math.Pow(v.value, rhs.value),
		location: v.tape.addNode(
			v.location,
			rhs.location,
			rhs.value*math.Pow(v.value, rhs.value-1),
			math.Pow(v.value, rhs.value)*math.Log(v.value),
		),
		tape: v.tape,
	}
}

// PowScalar raises v to a constant exponent. Weight: c·x^(c-1).
func (v Var) PowScalar(c float64) Var {
	return v.unary(math.Pow(v.value, c), c*math.Pow(v.value, c-1))
}

// ScalarPow raises a constant base to a variable exponent.
//
// Known quirk: the recorded weight is x·c^(x-1), not the analytic
// derivative c^x·ln c. Compose MulScalar(ln c) and Exp when the analytic
// gradient is required.
func ScalarPow(c float64, v Var) Var {
	return Var{
		value:    math.Pow(c, v.value),
		location: v.tape.addNode(v.location, v.location, 0, v.value*math.Pow(c, v.value-1)),
		tape:     v.tape,
	}
}

// Sum folds the variables into pairwise additions, left to right. It panics
// with a wrapped ErrEmptySum when vars is empty.
func Sum(vars []Var) Var {
	if len(vars) == 0 {
		panic(errors.WithStack(ErrEmptySum))
	}
	acc := vars[0]
	for _, v := range vars[1:] {
		acc = acc.Add(v)
	}
	return acc
}
