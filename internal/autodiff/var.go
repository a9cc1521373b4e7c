package autodiff

import (
	"math"
	"strconv"
)

// Var is a differentiable value: a float payload plus the tape position of
// the node that produced it. Vars are cheap copyable handles; all shared
// state lives on the Tape. A Var must not outlive its Tape or survive a
// Clear of it.
type Var struct {
	value    float64
	location int
	tape     *Tape
}

// Value returns the current numeric value of the variable.
func (v Var) Value() float64 {
	return v.value
}

// Tape returns the tape this variable is recorded on.
func (v Var) Tape() *Tape {
	return v.tape
}

// String implements fmt.Stringer, formatting only the numeric value.
func (v Var) String() string {
	return strconv.FormatFloat(v.value, 'g', -1, 64)
}

// unary appends a single-operand node with local derivative w and returns
// the handle for the result. The second slot repeats the dependency with
// zero weight so the node shape stays uniform.
func (v Var) unary(value, w float64) Var {
	return Var{
		value:    value,
		location: v.tape.addNode(v.location, v.location, w, 0),
		tape:     v.tape,
	}
}

// Recip computes 1/x. Derivative: -1/x².
func (v Var) Recip() Var {
	return v.unary(1/v.value, -1/(v.value*v.value))
}

// Sin computes sin(x). Derivative: cos(x).
func (v Var) Sin() Var {
	return v.unary(math.Sin(v.value), math.Cos(v.value))
}

// Cos computes cos(x). Derivative: -sin(x).
func (v Var) Cos() Var {
	return v.unary(math.Cos(v.value), -math.Sin(v.value))
}

// Tan computes tan(x). Derivative: 1/cos²(x).
func (v Var) Tan() Var {
	c := math.Cos(v.value)
	return v.unary(math.Tan(v.value), 1/(c*c))
}

// Ln computes the natural logarithm. Derivative: 1/x.
func (v Var) Ln() Var {
	return v.unary(math.Log(v.value), 1/v.value)
}

// Log computes the logarithm in the given base. Derivative: 1/(x·ln base).
func (v Var) Log(base float64) Var {
	return v.unary(math.Log(v.value)/math.Log(base), 1/(v.value*math.Log(base)))
}

// Log2 computes the base-2 logarithm.
func (v Var) Log2() Var {
	return v.Log(2)
}

// Log10 computes the base-10 logarithm.
func (v Var) Log10() Var {
	return v.Log(10)
}

// Ln1p computes ln(1+x), accurate near zero. Derivative: 1/(1+x).
func (v Var) Ln1p() Var {
	return v.unary(math.Log1p(v.value), 1/(1+v.value))
}

// Asin computes arcsin(x). Derivative: 1/√(1-x²).
func (v Var) Asin() Var {
	return v.unary(math.Asin(v.value), 1/math.Sqrt(1-v.value*v.value))
}

// Acos computes arccos(x). Derivative: -1/√(1-x²).
func (v Var) Acos() Var {
	return v.unary(math.Acos(v.value), -1/math.Sqrt(1-v.value*v.value))
}

// Atan computes arctan(x). Derivative: 1/(1+x²).
func (v Var) Atan() Var {
	return v.unary(math.Atan(v.value), 1/(1+v.value*v.value))
}

// Sinh computes sinh(x). Derivative: cosh(x).
func (v Var) Sinh() Var {
	return v.unary(math.Sinh(v.value), math.Cosh(v.value))
}

// Cosh computes cosh(x). Derivative: sinh(x).
func (v Var) Cosh() Var {
	return v.unary(math.Cosh(v.value), math.Sinh(v.value))
}

// Tanh computes tanh(x). Derivative: 1/cosh²(x).
func (v Var) Tanh() Var {
	c := math.Cosh(v.value)
	return v.unary(math.Tanh(v.value), 1/(c*c))
}

// Asinh computes arsinh(x). Derivative: 1/√(1+x²).
func (v Var) Asinh() Var {
	return v.unary(math.Asinh(v.value), 1/math.Sqrt(1+v.value*v.value))
}

// Acosh computes arcosh(x). Derivative: 1/√(x²-1).
func (v Var) Acosh() Var {
	return v.unary(math.Acosh(v.value), 1/math.Sqrt(v.value*v.value-1))
}

// Atanh computes artanh(x). Derivative: 1/(1-x²).
func (v Var) Atanh() Var {
	return v.unary(math.Atanh(v.value), 1/(1-v.value*v.value))
}

// Exp computes eˣ. Derivative: eˣ.
func (v Var) Exp() Var {
	e := math.Exp(v.value)
	return v.unary(e, e)
}

// Exp2 computes 2ˣ. Derivative: 2ˣ·ln 2.
func (v Var) Exp2() Var {
	e := math.Exp2(v.value)
	return v.unary(e, e*math.Ln2)
}

// Sqrt computes √x. Derivative: 1/(2√x).
func (v Var) Sqrt() Var {
	s := math.Sqrt(v.value)
	return v.unary(s, 1/(2*s))
}

// Cbrt computes the cube root, recorded as x^(1/3).
func (v Var) Cbrt() Var {
	return v.PowScalar(1.0 / 3.0)
}

// Abs computes |x|. Derivative: x/|x|, NaN at x = 0 where the function is
// not differentiable.
func (v Var) Abs() Var {
	a := math.Abs(v.value)
	w := math.NaN()
	if v.value != 0 {
		w = v.value / a
	}
	return v.unary(a, w)
}

// Powi raises x to an integer power. Derivative: n·x^(n-1).
func (v Var) Powi(n int) Var {
	fn := float64(n)
	return v.unary(math.Pow(v.value, fn), fn*math.Pow(v.value, fn-1))
}
