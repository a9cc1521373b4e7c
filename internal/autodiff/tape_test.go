package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildExpression records a small mixed expression and returns the tape and
// the leaves, for tests that inspect the recorded structure directly.
func buildExpression(t *testing.T) (*Tape, []Var, Var) {
	t.Helper()
	tape := NewTape()
	vars := tape.AddVars(0.3, 1.7, -2.2)
	res := vars[0].Sin().Mul(vars[1].Exp()).Add(vars[2].Abs().Sqrt()).Pow(vars[1]).DivScalar(3)
	return tape, vars, res
}

// TestTape_LeafEncoding checks that leaves are recorded as self-referencing
// zero-weight nodes at consecutive positions.
func TestTape_LeafEncoding(t *testing.T) {
	tape := NewTape()
	vars := tape.AddVars(1, 2, 3)
	require.Equal(t, 3, tape.Len())

	for i, v := range vars {
		assert.Equal(t, i, v.location)
		nd := tape.nodes[v.location]
		assert.Equal(t, [2]int{i, i}, nd.deps)
		assert.Equal(t, [2]float64{0, 0}, nd.weights)
	}
}

// TestTape_NoForwardReferences sweeps every recorded node and checks the
// dependency indices never point past the node itself.
func TestTape_NoForwardReferences(t *testing.T) {
	tape, _, _ := buildExpression(t)

	for i, nd := range tape.nodes {
		assert.LessOrEqual(t, nd.deps[0], i, "node %d references forward", i)
		assert.LessOrEqual(t, nd.deps[1], i, "node %d references forward", i)
	}
}

// TestTape_LengthIsLeavesPlusOperations verifies the tape grows by exactly
// one node per leaf and per elementary operation, counting the rewrites
// (Sub = Neg+Add, Div = Recip+Mul) at their primitive cost.
func TestTape_LengthIsLeavesPlusOperations(t *testing.T) {
	tape := NewTape()
	vars := tape.AddVars(1.5, 2.5) // 2 leaves
	require.Equal(t, 2, tape.Len())

	_ = vars[0].Sin()                // +1
	_ = vars[0].Add(vars[1])         // +1
	_ = vars[0].Mul(vars[1])         // +1
	_ = vars[0].AddScalar(4)         // +1
	assert.Equal(t, 2+4, tape.Len())

	_ = vars[0].Sub(vars[1]) // Neg then Add: +2
	assert.Equal(t, 2+4+2, tape.Len())

	_ = vars[0].Div(vars[1]) // Recip then Mul: +2
	assert.Equal(t, 2+4+4, tape.Len())
}

// TestTape_ZeroGrad checks the weight reset leaves length and dependencies
// intact, and that a subsequent backward pass sees only zero weights.
func TestTape_ZeroGrad(t *testing.T) {
	tape, vars, res := buildExpression(t)
	lenBefore := tape.Len()
	depsBefore := make([][2]int, lenBefore)
	for i, nd := range tape.nodes {
		depsBefore[i] = nd.deps
	}

	tape.ZeroGrad()

	require.Equal(t, lenBefore, tape.Len())
	for i, nd := range tape.nodes {
		assert.Equal(t, depsBefore[i], nd.deps)
		assert.Equal(t, [2]float64{0, 0}, nd.weights)
	}

	// With all weights zeroed nothing propagates: only the seed survives.
	grads := res.Grad()
	for _, v := range vars {
		assert.Zero(t, grads.Wrt(v))
	}
	assert.Equal(t, 1.0, grads[res.location])
}

// TestTape_Clear checks that clearing truncates to empty and positions are
// handed out from zero again.
func TestTape_Clear(t *testing.T) {
	tape, _, _ := buildExpression(t)
	require.NotZero(t, tape.Len())

	tape.Clear()
	require.Equal(t, 0, tape.Len())
	require.True(t, tape.IsEmpty())

	v := tape.AddVar(42)
	assert.Equal(t, 0, v.location)
	assert.Equal(t, 1, tape.Len())
}

// TestTape_AddVarsOrder checks batch registration preserves input order.
func TestTape_AddVarsOrder(t *testing.T) {
	tape := NewTape()
	values := []float64{3.5, -1, 0, 2.25}
	vars := tape.AddVars(values...)
	require.Len(t, vars, len(values))
	for i, v := range vars {
		assert.Equal(t, values[i], v.Value())
		assert.Equal(t, i, v.location)
	}
}

// TestVar_UnaryNodeShape checks a unary result repeats its dependency with a
// zero second weight.
func TestVar_UnaryNodeShape(t *testing.T) {
	tape := NewTape()
	x := tape.AddVar(0.25)
	y := x.Exp()

	nd := tape.nodes[y.location]
	assert.Equal(t, [2]int{x.location, x.location}, nd.deps)
	assert.Equal(t, y.Value(), nd.weights[0]) // d exp(x)/dx = exp(x)
	assert.Zero(t, nd.weights[1])
}
