// Package autodiff implements reverse-mode automatic differentiation over a
// Wengert list (gradient tape).
//
// A Tape records every elementary operation performed on the Vars derived
// from it: each operation appends exactly one node holding the local partial
// derivatives with respect to its operands. Calling Grad on a terminal Var
// replays the tape once in reverse and yields the adjoint of every recorded
// node, so the gradients with respect to all inputs of a scalar result come
// out of a single backward pass.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	params := tape.AddVars(5, 2, 0)
//	y := params[0].Pow(params[1]).Add(params[2].Asinh())
//	grads := y.Grad()
//	fmt.Println(grads.WrtVars(params...))
//
// The Tape is not safe for concurrent mutation; all Vars of one Tape must be
// built and differentiated from a single goroutine, or under external
// locking supplied by the caller.
package autodiff

// node is one recorded elementary computation: the tape positions of its two
// operands and the local partial derivative with respect to each. Leaves,
// unary results, and binary results all share this shape; a unary node
// repeats its single dependency with a zero second weight, and a leaf
// references itself with both weights zero so the backward scan can treat
// every position uniformly.
type node struct {
	weights [2]float64
	deps    [2]int
}

// Tape is the append-only log of differentiable computations (a Wengert
// list). Many Var handles reference one Tape; the Tape itself knows nothing
// about the handles it has issued.
//
// Structural invariant: a node at position i only ever depends on positions
// <= i. Every operation appends its result after its operands, so a plain
// reverse index scan visits the log in reverse-topological order.
type Tape struct {
	nodes []node
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of recorded nodes (inputs and intermediate values).
func (t *Tape) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tape has no recorded nodes.
func (t *Tape) IsEmpty() bool {
	return t.Len() == 0
}

// addNode appends a node and returns its position. Callers guarantee that
// dep0 and dep1 already exist on the tape (or equal the new position, for
// leaves); the tape trusts the operation layer and does not validate.
func (t *Tape) addNode(dep0, dep1 int, w0, w1 float64) int {
	n := len(t.nodes)
	t.nodes = append(t.nodes, node{
		weights: [2]float64{w0, w1},
		deps:    [2]int{dep0, dep1},
	})
	return n
}

// AddVar records a new input with the given value and returns its handle.
// The leaf node references itself with zero weights, so it contributes
// nothing during the backward scan beyond holding its own adjoint.
func (t *Tape) AddVar(value float64) Var {
	n := t.Len()
	return Var{
		value:    value,
		location: t.addNode(n, n, 0, 0),
		tape:     t,
	}
}

// AddVars records one input per value, in argument order, and returns the
// handles in the same order.
func (t *Tape) AddVars(values ...float64) []Var {
	vars := make([]Var, len(values))
	for i, v := range values {
		vars[i] = t.AddVar(v)
	}
	return vars
}

// ZeroGrad resets every recorded weight pair to zero in place. Length and
// dependency structure are untouched. Weights are always written fresh when
// a node is recorded, so this only affects backward passes over the nodes
// that already exist.
func (t *Tape) ZeroGrad() {
	for i := range t.nodes {
		t.nodes[i].weights = [2]float64{0, 0}
	}
}

// Clear removes all nodes. Every Var previously issued by this tape becomes
// invalid: its location may be reissued to a new node, and using a stale
// handle afterwards reads wrong data or panics on an out-of-range index.
// Callers must drop all handles before clearing.
func (t *Tape) Clear() {
	t.nodes = t.nodes[:0]
}
