package autodiff

import (
	"k8s.io/klog/v2"
)

// Adjoints is the dense result of a backward pass: one accumulated
// derivative per node that existed on the tape when Grad was called, indexed
// by tape position. Query it through Wrt/WrtVars with the original handles.
type Adjoints []float64

// Grad runs the backward pass from v and returns the adjoint of every node
// on the tape.
//
// The adjoint vector is seeded with 1 at v's own position, then the tape is
// scanned from the last node down to position 0, pushing each node's adjoint
// into its dependencies weighted by the recorded local derivatives. Because
// a node only ever depends on earlier positions, by the time position i is
// visited every node that could contribute to its adjoint has already been
// processed. Leaves self-reference with zero weight, so their step is a
// no-op. One pass, no recursion, O(tape length).
func (v Var) Grad() Adjoints {
	n := v.tape.Len()
	if klog.V(2).Enabled() {
		klog.Infof("autodiff: backward pass over %d nodes from position %d", n, v.location)
	}

	adjoints := make(Adjoints, n)
	adjoints[v.location] = 1

	for i := n - 1; i >= 0; i-- {
		nd := &v.tape.nodes[i]
		adjoints[nd.deps[0]] += nd.weights[0] * adjoints[i]
		adjoints[nd.deps[1]] += nd.weights[1] * adjoints[i]
	}
	return adjoints
}

// Wrt returns the derivative of the differentiated output with respect to v.
func (a Adjoints) Wrt(v Var) float64 {
	return a[v.location]
}

// WrtVars returns the derivatives with respect to each given variable, in
// argument order.
func (a Adjoints) WrtVars(vars ...Var) []float64 {
	out := make([]float64, len(vars))
	for i, v := range vars {
		out[i] = a.Wrt(v)
	}
	return out
}
