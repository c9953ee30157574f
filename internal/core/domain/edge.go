package domain

// Edge is a build action: one rule applied to ordered input nodes to
// produce ordered output nodes.
type Edge struct {
	Rule    *Rule
	Inputs  []*Node
	Outputs []*Node
}

// NewEdge creates an edge bound to rule, with empty input/output lists
// ready to be appended to by the graph mutation API.
func NewEdge(rule *Rule) *Edge {
	return &Edge{Rule: rule}
}

// markDirtyFrom is the dirtiness propagation step for a single edge: if
// node is not one of this edge's inputs, it has nothing to do with this
// edge (defensive against a mis-wired graph, see spec.md §4.4);
// otherwise every output becomes dirty.
func (e *Edge) markDirtyFrom(node *Node) {
	found := false
	for _, in := range e.Inputs {
		if in == node {
			found = true
			break
		}
	}
	if !found {
		return
	}
	for _, out := range e.Outputs {
		out.MarkDirty()
	}
}

// EvaluateCommand expands this edge's rule's command template against
// an EdgeEnv built for this edge.
func (e *Edge) EvaluateCommand() string {
	return e.Rule.Command.Evaluate(NewEdgeEnv(e))
}
