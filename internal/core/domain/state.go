package domain

import "go.trai.ch/zerr"

// InOut selects which side of an edge AddInOut appends to.
type InOut int

const (
	// In appends to an edge's input list.
	In InOut = iota
	// Out appends to an edge's output list.
	Out
)

// State is the root aggregate of a build graph: it owns the stat
// cache, the name→rule map, and every edge. Files, nodes, rules and
// edges are only ever reachable through a State; everything else holds
// non-owning pointers back into it.
type State struct {
	StatCache *StatCache
	Rules     map[string]*Rule
	Edges     []*Edge
}

// NewState creates an empty State.
func NewState() *State {
	return &State{
		StatCache: NewStatCache(),
		Rules:     make(map[string]*Rule),
	}
}

// AddRule parses command and registers the resulting rule under name,
// overwriting any existing rule with the same name (see SPEC_FULL.md §9
// on the deliberate choice to preserve this behavior).
func (s *State) AddRule(name, command string) (*Rule, error) {
	rule, err := NewRule(name, command)
	if err != nil {
		return nil, err
	}
	s.Rules[name] = rule
	return rule, nil
}

// AddEdge creates an edge bound to rule and appends it to the state.
func (s *State) AddEdge(rule *Rule) *Edge {
	e := NewEdge(rule)
	s.Edges = append(s.Edges, e)
	return e
}

// AddEdgeByRuleName looks up ruleName and creates an edge bound to it.
func (s *State) AddEdgeByRuleName(ruleName string) (*Edge, error) {
	rule, ok := s.Rules[ruleName]
	if !ok {
		return nil, zerr.With(ErrUnknownRule, "rule", ruleName)
	}
	return s.AddEdge(rule), nil
}

// GetNode interns path's file and ensures it has a node, creating one
// on first reference.
func (s *State) GetNode(path string) *Node {
	file := s.StatCache.GetFile(path)
	if file.Node == nil {
		file.Node = NewNode(file)
	}
	return file.Node
}

// AddInOut interns path, then wires it to edge on the given side. For
// In, the node is appended to edge's inputs and edge to the node's
// out-edges. For Out, the node is appended to edge's outputs and its
// in-edge is set — violating the single-producer invariant (the node
// already has an in-edge) is reported as ErrOutputAlreadyProduced
// rather than asserted, per SPEC_FULL.md §9.
func (s *State) AddInOut(edge *Edge, side InOut, path string) error {
	node := s.GetNode(path)
	switch side {
	case In:
		edge.Inputs = append(edge.Inputs, node)
		node.OutEdges = append(node.OutEdges, edge)
	case Out:
		if node.InEdge != nil {
			return zerr.With(ErrOutputAlreadyProduced, "path", path)
		}
		edge.Outputs = append(edge.Outputs, node)
		node.InEdge = edge
	}
	return nil
}
