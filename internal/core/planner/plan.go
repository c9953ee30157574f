// Package planner walks a build graph from a set of requested targets
// and yields a FIFO stream of edges whose inputs are all satisfied.
package planner

import (
	"go.trai.ch/zerr"

	"go.ncore.dev/ncore/internal/core/domain"
)

// ErrTargetHasNoProducer is returned by AddTarget when a dirty target
// has no incoming edge — there is nothing in the manifest that knows
// how to build it. SPEC_FULL.md §9 upgrades this from the reference's
// silent skip to a reported error.
var ErrTargetHasNoProducer = zerr.New("target has no producing edge")

// Plan is the transient per-build object: the set of nodes this build
// wants to produce, and the queue of edges ready to run now.
type Plan struct {
	state *domain.State
	want  map[*domain.Node]struct{}
	ready []*domain.Edge
}

// New creates an empty Plan over state.
func New(state *domain.State) *Plan {
	return &Plan{
		state: state,
		want:  make(map[*domain.Node]struct{}),
	}
}

// AddTargetPath interns path and seeds the plan with it.
func (p *Plan) AddTargetPath(path string) (bool, error) {
	return p.AddTarget(p.state.GetNode(path))
}

// AddTarget seeds the plan with node, a directly requested target. It
// returns false (and does nothing) if node is already clean — there is
// nothing to build. A dirty node with no producing edge is a reported
// error: spec.md §4.6 step 2/§7 item 4 is about a requested target with
// nothing in the manifest that knows how to build it. Otherwise the
// node joins the want set, its producing edge's inputs are recursively
// added, and the edge itself joins the ready queue once none of its
// inputs are themselves awaiting production — a post-order traversal
// over the input-side subgraph (spec.md §5).
func (p *Plan) AddTarget(node *domain.Node) (bool, error) {
	return p.addTarget(node, true)
}

// addTarget is AddTarget's recursive worker. top is true only for the
// node the caller explicitly requested; a dirty leaf with no producer
// reached while recursing into an edge's inputs is a satisfied source
// (already up to date from outside the build), not an error — only the
// top-level request is required to have a producer.
func (p *Plan) addTarget(node *domain.Node, top bool) (bool, error) {
	if !node.Dirty() {
		return false, nil
	}
	edge := node.InEdge
	if edge == nil {
		if top {
			return false, zerr.With(ErrTargetHasNoProducer, "path", node.File.Path)
		}
		return false, nil
	}
	if _, ok := p.want[node]; ok {
		return true, nil
	}

	p.want[node] = struct{}{}

	awaitingInputs := false
	for _, in := range edge.Inputs {
		added, err := p.addTarget(in, false)
		if err != nil {
			return false, err
		}
		if added {
			awaitingInputs = true
		}
	}

	if !awaitingInputs {
		p.ready = append(p.ready, edge)
	}

	return true, nil
}

// FindWork pops and returns the head of the ready queue in FIFO order,
// or nil if it is empty.
func (p *Plan) FindWork() *domain.Edge {
	if len(p.ready) == 0 {
		return nil
	}
	edge := p.ready[0]
	p.ready = p.ready[1:]
	return edge
}

// Wants reports whether node is in this plan's want set (invariant P7,
// spec.md §8).
func (p *Plan) Wants(node *domain.Node) bool {
	_, ok := p.want[node]
	return ok
}
