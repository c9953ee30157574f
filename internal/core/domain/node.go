package domain

// Node is a vertex in the build DAG: a file's build status. A node
// holds a non-owning back-reference to its file, at most one incoming
// edge (the edge that produces it), and every outgoing edge that
// consumes it as an input.
type Node struct {
	File     *FileRecord
	dirty    bool
	InEdge   *Edge
	OutEdges []*Edge
}

// NewNode creates a node for the given file record.
func NewNode(file *FileRecord) *Node {
	return &Node{File: file}
}

// Dirty reports whether this node is marked as needing (re)building.
func (n *Node) Dirty() bool {
	return n.dirty
}

// MarkDirty sets the dirty flag and propagates to every downstream edge.
// A node already marked dirty returns immediately, bounding the total
// traversal to O(edges + nodes) reachable downstream regardless of how
// many paths lead back to it (invariant P4/P5, spec.md §8).
func (n *Node) MarkDirty() {
	if n.dirty {
		return
	}
	n.dirty = true
	for _, e := range n.OutEdges {
		e.markDirtyFrom(n)
	}
}
