// Package domain holds the build graph's core model: interned files,
// nodes, rules and edges, and the dirtiness propagation that ties them
// together.
package domain

// FileRecord is the interned metadata for a single path: its last-known
// modification time and a non-owning back-reference to the node that
// tracks its build status, if any.
//
// At most one FileRecord exists per path for the lifetime of a State;
// see StatCache.
type FileRecord struct {
	Path  string
	Mtime int
	Node  *Node
}

// Touch updates the file's mtime and, if it has a node, propagates
// dirtiness from that node. Every call from a file that has a node is
// treated as a dirtying event — this layer does not compare against the
// previous mtime (see SPEC_FULL.md §9).
func (f *FileRecord) Touch(mtime int) {
	f.Mtime = mtime
	if f.Node != nil {
		f.Node.MarkDirty()
	}
}

// StatCache interns paths to a single FileRecord each. Entries are never
// removed.
type StatCache struct {
	paths map[string]*FileRecord
}

// NewStatCache creates an empty StatCache.
func NewStatCache() *StatCache {
	return &StatCache{paths: make(map[string]*FileRecord)}
}

// GetFile returns the FileRecord for path, creating it with mtime 0 and
// no node if this is the first reference.
func (c *StatCache) GetFile(path string) *FileRecord {
	if f, ok := c.paths[path]; ok {
		return f
	}
	f := &FileRecord{Path: path}
	c.paths[path] = f
	return f
}

// Lookup returns the FileRecord for path without creating one, and
// whether it was found. Exposed for diagnostics and tests; graph
// construction always goes through GetFile/GetNode.
func (c *StatCache) Lookup(path string) (*FileRecord, bool) {
	f, ok := c.paths[path]
	return f, ok
}
