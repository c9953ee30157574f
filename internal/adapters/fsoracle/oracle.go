// Package fsoracle is the minimal filesystem oracle a caller can run
// before planning: it stats every leaf input (a node with no
// producing edge) and reports its on-disk mtime to the state via
// Touch, so a first build sees real source files as dirty. It is
// deliberately not mtime-aware beyond that single stat — deciding
// whether a later mtime actually represents a change, and reporting
// completion of produced (non-leaf) nodes, is an executor's job and
// stays out of scope here (spec.md §5).
package fsoracle

import (
	"os"

	"go.ncore.dev/ncore/internal/core/domain"
)

// Stat touches every leaf input node in state that exists on disk,
// using its current mtime. Nodes with a producing edge are left alone:
// their dirtiness is driven by propagation from their inputs, not by
// a stat of a file that may not exist yet.
func Stat(state *domain.State) error {
	seen := make(map[*domain.Node]bool)
	for _, edge := range state.Edges {
		for _, in := range edge.Inputs {
			if in.InEdge != nil || seen[in] {
				continue
			}
			seen[in] = true

			info, err := os.Stat(in.File.Path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return err
			}
			in.File.Touch(int(info.ModTime().Unix()))
		}
	}
	return nil
}
