package domain

import "go.trai.ch/zerr"

var (
	// ErrOutputAlreadyProduced is returned when two edges claim the same
	// output node, violating the single-producer invariant.
	ErrOutputAlreadyProduced = zerr.New("output already has a producing edge")

	// ErrUnknownRule is returned when an edge is created against a rule
	// name that has not been declared.
	ErrUnknownRule = zerr.New("unknown rule")
)
