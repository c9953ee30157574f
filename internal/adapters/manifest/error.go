package manifest

import (
	"fmt"

	"go.trai.ch/zerr"
)

// ErrParse is the sentinel wrapped by every manifest syntax error.
var ErrParse = zerr.New("manifest parse error")

// Error is a manifest diagnostic: a 1-based line/column, the offending
// token (if any), and a human-readable description. It renders exactly
// as spec.md §6 specifies: "line <L>, col <C>: <message>".
type Error struct {
	Line    int
	Col     int
	Token   string
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Message)
}

// Unwrap exposes the wrapped zerr sentinel so callers can
// errors.Is(err, manifest.ErrParse).
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(line, col int, token, message string) *Error {
	return &Error{
		Line:    line,
		Col:     col,
		Token:   token,
		Message: message,
		cause:   zerr.With(zerr.With(zerr.With(ErrParse, "line", line), "col", col), "token", token),
	}
}
