package domain

import "go.ncore.dev/ncore/internal/core/eval"

// Rule is a named command template shared by every edge bound to it.
type Rule struct {
	Name    string
	Command *eval.Template
}

// NewRule parses command and returns a Rule, or the template parse
// error if the sigil grammar is violated.
func NewRule(name, command string) (*Rule, error) {
	tmpl, err := eval.Parse(command)
	if err != nil {
		return nil, err
	}
	return &Rule{Name: name, Command: tmpl}, nil
}
