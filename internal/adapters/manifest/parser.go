// Package manifest parses the declarative build file grammar of
// spec.md §4.5 into mutations on a domain.State: "rule" declarations
// register command templates, "build" declarations create edges and
// wire their input/output nodes.
package manifest

import (
	"fmt"
	"os"

	"go.trai.ch/zerr"

	"go.ncore.dev/ncore/internal/core/domain"
	"go.ncore.dev/ncore/internal/core/ports"
)

// Parser is a hand-written recursive-descent tokenizer over a fully
// buffered input, carrying (cur, line, col) through the parse exactly
// as the reference implementation does (SPEC_FULL.md §12).
type Parser struct {
	state  *domain.State
	logger ports.Logger

	buf       []byte
	cur       int
	line, col int
	token     string

	// tokLine, tokCol are the position of the start of the most recently
	// read token, captured before it is consumed — errors report this,
	// not the parser's current (post-token) position.
	tokLine, tokCol int
}

// New creates a Parser that mutates state. logger may be nil; when
// present it receives a warning on rule redefinition (SPEC_FULL.md §9).
func New(state *domain.State, logger ports.Logger) *Parser {
	return &Parser{state: state, logger: logger}
}

// Load reads path and parses it.
func Load(state *domain.State, logger ports.Logger, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return zerr.Wrap(err, "failed to read manifest")
	}
	return New(state, logger).Parse(data)
}

// Parse tokenizes and interprets input, mutating the parser's state as
// it goes. It returns the first diagnostic encountered, or nil.
func (p *Parser) Parse(input []byte) error {
	p.buf = input
	p.cur, p.line, p.col = 0, 0, 0

	for p.nextToken() {
		switch p.token {
		case "rule":
			if err := p.parseRule(); err != nil {
				return err
			}
		case "build":
			if err := p.parseEdge(); err != nil {
				return err
			}
		default:
			return p.errorf(p.token, "unknown token: %s", p.token)
		}
		p.skipWhitespace(true)
	}

	if p.cur < len(p.buf) {
		return p.errorf("", "expected eof")
	}
	return nil
}

func (p *Parser) parseRule() error {
	p.skipWhitespace(false)
	if !p.nextToken() {
		return p.errorf("", "expected rule name")
	}
	name := p.token
	if err := p.newline(); err != nil {
		return err
	}

	if !p.nextToken() || p.token != "command" {
		return p.errorf(p.token, "expected command")
	}
	p.skipWhitespace(false)
	command, err := p.readToNewline()
	if err != nil {
		return err
	}

	if _, exists := p.state.Rules[name]; exists && p.logger != nil {
		p.logger.Info("rule redefined: " + name)
	}
	if _, err := p.state.AddRule(name, command); err != nil {
		return p.errorf(command, "%s", err)
	}
	return nil
}

func (p *Parser) parseEdge() error {
	var ins, outs []string
	var rule string

	p.skipWhitespace(false)
	for {
		if !p.nextToken() {
			return p.errorf("", "expected input file list")
		}
		if p.token == ":" {
			break
		}
		ins = append(ins, p.token)
	}
	if !p.nextToken() {
		return p.errorf("", "expected build command name")
	}
	rule = p.token
	for p.nextToken() {
		outs = append(outs, p.token)
	}
	if err := p.newline(); err != nil {
		return err
	}

	edge, err := p.state.AddEdgeByRuleName(rule)
	if err != nil {
		return p.errorf(rule, "unknown build rule name: %s", rule)
	}
	for _, in := range ins {
		if err := p.state.AddInOut(edge, domain.In, in); err != nil {
			return p.errorf(in, "%s", err)
		}
	}
	for _, out := range outs {
		if err := p.state.AddInOut(edge, domain.Out, out); err != nil {
			return p.errorf(out, "%s", err)
		}
	}
	return nil
}

// skipWhitespace advances past spaces, and past newlines too when
// newline is true. It reports whether it skipped anything.
func (p *Parser) skipWhitespace(newline bool) bool {
	skipped := false
	for p.cur < len(p.buf) {
		switch {
		case p.buf[p.cur] == ' ':
			p.col++
		case newline && p.buf[p.cur] == '\n':
			p.col = 0
			p.line++
		default:
			return skipped
		}
		skipped = true
		p.cur++
	}
	return skipped
}

func (p *Parser) newline() error {
	if p.cur < len(p.buf) && p.buf[p.cur] == '\n' {
		p.cur++
		p.line++
		p.col = 0
		return nil
	}
	return p.errorf("", "expected newline")
}

func isIdentChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z':
		return true
	case '0' <= c && c <= '9':
		return true
	case c == '.' || c == '/' || c == '_' || c == '-':
		return true
	default:
		return false
	}
}

// nextToken skips spaces, then reads one identifier run or the single
// ':' token. It returns false at end of input or on an unrecognized
// character (empty token).
func (p *Parser) nextToken() bool {
	p.skipWhitespace(false)
	p.token = ""
	p.tokLine, p.tokCol = p.line, p.col
	if p.cur >= len(p.buf) {
		return false
	}

	switch {
	case isIdentChar(p.buf[p.cur]):
		start := p.cur
		for p.cur < len(p.buf) && isIdentChar(p.buf[p.cur]) {
			p.cur++
			p.col++
		}
		p.token = string(p.buf[start:p.cur])
	case p.buf[p.cur] == ':':
		p.token = ":"
		p.cur++
		p.col++
	}

	return p.token != ""
}

func (p *Parser) readToNewline() (string, error) {
	start := p.cur
	for p.cur < len(p.buf) && p.buf[p.cur] != '\n' {
		p.cur++
		p.col++
	}
	text := string(p.buf[start:p.cur])
	if err := p.newline(); err != nil {
		return "", err
	}
	return text, nil
}

func (p *Parser) errorf(token, format string, args ...any) error {
	return newError(p.tokLine+1, p.tokCol+1, token, fmt.Sprintf(format, args...))
}
