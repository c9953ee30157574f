// Package eval implements the command template language: a command
// string is parsed once into a sequence of literal and variable
// tokens, then evaluated against a Resolver for a specific edge.
package eval

import "go.trai.ch/zerr"

// ErrBadVariable is returned when a sigil ('$' or '@') is not followed
// by at least one lowercase letter.
var ErrBadVariable = zerr.New("variable sigil not followed by a lowercase name")

// TokenType distinguishes a literal fragment from a variable reference.
type TokenType int

const (
	// Literal is a run of characters to be emitted verbatim.
	Literal TokenType = iota
	// Variable is a sigil+name reference to be resolved at evaluation time.
	Variable
)

// Token is one piece of a parsed Template.
type Token struct {
	Type TokenType
	Text string // literal text, or the sigil+name for a Variable token
}

// Resolver is the sole capability a Template needs to evaluate: map a
// variable token (including its sigil) to its expansion.
type Resolver interface {
	Evaluate(name string) string
}

// Template is the parsed form of a command string: an ordered sequence
// of literal/variable tokens, plus the original unparsed text retained
// for diagnostics.
type Template struct {
	unparsed string
	tokens   []Token
}

// Unparsed returns the original, unparsed command text.
func (t *Template) Unparsed() string {
	return t.unparsed
}

// Tokens returns the parsed token sequence.
func (t *Template) Tokens() []Token {
	return t.tokens
}

// isSigil reports whether c begins a variable reference.
func isSigil(c byte) bool {
	return c == '$' || c == '@'
}

func isLowerASCII(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// Parse scans input for sigils ('$' and '@'); everything up to the next
// sigil becomes a literal token, and the sigil plus the following run
// of lowercase letters becomes a variable token. A sigil not followed
// by at least one lowercase letter is a parse failure.
func Parse(input string) (*Template, error) {
	t := &Template{unparsed: input}

	start := 0
	for start < len(input) {
		end := start
		for end < len(input) && !isSigil(input[end]) {
			end++
		}
		if end > start {
			t.tokens = append(t.tokens, Token{Type: Literal, Text: input[start:end]})
		}
		if end == len(input) {
			break
		}

		// end points at a sigil.
		nameEnd := end + 1
		for nameEnd < len(input) && isLowerASCII(input[nameEnd]) {
			nameEnd++
		}
		if nameEnd == end+1 {
			return nil, zerr.With(zerr.With(ErrBadVariable, "input", input), "column", end)
		}
		t.tokens = append(t.tokens, Token{Type: Variable, Text: input[end:nameEnd]})
		start = nameEnd
	}

	return t, nil
}

// Evaluate concatenates every literal token verbatim and every variable
// token via resolver.Evaluate.
func (t *Template) Evaluate(resolver Resolver) string {
	var out []byte
	for _, tok := range t.tokens {
		if tok.Type == Literal {
			out = append(out, tok.Text...)
		} else {
			out = append(out, resolver.Evaluate(tok.Text)...)
		}
	}
	return string(out)
}
