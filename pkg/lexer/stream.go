// Package lexer splits hasm source into a flat token stream and extracts
// brace-delimited blocks from it.
//
// Tokens carry no position metadata: braces are isolated as standalone
// tokens and everything else is split on whitespace.
package lexer

import (
	"errors"
	"strings"
)

var (
	// ErrStructural reports a missing block opener or a stray brace.
	ErrStructural = errors.New("structural error")
	// ErrUnexpectedEOF reports that a directive ran out of follow-on tokens.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Tokenize isolates every '{' and '}' and splits the rest on whitespace.
// Empty pieces are dropped.
func Tokenize(src string) []string {
	src = strings.ReplaceAll(src, "{", " { ")
	src = strings.ReplaceAll(src, "}", " } ")
	return strings.Fields(src)
}

// Stream holds the tokens of one translation pass and a read cursor.
type Stream struct {
	toks []string
	pos  int // index of the next token to consume
}

func NewStream(src string) *Stream {
	return &Stream{toks: Tokenize(src)}
}

// Next consumes one token. ok is false once the stream is exhausted.
func (s *Stream) Next() (tok string, ok bool) {
	if s.pos >= len(s.toks) {
		return "", false
	}
	tok = s.toks[s.pos]
	s.pos++
	return tok, true
}

// Peek returns the token k positions past the cursor without consuming it.
// Peek(0) is the token Next would return.
func (s *Stream) Peek(k int) (string, bool) {
	i := s.pos + k
	if k < 0 || i >= len(s.toks) {
		return "", false
	}
	return s.toks[i], true
}

func (s *Stream) HasMore() bool {
	return s.pos < len(s.toks)
}

// Remaining reports how many tokens are left.
func (s *Stream) Remaining() int {
	return len(s.toks) - s.pos
}

// Tokens returns a copy of the full token slice, consumed or not.
func (s *Stream) Tokens() []string {
	out := make([]string, len(s.toks))
	copy(out, s.toks)
	return out
}
