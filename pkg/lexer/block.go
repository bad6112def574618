package lexer

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// Block is the token range between a '{' and its matching '}', both excluded.
type Block struct {
	Tokens []string
	// Closed is false when the input ran out before the matching '}'.
	Closed bool
}

// Text rejoins the block tokens with single spaces so a fresh Stream can
// re-tokenize them.
func (b Block) Text() string {
	return strings.Join(b.Tokens, " ")
}

// First returns the first token of the block, if any.
func (b Block) First() (string, bool) {
	if len(b.Tokens) == 0 {
		return "", false
	}
	return b.Tokens[0], true
}

// Block consumes an opening '{' and everything up to its matching '}'.
// Extraction stops the moment the depth would go negative, so an extra
// closing brace ends the block early instead of raising an error.
func (s *Stream) Block() (Block, error) {
	tok, ok := s.Next()
	if !ok {
		return Block{}, fmt.Errorf("%w: expected '{' to start a block, got end of input", ErrStructural)
	}
	if tok != "{" {
		return Block{}, fmt.Errorf("%w: expected '{' to start a block, got %q", ErrStructural, tok)
	}

	depth := 0
	var toks []string
	for s.HasMore() {
		tok, _ = s.Next()
		switch tok {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth < 0 {
			return Block{Tokens: toks, Closed: true}, nil
		}
		toks = append(toks, tok)
	}

	glog.V(1).Infof("block ran to end of input at depth %d (%d tokens)", depth, len(toks))
	return Block{Tokens: toks}, nil
}
