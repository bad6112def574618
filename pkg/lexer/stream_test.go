package lexer

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "Braces Isolated",
			input:    "$section text{label x{ret;}}",
			expected: []string{"$section", "text", "{", "label", "x", "{", "ret;", "}", "}"},
		},
		{
			name:     "Mixed Whitespace",
			input:    "move rax <- 1;\r\n\tmove\trdi <- 0;",
			expected: []string{"move", "rax", "<-", "1;", "move", "rdi", "<-", "0;"},
		},
		{
			name:     "Call Stays Fused",
			input:    "foo(rax, rdi, 0x5);",
			expected: []string{"foo(rax,", "rdi,", "0x5);"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if diff := deep.Equal(got, tt.expected); diff != nil {
				t.Errorf("Tokenize(%q) mismatch: %v", tt.input, diff)
			}
		})
	}
}

func TestStreamNextPeek(t *testing.T) {
	s := NewStream("a b c")

	if got, ok := s.Peek(0); !ok || got != "a" {
		t.Errorf("Peek(0) = %q, %v; want \"a\", true", got, ok)
	}
	if got, ok := s.Peek(2); !ok || got != "c" {
		t.Errorf("Peek(2) = %q, %v; want \"c\", true", got, ok)
	}
	if _, ok := s.Peek(3); ok {
		t.Errorf("Peek(3) past the end reported ok")
	}
	if _, ok := s.Peek(-1); ok {
		t.Errorf("Peek(-1) reported ok")
	}

	for _, want := range []string{"a", "b", "c"} {
		if !s.HasMore() {
			t.Fatalf("HasMore() = false before %q", want)
		}
		got, ok := s.Next()
		if !ok || got != want {
			t.Errorf("Next() = %q, %v; want %q, true", got, ok, want)
		}
	}
	if s.HasMore() {
		t.Errorf("HasMore() = true after consuming everything")
	}
	if got, ok := s.Next(); ok || got != "" {
		t.Errorf("Next() on exhausted stream = %q, %v; want \"\", false", got, ok)
	}
	if got, want := s.Remaining(), 0; got != want {
		t.Errorf("Remaining() = %d; want %d", got, want)
	}
	if got, want := len(s.Tokens()), 3; got != want {
		t.Errorf("len(Tokens()) = %d; want %d", got, want)
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTokens []string
		wantClosed bool
		wantRest   []string
	}{
		{
			name:       "Flat",
			input:      "{ a b } tail",
			wantTokens: []string{"a", "b"},
			wantClosed: true,
			wantRest:   []string{"tail"},
		},
		{
			name:       "Nested Balanced",
			input:      "{ x { y { z } } } tail",
			wantTokens: []string{"x", "{", "y", "{", "z", "}", "}"},
			wantClosed: true,
			wantRest:   []string{"tail"},
		},
		{
			name:       "Extra Close Stops Early",
			input:      "{ x { y } } } tail",
			wantTokens: []string{"x", "{", "y", "}"},
			wantClosed: true,
			wantRest:   []string{"}", "tail"},
		},
		{
			name:       "Unterminated",
			input:      "{ x { y }",
			wantTokens: []string{"x", "{", "y", "}"},
			wantClosed: false,
		},
		{
			name:       "Empty Block",
			input:      "{ }",
			wantClosed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(tt.input)
			b, err := s.Block()
			if err != nil {
				t.Fatalf("Block() failed: %v", err)
			}
			if len(b.Tokens) != 0 || len(tt.wantTokens) != 0 {
				if diff := deep.Equal(b.Tokens, tt.wantTokens); diff != nil {
					t.Errorf("Block tokens mismatch: %v", diff)
				}
			}
			if b.Closed != tt.wantClosed {
				t.Errorf("Closed = %v; want %v", b.Closed, tt.wantClosed)
			}
			var rest []string
			for s.HasMore() {
				tok, _ := s.Next()
				rest = append(rest, tok)
			}
			if len(rest) != 0 || len(tt.wantRest) != 0 {
				if diff := deep.Equal(rest, tt.wantRest); diff != nil {
					t.Errorf("remaining tokens mismatch: %v", diff)
				}
			}
		})
	}
}

func TestBlockBalancedResult(t *testing.T) {
	// For N opening braces and N closes the extracted block is itself balanced.
	for n := 1; n <= 5; n++ {
		src := ""
		for i := 0; i < n; i++ {
			src += "{ t "
		}
		for i := 0; i < n; i++ {
			src += "} "
		}
		b, err := NewStream(src).Block()
		if err != nil {
			t.Fatalf("n=%d: Block() failed: %v", n, err)
		}
		depth := 0
		for _, tok := range b.Tokens {
			switch tok {
			case "{":
				depth++
			case "}":
				depth--
			}
			if depth < 0 {
				t.Fatalf("n=%d: block went negative: %v", n, b.Tokens)
			}
		}
		if depth != 0 {
			t.Errorf("n=%d: block depth %d after extraction; want 0 (%v)", n, depth, b.Tokens)
		}
	}
}

func TestBlockMissingOpener(t *testing.T) {
	for _, input := range []string{"x { }", ""} {
		_, err := NewStream(input).Block()
		if !errors.Is(err, ErrStructural) {
			t.Errorf("Block() on %q error = %v; want ErrStructural", input, err)
		}
	}
}

func TestBlockText(t *testing.T) {
	b, err := NewStream("{ move rax <- 1; { nested } }").Block()
	if err != nil {
		t.Fatalf("Block() failed: %v", err)
	}
	if got, want := b.Text(), "move rax <- 1; { nested }"; got != want {
		t.Errorf("Text() = %q; want %q", got, want)
	}
	if got, ok := b.First(); !ok || got != "move" {
		t.Errorf("First() = %q, %v; want \"move\", true", got, ok)
	}
	if _, ok := (Block{}).First(); ok {
		t.Errorf("First() on empty block reported ok")
	}
}
