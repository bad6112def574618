package translator

import (
	"fmt"
	"io"

	"hasm/pkg/lexer"
	"hasm/pkg/utils"
)

// Translate lowers a complete hasm program to assembly text.
func Translate(src string, opts Options) (string, error) {
	return New(src, opts).Translate()
}

// TranslateFile reads the program at path ("-" for stdin) and lowers it.
func TranslateFile(path string, stdin io.Reader, opts Options) (string, error) {
	src, err := utils.ReadSource(path, stdin)
	if err != nil {
		return "", err
	}
	out, err := Translate(src, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Classified pairs a raw token with the statement Kind it would open.
type Classified struct {
	Token string
	Kind  Kind
}

// Tokens tokenizes src and classifies every token in isolation. Labels are
// reported as Label since classification does not look into blocks.
func Tokens(src string) []Classified {
	toks := lexer.Tokenize(src)
	out := make([]Classified, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Classified{Token: tok, Kind: Classify(tok)})
	}
	return out
}
