// Package literal parses the numeric literal forms accepted by hasm:
// 0b (binary), 0o (octal), 0x (hex) and signed base-10.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLiteral reports digits that are invalid for the literal's base.
var ErrInvalidLiteral = errors.New("invalid literal")

// prefixes maps a base prefix to its radix.
var prefixes = []struct {
	prefix string
	base   int
}{
	{"0b", 2},
	{"0o", 8},
	{"0x", 16},
}

func basePrefix(tok string) (digits string, base int, ok bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(tok, p.prefix) {
			return tok[len(p.prefix):], p.base, true
		}
	}
	return "", 10, false
}

// IsNumeric reports whether tok is shaped like a number: it either carries
// a base prefix (valid digits or not) or parses as a base-10 integer.
func IsNumeric(tok string) bool {
	if _, _, ok := basePrefix(tok); ok {
		return true
	}
	_, err := strconv.ParseInt(tok, 10, 64)
	return err == nil
}

// Parse converts tok to its value. Prefixed literals are read as unsigned
// 64-bit patterns, so 0xFFFFFFFFFFFFFFFF is -1.
func Parse(tok string) (int64, error) {
	if digits, base, ok := basePrefix(tok); ok {
		v, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a base-%d number", ErrInvalidLiteral, tok, base)
		}
		return int64(v), nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLiteral, tok)
	}
	return v, nil
}

// Normalize renders tok in base 10.
func Normalize(tok string) (string, error) {
	v, err := Parse(tok)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}
