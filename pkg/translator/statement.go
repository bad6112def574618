package translator

import (
	"fmt"
	"strings"
)

// Kind identifies the statement shape introduced by a token.
type Kind int

const (
	Generic Kind = iota // anything unrecognized, passed through

	// Directives
	Define  // $define NAME VALUE
	Undef   // $undef NAME
	Section // $section KIND { ... }
	Global  // $global NAME

	// Labels
	Label      // label NAME { ... }
	ConstLabel // label NAME { equ ... }

	// Pseudo-instructions
	StackPrologue // $pstk
	StackEpilogue // $fstk
	Return        // $return

	// Lexical
	Comment       // /* ... */
	StringLiteral // '...' or "..."

	// Lowered instructions
	Move // move DEST <- SRC
	Call // NAME(ARG, ...)
)

var kindNames = [...]string{
	Generic:       "Generic",
	Define:        "Define",
	Undef:         "Undef",
	Section:       "Section",
	Global:        "Global",
	Label:         "Label",
	ConstLabel:    "ConstLabel",
	StackPrologue: "StackPrologue",
	StackEpilogue: "StackEpilogue",
	Return:        "Return",
	Comment:       "Comment",
	StringLiteral: "StringLiteral",
	Move:          "Move",
	Call:          "Call",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const terminator = ";"

// directives maps directive text to its Kind. Pseudo-instructions are also
// recognized with a fused terminator ("$return;").
var directives = map[string]Kind{
	"$define":  Define,
	"$undef":   Undef,
	"$section": Section,
	"$global":  Global,
	"label":    Label,
	"$pstk":    StackPrologue,
	"$fstk":    StackEpilogue,
	"$return":  Return,
	"move":     Move,
}

// Classify returns the statement Kind a token opens. ConstLabel is never
// returned here; it needs the label's block, see classifyLabel.
func Classify(tok string) Kind {
	if k, ok := directives[tok]; ok {
		return k
	}
	switch k := directives[strings.TrimSuffix(tok, terminator)]; k {
	case StackPrologue, StackEpilogue, Return:
		return k
	}

	switch {
	case strings.HasPrefix(tok, "/*"):
		return Comment
	case strings.HasPrefix(tok, "'"), strings.HasPrefix(tok, `"`):
		return StringLiteral
	case isCall(tok):
		return Call
	}
	return Generic
}

// classifyLabel refines Label into ConstLabel when the block opens with equ.
func classifyLabel(first string) Kind {
	if first == "equ" {
		return ConstLabel
	}
	return Label
}

// isCall reports whether tok looks like NAME( with no space before the
// parenthesis.
func isCall(tok string) bool {
	i := strings.IndexByte(tok, '(')
	if i <= 0 {
		return false
	}
	return isIdentifier(tok[:i])
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '.' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
