package translator

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"hasm/pkg/lexer"
	"hasm/pkg/literal"
)

// operand lowers a single source operand:
//
//	&name  -> [name]   memory operand
//	0x10   -> 16       numbers are always rendered in base 10
//	other  -> verbatim
func operand(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, "&"):
		return "[" + s[1:] + "]", nil
	case literal.IsNumeric(s):
		return literal.Normalize(s)
	}
	return s, nil
}

// resolve substitutes a macro for tok, looking through a leading '&' so
// that &NAME becomes &VALUE.
func (t *Translator) resolve(tok string) string {
	if name, ok := strings.CutPrefix(tok, "&"); ok {
		return "&" + t.macros.Resolve(name)
	}
	return t.macros.Resolve(tok)
}

// move lowers "move DEST <- SRC" into a mov instruction. Both operands go
// through the macro table exactly once.
func (t *Translator) move() error {
	dest, err := t.expect("move")
	if err != nil {
		return err
	}
	arrow, err := t.expect("move")
	if err != nil {
		return err
	}
	src, err := t.expect("move")
	if err != nil {
		return err
	}
	if arrow != "<-" {
		glog.V(1).Infof("depth %d: move %s expected '<-', got %q", t.depth, dest, arrow)
	}

	src = strings.TrimSuffix(src, terminator)
	op, err := operand(t.resolve(src))
	if err != nil {
		return fmt.Errorf("move %s: %w", dest, err)
	}
	t.line("mov %s, %s", t.macros.Resolve(dest), op)
	return nil
}

// call lowers NAME(a, b, c) into pushes of c, b, a followed by "call NAME",
// so the first argument ends up on top of the stack.
func (t *Translator) call(tok string) error {
	text := tok
	for !strings.Contains(text, ")") {
		next, ok := t.stream.Next()
		if !ok {
			return fmt.Errorf("%w: unterminated call %s", lexer.ErrUnexpectedEOF, text)
		}
		text += " " + next
	}

	open := strings.IndexByte(text, '(')
	end := strings.LastIndexByte(text, ')')
	name := text[:open]
	if rest := strings.TrimSuffix(text[end+1:], terminator); rest != "" {
		glog.V(1).Infof("depth %d: ignoring %q after call to %s", t.depth, rest, name)
	}

	args := lo.Compact(lo.Map(strings.Split(text[open+1:end], ","), func(arg string, _ int) string {
		return strings.TrimSpace(arg)
	}))
	for _, arg := range lo.Reverse(args) {
		op, err := operand(t.resolve(arg))
		if err != nil {
			return fmt.Errorf("call %s: %w", name, err)
		}
		t.line("push %s", op)
	}
	t.line("call %s", t.macros.Resolve(name))
	return nil
}
