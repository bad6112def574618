package translator

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"hasm/pkg/lexer"
)

// Translator walks one token stream and emits target assembly text. Every
// nested block is handed to a fresh child Translator with its own stream,
// macro table and output buffer.
type Translator struct {
	stream *lexer.Stream
	macros *MacroTable
	opts   Options
	depth  int
	out    strings.Builder
}

// New returns a root Translator over src.
func New(src string, opts Options) *Translator {
	return newTranslator(lexer.NewStream(src), NewMacroTable(), opts, 0)
}

func newTranslator(stream *lexer.Stream, macros *MacroTable, opts Options, depth int) *Translator {
	return &Translator{
		stream: stream,
		macros: macros,
		opts:   opts,
		depth:  depth,
	}
}

// Macros exposes the invocation's macro table.
func (t *Translator) Macros() *MacroTable {
	return t.macros
}

// Translate consumes the whole stream and returns the lowered text. Any
// error aborts the translation and no partial output is returned.
func (t *Translator) Translate() (string, error) {
	glog.V(1).Infof("depth %d: translating %d tokens", t.depth, t.stream.Remaining())
	for t.stream.HasMore() {
		tok, _ := t.stream.Next()
		if err := t.statement(tok); err != nil {
			return "", err
		}
	}
	return postProcess(t.out.String()), nil
}

func (t *Translator) statement(tok string) error {
	kind := Classify(tok)
	glog.V(2).Infof("depth %d: %s %q", t.depth, kind, tok)

	switch kind {
	case Define:
		name, err := t.expect(tok)
		if err != nil {
			return err
		}
		value, err := t.expect(tok)
		if err != nil {
			return err
		}
		t.macros.Define(name, strings.TrimSuffix(value, terminator))
	case Undef:
		name, err := t.expect(tok)
		if err != nil {
			return err
		}
		t.macros.Undef(strings.TrimSuffix(name, terminator))
	case Section:
		return t.section(tok)
	case Global:
		name, err := t.expect(tok)
		if err != nil {
			return err
		}
		t.line("global %s", strings.TrimSuffix(name, terminator))
	case Label:
		return t.label(tok)
	case StackPrologue:
		t.line("push rbp")
		t.line("mov rbp, rsp")
	case StackEpilogue:
		t.line("mov rsp, rbp")
		t.line("pop rbp")
	case Return:
		t.line("ret")
	case Comment:
		return t.comment(tok)
	case StringLiteral:
		return t.stringLiteral(tok)
	case Move:
		return t.move()
	case Call:
		return t.call(tok)
	default:
		return t.generic(tok)
	}
	return nil
}

// expect consumes the follow-on token a directive requires.
func (t *Translator) expect(directive string) (string, error) {
	tok, ok := t.stream.Next()
	if !ok {
		return "", fmt.Errorf("%w: %s is missing an operand", lexer.ErrUnexpectedEOF, directive)
	}
	return tok, nil
}

// line writes one complete output line, first closing any pending partial
// line left by generic text.
func (t *Translator) line(format string, args ...any) {
	if t.out.Len() > 0 && !strings.HasSuffix(t.out.String(), "\n") {
		t.out.WriteByte('\n')
	}
	fmt.Fprintf(&t.out, format+"\n", args...)
}

// text appends a pass-through fragment; a trailing terminator ends the line.
func (t *Translator) text(s string) {
	if core, ok := strings.CutSuffix(s, terminator); ok {
		t.out.WriteString(core)
		t.out.WriteByte('\n')
		return
	}
	t.out.WriteString(s)
	t.out.WriteByte(' ')
}

func (t *Translator) section(directive string) error {
	kind, err := t.expect(directive)
	if err != nil {
		return err
	}
	t.line("section .%s", strings.ToLower(kind))

	body, err := t.block(directive)
	if err != nil {
		return err
	}
	out, err := t.child(body)
	if err != nil {
		return fmt.Errorf("section %s: %w", kind, err)
	}
	t.appendChild(out)
	return nil
}

func (t *Translator) label(directive string) error {
	name, err := t.expect(directive)
	if err != nil {
		return err
	}
	body, err := t.block(directive)
	if err != nil {
		return err
	}
	first, _ := body.First()
	kind := classifyLabel(first)

	out, err := t.child(body)
	if err != nil {
		return fmt.Errorf("label %s: %w", name, err)
	}
	if kind == ConstLabel {
		// NAME equ VALUE stays on one line.
		t.line("%s %s", name, strings.TrimSuffix(out, "\n"))
		return nil
	}
	t.line("%s:", name)
	t.appendChild(out)
	return nil
}

// appendChild writes a finished child block. The child's last line has
// already lost its trailing blank, so it is always closed here to keep the
// parent's next token off it.
func (t *Translator) appendChild(out string) {
	if out == "" {
		return
	}
	t.out.WriteString(indentLines(out, t.opts.Indent))
	if !strings.HasSuffix(out, "\n") {
		t.out.WriteByte('\n')
	}
}

// block extracts the brace-delimited body that follows a directive.
func (t *Translator) block(directive string) (lexer.Block, error) {
	b, err := t.stream.Block()
	if err != nil {
		return lexer.Block{}, fmt.Errorf("%s: %w", directive, err)
	}
	if !b.Closed {
		if t.opts.StrictBraces {
			return lexer.Block{}, fmt.Errorf("%w: %s block is never closed", lexer.ErrUnexpectedEOF, directive)
		}
		glog.V(1).Infof("depth %d: %s block is never closed", t.depth, directive)
	}
	return b, nil
}

// child translates a block in a fresh invocation one level deeper. The
// block is rejoined and re-tokenized, so the child only sees the parent's
// macros when InheritMacros is set.
func (t *Translator) child(b lexer.Block) (string, error) {
	macros := NewMacroTable()
	if t.opts.InheritMacros {
		macros = t.macros.Clone()
	}
	c := newTranslator(lexer.NewStream(b.Text()), macros, t.opts, t.depth+1)
	return c.Translate()
}

func (t *Translator) comment(tok string) error {
	if strings.Contains(tok[len("/*"):], "*/") {
		return nil
	}
	for {
		next, ok := t.stream.Next()
		if !ok {
			return fmt.Errorf("%w: unterminated comment", lexer.ErrUnexpectedEOF)
		}
		if strings.Contains(next, "*/") {
			return nil
		}
	}
}

// stringLiteral rebuilds a quoted literal that whitespace splitting broke
// into several tokens. Its contents are never substituted.
func (t *Translator) stringLiteral(tok string) error {
	quote := tok[:1]
	if strings.Contains(tok[1:], quote) {
		t.text(tok)
		return nil
	}

	var sb strings.Builder
	sb.WriteString(tok)
	for {
		next, ok := t.stream.Next()
		if !ok {
			return fmt.Errorf("%w: unterminated string literal %s", lexer.ErrUnexpectedEOF, sb.String())
		}
		sb.WriteByte(' ')
		sb.WriteString(next)
		if strings.Contains(next, quote) {
			break
		}
	}
	t.text(sb.String())
	return nil
}

// generic emits a token that is not a directive. A destination followed by
// "<-" is written as "DEST, " and the arrow itself is consumed rather than
// passed through.
func (t *Translator) generic(tok string) error {
	core, fused := strings.CutSuffix(tok, terminator)
	core = t.resolve(core)

	if core == "move" && !fused {
		return t.move()
	}
	if next, ok := t.stream.Peek(0); ok && next == "<-" {
		// Destination of an arrow assignment; the arrow becomes the comma.
		t.stream.Next()
		t.out.WriteString(core + ", ")
		return nil
	}
	if core == "{" || core == "}" {
		if t.opts.StrictBraces {
			return fmt.Errorf("%w: stray %q", lexer.ErrStructural, core)
		}
		glog.V(1).Infof("depth %d: dropping stray %q", t.depth, core)
		return nil
	}

	op, err := operand(core)
	if err != nil {
		return err
	}
	if fused {
		op += terminator
	}
	t.text(op)
	return nil
}

// indentLines prefixes every non-empty line of s with indent.
func indentLines(s, indent string) string {
	if indent == "" || s == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l != "" && l != "\n" {
			sb.WriteString(indent)
		}
		sb.WriteString(l)
	}
	return sb.String()
}
