// Package translator lowers hasm, a small brace-structured assembly DSL,
// into NASM-style x86-64 assembly text.
//
// Pipeline: source → lexer.Stream → Translator (→ child Translator per block) → post passes → text
package translator
