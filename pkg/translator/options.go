package translator

// Options controls translation behavior. The zero value reproduces the
// classic behavior: private macro tables per block, lenient braces and no
// indentation.
type Options struct {
	// InheritMacros seeds each child block with a copy of the parent's macro
	// table as it stands at the block. Definitions made inside the child
	// never reach the parent.
	InheritMacros bool

	// StrictBraces rejects stray braces and blocks that run to end of input.
	StrictBraces bool

	// Indent is prefixed to every line of a child block, once per level.
	Indent string
}
