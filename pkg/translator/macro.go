package translator

import (
	"sort"

	"github.com/samber/lo"
)

// MacroTable maps a defined name to its literal replacement text. A table
// belongs to a single translator invocation.
type MacroTable struct {
	defs map[string]string
}

func NewMacroTable() *MacroTable {
	return &MacroTable{defs: make(map[string]string)}
}

// Define registers or overwrites name.
func (m *MacroTable) Define(name, value string) {
	m.defs[name] = value
}

// Undef removes name. Removing an unknown name is a no-op.
func (m *MacroTable) Undef(name string) {
	delete(m.defs, name)
}

func (m *MacroTable) Lookup(name string) (string, bool) {
	v, ok := m.defs[name]
	return v, ok
}

// Resolve performs one level of whole-token substitution. Unknown tokens
// come back unchanged.
func (m *MacroTable) Resolve(tok string) string {
	if v, ok := m.defs[tok]; ok {
		return v
	}
	return tok
}

func (m *MacroTable) Len() int {
	return len(m.defs)
}

// Clone returns an independent copy; later changes to either table do not
// affect the other.
func (m *MacroTable) Clone() *MacroTable {
	return &MacroTable{defs: lo.Assign(m.defs)}
}

// Map returns a copy of the definitions.
func (m *MacroTable) Map() map[string]string {
	return lo.Assign(m.defs)
}

// Names returns the defined names in sorted order.
func (m *MacroTable) Names() []string {
	names := lo.Keys(m.defs)
	sort.Strings(names)
	return names
}
