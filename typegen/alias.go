package typegen

import (
	"fmt"
	"hash/fnv"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
)

// AliasTable registers named types minted while converting
// self-referential schemas. An entry is created as a placeholder the
// instant its name is first requested and overwritten once the lazy
// body finishes converting; re-entrant lookups during resolution see
// the placeholder, which is what breaks cycles. Entries keep insertion
// order so renderers emit deterministic declarations.
type AliasTable struct {
	names []string
	types map[string]ts.Type
}

// AliasEntry is one named alias definition.
type AliasEntry struct {
	Name string
	Type ts.Type
}

// NewAliasTable returns an empty table.
func NewAliasTable() *AliasTable {
	return &AliasTable{types: make(map[string]ts.Type)}
}

// Has reports whether name is registered, resolved or not.
func (t *AliasTable) Has(name string) bool {
	_, ok := t.types[name]
	return ok
}

// Get returns the type registered under name.
func (t *AliasTable) Get(name string) (ts.Type, bool) {
	typ, ok := t.types[name]
	return typ, ok
}

// Set registers or overwrites the type under name. First registration
// fixes the entry's position in Entries.
func (t *AliasTable) Set(name string, typ ts.Type) {
	if _, ok := t.types[name]; !ok {
		t.names = append(t.names, name)
	}
	t.types[name] = typ
}

// Len returns the number of registered aliases.
func (t *AliasTable) Len() int { return len(t.names) }

// Entries returns the alias definitions in registration order.
func (t *AliasTable) Entries() []AliasEntry {
	out := make([]AliasEntry, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, AliasEntry{Name: name, Type: t.types[name]})
	}
	return out
}

// aliasName derives the alias identifier from a structural
// fingerprint. Content-derived names make structurally identical lazy
// schemas collapse to one alias, within a call and across calls.
func aliasName(fingerprint string) string {
	h := fnv.New64a()
	h.Write([]byte(fingerprint))
	return fmt.Sprintf("Type%X", h.Sum64())
}

// produceLazy converts a lazy node by aliasing the schema behind its
// accessor. The name is keyed on the structural fingerprint of the
// wrapped schema, not on accessor identity, so two independent lazy
// nodes wrapping identical shapes share one alias.
func produceLazy(n schema.Node, c *Context) ts.Type {
	l, ok := n.(*schema.Lazy)
	if !ok || l.Getter == nil {
		return ts.Unknown()
	}
	inner := l.Getter()
	name := aliasName(c.Serializer(inner))
	if c.Aliases.Has(name) {
		// Covers both a fully resolved alias and one still being
		// resolved; in the cyclic case the reference points at the
		// placeholder.
		return ts.Ref(name)
	}
	c.Aliases.Set(name, ts.Unknown())
	resolved := c.Next(inner)
	c.Aliases.Set(name, resolved)
	return ts.Ref(name)
}
