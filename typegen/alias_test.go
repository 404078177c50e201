package typegen_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
	"github.com/brainthinks/express-zod-api/typegen"
)

func TestConvertRecursiveSchemaTerminates(t *testing.T) {
	t.Parallel()

	var node schema.Node
	node = schema.ObjectOf(
		schema.F("name", schema.String()),
		schema.F("children", schema.ArrayOf(schema.Deferred(func() schema.Node { return node }))),
	)

	res := typegen.Convert(node, typegen.Options{})
	require.Equal(t, 1, res.Aliases.Len(), "one cycle, one alias: %s", spew.Sdump(res.Aliases.Entries()))

	entry := res.Aliases.Entries()[0]
	assert.True(t, strings.HasPrefix(entry.Name, "Type"))

	// The resolved alias body references itself by name at the
	// recursion point instead of unfolding.
	body := ts.Print(entry.Type)
	assert.Contains(t, body, "children: "+entry.Name+"[]")

	root := ts.Print(res.Type)
	assert.Contains(t, root, "children: "+entry.Name+"[]")
}

func TestConvertLazyThroughIndirectCycle(t *testing.T) {
	t.Parallel()

	var category schema.Node
	var post schema.Node
	category = schema.ObjectOf(
		schema.F("title", schema.String()),
		schema.F("posts", schema.ArrayOf(schema.Deferred(func() schema.Node { return post }))),
	)
	post = schema.ObjectOf(
		schema.F("body", schema.String()),
		schema.F("category", schema.Deferred(func() schema.Node { return category })),
	)

	res := typegen.Convert(category, typegen.Options{})
	assert.Equal(t, 2, res.Aliases.Len(), "each distinct shape gets its own alias")
	for _, e := range res.Aliases.Entries() {
		assert.NotEqual(t, "unknown", ts.Print(e.Type), "placeholders must be overwritten after resolution")
	}
}

func TestStructurallyIdenticalLazyNodesCollapse(t *testing.T) {
	t.Parallel()

	makeRecord := func() schema.Node {
		return &schema.Record{Key: schema.String(), Value: schema.Number()}
	}
	root := schema.ObjectOf(
		schema.F("a", schema.Deferred(func() schema.Node { return makeRecord() })),
		schema.F("b", schema.Deferred(func() schema.Node { return makeRecord() })),
	)

	res := typegen.Convert(root, typegen.Options{})
	require.Equal(t, 1, res.Aliases.Len(), "identical shapes behind independent accessors share one alias")

	name := res.Aliases.Entries()[0].Name
	printed := ts.Print(res.Type)
	assert.Equal(t, 2, strings.Count(printed, name), "both members reference the shared alias")
}

func TestAliasTablesAreCallScoped(t *testing.T) {
	t.Parallel()

	lazy := schema.Deferred(func() schema.Node { return schema.String() })
	first := typegen.Convert(lazy, typegen.Options{})
	second := typegen.Convert(lazy, typegen.Options{})

	require.Equal(t, 1, first.Aliases.Len())
	require.Equal(t, 1, second.Aliases.Len())
	assert.NotSame(t, first.Aliases, second.Aliases)
	// Content-derived names still agree across calls.
	assert.Equal(t, first.Aliases.Entries()[0].Name, second.Aliases.Entries()[0].Name)
}

func TestAliasTableEntriesKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	table := typegen.NewAliasTable()
	table.Set("B", ts.String())
	table.Set("A", ts.Number())
	table.Set("B", ts.Boolean()) // overwrite keeps position

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Name)
	assert.Equal(t, "boolean", ts.Print(entries[0].Type))
	assert.Equal(t, "A", entries[1].Name)
}
