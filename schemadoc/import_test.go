package schemadoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/schemadoc"
	"github.com/brainthinks/express-zod-api/ts"
	"github.com/brainthinks/express-zod-api/typegen"
)

const userDoc = `
title: User
type: object
required: [id]
properties:
  id:
    type: string
    description: Unique id.
  age:
    type: integer
  tags:
    type: array
    items:
      type: string
  role:
    enum: [admin, user]
  meta:
    type: object
    additionalProperties:
      type: number
  created:
    type: string
    format: date-time
  avatar:
    type: string
    format: binary
  score:
    type: number
    nullable: true
    default: 0
`

func TestImportObjectDocument(t *testing.T) {
	t.Parallel()

	node, err := schemadoc.Import([]byte(userDoc))
	require.NoError(t, err)

	obj, ok := node.(*schema.Object)
	require.True(t, ok)

	names := make([]string, 0, len(obj.Fields))
	for _, f := range obj.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "age", "tags", "role", "meta", "created", "avatar", "score"}, names,
		"property order is preserved")

	id, _ := obj.FieldNamed("id")
	assert.Equal(t, "Unique id.", id.Description)
	assert.False(t, schema.IsOptional(id.Schema))

	age, _ := obj.FieldNamed("age")
	assert.True(t, schema.IsOptional(age.Schema))

	got := ts.Print(typegen.Convert(node, typegen.Options{
		OptionalPropStyle: typegen.OptionalPropStyle{WithQuestionMark: true},
	}).Type)
	assert.Contains(t, got, "id: string;")
	assert.Contains(t, got, "age?: number;")
	assert.Contains(t, got, "tags?: string[];")
	assert.Contains(t, got, `role?: "admin" | "user";`)
	assert.Contains(t, got, "meta?: Record<string, number>;")
	assert.Contains(t, got, "created?: Date;")
	assert.Contains(t, got, "avatar?: Buffer;")
	assert.Contains(t, got, "score?: number | null;")
}

func TestImportJSONSyntax(t *testing.T) {
	t.Parallel()

	node, err := schemadoc.Import([]byte(`{"type": "object", "required": ["ok"], "properties": {"ok": {"type": "boolean"}}}`))
	require.NoError(t, err)
	got := ts.Print(typegen.Convert(node, typegen.Options{}).Type)
	assert.Equal(t, "{\n  ok: boolean;\n}", got)
}

func TestImportScalarsAndCombinators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"const", `{const: "fixed"}`, `"fixed"`},
		{"one of", "oneOf:\n  - type: string\n  - type: number", "string | number"},
		{"null type", `{type: "null"}`, "null"},
		{"untyped", `{description: anything goes}`, "any"},
		{"unrecognized type", `{type: "vector"}`, "any"},
		{"bare array", `{type: array}`, "any[]"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			node, err := schemadoc.Import([]byte(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ts.Print(typegen.Convert(node, typegen.Options{}).Type))
		})
	}
}

func TestImportAllNamesDocuments(t *testing.T) {
	t.Parallel()

	docs := "title: First\ntype: string\n---\ntype: number\n"
	defs, err := schemadoc.ImportAll([]byte(docs))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "First", defs[0].Name)
	assert.Equal(t, schema.KindString, defs[0].Schema.Kind())
	assert.Equal(t, "Doc2", defs[1].Name)
	assert.Equal(t, schema.KindNumber, defs[1].Schema.Kind())
}

func TestImportRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := schemadoc.Import([]byte("- just\n- a\n- sequence"))
	assert.Error(t, err)

	_, err = schemadoc.Import([]byte(": not yaml: ["))
	assert.Error(t, err)
}
