package ts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brainthinks/express-zod-api/ts"
)

func TestPrintScalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node ts.Type
		want string
	}{
		{"keyword", ts.String(), "string"},
		{"unknown", ts.Unknown(), "unknown"},
		{"string literal", ts.Lit("x"), `"x"`},
		{"escaped literal", ts.Lit(`say "hi"`), `"say \"hi\""`},
		{"number literal", ts.Lit(42), "42"},
		{"bool literal", ts.Lit(true), "true"},
		{"null", ts.Null(), "null"},
		{"reference", ts.Ref("Date"), "Date"},
		{"generic reference", ts.Ref("Record", ts.String(), ts.Number()), "Record<string, number>"},
		{"array", ts.ArrayOf(ts.Number()), "number[]"},
		{"array of union", ts.ArrayOf(ts.UnionOf(ts.String(), ts.Number())), "(string | number)[]"},
		{"union", ts.UnionOf(ts.Lit("a"), ts.Lit("b")), `"a" | "b"`},
		{"empty union", ts.UnionOf(), "never"},
		{
			"intersection of unions",
			&ts.Intersection{Left: ts.UnionOf(ts.String(), ts.Number()), Right: ts.Boolean()},
			"(string | number) & boolean",
		},
		{"tuple", &ts.Tuple{Items: []ts.Type{ts.String(), ts.Number()}}, "[string, number]"},
		{
			"tuple with rest",
			&ts.Tuple{Items: []ts.Type{ts.String()}, Rest: ts.Boolean()},
			"[string, ...boolean[]]",
		},
		{"empty object", &ts.Object{}, "{}"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ts.Print(tc.node))
		})
	}
}

func TestPrintObject(t *testing.T) {
	t.Parallel()

	obj := &ts.Object{Members: []ts.Member{
		{Name: "id", Type: ts.String()},
		{Name: "age", Type: ts.Number(), Optional: true},
		{Name: "full name", Type: ts.String(), Comment: "Display name."},
	}}
	want := "{\n" +
		"  id: string;\n" +
		"  age?: number;\n" +
		"  /** Display name. */\n" +
		"  \"full name\": string;\n" +
		"}"
	assert.Equal(t, want, ts.Print(obj))
}

func TestPrintNestedObjectIndents(t *testing.T) {
	t.Parallel()

	obj := &ts.Object{Members: []ts.Member{
		{Name: "inner", Type: &ts.Object{Members: []ts.Member{
			{Name: "a", Type: ts.Boolean()},
		}}},
	}}
	want := "{\n" +
		"  inner: {\n" +
		"    a: boolean;\n" +
		"  };\n" +
		"}"
	assert.Equal(t, want, ts.Print(obj))
}

func TestPrintAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "type Id = string;", ts.PrintAlias("Id", ts.String()))
}
