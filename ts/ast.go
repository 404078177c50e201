package ts

// Package ts models TypeScript type expressions as an immutable tagged
// union and renders them as declaration source text. Constructors
// always return fresh nodes; trees built by separate calls never share
// instances.

// Kind identifies a type expression variant.
type Kind int

const (
	KindKeyword Kind = iota
	KindLiteral
	KindObject
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindReference
)

// Type is the root type expression interface.
type Type interface {
	Kind() Kind
}

// Keyword is a built-in keyword type such as string or unknown.
type Keyword struct {
	Name string
}

func (k *Keyword) Kind() Kind { return KindKeyword }

// String returns the string keyword type.
func String() *Keyword { return &Keyword{Name: "string"} }

// Number returns the number keyword type.
func Number() *Keyword { return &Keyword{Name: "number"} }

// BigInt returns the bigint keyword type.
func BigInt() *Keyword { return &Keyword{Name: "bigint"} }

// Boolean returns the boolean keyword type.
func Boolean() *Keyword { return &Keyword{Name: "boolean"} }

// Undefined returns the undefined keyword type.
func Undefined() *Keyword { return &Keyword{Name: "undefined"} }

// Any returns the any keyword type.
func Any() *Keyword { return &Keyword{Name: "any"} }

// Unknown returns the unknown keyword type, the universal fallback.
func Unknown() *Keyword { return &Keyword{Name: "unknown"} }

// Never returns the never keyword type.
func Never() *Keyword { return &Keyword{Name: "never"} }

// ObjectKeyword returns the object keyword type (a plain structure of
// unknown shape, distinct from a type literal).
func ObjectKeyword() *Keyword { return &Keyword{Name: "object"} }

// Literal is a literal type wrapping a scalar value. A nil value
// renders as null.
type Literal struct {
	Value any
}

func (l *Literal) Kind() Kind { return KindLiteral }

// Lit returns a literal type for a scalar value.
func Lit(v any) *Literal { return &Literal{Value: v} }

// Null returns the null literal type.
func Null() *Literal { return &Literal{Value: nil} }

// Member is one named member of a type literal.
type Member struct {
	Name     string
	Type     Type
	Optional bool
	Comment  string
}

// Object is a type literal: an ordered list of named members.
type Object struct {
	Members []Member
}

func (o *Object) Kind() Kind { return KindObject }

// Array is an element type repeated.
type Array struct {
	Elem Type
}

func (a *Array) Kind() Kind { return KindArray }

// ArrayOf returns the array type of elem.
func ArrayOf(elem Type) *Array { return &Array{Elem: elem} }

// Tuple is a fixed-arity sequence with an optional variadic rest tail.
type Tuple struct {
	Items []Type
	Rest  Type
}

func (t *Tuple) Kind() Kind { return KindTuple }

// Union is an ordered list of alternatives.
type Union struct {
	Options []Type
}

func (u *Union) Kind() Kind { return KindUnion }

// UnionOf returns the union of the given types, in order.
func UnionOf(options ...Type) *Union { return &Union{Options: options} }

// Intersection combines exactly two types.
type Intersection struct {
	Left  Type
	Right Type
}

func (i *Intersection) Kind() Kind { return KindIntersection }

// Reference names a type declared elsewhere, optionally with type
// arguments (Record<K, V>, Date, Buffer, alias names).
type Reference struct {
	Name string
	Args []Type
}

func (r *Reference) Kind() Kind { return KindReference }

// Ref returns a reference to a named type.
func Ref(name string, args ...Type) *Reference { return &Reference{Name: name, Args: args} }
