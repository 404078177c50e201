package schema

// Package schema defines the runtime schema node model consumed by the
// type generator. Nodes form an immutable tagged union: every variant
// is a struct implementing Node, identified by its Kind tag. Builders
// live in builders.go; structural predicates in predicates.go.

// Kind identifies a schema node variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBigInt
	KindBoolean
	KindDate
	KindAny
	KindUndefined
	KindNull
	KindLiteral
	KindObject
	KindArray
	KindTuple
	KindRecord
	KindUnion
	KindDiscriminatedUnion
	KindIntersection
	KindEnum
	KindNativeEnum
	KindOptional
	KindNullable
	KindDefault
	KindBranded
	KindReadonly
	KindCatch
	KindEffects
	KindPipeline
	KindLazy
	KindFile
	KindRaw
)

var kindNames = map[Kind]string{
	KindString:             "string",
	KindNumber:             "number",
	KindBigInt:             "bigint",
	KindBoolean:            "boolean",
	KindDate:               "date",
	KindAny:                "any",
	KindUndefined:          "undefined",
	KindNull:               "null",
	KindLiteral:            "literal",
	KindObject:             "object",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindRecord:             "record",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindIntersection:       "intersection",
	KindEnum:               "enum",
	KindNativeEnum:         "nativeEnum",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindDefault:            "default",
	KindBranded:            "branded",
	KindReadonly:           "readonly",
	KindCatch:              "catch",
	KindEffects:            "effects",
	KindPipeline:           "pipeline",
	KindLazy:               "lazy",
	KindFile:               "file",
	KindRaw:                "raw",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node is the root schema node interface.
type Node interface {
	Kind() Kind
}

// Primitive covers the payload-free scalar kinds (string, number,
// bigint, boolean, date, any, undefined, null). Coerce marks schemas
// that accept a broader wire type and coerce it during parsing.
type Primitive struct {
	Of     Kind
	Coerce bool
}

func (p *Primitive) Kind() Kind { return p.Of }

// Literal matches exactly one scalar value (string, number, or bool).
type Literal struct {
	Value any
}

func (l *Literal) Kind() Kind { return KindLiteral }

// Field is a single named member of an Object. Description, when
// present, is carried into generated output as documentation.
type Field struct {
	Name        string
	Schema      Node
	Description string
}

// Describe returns a copy of the field with the description attached.
func (f Field) Describe(text string) Field {
	f.Description = text
	return f
}

// Object is an ordered collection of named fields. Field order is
// significant and preserved by every consumer.
type Object struct {
	Fields []Field
}

func (o *Object) Kind() Kind { return KindObject }

// FieldNamed returns the field with the given name, if present.
func (o *Object) FieldNamed(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Array holds a single element schema.
type Array struct {
	Elem Node
}

func (a *Array) Kind() Kind { return KindArray }

// Tuple is a fixed-arity sequence with an optional variadic rest tail.
type Tuple struct {
	Items []Node
	Rest  Node
}

func (t *Tuple) Kind() Kind { return KindTuple }

// Record maps keys of one schema to values of another.
type Record struct {
	Key   Node
	Value Node
}

func (r *Record) Kind() Kind { return KindRecord }

// Union is an ordered, non-empty list of candidate schemas.
type Union struct {
	Options []Node
}

func (u *Union) Kind() Kind { return KindUnion }

// DiscriminatedUnion is a union whose candidates are told apart by a
// shared discriminator field. The discriminator only matters for
// parsing; type derivation treats it as a plain union.
type DiscriminatedUnion struct {
	Discriminator string
	Options       []Node
}

func (u *DiscriminatedUnion) Kind() Kind { return KindDiscriminatedUnion }

// Intersection combines exactly two schemas.
type Intersection struct {
	Left  Node
	Right Node
}

func (i *Intersection) Kind() Kind { return KindIntersection }

// Enum is an ordered list of string options.
type Enum struct {
	Options []string
}

func (e *Enum) Kind() Kind { return KindEnum }

// EnumMember is one name/value pair of a NativeEnum. Values are
// strings or numbers.
type EnumMember struct {
	Name  string
	Value any
}

// NativeEnum is an ordered mapping from member name to its underlying
// value.
type NativeEnum struct {
	Members []EnumMember
}

func (e *NativeEnum) Kind() Kind { return KindNativeEnum }

// Optional marks its inner schema as allowed to be absent.
type Optional struct {
	Inner Node
}

func (o *Optional) Kind() Kind { return KindOptional }

// Nullable widens its inner schema with null.
type Nullable struct {
	Inner Node
}

func (n *Nullable) Kind() Kind { return KindNullable }

// Default substitutes Value when the input is absent.
type Default struct {
	Inner Node
	Value any
}

func (d *Default) Kind() Kind { return KindDefault }

// Branded tags its inner schema with a nominal brand. Transparent for
// type derivation.
type Branded struct {
	Inner Node
	Brand string
}

func (b *Branded) Kind() Kind { return KindBranded }

// Readonly marks its inner schema as read-only. Transparent for type
// derivation.
type Readonly struct {
	Inner Node
}

func (r *Readonly) Kind() Kind { return KindReadonly }

// Catch substitutes Fallback when parsing of the inner schema fails.
type Catch struct {
	Inner    Node
	Fallback any
}

func (c *Catch) Kind() Kind { return KindCatch }

// EffectMode distinguishes the effect wrappers.
type EffectMode int

const (
	EffectTransform EffectMode = iota
	EffectRefine
	EffectPreprocess
)

// TransformFunc is caller-supplied transform code. Its output type is
// not derivable from the schema; the generator samples it at
// conversion time.
type TransformFunc func(in any) (any, error)

// Effects wraps a schema with a transform, refinement, or preprocess
// step. Transform is set only for EffectTransform and EffectPreprocess.
type Effects struct {
	Inner     Node
	Mode      EffectMode
	Transform TransformFunc
}

func (e *Effects) Kind() Kind { return KindEffects }

// Pipeline chains an input-side schema into an output-side schema.
type Pipeline struct {
	In  Node
	Out Node
}

func (p *Pipeline) Kind() Kind { return KindPipeline }

// Lazy defers construction of its inner schema until first access,
// which is how self-referential schemas are expressed without building
// an infinite structure eagerly.
type Lazy struct {
	Getter func() Node
}

func (l *Lazy) Kind() Kind { return KindLazy }

// File is a synthetic upload kind. Under describes the underlying wire
// primitive: a string schema for text uploads, a union for mixed, and
// anything else for binary buffers.
type File struct {
	Under Node
}

func (f *File) Kind() Kind { return KindFile }

// Raw is a synthetic wrapper around an object-shaped schema whose
// designated "raw" field carries the actual payload schema.
type Raw struct {
	Shape Node
}

func (r *Raw) Kind() Kind { return KindRaw }

// RawFieldName is the designated payload field of a Raw schema.
const RawFieldName = "raw"
