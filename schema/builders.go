package schema

// Builder constructors for the scalar kinds and the wrappers that are
// awkward to spell as struct literals. Composite nodes (Object, Array,
// Tuple, ...) are constructed directly via their exported fields.

// String returns a string schema.
func String() *Primitive { return &Primitive{Of: KindString} }

// Number returns a number schema.
func Number() *Primitive { return &Primitive{Of: KindNumber} }

// BigInt returns a bigint schema.
func BigInt() *Primitive { return &Primitive{Of: KindBigInt} }

// Bool returns a boolean schema.
func Bool() *Primitive { return &Primitive{Of: KindBoolean} }

// Date returns a date schema.
func Date() *Primitive { return &Primitive{Of: KindDate} }

// Any returns a schema accepting every value.
func Any() *Primitive { return &Primitive{Of: KindAny} }

// Undefined returns a schema matching only the absent value.
func Undefined() *Primitive { return &Primitive{Of: KindUndefined} }

// Null returns a schema matching only null.
func Null() *Primitive { return &Primitive{Of: KindNull} }

// Coerced returns a copy of p with input coercion enabled.
func Coerced(p *Primitive) *Primitive {
	c := *p
	c.Coerce = true
	return &c
}

// Lit returns a literal schema for a scalar value.
func Lit(v any) *Literal { return &Literal{Value: v} }

// F builds an object field.
func F(name string, s Node) Field { return Field{Name: name, Schema: s} }

// ObjectOf builds an object schema from ordered fields.
func ObjectOf(fields ...Field) *Object { return &Object{Fields: fields} }

// ArrayOf builds an array schema.
func ArrayOf(elem Node) *Array { return &Array{Elem: elem} }

// UnionOf builds a union schema from ordered options.
func UnionOf(options ...Node) *Union { return &Union{Options: options} }

// EnumOf builds a string enum schema.
func EnumOf(options ...string) *Enum { return &Enum{Options: options} }

// OptionalOf wraps s as optional.
func OptionalOf(s Node) *Optional { return &Optional{Inner: s} }

// NullableOf wraps s as nullable.
func NullableOf(s Node) *Nullable { return &Nullable{Inner: s} }

// Transform wraps s with caller-supplied transform code.
func Transform(s Node, fn TransformFunc) *Effects {
	return &Effects{Inner: s, Mode: EffectTransform, Transform: fn}
}

// Refine wraps s with a refinement effect. Refinements never change
// the derived type.
func Refine(s Node) *Effects { return &Effects{Inner: s, Mode: EffectRefine} }

// Deferred wraps a schema accessor for self-referential definitions.
func Deferred(getter func() Node) *Lazy { return &Lazy{Getter: getter} }

// StringFile returns a file schema whose wire format is text.
func StringFile() *File { return &File{Under: String()} }

// BufferFile returns a file schema whose wire format is binary.
func BufferFile() *File { return &File{Under: Any()} }

// AnyFile returns a file schema accepting either text or binary.
func AnyFile() *File { return &File{Under: UnionOf(String(), Any())} }

// RawOf wraps an object-shaped schema whose RawFieldName field holds
// the payload schema.
func RawOf(payload Node) *Raw {
	return &Raw{Shape: ObjectOf(F(RawFieldName, payload))}
}
