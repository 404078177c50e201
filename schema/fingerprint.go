package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Fingerprint renders a stable structural fingerprint of a schema
// node. Two nodes fingerprint identically iff they are structurally
// identical; closure identity is ignored, so independently built
// copies of the same shape collapse. Lazy children contribute only
// their kind tag, which keeps the walk finite on cyclic schemas.
func Fingerprint(n Node) string {
	var b strings.Builder
	writeFingerprint(&b, n)
	return b.String()
}

func writeFingerprint(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	switch t := n.(type) {
	case *Primitive:
		b.WriteString(t.Of.String())
		if t.Coerce {
			b.WriteString("!coerce")
		}
	case *Literal:
		b.WriteString("literal(")
		writeScalar(b, t.Value)
		b.WriteByte(')')
	case *Object:
		b.WriteString("object{")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(f.Name))
			b.WriteByte(':')
			writeFingerprint(b, f.Schema)
		}
		b.WriteByte('}')
	case *Array:
		b.WriteString("array(")
		writeFingerprint(b, t.Elem)
		b.WriteByte(')')
	case *Tuple:
		b.WriteString("tuple(")
		for i, it := range t.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeFingerprint(b, it)
		}
		if t.Rest != nil {
			b.WriteString("...")
			writeFingerprint(b, t.Rest)
		}
		b.WriteByte(')')
	case *Record:
		b.WriteString("record(")
		writeFingerprint(b, t.Key)
		b.WriteByte(',')
		writeFingerprint(b, t.Value)
		b.WriteByte(')')
	case *Union:
		b.WriteString("union(")
		writeOptions(b, t.Options)
		b.WriteByte(')')
	case *DiscriminatedUnion:
		b.WriteString("dunion[")
		b.WriteString(t.Discriminator)
		b.WriteString("](")
		writeOptions(b, t.Options)
		b.WriteByte(')')
	case *Intersection:
		b.WriteString("and(")
		writeFingerprint(b, t.Left)
		b.WriteByte(',')
		writeFingerprint(b, t.Right)
		b.WriteByte(')')
	case *Enum:
		b.WriteString("enum(")
		for i, o := range t.Options {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(o))
		}
		b.WriteByte(')')
	case *NativeEnum:
		b.WriteString("nativeEnum(")
		for i, m := range t.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.Name)
			b.WriteByte('=')
			writeScalar(b, m.Value)
		}
		b.WriteByte(')')
	case *Optional:
		writeWrapped(b, "optional", t.Inner)
	case *Nullable:
		writeWrapped(b, "nullable", t.Inner)
	case *Default:
		writeWrapped(b, "default", t.Inner)
	case *Branded:
		b.WriteString("branded[")
		b.WriteString(t.Brand)
		b.WriteString("](")
		writeFingerprint(b, t.Inner)
		b.WriteByte(')')
	case *Readonly:
		writeWrapped(b, "readonly", t.Inner)
	case *Catch:
		writeWrapped(b, "catch", t.Inner)
	case *Effects:
		b.WriteString("effects[")
		switch t.Mode {
		case EffectTransform:
			b.WriteString("transform")
		case EffectRefine:
			b.WriteString("refine")
		default:
			b.WriteString("preprocess")
		}
		b.WriteString("](")
		writeFingerprint(b, t.Inner)
		b.WriteByte(')')
	case *Pipeline:
		b.WriteString("pipeline(")
		writeFingerprint(b, t.In)
		b.WriteString("=>")
		writeFingerprint(b, t.Out)
		b.WriteByte(')')
	case *Lazy:
		// Identity stops here; recursing through the accessor would
		// never terminate on cyclic schemas.
		b.WriteString("lazy")
	case *File:
		writeWrapped(b, "file", t.Under)
	case *Raw:
		writeWrapped(b, "raw", t.Shape)
	default:
		b.WriteString(n.Kind().String())
	}
}

func writeWrapped(b *strings.Builder, tag string, inner Node) {
	b.WriteString(tag)
	b.WriteByte('(')
	writeFingerprint(b, inner)
	b.WriteByte(')')
}

func writeOptions(b *strings.Builder, options []Node) {
	for i, o := range options {
		if i > 0 {
			b.WriteByte(',')
		}
		writeFingerprint(b, o)
	}
}

func writeScalar(b *strings.Builder, v any) {
	switch s := v.(type) {
	case string:
		b.WriteString(strconv.Quote(s))
	case nil:
		b.WriteString("null")
	default:
		fmt.Fprintf(b, "%v", v)
	}
}
