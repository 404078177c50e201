package ts

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// Print renders a type expression as TypeScript source text.
func Print(t Type) string {
	var b strings.Builder
	writeType(&b, t, 0)
	return b.String()
}

// PrintAlias renders a type alias declaration for t under the given
// name.
func PrintAlias(name string, t Type) string {
	var b strings.Builder
	b.WriteString("type ")
	b.WriteString(name)
	b.WriteString(" = ")
	writeType(&b, t, 0)
	b.WriteByte(';')
	return b.String()
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

const indentUnit = "  "

func writeType(b *strings.Builder, t Type, depth int) {
	if t == nil {
		b.WriteString("unknown")
		return
	}
	switch v := t.(type) {
	case *Keyword:
		b.WriteString(v.Name)
	case *Literal:
		writeLiteral(b, v.Value)
	case *Object:
		writeObject(b, v, depth)
	case *Array:
		writeParenthesized(b, v.Elem, depth)
		b.WriteString("[]")
	case *Tuple:
		b.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, it, depth)
		}
		if v.Rest != nil {
			if len(v.Items) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("...")
			writeParenthesized(b, v.Rest, depth)
			b.WriteString("[]")
		}
		b.WriteByte(']')
	case *Union:
		if len(v.Options) == 0 {
			b.WriteString("never")
			return
		}
		for i, o := range v.Options {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeType(b, o, depth)
		}
	case *Intersection:
		writeParenthesized(b, v.Left, depth)
		b.WriteString(" & ")
		writeParenthesized(b, v.Right, depth)
	case *Reference:
		b.WriteString(v.Name)
		if len(v.Args) > 0 {
			b.WriteByte('<')
			for i, a := range v.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				writeType(b, a, depth)
			}
			b.WriteByte('>')
		}
	default:
		b.WriteString("unknown")
	}
}

// writeParenthesized wraps union and intersection operands so that
// postfix [] and infix & bind the way the tree says.
func writeParenthesized(b *strings.Builder, t Type, depth int) {
	switch t.(type) {
	case *Union, *Intersection:
		b.WriteByte('(')
		writeType(b, t, depth)
		b.WriteByte(')')
	default:
		writeType(b, t, depth)
	}
}

func writeObject(b *strings.Builder, o *Object, depth int) {
	if len(o.Members) == 0 {
		b.WriteString("{}")
		return
	}
	inner := strings.Repeat(indentUnit, depth+1)
	b.WriteString("{\n")
	for _, m := range o.Members {
		if m.Comment != "" {
			b.WriteString(inner)
			b.WriteString("/** ")
			b.WriteString(m.Comment)
			b.WriteString(" */\n")
		}
		b.WriteString(inner)
		writeMemberName(b, m.Name)
		if m.Optional {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		writeType(b, m.Type, depth+1)
		b.WriteString(";\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')
}

func writeMemberName(b *strings.Builder, name string) {
	if identRe.MatchString(name) {
		b.WriteString(name)
		return
	}
	writeLiteral(b, name)
}

func writeLiteral(b *strings.Builder, v any) {
	if v == nil {
		b.WriteString("null")
		return
	}
	enc, err := json.Marshal(v)
	if err != nil {
		b.WriteString("unknown")
		return
	}
	b.Write(enc)
}
