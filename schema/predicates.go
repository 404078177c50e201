package schema

// IsOptional reports whether a value may be absent for this schema:
// Optional, Default, and Catch all accept absent input. Other wrapper
// kinds delegate to their inner schema. Lazy nodes report false; an
// optional recursive reference is expressed by wrapping the Lazy node
// itself.
func IsOptional(n Node) bool {
	switch t := n.(type) {
	case *Optional:
		return true
	case *Default:
		return true
	case *Catch:
		return true
	case *Nullable:
		return IsOptional(t.Inner)
	case *Branded:
		return IsOptional(t.Inner)
	case *Readonly:
		return IsOptional(t.Inner)
	case *Effects:
		return IsOptional(t.Inner)
	case *Pipeline:
		return IsOptional(t.In)
	default:
		return false
	}
}

// HasCoercion reports whether this schema accepts a broader input type
// than its logical type: a coercing primitive, or a transform or
// preprocess effect anywhere in its wrapper chain.
func HasCoercion(n Node) bool {
	switch t := n.(type) {
	case *Primitive:
		return t.Coerce
	case *Effects:
		return t.Mode != EffectRefine || HasCoercion(t.Inner)
	case *Optional:
		return HasCoercion(t.Inner)
	case *Nullable:
		return HasCoercion(t.Inner)
	case *Default:
		return HasCoercion(t.Inner)
	case *Branded:
		return HasCoercion(t.Inner)
	case *Readonly:
		return HasCoercion(t.Inner)
	case *Catch:
		return HasCoercion(t.Inner)
	case *Pipeline:
		return HasCoercion(t.In)
	default:
		return false
	}
}
