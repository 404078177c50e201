package typegen

import (
	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
)

// DefaultRegistry returns the producer set covering every built-in
// schema node kind. Callers extend it with Registry.With.
func DefaultRegistry() Registry {
	return Registry{
		schema.KindString:             keywordProducer(ts.String),
		schema.KindNumber:             keywordProducer(ts.Number),
		schema.KindBigInt:             keywordProducer(ts.BigInt),
		schema.KindBoolean:            keywordProducer(ts.Boolean),
		schema.KindAny:                keywordProducer(ts.Any),
		schema.KindUndefined:          keywordProducer(ts.Undefined),
		schema.KindDate:               produceDate,
		schema.KindNull:               produceNull,
		schema.KindLiteral:            produceLiteral,
		schema.KindObject:             produceObject,
		schema.KindArray:              produceArray,
		schema.KindTuple:              produceTuple,
		schema.KindRecord:             produceRecord,
		schema.KindUnion:              produceUnion,
		schema.KindDiscriminatedUnion: produceDiscriminatedUnion,
		schema.KindIntersection:       produceIntersection,
		schema.KindEnum:               produceEnum,
		schema.KindNativeEnum:         produceNativeEnum,
		schema.KindOptional:           produceOptional,
		schema.KindNullable:           produceNullable,
		schema.KindDefault:            produceDefault,
		schema.KindBranded:            produceBranded,
		schema.KindReadonly:           produceReadonly,
		schema.KindCatch:              produceCatch,
		schema.KindEffects:            produceEffects,
		schema.KindPipeline:           producePipeline,
		schema.KindLazy:               produceLazy,
		schema.KindFile:               produceFile,
		schema.KindRaw:                produceRaw,
	}
}

func keywordProducer(kw func() *ts.Keyword) Producer {
	return func(schema.Node, *Context) ts.Type { return kw() }
}

func produceDate(schema.Node, *Context) ts.Type { return ts.Ref("Date") }

func produceNull(schema.Node, *Context) ts.Type { return ts.Null() }

func produceLiteral(n schema.Node, _ *Context) ts.Type {
	l, ok := n.(*schema.Literal)
	if !ok {
		return ts.Unknown()
	}
	switch l.Value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return ts.Lit(l.Value)
	case nil:
		return ts.Null()
	default:
		return ts.Unknown()
	}
}

func produceObject(n schema.Node, c *Context) ts.Type {
	o, ok := n.(*schema.Object)
	if !ok {
		return ts.Unknown()
	}
	members := make([]ts.Member, 0, len(o.Fields))
	for _, f := range o.Fields {
		members = append(members, ts.Member{
			Name:     f.Name,
			Type:     c.Next(f.Schema),
			Optional: fieldOptional(f, c) && c.Style.WithQuestionMark,
			Comment:  f.Description,
		})
	}
	return &ts.Object{Members: members}
}

// fieldOptional applies the member optionality rule. Coercing field
// schemas change input optionality semantics, so in response mode they
// count as optional only when explicitly wrapped in Optional;
// everything else follows the field schema's own optional predicate.
func fieldOptional(f schema.Field, c *Context) bool {
	if c.IsResponse && schema.HasCoercion(f.Schema) {
		_, direct := f.Schema.(*schema.Optional)
		return direct
	}
	return schema.IsOptional(f.Schema)
}

func produceArray(n schema.Node, c *Context) ts.Type {
	a, ok := n.(*schema.Array)
	if !ok {
		return ts.Unknown()
	}
	return ts.ArrayOf(c.Next(a.Elem))
}

func produceTuple(n schema.Node, c *Context) ts.Type {
	t, ok := n.(*schema.Tuple)
	if !ok {
		return ts.Unknown()
	}
	items := make([]ts.Type, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, c.Next(it))
	}
	out := &ts.Tuple{Items: items}
	if t.Rest != nil {
		out.Rest = c.Next(t.Rest)
	}
	return out
}

func produceRecord(n schema.Node, c *Context) ts.Type {
	r, ok := n.(*schema.Record)
	if !ok {
		return ts.Unknown()
	}
	return ts.Ref("Record", c.Next(r.Key), c.Next(r.Value))
}

func produceUnion(n schema.Node, c *Context) ts.Type {
	u, ok := n.(*schema.Union)
	if !ok {
		return ts.Unknown()
	}
	return unionOf(u.Options, c)
}

func produceDiscriminatedUnion(n schema.Node, c *Context) ts.Type {
	u, ok := n.(*schema.DiscriminatedUnion)
	if !ok {
		return ts.Unknown()
	}
	return unionOf(u.Options, c)
}

func unionOf(options []schema.Node, c *Context) ts.Type {
	out := make([]ts.Type, 0, len(options))
	for _, o := range options {
		out = append(out, c.Next(o))
	}
	return ts.UnionOf(out...)
}

func produceIntersection(n schema.Node, c *Context) ts.Type {
	i, ok := n.(*schema.Intersection)
	if !ok {
		return ts.Unknown()
	}
	return &ts.Intersection{Left: c.Next(i.Left), Right: c.Next(i.Right)}
}

func produceEnum(n schema.Node, _ *Context) ts.Type {
	e, ok := n.(*schema.Enum)
	if !ok {
		return ts.Unknown()
	}
	options := make([]ts.Type, 0, len(e.Options))
	for _, o := range e.Options {
		options = append(options, ts.Lit(o))
	}
	return ts.UnionOf(options...)
}

func produceNativeEnum(n schema.Node, _ *Context) ts.Type {
	e, ok := n.(*schema.NativeEnum)
	if !ok {
		return ts.Unknown()
	}
	options := make([]ts.Type, 0, len(e.Members))
	for _, m := range e.Members {
		options = append(options, ts.Lit(m.Value))
	}
	return ts.UnionOf(options...)
}

func produceOptional(n schema.Node, c *Context) ts.Type {
	o, ok := n.(*schema.Optional)
	if !ok {
		return ts.Unknown()
	}
	inner := c.Next(o.Inner)
	if c.Style.WithUndefined {
		return ts.UnionOf(inner, ts.Undefined())
	}
	// Optionality is then expressed only by the enclosing object
	// member, if any.
	return inner
}

func produceNullable(n schema.Node, c *Context) ts.Type {
	v, ok := n.(*schema.Nullable)
	if !ok {
		return ts.Unknown()
	}
	return ts.UnionOf(c.Next(v.Inner), ts.Null())
}

// Default, Branded, Readonly, and Catch never change the derived type.

func produceDefault(n schema.Node, c *Context) ts.Type {
	v, ok := n.(*schema.Default)
	if !ok {
		return ts.Unknown()
	}
	return c.Next(v.Inner)
}

func produceBranded(n schema.Node, c *Context) ts.Type {
	v, ok := n.(*schema.Branded)
	if !ok {
		return ts.Unknown()
	}
	return c.Next(v.Inner)
}

func produceReadonly(n schema.Node, c *Context) ts.Type {
	v, ok := n.(*schema.Readonly)
	if !ok {
		return ts.Unknown()
	}
	return c.Next(v.Inner)
}

func produceCatch(n schema.Node, c *Context) ts.Type {
	v, ok := n.(*schema.Catch)
	if !ok {
		return ts.Unknown()
	}
	return c.Next(v.Inner)
}

func produceEffects(n schema.Node, c *Context) ts.Type {
	e, ok := n.(*schema.Effects)
	if !ok {
		return ts.Unknown()
	}
	if e.Mode == schema.EffectTransform && c.IsResponse {
		return sampleTransform(e, c)
	}
	return c.Next(e.Inner)
}

// producePipeline selects the input-side schema for requests and the
// output-side schema for responses; the selected child is walked with
// the same response flag.
func producePipeline(n schema.Node, c *Context) ts.Type {
	p, ok := n.(*schema.Pipeline)
	if !ok {
		return ts.Unknown()
	}
	if c.IsResponse {
		return c.Next(p.Out)
	}
	return c.Next(p.In)
}

func produceFile(n schema.Node, c *Context) ts.Type {
	f, ok := n.(*schema.File)
	if !ok || f.Under == nil {
		return ts.Ref("Buffer")
	}
	switch f.Under.Kind() {
	case schema.KindString:
		return ts.String()
	case schema.KindUnion, schema.KindDiscriminatedUnion:
		return ts.UnionOf(ts.String(), ts.Ref("Buffer"))
	default:
		return ts.Ref("Buffer")
	}
}

func produceRaw(n schema.Node, c *Context) ts.Type {
	r, ok := n.(*schema.Raw)
	if !ok {
		return ts.Unknown()
	}
	if o, ok := r.Shape.(*schema.Object); ok {
		if f, ok := o.FieldNamed(schema.RawFieldName); ok {
			return c.Next(f.Schema)
		}
	}
	return ts.Unknown()
}
