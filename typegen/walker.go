package typegen

import (
	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
)

// Producer encodes the conversion rule for one schema node kind.
type Producer func(schema.Node, *Context) ts.Type

// Registry maps schema node kinds to producers. New kinds are
// supported by registration, not by branching inside the walker.
type Registry map[schema.Kind]Producer

// With returns a copy of the registry with p registered for kind.
func (r Registry) With(kind schema.Kind, p Producer) Registry {
	out := make(Registry, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[kind] = p
	return out
}

// Walk dispatches n to the producer registered for its kind. Kinds
// without a producer resolve to the unknown keyword; the walker never
// fails, trading precision for total coverage.
func Walk(n schema.Node, c *Context) ts.Type {
	if n == nil {
		return ts.Unknown()
	}
	if p, ok := c.registry[n.Kind()]; ok {
		return p(n, c)
	}
	return ts.Unknown()
}
