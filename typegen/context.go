package typegen

// Package typegen derives TypeScript type expressions from runtime
// schema nodes. Conversion is total: every well-formed schema node
// yields a type, with unknown as the universal fallback, and no entry
// point returns an error.

import (
	"github.com/rs/zerolog"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
)

// OptionalPropStyle controls how optional object members are rendered:
// syntactically optional (name?: T), widened with undefined
// (name: T | undefined), both, or neither.
type OptionalPropStyle struct {
	WithQuestionMark bool
	WithUndefined    bool
}

// Options configures one top-level conversion.
type Options struct {
	// IsResponse selects output-side semantics: transform sampling,
	// pipeline output schemas, and coercion-aware member optionality.
	IsResponse bool

	OptionalPropStyle OptionalPropStyle

	// Registry overrides the producer set. Nil means DefaultRegistry.
	Registry Registry

	// Logger receives debug events from the transform sampler. Nil
	// disables logging.
	Logger *zerolog.Logger
}

// Context threads per-call state through the recursive walk. One
// Context, and therefore one alias table, exists per Convert call;
// concurrent Convert calls are fully isolated.
type Context struct {
	IsResponse bool
	Style      OptionalPropStyle
	Aliases    *AliasTable

	// Next recurses into a child schema node with this same context.
	Next func(schema.Node) ts.Type

	// Serializer renders a stable structural fingerprint of a schema
	// node, used to name aliases.
	Serializer func(schema.Node) string

	registry Registry
	log      zerolog.Logger
}

// Result is the outcome of one conversion: the root type expression
// plus the alias table accumulated while breaking recursive cycles.
// Renderers emit one alias declaration per table entry.
type Result struct {
	Type    ts.Type
	Aliases *AliasTable
}

// Convert derives the type expression for a schema node.
func Convert(n schema.Node, opt Options) Result {
	reg := opt.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	c := &Context{
		IsResponse: opt.IsResponse,
		Style:      opt.OptionalPropStyle,
		Aliases:    NewAliasTable(),
		Serializer: schema.Fingerprint,
		registry:   reg,
		log:        log,
	}
	c.Next = func(child schema.Node) ts.Type { return Walk(child, c) }
	return Result{Type: Walk(n, c), Aliases: c.Aliases}
}
