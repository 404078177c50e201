package ezapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/brainthinks/express-zod-api/schema"
)

// Endpoint is the thin execution contract the generators consume: an
// HTTP method and path, input and output schemas, and a handler. The
// serving pipeline behind it is not this module's concern.
type Endpoint interface {
	Method() string
	Path() string
	Input() schema.Node
	Output() schema.Node
	Handle(ctx context.Context, in any) (any, error)
}

// ErrNoHandler is returned when an endpoint is executed without a
// handler attached.
var ErrNoHandler = errors.New("ezapi: endpoint has no handler")

// EndpointDef is a plain-struct Endpoint implementation.
type EndpointDef struct {
	HTTPMethod string
	Route      string
	In         schema.Node
	Out        schema.Node
	Handler    func(ctx context.Context, in any) (any, error)
}

func (e EndpointDef) Method() string     { return e.HTTPMethod }
func (e EndpointDef) Path() string       { return e.Route }
func (e EndpointDef) Input() schema.Node { return e.In }
func (e EndpointDef) Output() schema.Node { return e.Out }

func (e EndpointDef) Handle(ctx context.Context, in any) (any, error) {
	if e.Handler == nil {
		return nil, ErrNoHandler
	}
	return e.Handler(ctx, in)
}

// Execute runs an endpoint handler, wrapping failures with the route
// for caller-side diagnostics.
func Execute(ctx context.Context, e Endpoint, in any) (any, error) {
	out, err := e.Handle(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ezapi: %s %s: %w", e.Method(), e.Path(), err)
	}
	return out, nil
}
