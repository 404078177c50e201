package typegen

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/ts"
)

// sampleTransform infers the output type of a transform effect in
// response mode. The schema alone cannot tell us what the transform
// returns, so we derive the untransformed input type, build one
// representative sample value for it, run the transform on that sample
// inside a guarded call, and classify the runtime type of the result.
// Any failure along the way degrades to unknown; it never propagates.
//
// The inference is best-effort: a transform whose return type depends
// on its input is classified from a single arbitrary sample.
func sampleTransform(e *schema.Effects, c *Context) ts.Type {
	inner := c.Next(e.Inner)
	sample, ok := makeSample(inner)
	if !ok || e.Transform == nil {
		return ts.Unknown()
	}
	out, err := runTransform(e.Transform, sample)
	if err != nil {
		c.log.Debug().Err(err).Msg("transform sampling failed; falling back to unknown")
		return ts.Unknown()
	}
	return classifyResult(out)
}

// makeSample builds a runtime value whose type matches the surface
// kind of t. Only keyword kinds have samples; literals, type literals,
// unions and the rest skip sampling.
func makeSample(t ts.Type) (any, bool) {
	k, ok := t.(*ts.Keyword)
	if !ok {
		return nil, false
	}
	switch k.Name {
	case "bigint":
		return big.NewInt(0), true
	case "boolean":
		return false, true
	case "number":
		return float64(0), true
	case "object":
		return map[string]any{}, true
	case "string":
		return "", true
	case "undefined":
		return nil, true
	default:
		return nil, false
	}
}

// runTransform executes caller-supplied transform code with a tight
// failure boundary: both returned errors and panics surface as errors
// here and go no further.
func runTransform(fn schema.TransformFunc, in any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panicked: %v", r)
		}
	}()
	return fn(in)
}

// classifyResult maps the runtime type of a transform result onto a
// keyword type, defaulting to unknown for anything unrecognized.
func classifyResult(v any) ts.Type {
	if v == nil {
		return ts.Undefined()
	}
	if _, ok := v.(*big.Int); ok {
		return ts.BigInt()
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return ts.Boolean()
	case reflect.String:
		return ts.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ts.Number()
	case reflect.Map, reflect.Struct:
		return ts.ObjectKeyword()
	default:
		return ts.Unknown()
	}
}
