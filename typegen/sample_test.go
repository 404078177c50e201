package typegen_test

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brainthinks/express-zod-api/schema"
	"github.com/brainthinks/express-zod-api/typegen"
)

func convertResponse(t *testing.T, n schema.Node) string {
	t.Helper()
	return convert(t, n, typegen.Options{IsResponse: true})
}

func TestTransformSamplingClassifiesResult(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node schema.Node
		want string
	}{
		{
			"number to number",
			schema.Transform(schema.Number(), func(in any) (any, error) {
				return in.(float64) * 2, nil
			}),
			"number",
		},
		{
			"number to string",
			schema.Transform(schema.Number(), func(in any) (any, error) {
				return strconv.FormatFloat(in.(float64), 'f', -1, 64), nil
			}),
			"string",
		},
		{
			"string to bool",
			schema.Transform(schema.String(), func(in any) (any, error) {
				return len(in.(string)) > 0, nil
			}),
			"boolean",
		},
		{
			"boolean to bigint",
			schema.Transform(schema.Bool(), func(in any) (any, error) {
				return big.NewInt(7), nil
			}),
			"bigint",
		},
		{
			"string to map",
			schema.Transform(schema.String(), func(in any) (any, error) {
				return map[string]any{"v": in}, nil
			}),
			"object",
		},
		{
			"string to struct",
			schema.Transform(schema.String(), func(in any) (any, error) {
				return struct{ V string }{V: in.(string)}, nil
			}),
			"object",
		},
		{
			"undefined sample",
			schema.Transform(schema.Undefined(), func(in any) (any, error) {
				return 1, nil
			}),
			"number",
		},
		{
			"nil result",
			schema.Transform(schema.String(), func(in any) (any, error) {
				return nil, nil
			}),
			"undefined",
		},
		{
			"slice result unclassifiable",
			schema.Transform(schema.String(), func(in any) (any, error) {
				return []int{1}, nil
			}),
			"unknown",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, convertResponse(t, tc.node))
		})
	}
}

func TestTransformSamplingDegradesToUnknown(t *testing.T) {
	t.Parallel()

	t.Run("transform returns an error", func(t *testing.T) {
		t.Parallel()
		n := schema.Transform(schema.Number(), func(in any) (any, error) {
			return nil, errors.New("nope")
		})
		assert.Equal(t, "unknown", convertResponse(t, n))
	})

	t.Run("transform panics", func(t *testing.T) {
		t.Parallel()
		n := schema.Transform(schema.Number(), func(in any) (any, error) {
			panic("boom")
		})
		assert.Equal(t, "unknown", convertResponse(t, n))
	})

	t.Run("nil transform", func(t *testing.T) {
		t.Parallel()
		n := schema.Transform(schema.Number(), nil)
		assert.Equal(t, "unknown", convertResponse(t, n))
	})

	t.Run("no sample for the inner type", func(t *testing.T) {
		t.Parallel()
		// Literal types have no sample table entry; sampling is
		// skipped even though the transform would succeed.
		n := schema.Transform(schema.Lit("x"), func(in any) (any, error) {
			return 1, nil
		})
		assert.Equal(t, "unknown", convertResponse(t, n))
	})

	t.Run("any has no sample", func(t *testing.T) {
		t.Parallel()
		n := schema.Transform(schema.Any(), func(in any) (any, error) {
			return 1, nil
		})
		assert.Equal(t, "unknown", convertResponse(t, n))
	})
}

func TestTransformOutsideResponseModeIsTransparent(t *testing.T) {
	t.Parallel()

	n := schema.Transform(schema.Number(), func(in any) (any, error) {
		return "widened", nil
	})
	assert.Equal(t, "number", convert(t, n, typegen.Options{}),
		"input-side conversion keeps the untransformed type")
}

func TestTransformSampleIsRepresentative(t *testing.T) {
	t.Parallel()

	// The sampler feeds the zero-ish sample of the inner type; a
	// transform observing it sees 0 for numbers and "" for strings.
	n := schema.Transform(schema.Number(), func(in any) (any, error) {
		if in.(float64) != 0 {
			return nil, errors.New("unexpected sample")
		}
		return "ok", nil
	})
	assert.Equal(t, "string", convertResponse(t, n))
}
