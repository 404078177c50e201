package ezapi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/brainthinks/express-zod-api/ts"
	"github.com/brainthinks/express-zod-api/typegen"
)

// ClientOptions configures client declaration generation.
type ClientOptions struct {
	OptionalPropStyle typegen.OptionalPropStyle
	Logger            *zerolog.Logger
}

// GenerateClient renders TypeScript declarations for a set of
// endpoints: per endpoint one Input alias (request-side semantics) and
// one Response alias (response-side semantics), preceded by the alias
// declarations minted while converting recursive schemas. Alias names
// are content-derived, so entries repeating across endpoints are
// emitted once.
func GenerateClient(endpoints []Endpoint, opt ClientOptions) (string, error) {
	var b strings.Builder
	seen := make(map[string]bool)
	for _, ep := range endpoints {
		if ep == nil {
			return "", errors.New("ezapi: nil endpoint")
		}
		id := endpointID(ep)
		if id == "" {
			return "", fmt.Errorf("ezapi: cannot derive an identifier for %q %q", ep.Method(), ep.Path())
		}
		req := typegen.Convert(ep.Input(), typegen.Options{
			OptionalPropStyle: opt.OptionalPropStyle,
			Logger:            opt.Logger,
		})
		res := typegen.Convert(ep.Output(), typegen.Options{
			IsResponse:        true,
			OptionalPropStyle: opt.OptionalPropStyle,
			Logger:            opt.Logger,
		})
		writeAliases(&b, req.Aliases, seen)
		writeAliases(&b, res.Aliases, seen)
		b.WriteString(ts.PrintAlias(id+"Input", req.Type))
		b.WriteString("\n\n")
		b.WriteString(ts.PrintAlias(id+"Response", res.Type))
		b.WriteString("\n\n")
	}
	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return "", nil
	}
	return out + "\n", nil
}

func writeAliases(b *strings.Builder, table *typegen.AliasTable, seen map[string]bool) {
	for _, e := range table.Entries() {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		b.WriteString(ts.PrintAlias(e.Name, e.Type))
		b.WriteString("\n\n")
	}
}

// endpointID derives a PascalCase identifier from method and path:
// GET /v1/user/:id becomes GetV1UserId.
func endpointID(e Endpoint) string {
	var b strings.Builder
	writeWord(&b, e.Method())
	segs := strings.FieldsFunc(e.Path(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, seg := range segs {
		writeWord(&b, seg)
	}
	return b.String()
}

func writeWord(b *strings.Builder, w string) {
	if w == "" {
		return
	}
	lower := strings.ToLower(w)
	r, size := utf8.DecodeRuneInString(lower)
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(lower[size:])
}
