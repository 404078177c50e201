package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brainthinks/express-zod-api/schemadoc"
	"github.com/brainthinks/express-zod-api/ts"
	"github.com/brainthinks/express-zod-api/typegen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "generate":
		generateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "eztypes CLI\n\nUsage:\n  eztypes generate -i schema.yaml [-o types.d.ts] [-response] [-question-mark] [-undefined] [-v]\n\nNotes:\n  - Input is a schema document (YAML or JSON); every document in a multi-document input yields one declaration.")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var in string
	var out string
	var isResponse bool
	var questionMark bool
	var withUndefined bool
	var verbose bool
	fs.StringVar(&in, "i", "", "input schema document (YAML or JSON)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&isResponse, "response", false, "derive response-side types instead of input-side")
	fs.BoolVar(&questionMark, "question-mark", true, "render optional members with a question mark")
	fs.BoolVar(&withUndefined, "undefined", false, "widen optional member types with undefined")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	defs, err := schemadoc.ImportAll(data)
	if err != nil {
		fatalf("importing %s: %v", in, err)
	}
	if len(defs) == 0 {
		fatalf("no schema documents in %s", in)
	}

	opt := typegen.Options{
		IsResponse: isResponse,
		OptionalPropStyle: typegen.OptionalPropStyle{
			WithQuestionMark: questionMark,
			WithUndefined:    withUndefined,
		},
		Logger: &log,
	}

	var b strings.Builder
	seen := make(map[string]bool)
	for _, def := range defs {
		res := typegen.Convert(def.Schema, opt)
		for _, a := range res.Aliases.Entries() {
			if seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			b.WriteString(ts.PrintAlias(a.Name, a.Type))
			b.WriteString("\n\n")
		}
		b.WriteString(ts.PrintAlias(def.Name, res.Type))
		b.WriteString("\n\n")
		log.Debug().Str("name", def.Name).Int("aliases", res.Aliases.Len()).Msg("converted document")
	}
	code := strings.TrimRight(b.String(), "\n") + "\n"

	if out == "" {
		fmt.Print(code)
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, []byte(code), 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
	log.Info().Str("path", out).Int("documents", len(defs)).Msg("wrote declarations")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "eztypes: "+format+"\n", a...)
	os.Exit(1)
}
