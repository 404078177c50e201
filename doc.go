package ezapi

// Package ezapi derives static TypeScript type declarations from
// runtime schema definitions:
//
// - Schema nodes (schema/) describe value shapes as an immutable tagged union
// - The converter (typegen/) compiles a schema tree into a type expression,
//   breaking recursive cycles through a per-call alias table and sampling
//   transform effects whose output type is not statically derivable
// - The type AST (ts/) models and renders TypeScript type expressions
// - Document import (schemadoc/) reads YAML/JSON schema documents into nodes
//
// Design policy:
// - Keep only public contracts in the root package: the Endpoint execution
//   contract and the client declaration generator built on it.
// - Conversion is total: unrecognized schema kinds and failed transform
//   sampling degrade to unknown, never to an error.
// - One alias table per conversion call; concurrent conversions share nothing.
//
// Typical usage:
//
//	res := typegen.Convert(node, typegen.Options{IsResponse: true})
//	fmt.Println(ts.Print(res.Type))
//	for _, a := range res.Aliases.Entries() {
//	    fmt.Println(ts.PrintAlias(a.Name, a.Type))
//	}
