// Package tir is the front end of a compiler for a statically typed,
// object-oriented source language with modules, classes, interfaces,
// extensions, nullable types, and reference parameters. It accepts a set of
// source files, parses them, and performs full semantic analysis — name
// resolution, type resolution, interface/extension completeness,
// accessibility and uniqueness checks — producing either a resolved
// intermediate representation of the program or a set of diagnostics with
// precise source locations.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source IDs, byte-range spans, and related-location labels
//	  - diag: Structured diagnostics with stable error codes
//
//	Syntax tier:
//	  - syntax: Lexing and parsing into an abstract syntax tree
//
//	Core resolver tier:
//	  - sig: The shell/reserve-then-fill signature table (TypeHandle space)
//	  - scope: Lexical scope tree with parent-chain lookup and shadowing
//	  - modgraph: Module graph, module scopes, and import resolution
//	  - resolve: The two-phase Resolve/Finish resolver
//
// # Entry Point
//
// Compilation:
//
//	import "github.com/tim-lang/tir"
//
//	program, result := tir.Compile(ctx, []tir.Source{
//	    {Path: "lib.tim", Text: libText},
//	    {Path: "main.tim", Text: mainText},
//	})
//	if !result.OK() {
//	    // result.Errors() yields diag.Issue values with source spans
//	}
//	// program.Table holds every resolved TypeHandle; program.Graph holds
//	// each module's scope, export map, and resolved imports.
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/tim-lang/tir/diag]: Structured diagnostics
//   - [github.com/tim-lang/tir/location]: Source location tracking
//   - [github.com/tim-lang/tir/source]: Source text registry
//   - [github.com/tim-lang/tir/syntax]: Lexer and parser
//   - [github.com/tim-lang/tir/sig]: Signature table (TypeHandle space)
//   - [github.com/tim-lang/tir/scope]: Lexical scope tree
//   - [github.com/tim-lang/tir/modgraph]: Module graph and import resolution
//   - [github.com/tim-lang/tir/resolve]: The Resolve/Finish resolver
package tir
