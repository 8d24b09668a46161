package resolve

import (
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

// classBinding pairs a reserved shell with the syntax node whose body Finish
// still has to evaluate. Mirrors how the teacher's completer carries parsed
// nodes forward from indexing into completion by ID
// (schema/internal/complete/complete.go's typeIndex/dataIndex).
type classBinding struct {
	handle sig.Handle
	decl   *syntax.ClassDecl
}

type interfaceBinding struct {
	handle sig.Handle
	decl   *syntax.InterfaceDecl
}

type functionBinding struct {
	handle sig.Handle
	decl   *syntax.FuncDecl
}

type extensionBinding struct {
	handle sig.Handle
	decl   *syntax.ExtensionDecl
}

// moduleIndex is the Resolve-to-Finish handoff for one module: every
// top-level declaration's reserved handle paired with its AST node.
// Statics carry no handle of their own (spec.md §3 has no Static
// TypeSignature variant), so they are recorded by AST node only and bound
// into scope during Finish once their declared type is resolved.
type moduleIndex struct {
	classes    []classBinding
	interfaces []interfaceBinding
	functions  []functionBinding
	extensions []extensionBinding
	statics    []*syntax.StaticDecl
}

// byModule maps every module's SourceID to its index, threaded from Resolve
// into Finish by the tir driver.
type byModule map[location.SourceID]*moduleIndex
