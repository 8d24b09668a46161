package modgraph

import (
	"fmt"

	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

// Module is one node in the graph: a source file plus its declarations (via
// File), its own module scope, and (once the resolve package's Resolve phase
// has run) its signature Handle and resolved import map.
type Module struct {
	SourceID location.SourceID
	// Name is the bind name other modules use in `use Name[.member]`,
	// derived from the source path (see [DeriveModuleName]).
	Name  string
	File  *syntax.File
	Scope *scope.Scope

	// Handle is the module's own Module-kind signature handle. Zero until
	// the resolve package's Resolve phase fills it in.
	Handle sig.Handle

	// ResolvedImports maps a locally-bound name to the handle it refers to,
	// per spec.md §3's "Module node... resolved import map (local name →
	// TypeHandle)". Populated by [ResolveImports].
	ResolvedImports map[string]sig.Handle
}

// Graph holds every module in a compilation, the shared root scope module
// names are bound into, and registration order (spec.md §5: "iteration
// order over modules is the registration order").
type Graph struct {
	root    *scope.Scope
	modules []*Module
	byName  map[string]*Module
}

// New creates an empty Graph with a fresh root scope.
func New() *Graph {
	return &Graph{
		root:   scope.New(scope.Root, nil),
		byName: make(map[string]*Module),
	}
}

// Root returns the graph's shared root scope, the parent of every module
// scope and the scope module names are bound into.
func (g *Graph) Root() *scope.Scope {
	return g.root
}

// AddModule registers a new module for sourceID with bind name name,
// creating its module-kind scope as a child of the graph's root scope.
//
// AddModule does not itself bind name into the root scope or reserve a
// signature handle; that happens in the resolve package's Resolve phase,
// which needs the table to report an already_defined diagnostic on a name
// collision rather than a bare error here.
func (g *Graph) AddModule(sourceID location.SourceID, name string, file *syntax.File) *Module {
	m := &Module{
		SourceID:        sourceID,
		Name:            name,
		File:            file,
		Scope:           scope.New(scope.Module, g.root),
		ResolvedImports: make(map[string]sig.Handle),
	}
	g.modules = append(g.modules, m)
	g.byName[name] = m
	return m
}

// Modules returns every module in registration order.
func (g *Graph) Modules() []*Module {
	return g.modules
}

// ModuleByName returns the module bound under name, if any. Used by tests
// and by diagnostics that need to resolve a name back to its owning file.
func (g *Graph) ModuleByName(name string) (*Module, bool) {
	m, ok := g.byName[name]
	return m, ok
}

// DeriveModuleName computes the bind name a module is known by to other
// modules: the source path's final path segment with its extension
// stripped, e.g. "lib.tim" and "pkg/lib.tim" both derive "lib".
//
// The grammar in spec.md §6 has no explicit `module` declaration, so the
// name a file is imported under must come from somewhere outside the
// syntax tree; deriving it from the registered path mirrors how the
// scenarios in spec.md §8 name files after the module they define (e.g.
// "lib.tim" exporting things importable as `use lib.Secret`).
func DeriveModuleName(path string) string {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
			break
		}
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}

// String returns a debug label for a Module ("name@sourceID").
func (m *Module) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.SourceID.String())
}
