package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
)

// Index is the opaque Resolve-to-Finish handoff returned by Resolve and
// consumed by Finish. Callers only ever thread it between the two calls.
type Index = byModule

// Resolve runs Phase One (spec.md §4.5) across every module in g, in
// registration order:
//
//  1. Reserve each module's own Module shell and bind its name at the graph
//     root, so forward and circular `use` targets all exist.
//  2. Reserve a shell for every top-level class, interface, function, and
//     extension, binding named declarations into their module's scope.
//     Duplicates produce already_defined.
//  3. Fill every module's export map from its now-reserved public
//     declarations.
//  4. Bind every import (spec.md §4.4), now that every shell and every
//     export map exists.
//
// Resolve never evaluates a declaration's body; bodies are filled by Finish.
func Resolve(ctx context.Context, g *modgraph.Graph, table *sig.Table, issues *diag.Collector, opts ...Option) Index {
	cfg := applyOptions(opts)

	for _, m := range g.Modules() {
		h := table.Reserve(sig.KindModule, m.SourceID, m.Name, m.File.Span)
		if err := g.Root().Define(m.Name, scope.Entry{Kind: scope.TypeEntry, Handle: h, Span: m.File.Span}); err != nil {
			collectAlreadyDefined(issues, m.Name, err)
			continue
		}
		m.Handle = h
		TraceDebug(ctx, cfg.logger, "resolve: module registered", slog.String("module", m.Name))
	}

	idx := make(Index, len(g.Modules()))
	for _, m := range g.Modules() {
		if m.Handle.IsZero() {
			continue
		}
		idx[m.SourceID] = reserveDeclarations(m, table, issues)
	}

	for _, m := range g.Modules() {
		if m.Handle.IsZero() {
			continue
		}
		table.FillModule(m.Handle, &sig.ModuleBody{
			FileID:  m.SourceID,
			Exports: buildExports(idx[m.SourceID]),
		})
	}

	modgraph.ResolveImports(g, table, issues)
	TraceDebug(ctx, cfg.logger, "resolve: imports bound", slog.Int("modules", len(g.Modules())))

	return idx
}

// reserveDeclarations reserves a shell for every top-level declaration in m
// and binds named ones into m's scope. Source order within each declaration
// kind is preserved; statics are recorded but not yet bound (spec.md §3 has
// no Static signature, so a static's scope entry can only be built once
// Finish resolves its declared type).
func reserveDeclarations(m *modgraph.Module, table *sig.Table, issues *diag.Collector) *moduleIndex {
	idx := &moduleIndex{}

	for _, c := range m.File.Classes {
		h := table.Reserve(sig.KindClass, m.SourceID, c.Name, c.Span)
		table.DeclareVisibility(h, visibilityOf(c.Public))
		if err := m.Scope.Define(c.Name, scope.Entry{Kind: scope.TypeEntry, Handle: h, Span: c.NameSpan}); err != nil {
			collectAlreadyDefined(issues, c.Name, err)
			continue
		}
		idx.classes = append(idx.classes, classBinding{h, c})
	}

	for _, i := range m.File.Interfaces {
		h := table.Reserve(sig.KindInterface, m.SourceID, i.Name, i.Span)
		table.DeclareVisibility(h, visibilityOf(i.Public))
		if err := m.Scope.Define(i.Name, scope.Entry{Kind: scope.TypeEntry, Handle: h, Span: i.NameSpan}); err != nil {
			collectAlreadyDefined(issues, i.Name, err)
			continue
		}
		idx.interfaces = append(idx.interfaces, interfaceBinding{h, i})
	}

	for _, f := range m.File.Functions {
		h := table.Reserve(sig.KindFunction, m.SourceID, f.Name, f.Span)
		table.DeclareVisibility(h, visibilityOf(f.Public))
		if err := m.Scope.Define(f.Name, scope.Entry{Kind: scope.TypeEntry, Handle: h, Span: f.NameSpan}); err != nil {
			collectAlreadyDefined(issues, f.Name, err)
			continue
		}
		idx.functions = append(idx.functions, functionBinding{h, f})
	}

	for _, e := range m.File.Extensions {
		// Extensions are not referenced by name; nothing binds them in scope.
		h := table.Reserve(sig.KindExtension, m.SourceID, "", e.Span)
		idx.extensions = append(idx.extensions, extensionBinding{h, e})
	}

	idx.statics = append(idx.statics, m.File.Statics...)

	return idx
}

// buildExports collects every public top-level class, interface, and
// function into a module's export map (spec.md §3 "Module: ... map from
// exported name → TypeHandle"). Extensions and statics are never exported:
// extensions have no name of their own, and spec.md's TypeSignature variants
// have no Static case.
func buildExports(idx *moduleIndex) map[string]sig.Handle {
	exports := make(map[string]sig.Handle)
	for _, b := range idx.classes {
		if b.decl.Public {
			exports[b.decl.Name] = b.handle
		}
	}
	for _, b := range idx.interfaces {
		if b.decl.Public {
			exports[b.decl.Name] = b.handle
		}
	}
	for _, b := range idx.functions {
		if b.decl.Public {
			exports[b.decl.Name] = b.handle
		}
	}
	return exports
}

func visibilityOf(public bool) sig.Visibility {
	if public {
		return sig.Public
	}
	return sig.Private
}

// collectAlreadyDefined turns a *scope.AlreadyDefinedError into an
// already_defined diagnostic citing both spans (spec.md §4.3).
func collectAlreadyDefined(issues *diag.Collector, name string, err error) {
	var already *scope.AlreadyDefinedError
	if !errors.As(err, &already) {
		return
	}
	issues.Collect(diag.NewIssue(diag.Error, diag.E_ALREADY_DEFINED,
		fmt.Sprintf("%q already defined", name)).
		WithSpan(already.SecondSpan).
		WithRelated(location.RelatedInfo{Span: already.FirstSpan, Message: location.MsgPreviousDefinition}).
		Build())
}
