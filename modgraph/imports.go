package modgraph

import (
	"errors"
	"fmt"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

// ResolveImports runs the import-binding algorithm of spec.md §4.4 across
// every module in g, in registration order. It must run after every
// module's declaration shells have been reserved, their visibility
// declared via [sig.Table.DeclareVisibility], and every module's own
// Module handle filled with its export map (the resolve package's Resolve
// phase does all three, in that order, before calling this). None of that
// requires Finish: visibility and a module's export set are both known
// directly from the syntax tree, before any signature body is filled.
func ResolveImports(g *Graph, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		for _, imp := range m.File.Imports {
			resolveOneImport(g, m, imp, table, issues)
		}
	}
}

func resolveOneImport(g *Graph, m *Module, imp *syntax.ImportDecl, table *sig.Table, issues *diag.Collector) {
	entry, failIdx, ok := m.Scope.LookupQualified(imp.Path, table)
	if !ok && failIdx > 0 && failIdx == len(imp.Path)-1 {
		// A private declaration is absent from its module's export map, so
		// look for it in the declaring module's own scope; the visibility
		// check below then reports it as inaccessible rather than missing.
		if prefix, _, found := m.Scope.LookupQualified(imp.Path[:failIdx], table); found && table.Kind(prefix.Handle) == sig.KindModule {
			if target, found := g.ModuleByName(table.Name(prefix.Handle)); found {
				if local, found := target.Scope.LocalLookup(imp.Path[failIdx]); found {
					if vis, declModule, hasVis := table.Visibility(local.Handle); hasVis && vis == sig.Private && declModule == target.SourceID {
						entry, ok = local, true
					}
				}
			}
		}
	}
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_PATH_NOT_FOUND,
			fmt.Sprintf("cannot resolve %q: segment %q not found", joinPath(imp.Path), imp.Path[failIdx])).
			WithSpan(imp.Span).
			Build())
		return
	}

	if imp.Wildcard {
		resolveWildcardImport(m, imp, entry.Handle, table, issues)
		return
	}

	if vis, declModule, hasVis := table.Visibility(entry.Handle); hasVis && vis == sig.Private && declModule != m.SourceID {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_ACCESSIBILITY_VIOLATION,
			fmt.Sprintf("%q is private to its declaring module", joinPath(imp.Path))).
			WithSpan(imp.Span).
			WithRelated(location.RelatedInfo{Span: table.Span(entry.Handle), Message: location.MsgDeclaredHere}).
			Build())
		return
	}

	localName := imp.Alias
	if localName == "" {
		localName = imp.Path[len(imp.Path)-1]
	}

	if err := m.Scope.Define(localName, scope.Entry{Kind: scope.TypeEntry, Handle: entry.Handle, Span: imp.Span}); err != nil {
		var already *scope.AlreadyDefinedError
		if errors.As(err, &already) {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_CONFLICT,
				fmt.Sprintf("import of %q conflicts with existing local %q", joinPath(imp.Path), localName)).
				WithSpan(imp.Span).
				WithRelated(location.RelatedInfo{Span: already.FirstSpan, Message: location.MsgPreviousDefinition}).
				Build())
		}
		return
	}

	m.ResolvedImports[localName] = entry.Handle
}

func resolveWildcardImport(m *Module, imp *syntax.ImportDecl, target sig.Handle, table *sig.Table, issues *diag.Collector) {
	if table.Kind(target) != sig.KindModule {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_EXPECTED_CLASS,
			fmt.Sprintf("wildcard import target %q is not a module", joinPath(imp.Path))).
			WithSpan(imp.Span).
			Build())
		return
	}

	body := table.Module(target)
	for name, handle := range body.Exports {
		if err := m.Scope.Define(name, scope.Entry{Kind: scope.TypeEntry, Handle: handle, Span: imp.Span}); err != nil {
			var already *scope.AlreadyDefinedError
			if errors.As(err, &already) {
				issues.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_CONFLICT,
					fmt.Sprintf("wildcard import of %q shadows existing local %q", joinPath(imp.Path), name)).
					WithSpan(imp.Span).
					WithRelated(location.RelatedInfo{Span: already.FirstSpan, Message: location.MsgPreviousDefinition}).
					Build())
			}
			continue
		}
		m.ResolvedImports[name] = handle
	}
}

func joinPath(path []string) string {
	out := ""
	for i, seg := range path {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}
