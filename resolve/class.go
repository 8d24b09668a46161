package resolve

import (
	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/sig"
)

// finishClasses fills every reserved Class shell across every module.
// Classes are finished after interfaces (see finishInterfaces) and before
// extensions, so extension completeness can already see each class's own
// fields and methods.
func finishClasses(g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		mi, ok := idx[m.SourceID]
		if !ok {
			continue
		}
		for _, b := range mi.classes {
			finishClass(m, b, table, issues)
		}
	}
}

func finishClass(m *modgraph.Module, b classBinding, table *sig.Table, issues *diag.Collector) {
	decl := b.decl
	body := &sig.ClassBody{
		Name:       decl.Name,
		Module:     m.SourceID,
		Visibility: visibilityOf(decl.Public),
		Span:       decl.Span,
	}

	seen := make(map[string]location.Span, len(decl.Fields))
	for _, f := range decl.Fields {
		if first, dup := seen[f.Name]; dup {
			collectFieldAlreadyDefined(issues, f.Name, first, f.NameSpan)
			continue
		}
		seen[f.Name] = f.NameSpan

		typeHandle, ok := resolveTypeExpr(m.Scope, table, issues, m.SourceID, f.Type)
		if !ok {
			continue
		}
		body.Fields = append(body.Fields, sig.Field{
			Name:       f.Name,
			Type:       typeHandle,
			Visibility: visibilityOf(f.Public),
			HasDefault: f.HasDefault,
			Span:       f.Span,
		})
	}

	methodNames := make(map[string]location.Span, len(decl.Methods))
	for _, methodDecl := range decl.Methods {
		if first, dup := methodNames[methodDecl.Name]; dup {
			collectFieldAlreadyDefined(issues, methodDecl.Name, first, methodDecl.NameSpan)
			continue
		}
		methodNames[methodDecl.Name] = methodDecl.NameSpan

		methodHandle := table.Reserve(sig.KindFunction, m.SourceID, methodDecl.Name, methodDecl.Span)
		table.DeclareVisibility(methodHandle, visibilityOf(methodDecl.Public))
		if finishFunctionSignature(m.Scope, table, issues, m.SourceID, methodHandle, b.handle, methodDecl, sig.ScopeMethod) {
			body.Methods = append(body.Methods, methodHandle)
		}
	}

	table.FillClass(b.handle, body)
}
