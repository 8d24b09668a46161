package resolve

import (
	"fmt"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/sig"
)

// finishInterfaces fills every reserved Interface shell across every module.
// Interfaces are finished before classes and extensions because extension
// completeness (spec.md §4.6 step 3) needs every interface's required
// members, including inherited ones, already in the table.
func finishInterfaces(g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		mi, ok := idx[m.SourceID]
		if !ok {
			continue
		}
		for _, b := range mi.interfaces {
			finishInterface(m, b, table, issues)
		}
	}
}

func finishInterface(m *modgraph.Module, b interfaceBinding, table *sig.Table, issues *diag.Collector) {
	decl := b.decl
	body := &sig.InterfaceBody{
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
		body.RequiredFields = append(body.RequiredFields, sig.Field{
			Name:       f.Name,
			Type:       typeHandle,
			Visibility: visibilityOf(f.Public),
			HasDefault: f.HasDefault,
			Span:       f.Span,
		})
	}

	methodNames := make(map[string]location.Span, len(decl.Methods))
	for _, sigDecl := range decl.Methods {
		if first, dup := methodNames[sigDecl.Name]; dup {
			collectFieldAlreadyDefined(issues, sigDecl.Name, first, sigDecl.NameSpan)
			continue
		}
		methodNames[sigDecl.Name] = sigDecl.NameSpan

		params, ok := resolveParams(m.Scope, table, issues, m.SourceID, 0, sigDecl.Params)
		if !ok {
			continue
		}
		ret, ok := resolveReturn(m.Scope, table, issues, m.SourceID, sigDecl.Return)
		if !ok {
			continue
		}
		body.RequiredMethods = append(body.RequiredMethods, sig.RequiredMethod{
			Name:   sigDecl.Name,
			Params: nonReceiverParams(params),
			Return: ret,
			Span:   sigDecl.Span,
		})
	}

	if decl.Parent != "" {
		parentEntry, ok := m.Scope.Lookup(decl.Parent)
		if !ok {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_NOT_FOUND,
				fmt.Sprintf("cannot resolve parent interface %q", decl.Parent)).
				WithSpan(decl.ParentSpan).
				Build())
		} else if table.Kind(parentEntry.Handle) != sig.KindInterface {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_EXPECTED_INTERFACE,
				fmt.Sprintf("%q is not an interface", decl.Parent)).
				WithSpan(decl.ParentSpan).
				WithRelated(location.RelatedInfo{Span: table.Span(parentEntry.Handle), Message: location.MsgDeclaredHere}).
				Build())
		} else {
			body.Parent = parentEntry.Handle
		}
	}

	table.FillInterface(b.handle, body)
}

// collectFieldAlreadyDefined reports a duplicate field or method name within
// one class/interface body (spec.md §4.6 "enforce distinct field names").
func collectFieldAlreadyDefined(issues *diag.Collector, name string, first, second location.Span) {
	issues.Collect(diag.NewIssue(diag.Error, diag.E_ALREADY_DEFINED,
		fmt.Sprintf("%q already defined", name)).
		WithSpan(second).
		WithRelated(location.RelatedInfo{Span: first, Message: location.MsgPreviousDefinition}).
		Build())
}

// requiredMembers walks h's parent chain (spec.md §4.6 step 3 "including
// inherited requirements from its parent chain"), collecting every required
// field and method. Keep-first on name collisions between a child and its
// ancestor, mirroring the teacher's keep-first inheritance linearization
// (schema/internal/complete/linearize.go).
//
// A parent cycle (I extends J extends I) cannot be expressed as one of
// spec.md §7's closed diagnostic kinds, so ascent simply stops the first
// time it revisits a handle, using whatever partial chain it already
// collected — a visited set of handles is the cycle guard, not a
// diagnostic source (mirroring the mechanism, not the reporting, of
// schema/internal/complete/cross_cycle.go).
func requiredMembers(table *sig.Table, h sig.Handle) ([]sig.Field, []sig.RequiredMethod) {
	var fields []sig.Field
	var methods []sig.RequiredMethod
	fieldSeen := make(map[string]bool)
	methodSeen := make(map[string]bool)
	visited := make(map[sig.Handle]bool)

	for cur := h; !cur.IsZero() && !visited[cur]; cur = table.Interface(cur).Parent {
		visited[cur] = true
		body := table.Interface(cur)
		for _, f := range body.RequiredFields {
			if !fieldSeen[f.Name] {
				fieldSeen[f.Name] = true
				fields = append(fields, f)
			}
		}
		for _, rm := range body.RequiredMethods {
			if !methodSeen[rm.Name] {
				methodSeen[rm.Name] = true
				methods = append(methods, rm)
			}
		}
	}

	return fields, methods
}
