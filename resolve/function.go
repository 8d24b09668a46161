package resolve

import (
	"fmt"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

// resolveParams resolves every declared parameter's type in source order.
// receiver is the enclosing class's handle, used when a parameter literally
// named "this" omits its type annotation (spec.md §6: the receiver marker
// need not restate its own type); pass a zero handle for free functions and
// interface signatures, which have no receiver.
//
// Returns ok=false if any parameter's type fails to resolve, in which case
// the caller abandons the enclosing signature rather than filling it with a
// partial body (the unfilled shell is itself the error-tainted marker
// spec.md §7's propagation policy asks for).
func resolveParams(sc *scope.Scope, table *sig.Table, issues *diag.Collector, currentModule location.SourceID, receiver sig.Handle, decls []*syntax.ParamDecl) ([]sig.Param, bool) {
	params := make([]sig.Param, 0, len(decls))
	ok := true
	for _, p := range decls {
		isReceiver := p.Name == "this"

		var t sig.Handle
		var resolved bool
		switch {
		case isReceiver && p.Type == nil:
			t, resolved = receiver, !receiver.IsZero()
		case p.Type == nil:
			issues.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_NOT_FOUND,
				fmt.Sprintf("parameter %q has no declared type", p.Name)).
				WithSpan(p.Span).
				Build())
		default:
			t, resolved = resolveTypeExpr(sc, table, issues, currentModule, p.Type)
		}
		if !resolved {
			ok = false
			continue
		}
		params = append(params, sig.Param{
			Name:       p.Name,
			Type:       t,
			IsReceiver: isReceiver,
			Span:       p.Span,
		})
	}
	if !ok {
		return nil, false
	}
	return params, true
}

// resolveReturn resolves a return type expression; a nil expr (no
// annotation) means void.
func resolveReturn(sc *scope.Scope, table *sig.Table, issues *diag.Collector, currentModule location.SourceID, expr syntax.TypeExpr) (sig.Handle, bool) {
	if expr == nil {
		return table.InternPrimitive(sig.Void), true
	}
	return resolveTypeExpr(sc, table, issues, currentModule, expr)
}

// nonReceiverParams strips the `this` receiver parameter, if present, from
// params. Interface required-method signatures never declare a receiver, so
// extension-completeness matching (spec.md §4.6 step 3) compares only the
// declared, non-receiver arguments on both sides.
func nonReceiverParams(params []sig.Param) []sig.Param {
	out := make([]sig.Param, 0, len(params))
	for _, p := range params {
		if !p.IsReceiver {
			out = append(out, p)
		}
	}
	return out
}

// finishFreeFunctions fills every reserved top-level Function shell (not
// methods, which are finished alongside their owning class or extension).
func finishFreeFunctions(g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		mi, ok := idx[m.SourceID]
		if !ok {
			continue
		}
		for _, b := range mi.functions {
			finishFunctionSignature(m.Scope, table, issues, m.SourceID, b.handle, 0, b.decl, sig.ScopeFreeFunction)
		}
	}
}

// finishFunctionSignature resolves decl's parameters and return type and
// fills its reserved shell. receiver, if non-zero, is the enclosing class's
// handle: it is bound as `this` in a function-body scope (spec.md §4.6 "bind
// `this` in the method's scope to the class's TypeHandle") and is the type
// given to an untyped `this` parameter. Free functions pass a zero receiver
// handle and scopeKind ScopeFreeFunction.
func finishFunctionSignature(sc *scope.Scope, table *sig.Table, issues *diag.Collector, module location.SourceID, handle sig.Handle, receiver sig.Handle, decl *syntax.FuncDecl, scopeKind sig.FunctionScopeKind) bool {
	params, ok := resolveParams(sc, table, issues, module, receiver, decl.Params)
	if !ok {
		return false
	}
	ret, ok := resolveReturn(sc, table, issues, module, decl.Return)
	if !ok {
		return false
	}

	if !receiver.IsZero() {
		bindReceiverScope(sc, receiver, decl.Span)
	}

	table.FillFunction(handle, &sig.FunctionBody{
		Name:          decl.Name,
		Module:        module,
		Visibility:    visibilityOf(decl.Public),
		Span:          decl.Span,
		Params:        params,
		Return:        ret,
		DefiningScope: scopeKind,
	})
	return true
}

// bindReceiverScope creates the function-body scope a method's body would
// execute in, binding `this` to classHandle. No statement inside the body is
// resolved (spec.md §1/§6: function bodies are parsed and carried, not
// evaluated, by this module), so nothing ever looks anything up in the
// returned scope; it exists so the scope tree's shape matches spec.md §3
// even though the spec's Non-goals leave expression resolution unimplemented.
func bindReceiverScope(parent *scope.Scope, classHandle sig.Handle, span location.Span) *scope.Scope {
	fnScope := scope.New(scope.FunctionBody, parent)
	_ = fnScope.Define("this", scope.Entry{Kind: scope.TypeEntry, Handle: classHandle, Span: span})
	return fnScope
}
