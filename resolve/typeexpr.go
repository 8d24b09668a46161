package resolve

import (
	"fmt"
	"strings"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

var primitiveKinds = map[string]sig.PrimitiveKind{
	"i8": sig.I8, "i16": sig.I16, "i32": sig.I32, "i64": sig.I64,
	"u8": sig.U8, "u16": sig.U16, "u32": sig.U32, "u64": sig.U64,
	"float": sig.Float, "double": sig.Double, "bool": sig.Bool,
	"string": sig.String, "void": sig.Void,
}

// resolveTypeExpr maps a syntactic type expression to a TypeHandle, per
// spec.md §4.6's four resolution rules. currentModule is the module the
// expression appears in, used to check accessibility on any qualified path
// that reaches into another module.
func resolveTypeExpr(sc *scope.Scope, table *sig.Table, issues *diag.Collector, currentModule location.SourceID, expr syntax.TypeExpr) (sig.Handle, bool) {
	switch e := expr.(type) {
	case *syntax.PrimitiveTypeExpr:
		kind, ok := primitiveKinds[e.Keyword]
		if !ok {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_NOT_FOUND,
				fmt.Sprintf("unknown primitive type %q", e.Keyword)).
				WithSpan(e.Span).
				Build())
			return 0, false
		}
		return table.InternPrimitive(kind), true

	case *syntax.NamedTypeExpr:
		return resolveNamedType(sc, table, issues, currentModule, e)

	case *syntax.NullableTypeExpr:
		inner, ok := resolveTypeExpr(sc, table, issues, currentModule, e.Inner)
		if !ok {
			return 0, false
		}
		switch table.Kind(inner) {
		case sig.KindNullable:
			issues.Collect(diag.NewIssue(diag.Error, diag.E_REDUNDANT_NULLABLE, "redundant nullable decorator").
				WithSpan(e.Span).
				Build())
			return 0, false
		case sig.KindReference:
			issues.Collect(diag.NewIssue(diag.Error, diag.E_NULLABLE_REFERENCE, "nullable cannot wrap a reference").
				WithSpan(e.Span).
				Build())
			return 0, false
		}
		return table.WrapNullable(inner), true

	case *syntax.ReferenceTypeExpr:
		inner, ok := resolveTypeExpr(sc, table, issues, currentModule, e.Inner)
		if !ok {
			return 0, false
		}
		switch table.Kind(inner) {
		case sig.KindReference:
			issues.Collect(diag.NewIssue(diag.Error, diag.E_REDUNDANT_REFERENCE, "redundant reference decorator").
				WithSpan(e.Span).
				Build())
			return 0, false
		case sig.KindNullable:
			issues.Collect(diag.NewIssue(diag.Error, diag.E_NULLABLE_REFERENCE, "reference cannot wrap a nullable").
				WithSpan(e.Span).
				Build())
			return 0, false
		}
		return table.WrapReference(inner), true

	default:
		panic(fmt.Sprintf("resolve: unknown TypeExpr %T", expr))
	}
}

func resolveNamedType(sc *scope.Scope, table *sig.Table, issues *diag.Collector, currentModule location.SourceID, e *syntax.NamedTypeExpr) (sig.Handle, bool) {
	entry, failIdx, ok := sc.LookupQualified(e.Path, table)
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_NOT_FOUND,
			fmt.Sprintf("cannot resolve type %q: segment %q not found", strings.Join(e.Path, "."), e.Path[failIdx])).
			WithSpan(e.Span).
			WithHint("check the name is declared and, if in another module, imported").
			Build())
		return 0, false
	}

	if len(e.Path) > 1 && !checkAccessible(table, issues, entry.Handle, currentModule, e.Span, strings.Join(e.Path, ".")) {
		return 0, false
	}

	return entry.Handle, true
}

// checkAccessible reports accessibility_violation if handle is private and
// declared outside currentModule. Used here for a qualified type expression
// that reaches another module directly; modgraph's import binding (spec.md
// §4.4 step 3) performs the same visibility check inline, since modgraph
// cannot import this package.
func checkAccessible(table *sig.Table, issues *diag.Collector, handle sig.Handle, currentModule location.SourceID, span location.Span, label string) bool {
	vis, declModule, hasVis := table.Visibility(handle)
	if !hasVis || vis != sig.Private || declModule == currentModule {
		return true
	}
	issues.Collect(diag.NewIssue(diag.Error, diag.E_ACCESSIBILITY_VIOLATION,
		fmt.Sprintf("%q is private to its declaring module", label)).
		WithSpan(span).
		WithRelated(location.RelatedInfo{Span: table.Span(handle), Message: location.MsgDeclaredHere}).
		Build())
	return false
}
