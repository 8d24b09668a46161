package resolve

import (
	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
)

// finishStatics resolves every module-level static variable's declared type
// and binds it into the module's scope. Statics run last: they carry no
// signature of their own (spec.md §3's TypeSignature variants have no Static
// case), so nothing downstream depends on them being bound earlier.
//
// A static is always Mutable: spec.md §6's grammar gives it no `const`
// counterpart, so a bound static is a reassignable module-level variable
// like the teacher's schema fields default to settable unless marked
// otherwise.
func finishStatics(g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		mi, ok := idx[m.SourceID]
		if !ok {
			continue
		}
		for _, decl := range mi.statics {
			typeHandle, ok := resolveTypeExpr(m.Scope, table, issues, m.SourceID, decl.Type)
			if !ok {
				continue
			}
			err := m.Scope.Define(decl.Name, scope.Entry{
				Kind:      scope.ValueEntry,
				ValueType: typeHandle,
				Mutable:   true,
				Span:      decl.Span,
			})
			if err != nil {
				collectAlreadyDefined(issues, decl.Name, err)
			}
		}
	}
}
