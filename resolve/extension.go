package resolve

import (
	"fmt"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/syntax"
)

// finishExtensions fills every reserved Extension shell across every
// module. Extensions run after every class and interface is filled
// (finishClasses, finishInterfaces), since completeness checking needs both
// the target class's own fields and the target interface's full, inherited
// requirement set already in the table.
func finishExtensions(g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector) {
	for _, m := range g.Modules() {
		mi, ok := idx[m.SourceID]
		if !ok {
			continue
		}
		for _, b := range mi.extensions {
			finishExtension(m, b, table, issues)
		}
	}
}

func finishExtension(m *modgraph.Module, b extensionBinding, table *sig.Table, issues *diag.Collector) {
	decl := b.decl

	classHandle, ok := lookupEntityKind(m, table, issues, sig.KindClass, diag.E_EXPECTED_CLASS, "class", decl.Class, decl.ClassSpan)
	if !ok {
		return
	}
	interfaceHandle, ok := lookupEntityKind(m, table, issues, sig.KindInterface, diag.E_EXPECTED_INTERFACE, "interface", decl.Interface, decl.InterfaceSpan)
	if !ok {
		return
	}

	for _, existing := range table.Class(classHandle).Implements {
		if existing == interfaceHandle {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_EXTENSION,
				fmt.Sprintf("%q already implements %q", decl.Class, decl.Interface)).
				WithSpan(decl.HeaderSpan).
				Build())
			return
		}
	}

	bindings, bindingNames := finishExtensionMethods(m, classHandle, decl, table, issues)

	reqFields, reqMethods := requiredMembers(table, interfaceHandle)
	missing := checkFieldRequirements(table, classHandle, reqFields)
	missing = append(missing, checkMethodRequirements(table, bindingNames, reqMethods)...)

	if len(missing) > 0 {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_INTERFACE_IMPLEMENTATION_INCOMPLETE,
			fmt.Sprintf("%q does not fully implement %q", decl.Class, decl.Interface)).
			WithSpan(decl.HeaderSpan).
			WithRelated(missing...).
			Build())
		table.FillExtension(b.handle, &sig.ExtensionBody{
			Module:          m.SourceID,
			Span:            decl.Span,
			TargetClass:     classHandle,
			TargetInterface: interfaceHandle,
			Bindings:        bindings,
		})
		return
	}

	table.RecordImplementedInterface(classHandle, interfaceHandle)

	requiredNames := make(map[string]bool, len(reqMethods))
	for _, rm := range reqMethods {
		requiredNames[rm.Name] = true
	}
	for name, handle := range bindingNames {
		if !requiredNames[name] {
			table.AppendMethod(classHandle, handle)
		}
	}

	table.FillExtension(b.handle, &sig.ExtensionBody{
		Module:          m.SourceID,
		Span:            decl.Span,
		TargetClass:     classHandle,
		TargetInterface: interfaceHandle,
		Bindings:        bindings,
	})
}

// lookupEntityKind resolves a bare identifier (the `extend C: I` header
// names neither as a dotted path) and checks it is the expected kind.
func lookupEntityKind(m *modgraph.Module, table *sig.Table, issues *diag.Collector, want sig.Kind, code diag.Code, label, name string, span location.Span) (sig.Handle, bool) {
	entry, ok := m.Scope.Lookup(name)
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_NOT_FOUND,
			fmt.Sprintf("cannot resolve %q", name)).
			WithSpan(span).
			Build())
		return 0, false
	}
	if table.Kind(entry.Handle) != want {
		issues.Collect(diag.NewIssue(diag.Error, code,
			fmt.Sprintf("%q is not %s %s", name, article(label), label)).
			WithSpan(span).
			WithRelated(location.RelatedInfo{Span: table.Span(entry.Handle), Message: location.MsgDeclaredHere}).
			Build())
		return 0, false
	}
	return entry.Handle, true
}

func article(label string) string {
	switch label[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}

// finishExtensionMethods resolves every method defined in the extension
// body, filling a fresh Function shell for each. Returns the full ordered
// binding list (spec.md §3's Extension "list of method/field bindings") and
// a name-indexed view used for completeness matching and extra-method
// attachment.
func finishExtensionMethods(m *modgraph.Module, classHandle sig.Handle, decl *syntax.ExtensionDecl, table *sig.Table, issues *diag.Collector) ([]sig.Handle, map[string]sig.Handle) {
	bindings := make([]sig.Handle, 0, len(decl.Methods))
	byName := make(map[string]sig.Handle, len(decl.Methods))

	for _, methodDecl := range decl.Methods {
		if first, dup := byName[methodDecl.Name]; dup {
			collectFieldAlreadyDefined(issues, methodDecl.Name, table.Span(first), methodDecl.NameSpan)
			continue
		}
		handle := table.Reserve(sig.KindFunction, m.SourceID, methodDecl.Name, methodDecl.Span)
		table.DeclareVisibility(handle, visibilityOf(methodDecl.Public))
		if !finishFunctionSignature(m.Scope, table, issues, m.SourceID, handle, classHandle, methodDecl, sig.ScopeExtensionMethod) {
			continue
		}
		bindings = append(bindings, handle)
		byName[methodDecl.Name] = handle
	}

	return bindings, byName
}

// checkFieldRequirements matches an interface's (inherited) required fields
// against the target class's own fields, by name and exact type-handle
// equality. spec.md §4.6 step 3 only states the method-matching rule
// explicitly; this extends the same name+handle equality to
// InterfaceBody.RequiredFields, since the data model carries required
// fields too.
func checkFieldRequirements(table *sig.Table, classHandle sig.Handle, required []sig.Field) []location.RelatedInfo {
	var missing []location.RelatedInfo
	classBody := table.Class(classHandle)
	for _, rf := range required {
		field, ok := classBody.FieldByName(rf.Name)
		if !ok || field.Type != rf.Type {
			missing = append(missing, location.RelatedInfo{
				Span:    rf.Span,
				Message: fmt.Sprintf("missing required field %q", rf.Name),
			})
		}
	}
	return missing
}

// checkMethodRequirements matches an interface's (inherited) required
// methods against the methods defined in the extension body, by name,
// arity, pairwise parameter type handles, and return handle (spec.md §4.6
// step 3), ignoring any `this` receiver on either side.
func checkMethodRequirements(table *sig.Table, bindings map[string]sig.Handle, required []sig.RequiredMethod) []location.RelatedInfo {
	var missing []location.RelatedInfo
	for _, rm := range required {
		handle, ok := bindings[rm.Name]
		if !ok || !signatureMatches(table.Function(handle), rm) {
			missing = append(missing, location.RelatedInfo{
				Span:    rm.Span,
				Message: fmt.Sprintf("missing required method %q", rm.Name),
			})
		}
	}
	return missing
}

func signatureMatches(fn *sig.FunctionBody, rm sig.RequiredMethod) bool {
	params := nonReceiverParams(fn.Params)
	if len(params) != len(rm.Params) {
		return false
	}
	for i, p := range params {
		if p.Type != rm.Params[i].Type {
			return false
		}
	}
	return fn.Return == rm.Return
}
