package sig

import (
	"github.com/tim-lang/tir/location"
)

// Field is a named, typed slot on a class or interface: `(name, TypeHandle,
// visibility, default?)` per spec.md §3.
type Field struct {
	Name       string
	Type       Handle
	Visibility Visibility
	HasDefault bool
	Span       location.Span
}

// Param is an ordered function parameter: `(name, TypeHandle,
// has_this_receiver?)` per spec.md §3.
type Param struct {
	Name        string
	Type        Handle
	IsReceiver  bool
	Span        location.Span
}

// FunctionScopeKind distinguishes the three places a Function signature can
// live, per spec.md §3's "defining scope (free function, method, or
// extension method)".
type FunctionScopeKind uint8

const (
	ScopeFreeFunction FunctionScopeKind = iota
	ScopeMethod
	ScopeExtensionMethod
)

// RequiredMethod is a method signature an interface demands of its
// implementers: name, arity, and parameter/return handles, compared
// structurally during extension completeness checking (spec.md §4.6).
type RequiredMethod struct {
	Name   string
	Params []Param
	Return Handle
	Span   location.Span
}

// ClassBody is the filled body of a Class signature.
type ClassBody struct {
	Name       string
	Module     location.SourceID
	Visibility Visibility
	Span       location.Span
	Fields     []Field
	Methods    []Handle // FunctionHandle values
	Implements []Handle // interface handles; populated during Finish

	// fieldIndex maps a field name to its position in Fields, for O(1)
	// FieldByName lookups. It is built by FillClass, after the resolver has
	// already rejected duplicate field names.
	fieldIndex map[string]int
	// methodIndex maps a method name to its Function handle, built once at
	// fill time from Methods, for qualified-path member lookup (spec.md §4.3).
	methodIndex map[string]Handle
}

// FieldByName returns the field named name and whether it exists.
func (c *ClassBody) FieldByName(name string) (Field, bool) {
	idx, ok := c.fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return c.Fields[idx], true
}

// InterfaceBody is the filled body of an Interface signature.
type InterfaceBody struct {
	Name             string
	Module           location.SourceID
	Visibility       Visibility
	Span             location.Span
	RequiredFields   []Field
	RequiredMethods  []RequiredMethod
	Parent           Handle // zero Handle means no parent interface
}

// FunctionBody is the filled body of a Function signature.
type FunctionBody struct {
	Name          string
	Module        location.SourceID
	Visibility    Visibility
	Span          location.Span
	Params        []Param
	Return        Handle
	DefiningScope FunctionScopeKind
}

// ExtensionBody is the filled body of an Extension signature: `extend C: I
// { ... }`.
type ExtensionBody struct {
	Module          location.SourceID
	Span            location.Span
	TargetClass     Handle
	TargetInterface Handle
	// Bindings lists every method defined in the extension body, including
	// ones beyond I's requirements (spec.md §4.6 step 3: "an extra,
	// non-required definition is allowed").
	Bindings []Handle
}

// ModuleBody is the filled body of a Module signature: one per source file.
type ModuleBody struct {
	FileID  location.SourceID
	Exports map[string]Handle
}
