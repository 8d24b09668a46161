package syntax

import (
	"github.com/tim-lang/tir/location"
)

// File is the syntax-level representation of one parsed source file. It
// carries only what parsing produced; semantic resolution happens in the
// resolve package.
type File struct {
	SourceID location.SourceID
	Imports  []*ImportDecl
	Classes  []*ClassDecl
	Interfaces []*InterfaceDecl
	Extensions []*ExtensionDecl
	Functions  []*FuncDecl
	Statics    []*StaticDecl
	Span       location.Span
}

// ImportDecl is `use path [as alias]` or `use path.*`.
type ImportDecl struct {
	Path     []string
	Alias    string // "" if no explicit alias
	Wildcard bool
	Span     location.Span
}

// ClassDecl is `[pub] class Name { ... }`.
type ClassDecl struct {
	Name     string
	NameSpan location.Span
	Public   bool
	Fields   []*FieldDecl
	Methods  []*FuncDecl
	Span     location.Span
}

// InterfaceDecl is `[pub] interface Name [: Parent] { ... }`.
type InterfaceDecl struct {
	Name       string
	NameSpan   location.Span
	Public     bool
	Parent     string // "" if no parent interface
	ParentSpan location.Span
	Fields     []*FieldDecl
	Methods    []*FuncSigDecl
	Span       location.Span
}

// ExtensionDecl is `extend Class: Interface { ... }`.
type ExtensionDecl struct {
	Class          string
	ClassSpan      location.Span
	Interface      string
	InterfaceSpan  location.Span
	// HeaderSpan covers `extend Class: Interface`, used as the primary label
	// for interface_implementation_incomplete (spec.md §4.6 step 3).
	HeaderSpan location.Span
	Methods    []*FuncDecl
	Span       location.Span
}

// FuncDecl is a function or method with a body (skipped, not parsed).
type FuncDecl struct {
	Name     string
	NameSpan location.Span
	Public   bool
	Params   []*ParamDecl
	Return   TypeExpr // nil means void
	Span     location.Span
}

// FuncSigDecl is an interface's required method signature (no body).
type FuncSigDecl struct {
	Name     string
	NameSpan location.Span
	Params   []*ParamDecl
	Return   TypeExpr
	Span     location.Span
}

// ParamDecl is one function parameter. A parameter literally named "this"
// is the method-receiver marker (spec.md §6).
type ParamDecl struct {
	Name string
	Type TypeExpr
	Span location.Span
}

// FieldDecl is a class or interface field.
type FieldDecl struct {
	Name        string
	NameSpan    location.Span
	Type        TypeExpr
	Public      bool
	HasDefault  bool
	Span        location.Span
}

// StaticDecl is a module-level `static` variable.
type StaticDecl struct {
	Name       string
	NameSpan   location.Span
	Type       TypeExpr
	Public     bool
	HasDefault bool
	Span       location.Span
}

// TypeExpr is a syntactic type expression: a primitive keyword, a simple or
// dotted identifier path, `?T`, or `ref T`.
type TypeExpr interface {
	typeExprSpan() location.Span
}

// PrimitiveTypeExpr names one of the built-in primitive keywords.
type PrimitiveTypeExpr struct {
	Keyword string
	Span    location.Span
}

func (e *PrimitiveTypeExpr) typeExprSpan() location.Span { return e.Span }

// NamedTypeExpr is a simple or qualified identifier, e.g. `Foo` or
// `lib.Foo`.
type NamedTypeExpr struct {
	Path []string
	Span location.Span
}

func (e *NamedTypeExpr) typeExprSpan() location.Span { return e.Span }

// NullableTypeExpr is `?Inner`.
type NullableTypeExpr struct {
	Inner TypeExpr
	Span  location.Span
}

func (e *NullableTypeExpr) typeExprSpan() location.Span { return e.Span }

// ReferenceTypeExpr is `ref Inner`.
type ReferenceTypeExpr struct {
	Inner TypeExpr
	Span  location.Span
}

func (e *ReferenceTypeExpr) typeExprSpan() location.Span { return e.Span }

// TypeExprSpan returns the span of any TypeExpr.
func TypeExprSpan(e TypeExpr) location.Span {
	return e.typeExprSpan()
}

var primitiveKeywords = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"float": true, "double": true, "bool": true, "string": true, "void": true,
}

// IsPrimitiveKeyword reports whether word names a built-in primitive type.
func IsPrimitiveKeyword(word string) bool {
	return primitiveKeywords[word]
}
