package sig

import (
	"fmt"

	"github.com/tim-lang/tir/location"
)

// entry is the table's internal storage for one Handle. payload holds the
// kind-specific body once filled; it is nil for a reserved shell.
type entry struct {
	kind    Kind
	name    string
	module  location.SourceID
	span    location.Span
	filled  bool
	payload any

	// primitive/inner are set directly at construction for Primitive,
	// Nullable, and Reference entries, which have no separate fill step.
	primitive PrimitiveKind
	inner     Handle

	// visibility is set via DeclareVisibility, independent of fill: the
	// `pub` keyword is known from the syntax node at Reserve time, and
	// modgraph's import-accessibility check (spec.md §4.4 step 3) runs
	// before Finish has filled anything.
	visibility Visibility
}

// Table is the grow-only signature table described in spec.md §4.2. See the
// package doc for the reserve/fill/seal lifecycle and the concurrency
// divergence from the teacher's [schema.Registry].
type Table struct {
	entries []entry // entries[h-1] backs Handle(h)

	primitives map[PrimitiveKind]Handle
	nullables  map[Handle]Handle
	references map[Handle]Handle
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		primitives: make(map[PrimitiveKind]Handle),
		nullables:  make(map[Handle]Handle),
		references: make(map[Handle]Handle),
	}
}

func (t *Table) push(e entry) Handle {
	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

func (t *Table) at(h Handle) (*entry, bool) {
	if h.IsZero() || int(h) > len(t.entries) {
		return nil, false
	}
	return &t.entries[h-1], true
}

// InternPrimitive returns the Handle for a built-in primitive kind,
// interning it on first use. Idempotent: repeated calls with the same kind
// return the same Handle.
func (t *Table) InternPrimitive(kind PrimitiveKind) Handle {
	if h, ok := t.primitives[kind]; ok {
		return h
	}
	h := t.push(entry{kind: KindPrimitive, name: kind.String(), primitive: kind, filled: true})
	t.primitives[kind] = h
	return h
}

// Reserve inserts a shell entry for a Class, Interface, Function, Extension,
// or Module during the Resolve phase. The body is filled later via the
// matching Fill* method, enabling forward references (spec.md §4.2, §4.5).
//
// Reserve panics if kind is not one of the five entity kinds; Primitive,
// Nullable, and Reference have no shell phase.
func (t *Table) Reserve(kind Kind, module location.SourceID, name string, span location.Span) Handle {
	switch kind {
	case KindClass, KindInterface, KindFunction, KindExtension, KindModule:
	default:
		panic(fmt.Sprintf("sig: Reserve called with non-entity kind %s", kind))
	}
	return t.push(entry{kind: kind, name: name, module: module, span: span})
}

// fill performs the shared shell-to-body transition shared by every Fill*
// method: validate the handle's kind, reject a double-fill, store the
// payload.
func (t *Table) fill(h Handle, kind Kind, payload any) {
	e, ok := t.at(h)
	if !ok {
		panic(fmt.Sprintf("sig: fill called on unknown handle %d", h))
	}
	if e.kind != kind {
		panic(fmt.Sprintf("sig: fill kind mismatch for handle %d: entry is %s, fill is %s", h, e.kind, kind))
	}
	if e.filled {
		panic(fmt.Sprintf("sig: double-fill of handle %d (%s %q)", h, kind, e.name))
	}
	e.payload = payload
	e.filled = true
}

// FillClass completes a reserved Class shell.
func (t *Table) FillClass(h Handle, body *ClassBody) {
	body.fieldIndex = make(map[string]int, len(body.Fields))
	for i, f := range body.Fields {
		body.fieldIndex[f.Name] = i
	}
	body.methodIndex = make(map[string]Handle, len(body.Methods))
	for _, m := range body.Methods {
		if e, ok := t.at(m); ok {
			body.methodIndex[e.name] = m
		}
	}
	t.fill(h, KindClass, body)
}

// FillInterface completes a reserved Interface shell.
func (t *Table) FillInterface(h Handle, body *InterfaceBody) {
	t.fill(h, KindInterface, body)
}

// FillFunction completes a reserved Function shell.
func (t *Table) FillFunction(h Handle, body *FunctionBody) {
	t.fill(h, KindFunction, body)
}

// FillExtension completes a reserved Extension shell.
func (t *Table) FillExtension(h Handle, body *ExtensionBody) {
	t.fill(h, KindExtension, body)
}

// FillModule completes a reserved Module shell.
func (t *Table) FillModule(h Handle, body *ModuleBody) {
	t.fill(h, KindModule, body)
}

// WrapNullable returns the Handle for `?inner`, deduplicated: asking twice
// for the same inner Handle returns the same Handle (spec.md §4.2).
//
// WrapNullable does not itself enforce the "no ??T" / "no ?ref T" invariants;
// those are resolver-level diagnostics (spec.md §4.6) since they require
// reporting a span, not a panic.
func (t *Table) WrapNullable(inner Handle) Handle {
	if h, ok := t.nullables[inner]; ok {
		return h
	}
	h := t.push(entry{kind: KindNullable, inner: inner, filled: true})
	t.nullables[inner] = h
	return h
}

// WrapReference returns the Handle for `ref inner`, deduplicated like
// [Table.WrapNullable].
func (t *Table) WrapReference(inner Handle) Handle {
	if h, ok := t.references[inner]; ok {
		return h
	}
	h := t.push(entry{kind: KindReference, inner: inner, filled: true})
	t.references[inner] = h
	return h
}

// Kind returns the Kind of h, or KindInvalid if h is not a valid handle.
func (t *Table) Kind(h Handle) Kind {
	e, ok := t.at(h)
	if !ok {
		return KindInvalid
	}
	return e.kind
}

// IsFilled reports whether h's shell has been filled. Always true for
// Primitive, Nullable, and Reference handles.
func (t *Table) IsFilled(h Handle) bool {
	e, ok := t.at(h)
	return ok && e.filled
}

// Name returns the declared name of h (empty for Nullable/Reference, which
// are unnamed decorators).
func (t *Table) Name(h Handle) string {
	e, ok := t.at(h)
	if !ok {
		return ""
	}
	return e.name
}

// Span returns the declaration span of h.
func (t *Table) Span(h Handle) location.Span {
	e, ok := t.at(h)
	if !ok {
		return location.Span{}
	}
	return e.span
}

// Primitive returns the PrimitiveKind of h and whether h is a Primitive.
func (t *Table) Primitive(h Handle) (PrimitiveKind, bool) {
	e, ok := t.at(h)
	if !ok || e.kind != KindPrimitive {
		return 0, false
	}
	return e.primitive, true
}

// Inner returns the wrapped Handle of a Nullable or Reference, and whether h
// was one of those two kinds.
func (t *Table) Inner(h Handle) (Handle, bool) {
	e, ok := t.at(h)
	if !ok || (e.kind != KindNullable && e.kind != KindReference) {
		return 0, false
	}
	return e.inner, true
}

// mustPayload type-asserts a filled entry's payload, panicking with a
// descriptive message on kind mismatch or an unfilled shell. These panics
// indicate a resolver bug (looking up a handle before Finish reaches it),
// never a user diagnostic.
func mustPayload[T any](t *Table, h Handle, kind Kind) T {
	e, ok := t.at(h)
	if !ok {
		panic(fmt.Sprintf("sig: unknown handle %d", h))
	}
	if e.kind != kind {
		panic(fmt.Sprintf("sig: handle %d is %s, not %s", h, e.kind, kind))
	}
	if !e.filled {
		panic(fmt.Sprintf("sig: handle %d (%s %q) read before fill", h, kind, e.name))
	}
	return e.payload.(T)
}

// Class returns the filled ClassBody for h. Panics if h is not a filled
// Class handle.
func (t *Table) Class(h Handle) *ClassBody {
	return mustPayload[*ClassBody](t, h, KindClass)
}

// Interface returns the filled InterfaceBody for h. Panics if h is not a
// filled Interface handle.
func (t *Table) Interface(h Handle) *InterfaceBody {
	return mustPayload[*InterfaceBody](t, h, KindInterface)
}

// Function returns the filled FunctionBody for h. Panics if h is not a
// filled Function handle.
func (t *Table) Function(h Handle) *FunctionBody {
	return mustPayload[*FunctionBody](t, h, KindFunction)
}

// Extension returns the filled ExtensionBody for h. Panics if h is not a
// filled Extension handle.
func (t *Table) Extension(h Handle) *ExtensionBody {
	return mustPayload[*ExtensionBody](t, h, KindExtension)
}

// Module returns the filled ModuleBody for h. Panics if h is not a filled
// Module handle.
func (t *Table) Module(h Handle) *ModuleBody {
	return mustPayload[*ModuleBody](t, h, KindModule)
}

// RecordImplementedInterface appends interfaceHandle to classHandle's
// implemented-interface set. This is one of the two mutations permitted on
// an already-filled signature (the other is [Table.AppendMethod]; spec.md
// §4.6 step 4), and is only ever called
// after the extension-completeness check passes.
func (t *Table) RecordImplementedInterface(classHandle, interfaceHandle Handle) {
	body := t.Class(classHandle)
	for _, existing := range body.Implements {
		if existing == interfaceHandle {
			return
		}
	}
	body.Implements = append(body.Implements, interfaceHandle)
}

// AppendMethod attaches methodHandle to classHandle as a regular method.
// This is the second (and last) mutation permitted on an already-filled
// signature, used when an extension body defines a method beyond what its
// target interface requires (spec.md §4.6 step 3: "an extra, non-required
// definition is allowed... attached to the class as a regular method").
func (t *Table) AppendMethod(classHandle, methodHandle Handle) {
	body := t.Class(classHandle)
	body.Methods = append(body.Methods, methodHandle)
	if e, ok := t.at(methodHandle); ok {
		body.methodIndex[e.name] = methodHandle
	}
}

// ModuleExport returns the handle exported under name by the module h, and
// whether it exists. Implements [scope.MemberResolver] so the scope package
// can traverse `a.b` without importing sig's lookup machinery directly.
func (t *Table) ModuleExport(h Handle, name string) (Handle, bool) {
	e, ok := t.at(h)
	if !ok || e.kind != KindModule || !e.filled {
		return 0, false
	}
	body := e.payload.(*ModuleBody)
	exported, ok := body.Exports[name]
	return exported, ok
}

// ClassMember returns the method or field handle named name on class h.
// Methods take precedence over fields when both exist (they cannot,
// per the class-level duplicate-name check, but ties are resolved this
// way regardless). For a field member the returned handle is the field's
// declared type, since fields have no handle of their own.
func (t *Table) ClassMember(h Handle, name string) (Handle, bool) {
	e, ok := t.at(h)
	if !ok || e.kind != KindClass || !e.filled {
		return 0, false
	}
	body := e.payload.(*ClassBody)
	if m, ok := body.methodIndex[name]; ok {
		return m, true
	}
	if f, ok := body.FieldByName(name); ok {
		return f.Type, true
	}
	return 0, false
}

// DeclareVisibility records h's visibility at Reserve time, before any
// Fill* call. The `pub` keyword is known directly from the syntax node
// that prompted the Reserve, and modgraph's import-accessibility check
// (spec.md §4.4 step 3) must run before Finish fills anything, so
// visibility cannot wait for the body.
//
// DeclareVisibility panics if h is not a Class, Interface, or Function
// handle; Extension and Module declarations have no visibility of their
// own.
func (t *Table) DeclareVisibility(h Handle, vis Visibility) {
	e, ok := t.at(h)
	if !ok {
		panic(fmt.Sprintf("sig: DeclareVisibility called on unknown handle %d", h))
	}
	switch e.kind {
	case KindClass, KindInterface, KindFunction:
	default:
		panic(fmt.Sprintf("sig: DeclareVisibility called on non-visible kind %s", e.kind))
	}
	e.visibility = vis
}

// Visibility returns the declared visibility and declaring module of a
// Class, Interface, or Function handle, and whether h was one of those
// kinds. Available as soon as [Table.DeclareVisibility] has run, well
// before the shell is filled, so import resolution (spec.md §4.4 step 3)
// can check accessibility at the start of the Resolve phase.
func (t *Table) Visibility(h Handle) (Visibility, location.SourceID, bool) {
	e, ok := t.at(h)
	if !ok {
		return 0, location.SourceID(0), false
	}
	switch e.kind {
	case KindClass, KindInterface, KindFunction:
		return e.visibility, e.module, true
	default:
		return 0, location.SourceID(0), false
	}
}

// Len returns the number of entries in the table, including shells.
func (t *Table) Len() int {
	return len(t.entries)
}
