package scope

import (
	"fmt"

	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/sig"
)

// Kind tags what a Scope corresponds to in the source.
type Kind uint8

const (
	Root Kind = iota
	Module
	ClassBody
	FunctionBody
	Block
)

// String returns a human-readable label for k.
func (k Kind) String() string {
	switch k {
	case Root:
		return "root"
	case Module:
		return "module"
	case ClassBody:
		return "class-body"
	case FunctionBody:
		return "function-body"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// EntryKind tags which of the ScopeEntry variants from spec.md §3 an Entry
// holds.
type EntryKind uint8

const (
	TypeEntry EntryKind = iota
	ValueEntry
	ReExportEntry
)

// Entry is a name binding inside a Scope's local map. Exactly one of the
// fields below is meaningful, selected by Kind:
//
//   - TypeEntry: Handle is the bound type/entity handle.
//   - ValueEntry: ValueType is the declared type of a local value binding;
//     Mutable reports whether it may be reassigned.
//   - ReExportEntry: Handle is the handle the alias ultimately refers to.
type Entry struct {
	Kind      EntryKind
	Handle    sig.Handle
	ValueType sig.Handle
	Mutable   bool
	Span      location.Span
}

// AlreadyDefinedError reports that name was already bound in the scope's
// local map; it carries both spans so callers can build a two-span
// already_defined diagnostic (spec.md §4.3).
type AlreadyDefinedError struct {
	Name        string
	FirstSpan   location.Span
	SecondSpan  location.Span
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("scope: %q already defined", e.Name)
}

// Scope is one node in the scope tree: an optional parent, a local name
// map, and a kind tag.
type Scope struct {
	parent *Scope
	kind   Kind
	locals map[string]Entry
}

// New creates a Scope of the given kind with the given parent. parent is nil
// for the root scope.
func New(kind Kind, parent *Scope) *Scope {
	return &Scope{
		kind:   kind,
		parent: parent,
		locals: make(map[string]Entry),
	}
}

// Kind returns the scope's kind tag.
func (s *Scope) Kind() Kind {
	return s.kind
}

// Parent returns the enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Define binds name to entry in s's local map. Returns an
// [*AlreadyDefinedError] if name is already bound locally; the duplicate
// check is local-map-only, shadowing an outer scope's binding is not an
// error (spec.md §4.3).
func (s *Scope) Define(name string, entry Entry) error {
	if existing, ok := s.locals[name]; ok {
		return &AlreadyDefinedError{Name: name, FirstSpan: existing.Span, SecondSpan: entry.Span}
	}
	s.locals[name] = entry
	return nil
}

// Lookup resolves name against s's local map, then its parent chain,
// returning the first hit.
func (s *Scope) Lookup(name string) (Entry, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.locals[name]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// LocalLookup resolves name against only s's own local map, ignoring the
// parent chain.
func (s *Scope) LocalLookup(name string) (Entry, bool) {
	e, ok := s.locals[name]
	return e, ok
}

// MemberResolver lets LookupQualified traverse into module exports or class
// members without Scope needing to own or import the signature table's
// concrete lookup machinery.
type MemberResolver interface {
	// ModuleExport looks up name among moduleHandle's public exports.
	ModuleExport(moduleHandle sig.Handle, name string) (sig.Handle, bool)
	// ClassMember looks up name among classHandle's fields and methods.
	ClassMember(classHandle sig.Handle, name string) (sig.Handle, bool)
	// Kind reports the Kind of a resolved handle, needed to decide whether
	// to continue traversing as a module or a class.
	Kind(h sig.Handle) sig.Kind
}

// LookupQualified resolves a dotted path like `a.b.c`: the head segment is
// resolved via Lookup, then each subsequent segment is resolved via members
// against whatever the previous segment resolved to (a module's exports or
// a class's members).
//
// On success returns the final Entry. On failure returns the index of the
// offending segment (spec.md §4.3: path_not_found "at the offending
// segment").
func (s *Scope) LookupQualified(path []string, members MemberResolver) (Entry, int, bool) {
	if len(path) == 0 {
		return Entry{}, 0, false
	}

	head, ok := s.Lookup(path[0])
	if !ok {
		return Entry{}, 0, false
	}
	if len(path) == 1 {
		return head, 0, true
	}

	current := head
	for i := 1; i < len(path); i++ {
		var (
			next sig.Handle
			found bool
		)
		switch members.Kind(current.Handle) {
		case sig.KindModule:
			next, found = members.ModuleExport(current.Handle, path[i])
		case sig.KindClass:
			next, found = members.ClassMember(current.Handle, path[i])
		default:
			found = false
		}
		if !found {
			return Entry{}, i, false
		}
		current = Entry{Kind: TypeEntry, Handle: next}
	}
	return current, 0, true
}
