package source

import (
	"fmt"

	"github.com/tim-lang/tir/location"
)

// entry holds one registered source's text.
type entry struct {
	path string
	text string
}

// ConflictError indicates a path was registered twice with different text.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("source: path %q already registered with different content", e.Path)
}

// Registry owns source text for one compilation and assigns each (path,
// text) pair a stable [location.SourceID], handed out in registration order
// starting at 1, mirroring [sig.Table]'s reserve-by-counter identity.
//
// Registry is append-only: once registered, a source's text and ID never
// change. It is not safe for concurrent registration; see package doc.
type Registry struct {
	byPath  map[string]location.SourceID
	entries map[location.SourceID]entry
	order   []location.SourceID
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byPath:  make(map[string]location.SourceID),
		entries: make(map[location.SourceID]entry),
	}
}

// Register stores text under path, returning the SourceID assigned to it.
//
// Re-registering the same path with byte-identical text returns the same
// SourceID and succeeds. Re-registering with different text returns a
// [*ConflictError] (spec.md §4.1: duplicate_source).
func (r *Registry) Register(path, text string) (location.SourceID, error) {
	if id, ok := r.byPath[path]; ok {
		if r.entries[id].text == text {
			return id, nil
		}
		return location.SourceID(0), &ConflictError{Path: path}
	}

	id := location.SourceID(len(r.order) + 1)
	r.byPath[path] = id
	r.entries[id] = entry{path: path, text: text}
	r.order = append(r.order, id)
	return id, nil
}

// Text returns the registered text for id.
func (r *Registry) Text(id location.SourceID) (string, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.text, true
}

// Path returns the original registration path for id.
func (r *Registry) Path(id location.SourceID) (string, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.path, true
}

// Has reports whether id is registered.
func (r *Registry) Has(id location.SourceID) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Ordered returns every registered SourceID in registration order. The
// resolver iterates modules in this order to keep compilation deterministic
// (spec.md §5).
func (r *Registry) Ordered() []location.SourceID {
	result := make([]location.SourceID, len(r.order))
	copy(result, r.order)
	return result
}
