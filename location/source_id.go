package location

import "fmt"

// SourceID is a dense, opaque identifier for a registered source file
// (spec.md §3, §4.1). Like [sig.Handle], identity reduces to integer
// equality: a [source.Registry] hands out SourceID values in registration
// order starting at 1, and the zero SourceID never refers to a registered
// file.
type SourceID uint32

// IsZero reports whether id is the zero SourceID.
func (id SourceID) IsZero() bool {
	return id == 0
}

// String returns a debug-friendly representation. SourceID carries no path
// information by design; resolve a path through the owning registry.
func (id SourceID) String() string {
	if id.IsZero() {
		return "<no source>"
	}
	return fmt.Sprintf("source#%d", uint32(id))
}
