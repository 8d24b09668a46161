// Package location provides the two location primitives the resolver and its
// diagnostics are built on (spec.md §3): [SourceID], the stable identifier a
// [source.Registry] assigns to a registered file, and [Span], the half-open
// byte range within one source that every diagnostic cites.
//
// Line/column conversion, path canonicalization, and anything else aimed at
// rendering a location for a human or an editor belongs to the presentation
// layer, which spec.md §1 and §6 place outside the core. This package only
// carries what the resolver itself consumes.
//
// This package depends only on the standard library and sits at the
// foundation tier: every other package may import it, and it imports none of
// them.
package location
