// Package source implements the source registry described in spec.md §4.1.
//
// A Registry owns the immutable text of every file fed into a compilation and
// assigns each one a stable [location.SourceID]. Registration order is
// preserved and is what the resolver uses as its module iteration order
// (spec.md §5: "iteration order over modules is the registration order").
//
// Registering the same path twice with byte-identical text is idempotent;
// registering it with different text is rejected with a [ConflictError] that
// the driver turns into a diag.E_DUPLICATE_SOURCE issue. Once registered, a
// source's text never changes for the lifetime of the Registry, so the
// string views handed out are safe to retain inside diagnostics.
//
// Per spec.md §5's single-writer-per-compilation model, Registry is not
// internally synchronized; callers serialize access to the one Registry a
// compilation owns, the same way [sig.Table] and [scope.Scope] do.
package source
