// Package diag provides structured diagnostics for the tir resolver pipeline.
//
// This package sits at the foundation tier alongside [location], providing the
// single diagnostic infrastructure used across syntax parsing, module-graph
// construction, and the two-phase resolver (Resolve, Finish).
//
// Diagnostics are values, never thrown: every check appends an [Issue] to a
// [Collector] and marks the offending declaration error-tainted, but
// resolution of other declarations continues. This is what lets one
// compilation run surface every discoverable problem instead of stopping at
// the first one.
//
// # Design Principles
//
//   - Structured data, string-last presentation: location is stored as data
//     ([location.Span]), never embedded in message strings.
//   - Immutable results: [Result] stores issues in unexported fields and exposes
//     accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools can
//     match on, even when message text changes. The Code type uses an unexported
//     struct to enforce a closed set of valid codes (the set in spec.md §7).
//   - Deterministic ordering: [Collector.Result] sorts issues by source, position,
//     and code, matching the determinism invariant in spec.md §5/§8.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// The driver ([tir.Compile]) returns a program view and a [Result], with no
// separate error value:
//
//   - !result.OK(): semantic failure represented as structured issues
//   - result.OK(): success; the result holds no issues, since only the
//     Fatal and Error severities exist
//
// Internal invariant breaches (programmer errors) panic instead of being
// reported through the result.
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Fatal]: unrecoverable condition or collection-limit-reached sentinel
//   - [Error]: a diagnostic from spec.md §7's closed set
//
// The [Severity.IsFailure] method returns true for both, matching the
// !result.OK() check.
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_ALREADY_DEFINED, `name "P" already defined`).
//	    WithSpan(span).
//	    WithHint("rename one of the declarations").
//	    WithRelated(location.RelatedInfo{Span: previousSpan, Message: location.MsgPreviousDefinition}).
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during a compilation:
//
//	collector := diag.NewCollector(0) // unlimited
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle semantic failures
//	}
//
// [Collector] assumes a single writer, matching the resolver's single-threaded,
// synchronous execution model (spec.md §5), and provides O(1) severity
// queries via [Collector.OK], [Collector.HasErrors], and [Collector.HasFatal].
// Rendering issues to a terminal, JSON, or an editor protocol is explicitly
// out of scope for this package (spec.md §1, §6); it produces structured
// [Result] values and stops there.
//
// # Package Dependencies
//
// Per the Foundation Rule, diag imports only stdlib and [location]. It must not
// import higher-level packages like sig, scope, modgraph, resolve, or syntax.
package diag
