package diag

import "github.com/tim-lang/tir/location"

// Issue is one diagnostic record as spec.md §4.7 defines it: a kind (Code), a
// primary labeled span, any number of secondary labeled spans (Related), and
// an optional help string (Hint). Issue carries no instance-path or
// provenance-label fields — this package serves a single source-text
// resolver pipeline, not a general instance-validation tool.
//
// Issue is immutable after construction; all fields are unexported. Construct
// Issues using [NewIssue] and [IssueBuilder]. Direct struct literal
// construction bypasses validity checks and will cause panics when the issue
// is collected via [Collector.Collect].
type Issue struct {
	span     location.Span
	severity Severity
	code     Code
	message  string
	hint     string
	related  []location.RelatedInfo
}

// Severity returns the issue's severity level.
func (i Issue) Severity() Severity {
	return i.severity
}

// Code returns the issue's stable programmatic identifier.
func (i Issue) Code() Code {
	return i.code
}

// Message returns the human-readable description. Messages never embed
// location text; use [Issue.Span] and [Issue.Related] for that.
func (i Issue) Message() string {
	return i.message
}

// Span returns the primary source location. Use [Issue.HasSpan] to check
// presence, since not every diagnostic (e.g. E_LIMIT_REACHED) has one.
func (i Issue) Span() location.Span {
	return i.span
}

// Hint returns the optional resolution suggestion.
func (i Issue) Hint() string {
	return i.hint
}

// HasSpan reports whether the issue carries a non-zero primary span.
func (i Issue) HasSpan() bool {
	return !i.span.IsZero()
}

// IsZero reports whether the issue is a zero value.
func (i Issue) IsZero() bool {
	return i.code.IsZero() && i.message == "" && i.span.IsZero()
}

// IsValid reports whether the issue has the minimum required fields set: a
// non-zero code, a non-empty message, and a defined severity. Production
// code using [IssueBuilder] never needs to call this; the builder guarantees
// validity. It exists to catch diag-internal mistakes where an Issue was
// constructed directly rather than through the builder.
func (i Issue) IsValid() bool {
	return !i.code.IsZero() &&
		i.message != "" &&
		i.severity <= Error
}

// Related returns a defensive copy of the secondary labeled spans attached to
// this issue (spec.md §4.7's "related info", e.g. "previous definition
// here"). Returns nil when there are none.
//
// Ordering contract: when the related spans represent a sequence (e.g. an
// import cycle), index 0 is the first step and index N-1 is the last. For
// unordered collections, order is arbitrary but stable.
func (i Issue) Related() []location.RelatedInfo {
	if len(i.related) == 0 {
		return nil
	}
	cp := make([]location.RelatedInfo, len(i.related))
	copy(cp, i.related)
	return cp
}
