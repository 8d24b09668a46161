package diag

import (
	"fmt"

	"github.com/tim-lang/tir/location"
)

// IssueBuilder provides fluent construction of [Issue] values, the only
// valid construction path in production code. Direct struct literal
// construction bypasses validity checks and will cause panics when the
// issue is collected.
//
// Example:
//
//	issue := diag.NewIssue(diag.Error, diag.E_ALREADY_DEFINED, `name "P" already defined`).
//	    WithSpan(span).
//	    WithHint("rename one of the declarations").
//	    WithRelated(location.RelatedInfo{Span: prevSpan, Message: location.MsgPreviousDefinition}).
//	    Build()
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with its required fields: severity,
// code, and message. Additional fields are set with the With* methods
// before calling [IssueBuilder.Build].
//
// NewIssue panics if any required field is invalid, catching programmer
// errors at construction time rather than deferring failure to
// [Collector.Collect]:
//   - severity must be Fatal or Error
//   - code must not be zero (use package-defined codes like E_SYNTAX)
//   - message must not be empty
func NewIssue(severity Severity, code Code, message string) *IssueBuilder {
	if severity > Error {
		panic(fmt.Sprintf("diag.NewIssue: invalid severity %d (must be 0-%d)", severity, Error))
	}
	if code.IsZero() {
		panic("diag.NewIssue: zero code (use package-defined codes like E_SYNTAX)")
	}
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{
		issue: Issue{
			severity: severity,
			code:     code,
			message:  message,
		},
	}
}

// WithSpan sets the primary source span.
func (b *IssueBuilder) WithSpan(span location.Span) *IssueBuilder {
	b.issue.span = span
	return b
}

// WithHint sets the optional resolution suggestion.
func (b *IssueBuilder) WithHint(hint string) *IssueBuilder {
	b.issue.hint = hint
	return b
}

// WithRelated appends secondary labeled spans — spec.md §4.7's "related
// info", e.g. "previous definition here" for a duplicate name, or the edges
// of an import cycle.
//
// When adding an ordered sequence (e.g. an import cycle), provide entries in
// chain order: the first argument is the first step, the last is the final
// step. Multiple calls append to the existing related list.
func (b *IssueBuilder) WithRelated(related ...location.RelatedInfo) *IssueBuilder {
	b.issue.related = append(b.issue.related, related...)
	return b
}

// Build returns the constructed issue. Build deep-copies the related slice
// into a fresh, tight-capacity slice so builder reuse cannot mutate a
// previously built issue.
//
// The returned issue is guaranteed valid (IsValid() returns true) because
// NewIssue requires severity, code, and message.
func (b *IssueBuilder) Build() Issue {
	result := b.issue
	if len(b.issue.related) > 0 {
		result.related = make([]location.RelatedInfo, len(b.issue.related))
		copy(result.related, b.issue.related)
	}
	return result
}
