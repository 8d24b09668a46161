package diag

import (
	"fmt"
	"iter"
	"strings"
)

// Result is an immutable, sorted snapshot of diagnostic issues produced by
// [Collector.Result], with precomputed counts for O(1) severity queries.
// There is no public constructor accepting arbitrary issues, so every issue
// reachable from a Result is guaranteed valid.
type Result struct {
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int

	fatalCount int
	errorCount int
}

// newResult creates a Result with precomputed counts. The issues slice is
// owned by the Result and must not be modified after this call; callers
// must pass a fresh slice.
func newResult(issues []Issue, limit int, limitReached bool, droppedCount int) Result {
	var fatalCount, errorCount int
	for _, issue := range issues {
		switch issue.Severity() {
		case Fatal:
			fatalCount++
		case Error:
			errorCount++
		}
	}

	return Result{
		issues:       issues,
		limit:        limit,
		limitReached: limitReached,
		droppedCount: droppedCount,
		fatalCount:   fatalCount,
		errorCount:   errorCount,
	}
}

// OK returns a Result representing success (no issues). This is the
// canonical way to construct a success Result in return statements.
func OK() Result {
	return newResult(nil, 0, false, 0)
}

// OK reports whether no Fatal or Error issues are present.
func (r Result) OK() bool {
	return r.fatalCount == 0 && r.errorCount == 0
}

// HasFatal reports whether any Fatal issue is present.
func (r Result) HasFatal() bool {
	return r.fatalCount > 0
}

// HasErrors reports whether any Fatal or Error issue is present.
func (r Result) HasErrors() bool {
	return r.fatalCount > 0 || r.errorCount > 0
}

// Len returns the number of issues.
func (r Result) Len() int {
	return len(r.issues)
}

// LimitReached reports whether the collection limit was reached.
func (r Result) LimitReached() bool {
	return r.limitReached
}

// DroppedCount returns how many issues were dropped after hitting the limit.
func (r Result) DroppedCount() int {
	return r.droppedCount
}

// Limit returns the configured issue limit (0 means unlimited). Use
// [Result.LimitReached] to check whether the limit was actually reached.
func (r Result) Limit() int {
	return r.limit
}

// Issues returns an iterator over all issues without copying. The yielded
// issues must not be mutated; use [Result.IssuesSlice] for a mutable slice.
func (r Result) Issues() iter.Seq[Issue] {
	return func(yield func(Issue) bool) {
		for _, issue := range r.issues {
			if !yield(issue) {
				return
			}
		}
	}
}

// IssuesSlice returns a copy of all issues.
func (r Result) IssuesSlice() []Issue {
	if len(r.issues) == 0 {
		return nil
	}
	result := make([]Issue, len(r.issues))
	copy(result, r.issues)
	return result
}

// Errors returns an iterator over Fatal and Error issues.
func (r Result) Errors() iter.Seq[Issue] {
	return func(yield func(Issue) bool) {
		for _, issue := range r.issues {
			if issue.Severity().IsFailure() {
				if !yield(issue) {
					return
				}
			}
		}
	}
}

// ErrorsSlice returns only Fatal and Error issues.
func (r Result) ErrorsSlice() []Issue {
	if r.fatalCount+r.errorCount == 0 {
		return nil
	}
	result := make([]Issue, 0, r.fatalCount+r.errorCount)
	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			result = append(result, issue)
		}
	}
	return result
}

// String returns a minimal multi-line representation for quick debugging.
// It returns "OK" when OK() is true. Presentation beyond this — terminal
// rendering, JSON, editor protocols — is out of scope for this package
// (spec.md §1, §6).
func (r Result) String() string {
	if r.OK() {
		return "OK"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s)", r.fatalCount+r.errorCount)
	if r.limitReached {
		fmt.Fprintf(&sb, " [limit reached, %d dropped]", r.droppedCount)
	}
	sb.WriteString("\n")

	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			fmt.Fprintf(&sb, "  %s: %s\n", issue.Code(), issue.Message())
		}
	}

	return sb.String()
}
