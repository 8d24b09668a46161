package diag

import (
	"fmt"
	"slices"

	"github.com/tim-lang/tir/location"
)

// Collector accumulates issues over one compilation run. Spec.md §5 is
// explicit: the resolver is single-threaded and synchronous, with exactly
// one writer, so Collector needs no locking — it is a plain append buffer
// with precomputed severity counts for O(1) queries.
//
// Limit behavior: once the issue limit is reached, additional issues are
// dropped but [Collector.OK] is unaffected. Use [Collector.LimitReached] to
// detect a truncated result.
//
// Create a Collector with [NewCollector], add issues with [Collector.Collect]
// or [Collector.CollectAll], then call [Collector.Result] for an immutable
// snapshot.
type Collector struct {
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int

	fatalCount int
	errorCount int

	cachedResult *Result
}

// NoLimit is the sentinel value indicating unlimited issue collection.
const NoLimit = 0

// NewCollector creates a collector with an optional issue limit. A limit of
// 0 means no limit (use [NoLimit] for clarity). Negative values are
// normalized to 0.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{limit: limit}
}

// Collect adds an issue to the collector.
//
// Collect panics if the issue is a zero value or invalid. Use [NewIssue] and
// [IssueBuilder] to construct valid issues; this panic catches issues built
// via direct struct literals rather than the builder.
func (c *Collector) Collect(issue Issue) {
	c.validateIssue(issue)
	c.collectOne(issue)
}

// CollectAll adds multiple issues, e.g. the issues returned by syntax.Parse
// for one source file. Panics if any issue is invalid (see [Collect]).
func (c *Collector) CollectAll(issues []Issue) {
	for _, issue := range issues {
		c.validateIssue(issue)
	}
	for _, issue := range issues {
		c.collectOne(issue)
	}
}

func (c *Collector) validateIssue(issue Issue) {
	if issue.IsZero() {
		panic("diag.Collector.Collect: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.Collector.Collect: invalid Issue (code=%s, message=%q)",
			issue.Code().String(), issue.Message()))
	}
}

func (c *Collector) collectOne(issue Issue) {
	c.cachedResult = nil

	if c.limit > 0 && len(c.issues) >= c.limit {
		c.limitReached = true
		c.droppedCount++
		return
	}

	c.issues = append(c.issues, issue)

	switch issue.Severity() {
	case Fatal:
		c.fatalCount++
	case Error:
		c.errorCount++
	}
}

// Result produces a sorted, immutable snapshot independent of the Collector;
// subsequent Collect calls do not affect a Result already returned. Results
// are cached until the next Collect/CollectAll call.
//
// Issues are sorted by span and code for deterministic output, matching the
// determinism invariant in spec.md §5/§8.
func (c *Collector) Result() Result {
	if c.cachedResult != nil {
		return *c.cachedResult
	}

	sorted := make([]Issue, len(c.issues))
	copy(sorted, c.issues)
	slices.SortFunc(sorted, compareIssues)

	result := newResult(sorted, c.limit, c.limitReached, c.droppedCount)
	c.cachedResult = &result
	return result
}

// compareIssues orders issues by primary span, then code, severity, message,
// hint, and finally related spans — a total order, so distinct issues never
// compare equal. Every issue in this package is span-backed (there is no
// instance-path concept in a source-text resolver), so span geometry is
// always the first discriminant.
func compareIssues(a, b Issue) int {
	if cmp := location.Compare(a.span, b.span); cmp != 0 {
		return cmp
	}

	if a.code.value != b.code.value {
		if a.code.value < b.code.value {
			return -1
		}
		return 1
	}

	if a.severity != b.severity {
		if a.severity < b.severity {
			return -1
		}
		return 1
	}

	if a.message != b.message {
		if a.message < b.message {
			return -1
		}
		return 1
	}

	if a.hint != b.hint {
		if a.hint < b.hint {
			return -1
		}
		return 1
	}

	return compareRelated(a.related, b.related)
}

// compareRelated compares two RelatedInfo slices lexicographically.
func compareRelated(a, b []location.RelatedInfo) int {
	minLen := min(len(a), len(b))
	for i := range minLen {
		if cmp := location.Compare(a[i].Span, b[i].Span); cmp != 0 {
			return cmp
		}
		if a[i].Message != b[i].Message {
			if a[i].Message < b[i].Message {
				return -1
			}
			return 1
		}
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}

// HasFatal reports whether any Fatal issue has been collected.
func (c *Collector) HasFatal() bool {
	return c.fatalCount > 0
}

// HasErrors reports whether any Fatal or Error issue has been collected.
func (c *Collector) HasErrors() bool {
	return c.fatalCount > 0 || c.errorCount > 0
}

// OK reports whether no Fatal or Error issues have been collected.
func (c *Collector) OK() bool {
	return c.fatalCount == 0 && c.errorCount == 0
}

// Len returns the number of collected issues.
func (c *Collector) Len() int {
	return len(c.issues)
}

// LimitReached reports whether the limit was reached.
func (c *Collector) LimitReached() bool {
	return c.limitReached
}

// DroppedCount returns how many issues were dropped after hitting the limit.
func (c *Collector) DroppedCount() int {
	return c.droppedCount
}
