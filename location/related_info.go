package location

// Common RelatedInfo message constants, kept so duplicate-definition and
// accessibility diagnostics phrase their secondary label consistently
// (spec.md §7's already_defined and accessibility_violation both cite a
// declaration site this way).
const (
	MsgPreviousDefinition = "previous definition here"
	MsgDeclaredHere       = "declared here"
)

// RelatedInfo pairs a secondary Span with a message, the unit a [diag.Issue]
// uses for "previous definition here" style cross-references and for
// collection labels like the missing-member list on an incomplete extension
// (spec.md §4.7).
type RelatedInfo struct {
	Span    Span
	Message string
}

// String returns a human-readable representation.
func (r RelatedInfo) String() string {
	if r.Span.IsZero() {
		return r.Message
	}
	if r.Message == "" {
		return r.Span.String()
	}
	return r.Span.String() + ": " + r.Message
}
