package diag

import (
	"testing"

	"github.com/tim-lang/tir/location"
)

func TestIssue_Accessors(t *testing.T) {
	source := location.SourceID(1)
	span := location.Point(source, 10)
	related := []location.RelatedInfo{
		{Span: location.Point(source, 5), Message: "previous definition here"},
	}

	issue := Issue{
		span:     span,
		severity: Error,
		code:     E_ALREADY_DEFINED,
		message:  `name "P" already defined`,
		hint:     "rename one of the declarations",
		related:  related,
	}

	if got := issue.Severity(); got != Error {
		t.Errorf("Severity() = %v; want %v", got, Error)
	}
	if got := issue.Code(); got != E_ALREADY_DEFINED {
		t.Errorf("Code() = %v; want %v", got, E_ALREADY_DEFINED)
	}
	if got := issue.Message(); got != `name "P" already defined` {
		t.Errorf("Message() = %q; want %q", got, `name "P" already defined`)
	}
	if got := issue.Span(); got != span {
		t.Errorf("Span() = %v; want %v", got, span)
	}
	if got := issue.Hint(); got != "rename one of the declarations" {
		t.Errorf("Hint() = %q; want %q", got, "rename one of the declarations")
	}
}

func TestIssue_HasSpan(t *testing.T) {
	source := location.SourceID(1)

	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{
			name:  "zero issue",
			issue: Issue{},
			want:  false,
		},
		{
			name: "issue with span",
			issue: Issue{
				span:     location.Point(source, 1),
				severity: Error,
				code:     E_SYNTAX,
				message:  "test",
			},
			want: true,
		},
		{
			name: "issue without span (e.g. a limit-reached sentinel)",
			issue: Issue{
				severity: Fatal,
				code:     E_LIMIT_REACHED,
				message:  "test",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.HasSpan(); got != tt.want {
				t.Errorf("HasSpan() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_IsZero(t *testing.T) {
	source := location.SourceID(1)

	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{
			name:  "zero value",
			issue: Issue{},
			want:  true,
		},
		{
			name: "only code set",
			issue: Issue{
				code: E_SYNTAX,
			},
			want: false,
		},
		{
			name: "only message set",
			issue: Issue{
				message: "test",
			},
			want: false,
		},
		{
			name: "only span set",
			issue: Issue{
				span: location.Point(source, 1),
			},
			want: false,
		},
		{
			name: "full issue",
			issue: Issue{
				span:     location.Point(source, 1),
				severity: Error,
				code:     E_SYNTAX,
				message:  "test",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{
			name:  "zero value",
			issue: Issue{},
			want:  false,
		},
		{
			name: "only code set",
			issue: Issue{
				code: E_SYNTAX,
			},
			want: false,
		},
		{
			name: "only message set",
			issue: Issue{
				message: "test",
			},
			want: false,
		},
		{
			name: "code and message set",
			issue: Issue{
				code:    E_SYNTAX,
				message: "test",
			},
			want: true,
		},
		{
			name: "full issue",
			issue: Issue{
				severity: Error,
				code:     E_SYNTAX,
				message:  "test",
			},
			want: true,
		},
		{
			name: "invalid severity (255)",
			issue: Issue{
				severity: Severity(255),
				code:     E_SYNTAX,
				message:  "test",
			},
			want: false,
		},
		{
			name: "invalid severity (2)",
			issue: Issue{
				severity: Severity(2),
				code:     E_SYNTAX,
				message:  "test",
			},
			want: false,
		},
		{
			name: "highest valid severity (Error)",
			issue: Issue{
				severity: Error,
				code:     E_SYNTAX,
				message:  "test",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_Related_DefensiveCopy(t *testing.T) {
	source := location.SourceID(1)
	original := []location.RelatedInfo{
		{Span: location.Point(source, 5), Message: "original"},
	}

	issue := Issue{
		severity: Error,
		code:     E_SYNTAX,
		message:  "test",
		related:  original,
	}

	copy1 := issue.Related()
	copy1[0].Message = "modified"

	copy2 := issue.Related()
	if copy2[0].Message != "original" {
		t.Errorf("Related() returned reference, not copy; got %q, want %q",
			copy2[0].Message, "original")
	}

	if original[0].Message != "original" {
		t.Error("original slice was modified")
	}
}

func TestIssue_Related_NilForEmpty(t *testing.T) {
	issue := Issue{
		severity: Error,
		code:     E_SYNTAX,
		message:  "test",
	}

	if got := issue.Related(); got != nil {
		t.Errorf("Related() = %v; want nil for empty", got)
	}
}
