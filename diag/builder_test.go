package diag

import (
	"testing"

	"github.com/tim-lang/tir/location"
)

func TestNewIssue(t *testing.T) {
	issue := NewIssue(Error, E_SYNTAX, "test message").Build()

	if issue.Severity() != Error {
		t.Errorf("Severity() = %v; want %v", issue.Severity(), Error)
	}
	if issue.Code() != E_SYNTAX {
		t.Errorf("Code() = %v; want %v", issue.Code(), E_SYNTAX)
	}
	if issue.Message() != "test message" {
		t.Errorf("Message() = %q; want %q", issue.Message(), "test message")
	}
	if !issue.IsValid() {
		t.Error("NewIssue should produce valid issue")
	}
}

func TestIssueBuilder_WithSpan(t *testing.T) {
	source := location.SourceID(1)
	span := location.Point(source, 10)

	issue := NewIssue(Error, E_SYNTAX, "test").
		WithSpan(span).
		Build()

	if issue.Span() != span {
		t.Errorf("Span() = %v; want %v", issue.Span(), span)
	}
	if !issue.HasSpan() {
		t.Error("HasSpan() = false; want true")
	}
}

func TestIssueBuilder_WithHint(t *testing.T) {
	issue := NewIssue(Error, E_ALREADY_DEFINED, "test").
		WithHint("rename one of the declarations").
		Build()

	if issue.Hint() != "rename one of the declarations" {
		t.Errorf("Hint() = %q; want %q", issue.Hint(), "rename one of the declarations")
	}
}

func TestIssueBuilder_WithRelated(t *testing.T) {
	source := location.SourceID(1)
	related1 := location.RelatedInfo{
		Span:    location.Point(source, 5),
		Message: "previous definition here",
	}
	related2 := location.RelatedInfo{
		Span:    location.Point(source, 10),
		Message: "also defined here",
	}

	issue := NewIssue(Error, E_ALREADY_DEFINED, "test").
		WithRelated(related1).
		WithRelated(related2).
		Build()

	related := issue.Related()
	if len(related) != 2 {
		t.Fatalf("len(Related()) = %d; want 2", len(related))
	}
	if related[0].Message != "previous definition here" {
		t.Errorf("Related()[0].Message = %q; want %q", related[0].Message, "previous definition here")
	}
	if related[1].Message != "also defined here" {
		t.Errorf("Related()[1].Message = %q; want %q", related[1].Message, "also defined here")
	}
}

func TestIssueBuilder_WithRelated_Variadic(t *testing.T) {
	source := location.SourceID(1)
	related := []location.RelatedInfo{
		{Span: location.Point(source, 5), Message: "first"},
		{Span: location.Point(source, 10), Message: "second"},
	}

	issue := NewIssue(Error, E_ALREADY_DEFINED, "test").
		WithRelated(related...).
		Build()

	got := issue.Related()
	if len(got) != 2 {
		t.Fatalf("len(Related()) = %d; want 2", len(got))
	}
}

func TestIssueBuilder_FluentChaining(t *testing.T) {
	source := location.SourceID(1)
	span := location.Point(source, 10)
	related := location.RelatedInfo{
		Span:    location.Point(source, 5),
		Message: "previous definition",
	}

	issue := NewIssue(Error, E_ALREADY_DEFINED, `name "P" already defined`).
		WithSpan(span).
		WithHint("rename one of the declarations").
		WithRelated(related).
		Build()

	if !issue.HasSpan() {
		t.Error("issue should have span")
	}
	if issue.Hint() == "" {
		t.Error("issue should have hint")
	}
	if len(issue.Related()) != 1 {
		t.Error("issue should have related info")
	}
	if !issue.IsValid() {
		t.Error("issue should be valid")
	}
}

func TestIssueBuilder_BuildImmutability(t *testing.T) {
	source := location.SourceID(1)

	builder := NewIssue(Error, E_ALREADY_DEFINED, "test").
		WithRelated(location.RelatedInfo{
			Span:    location.Point(source, 5),
			Message: "original",
		})

	issue1 := builder.Build()

	builder.WithRelated(location.RelatedInfo{
		Span:    location.Point(source, 10),
		Message: "added",
	})

	issue2 := builder.Build()

	if len(issue1.Related()) != 1 {
		t.Errorf("issue1 Related() len = %d; want 1 (builder modifications affected built issue)",
			len(issue1.Related()))
	}

	if len(issue2.Related()) != 2 {
		t.Errorf("issue2 Related() len = %d; want 2", len(issue2.Related()))
	}
}

func TestIssueBuilder_BuildDeepCopy(t *testing.T) {
	source := location.SourceID(1)

	builder := NewIssue(Error, E_ALREADY_DEFINED, "test").
		WithRelated(location.RelatedInfo{
			Span:    location.Point(source, 5),
			Message: "related",
		})

	issue := builder.Build()

	related := issue.Related()
	related[0].Message = "modified"

	if issue.Related()[0].Message == "modified" {
		t.Error("modifying Related() return value affected issue")
	}
}

func TestIssueBuilder_EmptySlices(t *testing.T) {
	issue := NewIssue(Error, E_SYNTAX, "test").Build()

	if issue.Related() != nil {
		t.Error("Related() should be nil when no related info added")
	}
}

func TestNewIssue_AllSeverities(t *testing.T) {
	severities := []Severity{Fatal, Error}

	for _, sev := range severities {
		t.Run(sev.String(), func(t *testing.T) {
			issue := NewIssue(sev, E_SYNTAX, "test").Build()
			if issue.Severity() != sev {
				t.Errorf("Severity() = %v; want %v", issue.Severity(), sev)
			}
			if !issue.IsValid() {
				t.Error("issue should be valid")
			}
		})
	}
}

// TestNewIssue_PanicOnInvalidSeverity verifies that NewIssue panics when
// given an out-of-range severity value, enforcing the builder's guarantee
// that it produces only valid issues.
func TestNewIssue_PanicOnInvalidSeverity(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with invalid severity should panic")
		}
	}()

	NewIssue(Severity(255), E_SYNTAX, "test")
}

func TestNewIssue_PanicOnZeroCode(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with zero code should panic")
		}
	}()

	NewIssue(Error, Code{}, "test")
}

func TestNewIssue_PanicOnEmptyMessage(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with empty message should panic")
		}
	}()

	NewIssue(Error, E_SYNTAX, "")
}

// TestNewIssue_PanicOnSeverityJustAboveError verifies the boundary case
// where severity is just above the valid range (Error + 1 = 2).
func TestNewIssue_PanicOnSeverityJustAboveError(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with severity > Error should panic")
		}
	}()

	NewIssue(Severity(2), E_SYNTAX, "test")
}
