package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySyntax is for parse/lexer errors (consumed from the external
	// parser per spec.md §6, re-surfaced unchanged).
	CategorySyntax

	// CategoryResolve is for Resolve/Finish phase errors: name binding, type
	// resolution, accessibility, interface/extension checking.
	CategoryResolve

	// CategorySource is for source-registry errors (duplicate registration).
	CategorySource
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySyntax:
		return "syntax"
	case CategoryResolve:
		return "resolve"
	case CategorySource:
		return "source"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_ALREADY_DEFINED").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug
	// indicator), e.g. a would-be double-fill of a signature table handle.
	// Genuine occurrences panic (spec.md §4.2/§7) rather than reaching here;
	// this code exists for the rare case a caller wants to represent such a
	// failure as a diagnostic value instead of letting the panic propagate.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Syntax codes (spec.md §6, §7 — produced by the external parser contract).
var (
	// E_SYNTAX indicates a syntax error in a source file. A file with any
	// syntax error contributes no declarations to its module.
	E_SYNTAX = code("E_SYNTAX", CategorySyntax)
)

// Source registry codes (spec.md §4.1, §7).
var (
	// E_DUPLICATE_SOURCE indicates the same path was registered twice with
	// different contents.
	E_DUPLICATE_SOURCE = code("E_DUPLICATE_SOURCE", CategorySource)
)

// Resolver codes (spec.md §7 — the closed set of Resolve/Finish diagnostics).
var (
	// E_ALREADY_DEFINED indicates two declarations bind the same name in the
	// same scope. Carries two spans: the original and the duplicate.
	E_ALREADY_DEFINED = code("E_ALREADY_DEFINED", CategoryResolve)

	// E_TYPE_NOT_FOUND indicates a type expression could not be resolved to
	// any handle. The hint lists names ending with the missing identifier.
	E_TYPE_NOT_FOUND = code("E_TYPE_NOT_FOUND", CategoryResolve)

	// E_PATH_NOT_FOUND indicates a qualified lookup ("a.b.c") failed at a
	// specific segment.
	E_PATH_NOT_FOUND = code("E_PATH_NOT_FOUND", CategoryResolve)

	// E_ACCESSIBILITY_VIOLATION indicates cross-module use of a private item.
	// Carries referenced sub-diagnostics pointing to the use site and the
	// definition site, each with its own SourceFile.
	E_ACCESSIBILITY_VIOLATION = code("E_ACCESSIBILITY_VIOLATION", CategoryResolve)

	// E_IMPORT_CONFLICT indicates a wildcard import shadows an existing
	// local name.
	E_IMPORT_CONFLICT = code("E_IMPORT_CONFLICT", CategoryResolve)

	// E_EXPECTED_INTERFACE indicates a structural slot required an interface
	// but found a different entity kind.
	E_EXPECTED_INTERFACE = code("E_EXPECTED_INTERFACE", CategoryResolve)

	// E_EXPECTED_CLASS indicates a structural slot required a class but
	// found a different entity kind.
	E_EXPECTED_CLASS = code("E_EXPECTED_CLASS", CategoryResolve)

	// E_DUPLICATE_EXTENSION indicates a class already implements the target
	// interface via another extension, possibly in another module.
	E_DUPLICATE_EXTENSION = code("E_DUPLICATE_EXTENSION", CategoryResolve)

	// E_INTERFACE_IMPLEMENTATION_INCOMPLETE indicates an extension is
	// missing one or more required interface members. Carries one primary
	// label on the extension header plus a collection label listing each
	// missing requirement.
	E_INTERFACE_IMPLEMENTATION_INCOMPLETE = code("E_INTERFACE_IMPLEMENTATION_INCOMPLETE", CategoryResolve)

	// E_REDUNDANT_NULLABLE indicates a nullable decorator wraps another
	// nullable decorator ("??T").
	E_REDUNDANT_NULLABLE = code("E_REDUNDANT_NULLABLE", CategoryResolve)

	// E_NULLABLE_REFERENCE indicates a nullable decorator wraps a reference
	// decorator ("?ref T").
	E_NULLABLE_REFERENCE = code("E_NULLABLE_REFERENCE", CategoryResolve)

	// E_REDUNDANT_REFERENCE indicates a reference decorator wraps another
	// reference decorator ("ref ref T").
	E_REDUNDANT_REFERENCE = code("E_REDUNDANT_REFERENCE", CategoryResolve)

	// E_ARGUMENT_COUNT_MISMATCH indicates a call supplies the wrong number
	// of arguments for the target function's parameter list.
	E_ARGUMENT_COUNT_MISMATCH = code("E_ARGUMENT_COUNT_MISMATCH", CategoryResolve)

	// E_TYPE_MISMATCH indicates two type handles that were required to
	// match (e.g. a parameter against its declared type) do not match.
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryResolve)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Syntax
	E_SYNTAX,
	// Source
	E_DUPLICATE_SOURCE,
	// Resolve
	E_ALREADY_DEFINED,
	E_TYPE_NOT_FOUND,
	E_PATH_NOT_FOUND,
	E_ACCESSIBILITY_VIOLATION,
	E_IMPORT_CONFLICT,
	E_EXPECTED_INTERFACE,
	E_EXPECTED_CLASS,
	E_DUPLICATE_EXTENSION,
	E_INTERFACE_IMPLEMENTATION_INCOMPLETE,
	E_REDUNDANT_NULLABLE,
	E_NULLABLE_REFERENCE,
	E_REDUNDANT_REFERENCE,
	E_ARGUMENT_COUNT_MISMATCH,
	E_TYPE_MISMATCH,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
