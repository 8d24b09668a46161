package diag

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{E_LIMIT_REACHED, "E_LIMIT_REACHED"},
		{E_INTERNAL, "E_INTERNAL"},
		{E_SYNTAX, "E_SYNTAX"},
		{E_DUPLICATE_SOURCE, "E_DUPLICATE_SOURCE"},
		{E_ALREADY_DEFINED, "E_ALREADY_DEFINED"},
		{E_TYPE_MISMATCH, "E_TYPE_MISMATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want CodeCategory
	}{
		{E_LIMIT_REACHED, CategorySentinel},
		{E_INTERNAL, CategorySentinel},
		{E_SYNTAX, CategorySyntax},
		{E_DUPLICATE_SOURCE, CategorySource},
		{E_ALREADY_DEFINED, CategoryResolve},
		{E_TYPE_NOT_FOUND, CategoryResolve},
		{E_ACCESSIBILITY_VIOLATION, CategoryResolve},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Category())
		})
	}
}

func TestCode_IsZero(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"zero value", Code{}, true},
		{"empty string value", code("", CategorySentinel), true},
		{"valid code", E_ALREADY_DEFINED, false},
		{"sentinel code", E_LIMIT_REACHED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.IsZero())
		})
	}
}

func TestCodeCategory_String(t *testing.T) {
	tests := []struct {
		cat  CodeCategory
		want string
	}{
		{CategorySentinel, "sentinel"},
		{CategorySyntax, "syntax"},
		{CategoryResolve, "resolve"},
		{CategorySource, "source"},
		{CodeCategory(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cat.String())
		})
	}
}

func TestAllCodes_ReturnsCopy(t *testing.T) {
	codes := AllCodes()
	assert.GreaterOrEqual(t, len(codes), 16)

	original := AllCodes()
	codes[0] = Code{}
	afterMod := AllCodes()
	assert.False(t, afterMod[0].IsZero(), "AllCodes() should return a copy, not the internal slice")
	assert.False(t, original[0].IsZero())
}

func TestAllCodes_Uniqueness(t *testing.T) {
	codes := AllCodes()
	seen := make(map[string]Code)

	for _, c := range codes {
		str := c.String()
		requireNotEmpty(t, str)
		if prev, ok := seen[str]; ok {
			t.Errorf("duplicate code string %q: categories %s and %s", str, prev.Category(), c.Category())
		}
		seen[str] = c
	}

	assert.Len(t, seen, len(codes))
}

func requireNotEmpty(t *testing.T, s string) {
	t.Helper()
	if s == "" {
		t.Error("found code with empty string")
	}
}

func TestAllCodes_NoZeroValues(t *testing.T) {
	for _, c := range AllCodes() {
		assert.False(t, c.IsZero())
	}
}

func TestCodesByCategory(t *testing.T) {
	tests := []struct {
		cat         CodeCategory
		minExpected int
		mustContain []Code
	}{
		{
			cat:         CategorySentinel,
			minExpected: 2,
			mustContain: []Code{E_LIMIT_REACHED, E_INTERNAL},
		},
		{
			cat:         CategorySyntax,
			minExpected: 1,
			mustContain: []Code{E_SYNTAX},
		},
		{
			cat:         CategorySource,
			minExpected: 1,
			mustContain: []Code{E_DUPLICATE_SOURCE},
		},
		{
			cat:         CategoryResolve,
			minExpected: 10,
			mustContain: []Code{E_ALREADY_DEFINED, E_ACCESSIBILITY_VIOLATION, E_TYPE_MISMATCH},
		},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			codes := CodesByCategory(tt.cat)
			assert.GreaterOrEqual(t, len(codes), tt.minExpected)

			for _, c := range codes {
				assert.Equal(t, tt.cat, c.Category())
			}

			codeSet := make(map[string]bool)
			for _, c := range codes {
				codeSet[c.String()] = true
			}
			for _, required := range tt.mustContain {
				assert.True(t, codeSet[required.String()], "missing required code %s", required)
			}
		})
	}
}

func TestCodesByCategory_ReturnsNewSlice(t *testing.T) {
	codes1 := CodesByCategory(CategoryResolve)
	requireNotEmptySlice(t, codes1)

	codes1[0] = Code{}
	codes2 := CodesByCategory(CategoryResolve)

	assert.False(t, codes2[0].IsZero(), "CodesByCategory should return a new slice each time")
}

func requireNotEmptySlice(t *testing.T, codes []Code) {
	t.Helper()
	if len(codes) == 0 {
		t.Skip("no resolve codes to test with")
	}
}

func TestCodesByCategory_AllCategoriesCovered(t *testing.T) {
	allByCategory := make(map[string]bool)
	categories := []CodeCategory{
		CategorySentinel,
		CategorySyntax,
		CategoryResolve,
		CategorySource,
	}

	for _, cat := range categories {
		for _, c := range CodesByCategory(cat) {
			assert.False(t, allByCategory[c.String()], "code %s appears in multiple categories", c)
			allByCategory[c.String()] = true
		}
	}

	for _, c := range AllCodes() {
		assert.True(t, allByCategory[c.String()], "code %s not returned by any CodesByCategory call", c)
	}
}

// TestResolverDiagnosticKindsExist verifies that every diagnostic kind named
// in spec.md §7's closed set has a corresponding Code.
func TestResolverDiagnosticKindsExist(t *testing.T) {
	requiredCodes := []struct {
		code     Code
		category CodeCategory
	}{
		{E_LIMIT_REACHED, CategorySentinel},
		{E_INTERNAL, CategorySentinel},
		{E_SYNTAX, CategorySyntax},
		{E_DUPLICATE_SOURCE, CategorySource},
		{E_ALREADY_DEFINED, CategoryResolve},
		{E_TYPE_NOT_FOUND, CategoryResolve},
		{E_PATH_NOT_FOUND, CategoryResolve},
		{E_ACCESSIBILITY_VIOLATION, CategoryResolve},
		{E_IMPORT_CONFLICT, CategoryResolve},
		{E_EXPECTED_INTERFACE, CategoryResolve},
		{E_EXPECTED_CLASS, CategoryResolve},
		{E_DUPLICATE_EXTENSION, CategoryResolve},
		{E_INTERFACE_IMPLEMENTATION_INCOMPLETE, CategoryResolve},
		{E_REDUNDANT_NULLABLE, CategoryResolve},
		{E_NULLABLE_REFERENCE, CategoryResolve},
		{E_REDUNDANT_REFERENCE, CategoryResolve},
		{E_ARGUMENT_COUNT_MISMATCH, CategoryResolve},
		{E_TYPE_MISMATCH, CategoryResolve},
	}

	for _, tc := range requiredCodes {
		t.Run(tc.code.String(), func(t *testing.T) {
			assert.False(t, tc.code.IsZero())
			assert.Equal(t, tc.category, tc.code.Category())
		})
	}
}

// TestAllCodes_MatchesDefinedCodes uses AST parsing to verify that every
// exported E_* variable in code.go appears in allCodes exactly once. This
// prevents drift between code definitions and the allCodes slice.
func TestAllCodes_MatchesDefinedCodes(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "code.go", nil, 0)
	requireNoError(t, err)

	definedCodes := make(map[string]bool)
	ast.Inspect(f, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.VAR {
			return true
		}

		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, name := range valueSpec.Names {
				if strings.HasPrefix(name.Name, "E_") && name.IsExported() {
					definedCodes[name.Name] = true
				}
			}
		}
		return true
	})

	requireNotEmptyMap(t, definedCodes)

	allCodesMap := make(map[string]bool)
	for _, c := range AllCodes() {
		str := c.String()
		assert.False(t, allCodesMap[str], "allCodes contains duplicate: %s", str)
		allCodesMap[str] = true
	}

	for name := range definedCodes {
		assert.True(t, allCodesMap[name], "E_* variable %s defined in code.go but missing from allCodes", name)
	}
	for name := range allCodesMap {
		assert.True(t, definedCodes[name], "allCodes contains %s but no matching E_* variable in code.go", name)
	}
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("failed to parse code.go: %v", err)
	}
}

func requireNotEmptyMap(t *testing.T, m map[string]bool) {
	t.Helper()
	if len(m) == 0 {
		t.Fatal("no E_* variables found in code.go")
	}
}
