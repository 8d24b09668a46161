package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/scope"
	"github.com/tim-lang/tir/sig"
)

func TestScope_Define_RejectsDuplicateInSameScope(t *testing.T) {
	root := scope.New(scope.Root, nil)
	mod := scope.New(scope.Module, root)

	sourceID := location.SourceID(1)
	firstSpan := location.Point(sourceID, 7)
	secondSpan := location.Point(sourceID, 19)

	require.NoError(t, mod.Define("P", scope.Entry{Kind: scope.TypeEntry, Handle: 1, Span: firstSpan}))

	err := mod.Define("P", scope.Entry{Kind: scope.TypeEntry, Handle: 2, Span: secondSpan})
	require.Error(t, err)

	var already *scope.AlreadyDefinedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "P", already.Name)
	assert.Equal(t, firstSpan, already.FirstSpan)
	assert.Equal(t, secondSpan, already.SecondSpan)
}

func TestScope_Lookup_WalksParentChain(t *testing.T) {
	root := scope.New(scope.Root, nil)
	require.NoError(t, root.Define("Base", scope.Entry{Kind: scope.TypeEntry, Handle: 1}))

	mod := scope.New(scope.Module, root)
	entry, ok := mod.Lookup("Base")
	require.True(t, ok)
	assert.Equal(t, sig.Handle(1), entry.Handle)
}

func TestScope_Lookup_LocalShadowsParent(t *testing.T) {
	root := scope.New(scope.Root, nil)
	require.NoError(t, root.Define("X", scope.Entry{Kind: scope.TypeEntry, Handle: 1}))

	fn := scope.New(scope.FunctionBody, root)
	require.NoError(t, fn.Define("X", scope.Entry{Kind: scope.ValueEntry, ValueType: 2}))

	entry, ok := fn.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, scope.ValueEntry, entry.Kind, "local value binding should win over the outer type handle")
}

func TestScope_Lookup_NotFound(t *testing.T) {
	root := scope.New(scope.Root, nil)
	_, ok := root.Lookup("Nowhere")
	assert.False(t, ok)
}

type stubMembers struct {
	exports map[sig.Handle]map[string]sig.Handle
	members map[sig.Handle]map[string]sig.Handle
	kinds   map[sig.Handle]sig.Kind
}

func (s *stubMembers) ModuleExport(h sig.Handle, name string) (sig.Handle, bool) {
	m, ok := s.exports[h][name]
	return m, ok
}

func (s *stubMembers) ClassMember(h sig.Handle, name string) (sig.Handle, bool) {
	m, ok := s.members[h][name]
	return m, ok
}

func (s *stubMembers) Kind(h sig.Handle) sig.Kind {
	return s.kinds[h]
}

func TestScope_LookupQualified_ThroughModuleExports(t *testing.T) {
	root := scope.New(scope.Root, nil)
	require.NoError(t, root.Define("lib", scope.Entry{Kind: scope.TypeEntry, Handle: 10}))

	members := &stubMembers{
		kinds:   map[sig.Handle]sig.Kind{10: sig.KindModule},
		exports: map[sig.Handle]map[string]sig.Handle{10: {"Secret": 20}},
	}

	entry, _, ok := root.LookupQualified([]string{"lib", "Secret"}, members)
	require.True(t, ok)
	assert.Equal(t, sig.Handle(20), entry.Handle)
}

func TestScope_LookupQualified_FailsAtOffendingSegment(t *testing.T) {
	root := scope.New(scope.Root, nil)
	require.NoError(t, root.Define("lib", scope.Entry{Kind: scope.TypeEntry, Handle: 10}))

	members := &stubMembers{
		kinds:   map[sig.Handle]sig.Kind{10: sig.KindModule},
		exports: map[sig.Handle]map[string]sig.Handle{10: {}},
	}

	_, failIdx, ok := root.LookupQualified([]string{"lib", "Missing"}, members)
	assert.False(t, ok)
	assert.Equal(t, 1, failIdx)
}

func TestScope_LookupQualified_ThroughClassMembers(t *testing.T) {
	root := scope.New(scope.Root, nil)
	require.NoError(t, root.Define("c", scope.Entry{Kind: scope.TypeEntry, Handle: 30}))

	members := &stubMembers{
		kinds:   map[sig.Handle]sig.Kind{30: sig.KindClass},
		members: map[sig.Handle]map[string]sig.Handle{30: {"field": 40}},
	}

	entry, _, ok := root.LookupQualified([]string{"c", "field"}, members)
	require.True(t, ok)
	assert.Equal(t, sig.Handle(40), entry.Handle)
}

func TestScope_Kind_String(t *testing.T) {
	tests := []struct {
		kind scope.Kind
		want string
	}{
		{scope.Root, "root"},
		{scope.Module, "module"},
		{scope.ClassBody, "class-body"},
		{scope.FunctionBody, "function-body"},
		{scope.Block, "block"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
