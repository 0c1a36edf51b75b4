package shaper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/forest"
	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

func builtLeaf(rule string, built any) *forest.Node {
	return forest.NewBuilt(rule, built, token.Position{Line: 1, Column: 1}, token.Position{Line: 1, Column: 2})
}

func TestValidTimeUnitIsCaseInsensitive(t *testing.T) {
	require.True(t, ValidTimeUnit("ns"))
	require.True(t, ValidTimeUnit("NS"))
	require.False(t, ValidTimeUnit("xs"))
}

func TestShapeCollapsesSingleSurvivorAmbiguity(t *testing.T) {
	call := builtLeaf("function_call", "call")
	slice := builtLeaf("slice_name", "slice")
	slice.ToDelete = true // discarded by semantic filtering before collapse runs
	amb := forest.NewAmbig(call, slice)

	out, warnings := Shape("t.vhd", amb)
	require.Empty(t, warnings)
	require.Same(t, call, out)
}

func TestShapeDeduplicatesStructurallyIdenticalAlternatives(t *testing.T) {
	name := &cst.Identifier{Text: "x"}
	a := forest.NewNonTerminal("simple_name", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "x"}))
	b := forest.NewNonTerminal("simple_name", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "x"}))
	amb := forest.NewAmbig(a, b)
	_ = name

	out, warnings := Shape("t.vhd", amb)
	require.Empty(t, warnings)
	require.Equal(t, "simple_name", out.Rule)
}

func TestShapePrefersFunctionCallOverIndexedName(t *testing.T) {
	call := forest.NewNonTerminal("function_call", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "f"}))
	indexed := forest.NewNonTerminal("indexed_name", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "f"}))
	amb := forest.NewAmbig(call, indexed)

	out, warnings := Shape("t.vhd", amb)
	require.Empty(t, warnings)
	require.Equal(t, "function_call", out.Rule)
}

func TestShapeReportsAmbiguityUnresolvedWhenPreferenceTies(t *testing.T) {
	a := forest.NewNonTerminal("unranked_a", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "f"}))
	b := forest.NewNonTerminal("unranked_b", forest.NewTerminal(token.Token{Kind: token.Identifier, Text: "f"}))
	amb := forest.NewAmbig(a, b)

	out, warnings := Shape("t.vhd", amb)
	require.NotNil(t, out)
	require.Len(t, warnings, 1)
	var au *vhdlerrors.AmbiguityUnresolved
	require.ErrorAs(t, warnings[0], &au)
}

func TestShapeFailsWhenAllAlternativesDeleted(t *testing.T) {
	a := builtLeaf("reading_a", "a")
	b := builtLeaf("reading_b", "b")
	a.ToDelete = true
	b.ToDelete = true
	amb := forest.NewAmbig(a, b)

	out, warnings := Shape("t.vhd", amb)
	require.Nil(t, out)
	require.Len(t, warnings, 1)
	var pf *vhdlerrors.ParseFailure
	require.ErrorAs(t, warnings[0], &pf)
}

func TestMarkDeletablePhysicalLiteralsPrunesUnknownUnit(t *testing.T) {
	goodUnit := builtLeaf("physical_literal", &cst.PhysicalLiteral{Abstract: "10", Unit: &cst.Identifier{Text: "ns"}})
	badUnit := builtLeaf("physical_literal", &cst.PhysicalLiteral{Abstract: "10", Unit: &cst.Identifier{Text: "xs"}})
	amb := forest.NewAmbig(goodUnit, badUnit)

	out, warnings := Shape("t.vhd", amb)
	require.Empty(t, warnings)
	require.Same(t, goodUnit, out)
}

func TestShapeIsIdempotentOnAlreadyCollapsedTree(t *testing.T) {
	leaf := builtLeaf("entity_declaration", "e")
	first, warnings1 := Shape("t.vhd", leaf)
	require.Empty(t, warnings1)

	second, warnings2 := Shape("t.vhd", first)
	require.Empty(t, warnings2)
	require.Same(t, first, second)
}
