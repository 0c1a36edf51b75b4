package forest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
)

func termTok(kind token.Kind, text string, col int) token.Token {
	return token.Token{
		Kind: kind, Text: text,
		Pos: token.Position{Line: 1, Column: col, Offset: col - 1},
		End: token.Position{Line: 1, Column: col + len(text), Offset: col - 1 + len(text)},
	}
}

func TestNonTerminalDerivesSpanFromChildren(t *testing.T) {
	a := NewTerminal(termTok(token.Identifier, "foo", 1))
	b := NewTerminal(termTok(token.Delimiter, ";", 4))
	n := NewNonTerminal("simple_name", a, b)

	require.True(t, n.HasSpan())
	start, end := n.Span()
	require.Equal(t, a.start, start)
	require.Equal(t, b.end, end)
}

func TestAmbigNodeIsAmbig(t *testing.T) {
	alt1 := NewNonTerminal("function_call", NewTerminal(termTok(token.Identifier, "f", 1)))
	alt2 := NewNonTerminal("indexed_name", NewTerminal(termTok(token.Identifier, "f", 1)))
	amb := NewAmbig(alt1, alt2)

	require.True(t, amb.IsAmbig())
	require.False(t, alt1.IsAmbig())
	require.Len(t, amb.Children, 2)
}

func TestStructEqualIgnoresSourcePositions(t *testing.T) {
	a := NewNonTerminal("simple_name", NewTerminal(termTok(token.Identifier, "foo", 1)))
	b := NewNonTerminal("simple_name", NewTerminal(termTok(token.Identifier, "foo", 50)))
	require.True(t, StructEqual(a, b))

	c := NewNonTerminal("simple_name", NewTerminal(termTok(token.Identifier, "bar", 1)))
	require.False(t, StructEqual(a, c))
}

func TestStructEqualDetectsRuleMismatch(t *testing.T) {
	a := NewNonTerminal("function_call", NewTerminal(termTok(token.Identifier, "f", 1)))
	b := NewNonTerminal("indexed_name", NewTerminal(termTok(token.Identifier, "f", 1)))
	require.False(t, StructEqual(a, b))
}

func TestStructEqualDetectsChildCountMismatch(t *testing.T) {
	a := NewNonTerminal("args", NewTerminal(termTok(token.Identifier, "a", 1)))
	b := NewNonTerminal("args",
		NewTerminal(termTok(token.Identifier, "a", 1)),
		NewTerminal(termTok(token.Identifier, "b", 3)),
	)
	require.False(t, StructEqual(a, b))
}

func TestWalkVisitsEveryNodeDepthFirst(t *testing.T) {
	leaf1 := NewTerminal(termTok(token.Identifier, "a", 1))
	leaf2 := NewTerminal(termTok(token.Identifier, "b", 3))
	root := NewNonTerminal("pair", leaf1, leaf2)

	var visited []*Node
	Walk(root, func(n *Node) { visited = append(visited, n) })
	require.Equal(t, []*Node{root, leaf1, leaf2}, visited)
}

func TestContainsDeletablePropagatesFromDescendant(t *testing.T) {
	leaf := NewTerminal(termTok(token.Identifier, "a", 1))
	inner := NewNonTerminal("inner", leaf)
	outer := NewNonTerminal("outer", inner)

	require.False(t, ContainsDeletable(outer))
	leaf.ToDelete = true
	require.True(t, ContainsDeletable(outer))
	require.True(t, ContainsDeletable(inner))
}

func TestBuiltNodeCarriesSpanWithoutChildren(t *testing.T) {
	start := token.Position{Line: 1, Column: 1}
	end := token.Position{Line: 1, Column: 10}
	n := NewBuilt("entity_declaration", "placeholder-cst-node", start, end)

	require.True(t, n.HasSpan())
	gotStart, gotEnd := n.Span()
	require.Equal(t, start, gotStart)
	require.Equal(t, end, gotEnd)
	require.Equal(t, "placeholder-cst-node", n.Built)
}
