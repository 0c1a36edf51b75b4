package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierFormatLowercasesBasicIdentifier(t *testing.T) {
	id := &Identifier{Text: "MyEntity"}
	require.Equal(t, "myentity", id.Format())
	require.Equal(t, "myentity", id.String())
}

func TestIdentifierFormatPreservesExtendedIdentifierCaseAndEscapes(t *testing.T) {
	id := &Identifier{Text: `Foo\Bar`, Extended: true}
	require.Equal(t, `\Foo\\Bar\`, id.Format())
	require.Equal(t, `Foo\Bar`, id.String())
}

func TestCharacterLiteralFormat(t *testing.T) {
	lit := &CharacterLiteral{Ch: '0'}
	require.Equal(t, "'0'", lit.Format())
}

func TestLinkSetsParentOnEveryDescendant(t *testing.T) {
	clk := &Identifier{Text: "clk"}
	mark := &TypeMark{Name: &Identifier{Text: "std_logic"}}
	sig := &InterfaceSignalDeclaration{
		IdentifierList:    []*Identifier{clk},
		Mode:              "in",
		SubtypeIndication: &SubtypeIndication{Mark: mark},
	}
	ports := &PortClause{Elements: []InterfaceElement{sig}}
	header := &EntityHeader{Ports: ports}
	ent := &EntityDeclaration{Identifier: &Identifier{Text: "counter"}, Header: header}

	Link(ent)

	require.Same(t, Node(ent), header.Parent())
	require.Same(t, Node(header), ports.Parent())
	require.Same(t, Node(ports), sig.Parent())
	require.Same(t, Node(sig), clk.Parent())
	require.Nil(t, ent.Parent())
}

func TestAppendNonNilSkipsTypedNilPointer(t *testing.T) {
	var mark *TypeMark // typed nil, but non-nil as a Node interface value
	sub := &SubtypeIndication{Mark: &TypeMark{Name: &Identifier{Text: "bit"}}, Constraint: mark}
	require.Len(t, sub.Children(), 1)
}

func TestEntityDeclarationFormatRoundTripsMinimalPort(t *testing.T) {
	ent := &EntityDeclaration{
		Identifier: &Identifier{Text: "e"},
		Header: &EntityHeader{
			Ports: &PortClause{
				Elements: []InterfaceElement{
					&InterfaceSignalDeclaration{
						IdentifierList:    []*Identifier{{Text: "a"}},
						Mode:              "in",
						SubtypeIndication: &SubtypeIndication{Mark: &TypeMark{Name: &Identifier{Text: "std_logic"}}},
					},
				},
			},
		},
	}
	got := ent.Format()
	require.Equal(t, "entity e is\nport (a : in std_logic);\nend entity e;", got)
}

func TestEntityDeclarationChildrenOmitsNilHeader(t *testing.T) {
	ent := &EntityDeclaration{Identifier: &Identifier{Text: "e"}}
	children := ent.Children()
	require.Len(t, children, 1)
	require.Equal(t, "identifier", children[0].KindName())
}
