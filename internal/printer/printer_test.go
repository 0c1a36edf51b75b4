package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
)

func TestPrintCompactListsChildrenIndented(t *testing.T) {
	ent := &cst.EntityDeclaration{
		Identifier: &cst.Identifier{Text: "counter"},
		Header: &cst.EntityHeader{
			Ports: &cst.PortClause{
				Elements: []cst.InterfaceElement{
					&cst.InterfaceSignalDeclaration{
						IdentifierList:    []*cst.Identifier{{Text: "clk"}},
						Mode:              "in",
						SubtypeIndication: &cst.SubtypeIndication{Mark: &cst.TypeMark{Name: &cst.Identifier{Text: "std_logic"}}},
					},
				},
			},
		},
	}
	cst.Link(ent)

	out := Print(ent)
	require.Contains(t, out, "entity_declaration")
	require.Contains(t, out, "identifier")
	require.Contains(t, out, "entity_header")
	require.Contains(t, out, "port_clause")
	require.Contains(t, out, "interface_signal_declaration")

	lines := strings.Split(out, "\n")
	require.Equal(t, "entity_declaration", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "  "))
}

func TestPrintRichUnderlinesChosenVariantOfUnionField(t *testing.T) {
	du := &cst.DesignUnit{
		Unit: &cst.PackageDeclaration{Identifier: &cst.Identifier{Text: "utils"}},
	}
	cst.Link(du)

	out := PrintRich(du)
	require.Contains(t, out, "Unit : cst.LibraryUnit")
	require.Contains(t, out, "package_declaration")
	require.Contains(t, out, strings.Repeat("^", len("package_declaration")))
}

func TestPrintEmptyNodeHasNoChildrenBlock(t *testing.T) {
	id := &cst.Identifier{Text: "x"}
	out := Print(id)
	require.Equal(t, "identifier\n", out)
}
