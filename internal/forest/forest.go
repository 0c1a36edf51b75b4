// Package forest models the untyped parse forest (spec §3.1): an
// intermediate tree of non-terminals, terminals, and explicit ambiguity
// nodes, produced by internal/parser and consumed by internal/shaper.
// Grounded on hdltree.py's use of lark.Tree/lark.Token with
// the `_ambig` convention (VhdlParseTreeTransformers.py).
package forest

import "github.com/robert-at-pretension-io/vhdlfront/internal/token"

// NodeKind distinguishes the three forest node shapes spec §3.1 names.
type NodeKind int

const (
	NonTerminal NodeKind = iota
	TerminalNode
	AmbigNode
)

// Node is an untyped parse-forest node. Exactly one of the terminal token
// fields or the children slice is meaningful, selected by Kind.
type Node struct {
	Kind NodeKind

	// NonTerminal / AmbigNode
	Rule     string // production name ("entity_declaration", "_ambig", ...)
	Children []*Node

	// TerminalNode
	Token token.Token

	// ToDelete marks a subtree the shaper's semantic filtering pass has
	// found impossible (spec §4.2); it propagates upward through any
	// ambiguity node containing it.
	ToDelete bool

	// Built holds the typed cst.Node the parser already constructed for this
	// subtree. The parser builds every production directly as a cst.Node and
	// emits forest structure only at its ambiguity points (name(expr),
	// physical literals) under -a/--ambig, where each alternative is such a
	// built node beneath an `_ambig` node. Declared as any
	// (rather than cst.Node) to keep this leaf package free of a dependency
	// on internal/cst; internal/shaper does the type assertion.
	Built any

	start, end token.Position
	hasSpan    bool
}

// NewNonTerminal builds an interior node and derives its span from its
// children (first child's start, last child's end).
func NewNonTerminal(rule string, children ...*Node) *Node {
	n := &Node{Kind: NonTerminal, Rule: rule, Children: children}
	n.deriveSpan()
	return n
}

// NewAmbig builds an explicit ambiguity node: alternative derivations of
// the identical source span (spec §3.1 invariant).
func NewAmbig(alternatives ...*Node) *Node {
	n := &Node{Kind: AmbigNode, Rule: "_ambig", Children: alternatives}
	n.deriveSpan()
	return n
}

// NewTerminal wraps a single lexical token.
func NewTerminal(tok token.Token) *Node {
	return &Node{Kind: TerminalNode, Token: tok, start: tok.Pos, end: tok.End, hasSpan: true}
}

// NewBuilt wraps an already-built cst.Node as a leaf forest node, used by
// the parser for the unambiguous productions it builds directly rather than
// through forest construction.
func NewBuilt(rule string, built any, start, end token.Position) *Node {
	return &Node{Kind: NonTerminal, Rule: rule, Built: built, start: start, end: end, hasSpan: true}
}

func (n *Node) deriveSpan() {
	if len(n.Children) == 0 {
		return
	}
	first, last := n.Children[0], n.Children[len(n.Children)-1]
	if first.hasSpan {
		n.start = first.start
	}
	if last.hasSpan {
		n.end = last.end
	}
	n.hasSpan = first.hasSpan && last.hasSpan
}

// Span returns the node's source range, valid when HasSpan is true.
func (n *Node) Span() (token.Position, token.Position) { return n.start, n.end }

// HasSpan reports whether Span is meaningful: always true for terminal and
// built nodes, and true for a non-terminal or ambiguity node only when its
// first and last children have spans (false when it has no children).
func (n *Node) HasSpan() bool { return n.hasSpan }

// IsAmbig reports whether this node is an explicit-ambiguity node.
func (n *Node) IsAmbig() bool { return n.Kind == AmbigNode }

// StructEqual is the recursive structural-equality check spec §4.2 uses to
// de-duplicate `_ambig` alternatives: same rule name and children,
// ignoring source positions.
func StructEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TerminalNode:
		return a.Token.Kind == b.Token.Kind && a.Token.Text == b.Token.Text
	default:
		if a.Rule != b.Rule || len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !StructEqual(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	}
}

// Walk calls visit on n and every descendant, depth first, pre-order.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// ContainsDeletable reports whether n or any descendant is marked ToDelete,
// the propagation rule spec §4.2 describes.
func ContainsDeletable(n *Node) bool {
	found := false
	Walk(n, func(m *Node) {
		if m.ToDelete {
			found = true
		}
	})
	return found
}
