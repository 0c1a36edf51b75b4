// Package cst implements the typed concrete syntax tree: a closed family of
// node kinds, one per VHDL-2008 grammar production, each with named fields,
// a parent back-reference, and a deterministic format() that reconstructs
// source text. Field layout mirrors hdltree's VhdlCstTransformer.py
// dataclasses; Go structs replace Python dataclasses and an explicit
// interface replaces duck typing for the union-valued fields.
package cst

import (
	"reflect"
	"strings"
)

// Node is implemented by every CST node kind (spec §3.2).
type Node interface {
	// KindName is the grammar production name, snake_case.
	KindName() string
	// Format renders this node back to VHDL source text.
	Format() string
	// Children is the ordered concatenation of all field values, with
	// sequence fields flattened.
	Children() []Node
	// Parent is the enclosing node, or nil for the tree root. Set once by
	// Link after the tree is fully constructed; never used by Format.
	Parent() Node
}

type parentSetter interface {
	setParent(Node)
}

// base is embedded by every concrete node kind. The parent pointer is a
// non-owning back-reference: it never extends a subtree's lifetime beyond
// whatever is holding the root, and Format never reads it.
type base struct {
	parent Node
}

func (b *base) Parent() Node        { return b.parent }
func (b *base) setParent(p Node)    { b.parent = p }

// Link performs the single downward walk that sets every descendant's
// parent pointer, per spec §4.3. Call once after a tree is fully built.
func Link(root Node) {
	if root == nil {
		return
	}
	for _, c := range root.Children() {
		if c == nil {
			continue
		}
		if ps, ok := c.(parentSetter); ok {
			ps.setParent(root)
		}
		Link(c)
	}
}

// appendNonNil flattens optional/sequence field values into a children
// list, skipping nils so Children() never contains them (an absent
// optional field simply contributes nothing).
func appendNonNil(dst []Node, items ...Node) []Node {
	for _, it := range items {
		if it != nil && !isNilNode(it) {
			dst = append(dst, it)
		}
	}
	return dst
}

// isNilNode guards against typed-nil interface values (a nil *EntityDeclaration
// stored in a Node variable is non-nil as an interface but should still be
// treated as absent).
func isNilNode(n Node) bool {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func appendSeq[T Node](dst []Node, items []T) []Node {
	for _, it := range items {
		dst = append(dst, it)
	}
	return dst
}

func formatSeq[T Node](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Format()
	}
	return strings.Join(parts, sep)
}

func formatOpt(n Node, prefix, suffix string) string {
	if n == nil || isNilNode(n) {
		return ""
	}
	return prefix + n.Format() + suffix
}

// Identifier is the terminal wrapper for a basic or extended identifier
// (spec §4.3: "a dedicated Identifier(token) ... wrapper is created").
// Case is preserved as written; comparisons elsewhere are case-insensitive.
type Identifier struct {
	base
	Text     string
	Extended bool
}

func (n *Identifier) KindName() string  { return "identifier" }
func (n *Identifier) Children() []Node  { return nil }
func (n *Identifier) Format() string {
	if n.Extended {
		return "\\" + strings.ReplaceAll(n.Text, "\\", "\\\\") + "\\"
	}
	return strings.ToLower(n.Text)
}

// String gives the canonical case-insensitive comparison key, matching
// VHDL's identifier equivalence and Analyzer.py's `str(pid.id)` usage.
func (n *Identifier) String() string {
	if n == nil {
		return ""
	}
	if n.Extended {
		return n.Text
	}
	return strings.ToLower(n.Text)
}

// CharacterLiteral is the terminal wrapper for a VHDL character literal,
// e.g. '0'.
type CharacterLiteral struct {
	base
	Ch rune
}

func (n *CharacterLiteral) KindName() string { return "character_literal" }
func (n *CharacterLiteral) Children() []Node { return nil }
func (n *CharacterLiteral) Format() string   { return "'" + string(n.Ch) + "'" }

// Raw wraps a lexical token verbatim for constructs this subset of the
// grammar does not further structure (e.g. the `others` choice, the `<>`
// interface subprogram default, or an interface subprogram's specification
// text). It always formats to its exact
// source text and is never further decomposed.
type Raw struct {
	base
	Text string
}

func (n *Raw) KindName() string { return "raw" }
func (n *Raw) Children() []Node { return nil }
func (n *Raw) Format() string   { return n.Text }
