package cst

import "strings"

// ExpressionList renders a parenthesized, comma-separated list of bare
// expressions (an indexed_name's index list, distinct from AssociationList
// which carries optional formal parts).
type ExpressionList struct {
	base
	Items []Node
}

func (n *ExpressionList) KindName() string { return "expression_list" }
func (n *ExpressionList) Children() []Node { return appendSeq(nil, n.Items) }
func (n *ExpressionList) Format() string {
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = it.Format()
	}
	return strings.Join(parts, ", ")
}

// Range is `simple_expression direction simple_expression` or
// `name ' range_attribute_name`.
type Range struct {
	base
	Attribute Node // non-nil when this is a `prefix'range(n)` form
	Low       Node
	Direction string // "to" | "downto"
	High      Node
}

func (n *Range) KindName() string { return "range" }
func (n *Range) Children() []Node { return appendNonNil(nil, n.Attribute, n.Low, n.High) }
func (n *Range) Format() string {
	if n.Attribute != nil {
		return n.Attribute.Format()
	}
	return n.Low.Format() + " " + n.Direction + " " + n.High.Format()
}

// DiscreteRange wraps either a Range or a subtype indication used as a
// discrete range (the union spec §3.2 names).
type DiscreteRange struct {
	base
	Inner Node
}

func (n *DiscreteRange) KindName() string { return "discrete_range" }
func (n *DiscreteRange) Children() []Node { return appendNonNil(nil, n.Inner) }
func (n *DiscreteRange) Format() string   { return n.Inner.Format() }

// SelectedName is `prefix . suffix`.
type SelectedName struct {
	base
	Prefix Node
	Suffix Node // *Identifier, CharacterLiteral, StringLiteral (operator symbol), or "all"
	All    bool
}

func (n *SelectedName) KindName() string { return "selected_name" }
func (n *SelectedName) Children() []Node { return appendNonNil(nil, n.Prefix, n.Suffix) }
func (n *SelectedName) Format() string {
	if n.All {
		return n.Prefix.Format() + ".all"
	}
	return n.Prefix.Format() + "." + n.Suffix.Format()
}

// IndexedName is `prefix ( expression {, expression} )` — one of the three
// readings the name(expr) ambiguity resolves to.
type IndexedName struct {
	base
	Prefix  Node
	Indices *ExpressionList
}

func (n *IndexedName) KindName() string { return "indexed_name" }
func (n *IndexedName) Children() []Node { return appendNonNil(nil, n.Prefix, n.Indices) }
func (n *IndexedName) Format() string {
	return n.Prefix.Format() + "(" + n.Indices.Format() + ")"
}

// SliceName is `prefix ( discrete_range )` — the third reading of the
// name(expr) ambiguity, viable only when the parenthesized content is
// syntactically a discrete range.
type SliceName struct {
	base
	Prefix Node
	Range  *DiscreteRange
}

func (n *SliceName) KindName() string { return "slice_name" }
func (n *SliceName) Children() []Node { return appendNonNil(nil, n.Prefix, n.Range) }
func (n *SliceName) Format() string {
	return n.Prefix.Format() + "(" + n.Range.Format() + ")"
}

// Signature is the optional `[ type_mark {, type_mark} ] [ return type_mark ]`
// attached to a subprogram name or attribute name.
type Signature struct {
	base
	ParameterTypes []Node
	ReturnType     Node
}

func (n *Signature) KindName() string { return "signature" }
func (n *Signature) Children() []Node {
	dst := appendSeq(nil, n.ParameterTypes)
	return appendNonNil(dst, n.ReturnType)
}
func (n *Signature) Format() string {
	parts := make([]string, len(n.ParameterTypes))
	for i, p := range n.ParameterTypes {
		parts[i] = p.Format()
	}
	body := strings.Join(parts, ", ")
	if n.ReturnType != nil {
		if body != "" {
			body += " "
		}
		body += "return " + n.ReturnType.Format()
	}
	return "[" + body + "]"
}

// AttributeName is `prefix ' designator [ signature ] [ ( expression ) ]`.
type AttributeName struct {
	base
	Prefix     Node
	Designator *Identifier
	Signature  *Signature
	Argument   Node
}

func (n *AttributeName) KindName() string { return "attribute_name" }
func (n *AttributeName) Children() []Node {
	return appendNonNil(nil, n.Prefix, n.Signature, n.Designator, n.Argument)
}
func (n *AttributeName) Format() string {
	var sb strings.Builder
	sb.WriteString(n.Prefix.Format())
	sb.WriteString("'")
	sb.WriteString(strings.ToLower(n.Designator.Format()))
	if n.Argument != nil {
		sb.WriteString("(" + n.Argument.Format() + ")")
	}
	return sb.String()
}

// TypeMark names a type or subtype in a context demanding just a name
// (spec §3.2 lists TypeMark as its own kind because format()/role differ
// from a general Name).
type TypeMark struct {
	base
	Name Node
}

func (n *TypeMark) KindName() string { return "type_mark" }
func (n *TypeMark) Children() []Node { return appendNonNil(nil, n.Name) }
func (n *TypeMark) Format() string   { return n.Name.Format() }
