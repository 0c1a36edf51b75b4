package cst

import "strings"

// BinaryExpr is the shared shape of the five left-associative binary
// expression levels VHDL-2008 stacks between a name/literal and a full
// expression: Expression (and/or/xor/nand/nor/xnor), Relation (=, /=, <...),
// ShiftExpression (sll, srl, ...), SimpleExpression (+, -, &) and Term
// (*, /, mod, rem). Each level is a distinct grammar production in the
// reference grammar with identical shape, so one Go type backs all of them,
// selected by Level; KindName still reports the production name the
// builder dispatched on, preserving the "one kind per rule" contract.
type BinaryExpr struct {
	base
	Level    string // "expression" | "relation" | "shift_expression" | "simple_expression" | "term"
	Sign     string // leading "+"/"-" on a simple_expression; "" otherwise
	Left     Node
	Op       string // "" when there is no right operand (a bare pass-through)
	Right    Node
}

func (n *BinaryExpr) KindName() string { return n.Level }
func (n *BinaryExpr) Children() []Node { return appendNonNil(nil, n.Left, n.Right) }
func (n *BinaryExpr) Format() string {
	var sb strings.Builder
	if n.Sign != "" {
		sb.WriteString(n.Sign)
	}
	sb.WriteString(n.Left.Format())
	if n.Op != "" {
		sb.WriteString(" ")
		sb.WriteString(strings.ToLower(n.Op))
		sb.WriteString(" ")
		sb.WriteString(n.Right.Format())
	}
	return sb.String()
}

// Factor is Factor ::= primary [** primary] | abs primary | not primary.
type Factor struct {
	base
	Unary    string // "abs" | "not" | ""
	Left     Node
	Pow      Node // non-nil for primary ** primary
}

func (n *Factor) KindName() string { return "factor" }
func (n *Factor) Children() []Node { return appendNonNil(nil, n.Left, n.Pow) }
func (n *Factor) Format() string {
	if n.Unary != "" {
		return n.Unary + " " + n.Left.Format()
	}
	if n.Pow != nil {
		return n.Left.Format() + " ** " + n.Pow.Format()
	}
	return n.Left.Format()
}

// Primary wraps whichever alternative matched: Name | Literal | Aggregate |
// FunctionCall | QualifiedExpression | Allocator | a fully parenthesized
// Expression (spec §3.2's "union that merely wraps a variant"). The wrapper
// is kept, rather than collapsed, because Format needs it to decide
// parenthesisation (spec §4.3).
type Primary struct {
	base
	Inner        Node
	Parenthesized bool
}

func (n *Primary) KindName() string { return "primary" }
func (n *Primary) Children() []Node { return appendNonNil(nil, n.Inner) }
func (n *Primary) Format() string {
	if n.Parenthesized {
		return "(" + n.Inner.Format() + ")"
	}
	return n.Inner.Format()
}

// NumericLiteral is an abstract (integer or real) literal with no unit.
type NumericLiteral struct {
	base
	Text string
}

func (n *NumericLiteral) KindName() string { return "numeric_literal" }
func (n *NumericLiteral) Children() []Node { return nil }
func (n *NumericLiteral) Format() string   { return n.Text }

// PhysicalLiteral is an abstract literal immediately followed by a unit
// identifier, e.g. `10 ns` (spec §3.2, §4.2, §8 scenario 6).
type PhysicalLiteral struct {
	base
	Abstract string
	Unit     *Identifier
}

func (n *PhysicalLiteral) KindName() string { return "physical_literal" }
func (n *PhysicalLiteral) Children() []Node { return appendNonNil(nil, n.Unit) }
func (n *PhysicalLiteral) Format() string   { return n.Abstract + " " + n.Unit.Format() }

// StringLiteralNode is a quoted string literal.
type StringLiteralNode struct {
	base
	Text string // decoded contents, "" escaping already collapsed
}

func (n *StringLiteralNode) KindName() string { return "string_literal" }
func (n *StringLiteralNode) Children() []Node { return nil }
func (n *StringLiteralNode) Format() string {
	return "\"" + strings.ReplaceAll(n.Text, "\"", "\"\"") + "\""
}

// BitStringLiteral is a based bit-string literal, e.g. X"FF".
type BitStringLiteral struct {
	base
	Prefix string
	Digits string
}

func (n *BitStringLiteral) KindName() string { return "bit_string_literal" }
func (n *BitStringLiteral) Children() []Node { return nil }
func (n *BitStringLiteral) Format() string   { return n.Prefix + "\"" + n.Digits + "\"" }

// NullLiteral is the reserved word `null` used as a primary.
type NullLiteral struct{ base }

func (n *NullLiteral) KindName() string { return "null_literal" }
func (n *NullLiteral) Children() []Node { return nil }
func (n *NullLiteral) Format() string   { return "null" }

// ElementAssociation is one element of an Aggregate: optional choices
// followed by `=>` and an expression, or a bare positional expression.
type ElementAssociation struct {
	base
	Choices    []Node // empty for a positional association
	Expression Node
}

func (n *ElementAssociation) KindName() string { return "element_association" }
func (n *ElementAssociation) Children() []Node {
	dst := appendSeq[Node](nil, n.Choices)
	return appendNonNil(dst, n.Expression)
}
func (n *ElementAssociation) Format() string {
	if len(n.Choices) == 0 {
		return n.Expression.Format()
	}
	parts := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		parts[i] = c.Format()
	}
	return strings.Join(parts, " | ") + " => " + n.Expression.Format()
}

// Aggregate is `( element_association {, element_association} )`.
type Aggregate struct {
	base
	Elements []*ElementAssociation
}

func (n *Aggregate) KindName() string { return "aggregate" }
func (n *Aggregate) Children() []Node { return appendSeq(nil, n.Elements) }
func (n *Aggregate) Format() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.Format()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Allocator is `new subtype_indication | new qualified_expression`.
type Allocator struct {
	base
	Target Node
}

func (n *Allocator) KindName() string { return "allocator" }
func (n *Allocator) Children() []Node { return appendNonNil(nil, n.Target) }
func (n *Allocator) Format() string   { return "new " + n.Target.Format() }

// QualifiedExpression is `type_mark ' ( expression ) | type_mark ' aggregate`.
type QualifiedExpression struct {
	base
	Mark  Node
	Value Node
}

func (n *QualifiedExpression) KindName() string { return "qualified_expression" }
func (n *QualifiedExpression) Children() []Node { return appendNonNil(nil, n.Mark, n.Value) }
func (n *QualifiedExpression) Format() string {
	return n.Mark.Format() + "'" + n.Value.Format()
}

// ActualPart is the actual side of an AssociationElement: an expression,
// `open`, or a function/type conversion wrapping one (spec §3.2 names
// FormalPart/ActualPart as distinct interface-association node kinds).
type ActualPart struct {
	base
	Open  bool
	Value Node
}

func (n *ActualPart) KindName() string { return "actual_part" }
func (n *ActualPart) Children() []Node { return appendNonNil(nil, n.Value) }
func (n *ActualPart) Format() string {
	if n.Open {
		return "open"
	}
	return n.Value.Format()
}

// FormalPart names the formal side of an association element.
type FormalPart struct {
	base
	Value Node
}

func (n *FormalPart) KindName() string { return "formal_part" }
func (n *FormalPart) Children() []Node { return appendNonNil(nil, n.Value) }
func (n *FormalPart) Format() string   { return n.Value.Format() }

// AssociationElement is `[formal_part =>] actual_part`, shared by generic
// maps, port maps and procedure/function call argument lists.
type AssociationElement struct {
	base
	Formal *FormalPart // nil for positional association
	Actual *ActualPart
}

func (n *AssociationElement) KindName() string { return "association_element" }
func (n *AssociationElement) Children() []Node {
	return appendNonNil(nil, n.Formal, n.Actual)
}
func (n *AssociationElement) Format() string {
	if n.Formal != nil {
		return n.Formal.Format() + " => " + n.Actual.Format()
	}
	return n.Actual.Format()
}

// AssociationList renders a parenthesized, comma-separated association
// list, shared by function calls, generic maps and port maps.
type AssociationList struct {
	base
	Items []*AssociationElement
}

func (n *AssociationList) KindName() string { return "association_list" }
func (n *AssociationList) Children() []Node { return appendSeq(nil, n.Items) }
func (n *AssociationList) Format() string {
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = it.Format()
	}
	return strings.Join(parts, ", ")
}

// FunctionCall is `name ( association_list )`. One of the three readings
// the grammar's `name(expr)` ambiguity resolves to (spec §4.1, §8 scenario 5).
type FunctionCall struct {
	base
	Prefix Node
	Args   *AssociationList
}

func (n *FunctionCall) KindName() string { return "function_call" }
func (n *FunctionCall) Children() []Node { return appendNonNil(nil, n.Prefix, n.Args) }
func (n *FunctionCall) Format() string {
	return n.Prefix.Format() + "(" + n.Args.Format() + ")"
}
