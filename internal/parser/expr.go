package parser

import (
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/forest"
	"github.com/robert-at-pretension-io/vhdlfront/internal/shaper"
	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
)

// parseExpression climbs the five left-associative binary levels VHDL-2008
// stacks between a primary and a full expression (spec §3.2's BinaryExpr
// family): expression, relation, shift_expression, simple_expression, term.
func (c *cursor) parseExpression() (cst.Node, error) {
	return c.parseBinaryLevel("expression", logicalOps, c.parseRelation)
}

func (c *cursor) parseRelation() (cst.Node, error) {
	return c.parseBinaryLevel("relation", relationalOps, c.parseShiftExpression)
}

func (c *cursor) parseShiftExpression() (cst.Node, error) {
	return c.parseBinaryLevel("shift_expression", shiftOps, c.parseSimpleExpression)
}

var logicalOps = []string{"and", "or", "xor", "nand", "nor", "xnor"}
var relationalOps = []string{"=", "/=", "<=", ">=", "<", ">"}
var shiftOps = []string{"sll", "srl", "sla", "sra", "rol", "ror"}
var addingOps = []string{"+", "-", "&"}
var multiplyingOps = []string{"*", "/", "mod", "rem"}

func (c *cursor) parseBinaryLevel(level string, ops []string, next func() (cst.Node, error)) (cst.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	result := left
	for {
		op := c.matchAny(ops)
		if op == "" {
			return result, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		result = &cst.BinaryExpr{Level: level, Left: result, Op: op, Right: right}
	}
}

// parseSimpleExpression handles the optional leading sign and the
// left-associative +/-/& chain (spec §3.2).
func (c *cursor) parseSimpleExpression() (cst.Node, error) {
	sign := ""
	if c.is("+") || c.is("-") {
		sign = c.advance().Text
	}
	left, err := c.parseTerm()
	if err != nil {
		return nil, err
	}
	result := left
	for {
		op := c.matchAny(addingOps)
		if op == "" {
			break
		}
		right, err := c.parseTerm()
		if err != nil {
			return nil, err
		}
		result = &cst.BinaryExpr{Level: "simple_expression", Left: result, Op: op, Right: right}
	}
	if sign != "" {
		if be, ok := result.(*cst.BinaryExpr); ok && be.Level == "simple_expression" {
			be.Sign = sign
			return be, nil
		}
		return &cst.BinaryExpr{Level: "simple_expression", Sign: sign, Left: result}, nil
	}
	return result, nil
}

func (c *cursor) parseTerm() (cst.Node, error) {
	left, err := c.parseFactor()
	if err != nil {
		return nil, err
	}
	result := left
	for {
		op := c.matchAny(multiplyingOps)
		if op == "" {
			break
		}
		right, err := c.parseFactor()
		if err != nil {
			return nil, err
		}
		result = &cst.BinaryExpr{Level: "term", Left: result, Op: op, Right: right}
	}
	return result, nil
}

func (c *cursor) parseFactor() (cst.Node, error) {
	if c.is("abs") || c.is("not") {
		kw := strings.ToLower(c.advance().Text)
		operand, err := c.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &cst.Factor{Unary: kw, Left: operand}, nil
	}
	left, err := c.parsePrimary()
	if err != nil {
		return nil, err
	}
	if c.is("**") {
		c.advance()
		right, err := c.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &cst.Factor{Left: left, Pow: right}, nil
	}
	return left, nil
}

func (c *cursor) matchAny(ops []string) string {
	for _, op := range ops {
		if c.is(op) {
			return c.advance().Text
		}
	}
	return ""
}

// parsePrimary parses Primary ::= name | literal | aggregate | function_call
// | qualified_expression | allocator | '(' expression ')'. The name(expr)
// ambiguity (spec §4.1, §8 scenario 5) is resolved here, once a prefix name
// is followed by '('.
func (c *cursor) parsePrimary() (cst.Node, error) {
	switch {
	case c.cur().Kind == token.AbstractLiteral || c.cur().Kind == token.Based:
		return c.parseAbstractOrPhysicalLiteral()
	case c.cur().Kind == token.StringLiteral:
		tok := c.advance()
		return &cst.Primary{Inner: &cst.StringLiteralNode{Text: tok.Text}}, nil
	case c.cur().Kind == token.BitStringLiteral:
		return c.parseBitStringLiteral()
	case c.cur().Kind == token.CharacterLiteral:
		tok := c.advance()
		ch := rune(0)
		if len(tok.Text) > 0 {
			ch = []rune(tok.Text)[0]
		}
		return &cst.Primary{Inner: &cst.CharacterLiteral{Ch: ch}}, nil
	case c.is("null"):
		c.advance()
		return &cst.Primary{Inner: &cst.NullLiteral{}}, nil
	case c.is("new"):
		return c.parseAllocator()
	case c.is("("):
		return c.parseParenOrAggregate()
	case c.isIdent():
		return c.parseNameOrCall()
	default:
		return nil, c.failure([]string{"expression"})
	}
}

func (c *cursor) parseAbstractOrPhysicalLiteral() (cst.Node, error) {
	start := c.cur().Pos
	tok := c.advance()
	if c.isIdent() && !c.crossedNewline(tok) {
		unitTok := c.advance()
		end := c.cur().Pos
		pl := &cst.PhysicalLiteral{Abstract: tok.Text, Unit: &cst.Identifier{Text: unitTok.Text}}
		prim := &cst.Primary{Inner: pl}

		if !c.ambig {
			// Default resolve-at-parse-time behaviour (spec §6): a physical
			// literal is the only reading an abstract literal immediately
			// followed by an identifier can have in this subset's grammar
			// (spec §4.2's sole-alternative _ambig), so an unrecognised unit
			// leaves zero surviving derivations and is a parse failure.
			if !shaper.ValidTimeUnit(pl.Unit.Text) {
				return nil, c.failureRules([]string{"recognised time unit"}, []string{"physical_literal"})
			}
			return prim, nil
		}

		// spec §6's -a/--ambig path: route through the same forest._ambig
		// plus shaper.Shape machinery resolveNameCall uses for name(expr),
		// with a single candidate reading here since the unit is the only
		// alternative. markDeletablePhysicalLiterals decides whether it
		// survives collapse.
		ambig := forest.NewAmbig(forest.NewBuilt("physical_literal", prim, start, end))
		shaped, warnings := shaper.Shape(c.path, ambig)
		if shaped == nil {
			if len(warnings) > 0 {
				return nil, warnings[len(warnings)-1]
			}
			return nil, c.failureRules([]string{"recognised time unit"}, []string{"physical_literal"})
		}
		c.warnings = append(c.warnings, warnings...)
		return shaped.Built.(cst.Node), nil
	}
	return &cst.Primary{Inner: &cst.NumericLiteral{Text: tok.Text}}, nil
}

// crossedNewline always reports false: no line-based guard is applied, so
// an identifier directly following an abstract literal is always folded
// into a physical literal, whichever line it starts on.
func (c *cursor) crossedNewline(token.Token) bool { return false }

func (c *cursor) parseBitStringLiteral() (cst.Node, error) {
	tok := c.advance()
	prefix, digits := splitBitString(tok.Text)
	return &cst.Primary{Inner: &cst.BitStringLiteral{Prefix: prefix, Digits: digits}}, nil
}

func splitBitString(text string) (string, string) {
	i := strings.IndexByte(text, '"')
	if i < 0 {
		return "", text
	}
	prefix := text[:i]
	rest := strings.TrimSuffix(strings.TrimPrefix(text[i:], "\""), "\"")
	return prefix, rest
}

func (c *cursor) parseAllocator() (cst.Node, error) {
	c.advance() // new
	if c.isIdent() && c.isAt(1, "'") {
		qe, err := c.parseQualifiedExpressionFrom()
		if err != nil {
			return nil, err
		}
		return &cst.Primary{Inner: &cst.Allocator{Target: qe}}, nil
	}
	sub, err := c.parseSubtypeIndication()
	if err != nil {
		return nil, err
	}
	return &cst.Primary{Inner: &cst.Allocator{Target: sub}}, nil
}

func (c *cursor) parseParenOrAggregate() (cst.Node, error) {
	c.advance() // (
	first, err := c.parseElementAssociationOrExpr()
	if err != nil {
		return nil, err
	}
	if c.is(",") || isElementAssociation(first) {
		elems := []*cst.ElementAssociation{first}
		for c.is(",") {
			c.advance()
			next, err := c.parseElementAssociationOrExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, next)
		}
		if _, err := c.expect(")"); err != nil {
			return nil, err
		}
		return &cst.Primary{Inner: &cst.Aggregate{Elements: elems}}, nil
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	return &cst.Primary{Inner: first.Expression, Parenthesized: true}, nil
}

func isElementAssociation(e *cst.ElementAssociation) bool { return len(e.Choices) > 0 }

// parseElementAssociationOrExpr parses `[choices =>] expression`, used for
// both aggregate elements and the fully-parenthesized single-expression
// case (spec §3.2's Aggregate vs. parenthesized-Primary distinction).
func (c *cursor) parseElementAssociationOrExpr() (*cst.ElementAssociation, error) {
	if c.is("others") {
		c.advance()
		if _, err := c.expect("=>"); err != nil {
			return nil, err
		}
		expr, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		return &cst.ElementAssociation{Choices: []cst.Node{&cst.Raw{Text: "others"}}, Expression: expr}, nil
	}
	expr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if c.is("=>") {
		c.advance()
		value, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		return &cst.ElementAssociation{Choices: []cst.Node{expr}, Expression: value}, nil
	}
	if c.is("|") {
		choices := []cst.Node{expr}
		for c.is("|") {
			c.advance()
			alt, err := c.parseExpression()
			if err != nil {
				return nil, err
			}
			choices = append(choices, alt)
		}
		if _, err := c.expect("=>"); err != nil {
			return nil, err
		}
		value, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		return &cst.ElementAssociation{Choices: choices, Expression: value}, nil
	}
	return &cst.ElementAssociation{Expression: expr}, nil
}

// parseNameOrCall parses a name prefix and, when immediately followed by
// '(', resolves the function_call/indexed_name/slice_name ambiguity (spec
// §4.1, §4.2, §8 scenario 5).
func (c *cursor) parseNameOrCall() (cst.Node, error) {
	name, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	// Qualified expression: `type_mark ' ( ... )` or `type_mark ' aggregate`.
	// parseNameTail deliberately leaves a trailing `' (` unconsumed (it would
	// otherwise misread it as an attribute name), so it is handled here,
	// generally, rather than only under the `new` allocator form.
	if c.is("'") && c.isAt(1, "(") {
		c.advance()
		value, err := c.parseParenOrAggregate()
		if err != nil {
			return nil, err
		}
		return &cst.Primary{Inner: &cst.QualifiedExpression{Mark: unwrapName(name), Value: value}}, nil
	}
	return &cst.Primary{Inner: name}, nil
}

// parseNameTail consumes a basic identifier prefix (if prefix is nil) then
// any chain of '.', ''' and '(' suffixes.
func (c *cursor) parseNameTail(prefix cst.Node) (cst.Node, error) {
	if prefix == nil {
		tok := c.advance()
		prefix = &cst.Identifier{Text: tok.Text, Extended: tok.Kind == token.ExtendedIdentifier}
	}
	for {
		switch {
		case c.is("."):
			c.advance()
			if c.is("all") {
				c.advance()
				prefix = &cst.SelectedName{Prefix: prefix, All: true}
				continue
			}
			var suffix cst.Node
			if c.cur().Kind == token.CharacterLiteral {
				tok := c.advance()
				ch := rune(0)
				if len(tok.Text) > 0 {
					ch = []rune(tok.Text)[0]
				}
				suffix = &cst.CharacterLiteral{Ch: ch}
			} else if c.cur().Kind == token.StringLiteral {
				tok := c.advance()
				suffix = &cst.StringLiteralNode{Text: tok.Text}
			} else {
				tok := c.advance()
				suffix = &cst.Identifier{Text: tok.Text, Extended: tok.Kind == token.ExtendedIdentifier}
			}
			prefix = &cst.SelectedName{Prefix: prefix, Suffix: suffix}
		case c.is("'") && !c.isAt(1, "("):
			c.advance()
			tok := c.advance()
			prefix = &cst.AttributeName{Prefix: prefix, Designator: &cst.Identifier{Text: tok.Text}}
		case c.is("("):
			resolved, err := c.resolveNameCall(prefix)
			if err != nil {
				return nil, err
			}
			prefix = resolved
		default:
			return prefix, nil
		}
	}
}

// resolveNameCall implements spec §4.1/§4.2's name(expr) disambiguation:
// function_call, indexed_name and slice_name all match the identical
// `prefix ( ... )` span.
func (c *cursor) resolveNameCall(prefix cst.Node) (cst.Node, error) {
	start := c.cur().Pos
	c.advance() // (
	items, discrete, err := c.parseCallArguments()
	if err != nil {
		return nil, err
	}
	end := c.cur().Pos
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}

	fc := &cst.FunctionCall{Prefix: prefix, Args: &cst.AssociationList{Items: items}}
	var idx *cst.IndexedName
	if len(items) > 0 {
		indices := make([]cst.Node, len(items))
		for i, it := range items {
			indices[i] = it.Actual.Value
		}
		idx = &cst.IndexedName{Prefix: prefix, Indices: &cst.ExpressionList{Items: indices}}
	}
	var slice *cst.SliceName
	if discrete != nil {
		slice = &cst.SliceName{Prefix: prefix, Range: discrete}
	}

	if !c.ambig {
		// Default resolve-at-parse-time behaviour (spec §6): slice wins when
		// the argument is structurally a discrete range (bus slicing is by
		// far the common case this subset must get right without semantic
		// information); otherwise function_call is preferred over
		// indexed_name, per spec §8 scenario 5's own reasoning.
		if slice != nil {
			return slice, nil
		}
		return fc, nil
	}

	// A range-shaped argument is parsed only as a discrete range (fc then has
	// no arguments), so the slice reading is offered alone in that case.
	var alts []*forest.Node
	if slice == nil {
		alts = append(alts, forest.NewBuilt("function_call", fc, start, end))
	}
	if idx != nil {
		alts = append(alts, forest.NewBuilt("indexed_name", idx, start, end))
	}
	if slice != nil {
		alts = append(alts, forest.NewBuilt("slice_name", slice, start, end))
	}
	ambig := forest.NewAmbig(alts...)
	shaped, warnings := shaper.Shape(c.path, ambig)
	if shaped == nil {
		if len(warnings) > 0 {
			return nil, warnings[len(warnings)-1]
		}
		return nil, c.failureRules([]string{"function_call", "indexed_name", "slice_name"}, []string{"name"})
	}
	c.warnings = append(c.warnings, warnings...)
	return shaped.Built.(cst.Node), nil
}

// parseCallArguments parses the parenthesized content of a name(expr) form
// once: as a discrete range when it is shaped like one (the slice_name
// reading, returned with no association items), otherwise as an
// association list (the function_call/indexed_name reading).
func (c *cursor) parseCallArguments() ([]*cst.AssociationElement, *cst.DiscreteRange, error) {
	save := c.pos
	if dr, ok := c.tryParseDiscreteRange(); ok {
		rangeEnd := c.pos
		if c.is(")") {
			return nil, dr, nil
		}
		c.pos = rangeEnd
		_ = rangeEnd
	}
	c.pos = save

	var items []*cst.AssociationElement
	if c.is(")") {
		return items, nil, nil
	}
	for {
		elem, err := c.parseAssociationElement()
		if err != nil {
			return nil, nil, err
		}
		items = append(items, elem)
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	return items, nil, nil
}

// tryParseDiscreteRange speculatively parses a discrete_range, restoring
// position and reporting failure rather than propagating a parse error,
// since callers treat it as "is this argument range-shaped" probe.
func (c *cursor) tryParseDiscreteRange() (*cst.DiscreteRange, bool) {
	save := c.pos
	dr, err := c.parseDiscreteRange()
	if err != nil || !c.is(")") {
		c.pos = save
		return nil, false
	}
	return dr, true
}

func (c *cursor) parseDiscreteRange() (*cst.DiscreteRange, error) {
	left, err := c.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	if c.is("to") || c.is("downto") {
		dir := strings.ToLower(c.advance().Text)
		right, err := c.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
		return &cst.DiscreteRange{Inner: &cst.Range{Low: left, Direction: dir, High: right}}, nil
	}
	if attr, ok := left.(*cst.Primary); ok {
		if an, ok := attr.Inner.(*cst.AttributeName); ok && strings.EqualFold(an.Designator.Text, "range") {
			return &cst.DiscreteRange{Inner: &cst.Range{Attribute: an}}, nil
		}
	}
	return nil, c.failure([]string{"to", "downto"})
}

func (c *cursor) parseAssociationElement() (*cst.AssociationElement, error) {
	save := c.pos
	if c.isIdent() {
		name, err := c.parseNameTail(nil)
		if err == nil && c.is("=>") {
			c.advance()
			actual, err := c.parseActualPart()
			if err != nil {
				return nil, err
			}
			return &cst.AssociationElement{Formal: &cst.FormalPart{Value: name}, Actual: actual}, nil
		}
	}
	c.pos = save
	if c.is("open") {
		c.advance()
		return &cst.AssociationElement{Actual: &cst.ActualPart{Open: true}}, nil
	}
	expr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &cst.AssociationElement{Actual: &cst.ActualPart{Value: expr}}, nil
}

func (c *cursor) parseActualPart() (*cst.ActualPart, error) {
	if c.is("open") {
		c.advance()
		return &cst.ActualPart{Open: true}, nil
	}
	expr, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	return &cst.ActualPart{Value: expr}, nil
}

func (c *cursor) parseAssociationList() (*cst.AssociationList, error) {
	if _, err := c.expect("("); err != nil {
		return nil, err
	}
	var items []*cst.AssociationElement
	for {
		elem, err := c.parseAssociationElement()
		if err != nil {
			return nil, err
		}
		items = append(items, elem)
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	return &cst.AssociationList{Items: items}, nil
}

func (c *cursor) parseQualifiedExpressionFrom() (cst.Node, error) {
	tok := c.advance()
	mark := cst.Node(&cst.Identifier{Text: tok.Text})
	if _, err := c.expect("'"); err != nil {
		return nil, err
	}
	if c.is("(") {
		value, err := c.parseParenOrAggregate()
		if err != nil {
			return nil, err
		}
		return &cst.QualifiedExpression{Mark: mark, Value: value}, nil
	}
	return nil, c.failure([]string{"("})
}
