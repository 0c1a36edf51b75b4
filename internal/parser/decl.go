package parser

import (
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
)

func (c *cursor) parseIdentifierList() ([]*cst.Identifier, error) {
	var ids []*cst.Identifier
	for {
		if !c.isIdent() {
			return nil, c.failure([]string{"identifier"})
		}
		tok := c.advance()
		ids = append(ids, &cst.Identifier{Text: tok.Text, Extended: tok.Kind == token.ExtendedIdentifier})
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	return ids, nil
}

func (c *cursor) parseTypeMark() (*cst.TypeMark, error) {
	name, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	return &cst.TypeMark{Name: unwrapName(name)}, nil
}

// unwrapName strips the Primary wrapper parseNameTail never produces for a
// bare name prefix but parsePrimary does for one used as an expression; used
// where a name is required, not a full primary.
func unwrapName(n cst.Node) cst.Node {
	if p, ok := n.(*cst.Primary); ok && !p.Parenthesized {
		return p.Inner
	}
	return n
}

func (c *cursor) parseSubtypeIndication() (*cst.SubtypeIndication, error) {
	var resolution *cst.ResolutionIndication
	if c.isIdent() && !c.isAt(1, ".") && c.identLooksLikeResolutionFunc() {
		tok := c.advance()
		resolution = &cst.ResolutionIndication{Name: &cst.Identifier{Text: tok.Text}}
	}
	mark, err := c.parseTypeMark()
	if err != nil {
		return nil, err
	}
	var constraint cst.Node
	if c.is("(") {
		constraint, err = c.parseConstraint()
		if err != nil {
			return nil, err
		}
	} else if c.is("range") {
		c.advance()
		rng, err := c.parseRange()
		if err != nil {
			return nil, err
		}
		constraint = &cst.RangeConstraint{Range: rng}
	}
	return &cst.SubtypeIndication{Resolution: resolution, Mark: mark, Constraint: constraint}, nil
}

// identLooksLikeResolutionFunc is a conservative heuristic: a resolution
// indication is just an identifier directly followed by another identifier
// (the type mark), so only treat the first as a resolution function when a
// second identifier immediately follows.
func (c *cursor) identLooksLikeResolutionFunc() bool {
	next := c.peekAt(1)
	return next.Kind == token.Identifier || next.Kind == token.ExtendedIdentifier
}

func (c *cursor) parseRange() (*cst.Range, error) {
	left, err := c.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	if attr, ok := left.(*cst.Primary); ok {
		if an, ok := attr.Inner.(*cst.AttributeName); ok && strings.EqualFold(an.Designator.Text, "range") {
			return &cst.Range{Attribute: an}, nil
		}
	}
	dir := ""
	if c.is("to") || c.is("downto") {
		dir = strings.ToLower(c.advance().Text)
	} else {
		return nil, c.failure([]string{"to", "downto"})
	}
	right, err := c.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	return &cst.Range{Low: left, Direction: dir, High: right}, nil
}

func (c *cursor) parseConstraint() (cst.Node, error) {
	c.advance() // (
	var ranges []*cst.DiscreteRange
	for {
		dr, err := c.parseDiscreteRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	idx := &cst.IndexConstraint{Ranges: ranges}
	if c.is("(") {
		elem, err := c.parseConstraint()
		if err != nil {
			return nil, err
		}
		return &cst.ArrayConstraint{Index: idx, Element: elem}, nil
	}
	return idx, nil
}

// parseTypeDefinition parses the type_definition alternatives this subset
// supports (spec §3.2's "types" group): enumeration, record, array, access,
// file, protected (declaration and body kept as raw text),
// or a subtype-indication-shaped constrained/unconstrained scalar/physical
// definition expressed just as a range (integer/real types).
func (c *cursor) parseTypeDefinition() (cst.Node, error) {
	switch {
	case c.is("("):
		c.advance()
		var lits []cst.Node
		for {
			if c.cur().Kind == token.CharacterLiteral {
				tok := c.advance()
				ch := rune(0)
				if len(tok.Text) > 0 {
					ch = []rune(tok.Text)[0]
				}
				lits = append(lits, &cst.CharacterLiteral{Ch: ch})
			} else {
				tok := c.advance()
				lits = append(lits, &cst.Identifier{Text: tok.Text})
			}
			if c.is(",") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect(")"); err != nil {
			return nil, err
		}
		return &cst.EnumerationTypeDefinition{Literals: lits}, nil

	case c.is("range"):
		c.advance()
		rng, err := c.parseRange()
		if err != nil {
			return nil, err
		}
		if c.is("units") {
			// physical type definition: base range plus primary/secondary
			// unit declarations. The unit declarations are skipped and not
			// kept in the tree; the base range is the part entity/package
			// declarations actually consume.
			c.advance()
			for !c.is("end") {
				c.advance()
			}
			c.advance() // end
			c.advance() // units
			return &cst.RangeConstraint{Range: rng}, nil
		}
		return &cst.RangeConstraint{Range: rng}, nil

	case c.is("array"):
		return c.parseArrayTypeDefinition()

	case c.is("record"):
		return c.parseRecordTypeDefinition()

	case c.is("access"):
		c.advance()
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		return &cst.AccessTypeDefinition{Designated: sub}, nil

	case c.is("file"):
		c.advance()
		if _, err := c.expect("of"); err != nil {
			return nil, err
		}
		mark, err := c.parseTypeMark()
		if err != nil {
			return nil, err
		}
		return &cst.FileTypeDefinition{Of: mark}, nil

	case c.is("protected"):
		return c.parseProtectedType()

	default:
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		return sub, nil
	}
}

func (c *cursor) parseArrayTypeDefinition() (cst.Node, error) {
	c.advance() // array
	if _, err := c.expect("("); err != nil {
		return nil, err
	}
	// Disambiguate unconstrained (`type_mark range <>`) vs. constrained
	// (`discrete_range`) index forms by probing for the `range <>` suffix.
	if c.isIdent() {
		save := c.pos
		mark, err := c.parseTypeMark()
		if err == nil && c.is("range") && c.isAt(1, "<>") {
			c.advance()
			c.advance()
			marks := []*cst.TypeMark{mark}
			for c.is(",") {
				c.advance()
				m, err := c.parseTypeMark()
				if err != nil {
					return nil, err
				}
				if _, err := c.expect("range"); err != nil {
					return nil, err
				}
				if _, err := c.expect("<>"); err != nil {
					return nil, err
				}
				marks = append(marks, m)
			}
			if _, err := c.expect(")"); err != nil {
				return nil, err
			}
			if _, err := c.expect("of"); err != nil {
				return nil, err
			}
			elem, err := c.parseSubtypeIndication()
			if err != nil {
				return nil, err
			}
			return &cst.ArrayTypeDefinition{Unconstrained: true, IndexTypes: marks, Element: elem}, nil
		}
		c.pos = save
	}
	var ranges []*cst.DiscreteRange
	for {
		dr, err := c.parseDiscreteRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	if _, err := c.expect("of"); err != nil {
		return nil, err
	}
	elem, err := c.parseSubtypeIndication()
	if err != nil {
		return nil, err
	}
	return &cst.ArrayTypeDefinition{Constraint: &cst.IndexConstraint{Ranges: ranges}, Element: elem}, nil
}

func (c *cursor) parseRecordTypeDefinition() (cst.Node, error) {
	c.advance() // record
	var elems []*cst.ElementDeclaration
	for !c.is("end") {
		ids, err := c.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(":"); err != nil {
			return nil, err
		}
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		elems = append(elems, &cst.ElementDeclaration{Identifiers: ids, Subtype: sub})
	}
	c.advance() // end
	if _, err := c.expect("record"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	return &cst.RecordTypeDefinition{Elements: elems}, nil
}

// parseProtectedType captures a protected type declaration or body as raw
// text: full method-table parsing is out of scope for this subset (spec
// §3.2's closed node-kind family still names ProtectedTypeDeclaration and
// ProtectedTypeBody).
func (c *cursor) parseProtectedType() (cst.Node, error) {
	c.advance() // protected
	isBody := false
	if c.is("body") {
		c.advance()
		isBody = true
	}
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		if c.atEOF() {
			return nil, c.failure([]string{"end"})
		}
		if c.is("protected") {
			depth++
		}
		if c.is("end") && c.isAt(1, "protected") {
			depth--
			if depth == 0 {
				c.advance() // end
				c.advance() // protected
				if isBody && c.is("body") {
					c.advance()
				}
				c.skipOptionalTrailingIdent()
				break
			}
		}
		sb.WriteString(" ")
		sb.WriteString(c.advance().Text)
	}
	if isBody {
		return &cst.ProtectedTypeBody{RawBody: sb.String()}, nil
	}
	return &cst.ProtectedTypeDeclaration{RawBody: sb.String()}, nil
}

func (c *cursor) skipOptionalTrailingIdent() {
	if c.isIdent() {
		c.advance()
	}
}

// parseInterfaceElement parses one element of a generic or port list (spec
// §3.2's "interfaces" group).
func (c *cursor) parseInterfaceElement(isGeneric bool) (cst.InterfaceElement, error) {
	switch {
	case c.is("constant"):
		c.advance()
		ids, err := c.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(":"); err != nil {
			return nil, err
		}
		c.matchMode()
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		def, err := c.parseOptionalDefault()
		if err != nil {
			return nil, err
		}
		return &cst.InterfaceConstantDeclaration{Explicit: true, IdentifierList: ids, SubtypeIndication: sub, Default: def}, nil

	case c.is("signal"):
		c.advance()
		return c.parseInterfaceSignalTail()

	case c.is("variable"):
		c.advance()
		ids, err := c.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(":"); err != nil {
			return nil, err
		}
		mode := c.matchMode()
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		def, err := c.parseOptionalDefault()
		if err != nil {
			return nil, err
		}
		return &cst.InterfaceVariableDeclaration{IdentifierList: ids, Mode: mode, SubtypeIndication: sub, Default: def}, nil

	case c.is("file"):
		c.advance()
		ids, err := c.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(":"); err != nil {
			return nil, err
		}
		sub, err := c.parseSubtypeIndication()
		if err != nil {
			return nil, err
		}
		return &cst.InterfaceFileDeclaration{IdentifierList: ids, SubtypeIndication: sub}, nil

	case c.is("type"):
		c.advance()
		tok := c.advance()
		return &cst.InterfaceIncompleteTypeDeclaration{Identifier: &cst.Identifier{Text: tok.Text}}, nil

	case c.is("function") || c.is("procedure"):
		return c.parseInterfaceSubprogram()

	case c.is("package"):
		return c.parseInterfacePackage()

	default:
		// Generics default to constant-class, ports to signal-class, per
		// VHDL's interface_element defaulting rule.
		if isGeneric {
			ids, err := c.parseIdentifierList()
			if err != nil {
				return nil, err
			}
			if _, err := c.expect(":"); err != nil {
				return nil, err
			}
			c.matchMode()
			sub, err := c.parseSubtypeIndication()
			if err != nil {
				return nil, err
			}
			def, err := c.parseOptionalDefault()
			if err != nil {
				return nil, err
			}
			return &cst.InterfaceConstantDeclaration{IdentifierList: ids, SubtypeIndication: sub, Default: def}, nil
		}
		return c.parseInterfaceSignalTail()
	}
}

func (c *cursor) parseInterfaceSignalTail() (cst.InterfaceElement, error) {
	ids, err := c.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(":"); err != nil {
		return nil, err
	}
	mode := c.matchMode()
	sub, err := c.parseSubtypeIndication()
	if err != nil {
		return nil, err
	}
	bus := false
	if c.is("bus") {
		c.advance()
		bus = true
	}
	def, err := c.parseOptionalDefault()
	if err != nil {
		return nil, err
	}
	return &cst.InterfaceSignalDeclaration{IdentifierList: ids, Mode: mode, SubtypeIndication: sub, Bus: bus, Default: def}, nil
}

func (c *cursor) matchMode() string {
	for _, m := range []string{"in", "out", "inout", "buffer", "linkage"} {
		if c.is(m) {
			c.advance()
			return m
		}
	}
	return ""
}

func (c *cursor) parseOptionalDefault() (cst.Node, error) {
	if !c.is(":=") {
		return nil, nil
	}
	c.advance()
	return c.parseExpression()
}

func (c *cursor) parseInterfaceSubprogram() (cst.InterfaceElement, error) {
	var sb strings.Builder
	for !c.is("is") && !c.is(";") && !c.is(")") {
		sb.WriteString(c.advance().Text)
		sb.WriteString(" ")
	}
	spec := &cst.Raw{Text: strings.TrimSpace(sb.String())}
	var def cst.Node
	if c.is("is") {
		c.advance()
		if c.is("<>") {
			c.advance()
			def = &cst.Raw{Text: "<>"}
		} else {
			name, err := c.parseNameTail(nil)
			if err != nil {
				return nil, err
			}
			def = unwrapName(name)
		}
	}
	return &cst.InterfaceSubprogramDeclaration{Specification: spec, Default: def}, nil
}

func (c *cursor) parseInterfacePackage() (cst.InterfaceElement, error) {
	c.advance() // package
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	if _, err := c.expect("new"); err != nil {
		return nil, err
	}
	uninst, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	var gm *cst.GenericMapAspect
	if c.is("generic") {
		c.advance()
		if _, err := c.expect("map"); err != nil {
			return nil, err
		}
		assoc, err := c.parseAssociationList()
		if err != nil {
			return nil, err
		}
		gm = &cst.GenericMapAspect{Associations: assoc}
	}
	return &cst.InterfacePackageDeclaration{Identifier: id, UninstantiatedPackage: unwrapName(uninst), GenericMap: gm}, nil
}

func (c *cursor) parseGenericClause() (*cst.GenericClause, error) {
	c.advance() // generic
	if _, err := c.expect("("); err != nil {
		return nil, err
	}
	var elems []cst.InterfaceElement
	for {
		el, err := c.parseInterfaceElement(true)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if c.is(";") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.GenericClause{Elements: elems}, nil
}

func (c *cursor) parsePortClause() (*cst.PortClause, error) {
	c.advance() // port
	if _, err := c.expect("("); err != nil {
		return nil, err
	}
	var elems []cst.InterfaceElement
	for {
		el, err := c.parseInterfaceElement(false)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if c.is(";") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(")"); err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.PortClause{Elements: elems}, nil
}

func (c *cursor) parseGenericMapAspect() (*cst.GenericMapAspect, error) {
	c.advance() // generic
	if _, err := c.expect("map"); err != nil {
		return nil, err
	}
	assoc, err := c.parseAssociationList()
	if err != nil {
		return nil, err
	}
	return &cst.GenericMapAspect{Associations: assoc}, nil
}

func (c *cursor) parsePortMapAspect() (*cst.PortMapAspect, error) {
	c.advance() // port
	if _, err := c.expect("map"); err != nil {
		return nil, err
	}
	assoc, err := c.parseAssociationList()
	if err != nil {
		return nil, err
	}
	return &cst.PortMapAspect{Associations: assoc}, nil
}
