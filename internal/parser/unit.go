package parser

import (
	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
)

// parseDesignFile parses the whole token stream as design_unit+ (spec §4.4).
func (c *cursor) parseDesignFile() (*cst.DesignFile, error) {
	var units []*cst.DesignUnit
	for !c.atEOF() {
		u, err := c.parseDesignUnit()
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return &cst.DesignFile{Units: units}, nil
}

func (c *cursor) parseDesignUnit() (*cst.DesignUnit, error) {
	ctx, err := c.parseContextClause()
	if err != nil {
		return nil, err
	}
	unit, err := c.parseLibraryUnit()
	if err != nil {
		return nil, err
	}
	return &cst.DesignUnit{Context: ctx, Unit: unit}, nil
}

// parseContextClause parses the library/use clause run preceding a library
// unit. It is always present in the node (possibly empty) rather than nil,
// matching spec §4.4's "one node per design unit" shape.
func (c *cursor) parseContextClause() (*cst.ContextClause, error) {
	var items []cst.Node
	for c.is("library") || c.is("use") {
		if c.is("library") {
			c.advance()
			ids, err := c.parseIdentifierList()
			if err != nil {
				return nil, err
			}
			if _, err := c.expect(";"); err != nil {
				return nil, err
			}
			items = append(items, &cst.LibraryClause{Names: ids})
			continue
		}
		c.advance() // use
		var names []cst.Node
		for {
			name, err := c.parseNameTail(nil)
			if err != nil {
				return nil, err
			}
			names = append(names, unwrapName(name))
			if c.is(",") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		items = append(items, &cst.UseClause{Names: names})
	}
	return &cst.ContextClause{Items: items}, nil
}

func (c *cursor) parseLibraryUnit() (cst.LibraryUnit, error) {
	switch {
	case c.is("entity"):
		return c.parseEntityDeclaration()
	case c.is("architecture"):
		return c.parseArchitectureBody()
	case c.is("package") && c.isAt(1, "body"):
		return c.parsePackageBody()
	case c.is("package") && c.isAt(2, "is") && c.isAt(3, "new"):
		return c.parsePackageInstantiation()
	case c.is("package"):
		return c.parsePackageDeclaration()
	case c.is("context"):
		return c.parseContextDeclaration()
	default:
		return nil, c.failureRules(
			[]string{"entity", "architecture", "package", "context"},
			[]string{"library_unit"})
	}
}

func (c *cursor) parseEntityDeclaration() (*cst.EntityDeclaration, error) {
	c.advance() // entity
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	header, err := c.parseEntityHeader()
	if err != nil {
		return nil, err
	}
	decls, err := c.parseDeclarativePart("begin", "end")
	if err != nil {
		return nil, err
	}
	var stmts []cst.ConcurrentStatement
	if c.is("begin") {
		c.advance()
		stmts, err = c.parseConcurrentStatements("end")
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("entity") {
		c.advance()
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.EntityDeclaration{Identifier: id, Header: header, Declarations: decls, Statements: stmts}, nil
}

func (c *cursor) parseEntityHeader() (*cst.EntityHeader, error) {
	h := &cst.EntityHeader{}
	var err error
	if c.is("generic") {
		h.Generics, err = c.parseGenericClause()
		if err != nil {
			return nil, err
		}
	}
	if c.is("port") {
		h.Ports, err = c.parsePortClause()
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (c *cursor) parseArchitectureBody() (*cst.ArchitectureBody, error) {
	c.advance() // architecture
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("of"); err != nil {
		return nil, err
	}
	entName, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	decls, err := c.parseDeclarativePart("begin")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("begin"); err != nil {
		return nil, err
	}
	stmts, err := c.parseConcurrentStatements("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("architecture") {
		c.advance()
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ArchitectureBody{Identifier: id, EntityName: unwrapName(entName), Declarations: decls, Statements: stmts}, nil
}

func (c *cursor) parsePackageDeclaration() (*cst.PackageDeclaration, error) {
	c.advance() // package
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	var header *cst.PackageHeader
	if c.is("generic") {
		gens, err := c.parseGenericClause()
		if err != nil {
			return nil, err
		}
		header = &cst.PackageHeader{Generics: gens}
	}
	decls, err := c.parseDeclarativePart("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("package") {
		c.advance()
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.PackageDeclaration{Identifier: id, Header: header, Declarations: decls}, nil
}

func (c *cursor) parsePackageBody() (*cst.PackageBody, error) {
	c.advance() // package
	c.advance() // body
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	decls, err := c.parseDeclarativePart("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("package") {
		c.advance()
		if c.is("body") {
			c.advance()
		}
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.PackageBody{Identifier: id, Declarations: decls}, nil
}

func (c *cursor) parsePackageInstantiation() (*cst.PackageInstantiationDeclaration, error) {
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
		gm, err = c.parseGenericMapAspect()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.PackageInstantiationDeclaration{Identifier: id, UninstantiatedPackage: unwrapName(uninst), GenericMap: gm}, nil
}

func (c *cursor) parseContextDeclaration() (*cst.ContextDeclaration, error) {
	c.advance() // context
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	ctx, err := c.parseContextClause()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("context") {
		c.advance()
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ContextDeclaration{Identifier: id, Items: ctx.Items}, nil
}

func (c *cursor) parseComponentDeclaration() (*cst.ComponentDeclaration, error) {
	c.advance() // component
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if c.is("is") {
		c.advance()
	}
	comp := &cst.ComponentDeclaration{Identifier: id}
	var err error
	if c.is("generic") {
		comp.Generics, err = c.parseGenericClause()
		if err != nil {
			return nil, err
		}
	}
	if c.is("port") {
		comp.Ports, err = c.parsePortClause()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("component"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return comp, nil
}

// parseDeclarativePart parses a run of declarative items up to (but not
// consuming) any of the given terminator keywords — shared by entity,
// architecture, package, package body, process, subprogram and block
// declarative parts (spec §3.2's "declarations" group).
func (c *cursor) parseDeclarativePart(terms ...string) ([]cst.Node, error) {
	var items []cst.Node
	for !c.atTerminator(terms) {
		item, err := c.parseDeclarativeItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *cursor) parseDeclarativeItem() (cst.Node, error) {
	switch {
	case c.is("type"):
		return c.parseTypeDeclaration()
	case c.is("subtype"):
		return c.parseSubtypeDeclaration()
	case c.is("constant"):
		return c.parseConstantDeclaration()
	case c.is("signal"):
		return c.parseSignalDeclaration()
	case c.is("variable") || (c.is("shared") && c.isAt(1, "variable")):
		return c.parseVariableDeclaration()
	case c.is("file"):
		return c.parseFileDeclaration()
	case c.is("component"):
		return c.parseComponentDeclaration()
	case c.is("function") || c.is("procedure") || (c.is("impure") && c.isAt(1, "function")) || (c.is("pure") && c.isAt(1, "function")):
		return c.parseSubprogram()
	case c.is("package") && c.isAt(2, "is") && c.isAt(3, "new"):
		return c.parsePackageInstantiation()
	case c.is("package") && c.isAt(1, "body"):
		return c.parsePackageBody()
	case c.is("package"):
		return c.parsePackageDeclaration()
	case c.is("library"):
		c.advance()
		ids, err := c.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.LibraryClause{Names: ids}, nil
	case c.is("use"):
		c.advance()
		var names []cst.Node
		for {
			name, err := c.parseNameTail(nil)
			if err != nil {
				return nil, err
			}
			names = append(names, unwrapName(name))
			if c.is(",") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.UseClause{Names: names}, nil
	default:
		return nil, c.failureRules(
			[]string{"type", "subtype", "constant", "signal", "variable", "file", "component", "function", "procedure", "package", "library", "use"},
			[]string{"declarative_item"})
	}
}

func (c *cursor) parseTypeDeclaration() (cst.Node, error) {
	c.advance() // type
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if c.is(";") {
		c.advance()
		return &cst.IncompleteTypeDeclaration{Identifier: id}, nil
	}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	def, err := c.parseTypeDefinition()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.FullTypeDeclaration{Identifier: id, Definition: def}, nil
}

func (c *cursor) parseSubtypeDeclaration() (cst.Node, error) {
	c.advance() // subtype
	tok := c.advance()
	id := &cst.Identifier{Text: tok.Text}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	sub, err := c.parseSubtypeIndication()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.SubtypeDeclaration{Identifier: id, Subtype: sub}, nil
}

func (c *cursor) parseConstantDeclaration() (cst.Node, error) {
	c.advance() // constant
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
	var def cst.Node
	if c.is(":=") {
		c.advance()
		def, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ConstantDeclaration{IdentifierList: ids, Subtype: sub, Default: def}, nil
}

func (c *cursor) parseSignalDeclaration() (cst.Node, error) {
	c.advance() // signal
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
	kind := ""
	if c.is("bus") || c.is("register") {
		kind = c.advance().Text
	}
	var def cst.Node
	if c.is(":=") {
		c.advance()
		def, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.SignalDeclaration{IdentifierList: ids, Subtype: sub, Kind: kind, Default: def}, nil
}

func (c *cursor) parseVariableDeclaration() (cst.Node, error) {
	shared := false
	if c.is("shared") {
		c.advance()
		shared = true
	}
	c.advance() // variable
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
	var def cst.Node
	if c.is(":=") {
		c.advance()
		def, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.VariableDeclaration{Shared: shared, IdentifierList: ids, Subtype: sub, Default: def}, nil
}

func (c *cursor) parseFileDeclaration() (cst.Node, error) {
	c.advance() // file
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
	var open *cst.FileOpenInfo
	if c.is("open") || c.is("is") {
		open = &cst.FileOpenInfo{}
		if c.is("open") {
			c.advance()
			open.Mode, err = c.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if c.is("is") {
			c.advance()
			open.LogicalName, err = c.parseExpression()
			if err != nil {
				return nil, err
			}
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.FileDeclaration{IdentifierList: ids, Subtype: sub, OpenInfo: open}, nil
}

func (c *cursor) parseSubprogram() (cst.Node, error) {
	spec, err := c.parseSubprogramSpecification()
	if err != nil {
		return nil, err
	}
	if c.is(";") {
		c.advance()
		return &cst.SubprogramDeclaration{Specification: spec}, nil
	}
	if c.is("is") && c.isAt(1, "new") {
		c.advance() // is
		c.advance() // new
		uninst, err := c.parseNameTail(nil)
		if err != nil {
			return nil, err
		}
		var gm *cst.GenericMapAspect
		if c.is("generic") {
			gm, err = c.parseGenericMapAspect()
			if err != nil {
				return nil, err
			}
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.SubprogramInstantiationDeclaration{
			IsFunction:               spec.IsFunction,
			Identifier:               identOf(spec.Designator),
			UninstantiatedSubprogram: unwrapName(uninst),
			GenericMap:               gm,
		}, nil
	}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	decls, err := c.parseDeclarativePart("begin")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("begin"); err != nil {
		return nil, err
	}
	stmts, err := c.parseSequenceOfStatements("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if c.is("function") || c.is("procedure") {
		c.advance()
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.SubprogramBody{Specification: spec, Declarations: decls, Statements: stmts}, nil
}

func identOf(n cst.Node) *cst.Identifier {
	if id, ok := n.(*cst.Identifier); ok {
		return id
	}
	return nil
}

func (c *cursor) parseSubprogramSpecification() (*cst.SubprogramSpecification, error) {
	if c.is("impure") || c.is("pure") {
		c.advance()
	}
	isFunction := c.is("function")
	c.advance() // function | procedure
	var designator cst.Node
	if c.cur().Kind == token.StringLiteral {
		tok := c.advance()
		designator = &cst.StringLiteralNode{Text: tok.Text}
	} else {
		tok := c.advance()
		designator = &cst.Identifier{Text: tok.Text}
	}
	spec := &cst.SubprogramSpecification{IsFunction: isFunction, Designator: designator}
	if c.is("(") {
		c.advance()
		for {
			el, err := c.parseInterfaceElement(false)
			if err != nil {
				return nil, err
			}
			spec.Parameters = append(spec.Parameters, el)
			if c.is(";") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect(")"); err != nil {
			return nil, err
		}
	}
	if isFunction {
		if _, err := c.expect("return"); err != nil {
			return nil, err
		}
		rt, err := c.parseTypeMark()
		if err != nil {
			return nil, err
		}
		spec.ReturnType = rt
	}
	return spec, nil
}
