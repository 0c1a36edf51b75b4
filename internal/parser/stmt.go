package parser

import (
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
)

// parseOptionalLabel consumes a leading `identifier :` label, used by every
// statement form spec §3.2's "statements" group allows one on.
func (c *cursor) parseOptionalLabel() *cst.Identifier {
	if c.isIdent() && c.isAt(1, ":") && !c.isAt(1, ":=") {
		tok := c.advance()
		c.advance() // :
		return &cst.Identifier{Text: tok.Text}
	}
	return nil
}

func (c *cursor) parseSequenceOfStatements(terminators ...string) ([]cst.SequentialStatement, error) {
	var stmts []cst.SequentialStatement
	for !c.atTerminator(terminators) {
		stmt, err := c.parseSequentialStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (c *cursor) atTerminator(terms []string) bool {
	if c.atEOF() {
		return true
	}
	for _, t := range terms {
		if c.is(t) {
			return true
		}
	}
	return false
}

func (c *cursor) parseSequentialStatement() (cst.SequentialStatement, error) {
	label := c.parseOptionalLabel()
	switch {
	case c.is("wait"):
		return c.parseWaitStatement()
	case c.is("assert"):
		return c.parseAssertionStatement(label)
	case c.is("report"):
		return c.parseReportStatement(label)
	case c.is("if"):
		return c.parseIfStatement(label)
	case c.is("case"):
		return c.parseCaseStatement(label)
	case c.is("for") || c.is("while") || c.is("loop"):
		return c.parseLoopStatement(label)
	case c.is("next"):
		return c.parseNextStatement()
	case c.is("exit"):
		return c.parseExitStatement()
	case c.is("return"):
		return c.parseReturnStatement()
	case c.is("null"):
		c.advance()
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.NullStatement{}, nil
	default:
		return c.parseAssignmentOrCall(label)
	}
}

func (c *cursor) parseWaitStatement() (cst.SequentialStatement, error) {
	c.advance() // wait
	var sens []cst.Node
	var cond, timeout cst.Node
	var err error
	if c.is("on") {
		c.advance()
		for {
			name, e := c.parseNameTail(nil)
			if e != nil {
				return nil, e
			}
			sens = append(sens, unwrapName(name))
			if c.is(",") {
				c.advance()
				continue
			}
			break
		}
	}
	if c.is("until") {
		c.advance()
		cond, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if c.is("for") {
		c.advance()
		timeout, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.WaitStatement{SensitivityList: sens, Condition: cond, Timeout: timeout}, nil
}

func (c *cursor) parseAssertionStatement(label *cst.Identifier) (cst.SequentialStatement, error) {
	c.advance() // assert
	cond, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	report, severity, err := c.parseReportSeverityTail()
	if err != nil {
		return nil, err
	}
	return &cst.AssertionStatement{Label: label, Condition: cond, Report: report, Severity: severity}, nil
}

func (c *cursor) parseReportStatement(label *cst.Identifier) (cst.SequentialStatement, error) {
	c.advance() // report
	report, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	var severity cst.Node
	if c.is("severity") {
		c.advance()
		severity, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ReportStatement{Label: label, Report: report, Severity: severity}, nil
}

func (c *cursor) parseReportSeverityTail() (cst.Node, cst.Node, error) {
	var report, severity cst.Node
	var err error
	if c.is("report") {
		c.advance()
		report, err = c.parseExpression()
		if err != nil {
			return nil, nil, err
		}
	}
	if c.is("severity") {
		c.advance()
		severity, err = c.parseExpression()
		if err != nil {
			return nil, nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, nil, err
	}
	return report, severity, nil
}

func (c *cursor) parseIfStatement(label *cst.Identifier) (cst.SequentialStatement, error) {
	c.advance() // if
	cond, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("then"); err != nil {
		return nil, err
	}
	then, err := c.parseSequenceOfStatements("elsif", "else", "end")
	if err != nil {
		return nil, err
	}
	var elsifs []*cst.IfBranch
	for c.is("elsif") {
		c.advance()
		econd, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect("then"); err != nil {
			return nil, err
		}
		ebody, err := c.parseSequenceOfStatements("elsif", "else", "end")
		if err != nil {
			return nil, err
		}
		elsifs = append(elsifs, &cst.IfBranch{Condition: econd, Body: ebody})
	}
	var elseBranch *cst.IfBranch
	if c.is("else") {
		c.advance()
		ebody, err := c.parseSequenceOfStatements("end")
		if err != nil {
			return nil, err
		}
		elseBranch = &cst.IfBranch{Body: ebody}
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("if"); err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.IfStatement{Label: label, Condition: cond, Then: then, Elsifs: elsifs, Else: elseBranch}, nil
}

func (c *cursor) parseCaseStatement(label *cst.Identifier) (cst.SequentialStatement, error) {
	c.advance() // case
	selector, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("is"); err != nil {
		return nil, err
	}
	var alts []*cst.CaseAlternative
	for c.is("when") {
		c.advance()
		var choices []cst.Node
		for {
			if c.is("others") {
				c.advance()
				choices = append(choices, &cst.Raw{Text: "others"})
			} else {
				ch, err := c.parseChoiceValue()
				if err != nil {
					return nil, err
				}
				choices = append(choices, ch)
			}
			if c.is("|") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect("=>"); err != nil {
			return nil, err
		}
		body, err := c.parseSequenceOfStatements("when", "end")
		if err != nil {
			return nil, err
		}
		alts = append(alts, &cst.CaseAlternative{Choices: choices, Body: body})
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("case"); err != nil {
		return nil, err
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.CaseStatement{Label: label, Selector: selector, Alternatives: alts}, nil
}

// parseChoiceValue parses one `when` choice, which may be a single
// expression or a discrete range (e.g. `when 1 to 3 =>`).
func (c *cursor) parseChoiceValue() (cst.Node, error) {
	save := c.pos
	if dr, ok := c.tryParseChoiceRange(); ok {
		return dr, nil
	}
	c.pos = save
	return c.parseExpression()
}

func (c *cursor) tryParseChoiceRange() (*cst.DiscreteRange, bool) {
	save := c.pos
	dr, err := c.parseDiscreteRange()
	if err != nil || !(c.is("|") || c.is("=>")) {
		c.pos = save
		return nil, false
	}
	return dr, true
}

func (c *cursor) parseLoopStatement(label *cst.Identifier) (cst.SequentialStatement, error) {
	var scheme *cst.IterationScheme
	if c.is("while") {
		c.advance()
		cond, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		scheme = &cst.IterationScheme{While: cond}
	} else if c.is("for") {
		c.advance()
		tok := c.advance()
		if _, err := c.expect("in"); err != nil {
			return nil, err
		}
		dr, err := c.parseDiscreteRange()
		if err != nil {
			return nil, err
		}
		scheme = &cst.IterationScheme{ForVar: &cst.Identifier{Text: tok.Text}, ForRange: dr}
	}
	if _, err := c.expect("loop"); err != nil {
		return nil, err
	}
	body, err := c.parseSequenceOfStatements("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("loop"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.LoopStatement{Label: label, Scheme: scheme, Body: body}, nil
}

func (c *cursor) parseNextStatement() (cst.SequentialStatement, error) {
	c.advance() // next
	var loopLabel *cst.Identifier
	if c.isIdent() {
		tok := c.advance()
		loopLabel = &cst.Identifier{Text: tok.Text}
	}
	var cond cst.Node
	if c.is("when") {
		c.advance()
		var err error
		cond, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.NextStatement{Loop: loopLabel, Condition: cond}, nil
}

func (c *cursor) parseExitStatement() (cst.SequentialStatement, error) {
	c.advance() // exit
	var loopLabel *cst.Identifier
	if c.isIdent() {
		tok := c.advance()
		loopLabel = &cst.Identifier{Text: tok.Text}
	}
	var cond cst.Node
	if c.is("when") {
		c.advance()
		var err error
		cond, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ExitStatement{Loop: loopLabel, Condition: cond}, nil
}

func (c *cursor) parseReturnStatement() (cst.SequentialStatement, error) {
	c.advance() // return
	var value cst.Node
	if !c.is(";") {
		var err error
		value, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ReturnStatement{Value: value}, nil
}

// parseAssignmentOrCall parses whichever of simple signal assignment,
// simple variable assignment, or procedure call statement the target name
// turns out to be (all three share the `name ...` prefix).
func (c *cursor) parseAssignmentOrCall(label *cst.Identifier) (cst.SequentialStatement, error) {
	target, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	target = unwrapName(target)
	switch {
	case c.is("<="):
		c.advance()
		delay := ""
		if c.is("transport") || c.is("inertial") {
			delay = strings.ToLower(c.advance().Text)
		}
		wave, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.SimpleSignalAssignment{Label: label, Target: target, Delay: delay, Waveform: wave}, nil
	case c.is(":="):
		c.advance()
		val, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.SimpleVariableAssignment{Label: label, Target: target, Value: val}, nil
	default:
		var args *cst.AssociationList
		if fc, ok := target.(*cst.FunctionCall); ok {
			args = fc.Args
			target = fc.Prefix
		}
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.ProcedureCallStatement{Label: label, Name: target, Args: args}, nil
	}
}

// ---- concurrent statements ----

func (c *cursor) parseConcurrentStatements(terminators ...string) ([]cst.ConcurrentStatement, error) {
	var stmts []cst.ConcurrentStatement
	for !c.atTerminator(terminators) {
		stmt, err := c.parseConcurrentStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (c *cursor) parseConcurrentStatement() (cst.ConcurrentStatement, error) {
	label := c.parseOptionalLabel()
	switch {
	case c.is("process") || (c.is("postponed") && c.isAt(1, "process")):
		return c.parseProcessStatement(label)
	case c.is("block"):
		return c.parseBlockStatement(label)
	case c.is("for") && label != nil:
		return c.parseForGenerate(label)
	case c.is("if") && label != nil:
		return c.parseIfGenerate(label)
	case c.is("case") && label != nil:
		return c.parseCaseGenerate(label)
	case c.is("with"):
		return c.parseConcurrentSelectedSignalAssignment(label)
	case c.is("assert") || (c.is("postponed") && c.isAt(1, "assert")):
		return c.parseConcurrentAssertionStatement(label)
	default:
		return c.parseInstantiationAssignmentOrCall(label)
	}
}

func (c *cursor) parseProcessStatement(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	postponed := false
	if c.is("postponed") {
		c.advance()
		postponed = true
	}
	c.advance() // process
	var sens []cst.Node
	if c.is("(") {
		c.advance()
		for {
			name, err := c.parseNameTail(nil)
			if err != nil {
				return nil, err
			}
			sens = append(sens, unwrapName(name))
			if c.is(",") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect(")"); err != nil {
			return nil, err
		}
	}
	if c.is("is") {
		c.advance()
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
	if c.is("postponed") {
		c.advance()
	}
	if _, err := c.expect("process"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ProcessStatement{Label: label, Postponed: postponed, SensitivityList: sens, Declarations: decls, Statements: stmts}, nil
}

func (c *cursor) parseBlockStatement(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	c.advance() // block
	var guard cst.Node
	if c.is("(") {
		c.advance()
		var err error
		guard, err = c.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(")"); err != nil {
			return nil, err
		}
	}
	if c.is("is") {
		c.advance()
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
	if _, err := c.expect("block"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.BlockStatement{Label: label, Guard: guard, Declarations: decls, Statements: stmts}, nil
}

func (c *cursor) parseGenerateBody(terms ...string) (*cst.GenerateStatementBody, error) {
	decls, err := c.parseDeclarativePartGenerate(terms...)
	if err != nil {
		return nil, err
	}
	if c.is("begin") {
		c.advance()
	}
	stmts, err := c.parseConcurrentStatements(terms...)
	if err != nil {
		return nil, err
	}
	return &cst.GenerateStatementBody{Declarations: decls, Statements: stmts}, nil
}

// parseDeclarativePartGenerate probes whether a generate body actually has
// a declarative part before `begin`, since it is optional there (unlike a
// process or block, spec's generate_statement_body allows the declarative
// part to be omitted without a `begin` separator when nothing follows it).
func (c *cursor) parseDeclarativePartGenerate(terms ...string) ([]cst.Node, error) {
	if c.is("begin") || c.atTerminator(terms) {
		return nil, nil
	}
	return c.parseDeclarativePart(append([]string{"begin"}, terms...)...)
}

func (c *cursor) parseForGenerate(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	c.advance() // for
	tok := c.advance()
	if _, err := c.expect("in"); err != nil {
		return nil, err
	}
	dr, err := c.parseDiscreteRange()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	body, err := c.parseGenerateBody("end")
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ForGenerateStatement{Label: label, Variable: &cst.Identifier{Text: tok.Text}, Range: dr, Body: body}, nil
}

func (c *cursor) parseIfGenerate(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	c.advance() // if
	then, err := c.parseIfGenerateBranch()
	if err != nil {
		return nil, err
	}
	var elsifs []*cst.IfGenerateBranch
	for c.is("elsif") {
		c.advance()
		b, err := c.parseIfGenerateBranch()
		if err != nil {
			return nil, err
		}
		elsifs = append(elsifs, b)
	}
	var elseBranch *cst.IfGenerateBranch
	if c.is("else") {
		c.advance()
		altLabel := c.parseOptionalGenerateAltLabel()
		if _, err := c.expect("generate"); err != nil {
			return nil, err
		}
		body, err := c.parseGenerateBody("end")
		if err != nil {
			return nil, err
		}
		elseBranch = &cst.IfGenerateBranch{Label: altLabel, Body: body}
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.IfGenerateStatement{Label: label, Then: then, Elsifs: elsifs, Else: elseBranch}, nil
}

func (c *cursor) parseOptionalGenerateAltLabel() *cst.Identifier {
	if c.isIdent() && c.isAt(1, ":") {
		tok := c.advance()
		c.advance()
		return &cst.Identifier{Text: tok.Text}
	}
	return nil
}

func (c *cursor) parseIfGenerateBranch() (*cst.IfGenerateBranch, error) {
	altLabel := c.parseOptionalGenerateAltLabel()
	cond, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	body, err := c.parseGenerateBody("elsif", "else", "end")
	if err != nil {
		return nil, err
	}
	return &cst.IfGenerateBranch{Label: altLabel, Condition: cond, Body: body}, nil
}

func (c *cursor) parseCaseGenerate(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	c.advance() // case
	selector, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	var alts []*cst.CaseGenerateAlternative
	for c.is("when") {
		c.advance()
		altLabel := c.parseOptionalGenerateAltLabel()
		var choices []cst.Node
		for {
			if c.is("others") {
				c.advance()
				choices = append(choices, &cst.Raw{Text: "others"})
			} else {
				ch, err := c.parseChoiceValue()
				if err != nil {
					return nil, err
				}
				choices = append(choices, ch)
			}
			if c.is("|") {
				c.advance()
				continue
			}
			break
		}
		if _, err := c.expect("=>"); err != nil {
			return nil, err
		}
		body, err := c.parseGenerateBody("when", "end")
		if err != nil {
			return nil, err
		}
		alts = append(alts, &cst.CaseGenerateAlternative{Label: altLabel, Choices: choices, Body: body})
	}
	if _, err := c.expect("end"); err != nil {
		return nil, err
	}
	if _, err := c.expect("generate"); err != nil {
		return nil, err
	}
	c.skipOptionalTrailingIdent()
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.CaseGenerateStatement{Label: label, Selector: selector, Alternatives: alts}, nil
}

func (c *cursor) parseConcurrentSelectedSignalAssignment(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	c.advance() // with
	selector, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("select"); err != nil {
		return nil, err
	}
	target, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect("<="); err != nil {
		return nil, err
	}
	var waveforms []*cst.SelectedWaveform
	for {
		wave, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect("when"); err != nil {
			return nil, err
		}
		var choices []cst.Node
		for {
			if c.is("others") {
				c.advance()
				choices = append(choices, &cst.Raw{Text: "others"})
			} else {
				ch, err := c.parseChoiceValue()
				if err != nil {
					return nil, err
				}
				choices = append(choices, ch)
			}
			if c.is("|") {
				c.advance()
				continue
			}
			break
		}
		waveforms = append(waveforms, &cst.SelectedWaveform{Waveform: wave, Choices: choices})
		if c.is(",") {
			c.advance()
			continue
		}
		break
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ConcurrentSelectedSignalAssignment{Label: label, Selector: selector, Target: unwrapName(target), Waveforms: waveforms}, nil
}

func (c *cursor) parseConcurrentAssertionStatement(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	postponed := false
	if c.is("postponed") {
		c.advance()
		postponed = true
	}
	c.advance() // assert
	cond, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	report, severity, err := c.parseReportSeverityTail()
	if err != nil {
		return nil, err
	}
	return &cst.ConcurrentAssertionStatement{Label: label, Postponed: postponed, Condition: cond, Report: report, Severity: severity}, nil
}

// parseInstantiationAssignmentOrCall handles component/entity/configuration
// instantiation (requires a label), concurrent signal assignment
// (simple/conditional), and concurrent procedure call — the remaining
// concurrent-statement forms, distinguished by their keyword or by the
// operator following the target name.
func (c *cursor) parseInstantiationAssignmentOrCall(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	if label != nil && (c.is("component") || c.is("entity") || c.is("configuration") || c.isInstantiableName()) {
		return c.parseComponentInstantiation(label)
	}
	postponed := false
	if c.is("postponed") {
		c.advance()
		postponed = true
	}
	target, err := c.parseNameTail(nil)
	if err != nil {
		return nil, err
	}
	target = unwrapName(target)
	if c.is("<=") {
		c.advance()
		return c.parseConditionalOrSimpleSignalAssignment(label, target)
	}
	var args *cst.AssociationList
	if fc, ok := target.(*cst.FunctionCall); ok {
		args = fc.Args
		target = fc.Prefix
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ConcurrentProcedureCallStatement{Label: label, Postponed: postponed, Name: target, Args: args}, nil
}

// isInstantiableName is a conservative heuristic for "this label is
// followed by a plain component/entity name, i.e. an instantiation, rather
// than a signal/procedure target": true when the name parses cleanly and is
// immediately followed by `generic`/`port`/`;`.
func (c *cursor) isInstantiableName() bool {
	save := c.pos
	_, err := c.parseNameTail(nil)
	ok := err == nil && (c.is("generic") || c.is("port") || c.is(";"))
	c.pos = save
	return ok
}

func (c *cursor) parseComponentInstantiation(label *cst.Identifier) (cst.ConcurrentStatement, error) {
	kind := ""
	if c.is("component") || c.is("entity") || c.is("configuration") {
		kind = strings.ToLower(c.advance().Text)
	}
	name, err := c.parseNameTail(nil)
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
	var pm *cst.PortMapAspect
	if c.is("port") {
		pm, err = c.parsePortMapAspect()
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ComponentInstantiationStatement{Label: label, UnitKind: kind, Name: unwrapName(name), GenericMap: gm, PortMap: pm}, nil
}

func (c *cursor) parseConditionalOrSimpleSignalAssignment(label *cst.Identifier, target cst.Node) (cst.ConcurrentStatement, error) {
	first, err := c.parseExpression()
	if err != nil {
		return nil, err
	}
	if !c.is("when") {
		if _, err := c.expect(";"); err != nil {
			return nil, err
		}
		return &cst.ConcurrentSimpleSignalAssignment{Label: label, Target: target, Waveform: first}, nil
	}
	var arms []*cst.ConditionalWaveform
	cur := first
	for {
		c.advance() // when
		cond, err := c.parseExpression()
		if err != nil {
			return nil, err
		}
		arms = append(arms, &cst.ConditionalWaveform{Waveform: cur, Condition: cond})
		if c.is("else") {
			c.advance()
			cur, err = c.parseExpression()
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := c.expect(";"); err != nil {
		return nil, err
	}
	return &cst.ConcurrentConditionalSignalAssignment{Label: label, Target: target, Arms: arms}, nil
}
