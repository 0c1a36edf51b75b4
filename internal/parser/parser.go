package parser

import (
	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/lexer"
)

// ParseFile lexes and parses one VHDL source file into a fully typed
// internal/cst.DesignFile (spec §4.1-§4.5). When ambig is true, the two
// known-ambiguous points (name(expr), abstract-literal-plus-unit) are
// resolved through an internal/forest ambiguity tree and
// internal/shaper.Shape instead of being resolved immediately; any
// AmbiguityUnresolved reports the shaper raised are returned alongside the
// tree as non-fatal warnings. On a lex or parse failure, file == nil and the
// failure is the first error, followed (for a parse failure) by any warnings
// gathered before it.
func ParseFile(path string, src string, ambig bool) (*cst.DesignFile, []error) {
	toks, err := lexer.New(src).Tokens()
	if err != nil {
		return nil, []error{err}
	}
	c := newCursor(path, toks, ambig)
	file, err := c.parseDesignFile()
	if err != nil {
		return nil, append([]error{err}, c.warnings...)
	}
	cst.Link(file)
	return file, c.warnings
}
