package project

import (
	"embed"
	"fmt"

	"github.com/robert-at-pretension-io/vhdlfront/internal/parser"
)

// stdlibFS bundles the minimal std/ieee subset the --std flag preloads
// (SPEC_FULL §C.1), grounded on the teacher's own embed.FS use for its CUE
// schemas (internal/validator/validator.go).
//
//go:embed stdlib/*.vhdl
var stdlibFS embed.FS

// stdlibUnit is one bundled file's destination library and embedded path.
type stdlibUnit struct {
	library string
	path    string
}

var stdlibUnits = []stdlibUnit{
	{library: "std", path: "stdlib/standard.vhdl"},
	{library: "ieee", path: "stdlib/std_logic_1164.vhdl"},
}

// AddStandardLibraries parses and folds the bundled std.standard and
// ieee.std_logic_1164 subset into the project, creating the std/ieee
// libraries if they don't already exist. It is the --std CLI flag's sole
// effect (spec §6, SPEC_FULL §C.1); a malformed bundled file is a defect in
// this binary, not a user error, so it is returned rather than silently
// skipped.
func (p *Project) AddStandardLibraries() error {
	for _, u := range stdlibUnits {
		src, err := stdlibFS.ReadFile(u.path)
		if err != nil {
			return fmt.Errorf("bundled standard library %s: %w", u.path, err)
		}
		df, errs := parser.ParseFile(u.path, string(src), false)
		if df == nil {
			return fmt.Errorf("bundled standard library %s failed to parse: %v", u.path, errs)
		}
		lib := p.GetOrAddLibrary(u.library)
		if err := lib.AddCST(u.path, df); err != nil {
			return fmt.Errorf("bundled standard library %s: %w", u.path, err)
		}
	}
	return nil
}
