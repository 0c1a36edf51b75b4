package parser_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/parser"
	"github.com/robert-at-pretension-io/vhdlfront/internal/project"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

func normalize(s string) string {
	s = strings.ToLower(s)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if idx := strings.Index(l, "--"); idx >= 0 {
			lines[i] = l[:idx]
		}
	}
	s = strings.Join(lines, " ")
	return regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(s), " ")
}

func parseOK(t *testing.T, src string) *cst.DesignFile {
	t.Helper()
	df, errs := parser.ParseFile("t.vhd", src, false)
	require.NotNil(t, df, "parse errors: %v", errs)
	return df
}

// Scenario 1: minimal entity.
func TestScenarioMinimalEntity(t *testing.T) {
	src := `entity e is port (a : in std_logic); end entity;`
	df := parseOK(t, src)

	lib := &project.Library{Name: "work"}
	require.NoError(t, lib.AddCST("scenario1.vhd", df))
	require.Len(t, lib.Modules, 1)
	m := lib.Modules[0]
	require.Equal(t, "e", m.Name)
	require.Empty(t, m.ArchName)
	require.Equal(t, []string{"scenario1.vhd"}, m.Files)
	require.Len(t, m.Ports, 1)
	require.Equal(t, "a", m.Ports[0].Name)
	require.Equal(t, "std_logic", m.Ports[0].Type)
	require.Equal(t, project.DirIn, m.Ports[0].Direction)
	require.Empty(t, m.Ports[0].Default)
}

// Scenario 2: entity + architecture accumulate files and set arch_name.
func TestScenarioEntityThenArchitecture(t *testing.T) {
	lib := &project.Library{Name: "work"}
	df1 := parseOK(t, `entity e is port (a : in std_logic); end entity;`)
	require.NoError(t, lib.AddCST("e.vhd", df1))

	df2 := parseOK(t, `architecture rtl of e is begin end;`)
	require.NoError(t, lib.AddCST("rtl.vhd", df2))

	require.Equal(t, "rtl", lib.Modules[0].ArchName)
	require.Equal(t, []string{"e.vhd", "rtl.vhd"}, lib.Modules[0].Files)
}

// Scenario 3: package with generics (a net generic, a type generic, and a
// subprogram declaration).
func TestScenarioPackageWithGenerics(t *testing.T) {
	src := `package p is generic (n : integer := 8; type t); function f return t; end package;`
	df := parseOK(t, src)

	lib := &project.Library{Name: "work"}
	require.NoError(t, lib.AddCST("p.vhd", df))
	require.Len(t, lib.Packages, 1)
	pkg := lib.Packages[0]
	require.Equal(t, "p", pkg.Name)
	require.Len(t, pkg.Parameters, 1)
	require.Equal(t, "n", pkg.Parameters[0].Name)
	require.Equal(t, project.AccessConstant, pkg.Parameters[0].Access)
	require.Equal(t, "integer", pkg.Parameters[0].Type)
	require.Equal(t, "8", pkg.Parameters[0].Default)
	require.Len(t, pkg.Types, 1)
	require.Equal(t, "t", pkg.Types[0].Name)
}

// Scenario 4: generic package instantiation resolves its declared base
// package and carries the generic map's (formal, actual) pairs.
func TestScenarioGenericPackageInstantiation(t *testing.T) {
	src := `package p is generic (n : integer); end; package q is new work.p generic map (n => 16);`
	df := parseOK(t, src)

	lib := &project.Library{Name: "work"}
	require.NoError(t, lib.AddCST("pq.vhd", df))
	require.Len(t, lib.InstancedPackages, 1)
	ip := lib.InstancedPackages[0]
	require.Equal(t, "q", ip.Name)
	require.Equal(t, "p", ip.Declaration.Name)
	require.Len(t, ip.Mapping, 1)
	require.Equal(t, "n", ip.Mapping[0].Formal)
	require.Equal(t, "16", ip.Mapping[0].Actual)
}

// Scenario 6: physical literal disambiguation — a valid time unit parses
// to a physical literal; an undeclared one fails the parse.
func TestScenarioPhysicalLiteralDisambiguation(t *testing.T) {
	src := `entity e is end entity; architecture rtl of e is constant t : time := 10 ns; begin end;`
	df := parseOK(t, src)
	arch := df.Units[1].Unit.(*cst.ArchitectureBody)
	decl := arch.Declarations[0].(*cst.ConstantDeclaration)
	prim, ok := decl.Default.(*cst.Primary)
	require.True(t, ok, "expected a primary, got %T", decl.Default)
	lit, ok := prim.Inner.(*cst.PhysicalLiteral)
	require.True(t, ok, "expected a physical literal, got %T", prim.Inner)
	require.Equal(t, "10", lit.Abstract)
	require.Equal(t, "ns", lit.Unit.Format())

	badSrc := `entity e is end entity; architecture rtl of e is constant t : time := 10 xs; begin end;`
	badDF, errs := parser.ParseFile("bad.vhd", badSrc, false)
	require.Nil(t, badDF)
	require.NotEmpty(t, errs)
	var pf *vhdlerrors.ParseFailure
	require.ErrorAs(t, errs[0], &pf)
}

// Scenario 6, -a/--ambig mode: physical-literal disambiguation is routed
// through the same forest/shaper machinery as name(expr), not resolved
// inline, so an unrecognised unit is still a parse failure under --ambig.
func TestScenarioPhysicalLiteralDisambiguationUnderAmbig(t *testing.T) {
	src := `entity e is end entity; architecture rtl of e is constant t : time := 10 ns; begin end;`
	df, errs := parser.ParseFile("ambig.vhd", src, true)
	require.NotNil(t, df, "parse errors: %v", errs)
	arch := df.Units[1].Unit.(*cst.ArchitectureBody)
	decl := arch.Declarations[0].(*cst.ConstantDeclaration)
	prim, ok := decl.Default.(*cst.Primary)
	require.True(t, ok, "expected a primary, got %T", decl.Default)
	lit, ok := prim.Inner.(*cst.PhysicalLiteral)
	require.True(t, ok, "expected a physical literal, got %T", prim.Inner)
	require.Equal(t, "ns", lit.Unit.Format())

	badSrc := `entity e is end entity; architecture rtl of e is constant t : time := 10 xs; begin end;`
	badDF, badErrs := parser.ParseFile("bad_ambig.vhd", badSrc, true)
	require.Nil(t, badDF)
	require.NotEmpty(t, badErrs)
	var pf *vhdlerrors.ParseFailure
	require.ErrorAs(t, badErrs[0], &pf)
}

func TestRoundTripFormatMatchesNormalizedSource(t *testing.T) {
	src := `entity e is
  port (a : in std_logic; b : out std_logic);
end entity;`
	df := parseOK(t, src)
	require.Equal(t, normalize(src), normalize(df.Format()))
}
