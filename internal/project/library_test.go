package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

func designFile(units ...*cst.DesignUnit) *cst.DesignFile {
	return &cst.DesignFile{Units: units}
}

func entityUnit(name string) *cst.DesignUnit {
	return &cst.DesignUnit{
		Unit: &cst.EntityDeclaration{
			Identifier: &cst.Identifier{Text: name},
		},
	}
}

func archUnit(archName, entityName string) *cst.DesignUnit {
	return &cst.DesignUnit{
		Unit: &cst.ArchitectureBody{
			Identifier: &cst.Identifier{Text: archName},
			EntityName: &cst.Identifier{Text: entityName},
		},
	}
}

func packageUnit(name string) *cst.DesignUnit {
	return &cst.DesignUnit{
		Unit: &cst.PackageDeclaration{
			Identifier: &cst.Identifier{Text: name},
		},
	}
}

func packageBodyUnit(name string) *cst.DesignUnit {
	return &cst.DesignUnit{
		Unit: &cst.PackageBody{
			Identifier: &cst.Identifier{Text: name},
		},
	}
}

func TestAddCSTEntityThenArchitecture(t *testing.T) {
	lib := &Library{Name: "work"}
	require.NoError(t, lib.AddCST("counter_e.vhd", designFile(entityUnit("counter"))))
	require.Len(t, lib.Modules, 1)
	require.Equal(t, "counter", lib.Modules[0].Name)
	require.Empty(t, lib.Modules[0].ArchName)

	require.NoError(t, lib.AddCST("counter_a.vhd", designFile(archUnit("rtl", "counter"))))
	require.Equal(t, "rtl", lib.Modules[0].ArchName)
	require.Equal(t, []string{"counter_e.vhd", "counter_a.vhd"}, lib.Modules[0].Files)
}

func TestAddCSTDuplicateEntityFails(t *testing.T) {
	lib := &Library{Name: "work"}
	require.NoError(t, lib.AddCST("a.vhd", designFile(entityUnit("counter"))))

	err := lib.AddCST("b.vhd", designFile(entityUnit("COUNTER")))
	var pe *vhdlerrors.ProjectError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, vhdlerrors.EntityExists, pe.Kind)
}

func TestAddCSTArchitectureWithoutEntityFails(t *testing.T) {
	lib := &Library{Name: "work"}
	err := lib.AddCST("a.vhd", designFile(archUnit("rtl", "nope")))
	var pe *vhdlerrors.ProjectError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, vhdlerrors.NoSuchEntity, pe.Kind)
}

func TestAddCSTDuplicateArchitectureFails(t *testing.T) {
	lib := &Library{Name: "work"}
	require.NoError(t, lib.AddCST("e.vhd", designFile(entityUnit("counter"))))
	require.NoError(t, lib.AddCST("a1.vhd", designFile(archUnit("rtl", "counter"))))

	err := lib.AddCST("a2.vhd", designFile(archUnit("behavioral", "counter")))
	var pe *vhdlerrors.ProjectError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, vhdlerrors.ArchitectureExists, pe.Kind)
}

func TestAddCSTPackageAndBody(t *testing.T) {
	lib := &Library{Name: "work"}
	require.NoError(t, lib.AddCST("p.vhd", designFile(packageUnit("utils"))))
	require.False(t, lib.Packages[0].HasBody)

	require.NoError(t, lib.AddCST("pb.vhd", designFile(packageBodyUnit("utils"))))
	require.True(t, lib.Packages[0].HasBody)

	err := lib.AddCST("pb2.vhd", designFile(packageBodyUnit("utils")))
	var pe *vhdlerrors.ProjectError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, vhdlerrors.BodyExists, pe.Kind)
}

func TestAddCSTPackageBodyWithoutDeclarationFails(t *testing.T) {
	lib := &Library{Name: "work"}
	err := lib.AddCST("pb.vhd", designFile(packageBodyUnit("nope")))
	var pe *vhdlerrors.ProjectError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, vhdlerrors.NoSuchPackage, pe.Kind)
}

func TestAddCSTPackageInstantiation(t *testing.T) {
	lib := &Library{Name: "work"}
	require.NoError(t, lib.AddCST("g.vhd", designFile(&cst.DesignUnit{
		Unit: &cst.PackageDeclaration{
			Identifier: &cst.Identifier{Text: "generic_fifo"},
			Header: &cst.PackageHeader{
				Generics: &cst.GenericClause{
					Elements: []cst.InterfaceElement{
						&cst.InterfaceConstantDeclaration{
							IdentifierList:    []*cst.Identifier{{Text: "n"}},
							SubtypeIndication: &cst.SubtypeIndication{Mark: &cst.TypeMark{Name: &cst.Identifier{Text: "integer"}}},
						},
					},
				},
			},
		},
	})))

	inst := &cst.PackageInstantiationDeclaration{
		Identifier:            &cst.Identifier{Text: "fifo16"},
		UninstantiatedPackage: &cst.Identifier{Text: "generic_fifo"},
		GenericMap: &cst.GenericMapAspect{
			Associations: &cst.AssociationList{
				Items: []*cst.AssociationElement{
					{
						Formal: &cst.FormalPart{Value: &cst.Identifier{Text: "n"}},
						Actual: &cst.ActualPart{Value: &cst.NumericLiteral{Text: "16"}},
					},
				},
			},
		},
	}
	require.NoError(t, lib.AddCST("i.vhd", designFile(&cst.DesignUnit{Unit: inst})))

	require.Len(t, lib.InstancedPackages, 1)
	ip := lib.InstancedPackages[0]
	require.Equal(t, "fifo16", ip.Name)
	require.Equal(t, "16", ip.ResolvedGenericDefault("n", 0))
}

func TestAddCSTUnsupportedUnitIsNonFatal(t *testing.T) {
	lib := &Library{Name: "work"}
	err := lib.AddCST("ctx.vhd", designFile(&cst.DesignUnit{
		Unit: &cst.ContextDeclaration{Identifier: &cst.Identifier{Text: "ctx1"}},
	}))
	var uu *vhdlerrors.UnsupportedUnit
	require.ErrorAs(t, err, &uu)
	require.Empty(t, lib.Modules)
	require.Empty(t, lib.Packages)
}

func TestProjectGetOrAddLibraryCaseInsensitive(t *testing.T) {
	p := New()
	lib := p.GetOrAddLibrary("WORK")
	same := p.GetOrAddLibrary("work")
	require.Same(t, lib, same)

	_, err := p.AddLibrary("Work")
	var le *vhdlerrors.LibraryError
	require.ErrorAs(t, err, &le)
	require.Equal(t, vhdlerrors.DuplicateLibrary, le.Kind)

	_, err = p.GetLibrary("missing")
	require.ErrorAs(t, err, &le)
	require.Equal(t, vhdlerrors.UnknownLibrary, le.Kind)
}
