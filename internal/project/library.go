package project

import (
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

// AddCST folds one parsed design file into the library, one design unit at
// a time, in file order (spec §4.5's dispatch table). A unit the model does
// not fold (vhdlerrors.UnsupportedUnit) is skipped and the walk goes on; the
// first such warning is returned when the walk ends. Any other failure stops
// the walk and returns its error; units already folded before the failing
// one remain in the library, matching the source's own unit-at-a-time
// mutation.
func (l *Library) AddCST(path string, df *cst.DesignFile) error {
	var unsupported error
	for _, du := range df.Units {
		if err := l.addUnit(path, du); err != nil {
			if _, ok := err.(*vhdlerrors.UnsupportedUnit); ok {
				if unsupported == nil {
					unsupported = err
				}
				continue
			}
			return err
		}
	}
	return unsupported
}

func (l *Library) addUnit(path string, du *cst.DesignUnit) error {
	switch u := du.Unit.(type) {
	case *cst.EntityDeclaration:
		return l.addEntity(path, du.Context, u)
	case *cst.ArchitectureBody:
		return l.addArchitecture(path, u)
	case *cst.PackageDeclaration:
		return l.addPackageDeclaration(path, u)
	case *cst.PackageBody:
		return l.addPackageBody(path, u)
	case *cst.PackageInstantiationDeclaration:
		return l.addPackageInstantiation(path, u)
	case *cst.ContextDeclaration:
		return &vhdlerrors.UnsupportedUnit{KindName: u.KindName(), Path: path}
	default:
		return &vhdlerrors.UnsupportedUnit{KindName: du.Unit.KindName(), Path: path}
	}
}

func (l *Library) addEntity(path string, context *cst.ContextClause, u *cst.EntityDeclaration) error {
	name := u.Identifier.Text
	if existing := l.findModule(name); existing != nil {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.EntityExists, Name: name, Files: existing.Files}
	}
	m := &Module{
		Name:         name,
		Context:      context,
		Declarations: u.Declarations,
		Statements:   u.Statements,
	}
	if u.Header != nil {
		if u.Header.Generics != nil {
			nets, types, subs, pkgs := extractInterfaceElements(u.Header.Generics.Elements, false)
			m.Parameters, m.Types, m.Subprograms, m.Packages = nets, types, subs, pkgs
		}
		if u.Header.Ports != nil {
			nets, _, _, _ := extractInterfaceElements(u.Header.Ports.Elements, true)
			m.Ports = nets
		}
	}
	m.addFile(path)
	l.Modules = append(l.Modules, m)
	return nil
}

func (l *Library) addArchitecture(path string, u *cst.ArchitectureBody) error {
	entityName := nameText(u.EntityName)
	m := l.findModule(entityName)
	if m == nil {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.NoSuchEntity, Name: entityName}
	}
	if m.ArchName != "" {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.ArchitectureExists, Name: m.Name, Files: m.Files}
	}
	m.ArchName = u.Identifier.Text
	m.Declarations = append(m.Declarations, u.Declarations...)
	m.Statements = append(m.Statements, u.Statements...)
	m.addFile(path)
	return nil
}

func (l *Library) addPackageDeclaration(path string, u *cst.PackageDeclaration) error {
	name := u.Identifier.Text
	if existing := l.findPackage(name); existing != nil {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.PackageExists, Name: name, Files: existing.Files}
	}
	dp := &DeclaredPackage{Name: name}
	if u.Header != nil && u.Header.Generics != nil {
		nets, types, subs, pkgs := extractInterfaceElements(u.Header.Generics.Elements, false)
		dp.Parameters, dp.Types, dp.Subprograms, dp.Packages = nets, types, subs, pkgs
	}
	for _, d := range u.Declarations {
		switch decl := d.(type) {
		case *cst.ComponentDeclaration:
			dp.Components = append(dp.Components, decl.Identifier.Text)
		case *cst.ConstantDeclaration:
			for _, id := range decl.IdentifierList {
				dp.Constants = append(dp.Constants, id.Text)
			}
		}
	}
	dp.addFile(path)
	l.Packages = append(l.Packages, dp)
	return nil
}

func (l *Library) addPackageBody(path string, u *cst.PackageBody) error {
	name := u.Identifier.Text
	dp := l.findPackage(name)
	if dp == nil {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.NoSuchPackage, Name: name}
	}
	if dp.HasBody {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.BodyExists, Name: name, Files: dp.Files}
	}
	dp.HasBody = true
	dp.addFile(path)
	return nil
}

func (l *Library) addPackageInstantiation(path string, u *cst.PackageInstantiationDeclaration) error {
	baseName := nameText(u.UninstantiatedPackage)
	if i := strings.LastIndex(baseName, "."); i >= 0 {
		baseName = baseName[i+1:]
	}
	dp := l.findPackage(baseName)
	if dp == nil {
		return &vhdlerrors.ProjectError{Kind: vhdlerrors.NoSuchPackage, Name: baseName}
	}
	ip := &InstancedPackage{
		Name:        u.Identifier.Text,
		Declaration: dp,
		Mapping:     genericMapEntries(u.GenericMap),
	}
	ip.Files = append(ip.Files, path)
	l.InstancedPackages = append(l.InstancedPackages, ip)
	return nil
}

// genericMapEntries walks a generic map's association list into ordered
// (formal-or-position, actual) pairs (spec §3.3, §8 scenario 4's exact
// `[("n", "16")]` shape).
func genericMapEntries(gm *cst.GenericMapAspect) []GenericMapEntry {
	if gm == nil || gm.Associations == nil {
		return nil
	}
	entries := make([]GenericMapEntry, 0, len(gm.Associations.Items))
	for i, assoc := range gm.Associations.Items {
		e := GenericMapEntry{Position: i}
		if assoc.Formal != nil && assoc.Formal.Value != nil {
			e.Formal = nameText(assoc.Formal.Value)
		}
		if assoc.Actual != nil && assoc.Actual.Value != nil {
			e.Actual = assoc.Actual.Value.Format()
		}
		entries = append(entries, e)
	}
	return entries
}

// nameText renders a name node (Identifier or a dotted SelectedName) to its
// plain text, used for entity/package cross-references where only the
// designator text matters.
func nameText(n cst.Node) string {
	if n == nil {
		return ""
	}
	return n.Format()
}

// extractInterfaceElements walks a generic_clause's or port_clause's
// element list, fanning each multi-name identifier_list entry out into one
// InterfaceNet per name sharing type and default (spec §4.5's final
// paragraph), and collecting the non-net generic kinds (type, subprogram,
// package) separately. Signal nets take Direction from their written mode;
// when isPort is false (generics), an omitted mode defaults to in.
func extractInterfaceElements(elems []cst.InterfaceElement, isPort bool) ([]InterfaceNet, []InterfaceType, []InterfaceSubprogram, []InterfacePackage) {
	var nets []InterfaceNet
	var types []InterfaceType
	var subs []InterfaceSubprogram
	var pkgs []InterfacePackage
	for _, e := range elems {
		switch el := e.(type) {
		case *cst.InterfaceConstantDeclaration:
			def := formatOrEmpty(el.Default)
			for _, id := range el.IdentifierList {
				nets = append(nets, InterfaceNet{Name: id.Text, Access: AccessConstant, Type: el.SubtypeIndication.Format(), Default: def})
			}
		case *cst.InterfaceSignalDeclaration:
			def := formatOrEmpty(el.Default)
			dir := Direction(el.Mode)
			if !isPort && dir == "" {
				dir = DirIn
			}
			for _, id := range el.IdentifierList {
				nets = append(nets, InterfaceNet{Name: id.Text, Access: AccessSignal, Type: el.SubtypeIndication.Format(), Default: def, Direction: dir})
			}
		case *cst.InterfaceVariableDeclaration:
			def := formatOrEmpty(el.Default)
			for _, id := range el.IdentifierList {
				nets = append(nets, InterfaceNet{Name: id.Text, Access: AccessVariable, Type: el.SubtypeIndication.Format(), Default: def, Direction: Direction(el.Mode)})
			}
		case *cst.InterfaceFileDeclaration:
			for _, id := range el.IdentifierList {
				nets = append(nets, InterfaceNet{Name: id.Text, Type: el.SubtypeIndication.Format()})
			}
		case *cst.InterfaceIncompleteTypeDeclaration:
			types = append(types, InterfaceType{Name: el.Identifier.Text})
		case *cst.InterfaceSubprogramDeclaration:
			name := ""
			if el.Specification != nil {
				name = el.Specification.Format()
			}
			subs = append(subs, InterfaceSubprogram{Name: name, Default: formatOrEmpty(el.Default)})
		case *cst.InterfacePackageDeclaration:
			pkgs = append(pkgs, InterfacePackage{Name: el.Identifier.Text, BaseName: nameText(el.UninstantiatedPackage)})
		}
	}
	return nets, types, subs, pkgs
}

func formatOrEmpty(n cst.Node) string {
	if n == nil {
		return ""
	}
	return n.Format()
}
