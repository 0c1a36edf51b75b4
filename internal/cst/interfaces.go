package cst

import "strings"

// InterfaceElement is implemented by every interface_declaration variant
// (spec §3.2's "interfaces" group): the constant/signal/variable/file/
// incomplete-type/subprogram/package declarations that can appear in a
// generic_clause or port_clause.
type InterfaceElement interface {
	Node
	interfaceElement()
}

// InterfaceConstantDeclaration is `[constant] identifier_list : [in] subtype_indication [:= expr]`.
type InterfaceConstantDeclaration struct {
	base
	Explicit        bool // "constant" keyword written explicitly
	IdentifierList  []*Identifier
	SubtypeIndication *SubtypeIndication
	Default         Node
}

func (n *InterfaceConstantDeclaration) interfaceElement() {}
func (n *InterfaceConstantDeclaration) KindName() string  { return "interface_constant_declaration" }
func (n *InterfaceConstantDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.SubtypeIndication, n.Default)
}
func (n *InterfaceConstantDeclaration) Format() string {
	s := ""
	if n.Explicit {
		s += "constant "
	}
	s += formatSeq(n.IdentifierList, ", ") + " : " + n.SubtypeIndication.Format()
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s
}

// InterfaceSignalDeclaration is a generic/port signal interface element,
// carrying mode, an optional `bus` marker, and an optional default.
type InterfaceSignalDeclaration struct {
	base
	IdentifierList    []*Identifier
	Mode              string // in | out | inout | buffer | linkage
	SubtypeIndication *SubtypeIndication
	Bus               bool
	Default           Node
}

func (n *InterfaceSignalDeclaration) interfaceElement() {}
func (n *InterfaceSignalDeclaration) KindName() string  { return "interface_signal_declaration" }
func (n *InterfaceSignalDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.SubtypeIndication, n.Default)
}
func (n *InterfaceSignalDeclaration) Format() string {
	s := formatSeq(n.IdentifierList, ", ") + " : "
	if n.Mode != "" {
		s += n.Mode + " "
	}
	s += n.SubtypeIndication.Format()
	if n.Bus {
		s += " bus"
	}
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s
}

// InterfaceVariableDeclaration is `variable identifier_list : [mode] subtype [:= expr]`.
type InterfaceVariableDeclaration struct {
	base
	IdentifierList    []*Identifier
	Mode              string
	SubtypeIndication *SubtypeIndication
	Default           Node
}

func (n *InterfaceVariableDeclaration) interfaceElement() {}
func (n *InterfaceVariableDeclaration) KindName() string  { return "interface_variable_declaration" }
func (n *InterfaceVariableDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.SubtypeIndication, n.Default)
}
func (n *InterfaceVariableDeclaration) Format() string {
	s := "variable " + formatSeq(n.IdentifierList, ", ") + " : "
	if n.Mode != "" {
		s += n.Mode + " "
	}
	s += n.SubtypeIndication.Format()
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s
}

// InterfaceFileDeclaration is `file identifier_list : subtype_indication`.
type InterfaceFileDeclaration struct {
	base
	IdentifierList    []*Identifier
	SubtypeIndication *SubtypeIndication
}

func (n *InterfaceFileDeclaration) interfaceElement() {}
func (n *InterfaceFileDeclaration) KindName() string  { return "interface_file_declaration" }
func (n *InterfaceFileDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.SubtypeIndication)
}
func (n *InterfaceFileDeclaration) Format() string {
	return "file " + formatSeq(n.IdentifierList, ", ") + " : " + n.SubtypeIndication.Format()
}

// InterfaceIncompleteTypeDeclaration is `type identifier` as a generic.
type InterfaceIncompleteTypeDeclaration struct {
	base
	Identifier *Identifier
}

func (n *InterfaceIncompleteTypeDeclaration) interfaceElement() {}
func (n *InterfaceIncompleteTypeDeclaration) KindName() string {
	return "interface_incomplete_type_declaration"
}
func (n *InterfaceIncompleteTypeDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier)
}
func (n *InterfaceIncompleteTypeDeclaration) Format() string {
	return "type " + n.Identifier.Format()
}

// InterfaceSubprogramDeclaration is `[specification] is interface_subprogram_default`.
type InterfaceSubprogramDeclaration struct {
	base
	Specification *Raw // subprogram specification rendered as raw text for this subset
	Default       Node // *Identifier or *Raw ("<>") when present
}

func (n *InterfaceSubprogramDeclaration) interfaceElement() {}
func (n *InterfaceSubprogramDeclaration) KindName() string {
	return "interface_subprogram_declaration"
}
func (n *InterfaceSubprogramDeclaration) Children() []Node {
	return appendNonNil(nil, n.Specification, n.Default)
}
func (n *InterfaceSubprogramDeclaration) Format() string {
	s := n.Specification.Format()
	if n.Default != nil {
		s += " is " + n.Default.Format()
	}
	return s
}

// InterfacePackageDeclaration is `package identifier is new uninstantiated_package_name generic map (...)`.
type InterfacePackageDeclaration struct {
	base
	Identifier             *Identifier
	UninstantiatedPackage   Node
	GenericMap              *GenericMapAspect
}

func (n *InterfacePackageDeclaration) interfaceElement() {}
func (n *InterfacePackageDeclaration) KindName() string  { return "interface_package_declaration" }
func (n *InterfacePackageDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.UninstantiatedPackage, n.GenericMap)
}
func (n *InterfacePackageDeclaration) Format() string {
	s := "package " + n.Identifier.Format() + " is new " + n.UninstantiatedPackage.Format()
	if n.GenericMap != nil {
		s += " " + n.GenericMap.Format()
	}
	return s
}

// GenericClause is `generic ( interface_element {; interface_element} );`.
type GenericClause struct {
	base
	Elements []InterfaceElement
}

func (n *GenericClause) KindName() string { return "generic_clause" }
func (n *GenericClause) Children() []Node { return appendSeq(nil, n.Elements) }
func (n *GenericClause) Format() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.Format()
	}
	return "generic (" + strings.Join(parts, "; ") + ");"
}

// PortClause is `port ( interface_element {; interface_element} );`.
type PortClause struct {
	base
	Elements []InterfaceElement
}

func (n *PortClause) KindName() string { return "port_clause" }
func (n *PortClause) Children() []Node { return appendSeq(nil, n.Elements) }
func (n *PortClause) Format() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.Format()
	}
	return "port (" + strings.Join(parts, "; ") + ");"
}

// GenericMapAspect is `generic map ( association_list )`.
type GenericMapAspect struct {
	base
	Associations *AssociationList
}

func (n *GenericMapAspect) KindName() string { return "generic_map_aspect" }
func (n *GenericMapAspect) Children() []Node  { return appendNonNil(nil, n.Associations) }
func (n *GenericMapAspect) Format() string {
	return "generic map (" + n.Associations.Format() + ")"
}

// PortMapAspect is `port map ( association_list )`.
type PortMapAspect struct {
	base
	Associations *AssociationList
}

func (n *PortMapAspect) KindName() string { return "port_map_aspect" }
func (n *PortMapAspect) Children() []Node  { return appendNonNil(nil, n.Associations) }
func (n *PortMapAspect) Format() string {
	return "port map (" + n.Associations.Format() + ")"
}
