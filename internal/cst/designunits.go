package cst

import "strings"

// LibraryClause is `library identifier {, identifier};`.
type LibraryClause struct {
	base
	Names []*Identifier
}

func (n *LibraryClause) KindName() string { return "library_clause" }
func (n *LibraryClause) Children() []Node { return appendSeq(nil, n.Names) }
func (n *LibraryClause) Format() string {
	return "library " + formatSeq(n.Names, ", ") + ";"
}

// UseClause is `use selected_name {, selected_name};`.
type UseClause struct {
	base
	Names []Node
}

func (n *UseClause) KindName() string { return "use_clause" }
func (n *UseClause) Children() []Node { return appendSeq(nil, n.Names) }
func (n *UseClause) Format() string {
	parts := make([]string, len(n.Names))
	for i, nm := range n.Names {
		parts[i] = nm.Format()
	}
	return "use " + strings.Join(parts, ", ") + ";"
}

// ContextClause is the library/use/context-reference prefix shared by every
// design unit (spec §3.2, §4.4).
type ContextClause struct {
	base
	Items []Node // *LibraryClause | *UseClause
}

func (n *ContextClause) KindName() string { return "context_clause" }
func (n *ContextClause) Children() []Node { return appendSeq(nil, n.Items) }
func (n *ContextClause) Format() string {
	var sb strings.Builder
	for _, it := range n.Items {
		sb.WriteString(it.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}

// EntityHeader holds an entity's generic_clause/port_clause pair.
type EntityHeader struct {
	base
	Generics *GenericClause
	Ports    *PortClause
}

func (n *EntityHeader) KindName() string { return "entity_header" }
func (n *EntityHeader) Children() []Node {
	return appendNonNil(nil, n.Generics, n.Ports)
}
func (n *EntityHeader) Format() string {
	var sb strings.Builder
	if n.Generics != nil {
		sb.WriteString(n.Generics.Format())
		sb.WriteString("\n")
	}
	if n.Ports != nil {
		sb.WriteString(n.Ports.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}

// EntityDeclaration is `entity identifier is entity_header declarative_part
// [begin statement_part] end [entity] [identifier];` (spec §4.5, §8
// scenario 1).
type EntityDeclaration struct {
	base
	Identifier   *Identifier
	Header       *EntityHeader
	Declarations []Node
	Statements   []ConcurrentStatement
}

func (n *EntityDeclaration) KindName() string { return "entity_declaration" }
func (n *EntityDeclaration) Children() []Node {
	dst := appendNonNil(nil, n.Identifier, n.Header)
	dst = appendSeq(dst, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *EntityDeclaration) Format() string {
	var sb strings.Builder
	sb.WriteString("entity " + n.Identifier.Format() + " is\n")
	if n.Header != nil {
		sb.WriteString(n.Header.Format())
	}
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	if len(n.Statements) > 0 {
		sb.WriteString("begin\n")
		for _, s := range n.Statements {
			sb.WriteString(s.Format() + "\n")
		}
	}
	sb.WriteString("end entity " + n.Identifier.Format() + ";")
	return sb.String()
}

// ArchitectureBody is `architecture identifier of entity_name is
// declarative_part begin statement_part end [architecture] [identifier];`
// (spec §4.5, §8 scenario 2).
type ArchitectureBody struct {
	base
	Identifier   *Identifier
	EntityName   Node
	Declarations []Node
	Statements   []ConcurrentStatement
}

func (n *ArchitectureBody) KindName() string { return "architecture_body" }
func (n *ArchitectureBody) Children() []Node {
	dst := appendNonNil(nil, n.Identifier, n.EntityName)
	dst = appendSeq(dst, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *ArchitectureBody) Format() string {
	var sb strings.Builder
	sb.WriteString("architecture " + n.Identifier.Format() + " of " + n.EntityName.Format() + " is\n")
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("begin\n")
	for _, s := range n.Statements {
		sb.WriteString(s.Format() + "\n")
	}
	sb.WriteString("end architecture " + n.Identifier.Format() + ";")
	return sb.String()
}

// PackageHeader holds a package's optional generic_clause/generic_map pair
// (the uninstantiated-package-with-generics form, spec §3.2/§4.5).
type PackageHeader struct {
	base
	Generics   *GenericClause
	GenericMap *GenericMapAspect
}

func (n *PackageHeader) KindName() string { return "package_header" }
func (n *PackageHeader) Children() []Node {
	return appendNonNil(nil, n.Generics, n.GenericMap)
}
func (n *PackageHeader) Format() string {
	var sb strings.Builder
	if n.Generics != nil {
		sb.WriteString(n.Generics.Format() + "\n")
	}
	if n.GenericMap != nil {
		sb.WriteString(n.GenericMap.Format() + ";\n")
	}
	return sb.String()
}

// PackageDeclaration is `package identifier is [header] declarative_part
// end [package] [identifier];` (spec §4.5, §8 scenario 3).
type PackageDeclaration struct {
	base
	Identifier   *Identifier
	Header       *PackageHeader
	Declarations []Node
}

func (n *PackageDeclaration) KindName() string { return "package_declaration" }
func (n *PackageDeclaration) Children() []Node {
	dst := appendNonNil(nil, n.Identifier, n.Header)
	return appendSeq(dst, n.Declarations)
}
func (n *PackageDeclaration) Format() string {
	var sb strings.Builder
	sb.WriteString("package " + n.Identifier.Format() + " is\n")
	if n.Header != nil {
		sb.WriteString(n.Header.Format())
	}
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("end package " + n.Identifier.Format() + ";")
	return sb.String()
}

// PackageBody is `package body identifier is declarative_part end [package
// body] [identifier];` (spec §4.5).
type PackageBody struct {
	base
	Identifier   *Identifier
	Declarations []Node
}

func (n *PackageBody) KindName() string { return "package_body" }
func (n *PackageBody) Children() []Node {
	dst := appendNonNil(nil, n.Identifier)
	return appendSeq(dst, n.Declarations)
}
func (n *PackageBody) Format() string {
	var sb strings.Builder
	sb.WriteString("package body " + n.Identifier.Format() + " is\n")
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("end package body " + n.Identifier.Format() + ";")
	return sb.String()
}

// PackageInstantiationDeclaration is `package identifier is new
// uninstantiated_package_name [generic map (...)];` (spec §4.5, §8 scenario 4).
type PackageInstantiationDeclaration struct {
	base
	Identifier            *Identifier
	UninstantiatedPackage Node
	GenericMap            *GenericMapAspect
}

func (n *PackageInstantiationDeclaration) KindName() string {
	return "package_instantiation_declaration"
}
func (n *PackageInstantiationDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.UninstantiatedPackage, n.GenericMap)
}
func (n *PackageInstantiationDeclaration) Format() string {
	s := "package " + n.Identifier.Format() + " is new " + n.UninstantiatedPackage.Format()
	if n.GenericMap != nil {
		s += " " + n.GenericMap.Format()
	}
	return s + ";"
}

// ContextDeclaration is `context identifier is context_clause end context
// [identifier];`.
type ContextDeclaration struct {
	base
	Identifier *Identifier
	Items      []Node
}

func (n *ContextDeclaration) KindName() string { return "context_declaration" }
func (n *ContextDeclaration) Children() []Node {
	dst := appendNonNil(nil, n.Identifier)
	return appendSeq(dst, n.Items)
}
func (n *ContextDeclaration) Format() string {
	var sb strings.Builder
	sb.WriteString("context " + n.Identifier.Format() + " is\n")
	for _, it := range n.Items {
		sb.WriteString(it.Format() + "\n")
	}
	sb.WriteString("end context " + n.Identifier.Format() + ";")
	return sb.String()
}

// ComponentDeclaration is `component identifier [is] [generic_clause]
// [port_clause] end component [identifier];`.
type ComponentDeclaration struct {
	base
	Identifier *Identifier
	Generics   *GenericClause
	Ports      *PortClause
}

func (n *ComponentDeclaration) KindName() string { return "component_declaration" }
func (n *ComponentDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.Generics, n.Ports)
}
func (n *ComponentDeclaration) Format() string {
	var sb strings.Builder
	sb.WriteString("component " + n.Identifier.Format() + " is\n")
	if n.Generics != nil {
		sb.WriteString(n.Generics.Format() + "\n")
	}
	if n.Ports != nil {
		sb.WriteString(n.Ports.Format() + "\n")
	}
	sb.WriteString("end component " + n.Identifier.Format() + ";")
	return sb.String()
}

// SubprogramSpecification is `[function|procedure] designator
// [(interface_list)] [return type_mark]`, kept as a single node rather than
// further split into the procedure/function forms the reference grammar
// separates, since every caller only needs the designator and parameter
// shape.
type SubprogramSpecification struct {
	base
	IsFunction bool
	Designator Node // *Identifier or operator StringLiteralNode
	Parameters []InterfaceElement
	ReturnType *TypeMark
}

func (n *SubprogramSpecification) KindName() string { return "subprogram_specification" }
func (n *SubprogramSpecification) Children() []Node {
	dst := appendNonNil(nil, n.Designator)
	dst = appendSeq(dst, n.Parameters)
	return appendNonNil(dst, n.ReturnType)
}
func (n *SubprogramSpecification) Format() string {
	kw := "procedure"
	if n.IsFunction {
		kw = "function"
	}
	s := kw + " " + n.Designator.Format()
	if len(n.Parameters) > 0 {
		parts := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			parts[i] = p.Format()
		}
		s += " (" + strings.Join(parts, "; ") + ")"
	}
	if n.ReturnType != nil {
		s += " return " + n.ReturnType.Format()
	}
	return s
}

// SubprogramDeclaration is `subprogram_specification;`.
type SubprogramDeclaration struct {
	base
	Specification *SubprogramSpecification
}

func (n *SubprogramDeclaration) KindName() string { return "subprogram_declaration" }
func (n *SubprogramDeclaration) Children() []Node {
	return appendNonNil(nil, n.Specification)
}
func (n *SubprogramDeclaration) Format() string {
	return n.Specification.Format() + ";"
}

// SubprogramBody is `subprogram_specification is declarative_part begin
// sequence_of_statements end [subprogram_kind] [designator];`.
type SubprogramBody struct {
	base
	Specification *SubprogramSpecification
	Declarations  []Node
	Statements    []SequentialStatement
}

func (n *SubprogramBody) KindName() string { return "subprogram_body" }
func (n *SubprogramBody) Children() []Node {
	dst := appendNonNil(nil, n.Specification)
	dst = appendSeq(dst, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *SubprogramBody) Format() string {
	var sb strings.Builder
	sb.WriteString(n.Specification.Format() + " is\n")
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("begin\n")
	sb.WriteString(formatSeqStmts(n.Statements))
	sb.WriteString("end " + n.Specification.Designator.Format() + ";")
	return sb.String()
}

// SubprogramInstantiationDeclaration is `[function|procedure] identifier is
// new uninstantiated_subprogram_name [signature] [generic map (...)];`.
type SubprogramInstantiationDeclaration struct {
	base
	IsFunction             bool
	Identifier             *Identifier
	UninstantiatedSubprogram Node
	Signature              *Signature
	GenericMap             *GenericMapAspect
}

func (n *SubprogramInstantiationDeclaration) KindName() string {
	return "subprogram_instantiation_declaration"
}
func (n *SubprogramInstantiationDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.UninstantiatedSubprogram, n.Signature, n.GenericMap)
}
func (n *SubprogramInstantiationDeclaration) Format() string {
	kw := "procedure"
	if n.IsFunction {
		kw = "function"
	}
	s := kw + " " + n.Identifier.Format() + " is new " + n.UninstantiatedSubprogram.Format()
	if n.Signature != nil {
		s += n.Signature.Format()
	}
	if n.GenericMap != nil {
		s += " " + n.GenericMap.Format()
	}
	return s + ";"
}

// ConstantDeclaration is `constant identifier_list : subtype_indication
// [:= expr];`.
type ConstantDeclaration struct {
	base
	IdentifierList []*Identifier
	Subtype        *SubtypeIndication
	Default        Node
}

func (n *ConstantDeclaration) KindName() string { return "constant_declaration" }
func (n *ConstantDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.Subtype, n.Default)
}
func (n *ConstantDeclaration) Format() string {
	s := "constant " + formatSeq(n.IdentifierList, ", ") + " : " + n.Subtype.Format()
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s + ";"
}

// SignalDeclaration is `signal identifier_list : subtype_indication [bus|
// register] [:= expr];`.
type SignalDeclaration struct {
	base
	IdentifierList []*Identifier
	Subtype        *SubtypeIndication
	Kind           string // "bus" | "register" | ""
	Default        Node
}

func (n *SignalDeclaration) KindName() string { return "signal_declaration" }
func (n *SignalDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.Subtype, n.Default)
}
func (n *SignalDeclaration) Format() string {
	s := "signal " + formatSeq(n.IdentifierList, ", ") + " : " + n.Subtype.Format()
	if n.Kind != "" {
		s += " " + n.Kind
	}
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s + ";"
}

// VariableDeclaration is `[shared] variable identifier_list :
// subtype_indication [:= expr];`.
type VariableDeclaration struct {
	base
	Shared         bool
	IdentifierList []*Identifier
	Subtype        *SubtypeIndication
	Default        Node
}

func (n *VariableDeclaration) KindName() string { return "variable_declaration" }
func (n *VariableDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.Subtype, n.Default)
}
func (n *VariableDeclaration) Format() string {
	s := ""
	if n.Shared {
		s += "shared "
	}
	s += "variable " + formatSeq(n.IdentifierList, ", ") + " : " + n.Subtype.Format()
	if n.Default != nil {
		s += " := " + n.Default.Format()
	}
	return s + ";"
}

// FileOpenInfo is the optional `open mode_expr` / `is logical_name` tail of
// a file declaration.
type FileOpenInfo struct {
	base
	Mode       Node
	LogicalName Node
}

func (n *FileOpenInfo) KindName() string { return "file_open_information" }
func (n *FileOpenInfo) Children() []Node {
	return appendNonNil(nil, n.Mode, n.LogicalName)
}
func (n *FileOpenInfo) Format() string {
	s := ""
	if n.Mode != nil {
		s += "open " + n.Mode.Format() + " "
	}
	if n.LogicalName != nil {
		s += "is " + n.LogicalName.Format()
	}
	return strings.TrimSpace(s)
}

// FileDeclaration is `file identifier_list : subtype_indication
// [file_open_information];`.
type FileDeclaration struct {
	base
	IdentifierList []*Identifier
	Subtype        *SubtypeIndication
	OpenInfo       *FileOpenInfo
}

func (n *FileDeclaration) KindName() string { return "file_declaration" }
func (n *FileDeclaration) Children() []Node {
	dst := appendSeq(nil, n.IdentifierList)
	return appendNonNil(dst, n.Subtype, n.OpenInfo)
}
func (n *FileDeclaration) Format() string {
	s := "file " + formatSeq(n.IdentifierList, ", ") + " : " + n.Subtype.Format()
	if n.OpenInfo != nil {
		s += " " + n.OpenInfo.Format()
	}
	return s + ";"
}

// LibraryUnit wraps whichever primary or secondary unit a DesignUnit
// carries (spec §3.2, §4.4's "one node per design unit").
type LibraryUnit interface {
	Node
	libraryUnit()
}

func (n *EntityDeclaration) libraryUnit()                      {}
func (n *ArchitectureBody) libraryUnit()                       {}
func (n *PackageDeclaration) libraryUnit()                     {}
func (n *PackageBody) libraryUnit()                             {}
func (n *PackageInstantiationDeclaration) libraryUnit()        {}
func (n *ContextDeclaration) libraryUnit()                     {}

// DesignUnit is `context_clause library_unit` (spec §4.4).
type DesignUnit struct {
	base
	Context *ContextClause
	Unit    LibraryUnit
}

func (n *DesignUnit) KindName() string { return "design_unit" }
func (n *DesignUnit) Children() []Node {
	return appendNonNil(nil, n.Context, n.Unit)
}
func (n *DesignUnit) Format() string {
	var sb strings.Builder
	if n.Context != nil {
		sb.WriteString(n.Context.Format())
	}
	sb.WriteString(n.Unit.Format())
	return sb.String()
}

// DesignFile is `design_unit+`, the root of one parsed VHDL source file
// (spec §4.4).
type DesignFile struct {
	base
	Units []*DesignUnit
}

func (n *DesignFile) KindName() string { return "design_file" }
func (n *DesignFile) Children() []Node { return appendSeq(nil, n.Units) }
func (n *DesignFile) Format() string {
	var sb strings.Builder
	for _, u := range n.Units {
		sb.WriteString(u.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}
