package cst

import "strings"

// ResolutionIndication is the optional resolution function name prefixing a
// subtype indication, e.g. `resolved` in `signal s : resolved std_logic`.
type ResolutionIndication struct {
	base
	Name Node
}

func (n *ResolutionIndication) KindName() string { return "resolution_indication" }
func (n *ResolutionIndication) Children() []Node { return appendNonNil(nil, n.Name) }
func (n *ResolutionIndication) Format() string   { return n.Name.Format() }

// IndexConstraint is `( discrete_range {, discrete_range} )`.
type IndexConstraint struct {
	base
	Ranges []*DiscreteRange
}

func (n *IndexConstraint) KindName() string { return "index_constraint" }
func (n *IndexConstraint) Children() []Node { return appendSeq(nil, n.Ranges) }
func (n *IndexConstraint) Format() string {
	parts := make([]string, len(n.Ranges))
	for i, r := range n.Ranges {
		parts[i] = r.Format()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RangeConstraint is `range range`.
type RangeConstraint struct {
	base
	Range *Range
}

func (n *RangeConstraint) KindName() string { return "range_constraint" }
func (n *RangeConstraint) Children() []Node { return appendNonNil(nil, n.Range) }
func (n *RangeConstraint) Format() string   { return "range " + n.Range.Format() }

// ArrayConstraint is an index constraint optionally followed by an element
// constraint, e.g. `(0 to 7)(3 downto 0)`.
type ArrayConstraint struct {
	base
	Index   *IndexConstraint
	Element Node
}

func (n *ArrayConstraint) KindName() string { return "array_constraint" }
func (n *ArrayConstraint) Children() []Node { return appendNonNil(nil, n.Index, n.Element) }
func (n *ArrayConstraint) Format() string {
	s := n.Index.Format()
	if n.Element != nil {
		s += n.Element.Format()
	}
	return s
}

// RecordConstraint is `( record_element_constraint {, ...} )`.
type RecordConstraint struct {
	base
	Elements []*RecordElementConstraint
}

func (n *RecordConstraint) KindName() string { return "record_constraint" }
func (n *RecordConstraint) Children() []Node { return appendSeq(nil, n.Elements) }
func (n *RecordConstraint) Format() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.Format()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RecordElementConstraint names one element of a RecordConstraint.
type RecordElementConstraint struct {
	base
	Name       *Identifier
	Constraint Node
}

func (n *RecordElementConstraint) KindName() string { return "record_element_constraint" }
func (n *RecordElementConstraint) Children() []Node {
	return appendNonNil(nil, n.Name, n.Constraint)
}
func (n *RecordElementConstraint) Format() string {
	return n.Name.Format() + " " + n.Constraint.Format()
}

// SubtypeIndication is `[resolution_indication] type_mark [constraint]`.
type SubtypeIndication struct {
	base
	Resolution *ResolutionIndication
	Mark       *TypeMark
	Constraint Node
}

func (n *SubtypeIndication) KindName() string { return "subtype_indication" }
func (n *SubtypeIndication) Children() []Node {
	return appendNonNil(nil, n.Resolution, n.Mark, n.Constraint)
}
func (n *SubtypeIndication) Format() string {
	var parts []string
	if n.Resolution != nil {
		parts = append(parts, n.Resolution.Format())
	}
	parts = append(parts, n.Mark.Format())
	s := strings.Join(parts, " ")
	if n.Constraint != nil {
		s += " " + n.Constraint.Format()
	}
	return s
}

// EnumerationTypeDefinition is `( literal {, literal} )`, where each literal
// is an Identifier or a CharacterLiteral.
type EnumerationTypeDefinition struct {
	base
	Literals []Node
}

func (n *EnumerationTypeDefinition) KindName() string { return "enumeration_type_definition" }
func (n *EnumerationTypeDefinition) Children() []Node  { return appendSeq(nil, n.Literals) }
func (n *EnumerationTypeDefinition) Format() string {
	parts := make([]string, len(n.Literals))
	for i, l := range n.Literals {
		parts[i] = l.Format()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ElementDeclaration is one field of a record type.
type ElementDeclaration struct {
	base
	Identifiers []*Identifier
	Subtype     *SubtypeIndication
}

func (n *ElementDeclaration) KindName() string { return "element_declaration" }
func (n *ElementDeclaration) Children() []Node {
	dst := appendSeq(nil, n.Identifiers)
	return appendNonNil(dst, n.Subtype)
}
func (n *ElementDeclaration) Format() string {
	return formatSeq(n.Identifiers, ", ") + " : " + n.Subtype.Format() + ";"
}

// RecordTypeDefinition is `record element_declaration+ end record [id]`.
type RecordTypeDefinition struct {
	base
	Elements []*ElementDeclaration
}

func (n *RecordTypeDefinition) KindName() string { return "record_type_definition" }
func (n *RecordTypeDefinition) Children() []Node  { return appendSeq(nil, n.Elements) }
func (n *RecordTypeDefinition) Format() string {
	var sb strings.Builder
	sb.WriteString("record\n")
	for _, e := range n.Elements {
		sb.WriteString(e.Format())
		sb.WriteString("\n")
	}
	sb.WriteString("end record")
	return sb.String()
}

// ArrayTypeDefinition is either `array (type_mark range <>) of subtype` or
// `array (index_constraint) of subtype`.
type ArrayTypeDefinition struct {
	base
	Unconstrained bool
	IndexTypes    []*TypeMark // unconstrained form: one per index
	Constraint    *IndexConstraint
	Element       *SubtypeIndication
}

func (n *ArrayTypeDefinition) KindName() string { return "array_type_definition" }
func (n *ArrayTypeDefinition) Children() []Node {
	dst := appendSeq(nil, n.IndexTypes)
	dst = appendNonNil(dst, n.Constraint, n.Element)
	return dst
}
func (n *ArrayTypeDefinition) Format() string {
	var sb strings.Builder
	sb.WriteString("array (")
	if n.Unconstrained {
		parts := make([]string, len(n.IndexTypes))
		for i, t := range n.IndexTypes {
			parts[i] = t.Format() + " range <>"
		}
		sb.WriteString(strings.Join(parts, ", "))
	} else {
		sb.WriteString(strings.TrimSuffix(strings.TrimPrefix(n.Constraint.Format(), "("), ")"))
	}
	sb.WriteString(") of ")
	sb.WriteString(n.Element.Format())
	return sb.String()
}

// AccessTypeDefinition is `access subtype_indication`.
type AccessTypeDefinition struct {
	base
	Designated *SubtypeIndication
}

func (n *AccessTypeDefinition) KindName() string { return "access_type_definition" }
func (n *AccessTypeDefinition) Children() []Node  { return appendNonNil(nil, n.Designated) }
func (n *AccessTypeDefinition) Format() string    { return "access " + n.Designated.Format() }

// FileTypeDefinition is `file of type_mark`.
type FileTypeDefinition struct {
	base
	Of *TypeMark
}

func (n *FileTypeDefinition) KindName() string { return "file_type_definition" }
func (n *FileTypeDefinition) Children() []Node  { return appendNonNil(nil, n.Of) }
func (n *FileTypeDefinition) Format() string    { return "file of " + n.Of.Format() }

// ProtectedTypeDeclaration is `protected declarative_item* end protected`.
// The declarative part is kept as opaque source text: full protected-type
// body parsing is out of scope for this subset.
type ProtectedTypeDeclaration struct {
	base
	RawBody string
}

func (n *ProtectedTypeDeclaration) KindName() string { return "protected_type_declaration" }
func (n *ProtectedTypeDeclaration) Children() []Node  { return nil }
func (n *ProtectedTypeDeclaration) Format() string {
	return "protected" + n.RawBody + "end protected"
}

// ProtectedTypeBody mirrors ProtectedTypeDeclaration for `protected body`.
type ProtectedTypeBody struct {
	base
	RawBody string
}

func (n *ProtectedTypeBody) KindName() string { return "protected_type_body" }
func (n *ProtectedTypeBody) Children() []Node  { return nil }
func (n *ProtectedTypeBody) Format() string {
	return "protected body" + n.RawBody + "end protected body"
}

// FullTypeDeclaration is `type identifier is type_definition;`.
type FullTypeDeclaration struct {
	base
	Identifier *Identifier
	Definition Node
}

func (n *FullTypeDeclaration) KindName() string { return "full_type_declaration" }
func (n *FullTypeDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.Definition)
}
func (n *FullTypeDeclaration) Format() string {
	return "type " + n.Identifier.Format() + " is " + n.Definition.Format() + ";"
}

// IncompleteTypeDeclaration is `type identifier;`.
type IncompleteTypeDeclaration struct {
	base
	Identifier *Identifier
}

func (n *IncompleteTypeDeclaration) KindName() string { return "incomplete_type_declaration" }
func (n *IncompleteTypeDeclaration) Children() []Node  { return appendNonNil(nil, n.Identifier) }
func (n *IncompleteTypeDeclaration) Format() string {
	return "type " + n.Identifier.Format() + ";"
}

// SubtypeDeclaration is `subtype identifier is subtype_indication;`.
type SubtypeDeclaration struct {
	base
	Identifier *Identifier
	Subtype    *SubtypeIndication
}

func (n *SubtypeDeclaration) KindName() string { return "subtype_declaration" }
func (n *SubtypeDeclaration) Children() []Node {
	return appendNonNil(nil, n.Identifier, n.Subtype)
}
func (n *SubtypeDeclaration) Format() string {
	return "subtype " + n.Identifier.Format() + " is " + n.Subtype.Format() + ";"
}
