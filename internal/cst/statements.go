package cst

import "strings"

// SequentialStatement is implemented by every statement form valid inside a
// process/subprogram body (spec §3.2's "sequential statements" group).
type SequentialStatement interface {
	Node
	sequentialStatement()
}

// ConcurrentStatement is implemented by every statement form valid directly
// inside an architecture body (spec §3.2's "concurrent statements" group).
type ConcurrentStatement interface {
	Node
	concurrentStatement()
}

func formatSeqStmts(stmts []SequentialStatement) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(s.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}

// WaitStatement is `wait [on sensitivity] [until cond] [for timeout];`.
type WaitStatement struct {
	base
	SensitivityList []Node
	Condition       Node
	Timeout         Node
}

func (n *WaitStatement) sequentialStatement() {}
func (n *WaitStatement) KindName() string     { return "wait_statement" }
func (n *WaitStatement) Children() []Node {
	dst := appendSeq(nil, n.SensitivityList)
	return appendNonNil(dst, n.Condition, n.Timeout)
}
func (n *WaitStatement) Format() string {
	s := "wait"
	if len(n.SensitivityList) > 0 {
		parts := make([]string, len(n.SensitivityList))
		for i, x := range n.SensitivityList {
			parts[i] = x.Format()
		}
		s += " on " + strings.Join(parts, ", ")
	}
	if n.Condition != nil {
		s += " until " + n.Condition.Format()
	}
	if n.Timeout != nil {
		s += " for " + n.Timeout.Format()
	}
	return s + ";"
}

// AssertionStatement is `assert cond [report msg] [severity sev];`.
type AssertionStatement struct {
	base
	Label     *Identifier
	Condition Node
	Report    Node
	Severity  Node
}

func (n *AssertionStatement) sequentialStatement() {}
func (n *AssertionStatement) KindName() string     { return "assertion_statement" }
func (n *AssertionStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Condition, n.Report, n.Severity)
}
func (n *AssertionStatement) Format() string {
	s := labelPrefix(n.Label) + "assert " + n.Condition.Format()
	if n.Report != nil {
		s += " report " + n.Report.Format()
	}
	if n.Severity != nil {
		s += " severity " + n.Severity.Format()
	}
	return s + ";"
}

func labelPrefix(id *Identifier) string {
	if id == nil {
		return ""
	}
	return id.Format() + " : "
}

// ReportStatement is `report msg [severity sev];`.
type ReportStatement struct {
	base
	Label    *Identifier
	Report   Node
	Severity Node
}

func (n *ReportStatement) sequentialStatement() {}
func (n *ReportStatement) KindName() string     { return "report_statement" }
func (n *ReportStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Report, n.Severity)
}
func (n *ReportStatement) Format() string {
	s := labelPrefix(n.Label) + "report " + n.Report.Format()
	if n.Severity != nil {
		s += " severity " + n.Severity.Format()
	}
	return s + ";"
}

// IfBranch is one `elsif cond then stmts` arm, or the trailing `else`
// (Condition nil) of an IfStatement.
type IfBranch struct {
	base
	Condition Node // nil for the else branch
	Body      []SequentialStatement
}

func (n *IfBranch) KindName() string { return "if_branch" }
func (n *IfBranch) Children() []Node {
	dst := appendNonNil(nil, n.Condition)
	return appendSeq(dst, n.Body)
}
func (n *IfBranch) Format() string {
	if n.Condition == nil {
		return "else\n" + formatSeqStmts(n.Body)
	}
	return "elsif " + n.Condition.Format() + " then\n" + formatSeqStmts(n.Body)
}

// IfStatement is `if cond then stmts {elsif cond then stmts} [else stmts] end if;`.
type IfStatement struct {
	base
	Label     *Identifier
	Condition Node
	Then      []SequentialStatement
	Elsifs    []*IfBranch
	Else      *IfBranch
}

func (n *IfStatement) sequentialStatement() {}
func (n *IfStatement) KindName() string     { return "if_statement" }
func (n *IfStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Condition)
	dst = appendSeq(dst, n.Then)
	dst = appendSeq(dst, n.Elsifs)
	return appendNonNil(dst, n.Else)
}
func (n *IfStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(labelPrefix(n.Label))
	sb.WriteString("if ")
	sb.WriteString(n.Condition.Format())
	sb.WriteString(" then\n")
	sb.WriteString(formatSeqStmts(n.Then))
	for _, e := range n.Elsifs {
		sb.WriteString(e.Format())
	}
	if n.Else != nil {
		sb.WriteString(n.Else.Format())
	}
	sb.WriteString("end if;")
	return sb.String()
}

// CaseAlternative is `when choices => stmts`.
type CaseAlternative struct {
	base
	Choices []Node
	Body    []SequentialStatement
}

func (n *CaseAlternative) KindName() string { return "case_statement_alternative" }
func (n *CaseAlternative) Children() []Node {
	dst := appendSeq(nil, n.Choices)
	return appendSeq(dst, n.Body)
}
func (n *CaseAlternative) Format() string {
	parts := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		parts[i] = c.Format()
	}
	return "when " + strings.Join(parts, " | ") + " =>\n" + formatSeqStmts(n.Body)
}

// CaseStatement is `case expr is case_statement_alternative+ end case;`.
type CaseStatement struct {
	base
	Label        *Identifier
	Selector     Node
	Alternatives []*CaseAlternative
}

func (n *CaseStatement) sequentialStatement() {}
func (n *CaseStatement) KindName() string     { return "case_statement" }
func (n *CaseStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Selector)
	return appendSeq(dst, n.Alternatives)
}
func (n *CaseStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(labelPrefix(n.Label))
	sb.WriteString("case ")
	sb.WriteString(n.Selector.Format())
	sb.WriteString(" is\n")
	for _, a := range n.Alternatives {
		sb.WriteString(a.Format())
	}
	sb.WriteString("end case;")
	return sb.String()
}

// IterationScheme is `while cond` or `for id in discrete_range`.
type IterationScheme struct {
	base
	While     Node
	ForVar    *Identifier
	ForRange  *DiscreteRange
}

func (n *IterationScheme) KindName() string { return "iteration_scheme" }
func (n *IterationScheme) Children() []Node {
	return appendNonNil(nil, n.While, n.ForVar, n.ForRange)
}
func (n *IterationScheme) Format() string {
	if n.While != nil {
		return "while " + n.While.Format()
	}
	return "for " + n.ForVar.Format() + " in " + n.ForRange.Format()
}

// LoopStatement is `[scheme] loop stmts end loop;`.
type LoopStatement struct {
	base
	Label  *Identifier
	Scheme *IterationScheme
	Body   []SequentialStatement
}

func (n *LoopStatement) sequentialStatement() {}
func (n *LoopStatement) KindName() string     { return "loop_statement" }
func (n *LoopStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Scheme)
	return appendSeq(dst, n.Body)
}
func (n *LoopStatement) Format() string {
	s := labelPrefix(n.Label)
	if n.Scheme != nil {
		s += n.Scheme.Format() + " "
	}
	s += "loop\n" + formatSeqStmts(n.Body) + "end loop;"
	return s
}

// NextStatement is `next [label] [when cond];`.
type NextStatement struct {
	base
	Loop      *Identifier
	Condition Node
}

func (n *NextStatement) sequentialStatement() {}
func (n *NextStatement) KindName() string     { return "next_statement" }
func (n *NextStatement) Children() []Node     { return appendNonNil(nil, n.Loop, n.Condition) }
func (n *NextStatement) Format() string {
	s := "next"
	if n.Loop != nil {
		s += " " + n.Loop.Format()
	}
	if n.Condition != nil {
		s += " when " + n.Condition.Format()
	}
	return s + ";"
}

// ExitStatement is `exit [label] [when cond];`.
type ExitStatement struct {
	base
	Loop      *Identifier
	Condition Node
}

func (n *ExitStatement) sequentialStatement() {}
func (n *ExitStatement) KindName() string     { return "exit_statement" }
func (n *ExitStatement) Children() []Node     { return appendNonNil(nil, n.Loop, n.Condition) }
func (n *ExitStatement) Format() string {
	s := "exit"
	if n.Loop != nil {
		s += " " + n.Loop.Format()
	}
	if n.Condition != nil {
		s += " when " + n.Condition.Format()
	}
	return s + ";"
}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	base
	Value Node
}

func (n *ReturnStatement) sequentialStatement() {}
func (n *ReturnStatement) KindName() string     { return "return_statement" }
func (n *ReturnStatement) Children() []Node     { return appendNonNil(nil, n.Value) }
func (n *ReturnStatement) Format() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.Format() + ";"
}

// NullStatement is `null;`.
type NullStatement struct{ base }

func (n *NullStatement) sequentialStatement() {}
func (n *NullStatement) KindName() string     { return "null_statement" }
func (n *NullStatement) Children() []Node     { return nil }
func (n *NullStatement) Format() string       { return "null;" }

// SimpleSignalAssignment is `target <= [transport|inertial] waveform;`.
type SimpleSignalAssignment struct {
	base
	Label    *Identifier
	Target   Node
	Delay    string // "transport" | "inertial" | ""
	Waveform Node
}

func (n *SimpleSignalAssignment) sequentialStatement() {}
func (n *SimpleSignalAssignment) KindName() string     { return "simple_signal_assignment" }
func (n *SimpleSignalAssignment) Children() []Node {
	return appendNonNil(nil, n.Label, n.Target, n.Waveform)
}
func (n *SimpleSignalAssignment) Format() string {
	s := labelPrefix(n.Label) + n.Target.Format() + " <= "
	if n.Delay != "" {
		s += n.Delay + " "
	}
	return s + n.Waveform.Format() + ";"
}

// SimpleVariableAssignment is `target := expr;`.
type SimpleVariableAssignment struct {
	base
	Label  *Identifier
	Target Node
	Value  Node
}

func (n *SimpleVariableAssignment) sequentialStatement() {}
func (n *SimpleVariableAssignment) KindName() string     { return "simple_variable_assignment" }
func (n *SimpleVariableAssignment) Children() []Node {
	return appendNonNil(nil, n.Label, n.Target, n.Value)
}
func (n *SimpleVariableAssignment) Format() string {
	return labelPrefix(n.Label) + n.Target.Format() + " := " + n.Value.Format() + ";"
}

// ProcedureCallStatement is `[label:] name [(association_list)];`.
type ProcedureCallStatement struct {
	base
	Label *Identifier
	Name  Node
	Args  *AssociationList
}

func (n *ProcedureCallStatement) sequentialStatement() {}
func (n *ProcedureCallStatement) KindName() string     { return "procedure_call_statement" }
func (n *ProcedureCallStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Name, n.Args)
}
func (n *ProcedureCallStatement) Format() string {
	s := labelPrefix(n.Label) + n.Name.Format()
	if n.Args != nil {
		s += "(" + n.Args.Format() + ")"
	}
	return s + ";"
}

// ---- concurrent statements ----

// ProcessStatement is `[label:] [postponed] process [(sensitivity)] [is]
// declarative_part begin sequence_of_statements end [postponed] process [label];`.
type ProcessStatement struct {
	base
	Label           *Identifier
	Postponed       bool
	SensitivityList []Node
	Declarations    []Node
	Statements      []SequentialStatement
}

func (n *ProcessStatement) concurrentStatement() {}
func (n *ProcessStatement) KindName() string     { return "process_statement" }
func (n *ProcessStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label)
	dst = appendSeq(dst, n.SensitivityList)
	dst = appendSeq(dst, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *ProcessStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(labelPrefix(n.Label))
	if n.Postponed {
		sb.WriteString("postponed ")
	}
	sb.WriteString("process")
	if len(n.SensitivityList) > 0 {
		parts := make([]string, len(n.SensitivityList))
		for i, s := range n.SensitivityList {
			parts[i] = s.Format()
		}
		sb.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	sb.WriteString(" is\n")
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("begin\n")
	sb.WriteString(formatSeqStmts(n.Statements))
	sb.WriteString("end process;")
	return sb.String()
}

// BlockStatement is `label: block [(guard)] [is] declarative_part begin
// concurrent_statements end block [label];`.
type BlockStatement struct {
	base
	Label        *Identifier
	Guard        Node
	Declarations []Node
	Statements   []ConcurrentStatement
}

func (n *BlockStatement) concurrentStatement() {}
func (n *BlockStatement) KindName() string     { return "block_statement" }
func (n *BlockStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Guard)
	dst = appendSeq(dst, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *BlockStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(n.Label.Format() + " : block")
	if n.Guard != nil {
		sb.WriteString(" (" + n.Guard.Format() + ")")
	}
	sb.WriteString(" is\n")
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	sb.WriteString("begin\n")
	for _, s := range n.Statements {
		sb.WriteString(s.Format() + "\n")
	}
	sb.WriteString("end block;")
	return sb.String()
}

// ComponentInstantiationStatement is `label: [component|entity|configuration]
// name [generic map (...)] [port map (...)];`.
type ComponentInstantiationStatement struct {
	base
	Label       *Identifier
	UnitKind    string // "component" | "entity" | "configuration" | ""
	Name        Node
	GenericMap  *GenericMapAspect
	PortMap     *PortMapAspect
}

func (n *ComponentInstantiationStatement) concurrentStatement() {}
func (n *ComponentInstantiationStatement) KindName() string {
	return "component_instantiation_statement"
}
func (n *ComponentInstantiationStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Name, n.GenericMap, n.PortMap)
}
func (n *ComponentInstantiationStatement) Format() string {
	s := n.Label.Format() + " : "
	if n.UnitKind != "" {
		s += n.UnitKind + " "
	}
	s += n.Name.Format()
	if n.GenericMap != nil {
		s += " " + n.GenericMap.Format()
	}
	if n.PortMap != nil {
		s += " " + n.PortMap.Format()
	}
	return s + ";"
}

// ConcurrentSimpleSignalAssignment is `[label:] target <= waveform;` outside a process.
type ConcurrentSimpleSignalAssignment struct {
	base
	Label    *Identifier
	Target   Node
	Waveform Node
}

func (n *ConcurrentSimpleSignalAssignment) concurrentStatement() {}
func (n *ConcurrentSimpleSignalAssignment) KindName() string {
	return "concurrent_simple_signal_assignment"
}
func (n *ConcurrentSimpleSignalAssignment) Children() []Node {
	return appendNonNil(nil, n.Label, n.Target, n.Waveform)
}
func (n *ConcurrentSimpleSignalAssignment) Format() string {
	return labelPrefix(n.Label) + n.Target.Format() + " <= " + n.Waveform.Format() + ";"
}

// ConditionalWaveform is one `waveform when condition` arm of a conditional
// signal assignment, with Condition nil on the trailing unconditional arm.
type ConditionalWaveform struct {
	base
	Waveform  Node
	Condition Node
}

func (n *ConditionalWaveform) KindName() string { return "conditional_waveform" }
func (n *ConditionalWaveform) Children() []Node {
	return appendNonNil(nil, n.Waveform, n.Condition)
}
func (n *ConditionalWaveform) Format() string {
	if n.Condition == nil {
		return n.Waveform.Format()
	}
	return n.Waveform.Format() + " when " + n.Condition.Format()
}

// ConcurrentConditionalSignalAssignment is
// `target <= waveform when cond {else waveform when cond} [else waveform];`.
type ConcurrentConditionalSignalAssignment struct {
	base
	Label  *Identifier
	Target Node
	Arms   []*ConditionalWaveform
}

func (n *ConcurrentConditionalSignalAssignment) concurrentStatement() {}
func (n *ConcurrentConditionalSignalAssignment) KindName() string {
	return "concurrent_conditional_signal_assignment"
}
func (n *ConcurrentConditionalSignalAssignment) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Target)
	return appendSeq(dst, n.Arms)
}
func (n *ConcurrentConditionalSignalAssignment) Format() string {
	parts := make([]string, len(n.Arms))
	for i, a := range n.Arms {
		parts[i] = a.Format()
	}
	return labelPrefix(n.Label) + n.Target.Format() + " <= " + strings.Join(parts, " else ") + ";"
}

// SelectedWaveform is one `waveform when choices` arm of a selected signal
// assignment.
type SelectedWaveform struct {
	base
	Waveform Node
	Choices  []Node
}

func (n *SelectedWaveform) KindName() string { return "selected_waveform" }
func (n *SelectedWaveform) Children() []Node {
	dst := appendNonNil(nil, n.Waveform)
	return appendSeq(dst, n.Choices)
}
func (n *SelectedWaveform) Format() string {
	parts := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		parts[i] = c.Format()
	}
	return n.Waveform.Format() + " when " + strings.Join(parts, " | ")
}

// ConcurrentSelectedSignalAssignment is
// `with expr select target <= waveform when choices {, waveform when choices};`.
type ConcurrentSelectedSignalAssignment struct {
	base
	Label    *Identifier
	Selector Node
	Target   Node
	Waveforms []*SelectedWaveform
}

func (n *ConcurrentSelectedSignalAssignment) concurrentStatement() {}
func (n *ConcurrentSelectedSignalAssignment) KindName() string {
	return "concurrent_selected_signal_assignment"
}
func (n *ConcurrentSelectedSignalAssignment) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Selector, n.Target)
	return appendSeq(dst, n.Waveforms)
}
func (n *ConcurrentSelectedSignalAssignment) Format() string {
	parts := make([]string, len(n.Waveforms))
	for i, w := range n.Waveforms {
		parts[i] = w.Format()
	}
	return labelPrefix(n.Label) + "with " + n.Selector.Format() + " select " + n.Target.Format() +
		" <= " + strings.Join(parts, ", ") + ";"
}

// ConcurrentProcedureCallStatement is `[label:] [postponed] name [(args)];`
// appearing directly in an architecture's statement part.
type ConcurrentProcedureCallStatement struct {
	base
	Label     *Identifier
	Postponed bool
	Name      Node
	Args      *AssociationList
}

func (n *ConcurrentProcedureCallStatement) concurrentStatement() {}
func (n *ConcurrentProcedureCallStatement) KindName() string {
	return "concurrent_procedure_call_statement"
}
func (n *ConcurrentProcedureCallStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Name, n.Args)
}
func (n *ConcurrentProcedureCallStatement) Format() string {
	s := labelPrefix(n.Label)
	if n.Postponed {
		s += "postponed "
	}
	s += n.Name.Format()
	if n.Args != nil {
		s += "(" + n.Args.Format() + ")"
	}
	return s + ";"
}

// ConcurrentAssertionStatement mirrors AssertionStatement at the
// concurrent-statement level.
type ConcurrentAssertionStatement struct {
	base
	Label     *Identifier
	Postponed bool
	Condition Node
	Report    Node
	Severity  Node
}

func (n *ConcurrentAssertionStatement) concurrentStatement() {}
func (n *ConcurrentAssertionStatement) KindName() string {
	return "concurrent_assertion_statement"
}
func (n *ConcurrentAssertionStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Condition, n.Report, n.Severity)
}
func (n *ConcurrentAssertionStatement) Format() string {
	s := labelPrefix(n.Label)
	if n.Postponed {
		s += "postponed "
	}
	s += "assert " + n.Condition.Format()
	if n.Report != nil {
		s += " report " + n.Report.Format()
	}
	if n.Severity != nil {
		s += " severity " + n.Severity.Format()
	}
	return s + ";"
}

// GenerateStatementBody is the declarative-part + statement-part shared by
// every generate scheme's body.
type GenerateStatementBody struct {
	base
	Declarations []Node
	Statements   []ConcurrentStatement
}

func (n *GenerateStatementBody) KindName() string { return "generate_statement_body" }
func (n *GenerateStatementBody) Children() []Node {
	dst := appendSeq(nil, n.Declarations)
	return appendSeq(dst, n.Statements)
}
func (n *GenerateStatementBody) Format() string {
	var sb strings.Builder
	for _, d := range n.Declarations {
		sb.WriteString(d.Format() + "\n")
	}
	if len(n.Declarations) > 0 {
		sb.WriteString("begin\n")
	}
	for _, s := range n.Statements {
		sb.WriteString(s.Format() + "\n")
	}
	return sb.String()
}

// ForGenerateStatement is `label: for id in range generate body end generate [label];`.
type ForGenerateStatement struct {
	base
	Label    *Identifier
	Variable *Identifier
	Range    *DiscreteRange
	Body     *GenerateStatementBody
}

func (n *ForGenerateStatement) concurrentStatement() {}
func (n *ForGenerateStatement) KindName() string     { return "for_generate_statement" }
func (n *ForGenerateStatement) Children() []Node {
	return appendNonNil(nil, n.Label, n.Variable, n.Range, n.Body)
}
func (n *ForGenerateStatement) Format() string {
	return n.Label.Format() + " : for " + n.Variable.Format() + " in " + n.Range.Format() +
		" generate\n" + n.Body.Format() + "end generate;"
}

// IfGenerateBranch is one `[label:] cond generate body` arm (the trailing
// `else generate` arm has Condition nil).
type IfGenerateBranch struct {
	base
	Label     *Identifier
	Condition Node
	Body      *GenerateStatementBody
}

func (n *IfGenerateBranch) KindName() string { return "if_generate_branch" }
func (n *IfGenerateBranch) Children() []Node {
	return appendNonNil(nil, n.Label, n.Condition, n.Body)
}
func (n *IfGenerateBranch) Format() string {
	if n.Condition == nil {
		return "else generate\n" + n.Body.Format()
	}
	return n.Condition.Format() + " generate\n" + n.Body.Format()
}

// IfGenerateStatement is `label: if [alt:] cond generate body {elsif ...} [else ...] end generate [label];`.
type IfGenerateStatement struct {
	base
	Label  *Identifier
	Then   *IfGenerateBranch
	Elsifs []*IfGenerateBranch
	Else   *IfGenerateBranch
}

func (n *IfGenerateStatement) concurrentStatement() {}
func (n *IfGenerateStatement) KindName() string     { return "if_generate_statement" }
func (n *IfGenerateStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Then)
	dst = appendSeq(dst, n.Elsifs)
	return appendNonNil(dst, n.Else)
}
func (n *IfGenerateStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(n.Label.Format() + " : if " + n.Then.Format())
	for _, e := range n.Elsifs {
		sb.WriteString("elsif " + e.Format())
	}
	if n.Else != nil {
		sb.WriteString(n.Else.Format())
	}
	sb.WriteString("end generate;")
	return sb.String()
}

// CaseGenerateAlternative is one `when [alt:] choices => body` arm.
type CaseGenerateAlternative struct {
	base
	Label   *Identifier
	Choices []Node
	Body    *GenerateStatementBody
}

func (n *CaseGenerateAlternative) KindName() string { return "case_generate_alternative" }
func (n *CaseGenerateAlternative) Children() []Node {
	dst := appendNonNil(nil, n.Label)
	dst = appendSeq(dst, n.Choices)
	return appendNonNil(dst, n.Body)
}
func (n *CaseGenerateAlternative) Format() string {
	parts := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		parts[i] = c.Format()
	}
	return "when " + strings.Join(parts, " | ") + " => \n" + n.Body.Format()
}

// CaseGenerateStatement is `label: case expr generate alternative+ end generate [label];`.
type CaseGenerateStatement struct {
	base
	Label        *Identifier
	Selector     Node
	Alternatives []*CaseGenerateAlternative
}

func (n *CaseGenerateStatement) concurrentStatement() {}
func (n *CaseGenerateStatement) KindName() string     { return "case_generate_statement" }
func (n *CaseGenerateStatement) Children() []Node {
	dst := appendNonNil(nil, n.Label, n.Selector)
	return appendSeq(dst, n.Alternatives)
}
func (n *CaseGenerateStatement) Format() string {
	var sb strings.Builder
	sb.WriteString(n.Label.Format() + " : case " + n.Selector.Format() + " generate\n")
	for _, a := range n.Alternatives {
		sb.WriteString(a.Format())
	}
	sb.WriteString("end generate;")
	return sb.String()
}
