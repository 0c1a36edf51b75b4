// Package printer implements the two pure, CST-preserving renderings spec
// §4.4 requires: a compact indented tree listing and a "rich" rendering
// that additionally annotates each field with its declared union type and
// underlines the chosen variant. Grounded on Analyzer.py's Tree.print /
// Tree.rich_tree, reimplemented without the rich library (see DESIGN.md).
package printer

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
)

// Print renders a compact, deterministic indented tree listing: one line
// per node with its snake-cased production name, children indented one
// level, list-valued fields introduced by their field name followed by
// indexed children.
func Print(n cst.Node) string {
	var sb strings.Builder
	printNode(&sb, n, 0)
	return sb.String()
}

func printNode(sb *strings.Builder, n cst.Node, depth int) {
	if n == nil || isNil(n) {
		return
	}
	indent(sb, depth)
	sb.WriteString(n.KindName())
	sb.WriteString("\n")
	for _, field := range fieldsOf(n) {
		printField(sb, field, depth+1)
	}
}

func printField(sb *strings.Builder, f field, depth int) {
	if f.isList {
		indent(sb, depth)
		sb.WriteString(f.name)
		sb.WriteString(":\n")
		for i, item := range f.items {
			indent(sb, depth+1)
			sb.WriteString("[" + strconv.Itoa(i) + "]\n")
			printNode(sb, item, depth+2)
		}
		return
	}
	if f.value != nil && !isNil(f.value) {
		printNode(sb, f.value, depth)
	}
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

// PrintRich is Print's annotated counterpart: every field is prefixed with
// its Go field name and static type, and when that type is an interface
// (the union-valued fields spec §3.2 calls out), the chosen concrete
// variant is underlined with a line of '^' beneath its kind name.
func PrintRich(n cst.Node) string {
	var sb strings.Builder
	printNodeRich(&sb, n, 0)
	return sb.String()
}

func printNodeRich(sb *strings.Builder, n cst.Node, depth int) {
	if n == nil || isNil(n) {
		return
	}
	indent(sb, depth)
	sb.WriteString(n.KindName())
	sb.WriteString("\n")
	for _, field := range fieldsOf(n) {
		printFieldRich(sb, field, depth+1)
	}
}

func printFieldRich(sb *strings.Builder, f field, depth int) {
	indent(sb, depth)
	sb.WriteString(f.name)
	sb.WriteString(" : ")
	sb.WriteString(f.declaredType)
	sb.WriteString("\n")
	if f.isList {
		for i, item := range f.items {
			indent(sb, depth+1)
			sb.WriteString("[" + strconv.Itoa(i) + "]\n")
			annotateChosen(sb, item, depth+2, f.declaredType)
		}
		return
	}
	if f.value != nil && !isNil(f.value) {
		annotateChosen(sb, f.value, depth+1, f.declaredType)
	}
}

// annotateChosen underlines a field's concrete kind name when the static
// field type was an interface (a genuine union), since that is the only
// case where "the actually chosen variant" carries information beyond the
// field's declared type.
func annotateChosen(sb *strings.Builder, n cst.Node, depth int, declaredType string) {
	if isInterfaceTypeName(declaredType) {
		indent(sb, depth)
		sb.WriteString(n.KindName())
		sb.WriteString("\n")
		indent(sb, depth)
		sb.WriteString(strings.Repeat("^", len(n.KindName())))
		sb.WriteString("\n")
		for _, field := range fieldsOf(n) {
			printFieldRich(sb, field, depth+1)
		}
		return
	}
	printNodeRich(sb, n, depth)
}

func isInterfaceTypeName(t string) bool {
	switch t {
	case "cst.Node", "cst.SequentialStatement", "cst.ConcurrentStatement",
		"cst.InterfaceElement", "cst.LibraryUnit":
		return true
	default:
		return false
	}
}

// field is one reflected struct field of a cst.Node value: either a single
// node-valued field or a slice of them, with its static Go type recorded
// for the rich rendering.
type field struct {
	name         string
	declaredType string
	value        cst.Node
	isList       bool
	items        []cst.Node
}

var nodeType = reflect.TypeOf((*cst.Node)(nil)).Elem()

// fieldsOf reflects over n's exported struct fields (skipping the embedded
// base) and reports each one that holds a cst.Node or a slice of them, in
// declaration order — the same information Children() flattens, but with
// field names and static types attached for PrintRich.
func fieldsOf(n cst.Node) []field {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch {
		case sf.Type.Kind() == reflect.Slice && elemImplementsNode(sf.Type.Elem()):
			var items []cst.Node
			for j := 0; j < fv.Len(); j++ {
				if node, ok := asNode(fv.Index(j)); ok {
					items = append(items, node)
				}
			}
			fields = append(fields, field{name: sf.Name, declaredType: typeName(sf.Type.Elem()) + "[]", isList: true, items: items})
		case implementsNode(sf.Type):
			if node, ok := asNode(fv); ok {
				fields = append(fields, field{name: sf.Name, declaredType: typeName(sf.Type), value: node})
			}
		}
	}
	return fields
}

func implementsNode(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		return t.Implements(nodeType)
	}
	return t.Implements(nodeType) || (t.Kind() == reflect.Interface)
}

func elemImplementsNode(t reflect.Type) bool {
	return implementsNode(t)
}

func asNode(v reflect.Value) (cst.Node, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, false
	}
	n, ok := v.Interface().(cst.Node)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		return "*" + typeName(t.Elem())
	}
	if t.PkgPath() != "" {
		parts := strings.Split(t.PkgPath(), "/")
		return parts[len(parts)-1] + "." + t.Name()
	}
	return t.String()
}

func isNil(n cst.Node) bool {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// FormatSummary is a one-line `path: kind_name` header used by the CLI's
// --debug output.
func FormatSummary(path string, n cst.Node) string {
	return fmt.Sprintf("%s: %s", path, n.KindName())
}
