// Package project implements the library/package/module semantic model
// spec §3.3/§4.5 builds on top of a parsed cst.DesignFile: an in-memory,
// case-insensitive index of libraries, the modules and packages their
// design units contribute, and generic-package instantiation. Grounded on
// Analyzer.py's Project/Library/Module/DeclaredPackage/InstancedPackage
// dataclasses; Go structs plus ordered slices replace the Python
// dataclasses-plus-dict combination, keeping insertion order as the
// source's own `packages`/`modules` lists do.
package project

import (
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

// File identifies one parsed source file by path; it carries no content
// after parse (spec §3.3).
type File struct {
	Path string
}

// Direction is an interface net's mode (spec §3.3's InterfaceNet).
type Direction string

const (
	DirIn     Direction = "in"
	DirOut    Direction = "out"
	DirInout  Direction = "inout"
	DirBuffer Direction = "buffer"
	DirLinkage Direction = "linkage"
)

// AccessClass is an interface net's class (spec §3.3).
type AccessClass string

const (
	AccessConstant AccessClass = "constant"
	AccessSignal   AccessClass = "signal"
	AccessVariable AccessClass = "variable"
)

// InterfaceNet is a generic or port entry shared by modules and packages
// (spec §3.3).
type InterfaceNet struct {
	Name      string
	Access    AccessClass
	Type      string
	Default   string // rendered via Format(); empty when absent
	Direction Direction
}

// InterfaceType is a generic type parameter (`type t`).
type InterfaceType struct {
	Name string
}

// InterfaceSubprogram is a generic subprogram parameter.
type InterfaceSubprogram struct {
	Name    string
	Default string
}

// InterfacePackage is a generic package parameter (`package id is new base`).
type InterfacePackage struct {
	Name     string
	BaseName string
}

// Module is an entity plus its (possibly still-missing) architecture
// (spec §3.3).
type Module struct {
	Name         string
	Files        []string
	ArchName     string
	Context      *cst.ContextClause
	Parameters   []InterfaceNet
	Types        []InterfaceType
	Subprograms  []InterfaceSubprogram
	Packages     []InterfacePackage
	Ports        []InterfaceNet
	Declarations []cst.Node
	Statements   []cst.ConcurrentStatement
}

func (m *Module) addFile(path string) {
	for _, f := range m.Files {
		if f == path {
			return
		}
	}
	m.Files = append(m.Files, path)
}

// DeclaredPackage is a package declaration plus its (optional) body
// (spec §3.3).
type DeclaredPackage struct {
	Name        string
	Files       []string
	HasBody     bool
	Parameters  []InterfaceNet
	Types       []InterfaceType
	Subprograms []InterfaceSubprogram
	Packages    []InterfacePackage
	Components  []string
	Constants   []string
}

func (p *DeclaredPackage) addFile(path string) {
	for _, f := range p.Files {
		if f == path {
			return
		}
	}
	p.Files = append(p.Files, path)
}

// GenericMapEntry is one `(formal | positional-index, actual)` pair of an
// instantiated package's generic map (spec §3.3, §8 scenario 4).
type GenericMapEntry struct {
	Formal   string // empty when positional
	Position int    // 0-based, valid regardless of Formal
	Actual   string
}

// InstancedPackage is a generic package instantiation (spec §3.3, §4.5).
type InstancedPackage struct {
	Name        string
	Files       []string
	Declaration *DeclaredPackage
	Mapping     []GenericMapEntry
}

// ResolvedGenericDefault returns the actual text an instantiation supplies
// for the named generic, falling back to the declared package's default
// when the map doesn't override it (spec SPEC_FULL §C.3, grounded on
// Analyzer.py's print_simple generic-default overlay). position is the
// generic's 0-based index within Declaration.Parameters, used to resolve a
// positional (unnamed) map entry.
func (ip *InstancedPackage) ResolvedGenericDefault(name string, position int) string {
	for _, e := range ip.Mapping {
		if e.Formal != "" && strings.EqualFold(e.Formal, name) {
			return e.Actual
		}
	}
	for _, e := range ip.Mapping {
		if e.Formal == "" && e.Position == position {
			return e.Actual
		}
	}
	if ip.Declaration != nil && position < len(ip.Declaration.Parameters) {
		return ip.Declaration.Parameters[position].Default
	}
	return ""
}

// Library is a namespace of design units, identified case-insensitively
// (spec §3.3).
type Library struct {
	Name             string
	Modules          []*Module
	Packages         []*DeclaredPackage
	InstancedPackages []*InstancedPackage
}

func (l *Library) findModule(name string) *Module {
	for _, m := range l.Modules {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}

func (l *Library) findPackage(name string) *DeclaredPackage {
	for _, p := range l.Packages {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func (l *Library) findInstancedPackage(name string) *InstancedPackage {
	for _, p := range l.InstancedPackages {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Project is an ordered sequence of libraries (spec §3.3).
type Project struct {
	Libraries []*Library
}

// New returns an empty project.
func New() *Project {
	return &Project{}
}

// AddLibrary appends a new, empty library, failing with
// vhdlerrors.DuplicateLibrary if the case-insensitive name is already taken
// (spec §4.5).
func (p *Project) AddLibrary(name string) (*Library, error) {
	if p.GetLibraryQuiet(name) != nil {
		return nil, &vhdlerrors.LibraryError{Kind: vhdlerrors.DuplicateLibrary, Name: name}
	}
	lib := &Library{Name: name}
	p.Libraries = append(p.Libraries, lib)
	return lib, nil
}

// GetLibrary looks up a library case-insensitively, failing with
// vhdlerrors.UnknownLibrary (spec §4.5).
func (p *Project) GetLibrary(name string) (*Library, error) {
	if lib := p.GetLibraryQuiet(name); lib != nil {
		return lib, nil
	}
	return nil, &vhdlerrors.LibraryError{Kind: vhdlerrors.UnknownLibrary, Name: name}
}

// GetLibraryQuiet is GetLibrary without the error wrapper, used internally
// by AddLibrary's uniqueness check and callers that want a nil rather than
// an error on miss.
func (p *Project) GetLibraryQuiet(name string) *Library {
	for _, l := range p.Libraries {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

// GetOrAddLibrary returns the named library, creating it if absent — the
// convenience the driver uses when a file names a library for the first
// time (spec §4.6's "for each file the target library").
func (p *Project) GetOrAddLibrary(name string) *Library {
	if lib := p.GetLibraryQuiet(name); lib != nil {
		return lib
	}
	lib, _ := p.AddLibrary(name)
	return lib
}
