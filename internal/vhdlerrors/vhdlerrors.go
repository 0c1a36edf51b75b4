// Package vhdlerrors defines the tagged error kinds of spec §7. Each is a
// distinct Go type (never an ad-hoc string), so callers can branch on kind
// with errors.As rather than string matching.
package vhdlerrors

import "fmt"

// ParseFailure means the parser could not continue past Pos; the file is
// skipped (spec §7.1).
type ParseFailure struct {
	Path             string
	Pos              fmt.Stringer
	ExpectedTokens   []string
	ConsideredRules  []string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("%s:%s: parse failure, expected one of %v (considered rules: %v)",
		e.Path, e.Pos, e.ExpectedTokens, e.ConsideredRules)
}

// AmbiguityUnresolved reports a span where more than one derivation
// survived the shaper; the builder takes the first child and this is
// surfaced as a warning, not a hard failure (spec §7.2).
type AmbiguityUnresolved struct {
	Path         string
	Span         string
	Alternatives int
}

func (e *AmbiguityUnresolved) Error() string {
	return fmt.Sprintf("%s: %d derivations remain unresolved at %s, taking the first", e.Path, e.Alternatives, e.Span)
}

// LibraryErrorKind enumerates the two library-level failures (spec §7.3).
type LibraryErrorKind int

const (
	DuplicateLibrary LibraryErrorKind = iota
	UnknownLibrary
)

func (k LibraryErrorKind) String() string {
	switch k {
	case DuplicateLibrary:
		return "DuplicateLibrary"
	case UnknownLibrary:
		return "UnknownLibrary"
	default:
		return "unknown"
	}
}

// LibraryError is raised by Project.AddLibrary / Project.GetLibrary.
type LibraryError struct {
	Kind LibraryErrorKind
	Name string
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Name)
}

// ProjectErrorKind enumerates the project-fold failures of spec §7.4.
type ProjectErrorKind int

const (
	EntityExists ProjectErrorKind = iota
	NoSuchEntity
	ArchitectureExists
	PackageExists
	NoSuchPackage
	BodyExists
)

func (k ProjectErrorKind) String() string {
	switch k {
	case EntityExists:
		return "EntityExists"
	case NoSuchEntity:
		return "NoSuchEntity"
	case ArchitectureExists:
		return "ArchitectureExists"
	case PackageExists:
		return "PackageExists"
	case NoSuchPackage:
		return "NoSuchPackage"
	case BodyExists:
		return "BodyExists"
	default:
		return "unknown"
	}
}

// ProjectError carries the offending name and the files already
// contributing to it (spec §7.4).
type ProjectError struct {
	Kind  ProjectErrorKind
	Name  string
	Files []string
}

func (e *ProjectError) Error() string {
	return fmt.Sprintf("%s: %q (contributed by %v)", e.Kind, e.Name, e.Files)
}

// UnsupportedUnit is a warning (not fatal) for library units the project
// model recognises syntactically but does not fold in (spec §7.5, §4.5's
// "Logged as unsupported" row).
type UnsupportedUnit struct {
	KindName string
	Path     string
}

func (e *UnsupportedUnit) Error() string {
	return fmt.Sprintf("%s: unsupported library unit %s (no state change)", e.Path, e.KindName)
}
