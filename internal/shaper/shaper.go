// Package shaper implements the two-pass ambiguity shaper of spec §4.2:
// semantic filtering marks derivations impossible under VHDL's static
// semantics, then ambig collapse prunes, deduplicates and splices each
// `_ambig` node down to its surviving reading. Grounded on hdltree.py's
// AmbigShaper, which performs the identical mark-then-collapse walk over a
// lark.Tree before VhdlCstTransformer ever sees it.
package shaper

import (
	"fmt"
	"strings"

	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/forest"
	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

// kindPreference ranks the readings that can survive semantic filtering at
// a name(expr) ambiguity when more than one remains syntactically valid.
// function_call is preferred over indexed_name, which is preferred over
// slice_name: spec §8 scenario 5 reasons about `f(3)` in exactly these
// terms ("the function-call reading is preferred because the slice rule
// demands a discrete-range argument which 3 is not" — the parser offers
// slice_name only for a range-shaped argument, and then as the sole
// reading, so in practice this table breaks the function_call/indexed_name
// tie the same way).
var kindPreference = map[string]int{
	"function_call": 0,
	"indexed_name":  1,
	"slice_name":    2,
}

// Shape runs semantic filtering then ambig collapse over a parse forest,
// returning the disambiguated tree and any non-fatal AmbiguityUnresolved
// warnings. Shape is idempotent: a tree with no remaining `_ambig` nodes
// passes through unchanged and produces no further warnings, satisfying
// spec §8's "running the shaper twice yields the same tree".
func Shape(path string, root *forest.Node) (*forest.Node, []error) {
	markDeletablePhysicalLiterals(root)
	var warnings []error
	out, err := collapse(path, root, &warnings)
	if err != nil {
		warnings = append(warnings, err)
		return nil, warnings
	}
	return out, warnings
}

// ValidTimeUnit reports whether unit (matched case-insensitively) is one of
// the closed set of predefined time units spec §4.2 recognises. It is the
// single source of truth for physical_literal membership filtering, used
// both here and by the parser's immediate (non-deferred) resolution of a
// single-reading physical literal.
func ValidTimeUnit(unit string) bool {
	return token.TimeUnits[strings.ToLower(unit)]
}

// markDeletablePhysicalLiterals implements semantic filtering: a
// physical_literal whose unit is not one of the closed set of predefined
// time units is marked ToDelete, so collapse can prune any ambiguity
// alternative built around it.
func markDeletablePhysicalLiterals(root *forest.Node) {
	forest.Walk(root, func(n *forest.Node) {
		pl := physicalLiteralIn(n.Built)
		if pl == nil || pl.Unit == nil {
			return
		}
		if !token.TimeUnits[strings.ToLower(pl.Unit.String())] {
			n.ToDelete = true
		}
	})
}

// physicalLiteralIn recovers a *cst.PhysicalLiteral from a forest node's
// Built value, which the parser stores either bare or wrapped in the
// *cst.Primary every expression-level production returns.
func physicalLiteralIn(built any) *cst.PhysicalLiteral {
	switch v := built.(type) {
	case *cst.PhysicalLiteral:
		return v
	case *cst.Primary:
		if pl, ok := v.Inner.(*cst.PhysicalLiteral); ok {
			return pl
		}
	}
	return nil
}

// collapse walks the forest bottom-up, resolving every `_ambig` node it
// finds per spec §4.2 step 2.
func collapse(path string, n *forest.Node, warnings *[]error) (*forest.Node, error) {
	if n == nil {
		return nil, nil
	}
	for i, c := range n.Children {
		collapsed, err := collapse(path, c, warnings)
		if err != nil {
			return nil, err
		}
		n.Children[i] = collapsed
	}
	if n.Kind != forest.AmbigNode {
		return n, nil
	}

	survivors := dedupe(discardDeletable(n.Children))
	switch {
	case len(survivors) == 0:
		start, _ := n.Span()
		return nil, &vhdlerrors.ParseFailure{
			Path:            path,
			Pos:             start,
			ExpectedTokens:  nil,
			ConsideredRules: alternativeRules(n.Children),
		}
	case len(survivors) == 1:
		return survivors[0], nil
	default:
		survivors = preferByKind(survivors)
		if len(survivors) == 1 {
			return survivors[0], nil
		}
		start, end := n.Span()
		*warnings = append(*warnings, &vhdlerrors.AmbiguityUnresolved{
			Path:         path,
			Span:         fmt.Sprintf("%s-%s", start, end),
			Alternatives: len(survivors),
		})
		return survivors[0], nil
	}
}

func discardDeletable(alts []*forest.Node) []*forest.Node {
	var out []*forest.Node
	for _, a := range alts {
		if !a.ToDelete && !forest.ContainsDeletable(a) {
			out = append(out, a)
		}
	}
	return out
}

func dedupe(alts []*forest.Node) []*forest.Node {
	var out []*forest.Node
	for _, a := range alts {
		dup := false
		for _, kept := range out {
			if forest.StructEqual(a, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}

// preferByKind applies the name(expr) tie-break: if any surviving
// alternative's rule name has a known preference rank, keep only the
// lowest-ranked (most preferred) of those; unranked alternatives are left
// untouched since the preference table only concerns that one ambiguity.
func preferByKind(alts []*forest.Node) []*forest.Node {
	best := -1
	for _, a := range alts {
		if rank, ok := kindPreference[a.Rule]; ok {
			if best == -1 || rank < best {
				best = rank
			}
		}
	}
	if best == -1 {
		return alts
	}
	var out []*forest.Node
	for _, a := range alts {
		rank, ranked := kindPreference[a.Rule]
		if !ranked || rank == best {
			out = append(out, a)
		}
	}
	return out
}

func alternativeRules(alts []*forest.Node) []string {
	rules := make([]string, len(alts))
	for i, a := range alts {
		rules[i] = a.Rule
	}
	return rules
}
