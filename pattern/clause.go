package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Clause rendering turns signatures back into readable propositional logic.
// A signature lists the variables assigned true; everything else in the
// universe is false.

// PositiveClause renders a signature using only its positive literals,
// e.g. "(2=T ∧ 7=T ∧ others=F)". The empty signature renders as
// "(all_variables=F)".
func PositiveClause(sig Signature) string {
	if len(sig) == 0 {
		return "(all_variables=F)"
	}
	parts := make([]string, 0, len(sig))
	for _, v := range dedup(sig) {
		parts = append(parts, fmt.Sprintf("%d=T", v))
	}
	return "(" + strings.Join(parts, " ∧ ") + " ∧ others=F)"
}

// FullClause renders a signature as a complete conjunction over the given
// variable universe, with explicit F literals for absent variables.
func FullClause(sig Signature, universe []uint32) string {
	set := make(map[uint32]bool, len(sig))
	for _, v := range sig {
		set[v] = true
	}
	sorted := make([]uint32, len(universe))
	copy(sorted, universe)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, 0, len(sorted))
	for _, v := range sorted {
		if set[v] {
			parts = append(parts, fmt.Sprintf("%d=T", v))
		} else {
			parts = append(parts, fmt.Sprintf("%d=F", v))
		}
	}
	return "(" + strings.Join(parts, " ∧ ") + ")"
}

// DNF joins the rendered clauses of several signatures into a disjunctive
// normal form proposition, one clause per line.
func DNF(sigs []Signature, render func(Signature) string) string {
	clauses := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		clauses = append(clauses, render(sig))
	}
	return strings.Join(clauses, " ∨\n")
}

func dedup(sig Signature) []uint32 {
	out := make([]uint32, 0, len(sig))
	for i, v := range sig {
		if i == 0 || v != sig[i-1] {
			out = append(out, v)
		}
	}
	return out
}
