package cnf

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/chomsky/cfg"
)

// Nullable returns the variables of g which derive the empty string, in
// sorted order.
func Nullable(g *cfg.Grammar) []string {
	values := nullableSet(g).Values()
	nullable := make([]string, len(values))
	for i, v := range values {
		nullable[i] = v.(string)
	}
	return nullable
}

// nullableSet computes the least fixed point of nullable variables with a
// worklist. Every production counts its symbols not yet known to be
// nullable; terminals are never discounted. Whenever a variable becomes
// nullable, it is pushed once and, when popped, discounts each of its
// occurrences. A production whose count drops to zero makes its LHS
// nullable. As no variable is pushed twice, the loop ends after at most
// |Variables| iterations.
func nullableSet(g *cfg.Grammar) *treeset.Set {
	rules := g.Rules()
	pending := make([]int, len(rules))
	occurrences := make(map[string][]int) // variable → indices of rules, once per occurrence
	nullable := treeset.NewWithStringComparator()
	worklist := arraystack.New()
	settle := func(v string) {
		if !nullable.Contains(v) {
			nullable.Add(v)
			worklist.Push(v)
		}
	}
	for i, p := range rules {
		pending[i] = len(p.RHS)
		for _, sym := range p.RHS {
			if sym.IsVariable() {
				occurrences[sym.Name] = append(occurrences[sym.Name], i)
			}
		}
		if pending[i] == 0 {
			settle(p.LHS)
		}
	}
	for !worklist.Empty() {
		v, _ := worklist.Pop()
		for _, i := range occurrences[v.(string)] {
			pending[i]--
			if pending[i] == 0 {
				settle(rules[i].LHS)
			}
		}
	}
	tracer().Debugf("nullable variables: %v", nullable.Values())
	return nullable
}

// EliminateEpsilon removes epsilon productions from g without changing its
// language. For every production, all variants are added which result from
// deleting occurrences of nullable variables, except for the variant
// deleting every symbol. If the start variable is nullable, start → ε is
// the one epsilon production kept.
//
// g is expected to have an isolated start variable (see IsolateStart).
func EliminateEpsilon(g *cfg.Grammar, _ *cfg.Namer) *cfg.Grammar {
	nullable := nullableSet(g)
	b := g.Derive()
	for _, p := range g.Rules() {
		if p.IsEpsilon() {
			continue
		}
		for _, rhs := range deletions(p.RHS, nullable) {
			b.Add(p.LHS, rhs...)
		}
	}
	if nullable.Contains(g.Start()) {
		b.LHS(g.Start()).Epsilon()
	}
	return mustBuild(b, "epsilon")
}

// maxNullableOccurrences limits the number of nullable occurrences in a
// single right-hand side. n occurrences yield up to 2^n variants, so 20
// occurrences already mean a million productions.
const maxNullableOccurrences = 20

// deletions enumerates every non-empty sequence which results from rhs by
// deleting a subset of its nullable occurrences. Bit j of the mask selects
// the j-th nullable occurrence for deletion.
func deletions(rhs []cfg.Symbol, nullable *treeset.Set) [][]cfg.Symbol {
	var positions []int
	for i, sym := range rhs {
		if sym.IsVariable() && nullable.Contains(sym.Name) {
			positions = append(positions, i)
		}
	}
	if len(positions) > maxNullableOccurrences {
		panic(fmt.Sprintf("too many nullable occurrences in right-hand side: %d", len(positions)))
	}
	var variants [][]cfg.Symbol
	for mask := uint64(0); mask < uint64(1)<<uint(len(positions)); mask++ {
		variant := make([]cfg.Symbol, 0, len(rhs))
		j := 0
		for i, sym := range rhs {
			if j < len(positions) && positions[j] == i {
				drop := mask&(uint64(1)<<uint(j)) != 0
				j++
				if drop {
					continue
				}
			}
			variant = append(variant, sym)
		}
		if len(variant) > 0 {
			variants = append(variants, variant)
		}
	}
	return variants
}
