package cfg

import (
	"sort"
	"strings"
)

// Sentences returns every terminal string of length up to maxLen which is
// derivable from the start variable of g. Terminals in a sentence are
// separated by a single blank; the empty sentence represents ε. The result
// is sorted by length, then lexically.
//
// Sentences is meant for comparing the languages of small grammars, e.g.
// before and after a transformation. Effort grows quickly with maxLen.
func Sentences(g *Grammar, maxLen int) []string {
	if maxLen < 0 {
		return nil
	}
	lang := make(map[string]map[string][]string) // variable → key → sentence
	for _, v := range g.Variables() {
		lang[v] = make(map[string][]string)
	}
	rules := g.Rules()
	// Least fixed point: the sets only grow and are bounded by the finite
	// number of sentences of length ≤ maxLen.
	for changed := true; changed; {
		changed = false
		for _, p := range rules {
			for _, s := range expand(p.RHS, lang, maxLen) {
				key := strings.Join(s, " ")
				if _, ok := lang[p.LHS][key]; !ok {
					lang[p.LHS][key] = s
					changed = true
				}
			}
		}
	}
	result := make([]string, 0, len(lang[g.start]))
	for key := range lang[g.start] {
		result = append(result, key)
	}
	sort.Slice(result, func(i, j int) bool {
		li, lj := len(lang[g.start][result[i]]), len(lang[g.start][result[j]])
		if li != lj {
			return li < lj
		}
		return result[i] < result[j]
	})
	return result
}

// expand returns the sentences derivable from rhs, given the current
// approximation of the variables' languages.
func expand(rhs []Symbol, lang map[string]map[string][]string, maxLen int) [][]string {
	partial := [][]string{{}}
	for _, sym := range rhs {
		var next [][]string
		for _, prefix := range partial {
			if sym.IsTerminal() {
				if len(prefix) < maxLen {
					next = append(next, extend(prefix, sym.Name))
				}
				continue
			}
			for _, s := range lang[sym.Name] {
				if len(prefix)+len(s) <= maxLen {
					next = append(next, extend(prefix, s...))
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		partial = next
	}
	return partial
}

func extend(prefix []string, words ...string) []string {
	s := make([]string, len(prefix), len(prefix)+len(words))
	copy(s, prefix)
	return append(s, words...)
}
