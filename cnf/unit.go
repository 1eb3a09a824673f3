package cnf

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/chomsky/cfg"
)

// UnitClosure returns, for every variable A of g, the variables reachable
// from A by zero or more unit productions A → B. Every variable reaches
// itself. The lists are sorted.
func UnitClosure(g *cfg.Grammar) map[string][]string {
	edges := make(map[string][]string)
	for _, p := range g.Rules() {
		if p.IsUnit() {
			edges[p.LHS] = append(edges[p.LHS], p.RHS[0].Name)
		}
	}
	closure := make(map[string][]string)
	for _, v := range g.Variables() {
		closure[v] = reachable(v, edges)
	}
	return closure
}

// reachable traverses the unit graph depth-first from v. Variables are
// pushed only when first visited, so cycles terminate.
func reachable(v string, edges map[string][]string) []string {
	visited := treeset.NewWithStringComparator(v)
	stack := linkedliststack.New()
	stack.Push(v)
	for !stack.Empty() {
		top, _ := stack.Pop()
		for _, w := range edges[top.(string)] {
			if !visited.Contains(w) {
				visited.Add(w)
				stack.Push(w)
			}
		}
	}
	values := visited.Values()
	r := make([]string, len(values))
	for i, x := range values {
		r[i] = x.(string)
	}
	return r
}

// EliminateUnits removes all unit productions from g. Every variable A
// receives the non-unit productions of all variables in its unit closure.
func EliminateUnits(g *cfg.Grammar, _ *cfg.Namer) *cfg.Grammar {
	closure := UnitClosure(g)
	b := g.Derive()
	for _, a := range g.Variables() {
		for _, c := range closure[a] {
			for _, p := range g.Productions(c) {
				if !p.IsUnit() {
					b.Add(a, p.RHS...)
				}
			}
		}
		if len(closure[a]) > 1 {
			tracer().Debugf("unit closure of %s = %v", a, closure[a])
		}
	}
	return mustBuild(b, "unit")
}
