package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/cfg"
)

// Normalize brings the productions of g into their final shape A → B C or
// A → a. g must be free of unit productions, and only the start variable
// may have an epsilon production.
//
// Terminals in right-hand sides of length ≥ 2 are replaced by wrapper
// variables U1, U2, …, with U_n → a. There is one wrapper per terminal and
// call of Normalize, shared by all productions. Right-hand sides Y1 … Yk
// with k ≥ 3 are split into a chain
//
//	A → Y1 A_1,  A_1 → Y2 A_2,  …,  A_(k-2) → Y(k-1) Yk
//
// with fresh chain variables for every production.
func Normalize(g *cfg.Grammar, names *cfg.Namer) *cfg.Grammar {
	n := &normalizer{
		start:    g.Start(),
		names:    names,
		b:        g.Derive(),
		wrappers: make(map[string]string),
	}
	for _, p := range g.Rules() {
		n.rewrite(p)
	}
	return mustBuild(n.b, "normalize")
}

type normalizer struct {
	start    string
	names    *cfg.Namer
	b        *cfg.Builder
	wrappers map[string]string // terminal → wrapper variable
}

func (n *normalizer) rewrite(p cfg.Production) {
	switch {
	case p.IsEpsilon():
		if p.LHS == n.start {
			n.b.Add(p.LHS)
			return
		}
		tracer().Errorf("dropping epsilon production %s", p)
	case len(p.RHS) == 1 && p.RHS[0].IsTerminal():
		n.b.Add(p.LHS, p.RHS...)
	case p.IsUnit():
		panic(fmt.Sprintf("unit production %s left for normalization", p))
	default:
		ys := make([]cfg.Symbol, len(p.RHS))
		for i, sym := range p.RHS {
			if sym.IsTerminal() {
				sym = cfg.V(n.wrap(sym.Name))
			}
			ys[i] = sym
		}
		lhs := p.LHS
		for len(ys) > 2 {
			next := n.names.Next(p.LHS + "_")
			n.b.Variables(next)
			n.b.Add(lhs, ys[0], cfg.V(next))
			lhs, ys = next, ys[1:]
		}
		n.b.Add(lhs, ys...)
	}
}

// wrap returns the wrapper variable for terminal t, creating it on first use.
func (n *normalizer) wrap(t string) string {
	if u, ok := n.wrappers[t]; ok {
		return u
	}
	u := n.names.Next("U")
	n.wrappers[t] = u
	n.b.Variables(u)
	n.b.LHS(u).T(t).End()
	tracer().Debugf("terminal %s wrapped by %s", t, u)
	return u
}
