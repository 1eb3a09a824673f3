package cnf

import "github.com/npillmayer/chomsky/cfg"

// IsolateStart adds a fresh start variable S0 with the single production
// S0 → S, S being the former start variable. Afterwards the start variable
// does not occur on any right-hand side.
func IsolateStart(g *cfg.Grammar, names *cfg.Namer) *cfg.Grammar {
	s0 := names.Fresh("S0")
	b := g.Derive().Variables(s0).Start(s0)
	b.LHS(s0).N(g.Start()).End()
	for _, p := range g.Rules() {
		b.Add(p.LHS, p.RHS...)
	}
	tracer().Debugf("new start variable %s → %s", s0, g.Start())
	return mustBuild(b, "start")
}
