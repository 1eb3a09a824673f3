package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/cfg"
)

// ShapeError reports a production violating Chomsky normal form.
type ShapeError struct {
	Production cfg.Production
	Reason     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("production %s is not in Chomsky normal form: %s", e.Production, e.Reason)
}

// Verify checks that g is in Chomsky normal form. It returns a ShapeError
// for the first offending production, or nil.
func Verify(g *cfg.Grammar) error {
	startOnRHS := false
	for _, p := range g.Rules() {
		for _, sym := range p.RHS {
			if sym == cfg.V(g.Start()) {
				startOnRHS = true
			}
		}
	}
	for _, p := range g.Rules() {
		switch len(p.RHS) {
		case 0:
			if p.LHS != g.Start() {
				return &ShapeError{p, "epsilon production for a variable other than start"}
			}
			if startOnRHS {
				return &ShapeError{p, "start variable with epsilon production occurs on a right-hand side"}
			}
		case 1:
			if !p.RHS[0].IsTerminal() {
				return &ShapeError{p, "unit production"}
			}
		case 2:
			if !p.RHS[0].IsVariable() || !p.RHS[1].IsVariable() {
				return &ShapeError{p, "terminal in binary production"}
			}
		default:
			return &ShapeError{p, "right-hand side too long"}
		}
	}
	return nil
}
