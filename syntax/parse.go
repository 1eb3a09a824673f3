package syntax

import (
	"fmt"

	"github.com/npillmayer/chomsky/cfg"
)

// ParseAlternatives parses a production string like "aAb | ε" into its
// right-hand sides. An alternative consisting of ε yields an empty
// right-hand side.
func ParseAlternatives(s string) ([][]cfg.Symbol, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	alts, err := p.alternatives()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.unexpected()
	}
	return alts, nil
}

// ParseGrammar reads a grammar in line format. Variables and terminals are
// inferred from the rules, the start variable is either given by a
// %start directive or is the left-hand side of the first rule.
func ParseGrammar(name, text string) (*cfg.Grammar, error) {
	rs, err := parseRules(text)
	if err != nil {
		return nil, err
	}
	if len(rs.rules) == 0 {
		return nil, &Error{Msg: "grammar has no rules"}
	}
	b := cfg.NewBuilder(name)
	for _, p := range rs.rules {
		b.Variables(p.LHS)
		declare(b, p.RHS)
		b.Add(p.LHS, p.RHS...)
	}
	start := rs.start
	if start == "" {
		start = rs.rules[0].LHS
	}
	g, err := b.Start(start).Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("read grammar %q with %d productions", name, g.Size())
	return g, nil
}

// Extend adds the rules of text, given in line format, to b. Symbols
// declared by g keep their kind, even if spelled like the other kind. This
// way rules may refer to a variable "x" of a grammar read from YAML.
// A %start directive in text sets the start variable of b.
func Extend(b *cfg.Builder, g *cfg.Grammar, text string) error {
	rs, err := parseRules(text)
	if err != nil {
		return err
	}
	for _, p := range rs.rules {
		rhs := make([]cfg.Symbol, len(p.RHS))
		for i, sym := range p.RHS {
			switch {
			case g.IsVariable(sym.Name):
				sym = cfg.V(sym.Name)
			case g.IsTerminal(sym.Name):
				sym = cfg.T(sym.Name)
			}
			rhs[i] = sym
		}
		b.Variables(p.LHS)
		declare(b, rhs)
		b.Add(p.LHS, rhs...)
	}
	if rs.start != "" {
		b.Start(rs.start)
	}
	return nil
}

// ruleSet is the content of a text in line format.
type ruleSet struct {
	rules []cfg.Production
	start string // from a %start directive
}

func parseRules(text string) (*ruleSet, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	rs := &ruleSet{}
	for !p.atEnd() {
		switch t := p.next(); t.typ {
		case EOL:
			continue
		case StartDirective:
			v, err := p.expect(Variable)
			if err != nil {
				return nil, err
			}
			rs.start = v.name
		case Variable:
			if _, err := p.expect(Arrow); err != nil {
				return nil, err
			}
			alts, err := p.alternatives()
			if err != nil {
				return nil, err
			}
			for _, rhs := range alts {
				rs.rules = append(rs.rules, cfg.Production{LHS: t.name, RHS: rhs})
			}
		default:
			return nil, &Error{Line: t.line, Column: t.col,
				Msg: fmt.Sprintf("expected rule, found %s", t)}
		}
		if !p.atEnd() {
			if _, err := p.expect(EOL); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

func declare(b *cfg.Builder, rhs []cfg.Symbol) {
	for _, sym := range rhs {
		if sym.IsVariable() {
			b.Variables(sym.Name)
		} else {
			b.Terminals(sym.Name)
		}
	}
}

// --- Parser ----------------------------------------------------------------

// parser is a recursive descent parser over a token slice:
//
//	alternatives → alternative { '|' alternative }
//	alternative  → ε | symbol { symbol }
//
type parser struct {
	toks []token
	pos  int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() (token, bool) {
	if p.atEnd() {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ int) (token, error) {
	t, ok := p.peek()
	if !ok {
		return t, &Error{Msg: fmt.Sprintf("expected %s, found end of input", tokenNames[typ])}
	}
	if t.typ != typ {
		return t, &Error{Line: t.line, Column: t.col,
			Msg: fmt.Sprintf("expected %s, found %s", tokenNames[typ], t)}
	}
	p.pos++
	return t, nil
}

func (p *parser) unexpected() error {
	t, _ := p.peek()
	return &Error{Line: t.line, Column: t.col, Msg: fmt.Sprintf("unexpected %s", t)}
}

func (p *parser) alternatives() ([][]cfg.Symbol, error) {
	var alts [][]cfg.Symbol
	for {
		rhs, err := p.alternative()
		if err != nil {
			return nil, err
		}
		alts = append(alts, rhs)
		if t, ok := p.peek(); !ok || t.typ != Bar {
			return alts, nil
		}
		p.pos++
	}
}

func (p *parser) alternative() ([]cfg.Symbol, error) {
	if t, ok := p.peek(); ok && t.typ == Empty {
		p.pos++
		return []cfg.Symbol{}, nil
	}
	var rhs []cfg.Symbol
	for {
		t, ok := p.peek()
		if !ok || (t.typ != Variable && t.typ != Terminal) {
			break
		}
		rhs = append(rhs, t.symbol())
		p.pos++
	}
	if len(rhs) == 0 {
		if t, ok := p.peek(); ok {
			return nil, &Error{Line: t.line, Column: t.col,
				Msg: fmt.Sprintf("empty alternative before %s, use ε", t)}
		}
		return nil, &Error{Msg: "empty alternative at end of input, use ε"}
	}
	return rhs, nil
}
