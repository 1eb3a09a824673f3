package cfg

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar is a context-free grammar. Grammars are immutable once built.
type Grammar struct {
	name      string
	start     string
	variables *treeset.Set            // of string
	terminals *treeset.Set            // of string
	rules     map[string]*treeset.Set // variable → set of []Symbol
}

// Name returns the name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start variable.
func (g *Grammar) Start() string {
	return g.start
}

// Variables returns the variables of g in sorted order.
func (g *Grammar) Variables() []string {
	return stringValues(g.variables)
}

// Terminals returns the terminals of g in sorted order.
func (g *Grammar) Terminals() []string {
	return stringValues(g.terminals)
}

// IsVariable is a predicate.
func (g *Grammar) IsVariable(name string) bool {
	return g.variables.Contains(name)
}

// IsTerminal is a predicate.
func (g *Grammar) IsTerminal(name string) bool {
	return g.terminals.Contains(name)
}

// Productions returns the productions of variable v, in a deterministic
// order. The RHS slices are shared with the grammar and must not be
// modified.
func (g *Grammar) Productions(v string) []Production {
	set, ok := g.rules[v]
	if !ok {
		return nil
	}
	prods := make([]Production, 0, set.Size())
	for _, rhs := range set.Values() {
		prods = append(prods, Production{LHS: v, RHS: rhs.([]Symbol)})
	}
	return prods
}

// Rules returns all productions of g. Productions of the start variable
// come first, followed by the productions of the other variables in
// sorted order.
func (g *Grammar) Rules() []Production {
	var prods []Production
	for _, v := range g.ruleOrder() {
		prods = append(prods, g.Productions(v)...)
	}
	return prods
}

// HasEpsilonRule is a predicate: does v have an epsilon production?
func (g *Grammar) HasEpsilonRule(v string) bool {
	set, ok := g.rules[v]
	return ok && set.Contains([]Symbol{})
}

// Size returns the number of productions of g.
func (g *Grammar) Size() int {
	n := 0
	for _, set := range g.rules {
		n += set.Size()
	}
	return n
}

// Derive returns a builder with the name, variables, terminals and start
// variable of g, but without any rules. Transformations use it to create
// new grammars from g.
func (g *Grammar) Derive() *Builder {
	b := NewBuilder(g.name)
	b.Variables(g.Variables()...)
	b.Terminals(g.Terminals()...)
	b.Start(g.start)
	return b
}

// Namer returns a name generator which will not hand out any of the
// symbol names of g.
func (g *Grammar) Namer() *Namer {
	n := NewNamer()
	n.Reserve(g)
	return n
}

// String lists the rules of g, one variable per line and the start
// variable first:
//
//	S → A B | B A
//	A → a A b | ε
//
func (g *Grammar) String() string {
	var sb strings.Builder
	for i, v := range g.ruleOrder() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(v)
		sb.WriteString(" → ")
		sb.WriteString(strings.Join(g.Alternatives(v), " | "))
	}
	return sb.String()
}

// Alternatives returns the right-hand sides of v's productions as strings.
func (g *Grammar) Alternatives(v string) []string {
	prods := g.Productions(v)
	alts := make([]string, len(prods))
	for i, p := range prods {
		alts[i] = rhsString(p.RHS)
	}
	return alts
}

// RuleVariables returns the variables having at least one production,
// start variable first.
func (g *Grammar) RuleVariables() []string {
	return g.ruleOrder()
}

func (g *Grammar) ruleOrder() []string {
	var order []string
	if _, ok := g.rules[g.start]; ok {
		order = append(order, g.start)
	}
	for _, v := range g.Variables() {
		if _, ok := g.rules[v]; ok && v != g.start {
			order = append(order, v)
		}
	}
	return order
}

func stringValues(set *treeset.Set) []string {
	values := set.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.(string)
	}
	return s
}
