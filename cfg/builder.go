package cfg

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Builder collects declarations and rules for a grammar. Call Grammar() to
// validate and receive the immutable result. A builder should not be used
// after Grammar() has been called.
type Builder struct {
	name      string
	variables *treeset.Set
	terminals *treeset.Set
	start     string
	rules     []Production
}

// NewBuilder creates an empty grammar builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		variables: treeset.NewWithStringComparator(),
		terminals: treeset.NewWithStringComparator(),
	}
}

// Variables declares variables.
func (b *Builder) Variables(names ...string) *Builder {
	for _, n := range names {
		b.variables.Add(n)
	}
	return b
}

// Terminals declares terminals.
func (b *Builder) Terminals(names ...string) *Builder {
	for _, n := range names {
		b.terminals.Add(n)
	}
	return b
}

// Start sets the start variable.
func (b *Builder) Start(v string) *Builder {
	b.start = v
	return b
}

// Add adds a rule lhs → rhs. An empty rhs adds an epsilon production.
// Duplicate rules collapse.
func (b *Builder) Add(lhs string, rhs ...Symbol) *Builder {
	r := make([]Symbol, len(rhs))
	copy(r, rhs)
	b.rules = append(b.rules, Production{LHS: lhs, RHS: r})
	return b
}

// LHS starts a rule for variable v. Complete the rule with End() or Epsilon().
//
//	b.LHS("A").T("a").N("A").T("b").End()
//
func (b *Builder) LHS(v string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: v}
}

// RuleBuilder assembles the right-hand side of a single rule.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs []Symbol
}

// N appends a variable.
func (rb *RuleBuilder) N(v string) *RuleBuilder {
	rb.rhs = append(rb.rhs, V(v))
	return rb
}

// T appends a terminal.
func (rb *RuleBuilder) T(t string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(t))
	return rb
}

// End completes the rule.
func (rb *RuleBuilder) End() *Builder {
	return rb.b.Add(rb.lhs, rb.rhs...)
}

// Epsilon completes the rule as an epsilon production. Symbols appended
// before are discarded.
func (rb *RuleBuilder) Epsilon() *Builder {
	return rb.b.Add(rb.lhs)
}

// Grammar validates the collected declarations and rules and returns them
// as a grammar. Checks are done in this order: name collisions between
// variables and terminals, the start variable, and finally all rules in the
// order they have been added. The first violation is returned.
func (b *Builder) Grammar() (*Grammar, error) {
	for _, v := range b.variables.Values() {
		if b.terminals.Contains(v) {
			return nil, &SymbolNamespaceCollisionError{Name: v.(string)}
		}
	}
	if b.start == "" || !b.variables.Contains(b.start) {
		return nil, &UnknownStartSymbolError{Start: b.start}
	}
	g := &Grammar{
		name:      b.name,
		start:     b.start,
		variables: b.variables,
		terminals: b.terminals,
		rules:     make(map[string]*treeset.Set),
	}
	for _, r := range b.rules {
		if !b.variables.Contains(r.LHS) {
			return nil, &UndefinedSymbolError{LHS: r.LHS, Symbol: V(r.LHS)}
		}
		for _, sym := range r.RHS {
			if !b.declares(sym) {
				return nil, &UndefinedSymbolError{LHS: r.LHS, Symbol: sym}
			}
		}
		set, ok := g.rules[r.LHS]
		if !ok {
			set = treeset.NewWith(compareRHS)
			g.rules[r.LHS] = set
		}
		set.Add(r.RHS)
	}
	tracer().Debugf("grammar %q: %d variables, %d terminals, %d productions",
		g.name, g.variables.Size(), g.terminals.Size(), g.Size())
	return g, nil
}

func (b *Builder) declares(sym Symbol) bool {
	if sym.IsVariable() {
		return b.variables.Contains(sym.Name)
	}
	return b.terminals.Contains(sym.Name)
}
