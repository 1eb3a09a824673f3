/*
Package lrgram hands grammars over to gorgo's LR tooling.

A grammar in Chomsky normal form is the usual input for CYK-style
recognizers, but every grammar built with package cfg may as well be fed
into gorgo's LR/Earley machinery. Build creates the corresponding
lr.Grammar, numbering terminals as token values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrgram

import (
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.lr'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.lr")
}

// TokenBase is the token value of the first terminal. Terminals are
// numbered in sorted order.
const TokenBase = 1000

// Tokens maps terminal names to gorgo token values.
type Tokens map[string]int

// TokenValues assigns token values to the terminals of g.
func TokenValues(g *cfg.Grammar) Tokens {
	tokens := make(Tokens)
	for i, t := range g.Terminals() {
		tokens[t] = TokenBase + i
	}
	return tokens
}

// Build creates a gorgo LR grammar from g. Rules of the start variable are
// added first, as gorgo takes the first left-hand side as the start symbol.
func Build(g *cfg.Grammar) (*lr.Grammar, Tokens, error) {
	tokens := TokenValues(g)
	b := lr.NewGrammarBuilder(g.Name())
	for _, p := range g.Rules() {
		if p.IsEpsilon() {
			b.LHS(p.LHS).Epsilon()
			continue
		}
		rb := b.LHS(p.LHS)
		for _, sym := range p.RHS {
			if sym.IsVariable() {
				rb = rb.N(sym.Name)
			} else {
				rb = rb.T(sym.Name, tokens[sym.Name])
			}
		}
		rb.End()
	}
	lrg, err := b.Grammar()
	if err != nil {
		tracer().Errorf("cannot create LR grammar for %q: %v", g.Name(), err)
		return nil, nil, err
	}
	return lrg, tokens, nil
}

// Analysis builds the LR grammar for g and runs gorgo's grammar analysis
// (FIRST and FOLLOW sets, derivation of ε), which is the starting point
// for generating parser tables.
func Analysis(g *cfg.Grammar) (*lr.LRAnalysis, error) {
	lrg, _, err := Build(g)
	if err != nil {
		return nil, err
	}
	lrg.Dump()
	return lr.Analysis(lrg), nil
}
