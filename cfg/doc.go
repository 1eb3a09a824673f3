/*
Package cfg implements context-free grammars as immutable values.

A grammar consists of a set of variables (non-terminals), a set of
terminals, a set of productions for every variable and a start variable.
Grammars are created with a Builder, which validates them on completion:

	b := cfg.NewBuilder("balanced")
	b.Variables("S", "A").Terminals("a", "b").Start("S")
	b.LHS("S").N("A").N("A").End()
	b.LHS("A").T("a").N("A").T("b").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()

Once built, a grammar is never changed. Transformations derive new
grammars from existing ones (see Grammar.Derive), with fresh variable names
handed out by a Namer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chomsky.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cfg")
}
