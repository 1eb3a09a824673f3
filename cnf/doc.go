/*
Package cnf transforms context-free grammars into Chomsky normal form.

A grammar is in Chomsky normal form if every production is either

	A → B C   (two variables)
	A → a     (one terminal)

with the single exception of S → ε for the start variable S, if the empty
string is part of the language. In this case S must not occur on the
right-hand side of any production.

The transformation is a sequence of stages, each of which derives a new
grammar from its input:

	IsolateStart → EliminateEpsilon → EliminateUnits → Normalize

Stages introducing new variables draw their names from a cfg.Namer, which
is created once per run and handed from stage to stage. Convert runs the
default pipeline; Pipeline.Run additionally keeps every intermediate
grammar for inspection.

Stages cannot fail for grammars which passed validation. An invalid
grammar produced by a stage is a programming error and will panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cnf")
}

// mustBuild completes a grammar derived by a stage. Stages guarantee the
// invariants of their output, so a validation error is a bug.
func mustBuild(b *cfg.Builder, stage string) *cfg.Grammar {
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Sprintf("stage %s produced an invalid grammar: %v", stage, err))
	}
	return g
}
