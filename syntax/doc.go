/*
Package syntax reads and writes textual grammar definitions.

Production strings are sequences of symbols, optionally separated by
blanks. Variables are an upper-case letter followed by digits and
"_<digits>" groups (S, S0, U12, A_3). Terminals are single lower-case
letters or digits, or arbitrary names in single quotes ('num', '+').
The empty string is written as ε (or ''). Alternatives are separated by |.

Two formats are supported. The line format lists rules, one per line:

	# balanced a/b patterns
	S -> A B | B A
	A -> aAb | ε
	B → bBa | ε

The first rule's left-hand side is the start variable, unless a line
"%start <variable>" says otherwise. Variables and terminals are inferred
from the rules.

The YAML format declares variables and terminals explicitly:

	name: balanced
	variables: [S, A, B]
	terminals: [a, b]
	start: S
	rules:
	  S: [AB, BA]
	  A: [aAb, ε]
	  B: [bBa, ε]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chomsky.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.syntax")
}
