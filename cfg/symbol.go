package cfg

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SymbolKind tags a grammar symbol as either a variable or a terminal.
type SymbolKind uint8

// Kinds of grammar symbols. Variables sort before terminals.
const (
	VariableKind SymbolKind = iota
	TerminalKind
)

func (k SymbolKind) String() string {
	if k == VariableKind {
		return "variable"
	}
	return "terminal"
}

// Symbol is a grammar symbol. Symbols are identified by kind and name, so
// they may be compared with == and used as map keys.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// V creates a variable symbol.
func V(name string) Symbol {
	return Symbol{Kind: VariableKind, Name: name}
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// IsVariable is a predicate.
func (s Symbol) IsVariable() bool {
	return s.Kind == VariableKind
}

// IsTerminal is a predicate.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

// String returns the symbol as it would appear in a production string.
// Terminals which are not a single lower-case letter or digit are quoted,
// e.g. 'num'.
func (s Symbol) String() string {
	if s.IsVariable() || isPlainTerminal(s.Name) {
		return s.Name
	}
	return "'" + s.Name + "'"
}

func isPlainTerminal(name string) bool {
	if utf8.RuneCountInString(name) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

func compareSymbols(a, b Symbol) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// --- Productions -----------------------------------------------------------

// Epsilon is the marker printed for an empty right-hand side.
const Epsilon = "ε"

// Production is a single grammar rule LHS → RHS. An empty RHS denotes an
// epsilon production.
type Production struct {
	LHS string
	RHS []Symbol
}

// IsEpsilon is a predicate: is the right-hand side empty?
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// IsUnit is a predicate: is the right-hand side a single variable?
func (p Production) IsUnit() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsVariable()
}

func (p Production) String() string {
	return p.LHS + " → " + rhsString(p.RHS)
}

func rhsString(rhs []Symbol) string {
	if len(rhs) == 0 {
		return Epsilon
	}
	var sb strings.Builder
	for i, sym := range rhs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym.String())
	}
	return sb.String()
}

// compareRHS orders right-hand sides lexicographically by symbol, a proper
// prefix sorting first. Epsilon sorts last. It is the comparator of the
// per-variable production sets.
func compareRHS(a, b interface{}) int {
	x, y := a.([]Symbol), b.([]Symbol)
	if len(x) == 0 || len(y) == 0 {
		return len(y) - len(x)
	}
	for i := 0; i < len(x) && i < len(y); i++ {
		if c := compareSymbols(x[i], y[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return 0
}
