package cfg

import "fmt"

// UndefinedSymbolError is returned if a rule references a symbol which is
// not declared, or is declared with the other kind. It is also returned
// for rules of an undeclared left-hand side variable.
type UndefinedSymbolError struct {
	LHS    string
	Symbol Symbol
}

func (e *UndefinedSymbolError) Error() string {
	if e.Symbol.IsVariable() && e.Symbol.Name == e.LHS {
		return fmt.Sprintf("rules given for undeclared variable %q", e.LHS)
	}
	return fmt.Sprintf("rule for %s references undeclared %s %q",
		e.LHS, e.Symbol.Kind, e.Symbol.Name)
}

// UnknownStartSymbolError is returned if the start symbol is missing or not
// declared as a variable.
type UnknownStartSymbolError struct {
	Start string
}

func (e *UnknownStartSymbolError) Error() string {
	if e.Start == "" {
		return "no start variable given"
	}
	return fmt.Sprintf("start symbol %q is not a declared variable", e.Start)
}

// SymbolNamespaceCollisionError is returned if a name is declared both as a
// variable and as a terminal.
type SymbolNamespaceCollisionError struct {
	Name string
}

func (e *SymbolNamespaceCollisionError) Error() string {
	return fmt.Sprintf("%q is declared as variable and as terminal", e.Name)
}
