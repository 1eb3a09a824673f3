package cfg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func balanced(t *testing.T) *Grammar {
	b := NewBuilder("balanced")
	b.Variables("S", "A", "B").Terminals("a", "b").Start("S")
	b.LHS("S").N("A").N("B").End()
	b.LHS("S").N("B").N("A").End()
	b.LHS("A").T("a").N("A").T("b").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").N("B").T("a").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

func TestBuilderValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	var (
		undefined *UndefinedSymbolError
		unknown   *UnknownStartSymbolError
		collision *SymbolNamespaceCollisionError
	)
	for i, x := range []struct {
		build  func(*Builder)
		target interface{}
	}{
		{build: func(b *Builder) { b.Variables("a") }, target: &collision},
		{build: func(b *Builder) { b.Start("X") }, target: &unknown},
		{build: func(b *Builder) { b.Start("") }, target: &unknown},
		{build: func(b *Builder) { b.LHS("S").N("X").End() }, target: &undefined},
		{build: func(b *Builder) { b.LHS("S").T("c").End() }, target: &undefined},
		{build: func(b *Builder) { b.LHS("S").N("a").End() }, target: &undefined},
		{build: func(b *Builder) { b.LHS("X").T("a").End() }, target: &undefined},
	} {
		b := NewBuilder("test").Variables("S").Terminals("a").Start("S")
		x.build(b)
		_, err := b.Grammar()
		if err == nil {
			t.Errorf("test %d: expected validation error, got none", i)
			continue
		}
		if !errors.As(err, x.target) {
			t.Errorf("test %d: unexpected error type %T: %v", i, err, err)
		}
	}
}

func TestUndefinedSymbolReported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	_, err := NewBuilder("test").Variables("S").Start("S").
		LHS("S").T("x").End().Grammar()
	var undef *UndefinedSymbolError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedSymbolError, got %v", err)
	}
	if undef.LHS != "S" || undef.Symbol != T("x") {
		t.Errorf("expected error for terminal x in rule for S, got %v", undef)
	}
}

func TestProductionsCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	b := NewBuilder("dup").Variables("S", "A").Terminals("a").Start("S")
	b.LHS("S").N("A").End()
	b.LHS("S").T("a").End()
	b.LHS("S").N("A").End()
	b.LHS("S").Epsilon()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.Productions("S")); n != 3 {
		t.Errorf("expected 3 distinct productions for S, have %d", n)
	}
	if !g.HasEpsilonRule("S") {
		t.Errorf("expected S to have an epsilon rule")
	}
	if g.HasEpsilonRule("A") {
		t.Errorf("expected A not to have an epsilon rule")
	}
	if g.Productions("A") != nil {
		t.Errorf("expected no productions for A")
	}
}

func TestGrammarString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	g := balanced(t)
	expected := "S → A B | B A\nA → a A b | ε\nB → b B a | ε"
	if g.String() != expected {
		t.Errorf("unexpected grammar output:\n%s", g.String())
	}
	if g.Size() != 6 {
		t.Errorf("expected 6 productions, have %d", g.Size())
	}
	rules := g.Rules()
	if rules[0].LHS != "S" {
		t.Errorf("expected rules of start variable first, have %v", rules[0])
	}
}

func TestQuotedTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	p := Production{LHS: "E", RHS: []Symbol{V("E"), T("+"), T("num")}}
	if p.String() != "E → E '+' 'num'" {
		t.Errorf("unexpected production string %q", p.String())
	}
}

func TestDeriveKeepsDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	g := balanced(t)
	h, err := g.Derive().Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if h.Start() != "S" || len(h.Variables()) != 3 || len(h.Terminals()) != 2 {
		t.Errorf("derived grammar lost declarations")
	}
	if h.Size() != 0 {
		t.Errorf("expected derived grammar to have no rules, has %d", h.Size())
	}
	if g.Size() != 6 {
		t.Errorf("original grammar changed")
	}
}
