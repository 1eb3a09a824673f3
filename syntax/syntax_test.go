package syntax

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	toks, err := tokenize("S0 -> aA_1 'num' | ε # comment\n%start S0")
	require.NoError(t, err)
	var types []int
	var names []string
	for _, tok := range toks {
		types = append(types, tok.typ)
		names = append(names, tok.name)
	}
	assert.Equal(t, []int{Variable, Arrow, Terminal, Variable, Terminal, Bar, Empty, EOL,
		StartDirective, Variable}, types)
	assert.Equal(t, "num", names[4])
	assert.Equal(t, "A_1", names[3])
	assert.Equal(t, 2, toks[8].line)
}

func TestTokenizeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	_, err := tokenize("S -> a\nA -> b $ c")
	var synerr *Error
	require.True(t, errors.As(err, &synerr), "expected syntax error, got %v", err)
	assert.Equal(t, 2, synerr.Line)
}

func TestParseAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		alts  [][]cfg.Symbol
	}{
		{"aAb|ε", [][]cfg.Symbol{{cfg.T("a"), cfg.V("A"), cfg.T("b")}, {}}},
		{"AB", [][]cfg.Symbol{{cfg.V("A"), cfg.V("B")}}},
		{"S0 U12", [][]cfg.Symbol{{cfg.V("S0"), cfg.V("U12")}}},
		{"E '+' M", [][]cfg.Symbol{{cfg.V("E"), cfg.T("+"), cfg.V("M")}}},
		{"''", [][]cfg.Symbol{{}}},
		{"1x | y2", [][]cfg.Symbol{{cfg.T("1"), cfg.T("x")}, {cfg.T("y"), cfg.T("2")}}},
	} {
		alts, err := ParseAlternatives(x.input)
		if assert.NoError(t, err, "test %d", i) {
			assert.Equal(t, x.alts, alts, "test %d", i)
		}
	}
}

func TestParseAlternativesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	for _, input := range []string{"", "a|", "|a", "aεb", "A -> a"} {
		_, err := ParseAlternatives(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	g, err := ParseGrammar("balanced", `
		# balanced a/b patterns
		S -> AB | BA
		A -> aAb | ε
		B → bBa | ε
	`)
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start())
	assert.Equal(t, []string{"A", "B", "S"}, g.Variables())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	assert.Equal(t, "S → A B | B A\nA → a A b | ε\nB → b B a | ε", g.String())
}

func TestParseGrammarStartDirective(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	g, err := ParseGrammar("expr", "F -> '(' E ')' | 'num'; E -> E '+' F | F\n%start E\n")
	require.NoError(t, err)
	assert.Equal(t, "E", g.Start())
	assert.Equal(t, []string{"(", ")", "+", "num"}, g.Terminals())
}

func TestParseGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	for _, input := range []string{
		"",
		"# only a comment\n",
		"S AB",
		"a -> b",
		"S -> a b -> c",
		"%start\nS -> a",
		"start S\nS -> a",
	} {
		_, err := ParseGrammar("bad", input)
		assert.Error(t, err, "input %q", input)
	}
	_, err := ParseGrammar("bad", "%start X\nS -> a")
	var unknown *cfg.UnknownStartSymbolError
	assert.True(t, errors.As(err, &unknown), "expected unknown start error, got %v", err)
}

const balancedYAML = `
name: balanced
variables: [S, A, B]
terminals: [a, b, ε]
start: S
rules:
  S: [AB, BA]
  A: [aAb, ε]
  B: ["bBa | ε"]
`

func TestDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	def, err := ReadDefinition(strings.NewReader(balancedYAML))
	require.NoError(t, err)
	g, err := def.Grammar()
	require.NoError(t, err)
	assert.Equal(t, "balanced", g.Name())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	assert.Equal(t, 6, g.Size())
	assert.True(t, g.HasEpsilonRule("B"))
}

func TestDefinitionValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	var (
		undefined *cfg.UndefinedSymbolError
		unknown   *cfg.UnknownStartSymbolError
		collision *cfg.SymbolNamespaceCollisionError
	)
	for i, x := range []struct {
		def    Definition
		target interface{}
	}{
		{Definition{Variables: []string{"S"}, Terminals: []string{"a"}, Start: "S",
			Rules: map[string][]string{"S": {"ab"}}}, &undefined},
		{Definition{Variables: []string{"S"}, Terminals: []string{"a"}, Start: "S",
			Rules: map[string][]string{"X": {"a"}}}, &undefined},
		{Definition{Variables: []string{"S"}, Terminals: []string{"a"}, Start: "T",
			Rules: map[string][]string{"S": {"a"}}}, &unknown},
		{Definition{Variables: []string{"S", "a"}, Terminals: []string{"a"}, Start: "S",
			Rules: map[string][]string{"S": {"a"}}}, &collision},
	} {
		_, err := x.def.Grammar()
		assert.True(t, errors.As(err, x.target), "test %d: unexpected error %v", i, err)
	}
}

func TestDefinitionDeclaredKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	def := Definition{
		Variables: []string{"S", "x"},
		Terminals: []string{"A"},
		Start:     "S",
		Rules:     map[string][]string{"S": {"A x"}, "x": {"A"}},
	}
	g, err := def.Grammar()
	require.NoError(t, err)
	assert.Equal(t, []cfg.Symbol{cfg.T("A"), cfg.V("x")}, g.Productions("S")[0].RHS)
}

func TestYAMLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	g, err := ParseGrammar("expr", "E -> E '+' F | F\nF -> '(' E ')' | 'num' | ε")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, FromGrammar(g).WriteYAML(&buf))
	h, err := Load("expr.yaml", &buf)
	require.NoError(t, err)
	assert.Equal(t, g.String(), h.String())
	assert.Equal(t, g.Start(), h.Start())
}

func TestLoadLineFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	g, err := Load("g.txt", strings.NewReader("S -> aSb | ε"))
	require.NoError(t, err)
	assert.Equal(t, "g.txt", g.Name())
	assert.Equal(t, "S → a S b | ε", g.String())
}

func TestExtendKeepsDeclaredKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.syntax")
	defer teardown()
	//
	def, err := ReadDefinition(strings.NewReader(`
variables: [S, x]
terminals: [a]
start: S
rules:
  S: [x]
  x: [a]
`))
	require.NoError(t, err)
	g, err := def.Grammar()
	require.NoError(t, err)
	b := g.Derive()
	for _, p := range g.Rules() {
		b.Add(p.LHS, p.RHS...)
	}
	require.NoError(t, Extend(b, g, "S -> a x | b\nA -> x x\n%start A"))
	h, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, "A", h.Start())
	assert.Equal(t, []string{"A", "S", "x"}, h.Variables())
	assert.Equal(t, []string{"a", "b"}, h.Terminals())
	assert.Equal(t, "A → x x\nS → x | a x | b\nx → a", h.String())
}
