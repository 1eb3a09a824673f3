package syntax

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/npillmayer/chomsky/cfg"
	"gopkg.in/yaml.v3"
)

// Definition is a grammar as declared by a user: sets of variables and
// terminals, production strings for every variable and a start variable.
// The terminals may contain the epsilon marker, which is ignored.
type Definition struct {
	Name      string              `yaml:"name,omitempty"`
	Variables []string            `yaml:"variables"`
	Terminals []string            `yaml:"terminals"`
	Start     string              `yaml:"start"`
	Rules     map[string][]string `yaml:"rules"`
}

// ReadDefinition decodes a YAML grammar definition.
func ReadDefinition(r io.Reader) (*Definition, error) {
	def := &Definition{}
	if err := yaml.NewDecoder(r).Decode(def); err != nil {
		tracer().Errorf("cannot decode grammar definition: %v", err)
		return nil, fmt.Errorf("reading grammar definition: %w", err)
	}
	return def, nil
}

// Grammar parses the production strings of def and validates the result
// against the declared variables and terminals.
//
// The kind of a symbol follows from its spelling (see package doc), unless
// the name is declared only as the other kind. This way a terminal may be
// declared as "A", or a variable as "x".
func (def *Definition) Grammar() (*cfg.Grammar, error) {
	b := cfg.NewBuilder(def.Name)
	b.Variables(def.Variables...)
	declared := make(map[string]cfg.SymbolKind)
	for _, v := range def.Variables {
		declared[v] = cfg.VariableKind
	}
	for _, t := range def.Terminals {
		if t == cfg.Epsilon || t == "" {
			continue
		}
		b.Terminals(t)
		if _, ok := declared[t]; !ok {
			declared[t] = cfg.TerminalKind
		}
	}
	lhss := make([]string, 0, len(def.Rules))
	for lhs := range def.Rules {
		lhss = append(lhss, lhs)
	}
	sort.Strings(lhss)
	for _, lhs := range lhss {
		for _, prod := range def.Rules[lhs] {
			alts, err := ParseAlternatives(prod)
			if err != nil {
				return nil, fmt.Errorf("production %q of %s: %w", prod, lhs, err)
			}
			for _, rhs := range alts {
				for i, sym := range rhs {
					if kind, ok := declared[sym.Name]; ok && kind != sym.Kind {
						rhs[i].Kind = kind
					}
				}
				b.Add(lhs, rhs...)
			}
		}
	}
	return b.Start(def.Start).Grammar()
}

// FromGrammar creates a definition for g. Production strings separate
// symbols by blanks.
func FromGrammar(g *cfg.Grammar) *Definition {
	def := &Definition{
		Name:      g.Name(),
		Variables: g.Variables(),
		Terminals: g.Terminals(),
		Start:     g.Start(),
		Rules:     make(map[string][]string),
	}
	for _, v := range g.RuleVariables() {
		def.Rules[v] = g.Alternatives(v)
	}
	return def
}

// WriteYAML encodes def as YAML.
func (def *Definition) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}

// Load reads a grammar from r. Names ending in .yaml or .yml are read as
// YAML definitions, everything else in line format.
func Load(name string, r io.Reader) (*cfg.Grammar, error) {
	if isYAML(name) {
		def, err := ReadDefinition(r)
		if err != nil {
			return nil, err
		}
		if def.Name == "" {
			def.Name = name
		}
		return def.Grammar()
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseGrammar(name, string(text))
}

func isYAML(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}
