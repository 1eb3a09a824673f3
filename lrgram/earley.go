package lrgram

import (
	"strings"
	"unicode"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/timtadh/lexmachine"
)

// Recognizer decides membership of sentences in the language of a grammar,
// using gorgo's Earley parser. Sentences are terminal names separated by
// white space, as produced by cfg.Sentences.
type Recognizer struct {
	analysis *lr.LRAnalysis
	lexer    *scanner.LMAdapter
}

// NewRecognizer prepares an Earley recognizer for g.
func NewRecognizer(g *cfg.Grammar) (*Recognizer, error) {
	lrg, tokens, err := Build(g)
	if err != nil {
		return nil, err
	}
	init := func(lexer *lexmachine.Lexer) {
		for _, t := range g.Terminals() {
			lexer.Add(pattern(t), scanner.MakeToken(t, tokens[t]))
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
	}
	lexer, err := scanner.NewLMAdapter(init, nil, nil, tokens)
	if err != nil {
		tracer().Errorf("cannot create scanner for %q: %v", g.Name(), err)
		return nil, err
	}
	return &Recognizer{
		analysis: lr.Analysis(lrg),
		lexer:    lexer,
	}, nil
}

// pattern is a lexmachine regular expression matching terminal t verbatim.
// Letters and digits stand for themselves (an escaped n would be a
// newline), every other ASCII character is escaped.
func pattern(t string) []byte {
	var sb strings.Builder
	for _, r := range t {
		if r < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return []byte(sb.String())
}

// Accepts is a predicate: is sentence derivable from the start variable?
// Input which cannot be split into terminals is rejected with an error.
func (r *Recognizer) Accepts(sentence string) (bool, error) {
	scan, err := r.lexer.Scanner(strings.TrimSpace(sentence))
	if err != nil {
		return false, err
	}
	parser := earley.NewParser(r.analysis)
	accept, err := parser.Parse(scan, nil)
	if err != nil { // accept may be true after a lexer error
		tracer().Debugf("earley: %q rejected: %v", sentence, err)
		return false, err
	}
	tracer().Debugf("earley: %q accepted = %v", sentence, accept)
	return accept, nil
}
