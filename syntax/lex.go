package syntax

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"golang.org/x/text/unicode/norm"
)

// Token types
const (
	Variable int = iota + 1
	Terminal
	Empty
	Bar
	Arrow
	EOL
	StartDirective
)

var tokenNames = map[int]string{
	Variable:       "variable",
	Terminal:       "terminal",
	Empty:          "ε",
	Bar:            "'|'",
	Arrow:          "'->'",
	EOL:            "end of line",
	StartDirective: "%start",
}

// Error is a syntax error in a grammar definition. Line and Column are
// 1-based; a Line of 0 means the position is unknown.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return "syntax error: " + e.Msg
	}
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

type token struct {
	typ       int
	name      string // symbol name, without quotes
	line, col int
}

func (t token) String() string {
	if t.typ == Variable || t.typ == Terminal {
		return fmt.Sprintf("%s %q", tokenNames[t.typ], t.name)
	}
	return tokenNames[t.typ]
}

func (t token) symbol() cfg.Symbol {
	if t.typ == Variable {
		return cfg.V(t.name)
	}
	return cfg.T(t.name)
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for production strings. It is compiled
// once and may be shared.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`#[^\n]*`), skip)
		l.Add([]byte(`( |\t|\r)+`), skip)
		l.Add([]byte(`\n|;`), makeToken(EOL))
		l.Add([]byte(`[A-Z][0-9]*(_[0-9]+)*`), makeToken(Variable))
		l.Add([]byte(`[a-z0-9]`), makeToken(Terminal))
		l.Add([]byte(`'[^'\n]+'`), quotedTerminal)
		l.Add([]byte(`ε|''`), makeToken(Empty))
		l.Add([]byte(`\|`), makeToken(Bar))
		l.Add([]byte(`->|→`), makeToken(Arrow))
		l.Add([]byte(`%start`), makeToken(StartDirective))
		if lexerErr = l.Compile(); lexerErr == nil {
			lexer = l
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

func quotedTerminal(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	name := string(m.Bytes[1 : len(m.Bytes)-1])
	return s.Token(Terminal, name, m), nil
}

// tokenize splits text into tokens. Text is normalized to NFC first, so
// that symbol names compare equal regardless of how they were composed.
func tokenize(text string) ([]token, error) {
	l, err := Lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(norm.NFC.String(text)))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			line, col := ui.FailLine, ui.FailColumn
			tracer().Errorf("cannot tokenize input at %d:%d", line, col)
			return nil, &Error{Line: line, Column: col, Msg: fmt.Sprintf("unexpected input %q", excerpt(ui.Text, ui.FailTC))}
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, token{
			typ:  t.Type,
			name: t.Value.(string),
			line: t.StartLine,
			col:  t.StartColumn,
		})
	}
	return toks, nil
}

func excerpt(text []byte, at int) string {
	if at >= len(text) {
		return ""
	}
	s := string(text[at:])
	if i := strings.IndexAny(s, " \t\n"); i > 0 {
		s = s[:i]
	}
	return s
}
