package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/chomsky/ui/termui"
	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/render"
	"github.com/npillmayer/chomsky/syntax"
)

const statementHelp = `
chomsky will interpret the following statements:

  rule <production>      : add productions, e.g. rule S -> a S b | ε
  <production>           : same as rule
  start <variable>       : set the start variable (default: first rule)
  show                   : display the grammar entered so far
  convert                : convert the grammar into Chomsky normal form
  steps                  : display the grammars of the last conversion
  sample <n>             : compare sentences up to length n of the last conversion
  format table|text|yaml : set the output format
  load <file>            : replace the grammar by the contents of a file
  clear                  : forget the grammar entered so far

`

// session collects productions entered interactively and converts them on
// request.
type session struct {
	opts  options
	base  *cfg.Grammar // loaded from a file, if any
	rules []string     // rule lines entered, in addition to base
	start string
	last  *cnf.Result
	out   termui.Formatter
}

type statement func(s *session, arg string, w io.Writer) error

var statements = map[string]statement{
	"rule":    (*session).rule,
	"start":   (*session).setStart,
	"show":    (*session).show,
	"convert": (*session).convert,
	"steps":   (*session).steps,
	"sample":  (*session).sample,
	"format":  (*session).setFormat,
	"load":    (*session).load,
	"clear":   (*session).clear,
}

func statementNames() []string {
	names := make([]string, 0, len(statements))
	for name := range statements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSession(opts options) *session {
	return &session{opts: opts, out: termui.DefaultFormatter{}}
}

// exec interprets a single line of input.
func (s *session) exec(line string, w io.Writer) error {
	line = strings.TrimSpace(strings.Trim(line, "\x00"))
	if line == "" {
		return nil
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	if stmt, ok := statements[cmd]; ok {
		tracer().Debugf("statement %s(%q)", cmd, arg)
		return stmt(s, arg, w)
	}
	if strings.Contains(line, "->") || strings.Contains(line, "→") {
		return s.rule(line, w)
	}
	return fmt.Errorf("unknown statement %q, type 'help' for a list", cmd)
}

func (s *session) print(item interface{}, w io.Writer) error {
	_, err := s.out.Format(item, w)
	return err
}

// grammar assembles the loaded grammar and the rules entered so far.
func (s *session) grammar() (*cfg.Grammar, error) {
	text := strings.Join(s.rules, "\n")
	if s.start != "" {
		text += "\n%start " + s.start
	}
	if s.base == nil {
		if len(s.rules) == 0 {
			return nil, errors.New("no rules entered yet")
		}
		return syntax.ParseGrammar("G", text)
	}
	if len(s.rules) == 0 && s.start == "" {
		return s.base, nil
	}
	b := s.base.Derive()
	for _, p := range s.base.Rules() {
		b.Add(p.LHS, p.RHS...)
	}
	if err := syntax.Extend(b, s.base, text); err != nil {
		return nil, err
	}
	return b.Grammar()
}

func (s *session) rule(arg string, w io.Writer) error {
	if arg == "" {
		return errors.New("rule expects a production, e.g. S -> a S b | ε")
	}
	// a single line has to be a grammar on its own
	if _, err := syntax.ParseGrammar("rule", arg); err != nil {
		return err
	}
	s.rules = append(s.rules, arg)
	s.last = nil
	return s.print(fmt.Sprintf("%d rule lines", len(s.rules)), w)
}

func (s *session) setStart(arg string, w io.Writer) error {
	if len(strings.Fields(arg)) != 1 {
		return errors.New("start expects a single variable")
	}
	s.start = arg
	s.last = nil
	return s.print("start variable is "+arg, w)
}

func (s *session) show(_ string, w io.Writer) error {
	g, err := s.grammar()
	if err != nil {
		return err
	}
	return render.Write(w, g, s.opts.format)
}

func (s *session) convert(_ string, w io.Writer) error {
	g, err := s.grammar()
	if err != nil {
		return err
	}
	result := cnf.DefaultPipeline().Run(g)
	if err := cnf.Verify(result.Grammar); err != nil {
		return err
	}
	s.last = result
	return render.Write(w, result.Grammar, s.opts.format)
}

func (s *session) steps(_ string, w io.Writer) error {
	if s.last == nil {
		return errors.New("nothing converted yet, use 'convert'")
	}
	return writeSteps(w, s.last, s.opts.format)
}

func (s *session) sample(arg string, w io.Writer) error {
	if s.last == nil {
		return errors.New("nothing converted yet, use 'convert'")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return fmt.Errorf("sample expects a length, got %q", arg)
	}
	return writeSample(w, s.last, n)
}

func (s *session) setFormat(arg string, w io.Writer) error {
	format, err := render.ParseFormat(arg)
	if err != nil {
		return err
	}
	s.opts.format = format
	return s.print("output format is "+string(format), w)
}

func (s *session) load(arg string, w io.Writer) error {
	g, err := loadGrammarFile(arg)
	if err != nil {
		return err
	}
	s.base, s.rules, s.start, s.last = g, nil, "", nil
	return s.print(fmt.Sprintf("loaded grammar %s with %d productions", g.Name(), g.Size()), w)
}

func (s *session) clear(_ string, w io.Writer) error {
	s.base, s.rules, s.start, s.last = nil, nil, "", nil
	return s.print("grammar cleared", w)
}
