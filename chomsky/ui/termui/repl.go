package termui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/chomsky"
)

// REPLCommandInterpreter interprets every input line which is not one of
// the REPL's built-in commands (help, bye, mode).
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// BaseREPL reads lines from the terminal and hands them to an interpreter.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter
	Helper      func(io.Writer) // prints help for the interpreter's statements
	readline    *readline.Instance
	toolname    string
	version     string
}

// NewBaseREPL creates a REPL for a tool. Built-in commands and the
// interpreter's statements are offered for tab completion.
func NewBaseREPL(toolname, version string, statements ...string) (*BaseREPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prtxt.FgGreen.Sprintf("%s> ", toolname),
		HistoryFile:         filepath.Join(os.TempDir(), toolname+"-repl-history.tmp"),
		AutoComplete:        replCompleter(statements),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		return nil, err
	}
	return &BaseREPL{readline: rl, toolname: toolname, version: version}, nil
}

func replCompleter(statements []string) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode", readline.PcItem("vi"), readline.PcItem("emacs")),
	}
	for _, stmt := range statements {
		items = append(items, readline.PcItem(stmt))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt reads and executes lines until the user says bye, presses ^C on
// an empty line or ends input. With exitOnBye set, the application exits
// afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.readline.Stderr(), "Welcome to %s [V%s]\n", repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if repl.execute(strings.TrimSpace(line)) {
			break
		}
	}
	if exitOnBye {
		chomsky.Exit(0)
	}
}

// execute runs a built-in command or passes line to the interpreter.
// It returns true if the REPL should terminate.
func (repl *BaseREPL) execute(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	stderr := repl.readline.Stderr()
	switch words[0] {
	case "help":
		fmt.Fprintf(stderr, "%s [V%s]\n\n", repl.toolname, repl.version)
		io.WriteString(stderr, "  help            : print this message\n")
		io.WriteString(stderr, "  bye             : quit\n")
		io.WriteString(stderr, "  mode [vi|emacs] : display or set the editing mode\n")
		if repl.Helper != nil {
			repl.Helper(stderr)
		}
	case "bye":
		io.WriteString(stderr, "> goodbye!\n")
		return true
	case "mode":
		if len(words) > 1 && (words[1] == "vi" || words[1] == "emacs") {
			repl.readline.SetVimMode(words[1] == "vi")
		}
		mode := "emacs"
		if repl.readline.IsVimMode() {
			mode = "vi"
		}
		fmt.Fprintf(stderr, "> editing mode: %s\n", mode)
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		if repl.Interpreter != nil {
			repl.Interpreter.InterpretCommand(line)
		}
	}
	return false
}

// filterReplInput blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
