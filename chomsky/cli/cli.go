package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/chomsky/ui/termui"
	"github.com/npillmayer/chomsky/syntax"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chomsky [grammar-file]",
	Short: "Convert context-free grammars into Chomsky normal form",
	Long: `Welcome to chomsky V0.1 (experimental)

chomsky reads a context-free grammar and converts it into an equivalent
grammar in Chomsky normal form.

Grammar files ending in .yaml or .yml are read as YAML grammar definitions,
all other files as lines of productions like

    S -> A B | B A
    A -> a A b | ε

If no grammar file is given, or the -i flag is present, chomsky prompts for
productions in a terminal REPL.
`,
	Args: cobra.MaximumNArgs(1),
	Run:  runChomskyCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by chomsky.main().
func Execute() {
	if rootCmd.Execute() != nil {
		chomsky.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.String("trace", "", "Trace level for all chomsky tracers (Debug|Info|Error)")
	flags.String("format", "table", "Output format of grammars (table|text|yaml)")
	flags.Bool("steps", false, "Print the grammar after every conversion step")
	flags.Int("sample", 0, "Compare sentences up to this length for input and output grammar")
	flags.Bool("lr", false, "Run a gorgo LR analysis on the converted grammar")
}

func runChomskyCmd(cmd *cobra.Command, args []string) {
	opts, err := optionsFromConfig(chomsky.Configuration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chomsky: %v\n", err)
		chomsky.Exit(2)
	}
	interactive := chomsky.Configuration != nil && chomsky.Configuration.Bool("interactive")
	if len(args) == 0 || interactive {
		runChomskyCmdIntpr(opts, args)
		return
	}
	g, err := loadGrammarFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "chomsky: %v\n", err)
		chomsky.Exit(1)
	}
	if err := transform(cmd.OutOrStdout(), g, opts); err != nil {
		fmt.Fprintf(os.Stderr, "chomsky: %v\n", err)
		chomsky.Exit(1)
	}
}

func runChomskyCmdIntpr(opts options, args []string) {
	tracing.Infof("chomsky interpreter called")
	repl, err := termui.NewBaseREPL("chomsky", version, statementNames()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chomsky: cannot start REPL: %v\n", err)
		chomsky.Exit(2)
	}
	intp := &chomskyIntpr{BaseREPL: repl, session: newSession(opts)}
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, statementHelp)
	}
	if len(args) > 0 {
		intp.InterpretCommand("load " + args[0])
	}
	intp.Prompt(true)
}

// chomskyIntpr connects a grammar session to the REPL.
type chomskyIntpr struct {
	*termui.BaseREPL
	session *session
}

func (intp *chomskyIntpr) InterpretCommand(command string) {
	stdout, stderr := intp.Outputs()
	if err := intp.session.exec(command, stdout); err != nil {
		termui.DefaultFormatter{}.Format(err, stderr)
	}
}

func loadGrammarFile(path string) (*cfg.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := syntax.Load(path, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return g, nil
}
