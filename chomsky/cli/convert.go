package cli

import (
	"fmt"
	"io"

	"github.com/knadh/koanf"
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/lrgram"
	"github.com/npillmayer/chomsky/render"
)

// options control what a conversion prints.
type options struct {
	format render.Format
	steps  bool
	sample int
	lr     bool
}

func optionsFromConfig(k *koanf.Koanf) (options, error) {
	opts := options{format: render.TableFormat}
	if k == nil {
		return opts, nil
	}
	if f := k.String("format"); f != "" {
		format, err := render.ParseFormat(f)
		if err != nil {
			return opts, err
		}
		opts.format = format
	}
	opts.steps = k.Bool("steps")
	opts.sample = k.Int("sample")
	if opts.sample < 0 {
		return opts, fmt.Errorf("sample length must not be negative: %d", opts.sample)
	}
	opts.lr = k.Bool("lr")
	return opts, nil
}

// transform converts g and writes the result, and optionally the intermediate
// grammars, to w.
func transform(w io.Writer, g *cfg.Grammar, opts options) error {
	result := cnf.DefaultPipeline().Run(g)
	if err := cnf.Verify(result.Grammar); err != nil {
		return fmt.Errorf("conversion of %s failed: %w", g.Name(), err)
	}
	if opts.steps {
		if err := writeSteps(w, result, opts.format); err != nil {
			return err
		}
	} else if err := render.Write(w, result.Grammar, opts.format); err != nil {
		return err
	}
	if opts.sample > 0 {
		if err := writeSample(w, result, opts.sample); err != nil {
			return err
		}
	}
	if opts.lr {
		if _, err := lrgram.Analysis(result.Grammar); err != nil {
			return fmt.Errorf("LR analysis of %s failed: %w", g.Name(), err)
		}
		fmt.Fprintf(w, "LR analysis of %s done, see trace output\n", result.Grammar.Name())
		if opts.sample > 0 {
			return crossCheck(w, result, opts.sample)
		}
	}
	return nil
}

// crossCheck lets an Earley parser for the input grammar recognize every
// sentence the output grammar generates.
func crossCheck(w io.Writer, result *cnf.Result, maxLen int) error {
	rec, err := lrgram.NewRecognizer(result.Input)
	if err != nil {
		return err
	}
	sentences := cfg.Sentences(result.Grammar, maxLen)
	for _, s := range sentences {
		ok, err := rec.Accepts(s)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("input grammar rejects %q", s)
		}
	}
	fmt.Fprintf(w, "Earley parser for %s accepts all %d sentences\n", result.Input.Name(), len(sentences))
	return nil
}

func writeSteps(w io.Writer, result *cnf.Result, format render.Format) error {
	fmt.Fprintf(w, "--- input ----\n")
	if err := render.Write(w, result.Input, format); err != nil {
		return err
	}
	for _, step := range result.Steps {
		fmt.Fprintf(w, "--- after %s ----\n", step.Name)
		if err := render.Write(w, step.Grammar, format); err != nil {
			return err
		}
	}
	return nil
}

// sampleReport compares the sentences of input and output grammar up to a
// given length.
type sampleReport struct {
	Input, Output []string
}

// Agree is a predicate: do both grammars generate the same sentences?
func (r sampleReport) Agree() bool {
	if len(r.Input) != len(r.Output) {
		return false
	}
	for i := range r.Input {
		if r.Input[i] != r.Output[i] {
			return false
		}
	}
	return true
}

func sample(result *cnf.Result, maxLen int) sampleReport {
	return sampleReport{
		Input:  cfg.Sentences(result.Input, maxLen),
		Output: cfg.Sentences(result.Grammar, maxLen),
	}
}

func writeSample(w io.Writer, result *cnf.Result, maxLen int) error {
	report := sample(result, maxLen)
	fmt.Fprintf(w, "sentences up to length %d:\n", maxLen)
	for _, s := range report.Output {
		if s == "" {
			s = "ε"
		}
		fmt.Fprintf(w, "  %s\n", s)
	}
	if !report.Agree() {
		return fmt.Errorf("input generates %d sentences up to length %d, output %d",
			len(report.Input), maxLen, len(report.Output))
	}
	fmt.Fprintf(w, "input and output agree on %d sentences\n", len(report.Output))
	return nil
}
