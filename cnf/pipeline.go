package cnf

import "github.com/npillmayer/chomsky/cfg"

// Stage is a single grammar transformation. A stage must not modify its
// input grammar. Fresh variable names have to be drawn from names.
type Stage func(g *cfg.Grammar, names *cfg.Namer) *cfg.Grammar

// Step is a grammar produced by a named stage.
type Step struct {
	Name    string
	Grammar *cfg.Grammar
}

// Result is the outcome of a pipeline run.
type Result struct {
	Input   *cfg.Grammar
	Steps   []Step       // intermediate grammars, in stage order
	Grammar *cfg.Grammar // the grammar produced by the last stage
}

// Pipeline is an ordered sequence of stages.
type Pipeline struct {
	names  []string
	stages []Stage
}

// NewPipeline creates an empty pipeline. Running an empty pipeline returns
// the input grammar.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// DefaultPipeline returns the pipeline converting a grammar into Chomsky
// normal form.
func DefaultPipeline() *Pipeline {
	return NewPipeline().
		Append("start", IsolateStart).
		Append("epsilon", EliminateEpsilon).
		Append("unit", EliminateUnits).
		Append("normalize", Normalize)
}

// Append adds a stage to the end of the pipeline.
func (pl *Pipeline) Append(name string, stage Stage) *Pipeline {
	pl.names = append(pl.names, name)
	pl.stages = append(pl.stages, stage)
	return pl
}

// Stages returns the names of the stages in order.
func (pl *Pipeline) Stages() []string {
	return append([]string(nil), pl.names...)
}

// Run passes g through all stages. A single Namer, scoped to g, is shared
// by the stages of this run, so names introduced by different stages never
// collide. Runs do not share any state.
func (pl *Pipeline) Run(g *cfg.Grammar) *Result {
	names := g.Namer()
	r := &Result{Input: g, Grammar: g}
	for i, stage := range pl.stages {
		r.Grammar = stage(r.Grammar, names)
		r.Steps = append(r.Steps, Step{Name: pl.names[i], Grammar: r.Grammar})
		tracer().Debugf("after stage %s:\n%s", pl.names[i], r.Grammar)
	}
	tracer().Infof("grammar %q: %d productions in, %d productions out",
		g.Name(), g.Size(), r.Grammar.Size())
	return r
}

// Convert returns a grammar in Chomsky normal form generating the same
// language as g.
func Convert(g *cfg.Grammar) *cfg.Grammar {
	return DefaultPipeline().Run(g).Grammar
}
