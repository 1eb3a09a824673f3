// Package render presents grammars to users.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/syntax"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.render'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.render")
}

// Format selects an output format.
type Format string

// Output formats
const (
	TableFormat Format = "table"
	TextFormat  Format = "text"
	YAMLFormat  Format = "yaml"
)

// ParseFormat checks a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case TableFormat, TextFormat, YAMLFormat:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Table renders g as a table with one row per variable, the start variable
// first.
func Table(g *cfg.Grammar) table.Writer {
	tw := table.NewWriter()
	if g.Name() != "" {
		tw.SetTitle("Grammar %s", g.Name())
	}
	tw.AppendHeader(table.Row{"Variable", "", "Productions"})
	for _, v := range g.RuleVariables() {
		lhs := v
		if v == g.Start() {
			lhs = "▶ " + v
		}
		tw.AppendRow(table.Row{lhs, "→", strings.Join(g.Alternatives(v), " | ")})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d productions", g.Size())})
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	return tw
}

// Text renders g as lines "A → x | y".
func Text(g *cfg.Grammar) string {
	return g.String()
}

// Write outputs g to w in the given format.
func Write(w io.Writer, g *cfg.Grammar, format Format) error {
	tracer().Debugf("rendering grammar %q as %s", g.Name(), format)
	var err error
	switch format {
	case TableFormat:
		_, err = io.WriteString(w, Table(g).Render()+"\n")
	case TextFormat:
		_, err = io.WriteString(w, Text(g)+"\n")
	case YAMLFormat:
		err = syntax.FromGrammar(g).WriteYAML(w)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return err
}
