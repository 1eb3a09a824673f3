// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'chomsky.cli'.
func trace() tracing.Trace {
	return tracing.Select("chomsky.cli")
}

// Formatter writes result items of interpreted statements.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter knows how to output strings, lists of strings, tables
// and errors.
type DefaultFormatter struct{}

// Format writes item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case nil:
		return false, nil
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case []string:
		if len(t) == 0 {
			_, err = io.WriteString(w, "▶ (none)\n")
			break
		}
		_, err = fmt.Fprintf(w, "▶ %s\n", strings.Join(t, "\n  "))
	case table.Writer:
		_, err = io.WriteString(w, t.Render()+"\n")
	case error:
		_, err = io.WriteString(w, prtxt.FgRed.Sprintf("▶ %v", t)+"\n")
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}
