package termui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cli")
	defer teardown()
	//
	tw := table.NewWriter()
	tw.AppendRow(table.Row{"S", "→", "a"})
	for i, x := range []struct {
		item     interface{}
		ok       bool
		contains string
	}{
		{nil, false, ""},
		{"hello", true, "▶ hello"},
		{[]string{"a", "b"}, true, "▶ a\n  b"},
		{[]string{}, true, "(none)"},
		{tw, true, "S"},
		{errors.New("no rules"), true, "no rules"},
		{42, true, "type int"},
	} {
		var buf bytes.Buffer
		ok, err := DefaultFormatter{}.Format(x.item, &buf)
		assert.NoError(t, err, "test %d", i)
		assert.Equal(t, x.ok, ok, "test %d", i)
		assert.Contains(t, buf.String(), x.contains, "test %d", i)
	}
}

func TestReplCompleter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cli")
	defer teardown()
	//
	pc := replCompleter([]string{"convert", "show"})
	names := make(map[string]bool)
	for _, child := range pc.GetChildren() {
		names[string(child.GetName())] = true
	}
	for _, n := range []string{"help ", "bye ", "convert ", "show "} {
		assert.True(t, names[n], "expected completion for %q", n)
	}
	assert.Len(t, names, 5)
	assert.False(t, names["setprompt "])
}
