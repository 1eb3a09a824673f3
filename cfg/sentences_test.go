package cfg

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSentencesBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	g := balanced(t)
	s := Sentences(g, 4)
	expected := []string{
		"",
		"a b", "b a",
		"a a b b", "a b b a", "b a a b", "b b a a",
	}
	if !reflect.DeepEqual(s, expected) {
		t.Errorf("unexpected sentences: %q", s)
	}
}

func TestSentencesUnitCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	b := NewBuilder("cycle").Variables("A", "B").Terminals("a").Start("A")
	b.LHS("A").N("B").End()
	b.LHS("B").N("A").End()
	b.LHS("B").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if s := Sentences(g, 3); !reflect.DeepEqual(s, []string{"a"}) {
		t.Errorf("expected language {a}, have %q", s)
	}
}

func TestSentencesEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cfg")
	defer teardown()
	//
	b := NewBuilder("empty").Variables("S").Terminals("a").Start("S")
	b.LHS("S").T("a").N("S").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if s := Sentences(g, 5); len(s) != 0 {
		t.Errorf("expected empty language, have %q", s)
	}
}
