package cfg

import (
	"strconv"

	"github.com/emirpasic/gods/sets/hashset"
)

// Namer hands out fresh symbol names. A name is fresh if it has neither
// been reserved nor handed out before by the same namer.
//
// A namer belongs to a single run of grammar transformations and is passed
// explicitly from stage to stage. It is not safe for concurrent use.
type Namer struct {
	used     *hashset.Set
	counters map[string]int
}

// NewNamer creates a namer with names already in use.
func NewNamer(used ...string) *Namer {
	n := &Namer{
		used:     hashset.New(),
		counters: make(map[string]int),
	}
	for _, name := range used {
		n.used.Add(name)
	}
	return n
}

// Reserve marks all variable and terminal names of g as used.
func (n *Namer) Reserve(g *Grammar) {
	for _, v := range g.variables.Values() {
		n.used.Add(v)
	}
	for _, t := range g.terminals.Values() {
		n.used.Add(t)
	}
}

// Used is a predicate: is name reserved or already handed out?
func (n *Namer) Used(name string) bool {
	return n.used.Contains(name)
}

// Fresh returns stem if it is unused, otherwise the first unused name out
// of stem1, stem2, …
func (n *Namer) Fresh(stem string) string {
	name := stem
	for i := 1; n.used.Contains(name); i++ {
		name = stem + strconv.Itoa(i)
	}
	return n.claim(name)
}

// Next returns the next unused name out of prefix1, prefix2, … Counting is
// per prefix and does not restart, so consecutive calls never return the
// same name.
func (n *Namer) Next(prefix string) string {
	i := n.counters[prefix]
	var name string
	for {
		i++
		name = prefix + strconv.Itoa(i)
		if !n.used.Contains(name) {
			break
		}
	}
	n.counters[prefix] = i
	return n.claim(name)
}

func (n *Namer) claim(name string) string {
	n.used.Add(name)
	tracer().Debugf("fresh name %s", name)
	return name
}
