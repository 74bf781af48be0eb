package automaton

import "fmt"

// nameGenerator hands out fresh, monotonically increasing state names scoped
// to a single composition result. It is the mechanism behind §4.1's alias
// renaming: every state copied into a freshly composed Program is given one
// of these names, so no two automata ever contribute colliding identities to
// the result, regardless of what their original names were.
type nameGenerator struct {
	prefix  string
	counter int
}

func newNameGenerator(prefix string) *nameGenerator {
	return &nameGenerator{prefix: prefix}
}

func (g *nameGenerator) next() string {
	name := fmt.Sprintf("%s%d", g.prefix, g.counter)
	g.counter++
	return name
}
