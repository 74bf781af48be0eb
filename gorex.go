// Package gorex compiles text patterns into automata and checks strings
// against them (§6.3 of the specification this module realizes). It is the
// only package outside internal/ a consumer of this module needs to import
// directly.
package gorex

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dekarrin/gorex/internal/automaton"
	"github.com/dekarrin/gorex/internal/regexparse"
)

// Regex is a compiled pattern: an immutable automaton.Program plus the
// human-assigned name it was compiled under and a process-unique identity
// distinct from that name (§4.11).
type Regex struct {
	name    string
	pattern string
	id      uuid.UUID
	prog    *automaton.Program

	pool sync.Pool
}

// Compile parses pattern with the three-pass textual parser, builds its
// ε-NFA via the operator tree, and returns the resulting compiled Regex.
// name is an arbitrary caller-assigned label (e.g. a token type) carried
// alongside the compiled automaton; it has no effect on matching.
func Compile(pattern string, name string) (*Regex, error) {
	tree, err := regexparse.Parse(pattern)
	if err != nil {
		return nil, err
	}

	r := &Regex{
		name:    name,
		pattern: pattern,
		id:      uuid.New(),
		prog:    tree.Execute(),
	}
	r.pool.New = func() any { return r.prog.NewContext() }
	return r, nil
}

// Name returns the label Regex was compiled with.
func (r *Regex) Name() string {
	return r.name
}

// Pattern returns the original pattern text Regex was compiled from.
func (r *Regex) Pattern() string {
	return r.pattern
}

// ID returns a stable, compile-time-assigned identifier distinct from Name,
// suitable for use as a map key or snapshot-cache identity (§4.11).
func (r *Regex) ID() string {
	return r.id.String()
}

// ValidCharacters returns the input alphabet this Regex's automaton was
// compiled with, i.e. every character the automaton has a transition on,
// including each character of a collation range (§6.3).
func (r *Regex) ValidCharacters() []rune {
	return r.prog.Inputs()
}

// Check reports whether text is accepted in full by the compiled automaton.
// A character outside the automaton's alphabet causes immediate rejection
// rather than a reported error, matching §6.3's "Check(text) bool" surface.
func (r *Regex) Check(text string) bool {
	ctx := r.pool.Get().(*automaton.Context)
	defer r.pool.Put(ctx)
	ctx.Reset()

	for _, c := range text {
		if err := ctx.Enter(c); err != nil {
			return false
		}
	}
	return ctx.Accepted()
}

// Program exposes the compiled automaton directly, for callers that want to
// render it (DOT), snapshot it (rcache), or drive their own Context.
func (r *Regex) Program() *automaton.Program {
	return r.prog
}
