package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/gorex/internal/util"
	"github.com/dekarrin/gorex/rgxerrors"
	"github.com/dekarrin/rosed"
)

// FromText parses the automaton text form of §6.1: a newline-separated block
// of five sections (states, input symbols, accept states, start state, then
// zero or more transition lines of the form "src,symbol->dst"). Whitespace
// around commas and names is ignored. epsilonLiteral names the character
// used for ε-transitions in the transitions section; it need not be listed
// in the inputs line and is not added to the Program's alphabet.
func FromText(text string, epsilonLiteral rune) (*Program, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 4 {
		return nil, rgxerrors.NewParseError(text, "automaton text form requires at least 4 sections")
	}

	p := newProgram()
	p.epsilon = epsilonLiteral

	for _, name := range splitCSV(lines[0]) {
		p.addState(name)
	}

	for _, sym := range splitCSV(lines[1]) {
		r, err := singleRune(sym)
		if err != nil {
			return nil, rgxerrors.WrapParseError(err, sym, "invalid input symbol")
		}
		p.inputs.Add(r)
	}

	for _, name := range splitCSV(lines[2]) {
		if !p.hasState(name) {
			return nil, rgxerrors.NewParseError(name, "accept state not declared in states section")
		}
		p.accept.Add(name)
	}

	start := strings.TrimSpace(lines[3])
	if !p.hasState(start) {
		return nil, rgxerrors.NewParseError(start, "start state not declared in states section")
	}
	p.start = start

	for _, line := range lines[4:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := p.addTransitionLine(line, epsilonLiteral); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ToText renders the Program back into the text form FromText parses,
// using epsilonLiteral to spell ε-transitions. Round-tripping a Program
// through ToText/FromText yields an equivalent automaton and is how
// internal/rcache snapshots a Program to a byte stream.
func (p *Program) ToText(epsilonLiteral rune) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(p.StateNames(), ","))
	sb.WriteByte('\n')

	inputs := p.Inputs()
	inputStrs := make([]string, len(inputs))
	for i, r := range inputs {
		inputStrs[i] = string(r)
	}
	sb.WriteString(strings.Join(inputStrs, ","))
	sb.WriteByte('\n')

	sb.WriteString(strings.Join(p.AcceptNames(), ","))
	sb.WriteByte('\n')

	sb.WriteString(p.start)

	for _, src := range p.StateNames() {
		st := p.states[src]
		symbols := make([]rune, 0, len(st.transitions))
		for symbol := range st.transitions {
			symbols = append(symbols, symbol)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, symbol := range symbols {
			label := string(symbol)
			if symbol == Epsilon {
				label = string(epsilonLiteral)
			}
			for _, dst := range util.OrderedKeys(st.transitions[symbol]) {
				sb.WriteByte('\n')
				sb.WriteString(fmt.Sprintf("%s,%s->%s", src, label, dst))
			}
		}
	}

	return sb.String()
}

func (p *Program) hasState(name string) bool {
	_, ok := p.states[name]
	return ok
}

// addTransitionLine parses a single "src,symbol->dst" line and adds the
// transition it describes, failing with a ParseError rather than panicking
// if either endpoint was not declared in the states section.
func (p *Program) addTransitionLine(line string, epsilonLiteral rune) error {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return rgxerrors.NewParseError(line, "transition line missing '->'")
	}
	left := line[:arrow]
	dst := strings.TrimSpace(line[arrow+2:])

	comma := strings.Index(left, ",")
	if comma < 0 {
		return rgxerrors.NewParseError(line, "transition line missing ','")
	}
	src := strings.TrimSpace(left[:comma])
	symText := strings.TrimSpace(left[comma+1:])

	var sym rune
	if symText == string(epsilonLiteral) {
		sym = Epsilon
	} else {
		r, err := singleRune(symText)
		if err != nil {
			return rgxerrors.WrapParseError(err, line, "invalid transition symbol")
		}
		sym = r
	}

	if !p.hasState(src) {
		return rgxerrors.NewParseError(src, "transition source state not declared")
	}
	if !p.hasState(dst) {
		return rgxerrors.NewParseError(dst, "transition destination state not declared")
	}

	p.addTransition(src, sym, dst)
	return nil
}

func singleRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return runes[0], nil
}

func splitCSV(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// DOT renders the Program as a Graphviz DOT description (grounded in the
// DumpDOT convention of mapping start states to a box and accept states to a
// double circle), word-wrapped at width for terminal-friendly diagnostic
// output.
func (p *Program) DOT(width int) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString(fmt.Sprintf("    %s [shape = box];\n", p.start))
	for _, name := range p.AcceptNames() {
		sb.WriteString(fmt.Sprintf("    %s [shape = doublecircle];\n", name))
	}
	for _, src := range p.StateNames() {
		st := p.states[src]
		symbols := make([]rune, 0, len(st.transitions))
		for symbol := range st.transitions {
			symbols = append(symbols, symbol)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, symbol := range symbols {
			label := string(symbol)
			if symbol == Epsilon {
				label = "eps"
			}
			for _, dst := range util.OrderedKeys(st.transitions[symbol]) {
				sb.WriteString(fmt.Sprintf("    %s -> %s [label=%q];\n", src, dst, label))
			}
		}
	}
	sb.WriteString("}\n")

	if width <= 0 {
		return sb.String()
	}
	return rosed.Edit(sb.String()).Wrap(width).String()
}
