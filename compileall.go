package gorex

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/config"
)

// CompileAll compiles every pattern definition in defs, typically loaded via
// config.LoadPatterns, into a Regex. It stops at the first failure, wrapping
// the parse error with the offending pattern's name.
func CompileAll(defs []config.PatternDef) ([]*Regex, error) {
	out := make([]*Regex, 0, len(defs))
	for _, def := range defs {
		r, err := Compile(def.Pattern, def.Name)
		if err != nil {
			return nil, fmt.Errorf("gorex: compiling %q: %w", def.Name, err)
		}
		out = append(out, r)
	}
	return out, nil
}
