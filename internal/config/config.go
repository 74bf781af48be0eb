// Package config loads named pattern overlays from a TOML file, letting a
// consuming program add its own regexes alongside gorex's canonical set
// (SPEC_FULL.md §4.8) without recompiling the module.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// PatternDef is one named pattern entry from a patterns file.
type PatternDef struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

// patternFile mirrors the on-disk shape:
//
//	[[pattern]]
//	name = "HEX"
//	pattern = "[0-9]([0-9]|[A-F])*"
type patternFile struct {
	Pattern []PatternDef `toml:"pattern"`
}

// LoadPatterns reads and parses a TOML pattern-overlay file at path,
// returning the pattern definitions it declares. It does not compile them;
// callers typically pass the result to gorex.CompileAll.
func LoadPatterns(path string) ([]PatternDef, error) {
	var pf patternFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("config: loading patterns from %s: %w", path, err)
	}
	for _, def := range pf.Pattern {
		if def.Name == "" {
			return nil, fmt.Errorf("config: %s: pattern entry missing name", path)
		}
	}
	return pf.Pattern, nil
}
