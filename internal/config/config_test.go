package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.toml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_LoadPatterns_ValidFile(t *testing.T) {
	assert := assert.New(t)
	path := writeFixture(t, `
[[pattern]]
name = "HEX"
pattern = "[0-9]([0-9]|[A-F])*"

[[pattern]]
name = "WORD"
pattern = "[a-z]+"
`)

	defs, err := LoadPatterns(path)
	assert.NoError(err)
	assert.Len(defs, 2)
	assert.Equal("HEX", defs[0].Name)
	assert.Equal("[0-9]([0-9]|[A-F])*", defs[0].Pattern)
	assert.Equal("WORD", defs[1].Name)
}

func Test_LoadPatterns_EmptyFile(t *testing.T) {
	assert := assert.New(t)
	path := writeFixture(t, "")

	defs, err := LoadPatterns(path)
	assert.NoError(err)
	assert.Empty(defs)
}

func Test_LoadPatterns_MissingFile(t *testing.T) {
	_, err := LoadPatterns(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func Test_LoadPatterns_MalformedToml(t *testing.T) {
	path := writeFixture(t, `this is not valid toml [[[`)

	_, err := LoadPatterns(path)
	assert.Error(t, err)
}

func Test_LoadPatterns_MissingName(t *testing.T) {
	path := writeFixture(t, `
[[pattern]]
pattern = "[a-z]+"
`)

	_, err := LoadPatterns(path)
	assert.Error(t, err)
}
