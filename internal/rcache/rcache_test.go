package rcache

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gorex"
	"github.com/dekarrin/gorex/internal/automaton"
)

func acceptsProgram(t *testing.T, p *automaton.Program, s string) bool {
	t.Helper()
	ctx := p.NewContext()
	for _, c := range s {
		if err := ctx.Enter(c); err != nil {
			return false
		}
	}
	return ctx.Accepted()
}

func Test_SaveLoad_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	digits, err := gorex.Compile("[0-9]+", "DIGITS")
	assert.NoError(err)
	words, err := gorex.Compile("[a-z]+", "WORDS")
	assert.NoError(err)

	regexes := map[string]*gorex.Regex{
		"digits": digits,
		"words":  words,
	}

	var buf bytes.Buffer
	assert.NoError(Save(&buf, regexes))

	loaded, err := Load(&buf)
	assert.NoError(err)
	assert.Len(loaded, 2)

	digitsProg, ok := loaded["digits"]
	assert.True(ok)
	wordsProg, ok := loaded["words"]
	assert.True(ok)

	assert.True(acceptsProgram(t, digitsProg, "123"))
	assert.False(acceptsProgram(t, digitsProg, "abc"))
	assert.Equal(digits.Check("123"), acceptsProgram(t, digitsProg, "123"))
	assert.Equal(digits.Check("abc"), acceptsProgram(t, digitsProg, "abc"))

	assert.True(acceptsProgram(t, wordsProg, "abc"))
	assert.False(acceptsProgram(t, wordsProg, "123"))
}

func Test_Save_EmptyMap(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(Save(&buf, map[string]*gorex.Regex{}))

	loaded, err := Load(&buf)
	assert.NoError(err)
	assert.Empty(loaded)
}

func Test_Load_TruncatedStream(t *testing.T) {
	assert := assert.New(t)

	r, err := gorex.Compile("a", "A")
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(Save(&buf, map[string]*gorex.Regex{"a": r}))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-1])
	_, err = Load(truncated)
	assert.Error(err)
}
