package textreport

import (
	"testing"

	"github.com/IgorBayerl/wordcount/internal/counter"
	"github.com/IgorBayerl/wordcount/internal/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	c := counter.New()
	c.Accumulate([]string{"Go", "do", "that", "thing", "that", "you", "do", "so", "well"})

	want := "1: Go\n2: do\n2: that\n1: thing\n1: you\n1: so\n1: well\n"
	assert.Equal(t, want, Format(c.Entries()))
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "", Format(counter.New().Entries()))
}

func TestFormat_KeepsTokensVerbatim(t *testing.T) {
	entries := []counter.Entry{{Word: "<b>&", Count: 3}, {Word: "héllo,", Count: 1}}
	assert.Equal(t, "3: <b>&\n1: héllo,\n", Format(entries))
}

func TestRegisteredAsDefault(t *testing.T) {
	r, err := reporter.ForFormat(reporter.DefaultFormat)
	require.NoError(t, err)
	out, err := r.Format([]counter.Entry{{Word: "a", Count: 1}})
	require.NoError(t, err)
	assert.Equal(t, "1: a\n", out)
}
