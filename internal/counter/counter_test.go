package counter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate_KeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Accumulate([]string{"Go", "do", "that", "thing", "that", "you", "do", "so", "well"})

	want := []Entry{
		{Word: "Go", Count: 1},
		{Word: "do", Count: 2},
		{Word: "that", Count: 2},
		{Word: "thing", Count: 1},
		{Word: "you", Count: 1},
		{Word: "so", Count: 1},
		{Word: "well", Count: 1},
	}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, 9, c.Total())
}

func TestAccumulate_CarriesOverBetweenCalls(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		c.Accumulate([]string{"a", "b", "a"})
	}
	c.Accumulate(nil)

	n, ok := c.Count("a")
	require.True(t, ok)
	assert.Equal(t, 6, n)
	n, ok = c.Count("b")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, map[string]int{"a": 6, "b": 3}, c.AsMap())
}

func TestCount_IsCaseSensitive(t *testing.T) {
	c := New()
	c.Accumulate([]string{"Go", "go"})

	n, _ := c.Count("Go")
	assert.Equal(t, 1, n)
	_, ok := c.Count("GO")
	assert.False(t, ok)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add("x")
	entries := c.Entries()
	entries[0].Count = 42

	n, _ := c.Count("x")
	assert.Equal(t, 1, n)
}

func TestNew_IsEmpty(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	assert.Empty(t, c.AsMap())
}
