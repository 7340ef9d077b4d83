package counter

// Entry is a single word together with the number of times it was seen.
type Entry struct {
	Word  string
	Count int
}

// CountMap accumulates word occurrences. Entries keep the order in which
// each word was first added, so reports built from it are reproducible.
type CountMap struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty CountMap.
func New() *CountMap {
	return &CountMap{index: make(map[string]int)}
}

// Add records one occurrence of word.
func (c *CountMap) Add(word string) {
	if i, ok := c.index[word]; ok {
		c.entries[i].Count++
		return
	}
	c.index[word] = len(c.entries)
	c.entries = append(c.entries, Entry{Word: word, Count: 1})
}

// Accumulate records one occurrence of every token. It is meant to be called
// once per line; counts carry over between calls.
func (c *CountMap) Accumulate(tokens []string) {
	for _, token := range tokens {
		c.Add(token)
	}
}

// Count returns the number of occurrences of word and whether it was seen.
func (c *CountMap) Count(word string) (int, bool) {
	i, ok := c.index[word]
	if !ok {
		return 0, false
	}
	return c.entries[i].Count, true
}

// Len returns the number of distinct words.
func (c *CountMap) Len() int {
	return len(c.entries)
}

// Total returns the number of words seen, duplicates included.
func (c *CountMap) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of the entries in first-insertion order.
func (c *CountMap) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// AsMap returns the counts as a plain map. Order is lost.
func (c *CountMap) AsMap() map[string]int {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Word] = e.Count
	}
	return m
}
