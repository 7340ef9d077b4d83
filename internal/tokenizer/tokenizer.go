package tokenizer

import "strings"

// Tokenize splits a single line into its whitespace-delimited words.
// Runs of whitespace count as one separator and leading or trailing
// whitespace never yields an empty token. Words are returned exactly as
// they appear: no case folding and no punctuation stripping.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
