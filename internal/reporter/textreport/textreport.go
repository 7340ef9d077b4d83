package textreport

import (
	"strconv"
	"strings"

	"github.com/IgorBayerl/wordcount/internal/counter"
	"github.com/IgorBayerl/wordcount/internal/reporter"
)

func init() {
	reporter.RegisterReporter(TextReporter{})
}

// TextReporter writes one "<count>: <word>" line per entry.
type TextReporter struct{}

func (TextReporter) Name() string { return reporter.DefaultFormat }

func (TextReporter) Format(entries []counter.Entry) (string, error) {
	return Format(entries), nil
}

// Format renders entries as "<count>: <word>\n" lines. No entries yields "".
func Format(entries []counter.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(strconv.Itoa(e.Count))
		sb.WriteString(": ")
		sb.WriteString(e.Word)
		sb.WriteByte('\n')
	}
	return sb.String()
}
