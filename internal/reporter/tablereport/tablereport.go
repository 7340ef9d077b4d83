package tablereport

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/IgorBayerl/wordcount/internal/counter"
	"github.com/IgorBayerl/wordcount/internal/reporter"
)

func init() {
	reporter.RegisterReporter(TableReporter{})
}

// TableReporter renders word counts as an aligned box-drawn table with a
// total in the footer.
type TableReporter struct{}

func (TableReporter) Name() string { return "table" }

func (TableReporter) Format(entries []counter.Entry) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Count", "Word"})

	total := 0
	for _, e := range entries {
		t.AppendRow(table.Row{e.Count, e.Word})
		total += e.Count
	}
	t.AppendFooter(table.Row{total, "total"})

	return t.Render() + "\n", nil
}
