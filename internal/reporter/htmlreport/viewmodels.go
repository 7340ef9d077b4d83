package htmlreport

import (
	"strconv"

	"github.com/IgorBayerl/wordcount/internal/counter"
)

// wordRowViewModel is one rendered table row.
type wordRowViewModel struct {
	Count string
	Word  string
}

// summaryViewModel holds the figures shown above the table.
type summaryViewModel struct {
	DistinctWords int
	TotalWords    int
}

func buildViewModels(entries []counter.Entry) ([]wordRowViewModel, summaryViewModel) {
	rows := make([]wordRowViewModel, 0, len(entries))
	summary := summaryViewModel{DistinctWords: len(entries)}
	for _, e := range entries {
		rows = append(rows, wordRowViewModel{Count: strconv.Itoa(e.Count), Word: e.Word})
		summary.TotalWords += e.Count
	}
	return rows, summary
}
