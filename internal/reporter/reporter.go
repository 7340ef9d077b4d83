package reporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IgorBayerl/wordcount/internal/counter"
)

// DefaultFormat is the format used when none is requested.
const DefaultFormat = "text"

// Reporter turns word counts into the text written to standard output.
type Reporter interface {
	// Name is the value accepted by the -format flag.
	Name() string
	// Format renders entries in the order given.
	Format(entries []counter.Entry) (string, error)
}

var registeredReporters []Reporter

// RegisterReporter adds a reporter to the list of available formats.
// This should be called by each reporter implementation in its init() function.
func RegisterReporter(r Reporter) {
	registeredReporters = append(registeredReporters, r)
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registeredReporters))
	for _, r := range registeredReporters {
		names = append(names, r.Name())
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the reporter registered under name. Matching ignores case.
func ForFormat(name string) (Reporter, error) {
	for _, r := range registeredReporters {
		if strings.EqualFold(r.Name(), strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unsupported report format: %s", name)
}
