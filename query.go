package equity

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of l, for
// instance "$.years[?(@.year==2035)].combinedTotalValue".
func Query(l *Ledger, path string) (any, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("cannot encode ledger: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a
	// single answer: single answers are unwrapped.
	if list, ok := v.([]any); ok && len(list) == 1 {
		v = list[0]
	}
	return v, nil
}
