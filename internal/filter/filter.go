// Package filter applies JQ expressions to JSON-shaped values, backing
// the --query flag.
package filter

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Apply runs a JQ filter expression against data. An empty expression
// returns data unchanged. A single result is returned unwrapped;
// multiple results come back as a slice.
func Apply(data any, expression string) (any, error) {
	if expression == "" {
		return data, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	iter := query.Run(data)

	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		results = append(results, v)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}
