package output

import (
	json "github.com/goccy/go-json"

	calc "github.com/elterngeld/calculator/internal/calculation"
)

// JSONFormatter serializes the estimate as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(est *calc.Estimate) ([]byte, error) {
	return json.MarshalIndent(est, "", "  ")
}
