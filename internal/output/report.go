package output

import (
	"io"

	calc "github.com/elterngeld/calculator/internal/calculation"
)

// GenerateReport writes the estimate in the requested format to filename.
// It returns the path written.
func GenerateReport(est *calc.Estimate, format, filename string) (string, error) {
	f, err := GetFormatterByName(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, est, filename)
}

// RenderReport writes the estimate in the requested format to w.
func RenderReport(w io.Writer, est *calc.Estimate, format string) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	data, err := f.Format(est)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
