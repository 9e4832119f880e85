package output

import (
	"bytes"
	_ "embed"
	"html/template"

	calc "github.com/elterngeld/calculator/internal/calculation"
	"github.com/elterngeld/calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/estimate.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("estimate").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"label": func(t domain.BenefitType) string { return BenefitLabel(t.String()) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(est *calc.Estimate) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, est); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
