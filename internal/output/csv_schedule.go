package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	calc "github.com/elterngeld/calculator/internal/calculation"
)

// CSVScheduleFormatter exports one row per visible month of life.
type CSVScheduleFormatter struct{}

func (c CSVScheduleFormatter) Name() string      { return "csv" }
func (c CSVScheduleFormatter) Extension() string { return "csv" }

func (c CSVScheduleFormatter) Format(est *calc.Estimate) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"LifeMonth", "Start", "End", "ParentOne", "ParentTwo", "ParentOneAmount", "ParentTwoAmount", "Total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range est.Schedule {
		start, end := "", ""
		if row.Start != nil && row.End != nil {
			start, end = row.Start.Format("2006-01-02"), row.End.Format("2006-01-02")
		}
		record := []string{
			strconv.Itoa(row.LifeMonth),
			start,
			end,
			row.ParentOne.String(),
			row.ParentTwo.String(),
			row.ParentOneAmount.StringFixed(2),
			row.ParentTwoAmount.StringFixed(2),
			row.Total.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
