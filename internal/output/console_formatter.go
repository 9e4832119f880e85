package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	calc "github.com/elterngeld/calculator/internal/calculation"
)

// ConsoleFormatter renders a plain-text report for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(est *calc.Estimate) ([]byte, error) {
	var buf bytes.Buffer

	title := "ELTERNGELD ESTIMATE"
	if est.Name != "" {
		title += ": " + est.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Monthly net income:     %s\n", FormatCurrency(est.Income.MonthlyNetIncome))
	if est.Income.PartnerMonthlyNetIncome != nil {
		fmt.Fprintf(&buf, "Partner net income:     %s\n", FormatCurrency(*est.Income.PartnerMonthlyNetIncome))
	}
	fmt.Fprintf(&buf, "Annual household:       %s (ceiling %s)\n", FormatCurrency(est.Income.AnnualHouseholdIncome()), FormatCurrency(est.IncomeCeiling))
	if est.Bonuses.SiblingBonus {
		fmt.Fprintln(&buf, "Sibling bonus:          yes")
	}
	if est.Bonuses.MultipleBirthBonus && est.Bonuses.AdditionalChildrenCount > 0 {
		fmt.Fprintf(&buf, "Multiple birth bonus:   %d additional child(ren)\n", est.Bonuses.AdditionalChildrenCount)
	}
	fmt.Fprintln(&buf)

	if est.Result.IsOverIncomeLimit {
		fmt.Fprintln(&buf, "No entitlement: household income exceeds the income ceiling.")
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "Replacement rate:       %s\n", FormatPercentage(est.ReplacementRatePercent))
	fmt.Fprintf(&buf, "Basiselterngeld:        %s / month\n", FormatCurrency(est.Result.BasisAmount))
	fmt.Fprintf(&buf, "ElterngeldPlus:         %s / month\n", FormatCurrency(est.Result.PlusAmount))
	if est.Result.IsAtMaximum {
		fmt.Fprintln(&buf, "Income reaches the maximum amount.")
	}
	fmt.Fprintln(&buf)

	if len(est.Schedule) > 0 {
		fmt.Fprintln(&buf, "MONTH PLAN")
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Month\tPeriod\tParent one\tParent two\tAmount")
		for _, row := range est.Schedule {
			period := ""
			if row.Start != nil && row.End != nil {
				period = row.Start.Format("02.01.2006") + " - " + row.End.Format("02.01.2006")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.LifeMonth, period,
				BenefitLabel(row.ParentOne.String()), BenefitLabel(row.ParentTwo.String()), FormatCurrency(row.Total))
		}
		tw.Flush()
		fmt.Fprintln(&buf)
	}

	s := est.Summary
	fmt.Fprintf(&buf, "Parent one: %d Basis, %d Plus, %d Partnership months = %s\n",
		s.ParentOne.BasisMonths, s.ParentOne.PlusMonths, s.ParentOne.PartnershipMonths, FormatCurrency(s.ParentOne.Total))
	if !est.IsSingleParent {
		fmt.Fprintf(&buf, "Parent two: %d Basis, %d Plus, %d Partnership months = %s\n",
			s.ParentTwo.BasisMonths, s.ParentTwo.PlusMonths, s.ParentTwo.PartnershipMonths, FormatCurrency(s.ParentTwo.Total))
	}
	fmt.Fprintf(&buf, "Total over %d months: %s\n", s.VisibleMonths, FormatCurrency(s.Total))
	fmt.Fprintln(&buf)

	if est.Violations.Valid() {
		fmt.Fprintln(&buf, "Plan is valid.")
	} else {
		fmt.Fprintln(&buf, "PLAN VIOLATIONS")
		for _, msg := range est.Violations.Messages() {
			fmt.Fprintf(&buf, "• %s\n", msg)
		}
	}
	return buf.Bytes(), nil
}
