package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/elterngeld/calculator/internal/calculation"
	"github.com/elterngeld/calculator/internal/domain"
	"github.com/elterngeld/calculator/internal/output"
	money "github.com/elterngeld/calculator/pkg/decimal"
)

func newCalcCmd() *cobra.Command {
	var (
		income        float64
		partnerIncome float64
		sibling       bool
		multiples     bool
		additional    int
		ceiling       string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the monthly Basis and Plus amounts",
		Example: `  elterngeld calc --income 2000
  elterngeld calc --income 2400 --partner-income 1800 --sibling --ceiling extended`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var partner *float64
			if cmd.Flags().Changed("partner-income") {
				partner = &partnerIncome
			}
			in, err := domain.NewIncomeInputFromFloat(income, partner)
			if err != nil {
				return err
			}
			limit, err := parseCeiling(ceiling)
			if err != nil {
				return err
			}

			bc := calculation.NewBenefitCalculator(domain.DefaultBenefitRules().WithCeiling(limit))
			bc.Logger = calculation.NewSlogLogger(nil)
			result, err := bc.Compute(in, domain.Bonuses{
				SiblingBonus:            sibling,
				MultipleBirthBonus:      multiples,
				AdditionalChildrenCount: additional,
			})
			if err != nil {
				return err
			}
			return printBenefit(cmd.OutOrStdout(), format, result, bc.ReplacementRate(in.MonthlyNetIncome))
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "Monthly net income before birth in euros")
	cmd.Flags().Float64Var(&partnerIncome, "partner-income", 0, "Partner's monthly net income in euros (omit for single-income mode)")
	cmd.Flags().BoolVar(&sibling, "sibling", false, "Apply the sibling bonus")
	cmd.Flags().BoolVar(&multiples, "multiples", false, "Apply the multiple-birth bonus")
	cmd.Flags().IntVar(&additional, "additional-children", 0, "Additional children of a multiple birth")
	cmd.Flags().StringVar(&ceiling, "ceiling", "legacy", "Income ceiling: legacy, extended or an annual amount")
	cmd.Flags().StringVar(&format, "format", "console", "Output format (console, json)")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

// parseCeiling accepts a preset name or an explicit annual amount.
func parseCeiling(v string) (decimal.Decimal, error) {
	if c, err := domain.CeilingForPreset(v); err == nil {
		return c, nil
	}
	c, err := money.NewMoneyFromString(strings.TrimSpace(v))
	if err != nil || !c.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: ceiling must be legacy, extended or a positive amount (got %q)", domain.ErrInvalidInput, v)
	}
	return c.Decimal, nil
}

func printBenefit(w io.Writer, format string, result domain.BenefitResult, rate decimal.Decimal) error {
	switch output.NormalizeFormatName(format) {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "console":
		if result.IsOverIncomeLimit {
			_, err := fmt.Fprintln(w, "No entitlement: household income exceeds the income ceiling.")
			return err
		}
		fmt.Fprintf(w, "Replacement rate:  %s\n", output.FormatPercentage(rate))
		fmt.Fprintf(w, "Basiselterngeld:   %s / month\n", output.FormatCurrency(result.BasisAmount))
		fmt.Fprintf(w, "ElterngeldPlus:    %s / month\n", output.FormatCurrency(result.PlusAmount))
		if result.IsAtMaximum {
			fmt.Fprintln(w, "Income reaches the maximum amount.")
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", output.ErrUnsupportedFormat, format)
	}
}
