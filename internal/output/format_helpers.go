package output

import (
	"strings"

	money "github.com/elterngeld/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euros the way German forms print them.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals and a decimal comma.
func FormatPercentage(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1) + " %"
}

// BenefitLabel returns the German label of an allocation as shown on the application form.
func BenefitLabel(name string) string {
	switch name {
	case "basis":
		return "Basiselterngeld"
	case "plus":
		return "ElterngeldPlus"
	case "partnership":
		return "Partnerschaftsbonus"
	default:
		return "-"
	}
}
