package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	money "github.com/elterngeld/calculator/pkg/decimal"
)

// ErrInvalidInput marks income or bonus data that the calculator refuses to
// coerce: negative or non-finite amounts and negative child counts.
var ErrInvalidInput = errors.New("invalid input")

// Income ceilings (annual household net income) above which no benefit is paid.
var (
	IncomeCeilingLegacy   = decimal.NewFromInt(175000)
	IncomeCeilingExtended = decimal.NewFromInt(300000)
)

// IncomeInput is the income basis for a benefit calculation. PartnerMonthlyNetIncome
// is nil when a single income is entered (single parent or household-combined).
type IncomeInput struct {
	MonthlyNetIncome        decimal.Decimal  `yaml:"monthly_net_income" json:"monthlyNetIncome"`
	PartnerMonthlyNetIncome *decimal.Decimal `yaml:"partner_monthly_net_income,omitempty" json:"partnerMonthlyNetIncome,omitempty"`
}

// NewIncomeInputFromFloat builds an IncomeInput from user supplied floats.
// Decimals cannot hold NaN or Inf so the finiteness check lives here.
func NewIncomeInputFromFloat(monthly float64, partner *float64) (IncomeInput, error) {
	if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return IncomeInput{}, fmt.Errorf("%w: monthly net income must be finite", ErrInvalidInput)
	}
	in := IncomeInput{MonthlyNetIncome: money.NewMoney(monthly).Decimal}
	if partner != nil {
		if math.IsNaN(*partner) || math.IsInf(*partner, 0) {
			return IncomeInput{}, fmt.Errorf("%w: partner monthly net income must be finite", ErrInvalidInput)
		}
		p := money.NewMoney(*partner).Decimal
		in.PartnerMonthlyNetIncome = &p
	}
	return in, in.Validate()
}

// Validate checks the income preconditions
func (in IncomeInput) Validate() error {
	if in.MonthlyNetIncome.IsNegative() {
		return fmt.Errorf("%w: monthly net income cannot be negative (got %s)", ErrInvalidInput, in.MonthlyNetIncome)
	}
	if in.PartnerMonthlyNetIncome != nil && in.PartnerMonthlyNetIncome.IsNegative() {
		return fmt.Errorf("%w: partner monthly net income cannot be negative (got %s)", ErrInvalidInput, in.PartnerMonthlyNetIncome)
	}
	return nil
}

// AnnualHouseholdIncome returns the combined income annualized
func (in IncomeInput) AnnualHouseholdIncome() decimal.Decimal {
	monthly := money.NewMoneyFromDecimal(in.MonthlyNetIncome)
	if in.PartnerMonthlyNetIncome != nil {
		monthly = monthly.Add(money.NewMoneyFromDecimal(*in.PartnerMonthlyNetIncome))
	}
	return monthly.Annual().Decimal
}

// Bonuses are the statutory uplifts layered on top of the clamped base amount
type Bonuses struct {
	SiblingBonus            bool `yaml:"sibling_bonus" json:"siblingBonus"`
	MultipleBirthBonus      bool `yaml:"multiple_birth_bonus" json:"multipleBirthBonus"`
	AdditionalChildrenCount int  `yaml:"additional_children_count" json:"additionalChildrenCount"`
}

// Validate checks the bonus preconditions
func (b Bonuses) Validate() error {
	if b.AdditionalChildrenCount < 0 {
		return fmt.Errorf("%w: additional children count cannot be negative (got %d)", ErrInvalidInput, b.AdditionalChildrenCount)
	}
	return nil
}

// BenefitResult is the monthly entitlement under both regimes
type BenefitResult struct {
	BasisAmount       decimal.Decimal `yaml:"basis_amount" json:"basisAmount"`
	PlusAmount        decimal.Decimal `yaml:"plus_amount" json:"plusAmount"`
	IsOverIncomeLimit bool            `yaml:"is_over_income_limit" json:"isOverIncomeLimit"`
	IsAtMaximum       bool            `yaml:"is_at_maximum" json:"isAtMaximum"`
}

// BenefitRules holds every constant of the calculation so that regional or
// tax-year variants can be expressed as configuration instead of code.
type BenefitRules struct {
	IncomeCeiling decimal.Decimal `yaml:"income_ceiling" json:"incomeCeiling"`

	MinimumAmount decimal.Decimal `yaml:"minimum_amount" json:"minimumAmount"`
	MaximumAmount decimal.Decimal `yaml:"maximum_amount" json:"maximumAmount"`

	// Replacement rate in percent, tapered for incomes above TaperThreshold
	BaseRatePercent    decimal.Decimal `yaml:"base_rate_percent" json:"baseRatePercent"`
	MinimumRatePercent decimal.Decimal `yaml:"minimum_rate_percent" json:"minimumRatePercent"`
	TaperThreshold     decimal.Decimal `yaml:"taper_threshold" json:"taperThreshold"`
	TaperIncomeStep    decimal.Decimal `yaml:"taper_income_step" json:"taperIncomeStep"`
	TaperPercentStep   decimal.Decimal `yaml:"taper_percent_step" json:"taperPercentStep"`

	SiblingBonusRate    decimal.Decimal `yaml:"sibling_bonus_rate" json:"siblingBonusRate"`
	SiblingBonusMinimum decimal.Decimal `yaml:"sibling_bonus_minimum" json:"siblingBonusMinimum"`
	MultipleBirthBonus  decimal.Decimal `yaml:"multiple_birth_bonus" json:"multipleBirthBonus"`
}

// DefaultBenefitRules returns the statutory constants with the legacy ceiling
func DefaultBenefitRules() BenefitRules {
	return BenefitRules{
		IncomeCeiling:       IncomeCeilingLegacy,
		MinimumAmount:       decimal.NewFromInt(300),
		MaximumAmount:       decimal.NewFromInt(1800),
		BaseRatePercent:     decimal.NewFromInt(67),
		MinimumRatePercent:  decimal.NewFromInt(65),
		TaperThreshold:      decimal.NewFromInt(1240),
		TaperIncomeStep:     decimal.NewFromInt(2000),
		TaperPercentStep:    decimal.NewFromInt(2),
		SiblingBonusRate:    decimal.NewFromFloat(0.10),
		SiblingBonusMinimum: decimal.NewFromInt(75),
		MultipleBirthBonus:  decimal.NewFromInt(300),
	}
}

// WithCeiling returns a copy of the rules using a different income ceiling
func (r BenefitRules) WithCeiling(ceiling decimal.Decimal) BenefitRules {
	r.IncomeCeiling = ceiling
	return r
}

// Validate rejects rule sets that would make the calculation meaningless
func (r BenefitRules) Validate() error {
	if !r.IncomeCeiling.IsPositive() {
		return fmt.Errorf("income ceiling must be positive")
	}
	if r.MinimumAmount.IsNegative() {
		return fmt.Errorf("minimum amount cannot be negative")
	}
	if r.MaximumAmount.LessThan(r.MinimumAmount) {
		return fmt.Errorf("maximum amount %s is below minimum amount %s", r.MaximumAmount, r.MinimumAmount)
	}
	if r.MinimumRatePercent.GreaterThan(r.BaseRatePercent) {
		return fmt.Errorf("minimum rate %s%% exceeds base rate %s%%", r.MinimumRatePercent, r.BaseRatePercent)
	}
	if !r.TaperIncomeStep.IsPositive() {
		return fmt.Errorf("taper income step must be positive")
	}
	if r.SiblingBonusRate.IsNegative() || r.SiblingBonusMinimum.IsNegative() || r.MultipleBirthBonus.IsNegative() {
		return fmt.Errorf("bonus amounts cannot be negative")
	}
	return nil
}

// CeilingForPreset resolves a named ceiling ("legacy" or "extended")
func CeilingForPreset(name string) (decimal.Decimal, error) {
	switch name {
	case "", "legacy":
		return IncomeCeilingLegacy, nil
	case "extended":
		return IncomeCeilingExtended, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown income ceiling preset %q (want legacy or extended)", name)
	}
}
