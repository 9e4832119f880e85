package calculation

import (
	"github.com/elterngeld/calculator/internal/domain"
	money "github.com/elterngeld/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalTwo     = decimal.NewFromInt(2)
	decimalOne     = decimal.NewFromInt(1)
)

// BenefitCalculator computes the monthly Elterngeld entitlement.
// It holds no mutable state and is safe for concurrent use.
type BenefitCalculator struct {
	Rules     domain.BenefitRules
	PlanRules domain.PlanRules
	Logger    Logger
}

// NewBenefitCalculator creates a calculator for the given rule set
func NewBenefitCalculator(rules domain.BenefitRules) *BenefitCalculator {
	return &BenefitCalculator{Rules: rules, PlanRules: domain.DefaultPlanRules(), Logger: NopLogger{}}
}

// ComputeBenefit computes the entitlement with the statutory rules and the given income ceiling
func ComputeBenefit(income domain.IncomeInput, bonuses domain.Bonuses, ceiling decimal.Decimal) (domain.BenefitResult, error) {
	return NewBenefitCalculator(domain.DefaultBenefitRules().WithCeiling(ceiling)).Compute(income, bonuses)
}

func (bc *BenefitCalculator) logger() Logger {
	if bc.Logger == nil {
		return NopLogger{}
	}
	return bc.Logger
}

// ReplacementRate returns the percentage of net income replaced by the benefit.
// Above the taper threshold the base rate drops by TaperPercentStep for every
// TaperIncomeStep of income, but never below MinimumRatePercent.
func (bc *BenefitCalculator) ReplacementRate(monthlyNetIncome decimal.Decimal) decimal.Decimal {
	r := bc.Rules
	if !monthlyNetIncome.GreaterThan(r.TaperThreshold) {
		return r.BaseRatePercent
	}
	excess := monthlyNetIncome.Sub(r.TaperThreshold)
	reduction := excess.Div(r.TaperIncomeStep).Mul(r.TaperPercentStep)
	return decimal.Max(r.MinimumRatePercent, r.BaseRatePercent.Sub(reduction))
}

// Compute maps income and bonuses to the monthly Basis and Plus amounts.
//
// Order of operations:
//  1. household income above the ceiling short-circuits to zero, no bonuses
//  2. income times the tapered replacement rate
//  3. the maximum flag is taken from the unclamped amount
//  4. clamp to [MinimumAmount, MaximumAmount]
//  5. sibling bonus: the larger of the percentage uplift and the flat minimum
//  6. multiple birth bonus per additional child
//  7. round to whole euros; Plus is half of the rounded Basis, rounded again
//
// Bonuses are not clamped a second time, so results may exceed MaximumAmount.
func (bc *BenefitCalculator) Compute(income domain.IncomeInput, bonuses domain.Bonuses) (domain.BenefitResult, error) {
	if err := income.Validate(); err != nil {
		return domain.BenefitResult{}, err
	}
	if err := bonuses.Validate(); err != nil {
		return domain.BenefitResult{}, err
	}
	r := bc.Rules

	annual := income.AnnualHouseholdIncome()
	if annual.GreaterThan(r.IncomeCeiling) {
		bc.logger().Debugf("annual household income %s exceeds ceiling %s", annual, r.IncomeCeiling)
		return domain.BenefitResult{
			BasisAmount:       decimal.Zero,
			PlusAmount:        decimal.Zero,
			IsOverIncomeLimit: true,
		}, nil
	}

	rate := bc.ReplacementRate(income.MonthlyNetIncome)
	raw := money.NewMoneyFromDecimal(income.MonthlyNetIncome.Mul(rate).Div(decimalHundred))

	minimum := money.NewMoneyFromDecimal(r.MinimumAmount)
	maximum := money.NewMoneyFromDecimal(r.MaximumAmount)
	isAtMaximum := raw.GreaterThanOrEqual(maximum)

	amount := raw.Clamp(minimum, maximum)

	if bonuses.SiblingBonus {
		uplift := amount.Mul(decimalOne.Add(r.SiblingBonusRate))
		flat := amount.Add(money.NewMoneyFromDecimal(r.SiblingBonusMinimum))
		amount = money.Max(uplift, flat)
	}

	if bonuses.MultipleBirthBonus && bonuses.AdditionalChildrenCount > 0 {
		extra := r.MultipleBirthBonus.Mul(decimal.NewFromInt(int64(bonuses.AdditionalChildrenCount)))
		amount = amount.Add(money.NewMoneyFromDecimal(extra))
	}

	basis := amount.RoundEuro()
	plus := basis.Div(decimalTwo).RoundEuro()

	bc.logger().Debugf("income %s rate %s%% raw %s basis %s plus %s", income.MonthlyNetIncome, rate, raw, basis, plus)

	return domain.BenefitResult{
		BasisAmount: basis.Decimal,
		PlusAmount:  plus.Decimal,
		IsAtMaximum: isAtMaximum,
	}, nil
}
