package calculation

import (
	"sync"
	"testing"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func income(monthly int64) domain.IncomeInput {
	return domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(monthly)}
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// TestComputeBenefit_KnownValues checks hand-computed results across the rate taper and bonuses
func TestComputeBenefit_KnownValues(t *testing.T) {
	tests := []struct {
		name         string
		income       domain.IncomeInput
		bonuses      domain.Bonuses
		expBasis     int64
		expPlus      int64
		expAtMax     bool
		expOverLimit bool
	}{
		{name: "zero income gets the floor", income: income(0), expBasis: 300, expPlus: 150},
		{name: "low income still gets the floor", income: income(400), expBasis: 300, expPlus: 150},
		{name: "67% below threshold", income: income(1000), expBasis: 670, expPlus: 335},
		{name: "threshold itself is untapered", income: income(1240), expBasis: 831, expPlus: 416},
		{name: "tapered rate at 2000", income: income(2000), expBasis: 1325, expPlus: 663},
		{name: "just below the cap", income: income(2700), expBasis: 1770, expPlus: 885},
		{name: "capped at maximum", income: income(3000), expBasis: 1800, expPlus: 900, expAtMax: true},
		{name: "rate floored at 65%", income: income(10000), expBasis: 1800, expPlus: 900, expAtMax: true},
		{
			name:     "sibling bonus flat minimum wins",
			income:   income(1000),
			bonuses:  domain.Bonuses{SiblingBonus: true},
			expBasis: 745, expPlus: 373,
		},
		{
			name:     "sibling bonus percentage wins",
			income:   income(2000),
			bonuses:  domain.Bonuses{SiblingBonus: true},
			expBasis: 1457, expPlus: 729, // 1324.8 * 1.1 = 1457.28
		},
		{
			name:     "sibling bonus on floor",
			income:   income(0),
			bonuses:  domain.Bonuses{SiblingBonus: true},
			expBasis: 375, expPlus: 188,
		},
		{
			name:     "sibling bonus is not re-clamped above the maximum",
			income:   income(5000),
			bonuses:  domain.Bonuses{SiblingBonus: true},
			expBasis: 1980, expPlus: 990, expAtMax: true,
		},
		{
			name:     "twins add 300",
			income:   income(2000),
			bonuses:  domain.Bonuses{MultipleBirthBonus: true, AdditionalChildrenCount: 1},
			expBasis: 1625, expPlus: 813,
		},
		{
			name:     "triplets add 600",
			income:   income(0),
			bonuses:  domain.Bonuses{MultipleBirthBonus: true, AdditionalChildrenCount: 2},
			expBasis: 900, expPlus: 450,
		},
		{
			name:     "multiple birth flag without additional children adds nothing",
			income:   income(1000),
			bonuses:  domain.Bonuses{MultipleBirthBonus: true},
			expBasis: 670, expPlus: 335,
		},
		{
			name:     "children count without flag adds nothing",
			income:   income(1000),
			bonuses:  domain.Bonuses{AdditionalChildrenCount: 3},
			expBasis: 670, expPlus: 335,
		},
		{
			name:     "sibling bonus applied before multiple birth bonus",
			income:   income(1000),
			bonuses:  domain.Bonuses{SiblingBonus: true, MultipleBirthBonus: true, AdditionalChildrenCount: 1},
			expBasis: 1045, expPlus: 523, // max(737, 745) + 300
		},
		{name: "over the legacy ceiling", income: income(100000), expOverLimit: true},
		{
			name:         "over the ceiling ignores bonuses",
			income:       income(20000),
			bonuses:      domain.Bonuses{SiblingBonus: true, MultipleBirthBonus: true, AdditionalChildrenCount: 2},
			expOverLimit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeBenefit(tt.income, tt.bonuses, domain.IncomeCeilingLegacy)
			require.NoError(t, err)
			assert.True(t, res.BasisAmount.Equal(decimal.NewFromInt(tt.expBasis)), "basis: got %s want %d", res.BasisAmount, tt.expBasis)
			assert.True(t, res.PlusAmount.Equal(decimal.NewFromInt(tt.expPlus)), "plus: got %s want %d", res.PlusAmount, tt.expPlus)
			assert.Equal(t, tt.expAtMax, res.IsAtMaximum)
			assert.Equal(t, tt.expOverLimit, res.IsOverIncomeLimit)
		})
	}
}

func TestComputeBenefit_IncomeCeiling(t *testing.T) {
	// 15000 * 12 = 180000: over the legacy ceiling, under the extended one
	res, err := ComputeBenefit(income(15000), domain.Bonuses{}, domain.IncomeCeilingLegacy)
	require.NoError(t, err)
	assert.True(t, res.IsOverIncomeLimit)
	assert.False(t, res.IsAtMaximum)
	assert.True(t, res.BasisAmount.IsZero())
	assert.True(t, res.PlusAmount.IsZero())

	res, err = ComputeBenefit(income(15000), domain.Bonuses{}, domain.IncomeCeilingExtended)
	require.NoError(t, err)
	assert.False(t, res.IsOverIncomeLimit)
	assert.True(t, res.BasisAmount.Equal(decimal.NewFromInt(1800)))

	// exactly at the ceiling is still eligible
	atCeiling := domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(175000).Div(decimal.NewFromInt(12))}
	res, err = ComputeBenefit(atCeiling, domain.Bonuses{}, domain.IncomeCeilingLegacy)
	require.NoError(t, err)
	assert.False(t, res.IsOverIncomeLimit)
}

func TestComputeBenefit_PartnerIncomeCountsTowardCeiling(t *testing.T) {
	partner := decimal.NewFromInt(9000)
	in := domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(6000), PartnerMonthlyNetIncome: &partner}

	res, err := ComputeBenefit(in, domain.Bonuses{}, domain.IncomeCeilingLegacy)
	require.NoError(t, err)
	assert.True(t, res.IsOverIncomeLimit, "(6000+9000)*12 = 180000 exceeds 175000")

	// The amount itself is based on the applicant's own income only
	small := decimal.NewFromInt(500)
	in = domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(1000), PartnerMonthlyNetIncome: &small}
	res, err = ComputeBenefit(in, domain.Bonuses{}, domain.IncomeCeilingLegacy)
	require.NoError(t, err)
	assert.True(t, res.BasisAmount.Equal(decimal.NewFromInt(670)))
}

func TestComputeBenefit_InvalidInput(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	cases := []struct {
		name    string
		income  domain.IncomeInput
		bonuses domain.Bonuses
	}{
		{"negative income", domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(-100)}, domain.Bonuses{}},
		{"negative partner income", domain.IncomeInput{MonthlyNetIncome: decimal.NewFromInt(100), PartnerMonthlyNetIncome: &negative}, domain.Bonuses{}},
		{"negative additional children", income(1000), domain.Bonuses{MultipleBirthBonus: true, AdditionalChildrenCount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeBenefit(tc.income, tc.bonuses, domain.IncomeCeilingLegacy)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestComputeBenefit_Properties sweeps the eligible income range
func TestComputeBenefit_Properties(t *testing.T) {
	ceiling := domain.IncomeCeilingLegacy
	maxMonthly := ceiling.Div(decimal.NewFromInt(12))
	floor, upper := decimal.NewFromInt(300), decimal.NewFromInt(1800)

	for monthly := decimal.Zero; monthly.LessThanOrEqual(maxMonthly); monthly = monthly.Add(dec(137.5)) {
		in := domain.IncomeInput{MonthlyNetIncome: monthly}
		res, err := ComputeBenefit(in, domain.Bonuses{}, ceiling)
		require.NoError(t, err)

		assert.False(t, res.IsOverIncomeLimit, "income %s", monthly)
		assert.True(t, res.BasisAmount.GreaterThanOrEqual(floor), "income %s basis %s", monthly, res.BasisAmount)
		assert.True(t, res.BasisAmount.LessThanOrEqual(upper), "income %s basis %s", monthly, res.BasisAmount)
		assert.True(t, res.PlusAmount.Equal(res.BasisAmount.Div(decimal.NewFromInt(2)).Round(0)), "income %s", monthly)

		again, err := ComputeBenefit(in, domain.Bonuses{}, ceiling)
		require.NoError(t, err)
		assert.Equal(t, res, again)
	}
}

func TestReplacementRate(t *testing.T) {
	bc := NewBenefitCalculator(domain.DefaultBenefitRules())
	assert.True(t, bc.ReplacementRate(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(67)))
	assert.True(t, bc.ReplacementRate(decimal.NewFromInt(1240)).Equal(decimal.NewFromInt(67)))
	assert.True(t, bc.ReplacementRate(decimal.NewFromInt(2000)).Equal(dec(66.24)))
	assert.True(t, bc.ReplacementRate(decimal.NewFromInt(3240)).Equal(decimal.NewFromInt(65)))
	assert.True(t, bc.ReplacementRate(decimal.NewFromInt(9000)).Equal(decimal.NewFromInt(65)))
}

func TestBenefitCalculator_CustomRules(t *testing.T) {
	rules := domain.DefaultBenefitRules()
	rules.MinimumAmount = decimal.NewFromInt(400)
	rules.MaximumAmount = decimal.NewFromInt(2000)
	bc := NewBenefitCalculator(rules)

	res, err := bc.Compute(income(0), domain.Bonuses{})
	require.NoError(t, err)
	assert.True(t, res.BasisAmount.Equal(decimal.NewFromInt(400)))

	res, err = bc.Compute(income(3000), domain.Bonuses{})
	require.NoError(t, err)
	assert.True(t, res.BasisAmount.Equal(decimal.NewFromInt(1957)))
	assert.False(t, res.IsAtMaximum)
}

func TestBenefitCalculator_NilLogger(t *testing.T) {
	bc := &BenefitCalculator{Rules: domain.DefaultBenefitRules()}
	_, err := bc.Compute(income(100000), domain.Bonuses{})
	assert.NoError(t, err)
}

func TestBenefitCalculator_ConcurrentUse(t *testing.T) {
	bc := NewBenefitCalculator(domain.DefaultBenefitRules())
	want, err := bc.Compute(income(2000), domain.Bonuses{MultipleBirthBonus: true, AdditionalChildrenCount: 1})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.BenefitResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = bc.Compute(income(2000), domain.Bonuses{MultipleBirthBonus: true, AdditionalChildrenCount: 1})
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
