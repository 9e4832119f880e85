package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "name: \"Couple\"\n" +
		"household:\n" +
		"  income:\n" +
		"    monthly_net_income: 2000\n" +
		"    partner_monthly_net_income: 1800.50\n" +
		"  bonuses:\n" +
		"    sibling_bonus: true\n" +
		"  child_birth_date: 2025-03-15\n" +
		"plan:\n" +
		"  visible_months: 16\n" +
		"  months:\n" +
		"    - parent_one: basis\n" +
		"    - parent_one: basis\n" +
		"      parent_two: plus\n" +
		"    - parent_two: Partnerschaftsbonus\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "Couple", config.Name)
	assert.True(t, config.Household.Income.MonthlyNetIncome.Equal(decimal.NewFromInt(2000)))
	require.NotNil(t, config.Household.Income.PartnerMonthlyNetIncome)
	assert.True(t, config.Household.Income.PartnerMonthlyNetIncome.Equal(decimal.NewFromFloat(1800.50)))
	assert.True(t, config.Household.Bonuses.SiblingBonus)
	require.NotNil(t, config.Household.ChildBirthDate)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *config.Household.ChildBirthDate)

	// rules default when not given
	assert.True(t, config.Rules.IncomeCeiling.Equal(domain.IncomeCeilingLegacy))
	assert.True(t, config.Rules.MaximumAmount.Equal(decimal.NewFromInt(1800)))

	require.Len(t, config.Plan.Months, 3)
	assert.Equal(t, domain.MonthEntry{ParentOne: domain.Basis, ParentTwo: domain.Plus}, config.Plan.Months[1])
	assert.Equal(t, domain.Partnership, config.Plan.Months[2].ParentTwo)

	plan, err := config.Plan.BuildPlan()
	require.NoError(t, err)
	assert.Equal(t, 16, plan.VisibleMonths())
}

func TestLoadFromFile_NonexistentFile(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "household: [unclosed"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_RuleOverrides(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.Parse([]byte("household:\n  income:\n    monthly_net_income: 1000\nrules:\n  maximum_amount: 2000\n"))
	require.NoError(t, err)
	assert.True(t, config.Rules.MaximumAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, config.Rules.MinimumAmount.Equal(decimal.NewFromInt(300)), "untouched rules keep defaults")

	config, err = parser.Parse([]byte("income_ceiling_preset: extended\nhousehold:\n  income:\n    monthly_net_income: 1000\n"))
	require.NoError(t, err)
	assert.True(t, config.Rules.IncomeCeiling.Equal(domain.IncomeCeilingExtended))

	config, err = parser.Parse([]byte("rules:\n  income_ceiling: 200000\nhousehold:\n  income:\n    monthly_net_income: 1000\n"))
	require.NoError(t, err)
	assert.True(t, config.Rules.IncomeCeiling.Equal(decimal.NewFromInt(200000)))
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		yaml   string
		expect string
	}{
		{"negative income", "household:\n  income:\n    monthly_net_income: -5\n", "monthly net income cannot be negative"},
		{"negative children", "household:\n  bonuses:\n    additional_children_count: -1\n", "additional children count cannot be negative"},
		{"unknown preset", "income_ceiling_preset: someday\n", "unknown income ceiling preset"},
		{"broken rules", "rules:\n  maximum_amount: 100\n", "rules"},
		{"single parent with partner income", "household:\n  is_single_parent: true\n  income:\n    partner_monthly_net_income: 100\n", "partner income"},
		{"single parent allocating parent two", "household:\n  is_single_parent: true\nplan:\n  months:\n    - parent_two: basis\n", "parent two"},
		{"too many months", "plan:\n  max_visible_months: 2\n  months:\n    - parent_one: basis\n    - parent_one: basis\n    - parent_one: basis\n", "at most 2"},
		{"visible beyond maximum", "plan:\n  max_visible_months: 12\n  visible_months: 14\n", "visible_months"},
		{"maximum too large", "plan:\n  max_visible_months: 48\n", "max_visible_months"},
		{"unknown benefit type", "plan:\n  months:\n    - parent_one: forever\n", "unknown benefit type"},
	}

	parser := NewInputParser()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expect)
		})
	}
}

func TestValidationErrorsWrapSentinel(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("household:\n  income:\n    monthly_net_income: -5\n"))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.SaveConfiguration(example, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example.Name, loaded.Name)
	assert.Equal(t, example.Plan.Months, loaded.Plan.Months)
	assert.Equal(t, example.Plan.VisibleMonths, loaded.Plan.VisibleMonths)
	assert.True(t, loaded.Household.Income.PartnerMonthlyNetIncome.Equal(decimal.NewFromInt(2600)))
	assert.True(t, loaded.Rules.SiblingBonusRate.Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, example.Household.ChildBirthDate.Equal(*loaded.Household.ChildBirthDate))
}
