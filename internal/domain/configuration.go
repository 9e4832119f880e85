package domain

import (
	"time"
)

// Configuration is a complete planning scenario as stored in a YAML file
type Configuration struct {
	Name      string           `yaml:"name" json:"name"`
	Household HouseholdDetails `yaml:"household" json:"household"`

	// IncomeCeilingPreset ("legacy" or "extended") replaces Rules.IncomeCeiling when set
	IncomeCeilingPreset string       `yaml:"income_ceiling_preset,omitempty" json:"incomeCeilingPreset,omitempty"`
	Rules               BenefitRules `yaml:"rules" json:"rules"`

	Plan PlanConfig `yaml:"plan" json:"plan"`
}

// HouseholdDetails describes the applicants and the child
type HouseholdDetails struct {
	Income         IncomeInput `yaml:"income" json:"income"`
	Bonuses        Bonuses     `yaml:"bonuses" json:"bonuses"`
	IsSingleParent bool        `yaml:"is_single_parent" json:"isSingleParent"`

	// Optional, only used to print calendar dates next to months of life
	ChildBirthDate *time.Time `yaml:"child_birth_date,omitempty" json:"childBirthDate,omitempty"`
}

// PlanConfig is the serialized form of a MonthPlan
type PlanConfig struct {
	MaxVisibleMonths int          `yaml:"max_visible_months,omitempty" json:"maxVisibleMonths,omitempty"`
	VisibleMonths    int          `yaml:"visible_months,omitempty" json:"visibleMonths,omitempty"`
	Months           []MonthEntry `yaml:"months" json:"months"`
}

// BuildPlan materializes the configured months into a MonthPlan
func (pc PlanConfig) BuildPlan() (*MonthPlan, error) {
	return NewMonthPlanFromEntries(pc.Months, pc.MaxVisibleMonths, pc.VisibleMonths)
}
