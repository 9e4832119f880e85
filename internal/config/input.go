package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration wraps every validation failure of a scenario file
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a scenario. Rule fields absent from the document keep their
// statutory defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Rules: domain.DefaultBenefitRules()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.IncomeCeilingPreset != "" {
		ceiling, err := domain.CeilingForPreset(config.IncomeCeilingPreset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		config.Rules.IncomeCeiling = ceiling
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("%w: household: %v", ErrInvalidConfiguration, err)
	}
	if err := config.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: rules: %v", ErrInvalidConfiguration, err)
	}
	if err := ip.validatePlan(&config.Plan, config.Household.IsSingleParent); err != nil {
		return fmt.Errorf("%w: plan: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// validateHousehold validates income, bonuses and the child's data
func (ip *InputParser) validateHousehold(h *domain.HouseholdDetails) error {
	if err := h.Income.Validate(); err != nil {
		return err
	}
	if err := h.Bonuses.Validate(); err != nil {
		return err
	}
	if h.IsSingleParent && h.Income.PartnerMonthlyNetIncome != nil {
		return fmt.Errorf("single parent households cannot have partner income")
	}
	if h.ChildBirthDate != nil && h.ChildBirthDate.IsZero() {
		return fmt.Errorf("child birth date is invalid")
	}
	return nil
}

// validatePlan validates the month window and allocations
func (ip *InputParser) validatePlan(p *domain.PlanConfig, isSingleParent bool) error {
	if p.MaxVisibleMonths < 0 || p.MaxVisibleMonths > domain.DefaultMaxVisibleMonths {
		return fmt.Errorf("max_visible_months must be between 1 and %d", domain.DefaultMaxVisibleMonths)
	}
	maxMonths := p.MaxVisibleMonths
	if maxMonths == 0 {
		maxMonths = domain.DefaultMaxVisibleMonths
	}
	if p.VisibleMonths < 0 || p.VisibleMonths > maxMonths {
		return fmt.Errorf("visible_months must be between 1 and %d", maxMonths)
	}
	if len(p.Months) > maxMonths {
		return fmt.Errorf("plan lists %d months, at most %d are allowed", len(p.Months), maxMonths)
	}
	if isSingleParent {
		for i, m := range p.Months {
			if m.ParentTwo != domain.None {
				return fmt.Errorf("month %d: single parent plans cannot allocate months to parent two", i+1)
			}
		}
	}
	return nil
}

// SaveConfiguration writes a scenario back to disk as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleConfiguration creates an example scenario: a couple expecting
// twins who split Basis months 12/2 and add Plus months for parent one.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	birthDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	partnerIncome := decimal.NewFromInt(2600)

	months := make([]domain.MonthEntry, 0, 18)
	for i := 0; i < 12; i++ {
		months = append(months, domain.MonthEntry{ParentOne: domain.Basis})
	}
	months = append(months,
		domain.MonthEntry{ParentOne: domain.Plus, ParentTwo: domain.Basis},
		domain.MonthEntry{ParentOne: domain.Plus, ParentTwo: domain.Basis},
		domain.MonthEntry{ParentOne: domain.Plus, ParentTwo: domain.Partnership},
		domain.MonthEntry{ParentOne: domain.Plus, ParentTwo: domain.Partnership},
	)

	return &domain.Configuration{
		Name: "Twins, 12 + 2 Basis months",
		Household: domain.HouseholdDetails{
			Income: domain.IncomeInput{
				MonthlyNetIncome:        decimal.NewFromInt(2000),
				PartnerMonthlyNetIncome: &partnerIncome,
			},
			Bonuses: domain.Bonuses{
				MultipleBirthBonus:      true,
				AdditionalChildrenCount: 1,
			},
			ChildBirthDate: &birthDate,
		},
		IncomeCeilingPreset: "legacy",
		Rules:               domain.DefaultBenefitRules(),
		Plan: domain.PlanConfig{
			MaxVisibleMonths: domain.DefaultMaxVisibleMonths,
			VisibleMonths:    18,
			Months:           months,
		},
	}
}
