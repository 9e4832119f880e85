package calculation

import (
	"fmt"
	"time"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimateRequest bundles everything needed to evaluate one planning session
type EstimateRequest struct {
	Name           string
	Income         domain.IncomeInput
	Bonuses        domain.Bonuses
	IsSingleParent bool
	ChildBirthDate *time.Time
	Plan           *domain.MonthPlan
}

// Estimate is the evaluated plan: entitlement, rule violations and payouts
type Estimate struct {
	Name                   string                  `json:"name"`
	GeneratedAt            time.Time               `json:"generatedAt"`
	Income                 domain.IncomeInput      `json:"income"`
	Bonuses                domain.Bonuses          `json:"bonuses"`
	IsSingleParent         bool                    `json:"isSingleParent"`
	ChildBirthDate         *time.Time              `json:"childBirthDate,omitempty"`
	IncomeCeiling          decimal.Decimal         `json:"incomeCeiling"`
	ReplacementRatePercent decimal.Decimal         `json:"replacementRatePercent"`
	Result                 domain.BenefitResult    `json:"result"`
	Violations             domain.ValidationResult `json:"violations"`
	Summary                PlanSummary             `json:"summary"`
	Schedule               []ScheduleRow           `json:"schedule"`
}

// Estimate computes the entitlement and evaluates the plan against it.
// Only invalid income or bonus input fails; rule violations are part of the result.
func (bc *BenefitCalculator) Estimate(req EstimateRequest) (*Estimate, error) {
	result, err := bc.Compute(req.Income, req.Bonuses)
	if err != nil {
		return nil, err
	}

	plan := req.Plan
	if plan == nil {
		plan = domain.NewMonthPlan(domain.DefaultMaxVisibleMonths, domain.DefaultInitialVisibleMonths)
	}

	est := &Estimate{
		Name:                   req.Name,
		GeneratedAt:            nowFunc(),
		Income:                 req.Income,
		Bonuses:                req.Bonuses,
		IsSingleParent:         req.IsSingleParent,
		ChildBirthDate:         req.ChildBirthDate,
		IncomeCeiling:          bc.Rules.IncomeCeiling,
		ReplacementRatePercent: bc.ReplacementRate(req.Income.MonthlyNetIncome),
		Result:                 result,
		Violations:             ValidateMonthPlanWithRules(plan, bc.PlanRules, req.IsSingleParent, plan.VisibleMonths()),
		Summary:                SummarizePlan(plan, result),
		Schedule:               BuildSchedule(plan, result, req.ChildBirthDate),
	}
	if !est.Violations.Valid() {
		bc.logger().Infof("plan %q has %d rule violations", req.Name, len(est.Violations))
	}
	return est, nil
}

// EstimateConfiguration evaluates a scenario loaded from a configuration file
func EstimateConfiguration(cfg *domain.Configuration, logger Logger) (*Estimate, error) {
	plan, err := cfg.Plan.BuildPlan()
	if err != nil {
		return nil, fmt.Errorf("failed to build month plan: %w", err)
	}
	bc := NewBenefitCalculator(cfg.Rules)
	if logger != nil {
		bc.Logger = logger
	}
	return bc.Estimate(EstimateRequest{
		Name:           cfg.Name,
		Income:         cfg.Household.Income,
		Bonuses:        cfg.Household.Bonuses,
		IsSingleParent: cfg.Household.IsSingleParent,
		ChildBirthDate: cfg.Household.ChildBirthDate,
		Plan:           plan,
	})
}
