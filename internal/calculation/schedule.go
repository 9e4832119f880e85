package calculation

import (
	"time"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/elterngeld/calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ParentSummary aggregates one parent's months and payout
type ParentSummary struct {
	BasisMonths       int             `json:"basisMonths"`
	PlusMonths        int             `json:"plusMonths"`
	PartnershipMonths int             `json:"partnershipMonths"`
	Total             decimal.Decimal `json:"total"`
}

func (ps *ParentSummary) add(t domain.BenefitType, result domain.BenefitResult) {
	switch t {
	case domain.Basis:
		ps.BasisMonths++
	case domain.Plus:
		ps.PlusMonths++
	case domain.Partnership:
		ps.PartnershipMonths++
	}
	ps.Total = ps.Total.Add(ShareAmount(t, result))
}

// PlanSummary totals a plan over its visible months
type PlanSummary struct {
	VisibleMonths           int             `json:"visibleMonths"`
	ParentOne               ParentSummary   `json:"parentOne"`
	ParentTwo               ParentSummary   `json:"parentTwo"`
	SimultaneousBasisMonths int             `json:"simultaneousBasisMonths"`
	Total                   decimal.Decimal `json:"total"`
}

// SummarizePlan counts allocations and sums payouts over the visible months
func SummarizePlan(plan *domain.MonthPlan, result domain.BenefitResult) PlanSummary {
	summary := PlanSummary{
		ParentOne: ParentSummary{Total: decimal.Zero},
		ParentTwo: ParentSummary{Total: decimal.Zero},
		Total:     decimal.Zero,
	}
	if plan == nil {
		return summary
	}
	summary.VisibleMonths = plan.VisibleMonths()
	for i := 0; i < plan.VisibleMonths(); i++ {
		e := plan.Entry(i)
		summary.ParentOne.add(e.ParentOne, result)
		summary.ParentTwo.add(e.ParentTwo, result)
		if e.ParentOne == domain.Basis && e.ParentTwo == domain.Basis {
			summary.SimultaneousBasisMonths++
		}
	}
	summary.Total = summary.ParentOne.Total.Add(summary.ParentTwo.Total)
	return summary
}

// ScheduleRow is one month of life in a payout schedule
type ScheduleRow struct {
	LifeMonth       int                `json:"lifeMonth"` // 1-based
	Start           *time.Time         `json:"start,omitempty"`
	End             *time.Time         `json:"end,omitempty"`
	ParentOne       domain.BenefitType `json:"parentOne"`
	ParentTwo       domain.BenefitType `json:"parentTwo"`
	ParentOneAmount decimal.Decimal    `json:"parentOneAmount"`
	ParentTwoAmount decimal.Decimal    `json:"parentTwoAmount"`
	Total           decimal.Decimal    `json:"total"`
}

// BuildSchedule lists every visible month with its allocations and amounts.
// Calendar dates are filled in when the child's birth date is known.
func BuildSchedule(plan *domain.MonthPlan, result domain.BenefitResult, childBirthDate *time.Time) []ScheduleRow {
	if plan == nil {
		return nil
	}
	rows := make([]ScheduleRow, 0, plan.VisibleMonths())
	for i := 0; i < plan.VisibleMonths(); i++ {
		e := plan.Entry(i)
		row := ScheduleRow{
			LifeMonth:       i + 1,
			ParentOne:       e.ParentOne,
			ParentTwo:       e.ParentTwo,
			ParentOneAmount: ShareAmount(e.ParentOne, result),
			ParentTwoAmount: ShareAmount(e.ParentTwo, result),
			Total:           MonthAmount(e, result),
		}
		if childBirthDate != nil {
			start, end := dateutil.LifeMonth(*childBirthDate, i)
			row.Start, row.End = &start, &end
		}
		rows = append(rows, row)
	}
	return rows
}
