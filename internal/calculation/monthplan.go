package calculation

import (
	"fmt"

	"github.com/elterngeld/calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateMonthPlan checks the first visibleMonths entries of plan against the
// statutory month limits. Violations are returned in rule order; an empty
// result means the plan is valid.
func ValidateMonthPlan(plan *domain.MonthPlan, isSingleParent bool, visibleMonths int) domain.ValidationResult {
	return ValidateMonthPlanWithRules(plan, domain.DefaultPlanRules(), isSingleParent, visibleMonths)
}

// ValidateMonthPlanWithRules is ValidateMonthPlan with explicit limits
func ValidateMonthPlanWithRules(plan *domain.MonthPlan, rules domain.PlanRules, isSingleParent bool, visibleMonths int) domain.ValidationResult {
	result := domain.ValidationResult{}
	if plan == nil {
		return result
	}
	visible := clampVisible(plan, visibleMonths)

	p1Basis, p2Basis := 0, 0
	for i := 0; i < visible; i++ {
		e := plan.Entry(i)
		if e.ParentOne == domain.Basis {
			p1Basis++
		}
		if e.ParentTwo == domain.Basis {
			p2Basis++
		}
	}

	if isSingleParent {
		if p1Basis > rules.MaxBasisMonths {
			result = append(result, domain.Violation{
				Rule:    domain.RuleSingleParentMaxBasis,
				Message: fmt.Sprintf("Single parents can claim at most %d months of Basiselterngeld; %d are planned.", rules.MaxBasisMonths, p1Basis),
			})
		}
		if p1Basis > 0 && p1Basis < rules.MinBasisMonths {
			result = append(result, domain.Violation{
				Rule:    domain.RuleSingleParentMinBasis,
				Message: fmt.Sprintf("Basiselterngeld must be claimed for at least %d months; only %d is planned.", rules.MinBasisMonths, p1Basis),
			})
		}
		return result
	}

	total := p1Basis + p2Basis
	if total > rules.MaxBasisMonths {
		result = append(result, domain.Violation{
			Rule:    domain.RuleTotalBasisMonths,
			Message: fmt.Sprintf("Both parents together can claim at most %d months of Basiselterngeld; %d are planned.", rules.MaxBasisMonths, total),
		})
	}
	if total == rules.MaxBasisMonths && (p1Basis < rules.MinBasisMonths || p2Basis < rules.MinBasisMonths) {
		result = append(result, domain.Violation{
			Rule: domain.RuleMinBasisPerParent,
			Message: fmt.Sprintf("All %d months are only available if each parent claims at least %d months of Basiselterngeld (parent one: %d, parent two: %d).",
				rules.MaxBasisMonths, rules.MinBasisMonths, p1Basis, p2Basis),
		})
	}

	simultaneous, firstLate := simultaneousBasis(plan, visible, rules.SimultaneousBasisBefore)
	if simultaneous > rules.MaxSimultaneousBasis {
		result = append(result, domain.Violation{
			Rule:    domain.RuleSimultaneousBasisCount,
			Message: fmt.Sprintf("Both parents can receive Basiselterngeld at the same time for at most %d month; %d months overlap.", rules.MaxSimultaneousBasis, simultaneous),
		})
	}
	if firstLate >= 0 {
		result = append(result, domain.Violation{
			Rule:    domain.RuleSimultaneousBasisLate,
			Message: fmt.Sprintf("Simultaneous Basiselterngeld is only possible in the first %d months of life; month %d overlaps.", rules.SimultaneousBasisBefore, firstLate+1),
		})
	}

	return result
}

// simultaneousBasis counts months where both parents draw Basis and returns the
// first such index at or after lateFrom, or -1.
func simultaneousBasis(plan *domain.MonthPlan, visible, lateFrom int) (count, firstLate int) {
	firstLate = -1
	for i := 0; i < visible; i++ {
		e := plan.Entry(i)
		if e.ParentOne != domain.Basis || e.ParentTwo != domain.Basis {
			continue
		}
		count++
		if i >= lateFrom && firstLate < 0 {
			firstLate = i
		}
	}
	return count, firstLate
}

func clampVisible(plan *domain.MonthPlan, visibleMonths int) int {
	if visibleMonths < 0 {
		return 0
	}
	if visibleMonths > plan.Len() {
		return plan.Len()
	}
	return visibleMonths
}

// ShareAmount returns what one parent receives for a month with the given allocation.
// Partnership months are paid at the Basis rate.
func ShareAmount(t domain.BenefitType, result domain.BenefitResult) decimal.Decimal {
	switch t {
	case domain.Basis, domain.Partnership:
		return result.BasisAmount
	case domain.Plus:
		return result.PlusAmount
	default:
		return decimal.Zero
	}
}

// MonthAmount returns the combined payout of both parents for one month
func MonthAmount(entry domain.MonthEntry, result domain.BenefitResult) decimal.Decimal {
	return ShareAmount(entry.ParentOne, result).Add(ShareAmount(entry.ParentTwo, result))
}
