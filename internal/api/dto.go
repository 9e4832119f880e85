/*
dto.go - Request and response bodies of the calculator API

Amounts are sent and returned as JSON numbers in euros. Benefit types are
the strings "none", "basis", "plus" and "partnership".
*/
package api

import (
	"github.com/elterngeld/calculator/internal/domain"
)

// BenefitRequest is the body of POST /api/benefit
type BenefitRequest struct {
	MonthlyNetIncome        float64  `json:"monthlyNetIncome"`
	PartnerMonthlyNetIncome *float64 `json:"partnerMonthlyNetIncome,omitempty"`
	SiblingBonus            bool     `json:"siblingBonus"`
	MultipleBirthBonus      bool     `json:"multipleBirthBonus"`
	AdditionalChildrenCount int      `json:"additionalChildrenCount"`
}

// BenefitResultDTO mirrors domain.BenefitResult with numeric amounts
type BenefitResultDTO struct {
	BasisAmount       float64 `json:"basisAmount"`
	PlusAmount        float64 `json:"plusAmount"`
	IsOverIncomeLimit bool    `json:"isOverIncomeLimit"`
	IsAtMaximum       bool    `json:"isAtMaximum"`
}

// PlanRequest is the body of POST /api/plan/validate
type PlanRequest struct {
	IsSingleParent bool                `json:"isSingleParent"`
	VisibleMonths  int                 `json:"visibleMonths,omitempty"`
	Months         []domain.MonthEntry `json:"months"`
}

// ValidationResponse lists plan violations in rule order
type ValidationResponse struct {
	Valid      bool               `json:"valid"`
	Violations []domain.Violation `json:"violations"`
	Messages   []string           `json:"messages"`
}

// EstimateRequest is the body of POST /api/plan/estimate
type EstimateRequest struct {
	Name           string `json:"name,omitempty"`
	ChildBirthDate string `json:"childBirthDate,omitempty"` // YYYY-MM-DD
	BenefitRequest
	PlanRequest
}

// ConfigResponse exposes the effective server settings to widgets
type ConfigResponse struct {
	IncomeCeiling        float64 `json:"incomeCeiling"`
	MaxVisibleMonths     int     `json:"maxVisibleMonths"`
	InitialVisibleMonths int     `json:"initialVisibleMonths"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toBenefitResultDTO(r domain.BenefitResult) BenefitResultDTO {
	return BenefitResultDTO{
		BasisAmount:       r.BasisAmount.InexactFloat64(),
		PlusAmount:        r.PlusAmount.InexactFloat64(),
		IsOverIncomeLimit: r.IsOverIncomeLimit,
		IsAtMaximum:       r.IsAtMaximum,
	}
}
