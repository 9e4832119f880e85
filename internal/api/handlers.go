/*
handlers.go - HTTP handlers for the Elterngeld calculator

ENDPOINTS:

	POST /api/benefit         Monthly Basis/Plus amounts for an income
	POST /api/plan/validate   Month plan rule violations
	POST /api/plan/estimate   Amounts, violations, payout schedule
	GET  /api/config          Effective ceiling and month window
	GET  /healthz             Liveness

ERROR HANDLING:

	400: malformed JSON, invalid income or plan shape
	500: anything else
	Plan rule violations are returned with 200.
*/
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/elterngeld/calculator/internal/calculation"
	"github.com/elterngeld/calculator/internal/config"
	"github.com/elterngeld/calculator/internal/domain"
)

const maxBodyBytes = 64 << 10

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calculator           *calculation.BenefitCalculator
	MaxVisibleMonths     int
	InitialVisibleMonths int
	Logger               *slog.Logger
}

// NewHandler creates a handler from the server configuration.
func NewHandler(cfg *config.ServerConfig, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	bc := calculation.NewBenefitCalculator(domain.DefaultBenefitRules().WithCeiling(cfg.IncomeCeiling))
	bc.Logger = calculation.NewSlogLogger(logger)
	return &Handler{
		Calculator:           bc,
		MaxVisibleMonths:     cfg.MaxVisibleMonths,
		InitialVisibleMonths: cfg.InitialVisibleMonths,
		Logger:               logger,
	}
}

// ComputeBenefit handles POST /api/benefit
func (h *Handler) ComputeBenefit(w http.ResponseWriter, r *http.Request) {
	var req BenefitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.compute(req)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBenefitResultDTO(result))
}

// ValidatePlan handles POST /api/plan/validate
func (h *Handler) ValidatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	plan, err := h.buildPlan(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month plan", err)
		return
	}

	vr := calculation.ValidateMonthPlanWithRules(plan, h.Calculator.PlanRules, req.IsSingleParent, plan.VisibleMonths())
	writeJSON(w, http.StatusOK, ValidationResponse{
		Valid:      vr.Valid(),
		Violations: vr,
		Messages:   vr.Messages(),
	})
}

// EstimatePlan handles POST /api/plan/estimate
func (h *Handler) EstimatePlan(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	income, err := domain.NewIncomeInputFromFloat(req.MonthlyNetIncome, req.PartnerMonthlyNetIncome)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	plan, err := h.buildPlan(req.PlanRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month plan", err)
		return
	}

	var birthDate *time.Time
	if req.ChildBirthDate != "" {
		d, err := time.Parse("2006-01-02", req.ChildBirthDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid childBirthDate, expected YYYY-MM-DD", err)
			return
		}
		birthDate = &d
	}

	est, err := h.Calculator.Estimate(calculation.EstimateRequest{
		Name:           req.Name,
		Income:         income,
		Bonuses:        bonusesFrom(req.BenefitRequest),
		IsSingleParent: req.IsSingleParent,
		ChildBirthDate: birthDate,
		Plan:           plan,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

// GetConfig handles GET /api/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConfigResponse{
		IncomeCeiling:        h.Calculator.Rules.IncomeCeiling.InexactFloat64(),
		MaxVisibleMonths:     h.MaxVisibleMonths,
		InitialVisibleMonths: h.InitialVisibleMonths,
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) compute(req BenefitRequest) (domain.BenefitResult, error) {
	income, err := domain.NewIncomeInputFromFloat(req.MonthlyNetIncome, req.PartnerMonthlyNetIncome)
	if err != nil {
		return domain.BenefitResult{}, err
	}
	return h.Calculator.Compute(income, bonusesFrom(req))
}

// buildPlan creates a fresh plan for the request; plans never outlive it.
func (h *Handler) buildPlan(req PlanRequest) (*domain.MonthPlan, error) {
	visible := req.VisibleMonths
	if visible == 0 {
		visible = h.InitialVisibleMonths
	}
	if visible < 0 || visible > h.MaxVisibleMonths {
		return nil, fmt.Errorf("visibleMonths must be between 1 and %d", h.MaxVisibleMonths)
	}
	return domain.NewMonthPlanFromEntries(req.Months, h.MaxVisibleMonths, visible)
}

func bonusesFrom(req BenefitRequest) domain.Bonuses {
	return domain.Bonuses{
		SiblingBonus:            req.SiblingBonus,
		MultipleBirthBonus:      req.MultipleBirthBonus,
		AdditionalChildrenCount: req.AdditionalChildrenCount,
	}
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "invalid input", err)
		return
	}
	h.Logger.Error("calculation failed", "error", err)
	writeError(w, http.StatusInternalServerError, "calculation failed", err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
