package models

import (
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/report"
)

const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeCalculation     = "CALCULATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

// WithdrawalResponse is the solver result with its presentation figures.
type WithdrawalResponse struct {
	report.WithdrawalSummary
	Ceiling  float64     `json:"ceiling"`
	Display  Display     `json:"display"`
	Schedule []LedgerRow `json:"schedule,omitempty"`
}

type GrowthResponse struct {
	report.GrowthSummary
	Display   Display     `json:"display"`
	Breakdown []LedgerRow `json:"breakdown,omitempty"`
}

type DurationResponse struct {
	report.DurationSummary
	Display Display     `json:"display"`
	Trace   []LedgerRow `json:"trace,omitempty"`
}

// Display holds preformatted strings for the figures a client shows as-is.
type Display map[string]string

// SensitivityResponse lists every solved cell, best sustainable rate first.
type SensitivityResponse struct {
	Cells []SensitivityCell `json:"cells"`
}

type SensitivityCell struct {
	Rank                int     `json:"rank"`
	Rate                float64 `json:"rate"`
	Years               int     `json:"years"`
	MaxAnnualWithdrawal float64 `json:"max_annual_withdrawal"`
	SustainableRate     float64 `json:"sustainable_rate"`
}

// LedgerRow is one year of a projection. Money fields are rounded to cents.
type LedgerRow struct {
	Year         int     `json:"year"`
	StartBalance float64 `json:"start_balance"`
	Rate         float64 `json:"rate"`
	Growth       float64 `json:"growth"`
	Withdrawal   float64 `json:"withdrawal"`
	EndBalance   float64 `json:"end_balance"`
	Depleted     bool    `json:"depleted,omitempty"`
}

// LedgerRows converts ledger rows for the wire.
func LedgerRows(rows []ledger.Row) []LedgerRow {
	out := make([]LedgerRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, LedgerRow{
			Year:         r.Year,
			StartBalance: ledger.Cents(r.StartBalance),
			Rate:         r.Rate,
			Growth:       ledger.Cents(r.Growth),
			Withdrawal:   ledger.Cents(r.Withdrawal),
			EndBalance:   ledger.Cents(r.EndBalance),
			Depleted:     r.Depleted,
		})
	}
	return out
}

// CalculatorInfo describes one calculator endpoint.
type CalculatorInfo struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a calculator parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "[]float", "[]int", "bool"
	Description string      `json:"description"`
	Required    bool        `json:"required,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// ScenarioInfo represents a preset scenario file.
type ScenarioInfo struct {
	ID        string   `json:"id"`
	File      string   `json:"file"`
	Scenarios []string `json:"scenarios"`
}

// ScenarioOutcome is the result of running one preset scenario.
type ScenarioOutcome struct {
	Name       string              `json:"name"`
	Kind       string              `json:"kind"`
	Withdrawal *WithdrawalResponse `json:"withdrawal,omitempty"`
	Growth     *GrowthResponse     `json:"growth,omitempty"`
	Duration   *DurationResponse   `json:"duration,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
