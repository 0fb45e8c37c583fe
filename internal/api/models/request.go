package models

// Required numeric fields are pointers so that an explicit 0 passes gin's
// `binding:"required"` check while a missing field does not. Horizons are
// capped at model.MaxLedgerYears (1000).

// WithdrawalRequest is the body of POST /api/v1/withdrawal and /withdrawal/report.
type WithdrawalRequest struct {
	Balance         *float64 `json:"balance" binding:"required"`
	Rate            *float64 `json:"rate" binding:"required"`
	Years           *int     `json:"years" binding:"required,max=1000"`
	Tolerance       float64  `json:"tolerance,omitempty"` // default: 0.01
	IncludeSchedule bool     `json:"include_schedule,omitempty"`
}

// SensitivityRequest is the body of POST /api/v1/withdrawal/sensitivity.
type SensitivityRequest struct {
	Balance   *float64  `json:"balance" binding:"required"`
	Rates     []float64 `json:"rates" binding:"required"`
	Years     []int     `json:"years" binding:"required,dive,max=1000"`
	Tolerance float64   `json:"tolerance,omitempty"`
}

// FixedGrowthRequest is the body of POST /api/v1/growth/fixed.
type FixedGrowthRequest struct {
	Principal        *float64 `json:"principal" binding:"required"`
	Rate             *float64 `json:"rate" binding:"required"`
	Years            *int     `json:"years" binding:"required"`
	IncludeBreakdown bool     `json:"include_breakdown,omitempty"`
}

// VariableGrowthRequest is the body of POST /api/v1/growth/variable. An empty
// rates list is allowed and returns the principal.
type VariableGrowthRequest struct {
	Principal        *float64  `json:"principal" binding:"required"`
	Rates            []float64 `json:"rates" binding:"required"`
	IncludeBreakdown bool      `json:"include_breakdown,omitempty"`
}

// DurationRequest is the body of POST /api/v1/duration.
type DurationRequest struct {
	Balance      *float64 `json:"balance" binding:"required"`
	Expense      *float64 `json:"expense" binding:"required"`
	Rate         *float64 `json:"rate" binding:"required"`
	YearCap      int      `json:"year_cap,omitempty" binding:"max=1000"` // default: 200
	IncludeTrace bool     `json:"include_trace,omitempty"`
}

// RunScenarioRequest optionally overrides fields of a preset scenario.
type RunScenarioRequest struct {
	Balance   float64   `json:"balance,omitempty"`
	Principal float64   `json:"principal,omitempty"`
	Rate      float64   `json:"rate,omitempty"`
	Rates     []float64 `json:"rates,omitempty"`
	Years     int       `json:"years,omitempty"`
	Expense   float64   `json:"expense,omitempty"`
	Tolerance float64   `json:"tolerance,omitempty"`
	YearCap   int       `json:"year_cap,omitempty"`
}
