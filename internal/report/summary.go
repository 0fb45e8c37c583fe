package report

import (
	"retirement-calc/internal/model"
)

// WithdrawalSummary is the solver result with the derived figures people read.
type WithdrawalSummary struct {
	Balance   float64 `json:"balance"`
	Rate      float64 `json:"rate"`
	Years     int     `json:"years"`
	Tolerance float64 `json:"tolerance"`

	Annual         float64 `json:"max_annual_withdrawal"`
	Monthly        float64 `json:"monthly_withdrawal"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
	Evaluations    int     `json:"evaluations"`
}

func NewWithdrawalSummary(req model.WithdrawalRequest, res model.WithdrawalResult) WithdrawalSummary {
	return WithdrawalSummary{
		Balance:        req.Balance,
		Rate:           req.Rate,
		Years:          req.Years,
		Tolerance:      req.Tolerance,
		Annual:         res.MaxAnnualWithdrawal,
		Monthly:        res.MaxAnnualWithdrawal / 12,
		TotalWithdrawn: res.MaxAnnualWithdrawal * float64(req.Years),
		Evaluations:    res.Evaluations,
	}
}

type GrowthSummary struct {
	Principal float64 `json:"principal"`
	Final     float64 `json:"final_balance"`
	Gain      float64 `json:"gain"`
}

func NewGrowthSummary(principal, final float64) GrowthSummary {
	return GrowthSummary{Principal: principal, Final: final, Gain: final - principal}
}

type DurationSummary struct {
	Balance float64 `json:"balance"`
	Expense float64 `json:"expense"`
	Rate    float64 `json:"rate"`

	Years    int  `json:"years"`
	Infinite bool `json:"infinite"`
	// WithdrawalRate is expense over the starting balance, 0 for an empty fund.
	WithdrawalRate float64 `json:"withdrawal_rate"`
}

func NewDurationSummary(req model.DurationRequest, d model.Duration) DurationSummary {
	s := DurationSummary{
		Balance:  req.Balance,
		Expense:  req.Expense,
		Rate:     req.Rate,
		Years:    d.Years,
		Infinite: d.Infinite,
	}
	if req.Balance > 0 {
		s.WithdrawalRate = req.Expense / req.Balance
	}
	return s
}

// Lasts is the duration as prose.
func (s DurationSummary) Lasts() string {
	if s.Infinite {
		return "indefinitely"
	}
	if s.Years == 1 {
		return "1 year"
	}
	return model.Duration{Years: s.Years}.String() + " years"
}
