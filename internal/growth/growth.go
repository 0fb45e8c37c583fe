package growth

import (
	"math"

	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
)

// Fixed compounds principal at rate for years periods: principal*(1+rate)^years.
func Fixed(principal, rate float64, years int) (float64, error) {
	req := model.FixedGrowthRequest{Principal: principal, Rate: rate, Years: years}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	out := principal * math.Pow(1+rate, float64(years))
	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, model.NewCalculationError("fixed growth",
			"%v at %v over %d years is not a finite amount", principal, rate, years)
	}
	return out, nil
}

// Variable applies each rate in order. An empty sequence returns principal.
func Variable(principal float64, rates []float64) (float64, error) {
	req := model.GrowthRequest{Principal: principal, Rates: rates}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	balance := principal
	for i, r := range rates {
		balance *= 1 + r
		if math.IsInf(balance, 0) {
			return 0, model.NewCalculationError("variable growth",
				"balance overflowed in period %d", i+1)
		}
	}
	return balance, nil
}

// Breakdown returns one ledger row per rate, in order.
func Breakdown(principal float64, rates []float64) (ledger.Ledger, error) {
	if err := model.CheckLedgerYears(len(rates)); err != nil {
		return ledger.Ledger{}, err
	}
	if _, err := Variable(principal, rates); err != nil {
		return ledger.Ledger{}, err
	}

	rows := make([]ledger.Row, 0, len(rates))
	cur := principal
	for i, r := range rates {
		next := cur * (1 + r)
		rows = append(rows, ledger.Row{
			Year:         i + 1,
			StartBalance: cur,
			Rate:         r,
			Growth:       next - cur,
			EndBalance:   next,
		})
		cur = next
	}
	return ledger.Ledger{Rows: rows, Final: cur}, nil
}

// FixedBreakdown is Breakdown for a single rate repeated years times.
func FixedBreakdown(principal, rate float64, years int) (ledger.Ledger, error) {
	req := model.FixedGrowthRequest{Principal: principal, Rate: rate, Years: years}
	if err := req.Validate(); err != nil {
		return ledger.Ledger{}, err
	}
	if err := model.CheckLedgerYears(years); err != nil {
		return ledger.Ledger{}, err
	}

	rows := make([]ledger.Row, 0, years)
	cur := principal
	for y := 1; y <= years; y++ {
		next := cur * (1 + rate)
		if math.IsInf(next, 0) {
			return ledger.Ledger{}, model.NewCalculationError("fixed growth",
				"balance overflowed in period %d", y)
		}
		rows = append(rows, ledger.Row{
			Year:         y,
			StartBalance: cur,
			Rate:         rate,
			Growth:       next - cur,
			EndBalance:   next,
		})
		cur = next
	}
	return ledger.Ledger{Rows: rows, Final: cur}, nil
}
