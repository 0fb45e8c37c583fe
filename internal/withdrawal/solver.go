package withdrawal

import (
	"math"

	"retirement-calc/internal/model"
)

// minDenominator guards the annuity formula against a vanishing denominator.
const minDenominator = 1e-10

// Solve finds the largest constant annual withdrawal that leaves the balance
// non-negative after req.Years of withdraw-then-grow, to within req.Tolerance.
func Solve(req model.WithdrawalRequest) (model.WithdrawalResult, error) {
	if err := req.Validate(); err != nil {
		return model.WithdrawalResult{}, err
	}

	high, err := Ceiling(req.Balance, req.Rate, req.Years)
	if err != nil {
		return model.WithdrawalResult{}, err
	}

	res := model.WithdrawalResult{Ceiling: high}
	low := 0.0

	for high-low > req.Tolerance {
		mid := (low + high) / 2
		// Interval can no longer shrink at float64 resolution.
		if mid == low || mid == high {
			break
		}

		sim := model.SimulationResult{FinalBalance: simulate(req.Balance, req.Rate, mid, req.Years)}
		res.Evaluations++

		if sim.Sustainable() {
			low = mid
		} else {
			high = mid
		}
	}

	res.MaxAnnualWithdrawal = (low + high) / 2
	return res, nil
}

// MaxWithdrawal is Solve for callers that only need the amount.
func MaxWithdrawal(balance, rate float64, years int, tolerance float64) (float64, error) {
	res, err := Solve(model.WithdrawalRequest{
		Balance:   balance,
		Rate:      rate,
		Years:     years,
		Tolerance: tolerance,
	})
	if err != nil {
		return 0, err
	}
	return res.MaxAnnualWithdrawal, nil
}

// Ceiling returns the upper bound of the bisection.
//
// The ordinary annuity payment balance*rate/(1-(1+rate)^-years) exhausts the
// balance when growth is applied before each withdrawal. The oracle withdraws
// first, so its break-even is the annuity-due payment, PMT/(1+rate). That is
// below PMT for positive rates and above it for negative ones; the ceiling is
// the larger of the two so it never under-estimates.
//
// The denominator is evaluated through Expm1 and Log1p so small rates over
// long horizons do not cancel to a bound below the break-even.
func Ceiling(balance, rate float64, years int) (float64, error) {
	n := float64(years)

	var high float64
	denom := -math.Expm1(-n * math.Log1p(rate))
	if rate == 0 || math.Abs(denom) < minDenominator {
		// Straight-line depletion. For a rate too small to resolve the annuity
		// the (1+|rate|)^years factor keeps the bound above the break-even.
		high = balance / n * math.Pow(1+math.Abs(rate), n)
	} else {
		high = balance * rate / denom
		if due := high / (1 + rate); due > high {
			high = due
		}
	}
	// Non-negative growth never makes straight-line depletion unaffordable.
	if sl := balance / n; rate >= 0 && sl > high {
		high = sl
	}

	if math.IsNaN(high) || math.IsInf(high, 0) || high <= 0 {
		return 0, model.NewCalculationError("ceiling",
			"no usable initial withdrawal estimate (got %v) for balance %v, rate %v, %d years", high, balance, rate, years)
	}
	return high, nil
}
