package model

// DefaultTolerance is the bisection stopping width, in currency units, used
// when a caller does not supply one.
const DefaultTolerance = 0.01

// WithdrawalRequest holds the inputs of the maximum sustainable withdrawal solver.
type WithdrawalRequest struct {
	Balance   float64
	Rate      float64
	Years     int
	Tolerance float64
}

func (r WithdrawalRequest) Validate() error {
	if !finite(r.Balance) || r.Balance <= 0 {
		return InvalidArgument("balance must be > 0, got %v", r.Balance)
	}
	if !finite(r.Rate) || r.Rate <= -1 {
		return InvalidArgument("rate must be > -1, got %v", r.Rate)
	}
	if r.Years <= 0 {
		return InvalidArgument("years must be > 0, got %d", r.Years)
	}
	if !finite(r.Tolerance) || r.Tolerance <= 0 {
		return InvalidArgument("tolerance must be > 0, got %v", r.Tolerance)
	}
	return nil
}

// SimulationResult is the outcome of one oracle run. FinalBalance is negative
// when the portfolio ran out before the horizon.
type SimulationResult struct {
	FinalBalance float64
}

// Sustainable reports whether the simulated withdrawal lasted the whole horizon.
// A final balance of exactly zero counts.
func (s SimulationResult) Sustainable() bool {
	return s.FinalBalance >= 0
}

// WithdrawalResult is the solver output.
type WithdrawalResult struct {
	MaxAnnualWithdrawal float64
	// Ceiling is the initial upper bound of the search.
	Ceiling float64
	// Evaluations counts oracle runs.
	Evaluations int
}
