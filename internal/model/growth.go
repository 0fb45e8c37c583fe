package model

// MaxLedgerYears bounds every per-year ledger a calculator lays out.
const MaxLedgerYears = 1000

// CheckLedgerYears rejects a horizon too long to lay out year by year.
func CheckLedgerYears(years int) error {
	if years > MaxLedgerYears {
		return InvalidArgument("years must be <= %d for a yearly breakdown, got %d", MaxLedgerYears, years)
	}
	return nil
}

// GrowthRequest describes a principal compounded through a sequence of
// per-period rates. Fixed growth is the special case of one rate repeated.
type GrowthRequest struct {
	Principal float64
	Rates     []float64
}

func (r GrowthRequest) Validate() error {
	if !finite(r.Principal) || r.Principal <= 0 {
		return InvalidArgument("principal must be > 0, got %v", r.Principal)
	}
	for i, rate := range r.Rates {
		if !finite(rate) || rate <= -1 {
			return InvalidArgument("rate for period %d must be > -1, got %v", i+1, rate)
		}
	}
	return nil
}

// FixedGrowthRequest is a principal compounded at one rate for Years periods.
type FixedGrowthRequest struct {
	Principal float64
	Rate      float64
	Years     int
}

func (r FixedGrowthRequest) Validate() error {
	if !finite(r.Principal) || r.Principal <= 0 {
		return InvalidArgument("principal must be > 0, got %v", r.Principal)
	}
	if !finite(r.Rate) || r.Rate <= -1 {
		return InvalidArgument("rate must be > -1, got %v", r.Rate)
	}
	if r.Years < 0 {
		return InvalidArgument("years must be >= 0, got %d", r.Years)
	}
	return nil
}
