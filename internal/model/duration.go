package model

import "strconv"

// DefaultYearCap bounds the depletion loop so a fund that never runs out
// still terminates.
const DefaultYearCap = 200

// DurationRequest holds the inputs of the retirement duration simulation.
// A YearCap <= 0 means DefaultYearCap; it may not exceed MaxLedgerYears.
type DurationRequest struct {
	Balance float64
	Expense float64
	Rate    float64
	YearCap int
}

func (r DurationRequest) Validate() error {
	if !finite(r.Balance) || r.Balance < 0 {
		return InvalidArgument("balance must be >= 0, got %v", r.Balance)
	}
	if !finite(r.Expense) || r.Expense < 0 {
		return InvalidArgument("expense must be >= 0, got %v", r.Expense)
	}
	if !finite(r.Rate) || r.Rate < 0 {
		return InvalidArgument("rate must be >= 0, got %v", r.Rate)
	}
	if r.YearCap > MaxLedgerYears {
		return InvalidArgument("year cap must be <= %d, got %d", MaxLedgerYears, r.YearCap)
	}
	return nil
}

// Cap returns the effective year cap.
func (r DurationRequest) Cap() int {
	if r.YearCap <= 0 {
		return DefaultYearCap
	}
	return r.YearCap
}

// Duration is how long a fund lasts. Infinite means it outlived the year cap.
type Duration struct {
	Years    int
	Infinite bool
}

// InfiniteDuration is the sentinel for a fund that never depletes within the cap.
var InfiniteDuration = Duration{Infinite: true}

func (d Duration) String() string {
	if d.Infinite {
		return "infinite"
	}
	return strconv.Itoa(d.Years)
}
