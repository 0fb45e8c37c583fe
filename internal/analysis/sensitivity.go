package analysis

import (
	"context"
	"fmt"
	"runtime"

	"retirement-calc/internal/model"
	"retirement-calc/internal/withdrawal"

	"golang.org/x/sync/errgroup"
)

// Cell is the solved withdrawal for one (rate, horizon) pair.
type Cell struct {
	Rate  float64
	Years int

	MaxAnnualWithdrawal float64
	// SustainableRate is MaxAnnualWithdrawal as a fraction of the starting balance.
	SustainableRate float64
}

// Sensitivity solves the maximum withdrawal for every combination of rates and
// horizons. Cells are returned with rates varying fastest. Cells are solved in
// parallel; an invalid combination aborts the sweep.
func Sensitivity(balance float64, rates []float64, horizons []int, tolerance float64) ([]Cell, error) {
	if len(rates) == 0 {
		return nil, model.InvalidArgument("at least one rate is required")
	}
	if len(horizons) == 0 {
		return nil, model.InvalidArgument("at least one horizon is required")
	}

	cells := make([]Cell, len(rates)*len(horizons))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for h, years := range horizons {
		for r, rate := range rates {
			i := h*len(rates) + r
			years, rate := years, rate
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				res, err := withdrawal.Solve(model.WithdrawalRequest{
					Balance:   balance,
					Rate:      rate,
					Years:     years,
					Tolerance: tolerance,
				})
				if err != nil {
					return fmt.Errorf("rate %v over %d years: %w", rate, years, err)
				}
				cells[i] = Cell{
					Rate:                rate,
					Years:               years,
					MaxAnnualWithdrawal: res.MaxAnnualWithdrawal,
					SustainableRate:     res.MaxAnnualWithdrawal / balance,
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}
