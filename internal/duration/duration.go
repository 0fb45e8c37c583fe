package duration

import (
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
)

// YearsUntilDepleted grows the balance, then pays the expense, once per year
// until the balance reaches zero. It returns model.InfiniteDuration when the
// fund outlives the year cap.
func YearsUntilDepleted(req model.DurationRequest) (model.Duration, error) {
	_, d, err := run(req, false)
	return d, err
}

// Trace is YearsUntilDepleted with the per-year rows it walked through.
func Trace(req model.DurationRequest) (ledger.Ledger, model.Duration, error) {
	return run(req, true)
}

func run(req model.DurationRequest, keepRows bool) (ledger.Ledger, model.Duration, error) {
	if err := req.Validate(); err != nil {
		return ledger.Ledger{}, model.Duration{}, err
	}

	var rows []ledger.Row
	balance := req.Balance
	limit := req.Cap()
	years := 0

	// An empty fund is already depleted.
	for balance > 0 {
		grown := balance * (1 + req.Rate)
		next := grown - req.Expense
		years++

		if keepRows {
			rows = append(rows, ledger.Row{
				Year:         years,
				StartBalance: balance,
				Rate:         req.Rate,
				Growth:       grown - balance,
				Withdrawal:   req.Expense,
				EndBalance:   next,
				Depleted:     next <= 0,
			})
		}
		balance = next

		if balance <= 0 {
			break
		}
		if years > limit {
			return ledger.Ledger{Rows: rows, Final: balance}, model.InfiniteDuration, nil
		}
	}

	return ledger.Ledger{Rows: rows, Final: balance}, model.Duration{Years: years}, nil
}
