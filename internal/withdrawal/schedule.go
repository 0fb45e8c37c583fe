package withdrawal

import (
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
)

// Schedule lays out the year-by-year projection the solver's oracle evaluates
// for a given withdrawal. It stops at the first depleted year.
func Schedule(balance, rate, withdrawal float64, years int) (ledger.Ledger, error) {
	switch {
	case balance < 0:
		return ledger.Ledger{}, model.InvalidArgument("balance must be >= 0, got %v", balance)
	case withdrawal < 0:
		return ledger.Ledger{}, model.InvalidArgument("withdrawal must be >= 0, got %v", withdrawal)
	case years <= 0:
		return ledger.Ledger{}, model.InvalidArgument("years must be > 0, got %d", years)
	case rate <= -1:
		return ledger.Ledger{}, model.InvalidArgument("rate must be > -1, got %v", rate)
	}
	if err := model.CheckLedgerYears(years); err != nil {
		return ledger.Ledger{}, err
	}

	rows := make([]ledger.Row, 0, years)
	cur := balance
	for y := 1; y <= years; y++ {
		next, growth, depleted := step(cur, rate, withdrawal)
		rows = append(rows, ledger.Row{
			Year:         y,
			StartBalance: cur,
			Rate:         rate,
			Growth:       growth,
			Withdrawal:   withdrawal,
			EndBalance:   next,
			Depleted:     depleted,
		})
		cur = next
		if depleted {
			break
		}
	}

	return ledger.Ledger{Rows: rows, Final: cur}, nil
}
