package ledger

// Row is one year of a projection.
//
// For withdraw-then-grow projections Growth is applied after Withdrawal; for
// grow-then-withdraw projections it is applied before. EndBalance is always the
// balance carried into the next year.
type Row struct {
	Year int

	StartBalance float64
	Rate         float64
	Growth       float64
	Withdrawal   float64
	EndBalance   float64

	// Depleted marks the year the fund ran out.
	Depleted bool
}

type Ledger struct {
	Rows  []Row
	Final float64
}

// TotalGrowth sums growth across all rows.
func (l Ledger) TotalGrowth() float64 {
	sum := 0.0
	for _, r := range l.Rows {
		sum += r.Growth
	}
	return sum
}

// TotalWithdrawn sums withdrawals across all rows.
func (l Ledger) TotalWithdrawn() float64 {
	sum := 0.0
	for _, r := range l.Rows {
		sum += r.Withdrawal
	}
	return sum
}

// DepletedAt returns the year the balance was exhausted, or 0 if it never was.
func (l Ledger) DepletedAt() int {
	for _, r := range l.Rows {
		if r.Depleted {
			return r.Year
		}
	}
	return 0
}
