package withdrawal

// step applies one year: withdraw, stop if depleted, otherwise grow.
// depleted is true when the withdrawal drove the balance below zero; in that
// case next is the negative balance and no growth was applied.
func step(balance, rate, withdrawal float64) (next, growth float64, depleted bool) {
	after := balance - withdrawal
	if after < 0 {
		return after, 0, true
	}
	next = after * (1 + rate)
	return next, next - after, false
}

// simulate runs the withdraw-then-grow projection for years periods and
// returns the final balance. It exits early with the negative balance on the
// first year the withdrawal cannot be covered.
func simulate(balance, rate, withdrawal float64, years int) float64 {
	for y := 0; y < years; y++ {
		var depleted bool
		balance, _, depleted = step(balance, rate, withdrawal)
		if depleted {
			return balance
		}
	}
	return balance
}
