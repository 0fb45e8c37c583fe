package analysis

import (
	"fmt"

	"retirement-calc/internal/config"
	"retirement-calc/internal/duration"
	"retirement-calc/internal/growth"
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
	"retirement-calc/internal/withdrawal"
)

// Outcome is the result of running one configured scenario. Exactly one of
// Withdrawal, Growth or Duration is set, according to Kind.
type Outcome struct {
	Name string
	Kind config.Kind

	Withdrawal *model.WithdrawalResult
	Growth     *GrowthOutcome
	Duration   *model.Duration

	Ledger ledger.Ledger
}

type GrowthOutcome struct {
	Principal float64
	Final     float64
}

// Gain is the growth over the principal.
func (g GrowthOutcome) Gain() float64 {
	return g.Final - g.Principal
}

// RunScenario dispatches a scenario to its calculator. The outcome's ledger
// shows the year-by-year path behind the headline number.
func RunScenario(s config.ScenarioConfig) (*Outcome, error) {
	out := &Outcome{Name: s.Name, Kind: s.Kind}

	switch s.Kind {
	case config.KindWithdrawal:
		req := s.WithdrawalRequest()
		res, err := withdrawal.Solve(req)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		l, err := withdrawal.Schedule(req.Balance, req.Rate, res.MaxAnnualWithdrawal, req.Years)
		if err != nil {
			return nil, fmt.Errorf("scenario %q schedule: %w", s.Name, err)
		}
		out.Withdrawal = &res
		out.Ledger = l

	case config.KindFixed:
		l, err := growth.FixedBreakdown(s.Principal, s.Rate, s.Years)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		final, err := growth.Fixed(s.Principal, s.Rate, s.Years)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		out.Growth = &GrowthOutcome{Principal: s.Principal, Final: final}
		out.Ledger = l

	case config.KindVariable:
		l, err := growth.Breakdown(s.Principal, s.Rates)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		out.Growth = &GrowthOutcome{Principal: s.Principal, Final: l.Final}
		out.Ledger = l

	case config.KindDuration:
		l, d, err := duration.Trace(s.DurationRequest())
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		out.Duration = &d
		out.Ledger = l

	default:
		return nil, fmt.Errorf("scenario %q: %w", s.Name, model.InvalidArgument("unsupported kind %q", s.Kind))
	}

	return out, nil
}

// RunAll runs every scenario in order and stops at the first failure.
func RunAll(scenarios []config.ScenarioConfig) ([]*Outcome, error) {
	out := make([]*Outcome, 0, len(scenarios))
	for _, s := range scenarios {
		o, err := RunScenario(s)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
