package report

import (
	"bytes"
	"testing"
	"time"

	"retirement-calc/internal/analysis"
	"retirement-calc/internal/config"
	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		0:            "$0.00",
		12:           "$12.00",
		999.999:      "$1,000.00",
		1234.5:       "$1,234.50",
		1_000_000:    "$1,000,000.00",
		-80:          "-$80.00",
		-392.3:       "-$392.30",
		123456789.01: "$123,456,789.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, Money(in), "Money(%v)", in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5.00%", Percent(0.05))
	assert.Equal(t, "-3.50%", Percent(-0.035))
	assert.Equal(t, "+10.0%", SignedPercent(0.1))
	assert.Equal(t, "-5.0%", SignedPercent(-0.05))
}

func TestSummaries(t *testing.T) {
	ws := NewWithdrawalSummary(
		model.WithdrawalRequest{Balance: 120000, Rate: 0, Years: 10, Tolerance: 0.01},
		model.WithdrawalResult{MaxAnnualWithdrawal: 12000, Evaluations: 21},
	)
	assert.Equal(t, 1000.0, ws.Monthly)
	assert.Equal(t, 120000.0, ws.TotalWithdrawn)

	gs := NewGrowthSummary(1000, 1045)
	assert.Equal(t, 45.0, gs.Gain)

	ds := NewDurationSummary(model.DurationRequest{Balance: 1_000_000, Expense: 80_000, Rate: 0.05}, model.Duration{Years: 21})
	assert.InDelta(t, 0.08, ds.WithdrawalRate, 1e-12)
	assert.Equal(t, "21 years", ds.Lasts())

	empty := NewDurationSummary(model.DurationRequest{Expense: 10}, model.Duration{})
	assert.Equal(t, 0.0, empty.WithdrawalRate)
	assert.Equal(t, "indefinitely", NewDurationSummary(model.DurationRequest{Balance: 1}, model.InfiniteDuration).Lasts())
}

func TestReporter_Withdrawal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Withdrawal(WithdrawalSummary{Balance: 120000, Years: 10, Annual: 12000, Monthly: 1000, TotalWithdrawn: 120000})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Annual withdrawal: $12,000.00")
	assert.Contains(t, out, "Monthly:           $1,000.00")
	assert.Contains(t, out, "Total withdrawn:   $120,000.00")
}

func TestReporter_DurationAndLedger(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	require.NoError(t, r.Duration(DurationSummary{Balance: 1000, Expense: 400, Rate: 0.1, Years: 4}))
	require.NoError(t, r.Ledger(ledger.Ledger{Rows: []ledger.Row{
		{Year: 1, StartBalance: 1000, Rate: 0.1, Growth: 100, Withdrawal: 400, EndBalance: 700},
		{Year: 2, StartBalance: 700, Rate: 0.1, Growth: 70, Withdrawal: 800, EndBalance: -30, Depleted: true},
	}}))

	out := buf.String()
	assert.Contains(t, out, "The retirement fund lasts 4 years.")
	assert.Contains(t, out, "1: $700.00 (+10.0%) after $400.00 withdrawn")
	assert.Contains(t, out, "2: -$30.00 (+10.0%) after $800.00 withdrawn DEPLETED")
}

func TestReporter_SensitivityAndOutcome(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	ranked := analysis.RankBySustainableRate([]analysis.Cell{
		{Rate: 0, Years: 10, MaxAnnualWithdrawal: 10000, SustainableRate: 0.1},
		{Rate: 0.05, Years: 10, MaxAnnualWithdrawal: 12330, SustainableRate: 0.1233},
	})
	require.NoError(t, r.Sensitivity(ranked))
	assert.Contains(t, buf.String(), "#1  5.00% over 10 years: $12,330.00/yr (12.33% of balance)")

	buf.Reset()
	s := config.ScenarioConfig{Name: "grow", Kind: config.KindVariable, Principal: 1000, Rates: []float64{0.1, -0.05}}
	o, err := analysis.RunScenario(s)
	require.NoError(t, err)
	require.NoError(t, r.Outcome(o, s))
	assert.Contains(t, buf.String(), "# grow (variable)")
	assert.Contains(t, buf.String(), "=== Variable Growth ===")
	assert.Contains(t, buf.String(), "Total gain:    $45.00")
}

func TestRenderPDF(t *testing.T) {
	rows := make([]ledger.Row, 0, 60)
	for y := 1; y <= 60; y++ {
		rows = append(rows, ledger.Row{Year: y, StartBalance: 1000, Rate: 0.05, Growth: 10, Withdrawal: 800, EndBalance: 210})
	}
	rows[59].Depleted = true

	plan := WithdrawalPlan(WithdrawalSummary{Balance: 1_000_000, Rate: 0.05, Years: 60, Tolerance: 0.01, Annual: 52000}, ledger.Ledger{Rows: rows})
	plan.Generated = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	out, err := RenderPDF(plan)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderPDF_NoRows(t *testing.T) {
	out, err := RenderPDF(Plan{Title: "Empty", Headline: []KV{{"Final balance:", Money(0)}}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
