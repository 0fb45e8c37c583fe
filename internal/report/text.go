package report

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"retirement-calc/internal/analysis"
	"retirement-calc/internal/config"
	"retirement-calc/internal/ledger"
)

// Reporter writes calculator results to the console as formatted text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a console reporter. A nil writer means stdout.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

var funcs = template.FuncMap{
	"money":   Money,
	"percent": Percent,
	"signed":  SignedPercent,
}

const withdrawalTmpl = `
=== Maximum Withdrawal ===
Balance:          {{money .Balance}}
Growth rate:      {{percent .Rate}}
Years:            {{.Years}}

Annual withdrawal: {{money .Annual}}
Monthly:           {{money .Monthly}}
Total withdrawn:   {{money .TotalWithdrawn}}
`

const growthTmpl = `
=== {{.Title}} ===
Principal:     {{money .Principal}}
Final balance: {{money .Final}}
Total gain:    {{money .Gain}}
`

const durationTmpl = `
=== Retirement Duration ===
Initial balance:   {{money .Balance}}
Annual withdrawal: {{money .Expense}}
Growth rate:       {{percent .Rate}}
Withdrawal rate:   {{percent .WithdrawalRate}}

The retirement fund lasts {{.Lasts}}.
`

const ledgerTmpl = `
Yearly:
{{range .Rows}}  {{.Year}}: {{money .EndBalance}} ({{signed .Rate}}){{if .Withdrawal}} after {{money .Withdrawal}} withdrawn{{end}}{{if .Depleted}} DEPLETED{{end}}
{{end}}`

const sensitivityTmpl = `
=== Withdrawal Sensitivity ===
{{range .}}#{{.Rank}}  {{percent .Rate}} over {{.Years}} years: {{money .MaxAnnualWithdrawal}}/yr ({{percent .SustainableRate}} of balance)
{{end}}`

func (r *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(funcs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, data)
}

func (r *Reporter) Withdrawal(s WithdrawalSummary) error {
	return r.render("withdrawal", withdrawalTmpl, s)
}

// Growth prints a growth summary under title.
func (r *Reporter) Growth(title string, s GrowthSummary) error {
	return r.render("growth", growthTmpl, struct {
		Title string
		GrowthSummary
	}{title, s})
}

func (r *Reporter) Duration(s DurationSummary) error {
	return r.render("duration", durationTmpl, s)
}

func (r *Reporter) Ledger(l ledger.Ledger) error {
	return r.render("ledger", ledgerTmpl, l)
}

func (r *Reporter) Sensitivity(ranked []analysis.RankedCell) error {
	return r.render("sensitivity", sensitivityTmpl, ranked)
}

// Outcome prints one scenario result in the form its calculator uses.
func (r *Reporter) Outcome(o *analysis.Outcome, s config.ScenarioConfig) error {
	if _, err := fmt.Fprintf(r.writer, "\n# %s (%s)\n", o.Name, o.Kind); err != nil {
		return err
	}
	switch {
	case o.Withdrawal != nil:
		return r.Withdrawal(NewWithdrawalSummary(s.WithdrawalRequest(), *o.Withdrawal))
	case o.Growth != nil:
		title := "Fixed Growth"
		if o.Kind == config.KindVariable {
			title = "Variable Growth"
		}
		return r.Growth(title, NewGrowthSummary(o.Growth.Principal, o.Growth.Final))
	case o.Duration != nil:
		return r.Duration(NewDurationSummary(s.DurationRequest(), *o.Duration))
	}
	return nil
}
