package cli

import (
	"retirement-calc/internal/duration"
	"retirement-calc/internal/model"
	"retirement-calc/internal/report"

	"github.com/spf13/cobra"
)

type durationCmd struct {
	cli *CLI

	balance float64
	expense float64
	rate    float64
	yearCap int
	trace   bool
}

func (cli *CLI) newDurationCmd() *cobra.Command {
	dc := &durationCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Years until a fund paying a fixed annual expense runs out",
		RunE:  dc.run,
	}

	cmd.Flags().Float64Var(&dc.balance, "balance", 1_000_000, "Initial balance")
	cmd.Flags().Float64Var(&dc.expense, "expense", 80_000, "Annual expense")
	cmd.Flags().Float64Var(&dc.rate, "rate", 0.05, "Annual growth rate as a fraction")
	cmd.Flags().IntVar(&dc.yearCap, "year-cap", model.DefaultYearCap, "Years after which the fund counts as never running out")
	cmd.Flags().BoolVar(&dc.trace, "trace", false, "Print the year-by-year trace")

	return cmd
}

func (dc *durationCmd) run(cmd *cobra.Command, args []string) error {
	req := model.DurationRequest{
		Balance: dc.balance,
		Expense: dc.expense,
		Rate:    dc.rate,
		YearCap: dc.yearCap,
	}
	l, d, err := duration.Trace(req)
	if err != nil {
		return err
	}
	if err := dc.cli.reporter.Duration(report.NewDurationSummary(req, d)); err != nil {
		return err
	}
	if dc.trace {
		return dc.cli.reporter.Ledger(l)
	}
	return nil
}
