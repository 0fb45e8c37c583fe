package cli

import (
	"retirement-calc/internal/growth"
	"retirement-calc/internal/report"

	"github.com/spf13/cobra"
)

type fixedCmd struct {
	cli *CLI

	principal float64
	rate      float64
	years     int
	breakdown bool
}

func (cli *CLI) newFixedCmd() *cobra.Command {
	fc := &fixedCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "fixed",
		Short: "Compound a principal at a fixed annual rate",
		RunE:  fc.run,
	}

	cmd.Flags().Float64Var(&fc.principal, "principal", 0, "Initial investment")
	cmd.Flags().Float64Var(&fc.rate, "rate", 0, "Annual rate as a fraction")
	cmd.Flags().IntVar(&fc.years, "years", 0, "Number of years")
	cmd.Flags().BoolVar(&fc.breakdown, "breakdown", false, "Print the balance after each year")

	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (fc *fixedCmd) run(cmd *cobra.Command, args []string) error {
	final, err := growth.Fixed(fc.principal, fc.rate, fc.years)
	if err != nil {
		return err
	}
	if err := fc.cli.reporter.Growth("Fixed Growth", report.NewGrowthSummary(fc.principal, final)); err != nil {
		return err
	}
	if !fc.breakdown {
		return nil
	}
	l, err := growth.FixedBreakdown(fc.principal, fc.rate, fc.years)
	if err != nil {
		return err
	}
	return fc.cli.reporter.Ledger(l)
}

type variableCmd struct {
	cli *CLI

	principal float64
	rates     []float64
	breakdown bool
}

func (cli *CLI) newVariableCmd() *cobra.Command {
	vc := &variableCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "variable",
		Short: "Compound a principal through a sequence of annual rates",
		RunE:  vc.run,
	}

	cmd.Flags().Float64Var(&vc.principal, "principal", 0, "Initial investment")
	cmd.Flags().Float64SliceVar(&vc.rates, "rates", nil, "Comma-separated annual rates, applied in order")
	cmd.Flags().BoolVar(&vc.breakdown, "breakdown", true, "Print the balance after each year")

	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func (vc *variableCmd) run(cmd *cobra.Command, args []string) error {
	l, err := growth.Breakdown(vc.principal, vc.rates)
	if err != nil {
		return err
	}
	if err := vc.cli.reporter.Growth("Variable Growth", report.NewGrowthSummary(vc.principal, l.Final)); err != nil {
		return err
	}
	if vc.breakdown && len(l.Rows) > 0 {
		return vc.cli.reporter.Ledger(l)
	}
	return nil
}
