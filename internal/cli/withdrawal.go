package cli

import (
	"fmt"
	"os"

	"retirement-calc/internal/ledger"
	"retirement-calc/internal/model"
	"retirement-calc/internal/report"
	"retirement-calc/internal/withdrawal"

	"github.com/spf13/cobra"
)

type withdrawalCmd struct {
	cli *CLI

	balance   float64
	rate      float64
	years     int
	tolerance float64
	schedule  bool
	csvPath   string
	pdfPath   string
}

func (cli *CLI) newWithdrawalCmd() *cobra.Command {
	wc := &withdrawalCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "withdrawal",
		Short: "Maximum constant annual withdrawal that lasts the whole horizon",
		RunE:  wc.run,
	}

	cmd.Flags().Float64Var(&wc.balance, "balance", 0, "Retirement balance")
	cmd.Flags().Float64Var(&wc.rate, "rate", 0, "Annual growth rate as a fraction (0.05 = 5%)")
	cmd.Flags().IntVar(&wc.years, "years", 0, "Years the withdrawals must last")
	cmd.Flags().Float64Var(&wc.tolerance, "tolerance", model.DefaultTolerance, "Search precision in currency units")
	cmd.Flags().BoolVar(&wc.schedule, "schedule", false, "Print the year-by-year schedule")
	cmd.Flags().StringVar(&wc.csvPath, "csv", "", "Write the schedule as CSV to this path")
	cmd.Flags().StringVar(&wc.pdfPath, "pdf", "", "Write a PDF report to this path")

	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (wc *withdrawalCmd) run(cmd *cobra.Command, args []string) error {
	req := model.WithdrawalRequest{
		Balance:   wc.balance,
		Rate:      wc.rate,
		Years:     wc.years,
		Tolerance: wc.tolerance,
	}
	res, err := withdrawal.Solve(req)
	if err != nil {
		return err
	}
	wc.cli.logger.Debug().
		Float64("ceiling", res.Ceiling).
		Int("evaluations", res.Evaluations).
		Msg("withdrawal solved")

	summary := report.NewWithdrawalSummary(req, res)
	if err := wc.cli.reporter.Withdrawal(summary); err != nil {
		return err
	}

	if !wc.schedule && wc.csvPath == "" && wc.pdfPath == "" {
		return nil
	}

	l, err := withdrawal.Schedule(req.Balance, req.Rate, res.MaxAnnualWithdrawal, req.Years)
	if err != nil {
		return err
	}

	if wc.schedule {
		if err := wc.cli.reporter.Ledger(l); err != nil {
			return err
		}
	}
	if wc.csvPath != "" {
		if err := ledger.WriteCSV(wc.csvPath, l.Rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		wc.cli.logger.Info().Str("path", wc.csvPath).Int("rows", len(l.Rows)).Msg("wrote schedule csv")
	}
	if wc.pdfPath != "" {
		pdf, err := report.RenderPDF(report.WithdrawalPlan(summary, l))
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err := os.WriteFile(wc.pdfPath, pdf, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		wc.cli.logger.Info().Str("path", wc.pdfPath).Msg("wrote pdf report")
	}
	return nil
}
