package cli

import (
	"retirement-calc/internal/analysis"
	"retirement-calc/internal/model"

	"github.com/spf13/cobra"
)

type sensitivityCmd struct {
	cli *CLI

	balance   float64
	rates     []float64
	horizons  []int
	tolerance float64
}

func (cli *CLI) newSensitivityCmd() *cobra.Command {
	sc := &sensitivityCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Maximum withdrawal across a grid of rates and horizons, best first",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.balance, "balance", 0, "Retirement balance")
	cmd.Flags().Float64SliceVar(&sc.rates, "rates", []float64{0.03, 0.05, 0.07}, "Comma-separated growth rates")
	cmd.Flags().IntSliceVar(&sc.horizons, "years", []int{20, 30, 40}, "Comma-separated horizons in years")
	cmd.Flags().Float64Var(&sc.tolerance, "tolerance", model.DefaultTolerance, "Search precision in currency units")

	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func (sc *sensitivityCmd) run(cmd *cobra.Command, args []string) error {
	cells, err := analysis.Sensitivity(sc.balance, sc.rates, sc.horizons, sc.tolerance)
	if err != nil {
		return err
	}
	sc.cli.logger.Debug().Int("cells", len(cells)).Msg("sensitivity grid solved")
	return sc.cli.reporter.Sensitivity(analysis.RankBySustainableRate(cells))
}
