package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"retirement-calc/internal/analysis"
	"retirement-calc/internal/config"
	"retirement-calc/internal/ledger"

	"github.com/spf13/cobra"
)

type batchCmd struct {
	cli *CLI

	configPath string
	outDir     string
}

func (cli *CLI) newBatchCmd() *cobra.Command {
	bc := &batchCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every scenario in a YAML config",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.configPath, "config", "", "Path to YAML scenario config")
	cmd.Flags().StringVar(&bc.outDir, "out", "", "Optional: write one ledger CSV per scenario into this directory")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (bc *batchCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(bc.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bc.cli.logger.Info().
		Str("config", bc.configPath).
		Int("scenarios", len(cfg.Scenarios)).
		Msg("running batch")

	outcomes, err := analysis.RunAll(cfg.Scenarios)
	if err != nil {
		return err
	}

	if bc.outDir != "" {
		if err := os.MkdirAll(bc.outDir, 0o755); err != nil {
			return err
		}
	}

	for i, o := range outcomes {
		if err := bc.cli.reporter.Outcome(o, cfg.Scenarios[i]); err != nil {
			return err
		}
		if bc.outDir == "" {
			continue
		}
		path := filepath.Join(bc.outDir, o.Name+".csv")
		if err := ledger.WriteCSV(path, o.Ledger.Rows); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		bc.cli.logger.Debug().Str("path", path).Msg("wrote ledger")
	}
	return nil
}
