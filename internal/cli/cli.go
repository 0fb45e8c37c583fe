package cli

import (
	"io"
	"os"

	"retirement-calc/internal/report"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *report.Reporter
	output   io.Writer
	logOut   io.Writer
	logger   zerolog.Logger
	logLevel string
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// Output receives reports. Defaults to stdout.
	Output io.Writer
	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		reporter: report.NewReporter(opts.Output),
		output:   opts.Output,
		logOut:   opts.LogOutput,
		logger:   zerolog.Nop(),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args[1:] for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "retirement-calc",
		Short:         "Retirement withdrawal, growth and duration calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setupLogger()
		},
	}
	cmd.SetOut(cli.output)
	cmd.SetErr(cli.logOut)

	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(cli.newWithdrawalCmd())
	cmd.AddCommand(cli.newFixedCmd())
	cmd.AddCommand(cli.newVariableCmd())
	cmd.AddCommand(cli.newDurationCmd())
	cmd.AddCommand(cli.newSensitivityCmd())
	cmd.AddCommand(cli.newBatchCmd())

	return cmd
}

func (cli *CLI) setupLogger() error {
	level, err := zerolog.ParseLevel(cli.logLevel)
	if err != nil {
		return err
	}
	cli.logger = zerolog.New(zerolog.ConsoleWriter{Out: cli.logOut, NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()
	return nil
}
