package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/filesim/internal/config"
	"github.com/psantana5/filesim/internal/outfmt"
	"github.com/psantana5/filesim/internal/report"
	"github.com/psantana5/filesim/internal/scenario"
	"github.com/psantana5/filesim/internal/simulator"
)

// app carries the state shared by the commands of one invocation
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	registry *prometheus.Registry
}

// Execute builds the command tree and runs it
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:        viper.New(),
		registry: prometheus.NewRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:   "filesim",
		Short: "File processing simulator",
		Long: `filesim simulates file processing for a virtual library: it validates
file names and data, acquires a simulated file handle, simulates reading and
writing, and always releases the handle, whatever happened before.

Without a subcommand it runs the built-in sequence of example invocations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: a.runScenarios,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.filesim/config.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("summary", outfmt.None, "summary after the run: none, table, json, yaml")
	flags.Bool("metrics", false, "print prometheus metrics after the run")
	flags.String("scenarios", "", "scenario file (.yaml, .yml or .hcl) replacing the built-in sequence")
	flags.Bool("strict", false, "exit non-zero when a scenario misses its expectation")

	for key, flag := range map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
		"summary":    "summary",
		"metrics":    "metrics",
		"scenarios":  "scenarios",
		"strict":     "strict",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newProcessCmd(a))
	return rootCmd
}

// initConfig reads in config file and ENV variables if set
func (a *app) initConfig() error {
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".filesim"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) newSimulator(w io.Writer) *simulator.Simulator {
	logger := a.cfg.NewLogger()
	logger.SetOutput(w)

	return simulator.New(
		simulator.WithLogger(logger),
		simulator.WithRecorder(report.NewMetrics(a.registry)),
	)
}

func (a *app) runScenarios(cmd *cobra.Command, _ []string) error {
	scenarios := scenario.Default()
	if a.cfg.Scenarios != "" {
		loaded, err := scenario.LoadFile(a.cfg.Scenarios)
		if err != nil {
			return err
		}
		scenarios = loaded
	}

	out := cmd.OutOrStdout()
	results := scenario.Run(cmd.Context(), a.newSimulator(out), scenarios, out)

	if err := a.finish(out, results); err != nil {
		return err
	}

	if a.cfg.Strict {
		if bad := scenario.Mismatches(results); len(bad) > 0 {
			return fmt.Errorf("%d of %d scenarios did not meet their expectation", len(bad), len(results))
		}
	}
	return nil
}

// finish prints the optional summary and metrics dump.
func (a *app) finish(w io.Writer, results []scenario.Result) error {
	if err := report.WriteSummary(w, results, a.cfg.Summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if a.cfg.Metrics {
		if err := report.WriteMetrics(w, a.registry); err != nil {
			return err
		}
	}
	return nil
}
