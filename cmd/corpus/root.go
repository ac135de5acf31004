package main

import (
	"fmt"

	"github.com/rpgo/corpus-planner/internal/calculation"
	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/rpgo/corpus-planner/internal/planner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once initConfig has run.
type app struct {
	cfgFile  string
	v        *viper.Viper
	settings config.Settings
	logger   *logrus.Logger
	planner  *planner.Service
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}
	root := &cobra.Command{
		Use:   "corpus",
		Short: "Retirement and goal corpus planner",
		Long: `corpus projects a personal financial plan year by year: holdings,
contributions and planned lump sums grow toward retirement, goals are
withdrawn when they fall due, and the retirement corpus is checked against
the expenses it has to fund until life expectancy.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/corpus/corpus.yaml)")
	flags.Int("year", 0, "current calendar year (default: this year)")
	flags.String("format", "console", "output format (see 'corpus formats')")
	flags.String("currency", "₹", "currency symbol used in reports")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	_ = a.v.BindPFlag("current_year", flags.Lookup("year"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.currency_symbol", flags.Lookup("currency"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(a.analyzeCmd())
	root.AddCommand(a.exampleCmd())
	root.AddCommand(a.whatIfCmd())
	root.AddCommand(a.formatsCmd())
	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.ReadConfig(a.v, a.cfgFile); err != nil {
		return err
	}
	s, err := config.LoadSettings(a.v)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	a.settings = s

	if err := a.setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(a.logger)
	engine.Debug = a.logger.IsLevelEnabled(logrus.DebugLevel)
	a.planner = planner.New(engine, s.CacheSize, a.logger)
	return nil
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)
	a.logger.SetOutput(cmd.ErrOrStderr())
	switch a.settings.LogFormat {
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return nil
}

// currentYear is the configured year, or the calendar year when unset.
func (a *app) currentYear() int {
	if a.settings.CurrentYear > 0 {
		return a.settings.CurrentYear
	}
	return calculation.CurrentYear()
}
