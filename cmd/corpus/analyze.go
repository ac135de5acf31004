package main

import (
	"fmt"
	"os"

	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/rpgo/corpus-planner/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <plan.yaml>",
		Short: "Project a plan and report goal funding and corpus health",
		Long: `Analyze loads a plan, projects the corpus from the current year to life
expectancy and prints the report in the selected format.

Examples:
  # Detailed console report
  corpus analyze plan.yaml

  # Goal verdicts as CSV, written to a file
  corpus analyze plan.yaml --format csv --out goals.csv

  # Timestamped console, goal and yearly reports in ./reports
  corpus analyze plan.yaml --format all --report-dir reports`,
		Args: cobra.ExactArgs(1),
		RunE: a.runAnalyze,
	}
	cmd.Flags().String("out", "", "write the report to this file instead of stdout")
	cmd.Flags().String("report-dir", "", "write timestamped report files to this directory")
	_ = a.v.BindPFlag("output.dir", cmd.Flags().Lookup("report-dir"))
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	plan, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	year := a.currentYear()
	a.logger.WithField("plan", args[0]).Debugf("analyzing from %d", year)

	analysis, err := a.planner.Analyze(cmd.Context(), plan, year)
	if err != nil {
		return err
	}
	opts := output.Options{
		CurrencySymbol: a.settings.CurrencySymbol,
		Assumptions:    output.GenerateAssumptions(plan),
	}

	if a.settings.OutputDir != "" || output.NormalizeFormatName(a.settings.Format) == "all" {
		files, err := output.GenerateReport(analysis, a.settings.Format, a.settings.OutputDir, opts)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	}

	data, err := output.Render(analysis, a.settings.Format, opts)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		a.logger.Infof("report written to %s", out)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
