package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/rpgo/corpus-planner/internal/output"
	"github.com/rpgo/corpus-planner/internal/planner"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) whatIfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif <plan.yaml>",
		Short: "Compare a plan with some items switched off or on",
		Long: `Whatif analyzes the plan as written and again with the named investments,
lump sums, contributions or goals disabled (or enabled), then reports how
the corpus and goal verdicts change.

Examples:
  corpus whatif plan.yaml --disable equity-sip
  corpus whatif plan.yaml --disable house,vacation --enable bonus`,
		Args: cobra.ExactArgs(1),
		RunE: a.runWhatIf,
	}
	cmd.Flags().StringSlice("disable", nil, "ids of plan items to disable")
	cmd.Flags().StringSlice("enable", nil, "ids of plan items to enable")
	return cmd
}

func (a *app) runWhatIf(cmd *cobra.Command, args []string) error {
	disable, _ := cmd.Flags().GetStringSlice("disable")
	enable, _ := cmd.Flags().GetStringSlice("enable")
	if len(disable) == 0 && len(enable) == 0 {
		return errors.New("nothing to compare: pass --disable or --enable")
	}

	plan, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	toggles := planner.Disable(disable...)
	for _, id := range enable {
		toggles[id] = true
	}

	cmp, err := a.planner.WhatIf(cmd.Context(), plan, a.currentYear(), toggles)
	if err != nil {
		return err
	}
	a.logger.Debugf("planner cache: %+v", a.planner.Stats())

	if output.NormalizeFormatName(a.settings.Format) == "json" {
		return writeComparisonJSON(cmd.OutOrStdout(), cmp)
	}
	writeComparison(cmd.OutOrStdout(), cmp, a.settings.CurrencySymbol)
	return nil
}

type comparisonDocument struct {
	Toggles                map[string]bool           `json:"toggles"`
	SurplusChange          decimal.Decimal           `json:"surplus_change"`
	RetirementCorpusChange decimal.Decimal           `json:"retirement_corpus_change"`
	ChangedGoals           []domain.GoalAnalysis     `json:"changed_goals"`
	Baseline               *domain.FinancialAnalysis `json:"baseline"`
	Variant                *domain.FinancialAnalysis `json:"variant"`
}

func writeComparisonJSON(w io.Writer, cmp *planner.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(comparisonDocument{
		Toggles:                cmp.Toggles,
		SurplusChange:          cmp.SurplusChange(),
		RetirementCorpusChange: cmp.RetirementCorpusChange(),
		ChangedGoals:           cmp.ChangedGoals(),
		Baseline:               cmp.Baseline,
		Variant:                cmp.Variant,
	})
}

func writeComparison(w io.Writer, cmp *planner.Comparison, symbol string) {
	money := func(d decimal.Decimal) string { return output.FormatCurrencyWith(symbol, d) }
	b, v := cmp.Baseline.CorpusHealth, cmp.Variant.CorpusHealth

	fmt.Fprintln(w, output.TitleStyle.Render("WHAT-IF COMPARISON"))
	fmt.Fprintf(w, "%-32s %20s %20s\n", "", "Baseline", "What-if")
	row := func(label string, x, y decimal.Decimal) {
		fmt.Fprintf(w, "%-32s %20s %20s\n", label, money(x), money(y))
	}
	row("Corpus at retirement", b.TotalCorpusAtRetirement, v.TotalCorpusAtRetirement)
	row("After pre-retirement goals", b.CorpusAtRetirementAfterPreGoals, v.CorpusAtRetirementAfterPreGoals)
	row("Total required", b.TotalRequiredIncludingRetirement, v.TotalRequiredIncludingRetirement)
	row("Surplus", b.OverallSurplus, v.OverallSurplus)
	fmt.Fprintf(w, "%-32s %20s %20s\n", "Must-have goals funded",
		fmt.Sprintf("%d/%d", b.MustHaveGoalsFunded, b.MustHaveGoalsTotal),
		fmt.Sprintf("%d/%d", v.MustHaveGoalsFunded, v.MustHaveGoalsTotal))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Surplus change: %s\n", money(cmp.SurplusChange()))

	changed := cmp.ChangedGoals()
	if len(changed) == 0 {
		fmt.Fprintln(w, output.SubtleStyle.Render("No goal changes its funding verdict."))
		return
	}
	fmt.Fprintln(w, "Goals whose verdict changes:")
	for _, g := range changed {
		verdict := output.FundedStyle.Render("now funded")
		if g.IsFunded {
			verdict = output.ShortfallStyle.Render("no longer funded")
		}
		fmt.Fprintf(w, "  %s (%d): %s\n", g.Name, g.Year, verdict)
	}
}
