package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct {
	Opts Options
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) withOptions(o Options) Formatter {
	return ConsoleVerboseFormatter{Opts: o}
}

func (c ConsoleVerboseFormatter) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	cur := c.Opts.currency()

	rule := strings.Repeat("=", 81)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, TitleStyle.Render("CORPUS PLAN ANALYSIS"))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, SectionStyle.Render("KEY ASSUMPTIONS:"))
	for _, a := range assumptionsOrDefault(c.Opts) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeCorpusHealth(&buf, analysis, cur)
	writeGoalTable(&buf, analysis, cur)
	writeProjectionTable(&buf, analysis, cur)
	writeLongevity(&buf, analysis, cur)
	return buf.Bytes(), nil
}

func writeCorpusHealth(buf *bytes.Buffer, analysis *domain.FinancialAnalysis, cur string) {
	h := analysis.CorpusHealth
	fmt.Fprintf(buf, "%s\n", SectionStyle.Render(fmt.Sprintf("CORPUS HEALTH AT RETIREMENT (%d)", analysis.RetirementYear)))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "  Corpus Before Goals:          %s\n", FormatCurrencyWith(cur, h.TotalCorpusAtRetirement))
	fmt.Fprintf(buf, "  Corpus After Pre-Ret. Goals:  %s\n", FormatCurrencyWith(cur, h.CorpusAtRetirementAfterPreGoals))
	fmt.Fprintf(buf, "  Monthly Expense At Retirement: %s\n", FormatCurrencyWith(cur, h.MonthlyExpenseAtRetirement))
	fmt.Fprintf(buf, "  Retirement Corpus Required:   %s\n", FormatCurrencyWith(cur, h.RetirementCorpusRequired))
	fmt.Fprintf(buf, "  Pre-Retirement Goals Impact:  %s\n", FormatCurrencyWith(cur, h.PreRetirementGoalsImpact))
	fmt.Fprintf(buf, "  Post-Retirement Goals (PV):   %s\n", FormatCurrencyWith(cur, h.PostRetirementGoalsPV))
	fmt.Fprintf(buf, "  Total Required:               %s\n", FormatCurrencyWith(cur, h.TotalRequiredIncludingRetirement))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Retirement:            %s\n", badge(h.CanMeetRetirement, "ON TRACK", "SHORTFALL"))
	fmt.Fprintf(buf, "  Must-Have Goals:       %d/%d funded %s\n", h.MustHaveGoalsFunded, h.MustHaveGoalsTotal, badge(h.CanMeetMustHaveGoals, "ON TRACK", "SHORTFALL"))
	fmt.Fprintf(buf, "  Good-To-Have Goals:    %d/%d funded %s\n", h.GoodToHaveGoalsFunded, h.GoodToHaveGoalsTotal, badge(h.CanMeetAllGoals, "ON TRACK", "SHORTFALL"))
	fmt.Fprintf(buf, "  Everything Together:   %s\n", badge(h.CanMeetAllIncludingRetirement, "ON TRACK", "SHORTFALL"))
	if h.OverallSurplus.IsNegative() {
		fmt.Fprintf(buf, "  Shortfall At Retirement: %s\n", FormatCurrencyWith(cur, h.OverallSurplus.Neg()))
	} else {
		fmt.Fprintf(buf, "  Surplus At Retirement:   %s\n", FormatCurrencyWith(cur, h.OverallSurplus))
	}
	fmt.Fprintln(buf)
}

func writeGoalTable(buf *bytes.Buffer, analysis *domain.FinancialAnalysis, cur string) {
	fmt.Fprintln(buf, SectionStyle.Render("GOALS:"))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	if len(analysis.GoalAnalyses) == 0 {
		fmt.Fprintln(buf, SubtleStyle.Render("  No enabled goals"))
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "  %-24s %-13s %4s %3s %18s %18s  %s\n", "Goal", "Priority", "Year", "Age", "Required", "Available", "Status")
	for _, g := range analysis.GoalAnalyses {
		name := g.Name
		if g.Occurrence > 1 {
			name = fmt.Sprintf("%s #%d", g.Name, g.Occurrence)
		}
		fmt.Fprintf(buf, "  %-24s %-13s %4d %3d %18s %18s  %s\n",
			name,
			g.Priority.Label(),
			g.Year,
			g.Age,
			FormatCurrencyWith(cur, g.InflationAdjustedAmount),
			FormatCurrencyWith(cur, g.CorpusAtGoalYear),
			badge(g.IsFunded, "FUNDED", "SHORT "+FormatCurrencyWith(cur, g.Shortfall)),
		)
	}
	fmt.Fprintln(buf)
	for _, s := range SummarizeGoals(analysis.GoalAnalyses) {
		if s.Total == 0 {
			continue
		}
		fmt.Fprintf(buf, "  %s: %d/%d funded, %s required", s.Priority.Label(), s.Funded, s.Total, FormatCurrencyWith(cur, s.Required))
		if s.Shortfall.IsPositive() {
			fmt.Fprintf(buf, ", %s short", FormatCurrencyWith(cur, s.Shortfall))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}

func writeProjectionTable(buf *bytes.Buffer, analysis *domain.FinancialAnalysis, cur string) {
	fmt.Fprintln(buf, SectionStyle.Render("YEARLY PROJECTION:"))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "  %4s %3s %-8s %20s  %s\n", "Year", "Age", "Phase", "Corpus", "Goals")
	for _, p := range analysis.YearlyProjections {
		phase := "saving"
		if p.IsRetired {
			phase = "retired"
		}
		names := make([]string, 0, len(p.GoalsMaturing))
		for _, g := range p.GoalsMaturing {
			names = append(names, g.Name)
		}
		fmt.Fprintf(buf, "  %4d %3d %-8s %20s  %s\n", p.Year, p.Age, phase, FormatCurrencyWith(cur, p.TotalCorpus), strings.Join(names, ", "))
	}
	fmt.Fprintln(buf)
}

func writeLongevity(buf *bytes.Buffer, analysis *domain.FinancialAnalysis, cur string) {
	l := AnalyzeLongevity(analysis)
	fmt.Fprintln(buf, SectionStyle.Render("CORPUS LONGEVITY:"))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	switch {
	case l.LastsLifetime:
		fmt.Fprintf(buf, "  Corpus at age %d: %s\n", l.FinalAge, FormatCurrencyWith(cur, l.FinalCorpus))
	case l.DepletionYear != 0:
		fmt.Fprintf(buf, "  %s\n", ShortfallStyle.Render(fmt.Sprintf("WARNING: Corpus depletes in %d at age %d", l.DepletionYear, l.DepletionAge)))
	default:
		fmt.Fprintln(buf, SubtleStyle.Render("  No projection available"))
	}
}
