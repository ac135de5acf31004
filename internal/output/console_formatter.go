package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct {
	Opts Options
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) withOptions(o Options) Formatter { return ConsoleFormatter{Opts: o} }

func (c ConsoleFormatter) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	cur := c.Opts.currency()
	h := analysis.CorpusHealth

	fmt.Fprintln(&buf, "CORPUS PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Retirement Year: %d\n", analysis.RetirementYear)
	fmt.Fprintf(&buf, "Corpus At Retirement: %s\n", FormatCurrencyWith(cur, h.TotalCorpusAtRetirement))
	fmt.Fprintf(&buf, "Required For Retirement: %s\n", FormatCurrencyWith(cur, h.RetirementCorpusRequired))
	fmt.Fprintf(&buf, "Must-Have Goals Funded: %d/%d\n", h.MustHaveGoalsFunded, h.MustHaveGoalsTotal)
	fmt.Fprintf(&buf, "Good-To-Have Goals Funded: %d/%d\n", h.GoodToHaveGoalsFunded, h.GoodToHaveGoalsTotal)
	if h.OverallSurplus.IsNegative() {
		fmt.Fprintf(&buf, "Shortfall: %s\n", FormatCurrencyWith(cur, h.OverallSurplus.Neg()))
	} else {
		fmt.Fprintf(&buf, "Surplus: %s\n", FormatCurrencyWith(cur, h.OverallSurplus))
	}

	l := AnalyzeLongevity(analysis)
	if l.LastsLifetime {
		fmt.Fprintf(&buf, "Corpus lasts to age %d (%s left)\n", l.FinalAge, FormatCurrencyWith(cur, l.FinalCorpus))
	} else if l.DepletionYear != 0 {
		fmt.Fprintf(&buf, "Corpus depletes in %d at age %d\n", l.DepletionYear, l.DepletionAge)
	}
	return buf.Bytes(), nil
}
