package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// CSVSummarizer implements the goal CSV output (one row per goal occurrence).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"GoalID", "Name", "Priority", "Timeline", "Year", "Age", "Occurrence", "InflationAdjustedAmount", "CorpusAtGoalYear", "IsFunded", "Shortfall"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	goals := append([]domain.GoalAnalysis(nil), analysis.GoalAnalyses...)
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Year != goals[j].Year {
			return goals[i].Year < goals[j].Year
		}
		return goals[i].GoalID < goals[j].GoalID
	})
	for _, g := range goals {
		row := []string{
			g.GoalID,
			g.Name,
			string(g.Priority),
			string(g.Timeline),
			intToString(g.Year),
			intToString(g.Age),
			intToString(g.Occurrence),
			g.InflationAdjustedAmount.StringFixed(2),
			g.CorpusAtGoalYear.StringFixed(2),
			boolToString(g.IsFunded),
			g.Shortfall.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
