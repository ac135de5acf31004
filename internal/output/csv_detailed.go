package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// CSVDetailedExporter provides the raw yearly corpus projection.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "IsRetired", "TotalCorpus", "GoalsMaturing"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range analysis.YearlyProjections {
		ids := make([]string, 0, len(p.GoalsMaturing))
		for _, g := range p.GoalsMaturing {
			ids = append(ids, g.GoalID)
		}
		row := []string{
			intToString(p.Year),
			intToString(p.Age),
			boolToString(p.IsRetired),
			p.TotalCorpus.StringFixed(2),
			strings.Join(ids, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
