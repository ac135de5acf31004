package output

import (
	"encoding/json"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// JSONFormatter serializes the analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}
