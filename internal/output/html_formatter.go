package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct {
	Opts Options
}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) withOptions(o Options) Formatter { return HTMLFormatter{Opts: o} }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrencyWith,
	"pct":  FormatPercentage,
	"neg":  func(d decimal.Decimal) bool { return d.IsNegative() },
	"abs":  func(d decimal.Decimal) decimal.Decimal { return d.Abs() },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type chartPoint struct {
	Year   int     `json:"year"`
	Corpus float64 `json:"corpus"`
}

func (h HTMLFormatter) Format(analysis *domain.FinancialAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	points := make([]chartPoint, 0, len(analysis.YearlyProjections))
	for _, p := range analysis.YearlyProjections {
		points = append(points, chartPoint{Year: p.Year, Corpus: p.TotalCorpus.Round(2).InexactFloat64()})
	}
	data := struct {
		*domain.FinancialAnalysis
		Currency    string
		Assumptions []string
		Summaries   []GoalSummary
		Longevity   Longevity
		Chart       []chartPoint
	}{analysis, h.Opts.currency(), assumptionsOrDefault(h.Opts), SummarizeGoals(analysis.GoalAnalyses), AnalyzeLongevity(analysis), points}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
