package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/corpus-planner/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(analysis *domain.FinancialAnalysis) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// Options carries presentation settings shared by all formatters.
type Options struct {
	CurrencySymbol string
	Assumptions    []string // rendered by the detailed formats, DefaultAssumptions when empty
}

func (o Options) currency() string {
	if o.CurrencySymbol == "" {
		return DefaultCurrencySymbol
	}
	return o.CurrencySymbol
}

// configurable formatters accept Options; the rest are returned unchanged.
type configurable interface {
	withOptions(Options) Formatter
}

// Configure returns f with opts applied.
func Configure(f Formatter, opts Options) Formatter {
	if c, ok := f.(configurable); ok {
		return c.withOptions(opts)
	}
	return f
}

// WriteFormatted runs a formatter and writes output to a file named after the
// formatter and a timestamp, with extension ext, inside dir (the working
// directory when dir is empty).
func WriteFormatted(f Formatter, analysis *domain.FinancialAnalysis, dir, ext string) (string, error) {
	data, err := f.Format(analysis)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("corpus_%s_%s.%s", f.Name(), time.Now().Format("20060102_150405"), ext)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	ConsoleFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name || f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console-lite",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-yearly":      "detailed-csv",
	"csv-goals":       "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extensionFor picks the file extension used when a format is written to disk.
func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	case name == "html":
		return "html"
	default:
		return "txt"
	}
}
