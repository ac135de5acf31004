package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/corpus-planner/internal/domain"
)

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats analysis with the named formatter and returns the bytes.
func Render(analysis *domain.FinancialAnalysis, format string, opts Options) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return Configure(f, opts).Format(analysis)
}

// GenerateReport writes analysis to timestamped files in dir and returns
// their names. The pseudo format "all" writes the verbose console report,
// the goal csv and the yearly csv.
func GenerateReport(analysis *domain.FinancialAnalysis, format, dir string, opts Options) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "csv", "detailed-csv"} {
			f := Configure(GetFormatterByName(name), opts)
			file, err := WriteFormatted(f, analysis, dir, extensionFor(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	file, err := WriteFormatted(Configure(f, opts), analysis, dir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}
