package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/secretaudit/secretaudit/internal/types"
)

// csvHeader is the stable column layout downstream tooling consumes.
var csvHeader = []string{"file", "line", "pattern", "description", "sample", "category", "entropy", "context"}

// WriteCSV writes findings in the stable tabular layout. Entropy is rendered
// with two decimals, matching the precision findings carry.
func WriteCSV(w io.Writer, findings []types.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range findings {
		rec := []string{
			f.File,
			strconv.Itoa(f.Line),
			f.Rule,
			f.Description,
			f.Sample,
			string(f.Category),
			strconv.FormatFloat(f.Entropy, 'f', 2, 64),
			f.Context,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
