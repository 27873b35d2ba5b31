package report

import (
	"encoding/json"
	"io"

	"github.com/secretaudit/secretaudit/internal/types"
)

// WriteJSON writes findings as indented JSON, including the full matched
// text, for downstream analysis.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{} // no `null` in JSON
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
