package secretaudit

import (
	"fmt"
	"io"
	"os"

	"github.com/secretaudit/secretaudit/internal/report"
	"github.com/secretaudit/secretaudit/internal/types"
)

func writeCSVFile(path string, findings []types.Finding) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f, findings)
}

func writeJSONFile(path string, findings []types.Finding) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteJSON(f, findings)
}

// printRecommendations closes the summary with next steps when production
// secrets were found.
func printRecommendations(w io.Writer, findings []types.Finding, noColor bool) {
	prod := 0
	for _, f := range findings {
		if f.Category == types.CatProduction {
			prod++
		}
	}
	if prod == 0 {
		fmt.Fprintln(w, "\nNo production secrets detected.")
		return
	}
	alert := fmt.Sprintf("\nSECURITY ALERT: %d potential production secrets found!", prod)
	if !noColor {
		alert = "\x1b[31m" + alert + "\x1b[0m"
	}
	fmt.Fprintln(w, alert)
	fmt.Fprintln(w, "Recommended actions:")
	fmt.Fprintln(w, "  1. Review all PRODUCTION findings immediately")
	fmt.Fprintln(w, "  2. Move secrets to environment variables or a secret manager")
	fmt.Fprintln(w, "  3. Rotate any exposed API keys or tokens")
	fmt.Fprintln(w, "  4. Add secret files to .gitignore to prevent future commits")
}
