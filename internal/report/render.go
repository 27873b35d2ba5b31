package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/secretaudit/secretaudit/internal/types"
)

const (
	maxProductionShown = 10
	maxEncryptedShown  = 5
)

// PrintOptions controls console summary rendering.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// categoryOrder fixes the display order of the per-category table.
var categoryOrder = []types.Category{
	types.CatProduction,
	types.CatEncrypted,
	types.CatLowEntropy,
	types.CatTestData,
	types.CatExample,
}

// PrintSummary renders the scan summary: totals, per-category and per-rule
// counts, the highest-risk findings, and properly protected ones.
func PrintSummary(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No potential secrets found.")
		printStats(w, opts)
		return
	}

	fmt.Fprintf(w, "Total findings: %d\n\n", len(findings))

	byCategory := map[types.Category]int{}
	byRule := map[string]int{}
	for _, f := range findings {
		byCategory[f.Category]++
		byRule[f.Rule]++
	}

	catTable := tablewriter.NewWriter(w)
	catTable.Header("Category", "Findings")
	for _, c := range categoryOrder {
		if byCategory[c] == 0 {
			continue
		}
		_ = catTable.Append([]string{string(c), fmt.Sprintf("%d", byCategory[c])})
	}
	_ = catTable.Render()
	fmt.Fprintln(w)

	ruleNames := make([]string, 0, len(byRule))
	for name := range byRule {
		ruleNames = append(ruleNames, name)
	}
	sort.Strings(ruleNames)
	ruleTable := tablewriter.NewWriter(w)
	ruleTable.Header("Pattern", "Findings")
	for _, name := range ruleNames {
		_ = ruleTable.Append([]string{name, fmt.Sprintf("%d", byRule[name])})
	}
	_ = ruleTable.Render()

	if prod := byCategory[types.CatProduction]; prod > 0 {
		header := fmt.Sprintf("\nHIGH RISK (PRODUCTION) FINDINGS: %d", prod)
		if !opts.NoColor {
			header = "\x1b[31m" + header + "\x1b[0m"
		}
		fmt.Fprintln(w, header)
		shown := 0
		for _, f := range findings {
			if f.Category != types.CatProduction {
				continue
			}
			if shown >= maxProductionShown {
				fmt.Fprintf(w, "  ... and %d more\n", prod-shown)
				break
			}
			fmt.Fprintf(w, "  %s:%d - %s - %s (entropy: %.2f)\n", f.File, f.Line, f.Rule, f.Sample, f.Entropy)
			shown++
		}
	}

	if enc := byCategory[types.CatEncrypted]; enc > 0 {
		fmt.Fprintf(w, "\nENCRYPTED SECRETS (PROPERLY PROTECTED): %d\n", enc)
		shown := 0
		for _, f := range findings {
			if f.Category != types.CatEncrypted || shown >= maxEncryptedShown {
				continue
			}
			fmt.Fprintf(w, "  %s:%d - %s - %s\n", f.File, f.Line, f.Rule, f.Sample)
			shown++
		}
	}

	printStats(w, opts)
}

func printStats(w io.Writer, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}
