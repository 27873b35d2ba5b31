package secretaudit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/secretaudit/secretaudit/internal/config"
	"github.com/secretaudit/secretaudit/internal/engine"
	"github.com/secretaudit/secretaudit/internal/report"
)

var (
	flagPath     string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagCSVOut   string
	flagJSONOut  string
	flagBaseline string
)

const (
	defaultMaxBytes = 1 << 20
	defaultCSVOut   = "hardcoded-secrets.csv"
	defaultJSONOut  = "hardcoded-secrets-detailed.json"
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan tracked files for secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "repository path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", defaultMaxBytes, "skip files larger than this")
	cmd.Flags().StringVar(&flagCSVOut, "csv", defaultCSVOut, "write findings CSV here (empty to skip)")
	cmd.Flags().StringVar(&flagJSONOut, "json-out", defaultJSONOut, "write detailed findings JSON here (empty to skip)")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "filter findings recorded in this baseline file")
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := resolveScanConfig()
	if err != nil {
		return err
	}

	noColor := flagNoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	if !flagJSON {
		total, err := engine.CountTargets(cfg)
		if err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Scanning %d tracked files...\n", total)
		progressed := 0
		if total > 0 {
			cfg.Progress = func() {
				progressed++
				if progressed%10 == 0 || progressed == total {
					pct := float64(progressed) / float64(total) * 100
					fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
				}
			}
		}
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if !flagJSON {
		fmt.Fprintln(os.Stderr)
	}
	if res.SkipErrors != nil {
		log.Warn().Err(res.SkipErrors).Int("skipped", res.FilesSkipped).Msg("some files were skipped")
	}

	findings := res.Findings
	if flagBaseline != "" {
		base, _ := report.LoadBaseline(flagBaseline)
		findings = report.FilterNewFindings(findings, base)
	}

	if flagJSON {
		if err := report.WriteJSON(os.Stdout, findings); err != nil {
			return err
		}
	} else {
		report.PrintSummary(os.Stdout, findings, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
		printRecommendations(os.Stdout, findings, noColor)
	}

	if flagCSVOut != "" {
		if err := writeCSVFile(flagCSVOut, findings); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if !flagJSON {
			fmt.Fprintln(os.Stderr, "Results saved to", flagCSVOut)
		}
	}
	if flagJSONOut != "" {
		if err := writeJSONFile(flagJSONOut, findings); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		if !flagJSON {
			fmt.Fprintln(os.Stderr, "Detailed results saved to", flagJSONOut)
		}
	}

	if report.ShouldFail(findings, flagFailOn) {
		os.Exit(1)
	}
	return nil
}

// resolveScanConfig merges CLI flags with local and global YAML config,
// CLI > local > global.
func resolveScanConfig() (engine.Config, error) {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return engine.Config{}, err
	}
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	if flagBaseline == "" {
		flagBaseline = pickString("", lcfg.Baseline, gcfg.Baseline)
	}
	flagNoColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if flagCSVOut == defaultCSVOut {
		if v := pickString("", lcfg.CSVOut, gcfg.CSVOut); v != "" {
			flagCSVOut = v
		}
	}
	if flagJSONOut == defaultJSONOut {
		if v := pickString("", lcfg.JSONOut, gcfg.JSONOut); v != "" {
			flagJSONOut = v
		}
	}
	if flagFailOn == "PRODUCTION" {
		if v := pickString("", lcfg.FailOn, gcfg.FailOn); v != "" {
			flagFailOn = v
		}
	}

	return engine.Config{
		Root:         abs,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, defaultMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
	}, nil
}
