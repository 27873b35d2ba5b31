package secretaudit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secretaudit/secretaudit/internal/engine"
	"github.com/secretaudit/secretaudit/internal/report"
)

var flagBaselineOut string

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Record current findings so future scans only flag new ones",
		RunE:  runBaseline,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "repository path to scan")
	cmd.Flags().StringVar(&flagBaselineOut, "output", "secretaudit.baseline.json", "baseline file to write")
}

func runBaseline(_ *cobra.Command, _ []string) error {
	cfg, err := resolveScanConfig()
	if err != nil {
		return err
	}
	findings, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if err := report.SaveBaseline(flagBaselineOut, findings); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded %d findings in %s\n", len(findings), flagBaselineOut)
	return nil
}
