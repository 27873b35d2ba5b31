package secretaudit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secretaudit/secretaudit/internal/engine"
	"github.com/secretaudit/secretaudit/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scan and browse findings interactively",
		RunE:  runBrowse,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "repository path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
}

func runBrowse(_ *cobra.Command, _ []string) error {
	cfg, err := resolveScanConfig()
	if err != nil {
		return err
	}
	findings, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	return tui.Run(findings)
}
