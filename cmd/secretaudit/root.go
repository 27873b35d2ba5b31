package secretaudit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagThreads int
	flagFailOn  string
	flagNoColor bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the secretaudit CLI.
var rootCmd = &cobra.Command{
	Use:           "secretaudit",
	Short:         "Find hard-coded secrets in your repo",
	Long:          "secretaudit scans tracked files for hard-coded secrets and classifies each finding by likely risk level.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			log.Debug().Msg("Verbose log output enabled")
		}
	},
}

// Execute runs the secretaudit CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON on stdout")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "PRODUCTION", "exit nonzero when findings in these categories exist (comma-separated)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}
