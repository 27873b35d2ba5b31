package secretaudit

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/secretaudit/secretaudit/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in detection rules",
		RunE:  runRules,
	}
	rootCmd.AddCommand(cmd)
}

func runRules(_ *cobra.Command, _ []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Min entropy", "Exclusions", "Description")
	for _, r := range rules.Default().Rules() {
		minEnt := "-"
		if r.MinEntropy > 0 {
			minEnt = fmt.Sprintf("%.1f", r.MinEntropy)
		}
		excl := "-"
		if n := len(r.ExactExclusions) + len(r.ContextExclusions); n > 0 {
			var kinds []string
			if len(r.ExactExclusions) > 0 {
				kinds = append(kinds, fmt.Sprintf("%d exact", len(r.ExactExclusions)))
			}
			if len(r.ContextExclusions) > 0 {
				kinds = append(kinds, fmt.Sprintf("%d context", len(r.ContextExclusions)))
			}
			excl = strings.Join(kinds, ", ")
		}
		if err := table.Append([]string{r.Name, minEnt, excl, r.Description}); err != nil {
			return err
		}
	}
	return table.Render()
}
