package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
)

// chatSurfaces lists the independent chat surfaces and their storage-key
// namespaces.
var chatSurfaces = []string{"calendar", "global"}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show remaining uses and stored summaries per surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}

		store, err := internal.OpenStateStore(cfg.StatePath)
		if err != nil {
			return fmt.Errorf("failed to open state store: %w", err)
		}
		defer store.Close()

		gate := internal.NewQuotaGate(cfg.UsageLimit)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SURFACE\tUSED\tLEFT\tSUMMARY")
		for _, surface := range chatSurfaces {
			usage := internal.LoadUsage(store, surface)
			summary := internal.LoadSummary(store, surface)
			summaryNote := "-"
			if summary != "" {
				summaryNote = fmt.Sprintf("%d chars", len(summary))
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", surface, usage, gate.Remaining(usage), summaryNote)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
