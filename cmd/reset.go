package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
)

var (
	resetSurface     string
	resetUsageOnly   bool
	resetSummaryOnly bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear persisted usage counters and summaries",
	Long: `Clear the persisted usage counter and/or rolling summary.

Chat state is never cleared implicitly (logging out of a client does not touch
it); this command is the explicit way to start over. By default both the
counter and the summary of every surface are cleared.`,
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

		clearUsage := !resetSummaryOnly
		clearSummary := !resetUsageOnly

		surfaces := chatSurfaces
		if resetSurface != "" {
			surfaces = []string{resetSurface}
		}
		for _, surface := range surfaces {
			if err := internal.ResetState(store, surface, clearUsage, clearSummary); err != nil {
				return err
			}
			internal.LogInfo("cleared state for surface %s (usage=%t, summary=%t)", surface, clearUsage, clearSummary)
		}
		fmt.Println("Chat state cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().StringVar(&resetSurface, "surface", "", "Only clear this surface (default: all)")
	resetCmd.Flags().BoolVar(&resetUsageOnly, "usage-only", false, "Only clear the usage counter")
	resetCmd.Flags().BoolVar(&resetSummaryOnly, "summary-only", false, "Only clear the stored summary")
}
