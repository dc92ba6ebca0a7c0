package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
)

var analyzeSurface string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image-path>",
	Short: "Analyze the calories and macros in a meal photo",
	Long: `Send a meal photo through the vision-capable model for calorie and
macro analysis. The photo is read from disk, embedded as a data URI, and the
analysis joins the surface's conversation context.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}
		lang, err := resolveLanguage(cfg)
		if err != nil {
			return err
		}

		dataURI, err := internal.LoadImageDataURI(args[0])
		if err != nil {
			return err
		}

		store, err := internal.OpenStateStore(cfg.StatePath)
		if err != nil {
			return fmt.Errorf("failed to open state store: %w", err)
		}
		defer store.Close()

		client := internal.NewClient(cfg.APIURL, cfg.TextModel, cfg.VisionModel)
		session := internal.NewSession(internal.SessionOptions{
			Surface:          analyzeSurface,
			Language:         lang,
			Mode:             internal.ModeCalories,
			Store:            store,
			Client:           client,
			UsageLimit:       cfg.UsageLimit,
			SummaryThreshold: cfg.SummaryThreshold,
		})

		reply, err := session.SendPhoto(cmd.Context(), dataURI)
		if err != nil {
			internal.LogDebug("photo analysis failed: %v", err)
		}
		fmt.Println(assistantStyle.Render("assistant: ") + reply.Text)
		printRemaining(session)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeSurface, "surface", "calendar", "Chat surface namespace (calendar or global)")
}
