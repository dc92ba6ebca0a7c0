package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
)

var (
	verbose    bool
	configPath string
	langFlag   string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nutrichat",
	Short: "Bilingual AI nutrition assistant",
	Long: `A bilingual (English/Vietnamese) AI nutrition assistant.

nutrichat talks to a chat-completion service through a local credential-holding
proxy and keeps each chat surface's usage quota and rolling conversation
summary in a local state database.

Features:
  • Interactive chat with advice, menu-building, and calorie-analysis modes
  • Meal-photo calorie analysis through a vision-capable model
  • Per-surface usage quota with a hard cap on billable calls
  • Automatic conversation summarization to bound request context
  • Transcript export (JSON, Markdown, YAML)

Quick Start:
  nutrichat serve                     # Run the completion proxy
  nutrichat chat                      # Chat on the default surface
  nutrichat analyze photo.jpg         # Analyze a meal photo
  nutrichat status                    # Show remaining uses per surface`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Response language (en or vi)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveLanguage picks the language from the --lang flag, falling back to
// the config file value.
func resolveLanguage(cfg internal.Config) (internal.Language, error) {
	code := langFlag
	if code == "" {
		code = cfg.Language
	}
	if code == "" {
		return internal.LanguageEN, nil
	}
	return internal.ParseLanguage(code)
}
