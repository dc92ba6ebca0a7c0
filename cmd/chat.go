package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
	"github.com/vietfit/nutrichat/internal/export"
)

var (
	chatSurface string
	chatMode    string
	chatSave    string
)

var (
	// Styles
	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	userPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the nutrition assistant",
	Long: `Start an interactive chat with the AI nutrition assistant.

Each surface keeps its own persisted usage counter and conversation summary.
Inside the chat, "/mode advice|menu|calories" switches the instruction mode
and "/quit" exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}
		lang, err := resolveLanguage(cfg)
		if err != nil {
			return err
		}
		mode, err := internal.ParseMode(chatMode)
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
			Surface:          chatSurface,
			Language:         lang,
			Mode:             mode,
			Store:            store,
			Client:           client,
			UsageLimit:       cfg.UsageLimit,
			SummaryThreshold: cfg.SummaryThreshold,
		})

		fmt.Println(assistantStyle.Render("assistant: ") + internal.Greeting(lang))
		printRemaining(session)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(userPromptStyle.Render("you> "))
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "/quit" || line == "/exit" {
				break
			}
			if rest, ok := strings.CutPrefix(line, "/mode "); ok {
				m, err := internal.ParseMode(strings.TrimSpace(rest))
				if err != nil {
					fmt.Println(metaStyle.Render(err.Error()))
					continue
				}
				session.SetMode(m)
				fmt.Println(metaStyle.Render("mode: " + internal.ModeLabel(m, lang)))
				continue
			}

			reply, err := session.Send(cmd.Context(), line)
			if err != nil {
				internal.LogDebug("send failed: %v", err)
			}
			fmt.Println(assistantStyle.Render("assistant: ") + reply.Text)
			printRemaining(session)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if chatSave != "" {
			if err := saveTranscript(session, chatSave); err != nil {
				return err
			}
			fmt.Println(metaStyle.Render("transcript saved to " + chatSave))
		}
		return nil
	},
}

// printRemaining shows the surface's remaining billable calls, mirroring the
// "Uses left" badge of the chat UI.
func printRemaining(session *internal.Session) {
	fmt.Println(metaStyle.Render(fmt.Sprintf("Uses left: %d", session.Remaining())))
}

// saveTranscript writes the session history in the format implied by the
// file extension.
func saveTranscript(session *internal.Session, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "md"
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create transcript file: %w", err)
	}
	defer f.Close()
	return exporter.Export(export.NewTranscript(session), f)
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&chatSurface, "surface", "calendar", "Chat surface namespace (calendar or global)")
	chatCmd.Flags().StringVar(&chatMode, "mode", "advice", "Instruction mode (advice, menu, calories)")
	chatCmd.Flags().StringVar(&chatSave, "save", "", "Save the transcript to a file on exit (.json, .md, .yaml)")
}
