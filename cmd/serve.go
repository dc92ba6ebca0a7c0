package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/vietfit/nutrichat/internal"
	"github.com/vietfit/nutrichat/internal/proxy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the completion proxy server",
	Long: `Run the same-origin proxy that forwards chat-completion requests to the
upstream service. The OPENROUTER_API_KEY credential is injected server-side
and never exposed to clients. Without the credential every request fails with
a configuration error before any upstream call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}

		apiKey := cfg.APIKey()
		if apiKey == "" {
			internal.LogWarn("OPENROUTER_API_KEY is not set; all proxy requests will fail")
		}

		srv := proxy.NewServer(apiKey, cfg.UpstreamURL)
		internal.LogInfo("completion proxy listening on %s", cfg.Listen)

		httpServer := &http.Server{
			Addr:    cfg.Listen,
			Handler: srv.Handler(),
		}
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("proxy server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
