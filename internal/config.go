package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the CLI and the proxy server.
type Config struct {
	Listen           string `yaml:"listen"`
	UpstreamURL      string `yaml:"upstream_url"`
	APIURL           string `yaml:"api_url"`
	TextModel        string `yaml:"text_model"`
	VisionModel      string `yaml:"vision_model"`
	Language         string `yaml:"language"`
	UsageLimit       int    `yaml:"usage_limit"`
	SummaryThreshold int    `yaml:"summary_threshold"`
	StatePath        string `yaml:"state_path"`
}

// DefaultUpstreamURL is the upstream chat-completion endpoint the proxy
// forwards to.
const DefaultUpstreamURL = "https://openrouter.ai/api/v1/chat/completions"

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Listen:           ":8787",
		UpstreamURL:      DefaultUpstreamURL,
		APIURL:           DefaultAPIURL,
		TextModel:        DefaultTextModel,
		VisionModel:      DefaultVisionModel,
		Language:         string(LanguageEN),
		UsageLimit:       DefaultUsageLimit,
		SummaryThreshold: DefaultSummaryThreshold,
		StatePath:        defaultStatePath(),
	}
}

// LoadConfig reads the YAML config at path on top of the defaults. An empty
// path uses ~/.nutrichat/config.yaml; a missing file just yields the
// defaults. A .env file in the working directory is loaded as a side effect
// so OPENROUTER_API_KEY can live next to the binary during development.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path == "" {
		path = filepath.Join(configDir(), "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// APIKey returns the server-side upstream credential. It is never written to
// the config file.
func (c Config) APIKey() string {
	return os.Getenv("OPENROUTER_API_KEY")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".nutrichat")
}

func defaultStatePath() string {
	return filepath.Join(configDir(), "state.db")
}
