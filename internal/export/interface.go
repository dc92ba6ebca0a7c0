package export

import (
	"fmt"
	"io"
	"time"

	"github.com/vietfit/nutrichat/internal"
)

// Transcript is a finished chat exchange ready for export.
type Transcript struct {
	Surface    string             `json:"surface" yaml:"surface"`
	Language   string             `json:"language" yaml:"language"`
	Mode       string             `json:"mode" yaml:"mode"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Messages   []internal.Message `json:"messages" yaml:"messages"`
}

// NewTranscript captures a session's history for export.
func NewTranscript(s *internal.Session) *Transcript {
	return &Transcript{
		Surface:    s.Surface(),
		Language:   string(s.Language()),
		Mode:       string(s.Mode()),
		ExportedAt: time.Now(),
		Messages:   s.Messages(),
	}
}

// Exporter defines the interface for all transcript formats
type Exporter interface {
	Export(t *Transcript, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, md, yaml)", format)
	}
}

// ActorName maps a message role to its display name.
func ActorName(r internal.Role) string {
	if r == internal.RoleUser {
		return "user"
	}
	return "assistant"
}
