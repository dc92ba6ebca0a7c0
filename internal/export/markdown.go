package export

import (
	"fmt"
	"io"
	"time"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export writes the transcript as a readable Markdown document
func (e *MarkdownExporter) Export(t *Transcript, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Nutrition chat (%s)\n\n", t.Surface)
	_, _ = fmt.Fprintf(w, "**Language:** %s  \n", t.Language)
	_, _ = fmt.Fprintf(w, "**Mode:** %s  \n", t.Mode)
	_, _ = fmt.Fprintf(w, "**Exported:** %s  \n", t.ExportedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(t.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range t.Messages {
		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", ActorName(msg.Role), msg.Text)
		if i < len(t.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for Markdown
func (e *MarkdownExporter) Extension() string {
	return "md"
}
