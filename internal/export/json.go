package export

import (
	"encoding/json"
	"io"
)

// JSONExporter exports transcripts as indented JSON
type JSONExporter struct{}

// Export writes the transcript as a single JSON document
func (e *JSONExporter) Export(t *Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Extension returns the file extension for JSON
func (e *JSONExporter) Extension() string {
	return "json"
}
