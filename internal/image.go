package internal

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// LoadImageDataURI reads a meal photo from disk and encodes it as a data: URI
// suitable for an image_url content part.
func LoadImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &MediaAccessError{Path: path, Err: err}
	}
	return EncodeImageDataURI(path, data)
}

// EncodeImageDataURI sniffs the content type of raw image bytes and encodes
// them as a data: URI. Non-image content is rejected.
func EncodeImageDataURI(path string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &MediaAccessError{Path: path, Err: fmt.Errorf("empty file")}
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", &MediaAccessError{Path: path, Err: fmt.Errorf("not an image: detected %s", mimeType)}
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
