package internal_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/vietfit/nutrichat/internal"
	"github.com/vietfit/nutrichat/testutil"
)

func TestLoadImageDataURI(t *testing.T) {
	path := testutil.WriteTempFile(t, "meal.png", testutil.PNGHeader)

	uri, err := internal.LoadImageDataURI(path)
	if err != nil {
		t.Fatalf("LoadImageDataURI() failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("data URI = %q, want image/png base64 prefix", uri)
	}

	encoded := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if string(decoded) != string(testutil.PNGHeader) {
		t.Error("decoded payload differs from the file contents")
	}
}

func TestLoadImageDataURI_MissingFile(t *testing.T) {
	_, err := internal.LoadImageDataURI("/nonexistent/meal.png")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var mediaErr *internal.MediaAccessError
	if !errors.As(err, &mediaErr) {
		t.Fatalf("error is %T, want *MediaAccessError", err)
	}
	if mediaErr.Path != "/nonexistent/meal.png" {
		t.Errorf("Path = %q, want the requested path", mediaErr.Path)
	}
}

func TestEncodeImageDataURI_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "plain text", data: []byte("this is not an image at all")},
		{name: "html", data: []byte("<!DOCTYPE html><html></html>")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := internal.EncodeImageDataURI("meal.bin", tt.data)
			var mediaErr *internal.MediaAccessError
			if !errors.As(err, &mediaErr) {
				t.Fatalf("error is %T, want *MediaAccessError", err)
			}
		})
	}
}
