package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Default model identifiers. The vision model must accept multi-part content.
const (
	DefaultTextModel   = "openai/gpt-oss-120b"
	DefaultVisionModel = "openai/gpt-4o-mini"

	// DefaultAPIURL is the same-origin proxy endpoint that injects the
	// upstream credential server-side.
	DefaultAPIURL = "http://localhost:8787/api/openrouter"
)

// Completer is the remote-completion contract the session depends on.
type Completer interface {
	Chat(ctx context.Context, messages []WireMessage, lang Language) (string, error)
	ChatVision(ctx context.Context, messages []WireMessage, userText, imageDataURI string, lang Language) (string, error)
}

// Client performs single best-effort round trips to the completion proxy.
// No retries, no streaming.
type Client struct {
	apiURL      string
	textModel   string
	visionModel string
	httpc       *http.Client
}

// NewClient creates a completion client. Empty arguments fall back to the
// package defaults.
func NewClient(apiURL, textModel, visionModel string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if visionModel == "" {
		visionModel = DefaultVisionModel
	}
	return &Client{
		apiURL:      apiURL,
		textModel:   textModel,
		visionModel: visionModel,
		httpc:       &http.Client{},
	}
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []WireMessage `json:"messages"`
}

// Chat sends a text completion request. The base bilingual system prompt is
// prepended here so every request pins the response language and plain-text
// style. Residual markup is stripped from the result.
func (c *Client) Chat(ctx context.Context, messages []WireMessage, lang Language) (string, error) {
	payload := completionRequest{
		Model:    c.textModel,
		Messages: append([]WireMessage{SystemMessage(SystemPrompt(lang))}, messages...),
	}
	content, err := c.post(ctx, payload)
	if err != nil {
		return "", err
	}
	return StripMarkup(content), nil
}

// ChatVision sends a photo-analysis request: the given context messages plus
// a final two-part user turn carrying the instruction text and the image as a
// data: URI.
func (c *Client) ChatVision(ctx context.Context, messages []WireMessage, userText, imageDataURI string, lang Language) (string, error) {
	msgs := make([]WireMessage, 0, len(messages)+2)
	msgs = append(msgs, SystemMessage(SystemPrompt(lang)))
	msgs = append(msgs, messages...)
	msgs = append(msgs, VisionUserMessage(userText, imageDataURI))

	content, err := c.post(ctx, completionRequest{Model: c.visionModel, Messages: msgs})
	if err != nil {
		return "", err
	}
	return StripMarkup(content), nil
}

// post performs the round trip and extracts the first choice's content.
func (c *Client) post(ctx context.Context, payload completionRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteServiceError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &MalformedResponseError{Reason: "invalid JSON: " + err.Error()}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &MalformedResponseError{Reason: "no message content in response"}
	}
	return parsed.Choices[0].Message.Content, nil
}
