package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/vietfit/nutrichat/internal"
)

// appTitle identifies the calling application to the upstream service.
const appTitle = "Bilingual Fitness Web App"

// Server exposes the /api/openrouter completion proxy. It injects the
// upstream bearer credential server-side so it never reaches a client.
type Server struct {
	apiKey      string
	upstreamURL string
	httpc       *http.Client
	echo        *echo.Echo
}

// NewServer builds the proxy. An empty upstreamURL falls back to the default
// chat-completion endpoint.
func NewServer(apiKey, upstreamURL string) *Server {
	if upstreamURL == "" {
		upstreamURL = internal.DefaultUpstreamURL
	}
	s := &Server{
		apiKey:      apiKey,
		upstreamURL: upstreamURL,
		httpc:       &http.Client{},
	}

	e := echo.New()
	g := e.Group("/api")
	g.POST("/openrouter", s.handleCompletion)
	s.echo = e
	return s
}

// Handler returns the HTTP handler for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ready reports whether the upstream credential is configured.
func (s *Server) ready() error {
	if s.apiKey == "" {
		return &internal.ConfigurationError{Setting: "OPENROUTER_API_KEY", Reason: "not set"}
	}
	return nil
}

// handleCompletion validates the payload and forwards it upstream verbatim.
// Upstream errors are surfaced with their original status and raw body.
func (s *Server) handleCompletion(c *echo.Context) error {
	if err := s.ready(); err != nil {
		internal.LogError("rejecting completion request: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Missing OPENROUTER_API_KEY on server",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
	}

	var payload struct {
		Model    string            `json:"model"`
		Messages []json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Messages == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid payload: expected { messages: [...] }",
		})
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("HTTP-Referer", c.Request().Header.Get("Origin"))
	req.Header.Set("X-Title", appTitle)

	internal.LogDebug("proxying completion request, model=%s, messages=%d", payload.Model, len(payload.Messages))

	resp, err := s.httpc.Do(req)
	if err != nil {
		internal.LogError("upstream request failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		internal.LogWarn("upstream returned %d", resp.StatusCode)
		return c.JSON(resp.StatusCode, map[string]string{"error": string(raw)})
	}

	rw := c.Response()
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(raw)
	return nil
}
