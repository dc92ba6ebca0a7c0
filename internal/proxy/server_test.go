package proxy

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vietfit/nutrichat/internal"
)

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/openrouter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body.Error
}

func TestServerReady(t *testing.T) {
	err := NewServer("", "").ready()
	if err == nil {
		t.Fatal("ready() = nil without a credential, want error")
	}
	var cfgErr *internal.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error is %T, want *internal.ConfigurationError", err)
	}
	if cfgErr.Setting != "OPENROUTER_API_KEY" {
		t.Errorf("Setting = %q, want \"OPENROUTER_API_KEY\"", cfgErr.Setting)
	}

	if err := NewServer("sk-test", "").ready(); err != nil {
		t.Errorf("ready() = %v with a credential, want nil", err)
	}
}

func TestHandleCompletion_MissingAPIKey(t *testing.T) {
	upstreamHit := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHit = true
	}))
	defer upstream.Close()

	srv := NewServer("", upstream.URL)
	rec := postJSON(t, srv.Handler(), `{"messages":[]}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := decodeError(t, rec); got != "Missing OPENROUTER_API_KEY on server" {
		t.Errorf("error = %q", got)
	}
	if upstreamHit {
		t.Error("upstream was contacted despite missing credential")
	}
}

func TestHandleCompletion_InvalidPayload(t *testing.T) {
	srv := NewServer("sk-test", "http://127.0.0.1:0")

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "nonsense"},
		{name: "no messages field", body: `{"model":"m"}`},
		{name: "empty object", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, srv.Handler(), tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := decodeError(t, rec); got != "Invalid payload: expected { messages: [...] }" {
				t.Errorf("error = %q", got)
			}
		})
	}
}

func TestHandleCompletion_ForwardsUpstream(t *testing.T) {
	var gotAuth, gotTitle, gotReferer, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	}))
	defer upstream.Close()

	srv := NewServer("sk-test", upstream.URL)
	payload := `{"model":"openai/gpt-oss-120b","messages":[{"role":"user","content":"hello"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/openrouter", strings.NewReader(payload))
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer credential", gotAuth)
	}
	if gotTitle != "Bilingual Fitness Web App" {
		t.Errorf("X-Title = %q", gotTitle)
	}
	if gotReferer != "http://localhost:5173" {
		t.Errorf("HTTP-Referer = %q, want the request Origin", gotReferer)
	}
	// Payload passes through verbatim.
	if gotBody != payload {
		t.Errorf("upstream body = %q, want %q", gotBody, payload)
	}
	if rec.Body.String() != `{"choices":[{"message":{"content":"hi"}}]}` {
		t.Errorf("response body = %q, want upstream body verbatim", rec.Body.String())
	}
}

func TestHandleCompletion_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer upstream.Close()

	srv := NewServer("sk-test", upstream.URL)
	rec := postJSON(t, srv.Handler(), `{"messages":[]}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if got := decodeError(t, rec); got != "rate limited" {
		t.Errorf("error = %q, want raw upstream body", got)
	}
}

func TestHandleCompletion_UpstreamUnreachable(t *testing.T) {
	srv := NewServer("sk-test", "http://127.0.0.1:1")
	rec := postJSON(t, srv.Handler(), `{"messages":[]}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	srv := NewServer("sk-test", "http://127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/api/openrouter", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
