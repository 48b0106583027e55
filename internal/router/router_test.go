package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"probsolver-backend/internal/handlers"
	"probsolver-backend/internal/services"
)

type stubGenerator struct {
	panicOnce bool
	err       error
}

func (s *stubGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if s.panicOnce {
		s.panicOnce = false
		panic("provider client exploded")
	}
	if s.err != nil {
		return "", s.err
	}
	return prompt, nil
}

func newTestServer(gen *stubGenerator) http.Handler {
	chatHandler := handlers.NewChatHandler(services.DefaultPersonas(), gen, time.Second)
	return New(chatHandler, []string{"*"})
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Origin", "https://client.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rr.Body.String(), err)
	}
	return body
}

func TestRouter_Routes(t *testing.T) {
	h := newTestServer(&stubGenerator{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{"home", http.MethodGet, "/", "", http.StatusOK, "message", "ProbSolver AI Backend"},
		{"health", http.MethodGet, "/api/health", "", http.StatusOK, "status", "healthy"},
		{"chat", http.MethodPost, "/api/chat", `{"prompt":"2+2?","mode":"study","history":[]}`, http.StatusOK, "response", "2+2?"},
		{"chat missing prompt", http.MethodPost, "/api/chat", `{}`, http.StatusBadRequest, "error", "Prompt is required"},
		{"unknown route", http.MethodGet, "/api/unknown", "", http.StatusNotFound, "error", "Not found"},
		{"wrong method", http.MethodGet, "/api/chat", "", http.StatusMethodNotAllowed, "error", "Method not allowed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(h, tc.method, tc.path, tc.body)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("expected CORS header on every response, got %q", got)
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Errorf("expected X-Request-ID header")
			}
			if got := decodeBody(t, rr)[tc.wantKey]; got != tc.wantValue {
				t.Fatalf("expected %s=%q, got %q", tc.wantKey, tc.wantValue, got)
			}
		})
	}
}

func TestRouter_PreflightChat(t *testing.T) {
	h := newTestServer(&stubGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://client.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestRouter_HealthIgnoresProviderState(t *testing.T) {
	h := newTestServer(&stubGenerator{err: errors.New("provider down")})

	rr := serve(h, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK || decodeBody(t, rr)["status"] != "healthy" {
		t.Fatalf("health should not depend on the provider")
	}
}

func TestRouter_PanicRecoveredAndServingContinues(t *testing.T) {
	h := newTestServer(&stubGenerator{panicOnce: true})

	rr := serve(h, http.MethodPost, "/api/chat", `{"prompt":"first"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if got := decodeBody(t, rr)["error"]; got != "Internal server error" {
		t.Fatalf("unexpected error: %q", got)
	}

	rr = serve(h, http.MethodPost, "/api/chat", `{"prompt":"second"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d after panic, got %d", http.StatusOK, rr.Code)
	}
	if got := decodeBody(t, rr)["response"]; got != "second" {
		t.Fatalf("unexpected response: %q", got)
	}
}
