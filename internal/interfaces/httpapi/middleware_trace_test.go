package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/scouting-board/internal/platform/logging"
	"github.com/riskibarqy/scouting-board/internal/usecase"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz ", "/metrics"}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/markets", "/v1/formation/layouts", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/markets/{marketID}/formation", func(http.ResponseWriter, *http.Request) {})
	mux.HandleFunc("/docs/", func(http.ResponseWriter, *http.Request) {})

	cases := []struct {
		method, path, want string
	}{
		{method: http.MethodGet, path: "/v1/markets/mkt-1/formation", want: "GET /v1/markets/{marketID}/formation"},
		{method: http.MethodGet, path: "/docs/index.html", want: "GET /docs/"},
		{method: http.MethodGet, path: "/nope", want: "GET unmatched"},
	}
	for _, tc := range cases {
		got := routePattern(mux, httptest.NewRequest(tc.method, tc.path, nil))
		if got != tc.want {
			t.Fatalf("routePattern(%s %s) = %q, want %q", tc.method, tc.path, got, tc.want)
		}
	}
	if got := routePattern(nil, httptest.NewRequest(http.MethodPost, "/v1/markets", nil)); got != "POST /v1/markets" {
		t.Fatalf("unexpected fallback pattern: %q", got)
	}
}

func TestRequestLogLevel(t *testing.T) {
	if requestLogLevel(http.StatusOK) != logging.LevelInfo ||
		requestLogLevel(http.StatusConflict) != logging.LevelWarn ||
		requestLogLevel(http.StatusServiceUnavailable) != logging.LevelError {
		t.Fatalf("unexpected request log levels")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer ", wantErr: true},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/v1/markets", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		got, err := bearerToken(req)
		if tc.wantErr {
			if !errors.Is(err, usecase.ErrUnauthorized) {
				t.Fatalf("bearerToken(%q): expected unauthorized, got %v", tc.header, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("bearerToken(%q) = %q, %v", tc.header, got, err)
		}
	}
}
