package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	const boardOrigin = "https://board.example.com"

	cases := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
		wantVary   bool
	}{
		{name: "configured origin", allowed: []string{boardOrigin}, method: http.MethodGet, origin: boardOrigin, wantStatus: http.StatusOK, wantAllow: boardOrigin, wantVary: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: boardOrigin, wantStatus: http.StatusNoContent, wantAllow: "*"},
		{name: "unknown origin", allowed: []string{boardOrigin}, method: http.MethodGet, origin: "https://evil.example.com", wantStatus: http.StatusOK},
		{name: "no origin header", allowed: []string{boardOrigin}, method: http.MethodOptions, wantStatus: http.StatusTeapot},
		{name: "blank entries ignored", allowed: []string{" ", ""}, method: http.MethodGet, origin: boardOrigin, wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusTeapot)
					return
				}
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tc.method, "/v1/markets/mkt-1/formation", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tc.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantAllow {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tc.wantAllow)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tc.wantVary {
				t.Fatalf("Vary Origin = %v, want %v", got, tc.wantVary)
			}
		})
	}
}
