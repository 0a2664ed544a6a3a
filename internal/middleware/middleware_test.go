package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_Allow(t *testing.T) {
	// A near-zero rate keeps the bucket from refilling during the test.
	rl := NewRateLimiter(0.001, 2)

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("Expected the first two requests to pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Expected the third request to be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("Expected a different client to have its own bucket")
	}
}

func TestClientKey(t *testing.T) {
	tests := map[string]string{
		"10.0.0.1:52311": "10.0.0.1",
		"[::1]:8080":     "::1",
		"pipe":           "pipe",
		"":               "",
	}
	for in, want := range tests {
		if got := clientKey(in); got != want {
			t.Errorf("clientKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"wildcard", []string{"*"}, http.MethodPost, "https://a.example", "*", http.StatusTeapot},
		{"listed origin", []string{"https://a.example"}, http.MethodPost, "https://a.example", "https://a.example", http.StatusTeapot},
		{"unlisted origin", []string{"https://a.example"}, http.MethodPost, "https://b.example", "", http.StatusTeapot},
		{"preflight", []string{"*"}, http.MethodOptions, "https://a.example", "*", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/tippool.v1.TipService/ListShifts", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Expected allow-origin %q, got %q", tt.wantOrigin, got)
			}
		})
	}
}
