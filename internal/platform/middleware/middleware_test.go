package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsGETFromOtherOrigin(t *testing.T) {
	h := CORS()(okHandler())
	req := httptest.NewRequest(http.MethodGet, "http://localhost/hello", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	if exposed := resp.Header().Get("Access-Control-Expose-Headers"); !containsHeader(exposed, "X-Request-Id") {
		t.Fatalf("expected X-Request-Id to be exposed, got %q", exposed)
	}
}

func TestCORSHandlesPreflightWithoutCallingNext(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	req := httptest.NewRequest(http.MethodOptions, "http://localhost/hello", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "traceparent")
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if called {
		t.Fatal("expected preflight to be answered by the CORS middleware")
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
	}
	if allow := resp.Header().Get("Access-Control-Allow-Headers"); !containsHeader(allow, "traceparent") {
		t.Fatalf("expected traceparent to be allowed, got %q", allow)
	}
}

func TestCORSRejectsWriteMethodPreflight(t *testing.T) {
	h := CORS()(okHandler())
	req := httptest.NewRequest(http.MethodOptions, "http://localhost/hello", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for POST preflight, got %q", got)
	}
}

func TestVarySetsAccept(t *testing.T) {
	h := Vary()(okHandler())
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/hello", nil))

	if vary := resp.Header().Get("Vary"); vary != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", vary)
	}
}

func TestSecuritySetsHeaders(t *testing.T) {
	h := Security()(okHandler())
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/hello", nil))

	tests := []struct {
		header string
		want   string
	}{
		{"Cache-Control", "no-store"},
		{"Content-Security-Policy", "frame-ancestors 'none'"},
		{"Cross-Origin-Opener-Policy", "same-origin"},
		{"Cross-Origin-Resource-Policy", "same-origin"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
	}
	for _, tt := range tests {
		if got := resp.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}

func TestSecuritySkipsConfiguredPaths(t *testing.T) {
	h := Security("/api-docs")(okHandler())
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

	if got := resp.Header().Get("X-Frame-Options"); got != "" {
		t.Fatalf("expected no security headers on skipped path, got X-Frame-Options %q", got)
	}
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	var captured string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/hello", nil))

	if header := resp.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDHeaderHandling(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"valid external", "external-id", true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"newline", "bad\nid", false},
		{"non ascii", "idé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				captured = chimiddleware.GetReqID(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/hello", nil)
			req.Header[chimiddleware.RequestIDHeader] = []string{tt.header}

			h.ServeHTTP(httptest.NewRecorder(), req)

			if got := captured == tt.header; got != tt.reuse {
				t.Fatalf("reuse = %v, want %v (captured %q)", got, tt.reuse, captured)
			}
		})
	}
}
