package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := RateLimitMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != RateLimitMaxRequests+1 {
		t.Errorf("expected count %d, got %d", RateLimitMaxRequests+1, count)
	}

	// Health checks are never throttled
	health := httptest.NewRequest("GET", "/healthz", nil)
	health.RemoteAddr = ip + ":1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, health)
	if rec.Code != http.StatusOK {
		t.Errorf("expected health check to pass, got %d", rec.Code)
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector()
	detector.limit = 2
	detector.lastResetTime = now
	detector.now = func() time.Time { return now }

	if !detector.RecordRequest("10.0.0.1") || !detector.RecordRequest("10.0.0.1") {
		t.Fatal("requests within the limit should pass")
	}
	if detector.RecordRequest("10.0.0.1") {
		t.Fatal("request over the limit should be blocked")
	}
	if !detector.RecordRequest("10.0.0.2") {
		t.Fatal("limits are tracked per IP")
	}

	now = now.Add(RateLimitWindow + time.Second)
	if !detector.RecordRequest("10.0.0.1") {
		t.Error("counts should reset after the window")
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{"direct connection", "203.0.113.7:5555", "", nil, "203.0.113.7"},
		{"untrusted forwarded header ignored", "203.0.113.7:5555", "198.51.100.1", nil, "203.0.113.7"},
		{"trusted proxy uses rightmost hop", "10.0.0.2:443", "198.51.100.1, 192.0.2.9", []string{"10.0.0.2"}, "192.0.2.9"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}
			if got := extractIP(req, tt.trustedProxies); got != tt.want {
				t.Errorf("extractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
