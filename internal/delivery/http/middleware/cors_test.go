package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://pomagamukrainie.gov.pl/", " http://localhost:3000"}, next)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantExpose  string
		wantMethods string
		wantReached bool
	}{
		{
			name: "preflight allowed", method: http.MethodOptions, origin: "https://pomagamukrainie.gov.pl",
			wantStatus: http.StatusNoContent, wantOrigin: "https://pomagamukrainie.gov.pl",
			wantExpose: "X-Request-ID", wantMethods: corsAllowMethods,
		},
		{name: "preflight foreign", method: http.MethodOptions, origin: "https://evil.example", wantStatus: http.StatusNoContent},
		{
			name: "simple allowed", method: http.MethodGet, origin: "http://localhost:3000",
			wantStatus: http.StatusOK, wantOrigin: "http://localhost:3000", wantExpose: "X-Request-ID", wantReached: true,
		},
		{name: "simple foreign", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK, wantReached: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(tt.method, "/api/transport", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantExpose, rr.Header().Get("Access-Control-Expose-Headers"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Origin", rr.Header().Get("Vary"))
		})
	}
}

func TestCORS_ExposesEchoedRequestID(t *testing.T) {
	handler := CORS([]string{"http://localhost:3000"}, RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/transport", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set(RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, RequestIDHeader, rr.Header().Get("Access-Control-Expose-Headers"))
}
