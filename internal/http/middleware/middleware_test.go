package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobpilot/internal/config"

	"github.com/stretchr/testify/assert"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

func TestCORSPreflight(t *testing.T) {
	h := CORS(config.Config{CORSAllowedOrigins: []string{"http://app.test"}})(ok)

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs/1", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestCORSDisabled(t *testing.T) {
	h := CORS(config.Config{})(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNoListing(t *testing.T) {
	h := NoListing(ok)

	for path, want := range map[string]int{"/": http.StatusNotFound, "/a/": http.StatusNotFound, "/logo.png": http.StatusOK} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}
