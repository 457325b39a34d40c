package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_RejectsMissingKey(t *testing.T) {
	mw := AuthMiddleware("secret", nil, NewSuspiciousActivityDetector())
	rec := httptest.NewRecorder()

	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsWrongKey(t *testing.T) {
	mw := AuthMiddleware("secret", nil, NewSuspiciousActivityDetector())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil)
	req.Header.Set(HeaderAPIKey, "wrong")
	rec := httptest.NewRecorder()

	mw(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AcceptsCorrectKey(t *testing.T) {
	mw := AuthMiddleware("secret", nil, NewSuspiciousActivityDetector())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec := httptest.NewRecorder()

	mw(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_PublicPathsBypass(t *testing.T) {
	mw := AuthMiddleware("secret", nil, NewSuspiciousActivityDetector())
	for _, path := range PublicPaths {
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware_BlocksAboveLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := RateLimitMiddleware(nil, detector)

	var lastCode int
	for i := 0; i < RequestRateLimit+1; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bounties", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(rec, req)
		lastCode = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		require.Error(t, err)
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	RequestSizeLimitMiddleware(8)(inner).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExtractIP_DirectConnection(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.50:9999"
	req.Header.Set(HeaderForwardedFor, "1.2.3.4")

	// Untrusted peer: the forwarded header is ignored.
	assert.Equal(t, "192.168.1.50", extractIP(req, nil))
}

func TestExtractIP_TrustedProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:9999"
	req.Header.Set(HeaderForwardedFor, "1.2.3.4, 5.6.7.8")

	assert.Equal(t, "5.6.7.8", extractIP(req, []string{"10.0.0.2"}))
}
