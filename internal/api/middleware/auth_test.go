package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/api/middleware"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func authEngine(cfg middleware.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/me", middleware.Auth(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.AuthSubject(c))
	})
	return engine
}

func TestAuth(t *testing.T) {
	key, publicPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)
	engine := authEngine(middleware.AuthConfig{JWTPublicKey: publicPEM})

	valid := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + sign(t, key, valid), http.StatusOK, "user-1"},
		{"lowercase scheme", "bearer " + sign(t, key, valid), http.StatusOK, "user-1"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"api key scheme", "ApiKey secret", http.StatusUnauthorized, ""},
		{"malformed header", "Bearer", http.StatusUnauthorized, ""},
		{"wrong key", "Bearer " + sign(t, otherKey, valid), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + sign(t, key, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}), http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + sign(t, key, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}), http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuth_NoPublicKey(t *testing.T) {
	key, _ := newKeyPair(t)
	engine := authEngine(middleware.AuthConfig{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, key, jwt.RegisteredClaims{Subject: "user-1"}))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
