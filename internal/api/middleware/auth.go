package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/partyqr/qr-router/internal/api/shared/errors"
	"github.com/partyqr/qr-router/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
}

// authenticator validates bearer tokens against a parsed public key
type authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	now       func() time.Time
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{now: time.Now}
	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
		return a
	}
	a.publicKey, a.keyErr = parseRSAPublicKey(cfg.JWTPublicKey)
	if a.keyErr != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", a.keyErr)
	}
	return a
}

// authenticate validates the Authorization header and returns the token claims
func (a *authenticator) authenticate(authHeader string) (*jwt.RegisteredClaims, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid Authorization header format")
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return nil, fmt.Errorf("unsupported authorization type: %s", parts[0])
	}

	claims, err := a.validateJWT(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// Auth returns a gin middleware that requires a valid RSA signed JWT.
// The token subject is the acting user id.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	a := newAuthenticator(cfg)

	return func(c *gin.Context) {
		claims, err := a.authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(JWT_CLAIMS_KEY), claims)
		c.Set(string(AUTH_SUBJECT_KEY), claims.Subject)
		logger.DebugCtx(c.Request.Context(), "JWT authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("subject", claims.Subject),
		)

		c.Next()
	}
}

// AuthSubject returns the user id set by Auth, empty when the request is unauthenticated
func AuthSubject(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// validateJWT validates a JWT token with RSA signature and returns claims
func (a *authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
