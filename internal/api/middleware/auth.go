package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// authenticator validates Authorization headers against a parsed AuthConfig
type authenticator struct {
	publicKey    *rsa.PublicKey
	publicKeyErr error
	apiKeys      [][]byte
	parser       *jwt.Parser
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})),
	}

	if cfg.JWTPublicKey == "" {
		a.publicKeyErr = errors.New("JWT public key not configured")
	} else if key, err := parseRSAPublicKey(cfg.JWTPublicKey); err != nil {
		a.publicKeyErr = fmt.Errorf("failed to parse RSA public key: %w", err)
	} else {
		a.publicKey = key
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}

	return a
}

// Authenticate validates an Authorization header of the form "Bearer <jwt>" or "ApiKey <key>"
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	return newAuthenticator(cfg).authenticate(authHeader)
}

func (a *authenticator) authenticate(authHeader string) AuthResult {
	if authHeader == "" {
		return AuthResult{Error: errors.New("missing Authorization header")}
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return AuthResult{Error: errors.New("invalid Authorization header format")}
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return AuthResult{Error: err}
		}
		return AuthResult{
			Success:     true,
			AuthType:    AUTH_TYPE_JWT,
			Claims:      claims,
			AuthSubject: claims.Subject,
		}

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return AuthResult{Error: err}
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_APIKEY}

	default:
		return AuthResult{Error: fmt.Errorf("unsupported authorization type: %s", scheme)}
	}
}

// Auth returns a gin middleware accepting either a JWT (Bearer) or an API key (ApiKey)
func Auth(cfg AuthConfig) gin.HandlerFunc {
	a := newAuthenticator(cfg)

	return func(c *gin.Context) {
		result := a.authenticate(c.GetHeader("Authorization"))
		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			abortWithError(c, apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error()))
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are checked by the parser.
func (a *authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKeyErr != nil {
		return nil, a.publicKeyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := a.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// validateAPIKey compares the key against every configured key in constant time
func (a *authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	candidate := []byte(apiKey)
	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare(candidate, key) == 1 {
			return nil
		}
	}

	return errors.New("invalid API key")
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
