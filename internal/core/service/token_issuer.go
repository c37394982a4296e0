package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/securebase/user-api/internal/api/metrics"
	"github.com/securebase/user-api/internal/core/domain"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

// TokenIssuer mints and verifies HS256 JWTs. Access and refresh tokens are
// signed with distinct secrets and additionally carry a token_type claim, so
// neither secret mixups nor claim stripping can make one pass for the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	log           zerolog.Logger
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(accessSecret, refreshSecret string, log zerolog.Logger) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		log:           log,
	}
}

// IssueAccessToken signs a 1 hour access token for userID.
func (t *TokenIssuer) IssueAccessToken(userID string) (string, error) {
	return t.issue(userID, tokenKindAccess, accessTokenTTL, t.accessSecret)
}

// IssueRefreshToken signs a 7 day refresh token for userID.
func (t *TokenIssuer) IssueRefreshToken(userID string) (string, error) {
	return t.issue(userID, tokenKindRefresh, refreshTokenTTL, t.refreshSecret)
}

// VerifyAccessToken returns the subject user ID of a valid access token.
func (t *TokenIssuer) VerifyAccessToken(token string) (string, error) {
	return t.verify(token, tokenKindAccess, t.accessSecret)
}

// VerifyRefreshToken returns the subject user ID of a valid refresh token.
func (t *TokenIssuer) VerifyRefreshToken(token string) (string, error) {
	return t.verify(token, tokenKindRefresh, t.refreshSecret)
}

func (t *TokenIssuer) issue(userID, kind string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", err
	}
	metrics.TokensIssuedTotal.WithLabelValues(kind).Inc()
	return signed, nil
}

// verify collapses every failure mode (malformed token, signature mismatch,
// expiry, wrong token kind) into domain.ErrInvalidToken. The real cause is
// logged at debug level only, so HTTP responses cannot be used as an oracle.
func (t *TokenIssuer) verify(token, kind string, secret []byte) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		t.log.Debug().Err(err).Str("kind", kind).Msg("token verification failed")
		metrics.TokenRejectionsTotal.WithLabelValues(kind).Inc()
		return "", domain.ErrInvalidToken
	}
	if claims.TokenType != kind || claims.Subject == "" {
		t.log.Debug().Str("kind", kind).Str("token_type", claims.TokenType).Msg("token kind mismatch")
		metrics.TokenRejectionsTotal.WithLabelValues(kind).Inc()
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
