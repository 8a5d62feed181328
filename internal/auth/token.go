package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/domain"
)

// Token failures. Everything wraps ErrInvalidToken so callers that do not
// care about the reason can match on the one sentinel.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
)

const passwordResetClaim = "password_reset"

// TokenManager issues and validates the service's signed tokens. Tokens are
// stateless: validity is determined by signature and expiry alone, nothing
// is persisted. The secret is fixed at construction for the process lifetime.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	confirmTTL time.Duration
	resetTTL   time.Duration
}

// NewTokenManager builds a manager from auth configuration.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTokenTTL(),
		confirmTTL: cfg.ConfirmationTokenTTL(),
		resetTTL:   cfg.PasswordResetTTL(),
	}
}

// Claims describes the verified JWT payload.
type Claims struct {
	Roles         []string `json:"roles,omitempty"`
	PasswordReset bool     `json:"password_reset,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds a claim set {sub, iat, exp} merged with extraClaims, signs it
// with HMAC-SHA256 and returns the compact form plus its expiry.
func (tm *TokenManager) Issue(subject string, extraClaims map[string]any, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(expiresAt),
	}
	for k, v := range extraClaims {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssueAccessToken signs a login token carrying the user's role names.
func (tm *TokenManager) IssueAccessToken(user *domain.User) (string, time.Time, error) {
	var extra map[string]any
	if len(user.Roles) > 0 {
		extra = map[string]any{"roles": user.Roles}
	}
	return tm.Issue(user.Email, extra, tm.accessTTL)
}

// IssueConfirmationToken signs a short-lived email confirmation token.
func (tm *TokenManager) IssueConfirmationToken(user *domain.User) (string, time.Time, error) {
	return tm.Issue(user.Email, nil, tm.confirmTTL)
}

// IssuePasswordResetToken signs a reset token marked with the
// password_reset claim so it cannot double as a login token.
func (tm *TokenManager) IssuePasswordResetToken(user *domain.User) (string, time.Time, error) {
	return tm.Issue(user.Email, map[string]any{passwordResetClaim: true}, tm.resetTTL)
}

// Parse verifies structure, signing method, signature and expiry, in that
// order, and returns the claims. Claims are never returned from a token
// that failed verification.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractSubject returns the subject of a verified token.
func (tm *TokenManager) ExtractSubject(tokenStr string) (string, error) {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsValidFor reports whether the token verifies, has not expired, and was
// issued for the given user.
func (tm *TokenManager) IsValidFor(tokenStr string, user *domain.User) bool {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		return false
	}
	return claims.Subject == user.Email
}

// IsPasswordResetToken reports whether a verified token carries the
// password_reset claim.
func (tm *TokenManager) IsPasswordResetToken(tokenStr string) bool {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		return false
	}
	return claims.PasswordReset
}
