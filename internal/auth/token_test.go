package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret",
		AccessTokenTTLHours:         24,
		ConfirmationTokenTTLMinutes: 15,
		PasswordResetTTLMinutes:     30,
		BcryptCost:                  4,
	}
}

func testUser(email string) *domain.User {
	return &domain.User{ID: 1, Name: "Test User", Email: email, Active: true}
}

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, exp, err := tm.Issue("alice@example.com", nil, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.False(t, claims.PasswordReset)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, _, err := tm.Issue("alice@example.com", nil, -time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMalformedToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseForeignToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "other-secret"
	other := NewTokenManager(otherCfg)

	token, _, err := other.Issue("alice@example.com", nil, time.Hour)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestParseTamperedPayload(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, _, err := tm.Issue("alice@example.com", nil, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	// Flip a single bit in each payload byte in turn; every mutation must
	// invalidate the token.
	for i := range payload {
		mutated := make([]byte, len(payload))
		copy(mutated, payload)
		mutated[i] ^= 0x01

		tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString(mutated) + "." + parts[2]
		if tampered == token {
			continue
		}
		_, err := tm.Parse(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken, "payload byte %d", i)
	}
}

func TestExtractSubject(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, _, err := tm.Issue("bob@example.com", nil, time.Hour)
	require.NoError(t, err)

	subject, err := tm.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", subject)

	_, err = tm.ExtractSubject("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsValidFor(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	alice := testUser("alice@example.com")
	bob := testUser("bob@example.com")

	token, _, err := tm.IssueAccessToken(alice)
	require.NoError(t, err)

	assert.True(t, tm.IsValidFor(token, alice))
	assert.False(t, tm.IsValidFor(token, bob))

	expired, _, err := tm.Issue(alice.Email, nil, -time.Minute)
	require.NoError(t, err)
	assert.False(t, tm.IsValidFor(expired, alice))
}

func TestAccessTokenCarriesRoles(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	user := testUser("alice@example.com")
	user.Roles = []string{"ADMIN", "CLERK"}

	token, _, err := tm.IssueAccessToken(user)
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "CLERK"}, claims.Roles)
}

func TestPasswordResetClaim(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	user := testUser("alice@example.com")

	resetToken, _, err := tm.IssuePasswordResetToken(user)
	require.NoError(t, err)
	assert.True(t, tm.IsPasswordResetToken(resetToken))

	accessToken, _, err := tm.IssueAccessToken(user)
	require.NoError(t, err)
	assert.False(t, tm.IsPasswordResetToken(accessToken))

	confirmToken, _, err := tm.IssueConfirmationToken(user)
	require.NoError(t, err)
	assert.False(t, tm.IsPasswordResetToken(confirmToken))
}

func TestTokenTTLsFollowConfig(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	user := testUser("alice@example.com")

	_, accessExp, err := tm.IssueAccessToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), accessExp, 5*time.Second)

	_, confirmExp, err := tm.IssueConfirmationToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), confirmExp, 5*time.Second)

	_, resetExp, err := tm.IssuePasswordResetToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), resetExp, 5*time.Second)
}
