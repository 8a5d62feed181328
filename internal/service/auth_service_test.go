package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bookstore-service/internal/auth"
	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/events"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

type memUserRepo struct {
	nextID  int64
	byEmail map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, byEmail: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	for email, existing := range r.byEmail {
		if existing.ID == user.ID {
			if email != user.Email {
				delete(r.byEmail, email)
			}
			r.byEmail[user.Email] = user
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memUserRepo) Delete(ctx context.Context, id int64) error {
	for email, existing := range r.byEmail {
		if existing.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, user := range r.byEmail {
		users = append(users, *user)
	}
	return users, nil
}

func (r *memUserRepo) ReplaceRoles(ctx context.Context, userID int64, roles []string) error {
	for _, user := range r.byEmail {
		if user.ID == userID {
			user.Roles = roles
			return nil
		}
	}
	return pgx.ErrNoRows
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) ofType(eventType events.EventType) []events.Event {
	var matched []events.Event
	for _, event := range d.published {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}

func newAuthFixture() (*AuthService, *memUserRepo, *recordingDispatcher) {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:                   "test-secret",
			AccessTokenTTLHours:         24,
			ConfirmationTokenTTLMinutes: 15,
			PasswordResetTTLMinutes:     30,
			BcryptCost:                  bcrypt.MinCost,
		},
	}
	repo := newMemUserRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:   repo,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	return svc, repo, dispatcher
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestRegisterCreatesInactiveAccount(t *testing.T) {
	svc, repo, dispatcher := newAuthFixture()
	ctx := context.Background()

	msg, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)
	assert.Contains(t, msg, "check your email")

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.NotEqual(t, "pw12345678", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "pw12345678"))

	registered := dispatcher.ofType(events.EventUserRegistered)
	require.Len(t, registered, 1)
	payload, ok := registered[0].Payload.(events.UserRegisteredPayload)
	require.True(t, ok)
	assert.Equal(t, "Alice", payload.Name)

	subject, err := svc.TokenManager().ExtractSubject(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Someone Else", "alice@example.com", "other-pass")
	assertDomainCode(t, err, "EMAIL_ALREADY_EXISTS")
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "pw12345678")
	assertDomainCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)

	// A wrong password must not reveal that the account is unconfirmed.
	_, _, err = svc.Authenticate(ctx, "alice@example.com", "wrong-password")
	assertDomainCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthenticateUnconfirmedAccount(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, "alice@example.com", "pw12345678")
	assertDomainCode(t, err, "ACCOUNT_DISABLED")
}

func TestConfirmEmailActivatesAccount(t *testing.T) {
	svc, repo, dispatcher := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)

	registered := dispatcher.ofType(events.EventUserRegistered)
	require.Len(t, registered, 1)
	token := registered[0].Payload.(events.UserRegisteredPayload).Token

	msg, err := svc.ConfirmEmail(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Account activated successfully", msg)

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, user.Active)
	assert.Len(t, dispatcher.ofType(events.EventAccountConfirmed), 1)

	// Confirming again succeeds without a second activation event.
	_, err = svc.ConfirmEmail(ctx, token)
	require.NoError(t, err)
	assert.Len(t, dispatcher.ofType(events.EventAccountConfirmed), 1)

	tokenStr, expiresAt, err := svc.Authenticate(ctx, "alice@example.com", "pw12345678")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.False(t, expiresAt.IsZero())
}

func TestConfirmEmailGarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.ConfirmEmail(context.Background(), "garbage")
	assertDomainCode(t, err, "INVALID_TOKEN")
}

func TestConfirmEmailUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	token, _, err := svc.TokenManager().IssueConfirmationToken(&domain.User{Email: "ghost@example.com"})
	require.NoError(t, err)

	_, err = svc.ConfirmEmail(context.Background(), token)
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	svc, _, dispatcher := newAuthFixture()

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, dispatcher.published)
}

func TestRequestPasswordResetEmitsToken(t *testing.T) {
	svc, _, dispatcher := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))

	requested := dispatcher.ofType(events.EventPasswordResetRequested)
	require.Len(t, requested, 1)
	payload, ok := requested[0].Payload.(events.PasswordResetRequestedPayload)
	require.True(t, ok)
	assert.True(t, svc.TokenManager().IsPasswordResetToken(payload.Token))
}

func TestResetPasswordRejectsAccessToken(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)
	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	accessToken, _, err := svc.TokenManager().IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ResetPassword(ctx, accessToken, "new-password")
	assertDomainCode(t, err, "INVALID_TOKEN")
}

func TestResetPasswordReplacesHash(t *testing.T) {
	svc, repo, dispatcher := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "pw12345678")
	require.NoError(t, err)
	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	user.Active = true

	require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))
	requested := dispatcher.ofType(events.EventPasswordResetRequested)
	require.Len(t, requested, 1)
	resetToken := requested[0].Payload.(events.PasswordResetRequestedPayload).Token

	msg, err := svc.ResetPassword(ctx, resetToken, "new-password")
	require.NoError(t, err)
	assert.Equal(t, "Password reset successfully", msg)
	assert.Len(t, dispatcher.ofType(events.EventPasswordChanged), 1)

	_, _, err = svc.Authenticate(ctx, "alice@example.com", "pw12345678")
	assertDomainCode(t, err, "INVALID_CREDENTIALS")

	tokenStr, _, err := svc.Authenticate(ctx, "alice@example.com", "new-password")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
}
