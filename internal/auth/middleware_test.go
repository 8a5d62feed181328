package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bookstore-service/internal/domain"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) List(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (r *stubUserRepo) ReplaceRoles(ctx context.Context, userID int64, roles []string) error {
	return nil
}

func newGateApp(t *testing.T, tm *TokenManager, repo *stubUserRepo) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})

	gate := NewMiddleware(tm, repo)
	app.Use(gate.Handle)

	app.Get("/auth/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Get("/api/v1/partners", func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.SendString(principal.User.Email)
	})
	return app
}

func TestGateAllowsPublicRoutes(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGateApp(t, tm, &stubUserRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateRejectsMissingHeader(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGateApp(t, tm, &stubUserRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsNonBearerHeader(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGateApp(t, tm, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsInvalidToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGateApp(t, tm, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	alice := testUser("alice@example.com")
	app := newGateApp(t, tm, &stubUserRepo{byEmail: map[string]*domain.User{alice.Email: alice}})

	token, _, err := tm.Issue(alice.Email, nil, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRejectsUnknownSubject(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	app := newGateApp(t, tm, &stubUserRepo{})

	token, _, err := tm.IssueAccessToken(testUser("ghost@example.com"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateBindsPrincipal(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())
	alice := testUser("alice@example.com")
	app := newGateApp(t, tm, &stubUserRepo{byEmail: map[string]*domain.User{alice.Email: alice}})

	token, _, err := tm.IssueAccessToken(alice)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
