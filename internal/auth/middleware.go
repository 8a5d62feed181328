package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

const principalKey = "auth_principal"

// Routes that must work without a prior session: registration, login,
// confirmation, password reset, health probes, and documentation.
var publicPrefixes = []string{
	"/auth/",
	"/health/",
	"/docs",
}

// Principal represents the authenticated caller for the rest of the request.
type Principal struct {
	User  *domain.User
	Roles []string
}

// Middleware is the per-request authentication gate. It validates bearer
// tokens before dispatch continues; every failure collapses to a generic
// 401 so callers cannot distinguish malformed, tampered, and expired tokens.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for every route outside the allow-list.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	if isPublicPath(c.Path()) {
		return c.Next()
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}
	tokenStr := parts[1]

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetByEmail(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("invalid token")
		}
		return apperrors.MapError(err)
	}

	if !m.tokens.IsValidFor(tokenStr, user) {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{User: user, Roles: claims.Roles})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
