package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/dto"
	"github.com/spec-kit/bookstore-service/internal/service"
)

// AuthHandler exposes the public authentication endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	message, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: message})
}

// Authenticate handles POST /auth/authenticate.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.AuthenticateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	token, exp, err := h.auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// ConfirmAccount handles GET /auth/confirm-account?token=.
func (h *AuthHandler) ConfirmAccount(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fiber.NewError(http.StatusBadRequest, "token required")
	}

	message, err := h.auth.ConfirmEmail(c.Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: message})
}

// ForgotPassword handles POST /auth/forgot-password?email=. The response is
// identical whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	if err := h.auth.RequestPasswordReset(c.Context(), email); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "If the account exists, a password reset email has been sent"})
}

// ResetPassword handles POST /auth/reset-password?token=.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fiber.NewError(http.StatusBadRequest, "token required")
	}

	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "new_password required")
	}

	message, err := h.auth.ResetPassword(c.Context(), token, req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: message})
}
