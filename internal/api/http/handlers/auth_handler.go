package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/queue-ticket-api/internal/api/dto"
	"github.com/spec-kit/queue-ticket-api/internal/auth"
	"github.com/spec-kit/queue-ticket-api/internal/service"
)

// AuthHandler exposes registration, login and token lifecycle endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusUnprocessableEntity).
			JSON(dto.AuthValidationFailure(map[string][]string{"body": {"The request body must be valid JSON."}}))
	}

	user, token, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(http.StatusUnprocessableEntity).
				JSON(dto.AuthValidationFailure(validationErr.Fields))
		}
		return c.Status(http.StatusInternalServerError).
			JSON(dto.AuthFailure("Could not create token", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthSuccess("User successfully registered", fiber.Map{
		"user":  user,
		"token": dto.NewTokenEnvelope(token, h.auth.TokenTTL()),
	}))
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.AuthEnvelope{Status: "error", Message: "Invalid credentials"})
	}

	token, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).
				JSON(dto.AuthEnvelope{Status: "error", Message: "Invalid credentials"})
		}
		return c.Status(http.StatusInternalServerError).
			JSON(dto.AuthFailure("Could not create token", err.Error()))
	}

	return c.JSON(dto.AuthSuccess("Login successful", dto.NewTokenEnvelope(token, h.auth.TokenTTL())))
}

// Logout handles POST /v1/auth/logout. The gate middleware has already
// verified the token; logout blacklists it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := auth.RawTokenFromContext(c)
	if !ok {
		return c.Status(http.StatusInternalServerError).
			JSON(dto.AuthFailure("Failed to logout, token invalid", "token missing from request context"))
	}

	if err := h.auth.Logout(c.Context(), token); err != nil {
		return c.Status(http.StatusInternalServerError).
			JSON(dto.AuthFailure("Failed to logout, token invalid", err.Error()))
	}

	return c.JSON(dto.AuthEnvelope{Status: "success", Message: "User logged out successfully"})
}

// Refresh handles POST /v1/auth/refresh. The presented token is blacklisted
// and a fresh one issued.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, ok := auth.RawTokenFromContext(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.AuthFailure("Failed to refresh token", "token missing from request context"))
	}

	newToken, err := h.auth.Refresh(c.Context(), token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.AuthFailure("Failed to refresh token", err.Error()))
	}

	return c.JSON(dto.AuthSuccess("Token refreshed", dto.NewTokenEnvelope(newToken, h.auth.TokenTTL())))
}

// Me handles GET /v1/auth/me, returning the profile of the token's owner.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.AuthFailure("Token is invalid or expired", "user missing from request context"))
	}

	return c.JSON(dto.AuthSuccess("User profile fetched", user))
}
