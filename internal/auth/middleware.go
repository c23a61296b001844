package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/queue-ticket-api/internal/api/dto"
	"github.com/spec-kit/queue-ticket-api/internal/domain"
	"github.com/spec-kit/queue-ticket-api/internal/repository"
)

const (
	principalKey = "auth_principal"
	rawTokenKey  = "auth_raw_token"
)

// Middleware gates routes behind bearer token verification. It rejects
// missing, malformed, expired and blacklisted tokens before the handler runs
// and loads the owning user for handlers that need it.
type Middleware struct {
	tokens    *TokenManager
	blacklist TokenBlacklist
	users     repository.UserRepository
}

// NewMiddleware constructs the token gate.
func NewMiddleware(tokens *TokenManager, blacklist TokenBlacklist, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, blacklist: blacklist, users: users}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return reject(c, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return reject(c, "invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return reject(c, err.Error())
	}

	revoked, err := m.blacklist.IsRevoked(c.Context(), claims.ID)
	if err != nil {
		return reject(c, err.Error())
	}
	if revoked {
		return reject(c, "token has been blacklisted")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reject(c, "user not found")
		}
		return reject(c, err.Error())
	}

	c.Locals(principalKey, user)
	c.Locals(rawTokenKey, parts[1])
	return c.Next()
}

func reject(c *fiber.Ctx, diagnostic string) error {
	return c.Status(http.StatusUnauthorized).
		JSON(dto.AuthFailure("Token is invalid or expired", diagnostic))
}

// UserFromContext retrieves the authenticated user set by the gate.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(principalKey).(*domain.User)
	return user, ok
}

// RawTokenFromContext retrieves the bearer token the caller presented.
func RawTokenFromContext(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals(rawTokenKey).(string)
	return token, ok
}
