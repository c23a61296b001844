package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/queue-ticket-api/internal/auth"
	"github.com/spec-kit/queue-ticket-api/internal/config"
	"github.com/spec-kit/queue-ticket-api/internal/domain"
	"github.com/spec-kit/queue-ticket-api/internal/events"
	"github.com/spec-kit/queue-ticket-api/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so that login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries a field to messages map for 422 responses.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// RegisterInput describes a registration payload.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthService coordinates registration, login and token lifecycle flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	blacklist  auth.TokenBlacklist
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Blacklist  auth.TokenBlacklist
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		blacklist:  deps.Blacklist,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register validates the payload, creates the account and issues its first
// token. Validation failures come back as *ValidationError.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	fields := map[string][]string{}

	switch {
	case input.Name == "":
		fields["name"] = append(fields["name"], "The name field is required.")
	case len(input.Name) > 255:
		fields["name"] = append(fields["name"], "The name may not be greater than 255 characters.")
	}

	switch {
	case input.Email == "":
		fields["email"] = append(fields["email"], "The email field is required.")
	case !emailPattern.MatchString(input.Email):
		fields["email"] = append(fields["email"], "The email must be a valid email address.")
	default:
		if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
			fields["email"] = append(fields["email"], "The email has already been taken.")
		} else if err != pgx.ErrNoRows {
			return nil, "", err
		}
	}

	switch {
	case input.Password == "":
		fields["password"] = append(fields["password"], "The password field is required.")
	case len(input.Password) < 6:
		fields["password"] = append(fields["password"], "The password must be at least 6 characters.")
	case input.Password != input.PasswordConfirmation:
		fields["password"] = append(fields["password"], "The password confirmation does not match.")
	}

	if len(fields) > 0 {
		return nil, "", &ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{Email: user.Email})
	return user, token, nil
}

// Login authenticates against the stored credential and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout blacklists the presented token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.tokenMgr.ParseToken(tokenStr)
	if err != nil {
		return err
	}
	return s.blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// Refresh rotates the presented token: the old token is blacklisted and a
// fresh one with a full TTL is issued for the same user.
func (s *AuthService) Refresh(ctx context.Context, tokenStr string) (string, error) {
	claims, err := s.tokenMgr.ParseToken(tokenStr)
	if err != nil {
		return "", err
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return "", err
	}

	token, _, err := s.tokenMgr.GenerateToken(claims.UserID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ListUsers returns every registered account.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// TokenTTL exposes the configured token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenMgr.TTL()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
