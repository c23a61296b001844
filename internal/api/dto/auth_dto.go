package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenEnvelope is the standard bearer token response.
type TokenEnvelope struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewTokenEnvelope builds the token response. ExpiresIn is the full token
// lifetime in seconds.
func NewTokenEnvelope(token string, ttl time.Duration) TokenEnvelope {
	return TokenEnvelope{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}
}
