package dto

import "time"

// TokenRequest represents login credentials.
// Any non-blank username/password pair is accepted; there is no real
// credential check behind this endpoint.
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents issued JWT token information
type TokenResponse struct {
	Token        string    `json:"token"`
	ExpiresAtUtc time.Time `json:"expiresAtUtc"`
}
