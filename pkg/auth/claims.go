package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionPayload captures the identity-provider claims this service reads.
type SessionPayload struct {
	Subject string
	Email   string
	Role    string
	JTI     string
}

// SessionClaims represents the signed session token presented by the browser.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
