package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload captures the identity data embedded when minting a JWT.
type TokenPayload struct {
	UserID   int64
	Email    string
	Nickname string
}

// Claims represents the typed JWT issued to clients. The token is the only
// session artifact: nothing is persisted server-side and revocation is not
// supported.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}
