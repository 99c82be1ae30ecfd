package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used either as a submitter bearer token or as the
// signed session cookie that scopes rejection reasons.
//
// UserID is a parsed copy of the "sub" claim. SessionID is the "jti" claim
// and is only set on session tokens.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	UserID    int64  `json:"-"`
	SessionID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
