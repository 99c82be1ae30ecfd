package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken signs an HS256 token whose subject is userID. A non-empty
// sessionID goes into jti; session cookies rely on it, bearer tokens leave
// it out.
func GenerateJWTToken(issuer string, userID int64, sessionID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	issuedAt := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID, SessionID: sessionID}, nil
}

// ValidateAndParseJWTToken accepts only HS256 tokens signed with
// tokenSignKey, issued by tokenIssuer, unexpired and carrying a numeric
// subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	keyFunc := func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil }

	token, err := jwt.ParseWithClaims(tokenString, &claims, keyFunc,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := subjectID(claims.Subject)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
		SessionID:        claims.ID,
	}, nil
}

func subjectID(sub string) (int64, error) {
	if sub == "" {
		return 0, errors.New("empty subject error")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	return id, nil
}
