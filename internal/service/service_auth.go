package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
	"github.com/MKhiriev/go-photo-gate/models"
)

// authService verifies submitter bearer tokens and issues the session
// tokens that scope rejection reasons to one browser.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer is the "iss" claim expected on bearer tokens and written
	// into session tokens.
	tokenIssuer string

	// sessionSignKey signs session tokens. It must differ from tokenSignKey
	// so that a session cookie can never pass as a bearer token.
	sessionSignKey string

	sessionDuration time.Duration

	sessionIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionSignKey:  cfg.SessionSignKey,
		sessionDuration: cfg.SessionDuration,
		sessionIDs:      utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// ParseToken validates a bearer token. Any validation failure is normalised
// to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) CreateSessionToken(ctx context.Context) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, 0, a.sessionIDs.Generate(), a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.sessionSignKey, a.tokenIssuer)
	if err != nil || token.SessionID == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
