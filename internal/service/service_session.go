// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sessionService issues stateless HS256 session tokens. Nothing is cached:
// every request verifies its token again.
type sessionService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *sessionService) Issue(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, fmt.Errorf("%w: empty user id", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify normalises every failure (bad signature, expiry, wrong issuer,
// missing subject) to ErrUnauthorized.
func (s *sessionService) Verify(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrUnauthorized
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return "", ErrUnauthorized
	}

	return token.UserID, nil
}

func (s *sessionService) TTL() time.Duration {
	return s.tokenDuration
}
