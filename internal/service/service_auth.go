// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	actionRegister = "register"
	actionLogin    = "login"
)

// idGenerator issues identifiers for new records.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
//
// Login passwords are hashed with bcrypt. bcrypt is deliberately slow, so
// every hash or compare first takes a slot from a weighted semaphore; a
// burst of logins queues instead of exhausting the CPU.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            idGenerator

	bcryptCost int
	slowHash   *semaphore.Weighted

	// dummyHash is compared against when the email is unknown so that
	// unknown and known emails take the same time.
	dummyHash []byte

	newSalt func() ([]byte, error)
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService. It fails only if the timing
// decoy hash cannot be computed with the configured cost.
func NewAuthService(userRepository store.UserRepository, ids idGenerator, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("go-pass-vault/decoy"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("preparing password hasher: %w", err)
	}

	concurrency := cfg.SlowHashConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		ids:            ids,
		bcryptCost:     cfg.BcryptCost,
		slowHash:       semaphore.NewWeighted(concurrency),
		dummyHash:      dummy,
		newSalt:        crypto.NewSalt,
		metrics:        m,
		logger:         logger,
	}, nil
}

// Register creates a new account.
//
// The email is trimmed and lower-cased before storage. A fresh random KDF
// salt is generated here and never changes afterwards; it is unrelated to
// the bcrypt salt embedded in PasswordHash.
//
// Returns:
//   - ErrInvalidDataProvided when the credentials fail validation.
//   - ErrEmailTaken when the email is already registered.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		a.metrics.RecordAuthAttempt(actionRegister, metrics.OutcomeInvalid)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hashPassword(ctx, creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, err
	}

	salt, err := a.newSalt()
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("salt generation failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        NormalizeEmail(creds.Email),
		PasswordHash: string(hash),
		KDFSalt:      salt,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			a.metrics.RecordAuthAttempt(actionRegister, metrics.OutcomeConflict)
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.metrics.RecordAuthAttempt(actionRegister, metrics.OutcomeSuccess)
	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing account. An unknown email still costs one
// bcrypt comparison.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword); err != nil {
		a.metrics.RecordAuthAttempt(actionLogin, metrics.OutcomeInvalid)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, NormalizeEmail(creds.Email))
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		_ = a.comparePassword(ctx, a.dummyHash, creds.Password)
		a.metrics.RecordAuthAttempt(actionLogin, metrics.OutcomeFailure)
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.comparePassword(ctx, []byte(user.PasswordHash), creds.Password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			a.metrics.RecordAuthAttempt(actionLogin, metrics.OutcomeFailure)
			log.Info().Str("user_id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	a.metrics.RecordAuthAttempt(actionLogin, metrics.OutcomeSuccess)
	return user, nil
}

func (a *authService) Identity(ctx context.Context, userID string) (models.UserIdentity, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.UserIdentity{}, ErrUnauthorized
		}
		return models.UserIdentity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Identity(), nil
}

func (a *authService) hashPassword(ctx context.Context, password string) ([]byte, error) {
	var hash []byte
	err := a.withSlowHashSlot(ctx, func() error {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

func (a *authService) comparePassword(ctx context.Context, hash []byte, password string) error {
	return a.withSlowHashSlot(ctx, func() error {
		return bcrypt.CompareHashAndPassword(hash, []byte(password))
	})
}

func (a *authService) withSlowHashSlot(ctx context.Context, fn func() error) error {
	start := time.Now()
	defer func() { a.metrics.ObserveSlowHash(time.Since(start)) }()

	if err := a.slowHash.Acquire(ctx, 1); err != nil {
		return err
	}
	defer a.slowHash.Release(1)

	return fn()
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
