// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// FieldEmail checks the email syntax only.
	FieldEmail = "email"

	// FieldEmailLength checks the 3..160 length bound used at registration.
	FieldEmailLength = "email_length"

	// FieldPassword checks the 8..128 master password length.
	FieldPassword = "password"
)

const (
	MinEmailLength    = 3
	MaxEmailLength    = 160
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// CredentialsValidator validates register and login bodies.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials by value or pointer. Without fields it
// applies the registration rule set (FieldEmail, FieldEmailLength,
// FieldPassword).
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldEmailLength, FieldPassword}
	}

	email := strings.TrimSpace(c.Email)
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(email) {
				return ErrInvalidEmail
			}
		case FieldEmailLength:
			if n := utf8.RuneCountInString(email); n < MinEmailLength || n > MaxEmailLength {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if n := utf8.RuneCountInString(c.Password); n < MinPasswordLength || n > MaxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare addr-spec with a dotted domain. Display names
// ("Alice <a@b.c>") are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
