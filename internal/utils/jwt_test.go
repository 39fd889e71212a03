// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key-secret-key-secret-key"
	testUserID = "0190b6c4-0000-7000-8000-000000000001"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, testUserID, token.Subject)
	assert.NotEmpty(t, token.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	a, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	require.NoError(t, err)
	b, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.SignedString, b.SignedString)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", userID: testUserID, duration: time.Hour, key: testKey},
		{name: "empty user", issuer: testIssuer, duration: time.Hour, key: testKey},
		{name: "zero duration", issuer: testIssuer, userID: testUserID, key: testKey},
		{name: "empty key", issuer: testIssuer, userID: testUserID, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, issued.ID, parsed.ID)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	expiredString, err := expired.SignedString([]byte(testKey))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubjectString, err := noSubject.SignedString([]byte(testKey))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: testUserID,
	})
	noExpiryString, err := noExpiry.SignedString([]byte(testKey))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	hs512String, err := hs512.SignedString([]byte(testKey))
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noneString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "another-key", issuer: testIssuer},
		{name: "wrong issuer", token: valid.SignedString, key: testKey, issuer: "someone-else"},
		{name: "expired", token: expiredString, key: testKey, issuer: testIssuer},
		{name: "no subject", token: noSubjectString, key: testKey, issuer: testIssuer},
		{name: "no expiry", token: noExpiryString, key: testKey, issuer: testIssuer},
		{name: "other algorithm", token: hs512String, key: testKey, issuer: testIssuer},
		{name: "alg none", token: noneString, key: testKey, issuer: testIssuer},
		{name: "garbage", token: "not.a.jwt", key: testKey, issuer: testIssuer},
		{name: "empty", token: "", key: testKey, issuer: testIssuer},
		{name: "tampered", token: valid.SignedString + "x", key: testKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
