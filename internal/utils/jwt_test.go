// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-notes/models"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func accessParams() TokenParams {
	return TokenParams{
		Issuer:     "test-issuer",
		AccountID:  123,
		SessionKey: "0195a7c0-session",
		Type:       models.AccessToken,
		Duration:   time.Hour,
		SignKey:    "secret-key",
		IssuedAt:   issuedAt,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.AccountID)
	assert.Equal(t, "0195a7c0-session", token.SessionKey)
	assert.Equal(t, issuedAt.Add(time.Hour), token.ExpiresAt)
	assert.Equal(t, "123", token.Claims.Subject)
	assert.Equal(t, "test-issuer", token.Claims.Issuer)
	assert.Equal(t, models.AccessToken, token.Claims.Type)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TokenParams)
	}{
		{"empty issuer", func(p *TokenParams) { p.Issuer = "" }},
		{"zero duration", func(p *TokenParams) { p.Duration = 0 }},
		{"empty key", func(p *TokenParams) { p.SignKey = "" }},
		{"no session", func(p *TokenParams) { p.SessionKey = "" }},
		{"no type", func(p *TokenParams) { p.Type = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := accessParams()
			tt.mutate(&p)
			_, err := GenerateJWTToken(p)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	gen, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, "secret-key", "test-issuer", models.AccessToken, issuedAt.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, int64(123), parsed.AccountID)
	assert.Equal(t, "0195a7c0-session", parsed.SessionKey)
	assert.Equal(t, gen.ExpiresAt, parsed.ExpiresAt)
	assert.Equal(t, time.UTC, parsed.ExpiresAt.Location())
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	gen, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)

	tests := []struct {
		name   string
		key    string
		issuer string
		typ    models.TokenType
		at     time.Time
		target error
	}{
		{name: "wrong key", key: "other", issuer: "test-issuer", typ: models.AccessToken, at: issuedAt, target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", key: "secret-key", issuer: "other", typ: models.AccessToken, at: issuedAt, target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", key: "secret-key", issuer: "test-issuer", typ: models.AccessToken, at: issuedAt.Add(2 * time.Hour), target: jwt.ErrTokenExpired},
		{name: "refresh expected", key: "secret-key", issuer: "test-issuer", typ: models.RefreshToken, at: issuedAt, target: ErrWrongTokenType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(gen.SignedString, tt.key, tt.issuer, tt.typ, tt.at)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			ID:        "s",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
		Type: models.AccessToken,
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(unsigned, "secret-key", "test-issuer", models.AccessToken, issuedAt)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", "secret-key", "test-issuer", models.AccessToken, issuedAt)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
