// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/secure-notes/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrWrongTokenType     = errors.New("unexpected token type")
	ErrNoSessionKey       = errors.New("token carries no session key")
)

// TokenParams describes a JWT to issue. The session key becomes the "jti"
// claim so that revoking the session invalidates every token issued for it.
type TokenParams struct {
	Issuer     string
	AccountID  int64
	SessionKey string
	Type       models.TokenType
	Duration   time.Duration
	SignKey    string

	// IssuedAt defaults to time.Now.
	IssuedAt time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT with the claims
// iss, sub (account id), jti (session key), iat, exp and typ.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "secure-notes", AccountID: 42, SessionKey: key,
//	    Type: models.AccessToken, Duration: time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration <= 0 || p.SignKey == "" || p.SessionKey == "" || p.Type == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := p.IssuedAt
	if now.IsZero() {
		now = time.Now()
	}
	expiresAt := now.Add(p.Duration)

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.AccountID, 10),
			ID:        p.SessionKey,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type: p.Type,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		Claims:       claims,
		AccountID:    p.AccountID,
		SessionKey:   p.SessionKey,
		ExpiresAt:    claims.ExpiresAt.Time.UTC(),
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, the HS256 algorithm, the
// issuer, the expiry (evaluated at now, or time.Now when now is zero) and the
// token type, then extracts the account id and session key.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, tokenType models.TokenType, now time.Time) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if !now.IsZero() {
		opts = append(opts, jwt.WithTimeFunc(func() time.Time { return now }))
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Type != tokenType {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrWrongTokenType, claims.Type, tokenType)
	}
	if claims.ID == "" {
		return models.Token{}, ErrNoSessionKey
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       *claims,
		AccountID:    accountID,
		SessionKey:   claims.ID,
		ExpiresAt:    claims.ExpiresAt.Time.UTC(),
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}
