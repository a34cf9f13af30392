// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType separates short-lived access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the JWT claim set issued by the service. The registered
// "sub" claim holds the account ID and "jti" holds the session key.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Type is "access" or "refresh".
	Type TokenType `json:"typ"`
}

// AccountID parses the subject claim.
func (c *TokenClaims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to account ID: %w", err)
	}
	return id, nil
}

// Token is a signed JWT together with its decoded claims.
type Token struct {
	SignedString string      `json:"-"`
	Claims       TokenClaims `json:"-"`

	AccountID  int64     `json:"-"`
	SessionKey string    `json:"-"`
	ExpiresAt  time.Time `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}

// TokenPair is returned after a successful login.
type TokenPair struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}
