// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/secure-notes/models"
)

// SpecialCharacters is the set that satisfies the special-character rule.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Password is the credential policy.
type Password struct {
	MinLength    int
	HistoryCount int
	ExpiryDays   int
}

// Complexity rule messages.
const (
	msgTooShort      = "password must be at least %d characters long"
	msgNoUpper       = "password must contain at least one uppercase letter"
	msgNoLower       = "password must contain at least one lowercase letter"
	msgNoDigit       = "password must contain at least one digit"
	msgNoSpecial     = "password must contain at least one special character (" + SpecialCharacters + ")"
	msgCommon        = "password is too common"
	msgSimilarToUser = "password is too similar to the username"
)

type charClasses struct {
	upper, lower, digit, special bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			c.special = true
		}
	}
	return c
}

// Validate returns every complexity rule that password violates. An empty
// result means the password is acceptable. username may be empty.
func (p Password) Validate(password, username string) []string {
	var violations []string

	if utf8.RuneCountInString(password) < p.MinLength {
		violations = append(violations, fmt.Sprintf(msgTooShort, p.MinLength))
	}

	c := classify(password)
	if !c.upper {
		violations = append(violations, msgNoUpper)
	}
	if !c.lower {
		violations = append(violations, msgNoLower)
	}
	if !c.digit {
		violations = append(violations, msgNoDigit)
	}
	if !c.special {
		violations = append(violations, msgNoSpecial)
	}

	if IsCommonPassword(password) {
		violations = append(violations, msgCommon)
	}

	if u := strings.ToLower(strings.TrimSpace(username)); len(u) >= 3 &&
		strings.Contains(strings.ToLower(password), u) {
		violations = append(violations, msgSimilarToUser)
	}

	return violations
}

// ExpiresAt returns the instant the password set at p.PasswordChangedAt
// expires.
func (p Password) ExpiresAt(profile models.SecurityProfile) time.Time {
	return profile.PasswordChangedAt.Add(time.Duration(p.ExpiryDays) * 24 * time.Hour)
}

// IsExpired reports whether the password must be changed before the next
// login: it is older than ExpiryDays or a change was forced.
func (p Password) IsExpired(profile models.SecurityProfile, now time.Time) bool {
	return profile.ForcePasswordChange || now.After(p.ExpiresAt(profile))
}

// Strength levels.
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

// Strength scores a candidate password for live feedback. It does not
// replace Validate: Valid in the result is derived from Validate.
func (p Password) Strength(password string) models.PasswordStrength {
	score := 0
	var feedback []string

	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		score += 25
	case n >= 8:
		score += 15
		feedback = append(feedback, "Password should be at least 12 characters")
	default:
		feedback = append(feedback, "Password is too short (minimum 8 characters)")
	}

	c := classify(password)
	if c.upper {
		score += 20
	} else {
		feedback = append(feedback, "Add uppercase letters")
	}
	if c.lower {
		score += 20
	} else {
		feedback = append(feedback, "Add lowercase letters")
	}
	if c.digit {
		score += 20
	} else {
		feedback = append(feedback, "Add numbers")
	}
	if c.special {
		score += 15
	} else {
		feedback = append(feedback, "Add special characters")
	}

	level := StrengthWeak
	switch {
	case score >= 80:
		level = StrengthStrong
		feedback = []string{"Password is strong!"}
	case score >= 60:
		level = StrengthMedium
	}

	violations := p.Validate(password, "")
	return models.PasswordStrength{
		Valid:    len(violations) == 0,
		Strength: level,
		Score:    score,
		Feedback: feedback,
		Errors:   violations,
	}
}
