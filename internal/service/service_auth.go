// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

// dummyPassword is hashed once at construction. Unknown usernames are
// verified against it so they cost the same as a wrong password.
const dummyPassword = "dummy-password-for-timing"

// authService is the concrete implementation of AuthService. It composes
// the lockout, credential, 2FA and session services and issues JWT pairs
// bound to a session key.
type authService struct {
	accountRepository  store.AccountRepository
	securityRepository store.SecurityRepository

	credentials     CredentialService
	accountSecurity AccountSecurityService
	twoFactor       TwoFactorService
	sessions        SessionService
	audit           AuditService

	tokenSignKey         string
	tokenIssuer          string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	dummyHash string

	now    Clock
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	storages *store.Storages,
	credentials CredentialService,
	accountSecurity AccountSecurityService,
	twoFactor TwoFactorService,
	sessions SessionService,
	audit AuditService,
	cfg config.App,
	now Clock,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := credentials.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &authService{
		accountRepository:    storages.Accounts,
		securityRepository:   storages.Security,
		credentials:          credentials,
		accountSecurity:      accountSecurity,
		twoFactor:            twoFactor,
		sessions:             sessions,
		audit:                audit,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		dummyHash:            dummyHash,
		now:                  now,
		logger:               logger,
	}, nil
}

// Register creates an account with a FREE security profile and seeds the
// password history with the initial hash.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, meta models.ClientMeta) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.credentials.ValidateComplexity(req.Password, req.Username); err != nil {
		var violation *PolicyViolationError
		if errors.As(err, &violation) {
			return models.Account{}, NewValidationError("password", strings.Join(violation.Reasons, "; "))
		}
		return models.Account{}, err
	}

	hash, err := a.credentials.Hash(req.Password)
	if err != nil {
		return models.Account{}, err
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.NewAccount{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		CreatedAt:    a.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return models.Account{}, NewValidationError("username", "username is already taken")
		case errors.Is(err, store.ErrEmailTaken):
			return models.Account{}, NewValidationError("email", "email is already registered")
		}
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	record(ctx, a.audit, account.ID, models.ActionRegister, meta, "Account registered")
	log.Info().Int64("account_id", account.ID).Msg("account registered")
	return account, nil
}

// Login checks, in order: account existence, lock, password, second
// factor and password expiry. Only then is a session opened and a token
// pair issued.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, meta models.ClientMeta) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			return models.LoginResult{}, fmt.Errorf("error loading account: %w", err)
		}
		a.credentials.Verify(req.Password, a.dummyHash)
		record(ctx, a.audit, 0, models.ActionFailedLogin, meta, "Failed login attempt for username: "+req.Username)
		return models.LoginResult{}, ErrAuthenticationFailure
	}

	locked, until, err := a.accountSecurity.IsLocked(ctx, account.ID)
	if err != nil {
		return models.LoginResult{}, err
	}
	if locked {
		record(ctx, a.audit, account.ID, models.ActionAccessDenied, meta, "Account is locked")
		return models.LoginResult{}, &LockedError{Until: until}
	}

	if !a.credentials.Verify(req.Password, account.PasswordHash) {
		return models.LoginResult{}, a.failLogin(ctx, account.ID, meta, "Invalid password")
	}

	profile, err := a.securityRepository.GetProfile(ctx, account.ID)
	if err != nil {
		return models.LoginResult{}, notFoundOr(err, "error loading security profile")
	}

	if profile.TOTPEnabled {
		if req.TOTPToken == "" {
			return models.LoginResult{}, ErrTwoFactorRequired
		}
		ok, err := a.twoFactor.VerifyLogin(ctx, profile, req.TOTPToken)
		if err != nil {
			return models.LoginResult{}, err
		}
		if !ok {
			return models.LoginResult{}, a.failLogin(ctx, account.ID, meta, "Invalid 2FA token")
		}
	}

	if a.credentials.IsExpired(profile) {
		log.Info().Int64("account_id", account.ID).Msg("login refused, password expired")
		return models.LoginResult{}, ErrPasswordExpired
	}

	if err = a.accountSecurity.RecordSuccess(ctx, account.ID, meta); err != nil {
		return models.LoginResult{}, err
	}

	session, err := a.sessions.Create(ctx, account.ID, meta)
	if err != nil {
		return models.LoginResult{}, err
	}

	tokens, err := a.issueTokens(account.ID, session.Key)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("account_id", account.ID).Msg("token generation failed")
		return models.LoginResult{}, err
	}

	record(ctx, a.audit, account.ID, models.ActionLogin, meta, "Successful login")
	log.Info().Int64("account_id", account.ID).Str("session_type", string(session.Type)).Msg("login succeeded")

	return models.LoginResult{Account: account, Tier: profile.Tier, Tokens: tokens}, nil
}

// failLogin counts a failed attempt and audits it. A failure to count is
// logged; the caller still sees ErrAuthenticationFailure.
func (a *authService) failLogin(ctx context.Context, accountID int64, meta models.ClientMeta, details string) error {
	state, err := a.accountSecurity.RecordFailedAttempt(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("failed attempt was not counted")
	} else if state.LockedUntil != nil {
		details = fmt.Sprintf("%s, account locked until %s", details, state.LockedUntil.UTC().Format(time.RFC3339))
	}

	record(ctx, a.audit, accountID, models.ActionFailedLogin, meta, details)
	return ErrAuthenticationFailure
}

func (a *authService) Refresh(ctx context.Context, refreshToken string, meta models.ClientMeta) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.RefreshToken, a.now())
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if _, err = a.sessions.Validate(ctx, token.AccountID, token.SessionKey); err != nil {
		return models.TokenPair{}, err
	}

	tokens, err := a.issueTokens(token.AccountID, token.SessionKey)
	if err != nil {
		return models.TokenPair{}, err
	}

	record(ctx, a.audit, token.AccountID, models.ActionTokenRefreshed, meta, "Token refreshed")
	return tokens, nil
}

func (a *authService) Logout(ctx context.Context, accountID int64, sessionKey string, meta models.ClientMeta) error {
	if err := a.sessions.End(ctx, accountID, sessionKey); err != nil {
		return err
	}

	record(ctx, a.audit, accountID, models.ActionLogout, meta, "Logged out")
	return nil
}

func (a *authService) Me(ctx context.Context, accountID int64) (models.Profile, error) {
	account, err := a.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.Profile{}, notFoundOr(err, "error loading account")
	}
	profile, err := a.securityRepository.GetProfile(ctx, accountID)
	if err != nil {
		return models.Profile{}, notFoundOr(err, "error loading security profile")
	}

	return models.Profile{
		Account:             account,
		Tier:                profile.Tier,
		TOTPEnabled:         profile.TOTPEnabled,
		PasswordChangedAt:   profile.PasswordChangedAt,
		PasswordExpiresAt:   a.credentials.ExpiresAt(profile),
		ForcePasswordChange: profile.ForcePasswordChange,
		LastLoginIP:         profile.LastLoginIP,
		LockedUntil:         profile.LockedUntil,
	}, nil
}

// DeleteAccount removes the account after re-checking its password. The
// audit event is written first; the store anonymizes it on deletion.
func (a *authService) DeleteAccount(ctx context.Context, accountID int64, password string, meta models.ClientMeta) error {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return notFoundOr(err, "error loading account")
	}

	if !a.credentials.Verify(password, account.PasswordHash) {
		record(ctx, a.audit, accountID, models.ActionFailedLogin, meta, "Wrong password on account deletion")
		return ErrAuthenticationFailure
	}

	record(ctx, a.audit, accountID, models.ActionAccountDeleted, meta, "Account deleted: "+account.Username)

	if err = a.accountRepository.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*authService.DeleteAccount").Int64("account_id", accountID).Msg("account deletion failed")
		return fmt.Errorf("error deleting account: %w", err)
	}

	log.Info().Int64("account_id", accountID).Msg("account deleted")
	return nil
}

func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.AccessToken, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if _, err = a.sessions.Validate(ctx, token.AccountID, token.SessionKey); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return models.Token{}, err
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

func (a *authService) issueTokens(accountID int64, sessionKey string) (models.TokenPair, error) {
	now := a.now()

	access, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:     a.tokenIssuer,
		AccountID:  accountID,
		SessionKey: sessionKey,
		Type:       models.AccessToken,
		Duration:   a.accessTokenDuration,
		SignKey:    a.tokenSignKey,
		IssuedAt:   now,
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error generating access token: %w", err)
	}

	refresh, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:     a.tokenIssuer,
		AccountID:  accountID,
		SessionKey: sessionKey,
		Type:       models.RefreshToken,
		Duration:   a.refreshTokenDuration,
		SignKey:    a.tokenSignKey,
		IssuedAt:   now,
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error generating refresh token: %w", err)
	}

	return models.TokenPair{
		Access:           access.SignedString,
		Refresh:          refresh.SignedString,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}
