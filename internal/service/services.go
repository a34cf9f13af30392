// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/secure-notes/internal/adapter"
	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/internal/utils"
)

type Services struct {
	AuthService            AuthService
	AccountSecurityService AccountSecurityService
	CredentialService      CredentialService
	TwoFactorService       TwoFactorService
	RBACService            RBACService
	AuditService           AuditService
	SessionService         SessionService
	SubscriptionService    SubscriptionService
	PaymentService         PaymentService
	AppInfoService         AppInfoService
}

type options struct {
	now Clock
	ids utils.IDGenerator
}

// Option customizes NewServices.
type Option func(*options)

// WithClock replaces the system clock, e.g. to advance time in tests.
func WithClock(now Clock) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the UUID generator used for session keys and
// transaction ids.
func WithIDGenerator(ids utils.IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// NewServices builds every service on top of storages. gateway may be nil
// when the outbound status lookup is disabled.
func NewServices(storages *store.Storages, gateway adapter.GatewayClient, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) (*Services, error) {
	o := options{now: SystemClock, ids: utils.NewUUIDGenerator()}
	for _, opt := range opts {
		opt(&o)
	}

	hasher, err := crypto.NewArgon2Hasher(crypto.Argon2Params{
		MemoryKB: cfg.Security.Argon2MemoryKB,
		Time:     cfg.Security.Argon2Time,
		Threads:  cfg.Security.Argon2Threads,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}
	sealer, err := crypto.NewSecretSealer(cfg.App.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("error creating secret sealer: %w", err)
	}
	otp := crypto.NewTOTP(cfg.Security.TOTPIssuer, cfg.Security.TOTPWindow)
	signer := crypto.NewPaymentSigner(cfg.Payment.SecretKey)

	audit := NewAuditService(storages.Audit, o.now, logger)
	accountSecurity := NewAccountSecurityService(storages.Security, cfg.Security, o.now, logger)
	credentials := NewCredentialService(storages, hasher, audit, cfg.Security, o.now, logger)
	twoFactor := NewTwoFactorService(storages, otp, sealer, audit, o.now, logger)
	sessions := NewSessionService(storages.Sessions, o.ids, cfg.Security.SessionTTL, audit, o.now, logger)
	rbac := NewRBACService(storages, audit, logger)
	subscriptions := NewSubscriptionService(storages, audit, cfg.Payment, o.now, logger)
	payments := NewPaymentService(storages, subscriptions, signer, gateway, audit, o.ids, cfg.Payment, o.now, logger)

	auth, err := NewAuthService(storages, credentials, accountSecurity, twoFactor, sessions, audit, cfg.App, o.now, logger)
	if err != nil {
		return nil, err
	}
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:            auth,
		AccountSecurityService: accountSecurity,
		CredentialService:      credentials,
		TwoFactorService:       twoFactor,
		RBACService:            rbac,
		AuditService:           audit,
		SessionService:         sessions,
		SubscriptionService:    subscriptions,
		PaymentService:         payments,
		AppInfoService:         appInfo,
	}, nil
}
