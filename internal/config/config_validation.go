// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const minSecretKeyLength = 16

// validate checks that the merged [StructuredConfig] is usable at startup.
// Each failure wraps the sentinel of its group.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if len(cfg.App.SecretKey) < minSecretKeyLength {
		return fmt.Errorf("%w: secret key must be at least %d characters", ErrInvalidAppConfigs, minSecretKeyLength)
	}
	if cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration < cfg.App.AccessTokenDuration {
		return fmt.Errorf("%w: refresh token must outlive access token", ErrInvalidAppConfigs)
	}

	s := cfg.Security
	if s.LockoutThreshold <= 0 || s.LockoutCooloff <= 0 {
		return fmt.Errorf("%w: lockout threshold and cooloff must be positive", ErrInvalidSecurityConfigs)
	}
	if s.PasswordHistoryCount <= 0 || s.PasswordExpiryDays <= 0 || s.PasswordMinLength <= 0 {
		return fmt.Errorf("%w: password policy values must be positive", ErrInvalidSecurityConfigs)
	}
	if s.SessionTTL <= 0 || s.TOTPIssuer == "" {
		return fmt.Errorf("%w: session ttl and totp issuer are required", ErrInvalidSecurityConfigs)
	}

	if cfg.Payment.SecretKey == "" || cfg.Payment.ProductCode == "" || cfg.Payment.FormURL == "" {
		return fmt.Errorf("%w: secret key, product code and form url are required", ErrInvalidPaymentConfigs)
	}
	if cfg.Payment.ConfirmWithGateway && (cfg.Payment.StatusURL == "" || cfg.Payment.GatewayTimeout <= 0) {
		return fmt.Errorf("%w: gateway confirmation needs status url and timeout", ErrInvalidPaymentConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one server address is required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SessionSweepInterval <= 0 || cfg.Workers.PaymentExpiryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
