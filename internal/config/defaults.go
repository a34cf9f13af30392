// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults returns the built-in configuration merged below every other
// source. Secrets and the DSN have no defaults.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "secure-notes",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 24 * time.Hour,
			LogLevel:             "info",
			Version:              "dev",
		},
		Security: Security{
			LockoutThreshold:     5,
			LockoutCooloff:       time.Hour,
			PasswordHistoryCount: 5,
			PasswordExpiryDays:   90,
			PasswordMinLength:    12,
			TOTPIssuer:           "Secure Notes",
			TOTPWindow:           1,
			SessionTTL:           24 * time.Hour,
			Argon2MemoryKB:       64 * 1024,
			Argon2Time:           1,
			Argon2Threads:        4,
		},
		Payment: Payment{
			ProductCode:    "EPAYTEST",
			FormURL:        "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
			StatusURL:      "https://rc.esewa.com.np/api/epay/transaction/status/",
			GatewayTimeout: 10 * time.Second,
			BillingCycle:   30 * 24 * time.Hour,
			PendingTTL:     time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval:  5 * time.Minute,
			PaymentExpiryInterval: 10 * time.Minute,
		},
	}
}
