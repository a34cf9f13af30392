// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		SecretKey            string   `json:"secret_key"`
		LogLevel             string   `json:"log_level"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Security struct {
		LockoutThreshold     int      `json:"lockout_threshold"`
		LockoutCooloff       Duration `json:"lockout_cooloff"`
		PasswordHistoryCount int      `json:"password_history_count"`
		PasswordExpiryDays   int      `json:"password_expiry_days"`
		PasswordMinLength    int      `json:"password_min_length"`
		TOTPIssuer           string   `json:"totp_issuer"`
		TOTPWindow           uint     `json:"totp_window"`
		SessionTTL           Duration `json:"session_ttl"`
		Argon2MemoryKB       uint32   `json:"argon2_memory_kb"`
		Argon2Time           uint32   `json:"argon2_time"`
		Argon2Threads        uint8    `json:"argon2_threads"`
	} `json:"security,omitempty"`

	Payment struct {
		SecretKey          string   `json:"secret_key"`
		ProductCode        string   `json:"product_code"`
		FormURL            string   `json:"form_url"`
		StatusURL          string   `json:"status_url"`
		SuccessURL         string   `json:"success_url"`
		FailureURL         string   `json:"failure_url"`
		ConfirmWithGateway bool     `json:"confirm_with_gateway"`
		GatewayTimeout     Duration `json:"gateway_timeout"`
		BillingCycle       Duration `json:"billing_cycle"`
		PendingTTL         Duration `json:"pending_ttl"`
	} `json:"payment,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval  Duration `json:"session_sweep_interval"`
		PaymentExpiryInterval Duration `json:"payment_expiry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         j.App.TokenSignKey,
			TokenIssuer:          j.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(j.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(j.App.RefreshTokenDuration),
			SecretKey:            j.App.SecretKey,
			LogLevel:             j.App.LogLevel,
			Version:              j.App.Version,
		},
		Security: Security{
			LockoutThreshold:     j.Security.LockoutThreshold,
			LockoutCooloff:       time.Duration(j.Security.LockoutCooloff),
			PasswordHistoryCount: j.Security.PasswordHistoryCount,
			PasswordExpiryDays:   j.Security.PasswordExpiryDays,
			PasswordMinLength:    j.Security.PasswordMinLength,
			TOTPIssuer:           j.Security.TOTPIssuer,
			TOTPWindow:           j.Security.TOTPWindow,
			SessionTTL:           time.Duration(j.Security.SessionTTL),
			Argon2MemoryKB:       j.Security.Argon2MemoryKB,
			Argon2Time:           j.Security.Argon2Time,
			Argon2Threads:        j.Security.Argon2Threads,
		},
		Payment: Payment{
			SecretKey:          j.Payment.SecretKey,
			ProductCode:        j.Payment.ProductCode,
			FormURL:            j.Payment.FormURL,
			StatusURL:          j.Payment.StatusURL,
			SuccessURL:         j.Payment.SuccessURL,
			FailureURL:         j.Payment.FailureURL,
			ConfirmWithGateway: j.Payment.ConfirmWithGateway,
			GatewayTimeout:     time.Duration(j.Payment.GatewayTimeout),
			BillingCycle:       time.Duration(j.Payment.BillingCycle),
			PendingTTL:         time.Duration(j.Payment.PendingTTL),
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval:  time.Duration(j.Workers.SessionSweepInterval),
			PaymentExpiryInterval: time.Duration(j.Workers.PaymentExpiryInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
