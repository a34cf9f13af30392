// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads accepted by the HTTP layer. Struct tags drive
// go-playground/validator checks in the validators package.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,max=128"`
	TOTPToken string `json:"totp_token,omitempty" validate:"omitempty,numeric,len=6"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,max=128"`
	NewPassword string `json:"new_password" validate:"required,max=128"`
}

type PasswordStrengthRequest struct {
	Password string `json:"password" validate:"required,max=128"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required,max=128"`
}

type TwoFactorSetupRequest struct {
	Enable *bool `json:"enable" validate:"required"`
}

type TwoFactorVerifyRequest struct {
	Token string `json:"token" validate:"required,numeric,len=6"`
}

type UploadCheckRequest struct {
	SizeMB float64 `json:"size_mb" validate:"gte=0"`
}

type InitiatePaymentRequest struct {
	PlanID  string `json:"plan_id" validate:"required,oneof=pro enterprise"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	OrderID string `json:"order_id" validate:"required,max=100"`
}

// CallbackRequest is the gateway callback. Data is the base64 JSON
// envelope sent by the gateway on redirect; Fields holds plain form or
// query fields when no envelope is present.
type CallbackRequest struct {
	RefID   string            `json:"ref_id,omitempty"`
	OrderID string            `json:"order_id,omitempty"`
	Data    string            `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
