// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/secure-notes/internal/adapter"
	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

// Gateway payload field names.
const (
	fieldAmount          = "amount"
	fieldTaxAmount       = "tax_amount"
	fieldServiceCharge   = "product_service_charge"
	fieldDeliveryCharge  = "product_delivery_charge"
	fieldTotalAmount     = "total_amount"
	fieldTransactionUUID = "transaction_uuid"
	fieldProductCode     = "product_code"
	fieldSuccessURL      = "success_url"
	fieldFailureURL      = "failure_url"
	fieldStatus          = "status"
	fieldTransactionCode = "transaction_code"
	fieldRefID           = "ref_id"
)

// initiateSignedFields is the field list signed on outgoing forms.
const initiateSignedFields = fieldTotalAmount + "," + fieldTransactionUUID + "," + fieldProductCode

// callbackRequiredFields must be covered by the signature of a callback.
// status and transaction_code decide the outcome, so a signature that only
// covers the outgoing form fields is not enough.
var callbackRequiredFields = []string{
	fieldTransactionUUID, fieldTotalAmount, fieldProductCode, fieldStatus, fieldTransactionCode,
}

// paymentService signs outgoing payment forms and turns verified callbacks
// into tier upgrades through SubscriptionService.
type paymentService struct {
	paymentRepository  store.PaymentRepository
	securityRepository store.SecurityRepository

	subscriptions SubscriptionService
	signer        crypto.PaymentSigner
	gateway       adapter.GatewayClient
	audit         AuditService
	ids           utils.IDGenerator

	cfg    config.Payment
	now    Clock
	logger *logger.Logger
}

// NewPaymentService builds a PaymentService. gateway may be nil when
// cfg.ConfirmWithGateway is off.
func NewPaymentService(
	storages *store.Storages,
	subscriptions SubscriptionService,
	signer crypto.PaymentSigner,
	gateway adapter.GatewayClient,
	audit AuditService,
	ids utils.IDGenerator,
	cfg config.Payment,
	now Clock,
	logger *logger.Logger,
) PaymentService {
	return &paymentService{
		paymentRepository:  storages.Payments,
		securityRepository: storages.Security,
		subscriptions:      subscriptions,
		signer:             signer,
		gateway:            gateway,
		audit:              audit,
		ids:                ids,
		cfg:                cfg,
		now:                now,
		logger:             logger,
	}
}

func (p *paymentService) Initiate(ctx context.Context, accountID int64, req models.InitiatePaymentRequest, meta models.ClientMeta) (models.PaymentForm, error) {
	log := logger.FromContext(ctx)

	plan, ok := policy.PlanByID(req.PlanID)
	if !ok {
		return models.PaymentForm{}, NewValidationError("plan_id", "unknown plan")
	}
	if req.Amount != plan.Price {
		return models.PaymentForm{}, NewValidationError("amount", fmt.Sprintf("amount must be %d for plan %s", plan.Price, plan.ID))
	}

	current := models.TierFree
	profile, err := p.securityRepository.GetProfile(ctx, accountID)
	switch {
	case err == nil:
		current = profile.Tier
	case !errors.Is(err, store.ErrProfileNotFound):
		return models.PaymentForm{}, fmt.Errorf("error loading security profile: %w", err)
	}
	if !policy.CanPurchase(current, plan) {
		return models.PaymentForm{}, &PolicyViolationError{
			Reasons: []string{fmt.Sprintf("plan %s is not an upgrade over tier %s", plan.ID, policy.EffectiveTier(current))},
		}
	}

	now := p.now()
	tx, err := p.paymentRepository.CreateTransaction(ctx, models.PaymentTransaction{
		ID:          p.ids.Generate(),
		AccountID:   accountID,
		OrderID:     req.OrderID,
		PlanID:      plan.ID,
		Tier:        plan.Tier,
		Amount:      plan.Price,
		Currency:    plan.Currency,
		Status:      models.TransactionPending,
		ProductCode: p.cfg.ProductCode,
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateOrder) {
			return models.PaymentForm{}, NewValidationError("order_id", "order id was already used")
		}
		log.Err(err).Str("func", "*paymentService.Initiate").Int64("account_id", accountID).Msg("failed to create transaction")
		return models.PaymentForm{}, fmt.Errorf("error creating transaction: %w", err)
	}

	amount := formatAmount(tx.Amount)
	fields := map[string]string{
		fieldAmount:                  amount,
		fieldTaxAmount:               "0",
		fieldServiceCharge:           "0",
		fieldDeliveryCharge:          "0",
		fieldTotalAmount:             amount,
		fieldTransactionUUID:         tx.ID,
		fieldProductCode:             tx.ProductCode,
		fieldSuccessURL:              p.cfg.SuccessURL,
		fieldFailureURL:              p.cfg.FailureURL,
		crypto.FieldSignedFieldNames: initiateSignedFields,
	}
	signature, err := p.signer.Sign(fields, initiateSignedFields)
	if err != nil {
		return models.PaymentForm{}, fmt.Errorf("error signing payment form: %w", err)
	}
	fields[crypto.FieldSignature] = signature

	record(ctx, p.audit, accountID, models.ActionPaymentInitiated, meta,
		fmt.Sprintf("Payment %s initiated for plan %s (%s %s)", tx.ID, plan.ID, amount, plan.Currency))
	log.Info().Str("transaction_id", tx.ID).Int64("account_id", accountID).Str("plan", plan.ID).Msg("payment initiated")

	return models.PaymentForm{
		TransactionID: tx.ID,
		GatewayURL:    p.cfg.FormURL,
		Fields:        fields,
		Signature:     signature,
	}, nil
}

// HandleCallback verifies a gateway callback and applies it.
//
// The signature must cover transaction_uuid, total_amount, product_code,
// status and transaction_code, and the outcome is decided by those signed
// values only. An unsigned ref id or order id is merely checked against
// them. The transaction must exist, match the signed product code and
// amount and still be PENDING. A signed non-COMPLETE status marks the
// transaction FAILED and is not an error.
func (p *paymentService) HandleCallback(ctx context.Context, req models.CallbackRequest, meta models.ClientMeta) (models.CallbackResult, error) {
	log := logger.FromContext(ctx)

	fields, err := callbackFields(req)
	if err != nil {
		log.Warn().Err(err).Msg("malformed payment callback")
		record(ctx, p.audit, 0, models.ActionPaymentFailed, meta, "Malformed payment callback")
		return models.CallbackResult{}, ErrSignatureInvalid
	}

	signedNames := fields[crypto.FieldSignedFieldNames]
	if !p.signer.Verify(fields) || !coversRequired(signedNames) || isOutgoingForm(signedNames) {
		log.Warn().Str("transaction_id", fields[fieldTransactionUUID]).Msg("payment callback signature rejected")
		record(ctx, p.audit, 0, models.ActionPaymentFailed, meta,
			fmt.Sprintf("Invalid signature on callback for transaction %q", fields[fieldTransactionUUID]))
		return models.CallbackResult{}, ErrSignatureInvalid
	}

	transactionID := fields[fieldTransactionUUID]
	tx, err := p.paymentRepository.FindTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			record(ctx, p.audit, 0, models.ActionPaymentFailed, meta,
				fmt.Sprintf("Callback for unknown transaction %q", transactionID))
			return models.CallbackResult{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
		}
		return models.CallbackResult{}, fmt.Errorf("error loading transaction: %w", err)
	}
	if req.OrderID != "" && req.OrderID != tx.OrderID {
		return models.CallbackResult{}, fmt.Errorf("%w: order %s", ErrTransactionNotFound, req.OrderID)
	}

	if fields[fieldProductCode] != tx.ProductCode || !amountMatches(fields[fieldTotalAmount], tx.Amount) {
		log.Warn().Str("transaction_id", tx.ID).Msg("signed callback does not match stored transaction")
		record(ctx, p.audit, tx.AccountID, models.ActionPaymentFailed, meta,
			fmt.Sprintf("Callback for %s does not match amount or product code", tx.ID))
		return models.CallbackResult{}, ErrSignatureInvalid
	}

	if tx.Status != models.TransactionPending {
		log.Warn().Str("transaction_id", tx.ID).Str("status", string(tx.Status)).Msg("callback for settled transaction")
		return models.CallbackResult{}, fmt.Errorf("%w: transaction is %s", ErrAlreadyApplied, tx.Status)
	}

	if status := fields[fieldStatus]; status != models.GatewayStatusComplete {
		return p.fail(ctx, tx, "gateway reported status "+status, meta)
	}

	refID := fields[fieldTransactionCode]
	if req.RefID != "" && req.RefID != refID {
		log.Warn().Str("transaction_id", tx.ID).Msg("callback ref id differs from signed transaction code")
		record(ctx, p.audit, tx.AccountID, models.ActionPaymentFailed, meta,
			fmt.Sprintf("Callback for %s carries an unsigned reference", tx.ID))
		return models.CallbackResult{}, ErrSignatureInvalid
	}

	if p.cfg.ConfirmWithGateway && p.gateway != nil {
		status, err := p.confirm(ctx, tx)
		if err != nil {
			return models.CallbackResult{}, err
		}
		switch status.Status {
		case models.GatewayStatusComplete:
			refID = firstNonEmpty(status.RefID, refID)
		case "PENDING", "AMBIENT":
			return models.CallbackResult{}, fmt.Errorf("%w: gateway still reports %s", ErrGateway, status.Status)
		default:
			return p.fail(ctx, tx, "gateway status lookup reported "+status.Status, meta)
		}
	}

	if refID == "" {
		return models.CallbackResult{}, NewValidationError(fieldRefID, "gateway reference is required")
	}

	if err = p.subscriptions.Apply(ctx, tx, refID, meta); err != nil {
		return models.CallbackResult{}, err
	}

	return models.CallbackResult{
		TransactionID: tx.ID,
		Status:        models.TransactionCompleted,
		Tier:          tx.Tier,
	}, nil
}

func (p *paymentService) fail(ctx context.Context, tx models.PaymentTransaction, reason string, meta models.ClientMeta) (models.CallbackResult, error) {
	if err := p.subscriptions.MarkFailed(ctx, tx, reason, meta); err != nil {
		return models.CallbackResult{}, err
	}
	return models.CallbackResult{
		TransactionID: tx.ID,
		Status:        models.TransactionFailed,
		Tier:          tx.Tier,
	}, nil
}

// confirm asks the gateway for the settled state. On error the transaction
// stays PENDING so a retried callback can still complete it.
func (p *paymentService) confirm(ctx context.Context, tx models.PaymentTransaction) (models.GatewayStatus, error) {
	if p.cfg.GatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.GatewayTimeout)
		defer cancel()
	}

	status, err := p.gateway.TransactionStatus(ctx, models.GatewayStatusQuery{
		ProductCode:   tx.ProductCode,
		TotalAmount:   formatAmount(tx.Amount),
		TransactionID: tx.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentService.confirm").Str("transaction_id", tx.ID).Msg("gateway status lookup failed")
		return models.GatewayStatus{}, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	return status, nil
}

// callbackFields extracts the flat field map of a callback. Data, when
// present, is the base64 JSON object the gateway appends to its redirect.
func callbackFields(req models.CallbackRequest) (map[string]string, error) {
	if req.Data == "" {
		if len(req.Fields) == 0 {
			return nil, errors.New("callback carries no payload")
		}
		return req.Fields, nil
	}

	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		if raw, err = base64.URLEncoding.DecodeString(req.Data); err != nil {
			return nil, fmt.Errorf("data is not base64: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload map[string]any
	if err = dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("data is not a json object: %w", err)
	}

	fields := make(map[string]string, len(payload))
	for k, v := range payload {
		switch x := v.(type) {
		case string:
			fields[k] = x
		case json.Number:
			fields[k] = x.String()
		case bool:
			fields[k] = fmt.Sprint(x)
		case nil:
			fields[k] = ""
		default:
			return nil, fmt.Errorf("field %q has unsupported type %T", k, v)
		}
	}
	return fields, nil
}

func splitFieldNames(signedFieldNames string) []string {
	names := strings.Split(signedFieldNames, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

func coversRequired(signedFieldNames string) bool {
	names := splitFieldNames(signedFieldNames)
	for _, required := range callbackRequiredFields {
		if !slices.Contains(names, required) {
			return false
		}
	}
	return true
}

// isOutgoingForm reports whether the field list is the one signed on
// initiated forms. Such a signature is handed to the client and never
// proves a settled payment.
func isOutgoingForm(signedFieldNames string) bool {
	return strings.Join(splitFieldNames(signedFieldNames), ",") == initiateSignedFields
}

// formatAmount renders paisa as the gateway's rupee string, e.g. 59900 as
// "599.00".
func formatAmount(paisa int64) string {
	return decimal.New(paisa, -2).StringFixed(2)
}

func amountMatches(signed string, paisa int64) bool {
	amount, err := decimal.NewFromString(strings.ReplaceAll(signed, ",", ""))
	if err != nil {
		return false
	}
	return amount.Equal(decimal.New(paisa, -2))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
