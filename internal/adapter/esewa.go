// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

type esewaClient struct {
	client    *utils.HTTPClient
	statusURL string

	logger *logger.Logger
}

// NewEsewaClient returns a [GatewayClient] for the eSewa ePay v2 status API
// at cfg.StatusURL. Every lookup is bounded by cfg.GatewayTimeout.
func NewEsewaClient(cfg config.Payment, logger *logger.Logger) (GatewayClient, error) {
	statusURL, err := normalizeURL(cfg.StatusURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway status url: %w", err)
	}

	logger.Debug().Str("status_url", statusURL).Msg("creating payment gateway client")

	return &esewaClient{
		client:    utils.NewHTTPClient(cfg.GatewayTimeout),
		statusURL: statusURL,
		logger:    logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	return u.String(), nil
}

// statusResponse is the wire form of the status API. total_amount arrives
// as a JSON number.
type statusResponse struct {
	ProductCode   string          `json:"product_code"`
	TransactionID string          `json:"transaction_uuid"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	RefID         *string         `json:"ref_id"`
}

// TransactionStatus implements [GatewayClient] with
// GET <status_url>?product_code=..&total_amount=..&transaction_uuid=..
func (e *esewaClient) TransactionStatus(ctx context.Context, q models.GatewayStatusQuery) (models.GatewayStatus, error) {
	log := logger.FromContext(ctx)

	resp, err := e.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"product_code":     q.ProductCode,
			"total_amount":     q.TotalAmount,
			"transaction_uuid": q.TransactionID,
		}).
		Get(e.statusURL)
	if err != nil {
		log.Err(err).Str("func", "*esewaClient.TransactionStatus").Str("transaction_uuid", q.TransactionID).Msg("status request failed")
		return models.GatewayStatus{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*esewaClient.TransactionStatus").Int("status", resp.StatusCode()).Msg("gateway returned error")
		return models.GatewayStatus{}, err
	}

	var sr statusResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.GatewayStatus{}, fmt.Errorf("%w: decode status response: %w", ErrUnexpectedResponse, err)
	}
	if sr.TransactionID != q.TransactionID {
		return models.GatewayStatus{}, fmt.Errorf("%w: status for %q returned for %q", ErrUnexpectedResponse, sr.TransactionID, q.TransactionID)
	}

	status := models.GatewayStatus{
		ProductCode:   sr.ProductCode,
		TransactionID: sr.TransactionID,
		TotalAmount:   sr.TotalAmount.StringFixed(2),
		Status:        sr.Status,
	}
	if sr.RefID != nil {
		status.RefID = *sr.RefID
	}

	log.Debug().Str("transaction_uuid", q.TransactionID).Str("gateway_status", status.Status).Msg("gateway status received")
	return status, nil
}
