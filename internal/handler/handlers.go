// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers selected by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/handler/grpc"
	"github.com/MKhiriev/secure-notes/internal/handler/http"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates an HTTP handler when an HTTP address is configured and
// a gRPC health handler when a gRPC address is configured.
func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
