// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/handler"
	myGRPC "github.com/MKhiriev/secure-notes/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/secure-notes/internal/handler/http"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/validators"
)

type recordingBackground struct {
	started, stopped bool
}

func (b *recordingBackground) Start(context.Context) { b.started = true }
func (b *recordingBackground) Stop()                 { b.stopped = true }

func freeAddress(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    freeAddress(t),
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}
	appInfo, err := service.NewAppInfoService(config.App{Version: "9.9.9"}, logger.Nop())
	require.NoError(t, err)
	services := &service.Services{AppInfoService: appInfo}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, validators.NewRequestValidator(), logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
	bg := &recordingBackground{}

	srv, err := NewServer(handlers, bg, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.True(t, bg.started)
	assert.True(t, bg.stopped)
}
