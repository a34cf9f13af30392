// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a                       HTTP server address in format [host]:[port]
//	-grpc-address            gRPC server address in format [host]:[port]
//	-d                       database DSN
//	-db-driver               database driver (postgres|sqlite)
//	-c/-config               json file path with configs
//	-token-sign-key          token signing key
//	-token-issuer            token issuer name
//	-access-token-duration   access token lifetime (e.g. "1h")
//	-refresh-token-duration  refresh token lifetime (e.g. "24h")
//	-secret-key              at-rest secret sealing key
//	-log-level               zerolog level
//	-request-timeout         request timeout (e.g. "30s")
//	-lockout-threshold       failed logins before lockout
//	-lockout-cooloff         lockout duration (e.g. "1h")
//	-payment-secret-key      payment gateway HMAC key
//	-payment-product-code    payment gateway product code
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secure-notes", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var accessTokenDuration, refreshTokenDuration time.Duration
	var secretKey, logLevel string
	var requestTimeout time.Duration
	var lockoutThreshold int
	var lockoutCooloff time.Duration
	var paymentSecretKey, paymentProductCode string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 1h)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 24h)")
	fs.StringVar(&secretKey, "secret-key", "", "Secret sealing key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&lockoutThreshold, "lockout-threshold", 0, "Failed logins before lockout")
	fs.DurationVar(&lockoutCooloff, "lockout-cooloff", 0, "Lockout duration (e.g., 1h)")
	fs.StringVar(&paymentSecretKey, "payment-secret-key", "", "Payment gateway HMAC key")
	fs.StringVar(&paymentProductCode, "payment-product-code", "", "Payment gateway product code")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			SecretKey:            secretKey,
			LogLevel:             logLevel,
		},
		Security: Security{
			LockoutThreshold: lockoutThreshold,
			LockoutCooloff:   lockoutCooloff,
		},
		Payment: Payment{
			SecretKey:   paymentSecretKey,
			ProductCode: paymentProductCode,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
