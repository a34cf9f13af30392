// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls to third-party services.
// The embedded client exposes every resty method directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that gives up after timeout
// and sends JSON accept headers by default. A non-positive timeout leaves
// resty's default in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
