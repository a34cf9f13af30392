// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/secure-notes/models"
)

var (
	apiAgents    = []string{"curl/", "wget/", "python-requests", "go-http-client", "postmanruntime", "okhttp", "httpie", "resty"}
	mobileAgents = []string{"mobile", "android", "iphone", "ipad"}

	browsers = []struct{ token, name string }{
		{"edg/", "Edge"},
		{"opr/", "Opera"},
		{"firefox/", "Firefox"},
		{"chrome/", "Chrome"},
		{"safari/", "Safari"},
	}
	platforms = []struct{ token, name string }{
		{"android", "Android"},
		{"iphone", "iOS"},
		{"ipad", "iPadOS"},
		{"windows", "Windows"},
		{"mac os x", "macOS"},
		{"linux", "Linux"},
	}
)

// DescribeClient classifies a User-Agent header into a session type and a
// short human readable device name such as "Firefox on Linux".
func DescribeClient(userAgent string) (models.SessionType, string) {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return models.SessionAPI, "Unknown device"
	}

	for _, a := range apiAgents {
		if strings.Contains(ua, a) {
			name, _, _ := strings.Cut(userAgent, " ")
			return models.SessionAPI, name
		}
	}

	sessionType := models.SessionWeb
	for _, m := range mobileAgents {
		if strings.Contains(ua, m) {
			sessionType = models.SessionMobile
			break
		}
	}

	browser, platform := "Browser", "unknown platform"
	for _, b := range browsers {
		if strings.Contains(ua, b.token) {
			browser = b.name
			break
		}
	}
	for _, p := range platforms {
		if strings.Contains(ua, p.token) {
			platform = p.name
			break
		}
	}

	return sessionType, browser + " on " + platform
}
