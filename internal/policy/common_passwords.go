// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed common_passwords.txt
var commonPasswordsList string

var (
	commonPasswordsOnce sync.Once
	commonPasswords     map[string]struct{}
)

func loadCommonPasswords() {
	commonPasswords = make(map[string]struct{})
	sc := bufio.NewScanner(strings.NewReader(commonPasswordsList))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commonPasswords[strings.ToLower(line)] = struct{}{}
	}
}

// IsCommonPassword reports whether password appears on the embedded list of
// common passwords. The comparison ignores case and surrounding spaces.
func IsCommonPassword(password string) bool {
	commonPasswordsOnce.Do(loadCommonPasswords)
	_, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]
	return ok
}
