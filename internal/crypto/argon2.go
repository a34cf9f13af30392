// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonAlgorithm = "argon2id"
	argonSaltLen   = 16
	argonKeyLen    = 32
	minArgonMemory = 8 * 1024
)

// Argon2Params are the Argon2id cost parameters.
type Argon2Params struct {
	MemoryKB uint32
	Time     uint32
	Threads  uint8
}

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns a [PasswordHasher] with the given cost. Memory
// below 8 MiB or zero time/threads are rejected.
func NewArgon2Hasher(p Argon2Params) (PasswordHasher, error) {
	if p.MemoryKB < minArgonMemory || p.Time < 1 || p.Threads < 1 {
		return nil, fmt.Errorf("%w: m=%d t=%d p=%d", ErrInvalidArgonParams, p.MemoryKB, p.Time, p.Threads)
	}
	return &argon2Hasher{params: p}, nil
}

// Hash implements [PasswordHasher]. The result has the form
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func (a *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemoryKB, a.params.Threads, argonKeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonAlgorithm, argon2.Version,
		a.params.MemoryKB, a.params.Time, a.params.Threads,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The cost parameters are taken from
// encodedHash, so hashes created with older settings still verify.
func (a *argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	h, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), h.salt, h.params.Time, h.params.MemoryKB, h.params.Threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(computed, h.key) == 1, nil
}

type phcHash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func parsePHC(encoded string) (*phcHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argonAlgorithm {
		return nil, fmt.Errorf("%w: unsupported format", ErrInvalidHash)
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidHash, parts[2])
	}

	params, err := parseArgonParams(parts[3])
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < argonSaltLen {
		return nil, fmt.Errorf("%w: bad salt", ErrInvalidHash)
	}

	key, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, fmt.Errorf("%w: bad key", ErrInvalidHash)
	}

	return &phcHash{params: params, salt: salt, key: key}, nil
}

func parseArgonParams(s string) (Argon2Params, error) {
	var p Argon2Params

	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return p, fmt.Errorf("%w: bad parameter %q", ErrInvalidHash, pair)
		}

		switch k {
		case "m":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n < minArgonMemory {
				return p, fmt.Errorf("%w: bad memory", ErrInvalidHash)
			}
			p.MemoryKB = uint32(n)
		case "t":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n < 1 {
				return p, fmt.Errorf("%w: bad time", ErrInvalidHash)
			}
			p.Time = uint32(n)
		case "p":
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil || n < 1 {
				return p, fmt.Errorf("%w: bad parallelism", ErrInvalidHash)
			}
			p.Threads = uint8(n)
		default:
			return p, fmt.Errorf("%w: unknown parameter %q", ErrInvalidHash, k)
		}
	}

	if p.MemoryKB == 0 || p.Time == 0 || p.Threads == 0 {
		return p, fmt.Errorf("%w: expected m, t and p", ErrInvalidHash)
	}
	return p, nil
}
