// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// VerifyPassword compares a submitted entry password against the
// configured one in constant time. Both sides are hashed first so the
// comparison does not leak length either.
func VerifyPassword(submitted, expected string) bool {
	a := sha256.Sum256([]byte(submitted))
	b := sha256.Sum256([]byte(expected))
	return hmac.Equal(a[:], b[:])
}

// NewSessionToken creates a random token handed out on successful
// login. 24 bytes = 192 bits of entropy, URL-safe base64 without
// padding.
func NewSessionToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
