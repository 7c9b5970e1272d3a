// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid admin credentials")

// GenerateSessionToken mints a fresh respondent session token. Clients
// echo the token on every vote so the export can group their answers
// without relying on the IP heuristic.
func GenerateSessionToken() string {
	return uuid.NewString()
}

// ValidateCredentials checks a basic-auth username/password pair against
// the configured admin credentials. Comparison is constant-time.
func ValidateCredentials(username, password, wantUsername, wantPassword string) error {
	userOK := hmac.Equal([]byte(username), []byte(wantUsername))
	passOK := hmac.Equal([]byte(password), []byte(wantPassword))
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
