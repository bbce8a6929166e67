// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"time"

	"scoring-api/models"
)

// Token computes the SHA-512 digest expected from a non-admin caller.
// Null account or login arrive here as "".
func Token(account, login, salt string) string {
	sum := sha512.Sum512([]byte(account + login + salt))
	return hex.EncodeToString(sum[:])
}

// AdminToken computes the admin digest for the hour containing now. The
// digest rotates hourly, which makes the admin credential short-lived.
func AdminToken(now time.Time, adminSalt string) string {
	sum := sha512.Sum512([]byte(now.UTC().Format("2006010215") + adminSalt))
	return hex.EncodeToString(sum[:])
}

// CheckAuth reports whether the envelope's token matches the expected digest.
func CheckAuth(req *models.MethodRequest, salt, adminSalt string) bool {
	var expected string
	if req.IsAdmin() {
		expected = AdminToken(time.Now(), adminSalt)
	} else {
		expected = Token(req.Account, req.Login, salt)
	}
	return hmac.Equal([]byte(expected), []byte(req.Token))
}
