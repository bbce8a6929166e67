// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies request tokens against salted SHA-512 digests.

# Non-Admin Tokens

The expected token is deterministic from the envelope and the shared salt:

	digest := auth.Token(account, login, salt)

Null account or login count as empty strings, so clients and server always
concatenate the same bytes.

# Admin Tokens

Admin callers use a digest of the current UTC hour plus the admin salt:

	digest := auth.AdminToken(time.Now(), adminSalt)

The digest changes every hour; an intercepted admin token expires by itself.

# Verification

	if !auth.CheckAuth(req, cfg.Salt, cfg.AdminSalt) {
		// 403, no detail
	}

Comparison is constant-time. Callers must never echo the expected digest back
to the client.
*/
package auth
