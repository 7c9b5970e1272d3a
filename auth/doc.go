// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens and admin credential checks.

# Session Tokens

Session tokens are random UUIDs handed to kiosk clients:

	token := auth.GenerateSessionToken()

Clients echo the token in the X-Session-Token header on every vote. The
export pipeline treats the token as authoritative respondent identity;
votes without one fall back to the address-window heuristic.

# Admin Credentials

Admin routes use HTTP basic auth checked against the configured
username/password pair:

	err := auth.ValidateCredentials(user, pass, cfg.AdminUsername, cfg.AdminPassword)

Both comparisons are constant-time, so timing cannot leak how much of a
guess matched.
*/
package auth
