// Package log builds the slog loggers used by bidscan.
//
// Announcement data is fetched from a procurement portal that needs a login,
// and the surrounding tooling keeps that login in saved browser state. None
// of it is needed by the analysis, but it can leak into logs through error
// values or debug attributes. SecureHandler masks such attributes:
//   - login and session keys (login_id, login_pw, storage_state, cookie)
//   - generic secrets (password, token, authorization)
//   - values that look like bearer tokens, JWTs, session cookies or a saved
//     browser storage state
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Warn("login refreshed", "login_id", id) // login_id=***REDACTED***
package log
