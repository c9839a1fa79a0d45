package dashboard

import "errors"

var (
	// ErrNotConfigured is reported in production when no backing store is
	// configured; there is no mock fallback there.
	ErrNotConfigured = errors.New("dashboard backend not configured")

	// ErrSessionRequired is reported when the caller demands an
	// authenticated session and no token is present.
	ErrSessionRequired = errors.New("session required")
)
