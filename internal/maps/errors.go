package maps

import "errors"

var (
	// ErrCredentialNotConfigured is returned when no mapping-service key is set.
	// It is fatal to the call and never retried.
	ErrCredentialNotConfigured = errors.New("mapping service credential not configured")

	// ErrUpstreamUnavailable is returned when the mapping service cannot be
	// reached or answers with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("mapping service unavailable")
)
