package toggl

import "errors"

var (
	// ErrMissingToken indicates no API token was configured.
	ErrMissingToken = errors.New("toggl api token not set")

	// ErrUnauthorized indicates Toggl rejected the API token.
	ErrUnauthorized = errors.New("toggl rejected the api token")

	// ErrUnavailable indicates the Toggl API is unreachable.
	ErrUnavailable = errors.New("toggl api unreachable")

	// ErrTimeout indicates the fetch exceeded the configured timeout.
	ErrTimeout = errors.New("toggl request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("toggl retry attempts exhausted")
)
