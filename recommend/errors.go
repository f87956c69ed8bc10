package recommend

import "errors"

var (
	// ErrMissingContainer means the widget has no render target. It is logged, never shown.
	ErrMissingContainer = errors.New("recommendations container not found")

	// ErrEmptyResult means the endpoint reported success with zero recommendations.
	ErrEmptyResult = errors.New("no recommendations found for this movie")
)

// DefaultFetchError is the message used when a non-2xx body carries no string error field.
const DefaultFetchError = "Failed to fetch recommendations"

// RequestError is returned by Client.Fetch for transport failures, non-2xx
// statuses and undecodable bodies.
type RequestError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Message is safe to show to the user. It may be empty.
	Message string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Transport reports whether the request failed before any HTTP response arrived.
func (e *RequestError) Transport() bool {
	return e.StatusCode == 0
}
