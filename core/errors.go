package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrUpstreamUnavailable network failure, timeout or non-2xx from a platform
	ErrUpstreamUnavailable ErrorCode = 100100
	// ErrMalformedResponse upstream payload does not match the expected schema
	ErrMalformedResponse ErrorCode = 100101
	// ErrNotSupported platform does not offer the operation
	ErrNotSupported ErrorCode = 100102

	// ErrInvalidFilter malformed filter input
	ErrInvalidFilter ErrorCode = 100200
	// ErrUnsupportedPlatform no adapter registered for the platform
	ErrUnsupportedPlatform ErrorCode = 100201

	// ErrAggregationFailure unexpected internal failure, fatal to the call
	ErrAggregationFailure ErrorCode = 100300
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:             "unknown error",
	ErrUpstreamUnavailable: "upstream unavailable",
	ErrMalformedResponse:   "malformed upstream response",
	ErrNotSupported:        "operation not supported",
	ErrInvalidFilter:       "invalid filter",
	ErrUnsupportedPlatform: "unsupported platform",
	ErrAggregationFailure:  "aggregation failure",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.String()
}

// IsInvalidInput reports whether code belongs to the user-facing validation class
func (e ErrorCode) IsInvalidInput() bool {
	return e >= ErrInvalidFilter && e < ErrAggregationFailure
}
