package codes

import (
	"errors"
	"strconv"

	"tokenboard/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(err twirp.Error) int {
	if v := err.Meta(CustomCodeKey); v != "" {
		if code, e := strconv.Atoi(v); e == nil {
			return code
		}
	}

	switch err.Code() {
	case twirp.InvalidArgument:
		return int(core.ErrInvalidFilter)
	default:
		return twirp.ServerHTTPStatusFromErrorCode(err.Code())
	}
}

// Twirp classify err by the core error it wraps
func Twirp(err error) twirp.Error {
	var twerr twirp.Error
	if errors.As(err, &twerr) {
		return twerr
	}

	code := core.ErrUnknown
	errors.As(err, &code)

	var twcode twirp.ErrorCode
	switch {
	case code.IsInvalidInput():
		twcode = twirp.InvalidArgument
	case code == core.ErrNotSupported:
		twcode = twirp.FailedPrecondition
	default:
		twcode = twirp.Internal
	}

	return With(twirp.NewError(twcode, err.Error()), int(code)).(twirp.Error)
}
