package domain

import "errors"

// All engine errors indicate a caller contract violation. They are
// synchronous and non-retryable; callers wrap them with the offending
// timeline id or option value.
var (
	ErrValidation          = errors.New("invalid options")
	ErrNoAssets            = errors.New("no assets to assemble")
	ErrNoClips             = errors.New("timeline has no clips")
	ErrUnsupportedStrategy = errors.New("unsupported ordering strategy")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrInvalidFramerate    = errors.New("invalid framerate")
	ErrInvalidTime         = errors.New("invalid time value")
)
