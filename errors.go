package classcomplete

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned by New for configuration it cannot use.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInternal wraps unexpected failures caught at the request boundary.
	ErrInternal = zerr.New("internal error")
)
