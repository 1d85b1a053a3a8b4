package adapter

import "errors"

var (
	// ErrNetworkUnavailable signals a transport-level failure with no
	// server response: the remote is unreachable, not erroring. The
	// orchestrator maps it to the Offline outcome instead of Error.
	ErrNetworkUnavailable = errors.New("network unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
