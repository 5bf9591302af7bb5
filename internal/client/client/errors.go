package client

import (
	"errors"

	"github.com/dmitrijs2005/recordsync/internal/netx"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	// ErrDecode marks a 2xx response whose body could not be decoded.
	ErrDecode = netx.ErrDecode
)

// StatusError is returned when the backend answers outside the 2xx range.
type StatusError = netx.StatusError
