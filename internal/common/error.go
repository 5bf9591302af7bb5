package common

import "errors"

// The two failure kinds of the sync controller. Callers should use
// errors.Is to match them; the underlying transport error stays wrapped.
var (
	ErrReadFailure  = errors.New("read failure")
	ErrWriteFailure = errors.New("write failure")
)
