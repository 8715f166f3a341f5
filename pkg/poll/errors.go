package poll

import "errors"

// ErrNilHandle is returned by Of when called with a nil handle.
var ErrNilHandle = errors.New("poll: nil handle")
