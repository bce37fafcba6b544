package facades

import "errors"

// ErrUnavailable is returned when an upstream service cannot be reached,
// times out, or answers with a server error. There is no retry beyond the
// single bounded timeout; callers decide how to surface the failure.
var ErrUnavailable = errors.New("upstream unavailable")
