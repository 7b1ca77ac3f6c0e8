package builder

import "errors"

// ErrNoSuchIteration is returned when the requested iteration selector
// matches no user-annotation instance, or when the selected window (or the
// full trace, if no selector was given) contains no events to build a
// graph from.
var ErrNoSuchIteration = errors.New("builder: no such iteration")

// ErrEmptyTrace is returned when Build is given a zero-length event slice.
var ErrEmptyTrace = errors.New("builder: empty trace")
