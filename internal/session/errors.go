package session

import "errors"

// ErrUnhandledAction is returned by [Reduce] for an action it does not know.
// The previous state is returned unchanged alongside it.
var ErrUnhandledAction = errors.New("unhandled session action")
