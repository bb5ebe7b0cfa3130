package funcmax

import "errors"

// ErrArgumentNotFound indicates that ValueAt was called with an argument
// that is not currently in the domain of the function.
var ErrArgumentNotFound = errors.New("invalid argument value")
