package daynight

import "errors"

// ErrInvalidConfiguration is returned when settings cannot produce a
// well-defined cycle. Specific causes wrap it.
var ErrInvalidConfiguration = errors.New("invalid day/night configuration")
