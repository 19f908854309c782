package snapshot

import "errors"

// ErrNotARepository is returned when no git repository can be located at or
// above the working directory. It is the only fatal error in the engine and
// maps to exit code 1.
var ErrNotARepository = errors.New("not a git repository")
