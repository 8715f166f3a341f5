package spawn

import "errors"

// ErrNoBaseName is returned when a spawner is constructed with an empty base
// name. Goroutine names are derived from the base name, so there is no
// usable default.
var ErrNoBaseName = errors.New("base name cannot be empty")
