package registry

import "errors"

// Sentinel errors returned by the registry.
//
// Use [errors.Is] for comparisons:
//
//	c, err := m.New("enigma", key)
//	if errors.Is(err, registry.ErrDriverNotFound) {
//	    // unknown cipher name
//	}
var (
	// ErrDriverNotFound is returned by [Manager.Driver] and [Manager.New]
	// when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("registry: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("registry: driver name must not be empty")

	// ErrNilFactory is returned by [Manager.RegisterDriver] when a nil
	// [Factory] is supplied.
	ErrNilFactory = errors.New("registry: factory must not be nil")
)
