package list

import "errors"

// Contract violations reported to the caller. A failed operation never
// leaves the list partially mutated.
var (
	// ErrDuplicateValue is returned when an insert would add a value that
	// is already wrapped by another item.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrAlreadyInitialized is returned when an item's one-time binding is
	// attempted a second time.
	ErrAlreadyInitialized = errors.New("item already initialized")

	// ErrIndexOutOfRange is returned by index-based accessors and selectors
	// for indices outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")
)
