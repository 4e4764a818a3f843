package list

import "errors"

var (
	ErrNilSequence = errors.New("list: nil sequence")
	ErrNilData     = errors.New("list: nil element data")
	ErrNilFunc     = errors.New("list: nil function")
	ErrNotFound    = errors.New("list: element not found")
	ErrDestroyed   = errors.New("list: sequence destroyed")
)
