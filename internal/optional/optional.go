// Package optional converts between option.Generic values and the pointer
// fields used by wire messages and YAML documents. A nil pointer is the
// unset value.
package optional

import (
	"github.com/tarantool/go-option"
)

// Write stores a copy of the value in *field when it is set. An unset value
// leaves *field untouched.
func Write[T any](field **T, value option.Generic[T]) {
	if v, ok := value.Get(); ok {
		*field = &v
	}
}

// FromPointer returns the value behind p, or an unset value for nil.
func FromPointer[T any](p *T) option.Generic[T] {
	if p == nil {
		return option.None[T]()
	}

	return option.Some(*p)
}

// ToPointer returns a pointer to a copy of the value, or nil when it is unset.
func ToPointer[T any](value option.Generic[T]) *T {
	if v, ok := value.Get(); ok {
		return &v
	}

	return nil
}
