package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownSortOrder is returned when a sort order name cannot be parsed.
var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrder is the ordering of a key column.
type SortOrder int

const (
	// SortOrderAscending orders keys from the smallest to the largest.
	SortOrderAscending SortOrder = iota + 1
	// SortOrderDescending orders keys from the largest to the smallest.
	SortOrderDescending
)

func (o SortOrder) String() string {
	switch o {
	case SortOrderAscending:
		return "ascending"
	case SortOrderDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o SortOrder) MarshalText() ([]byte, error) {
	switch o {
	case SortOrderAscending, SortOrderDescending:
		return []byte(o.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortOrder, int(o))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *SortOrder) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ascending":
		*o = SortOrderAscending
	case "descending":
		*o = SortOrderDescending
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortOrder, string(text))
	}

	return nil
}
