// Package guid implements the YT flavour of 128-bit identifiers.
//
// YT prints identifiers as four hexadecimal 32-bit parts ("1-2-3-4"), which is
// why the canonical UUID text form cannot be used directly.
package guid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidFormat is returned when a string is not a valid GUID.
var ErrInvalidFormat = errors.New("invalid GUID format")

const (
	format     = "%x-%x-%x-%x"
	partsCount = 4
)

// GUID is a 128-bit identifier stored as four little-endian 32-bit parts.
type GUID [16]byte

// Parts returns the four 32-bit parts in their textual order.
func (g GUID) Parts() (uint32, uint32, uint32, uint32) {
	return part(g[0:4]), part(g[4:8]), part(g[8:12]), part(g[12:16])
}

func part(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putPart(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// FromParts builds a GUID from its four 32-bit parts.
func FromParts(a, b, c, d uint32) GUID {
	var g GUID

	putPart(g[0:4], a)
	putPart(g[4:8], b)
	putPart(g[8:12], c)
	putPart(g[12:16], d)

	return g
}

// Halves returns the 64-bit halves used by the wire representation:
// the first half holds the last two textual parts, the second one the first two.
func (g GUID) Halves() (uint64, uint64) {
	a, b, c, d := g.Parts()

	return uint64(c)<<32 | uint64(d), uint64(a)<<32 | uint64(b)
}

// FromHalves is the inverse of Halves.
func FromHalves(first, second uint64) GUID {
	return FromParts(uint32(second>>32), uint32(second), uint32(first>>32), uint32(first))
}

// IsEmpty reports whether all parts are zero.
func (g GUID) IsEmpty() bool {
	return g == GUID{}
}

func (g GUID) String() string {
	a, b, c, d := g.Parts()
	return fmt.Sprintf(format, a, b, c, d)
}

// ParseString parses the "a-b-c-d" text form.
func ParseString(s string) (GUID, error) {
	var a, b, c, d uint32

	n, err := fmt.Sscanf(s, format, &a, &b, &c, &d)
	switch {
	case err != nil:
		return GUID{}, fmt.Errorf("%w %q: %w", ErrInvalidFormat, s, err)
	case n != partsCount:
		return GUID{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	g := FromParts(a, b, c, d)
	if !strings.EqualFold(g.String(), s) {
		// Sscanf stops at the first mismatch and ignores trailing data.
		return GUID{}, fmt.Errorf("%w %q", ErrInvalidFormat, s)
	}

	return g, nil
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(data []byte) error {
	parsed, err := ParseString(string(data))
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}

// New generates a random GUID.
func New() GUID {
	return GUID(uuid.New())
}
