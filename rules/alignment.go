// Package rules converts the loosely-typed declaration bags handed over by the
// style rule matcher into fixed-shape configuration records, applied once when
// a container is attached.
package rules

import (
	"strings"

	"github.com/ghetzel/go-stockutil/stringutil"
)

// Alignment names which part of a snap candidate lines up with the same part
// of its container.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignStart
	AlignEnd
	AlignCenter
)

func (self Alignment) String() string {
	switch self {
	case AlignStart:
		return `start`
	case AlignEnd:
		return `end`
	case AlignCenter:
		return `center`
	default:
		return `none`
	}
}

func ParseAlignment(value string) Alignment {
	switch value {
	case `start`:
		return AlignStart
	case `end`:
		return AlignEnd
	case `center`:
		return AlignCenter
	default:
		return AlignNone
	}
}

// AxisAlignment carries a candidate's alignment on each axis.
type AxisAlignment struct {
	X Alignment
	Y Alignment
}

// Parse a raw scroll-snap-align value. A single keyword applies to both axes;
// two keywords are read as horizontal then vertical. Anything unrecognized
// falls back to none.
func ParseAxisAlignment(raw string) AxisAlignment {
	first, second := stringutil.SplitPair(strings.TrimSpace(raw), ` `)
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)

	if second == `` {
		second = first
	}

	return AxisAlignment{
		X: ParseAlignment(first),
		Y: ParseAlignment(second),
	}
}
