package rules

import (
	"strings"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-stockutil/maputil"
)

// Declarations is the raw property bag the rule matcher hands over: property
// names mapped to undigested declaration values.
type Declarations map[string]interface{}

type SnapType int

const (
	SnapNone SnapType = iota
	SnapX
	SnapY
	SnapBoth
)

func (self SnapType) String() string {
	switch self {
	case SnapX:
		return `x`
	case SnapY:
		return `y`
	case SnapBoth:
		return `both`
	default:
		return `none`
	}
}

func ParseSnapType(raw string) SnapType {
	// strictness keywords (mandatory, proximity) don't affect target
	// resolution and are discarded
	fields := strings.Fields(raw)

	if len(fields) == 0 {
		return SnapNone
	}

	switch fields[0] {
	case `x`, `inline`:
		return SnapX
	case `y`, `block`:
		return SnapY
	case `both`:
		return SnapBoth
	default:
		return SnapNone
	}
}

// EdgeLengths holds the scroll padding declared on each container edge.
type EdgeLengths struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// Return the padding inset on the leading edge of the given axis.
func (self EdgeLengths) Start(axis geometry.Axis) Length {
	if axis == geometry.AxisX {
		return self.Left
	}

	return self.Top
}

// Config is the fixed-shape form of a container's snap declarations, with
// defaults applied exactly once at attachment time.
type Config struct {
	Type    SnapType
	Padding EdgeLengths
}

// Build a Config from a container's declaration bag. Missing declarations
// take their defaults: snap type none, zero padding on every edge.
func ConfigFromDeclarations(decls Declarations) *Config {
	var m = maputil.M(map[string]interface{}(decls))
	var config = &Config{
		Type: ParseSnapType(m.String(`scroll-snap-type`)),
	}

	if shorthand := m.String(`scroll-padding`); shorthand != `` {
		config.Padding = parsePaddingShorthand(shorthand)
	}

	if v := m.String(`scroll-padding-top`); v != `` {
		config.Padding.Top = ParseLength(v)
	}

	if v := m.String(`scroll-padding-right`); v != `` {
		config.Padding.Right = ParseLength(v)
	}

	if v := m.String(`scroll-padding-bottom`); v != `` {
		config.Padding.Bottom = ParseLength(v)
	}

	if v := m.String(`scroll-padding-left`); v != `` {
		config.Padding.Left = ParseLength(v)
	}

	return config
}

// Read a candidate's alignment out of its declaration bag. A missing or
// unparseable declaration yields none on both axes.
func AlignmentFromDeclarations(decls Declarations) AxisAlignment {
	return ParseAxisAlignment(maputil.M(map[string]interface{}(decls)).String(`scroll-snap-align`))
}

// Expand the 1-4 value scroll-padding shorthand the same way the cascade
// does: top, right, bottom, left.
func parsePaddingShorthand(raw string) EdgeLengths {
	var lengths []Length

	for _, field := range strings.Fields(raw) {
		lengths = append(lengths, ParseLength(field))
	}

	switch len(lengths) {
	case 0:
		return EdgeLengths{}
	case 1:
		return EdgeLengths{Top: lengths[0], Right: lengths[0], Bottom: lengths[0], Left: lengths[0]}
	case 2:
		return EdgeLengths{Top: lengths[0], Right: lengths[1], Bottom: lengths[0], Left: lengths[1]}
	case 3:
		return EdgeLengths{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[1]}
	default:
		return EdgeLengths{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[3]}
	}
}
