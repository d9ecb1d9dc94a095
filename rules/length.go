package rules

import (
	"bytes"
	"strings"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-stockutil/stringutil"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type Unit string

const (
	UnitPixel          Unit = `px`
	UnitPercent        Unit = `%`
	UnitViewportWidth  Unit = `vw`
	UnitViewportHeight Unit = `vh`
)

// Length is a single CSS length: a number plus the unit it was declared in.
// The zero value is 0px.
type Length struct {
	Value float64
	Unit  Unit
}

// ParseLength lexes a single raw length token. Malformed tokens and units
// outside px/%/vw/vh degrade to a zero pixel length rather than erroring.
func ParseLength(raw string) Length {
	lexer := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(strings.TrimSpace(raw)))))

	for {
		tt, data := lexer.Next()

		switch tt {
		case css.ErrorToken:
			return Length{Unit: UnitPixel}

		case css.WhitespaceToken:
			continue

		case css.NumberToken:
			if v, err := stringutil.ConvertToFloat(string(data)); err == nil {
				return Length{Value: v, Unit: UnitPixel}
			}

			return Length{Unit: UnitPixel}

		case css.PercentageToken:
			if v, err := stringutil.ConvertToFloat(strings.TrimSuffix(string(data), `%`)); err == nil {
				return Length{Value: v, Unit: UnitPercent}
			}

			return Length{Unit: UnitPixel}

		case css.DimensionToken:
			return parseDimension(string(data))

		default:
			return Length{Unit: UnitPixel}
		}
	}
}

// Split a dimension token like "12px" or "4vw" into value and unit.
func parseDimension(token string) Length {
	split := len(token)

	for i, r := range token {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			continue
		}

		split = i
		break
	}

	value, err := stringutil.ConvertToFloat(token[:split])

	if err != nil {
		return Length{Unit: UnitPixel}
	}

	switch unit := Unit(strings.ToLower(token[split:])); unit {
	case UnitPixel, UnitViewportWidth, UnitViewportHeight:
		return Length{Value: value, Unit: unit}
	default:
		// unsupported unit
		return Length{Unit: UnitPixel}
	}
}

// Resolve the length to absolute pixels. Percentages are taken against the
// container's size along the given axis; viewport units against the viewport.
func (self Length) Resolve(axisSize float64, viewport geometry.Point) float64 {
	switch self.Unit {
	case UnitPercent:
		return self.Value / 100 * axisSize
	case UnitViewportWidth:
		return self.Value / 100 * viewport.X
	case UnitViewportHeight:
		return self.Value / 100 * viewport.Y
	default:
		return self.Value
	}
}
