package rules

import (
	"testing"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/testify/require"
)

func TestParseSnapType(t *testing.T) {
	assert := require.New(t)

	assert.Equal(SnapX, ParseSnapType(`x`))
	assert.Equal(SnapX, ParseSnapType(`x mandatory`))
	assert.Equal(SnapX, ParseSnapType(`inline proximity`))
	assert.Equal(SnapY, ParseSnapType(`y`))
	assert.Equal(SnapY, ParseSnapType(`block`))
	assert.Equal(SnapBoth, ParseSnapType(`both mandatory`))
	assert.Equal(SnapNone, ParseSnapType(``))
	assert.Equal(SnapNone, ParseSnapType(`none`))
	assert.Equal(SnapNone, ParseSnapType(`diagonal`))
}

func TestParseAxisAlignment(t *testing.T) {
	assert := require.New(t)

	// one keyword covers both axes
	assert.Equal(AxisAlignment{X: AlignStart, Y: AlignStart}, ParseAxisAlignment(`start`))
	assert.Equal(AxisAlignment{X: AlignCenter, Y: AlignCenter}, ParseAxisAlignment(`center`))

	// two keywords read horizontal then vertical
	assert.Equal(AxisAlignment{X: AlignStart, Y: AlignEnd}, ParseAxisAlignment(`start end`))
	assert.Equal(AxisAlignment{X: AlignEnd, Y: AlignCenter}, ParseAxisAlignment(` end  center `))

	// anything unrecognized is none
	assert.Equal(AxisAlignment{}, ParseAxisAlignment(``))
	assert.Equal(AxisAlignment{X: AlignNone, Y: AlignNone}, ParseAxisAlignment(`sideways`))
}

func TestConfigDefaults(t *testing.T) {
	assert := require.New(t)

	config := ConfigFromDeclarations(nil)

	assert.Equal(SnapNone, config.Type)
	assert.Equal(EdgeLengths{}, config.Padding)
}

func TestConfigFromDeclarations(t *testing.T) {
	assert := require.New(t)

	config := ConfigFromDeclarations(Declarations{
		`scroll-snap-type`:   `x mandatory`,
		`scroll-padding`:     `10px`,
		`scroll-padding-top`: `5%`,
	})

	assert.Equal(SnapX, config.Type)

	// the shorthand fills every edge, then the longhand overrides its own
	assert.Equal(Length{Value: 5, Unit: UnitPercent}, config.Padding.Top)
	assert.Equal(Length{Value: 10, Unit: UnitPixel}, config.Padding.Right)
	assert.Equal(Length{Value: 10, Unit: UnitPixel}, config.Padding.Bottom)
	assert.Equal(Length{Value: 10, Unit: UnitPixel}, config.Padding.Left)
}

func TestConfigPaddingShorthandExpansion(t *testing.T) {
	assert := require.New(t)

	two := ConfigFromDeclarations(Declarations{`scroll-padding`: `10px 20px`}).Padding
	assert.Equal(float64(10), two.Top.Value)
	assert.Equal(float64(20), two.Right.Value)
	assert.Equal(float64(10), two.Bottom.Value)
	assert.Equal(float64(20), two.Left.Value)

	three := ConfigFromDeclarations(Declarations{`scroll-padding`: `1px 2px 3px`}).Padding
	assert.Equal(float64(1), three.Top.Value)
	assert.Equal(float64(2), three.Right.Value)
	assert.Equal(float64(3), three.Bottom.Value)
	assert.Equal(float64(2), three.Left.Value)

	four := ConfigFromDeclarations(Declarations{`scroll-padding`: `1px 2px 3px 4px`}).Padding
	assert.Equal(float64(1), four.Top.Value)
	assert.Equal(float64(2), four.Right.Value)
	assert.Equal(float64(3), four.Bottom.Value)
	assert.Equal(float64(4), four.Left.Value)
}

func TestEdgeLengthsStart(t *testing.T) {
	assert := require.New(t)

	padding := EdgeLengths{
		Top:  Length{Value: 1, Unit: UnitPixel},
		Left: Length{Value: 2, Unit: UnitPixel},
	}

	assert.Equal(float64(2), padding.Start(geometry.AxisX).Value)
	assert.Equal(float64(1), padding.Start(geometry.AxisY).Value)
}

func TestAlignmentFromDeclarations(t *testing.T) {
	assert := require.New(t)

	align := AlignmentFromDeclarations(Declarations{
		`scroll-snap-align`: `center`,
	})

	assert.Equal(AlignCenter, align.X)
	assert.Equal(AlignCenter, align.Y)

	// missing declaration defaults to none on both axes
	assert.Equal(AxisAlignment{}, AlignmentFromDeclarations(nil))
}
