// Package geometry exposes the measurements the snap engine needs from a live
// element tree: where things are, how big they are, and how far they can scroll.
package geometry

import (
	"fmt"
	"math"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (self Axis) String() string {
	if self == AxisX {
		return `x`
	}

	return `y`
}

// NotApplicable marks an axis that has no snap candidates registered on it.
// Consumers must leave such axes untouched.
var NotApplicable = math.NaN()

func IsApplicable(v float64) bool {
	return !math.IsNaN(v)
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (self Point) Get(axis Axis) float64 {
	if axis == AxisX {
		return self.X
	}

	return self.Y
}

func (self *Point) Set(axis Axis, value float64) {
	if axis == AxisX {
		self.X = value
	} else {
		self.Y = value
	}
}

func (self Point) Equal(other Point) bool {
	return self.X == other.X && self.Y == other.Y
}

func (self Point) String() string {
	return fmt.Sprintf("(%v, %v)", self.X, self.Y)
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func MakeDimensions(left float64, top float64, width float64, height float64) Dimensions {
	return Dimensions{
		Width:  width,
		Height: height,
		Top:    top,
		Left:   left,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Return the document-relative origin of the rectangle along the given axis.
func (self Dimensions) Origin(axis Axis) float64 {
	if axis == AxisX {
		return self.Left
	}

	return self.Top
}

// Return the extent of the rectangle along the given axis.
func (self Dimensions) Size(axis Axis) float64 {
	if axis == AxisX {
		return self.Width
	}

	return self.Height
}
