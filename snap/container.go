package snap

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-snapscroll/rules"
)

// Direction is the per-axis sign of a settled scroll gesture. A zero delta
// on an axis defaults to forward.
type Direction struct {
	X int
	Y int
}

func (self Direction) Get(axis geometry.Axis) int {
	if axis == geometry.AxisX {
		return self.X
	}

	return self.Y
}

// Primary returns the scan direction when both axes moved, biased toward
// backward.
func (self Direction) Primary() int {
	if self.Y < self.X {
		return self.Y
	}

	return self.X
}

func (self Direction) String() string {
	return fmt.Sprintf("(%+d, %+d)", self.X, self.Y)
}

func directionBetween(start geometry.Point, end geometry.Point) Direction {
	return Direction{
		X: axisSign(end.X - start.X),
		Y: axisSign(end.Y - start.Y),
	}
}

func axisSign(delta float64) int {
	if delta < 0 {
		return -1
	}

	return 1
}

// Candidate is one child element eligible as a snap target. Its geometry is
// read live from the Region on every resolution, never cached.
type Candidate struct {
	Region geometry.Region
	Align  rules.AxisAlignment
}

func (self *Candidate) alignment(axis geometry.Axis) rules.Alignment {
	if axis == geometry.AxisX {
		return self.Align.X
	}

	return self.Align.Y
}

// Container owns all mutable snap state for one scrollable region: the
// candidate list, the persistent scan index, the last resolved coordinate,
// the coalescer, and at most one in-flight animation.
type Container struct {
	ID         string
	Surface    geometry.Surface
	Config     *rules.Config
	Candidates []*Candidate

	index     int
	last      geometry.Point
	coalescer *Coalescer
	animation *animation
}

func NewContainer(id string, surface geometry.Surface, config *rules.Config, candidates []*Candidate) *Container {
	if config == nil {
		config = &rules.Config{}
	}

	return &Container{
		ID:         id,
		Surface:    surface,
		Config:     config,
		Candidates: candidates,
		last: geometry.Point{
			X: geometry.NotApplicable,
			Y: geometry.NotApplicable,
		},
	}
}

// Index returns the current scan position. It persists between settle events
// so that each resolution picks up where the previous one left off.
func (self *Container) Index() int {
	return self.index
}

// LastPoint returns the most recently resolved snap point.
func (self *Container) LastPoint() geometry.Point {
	return self.last
}

func (self *Container) Coalescer() *Coalescer {
	return self.coalescer
}

func (self *Container) SetCoalescer(coalescer *Coalescer) {
	self.coalescer = coalescer
}

// AxisActive reports whether the container snaps along the given axis: the
// declared snap type must include the axis and at least one candidate must
// align on it.
func (self *Container) AxisActive(axis geometry.Axis) bool {
	switch self.Config.Type {
	case rules.SnapX:
		if axis != geometry.AxisX {
			return false
		}
	case rules.SnapY:
		if axis != geometry.AxisY {
			return false
		}
	case rules.SnapNone:
		return false
	}

	for _, candidate := range self.Candidates {
		if candidate.alignment(axis) != rules.AlignNone {
			return true
		}
	}

	return false
}

func (self *Container) activeAxes() []geometry.Axis {
	axes := make([]geometry.Axis, 0, 2)

	for _, axis := range []geometry.Axis{geometry.AxisX, geometry.AxisY} {
		if self.AxisActive(axis) {
			axes = append(axes, axis)
		}
	}

	return axes
}

// Destroy clears the container's state: any pending settle timer and any
// in-flight animation are cancelled.
func (self *Container) Destroy() {
	if self.coalescer != nil {
		self.coalescer.Reset()
	}

	if self.animation != nil {
		self.animation.cancel()
		self.animation = nil
	}
}

func (self *Container) String() string {
	return fmt.Sprintf("[CONTAINER %v] %d candidates", self.ID, len(self.Candidates))
}

// Prints the container and its candidates with their current geometry.
func (self *Container) TreeString() string {
	output := color.MagentaString(`<`) + color.RedString(self.ID) + color.MagentaString(`>`)
	output += fmt.Sprintf(" type=%v offset=%v index=%d\n", self.Config.Type, self.Surface.Offset(), self.index)

	for i, candidate := range self.Candidates {
		rect := candidate.Region.Rect()

		line := strings.Repeat(`  `, 1)
		line += color.GreenString(fmt.Sprintf("#%d", i))
		line += fmt.Sprintf(
			" at (%v, %v) %vx%v align=%v/%v",
			rect.Left,
			rect.Top,
			rect.Width,
			rect.Height,
			candidate.Align.X,
			candidate.Align.Y,
		)

		output += line + "\n"
	}

	return output
}
