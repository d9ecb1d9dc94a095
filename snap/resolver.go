package snap

import (
	"math"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-snapscroll/rules"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/mathutil"
)

// Retention is the fraction of a candidate's size the user must scroll past
// before the container jumps off of it. Scrolling less than this snaps back
// to the current candidate.
const Retention = 0.18

// Resolver walks a container's candidate list after a settle event and
// decides where the scroll offset should come to rest. It owns the
// container's persistent scan state.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve computes the snap point for a settled container, updating and
// returning its scan index. Axes the container does not snap on come back as
// the not-applicable marker and must be left untouched by the caller. Every
// applicable coordinate is clamped to the scrollable range.
//
// A scan that runs off either end of the candidate list without accepting
// anyone keeps the current candidate; the list boundary itself never forces
// a snap to the first or last candidate. Only being scrolled flush against
// the end of the surface does that.
func (self *Resolver) Resolve(container *Container, direction Direction) (geometry.Point, int) {
	notApplicable := geometry.Point{
		X: geometry.NotApplicable,
		Y: geometry.NotApplicable,
	}

	if len(container.Candidates) == 0 {
		return notApplicable, container.index
	}

	axes := container.activeAxes()

	if len(axes) == 0 {
		return notApplicable, container.index
	}

	last := len(container.Candidates) - 1

	// already scrolled to the very end: land on the last candidate outright
	for _, axis := range axes {
		if atScrollEnd(container.Surface, axis) {
			container.index = last
			return self.commit(container, last, direction, false), last
		}
	}

	primary := direction.Primary()
	offset := container.Surface.Offset()
	stay := self.threshold(container, container.index, direction)

	for i := container.index + primary; i >= 0 && i <= last; i += primary {
		// the gesture never cleared the current candidate's retention zone,
		// so there is no jump at all
		if !self.passed(container, offset, stay, direction) {
			break
		}

		// a scanned candidate only accepts once the gesture has cleared its
		// own retention zone too
		if !self.passed(container, offset, self.threshold(container, i, direction), direction) {
			continue
		}

		container.index = i

		return self.commit(container, i, direction, i != 0 && i != last), i
	}

	// no candidate accepted: stay where we are
	cur := container.index

	return self.commit(container, cur, direction, cur != 0 && cur != last), cur
}

// commit computes the final coordinate for a chosen candidate, applies
// padding where called for, clamps it, and records it on the container.
func (self *Resolver) commit(container *Container, index int, direction Direction, pad bool) geometry.Point {
	point := geometry.Point{
		X: geometry.NotApplicable,
		Y: geometry.NotApplicable,
	}

	for _, axis := range container.activeAxes() {
		value := self.coordinate(container, index, axis, direction)

		if pad {
			value -= self.padding(container, axis)

			// round away from fractional padding in the travel direction so
			// repeated settles don't oscillate across the same boundary
			if direction.Get(axis) > 0 {
				value = math.Ceil(value)
			} else {
				value = math.Floor(value)
			}
		}

		point.Set(axis, mathutil.Clamp(value, 0, geometry.MaxOffset(container.Surface, axis)))
	}

	container.last = point

	log.Debugf("[resolve] %v index=%d point=%v", container.ID, index, point)

	return point
}

// coordinate maps a candidate to the scroll offset that aligns it, before
// padding and clamping.
func (self *Resolver) coordinate(container *Container, index int, axis geometry.Axis, direction Direction) float64 {
	candidate := container.Candidates[index]
	rect := candidate.Region.Rect()
	surface := container.Surface

	value := rect.Origin(axis) - surface.Rect().Origin(axis) - surface.BorderOffset().Get(axis)
	value += alignShift(candidate.alignment(axis), rect.Size(axis), direction.Get(axis))
	value -= alignShift(candidate.alignment(axis), surface.Viewport().Get(axis), direction.Get(axis))

	return value
}

// threshold computes a candidate's stay threshold on every active axis: its
// coordinate pushed Retention of its own size along the travel direction.
func (self *Resolver) threshold(container *Container, index int, direction Direction) geometry.Point {
	point := geometry.Point{
		X: geometry.NotApplicable,
		Y: geometry.NotApplicable,
	}

	rect := container.Candidates[index].Region.Rect()

	for _, axis := range container.activeAxes() {
		value := self.coordinate(container, index, axis, direction)
		value += float64(direction.Get(axis)) * rect.Size(axis) * Retention

		point.Set(axis, value)
	}

	return point
}

// passed reports whether the scroll offset cleared the threshold on every
// active axis, in the direction of travel.
func (self *Resolver) passed(container *Container, offset geometry.Point, threshold geometry.Point, direction Direction) bool {
	for _, axis := range container.activeAxes() {
		limit := threshold.Get(axis)

		if !geometry.IsApplicable(limit) {
			continue
		}

		if direction.Get(axis) > 0 {
			if offset.Get(axis) <= limit {
				return false
			}
		} else {
			if offset.Get(axis) >= limit {
				return false
			}
		}
	}

	return true
}

// alignShift is a candidate alignment's contribution along one axis: nothing
// for start, the full size for end, and half the size for center. The half
// is rounded with the travel direction so fractional centers resolve the
// same way on every pass.
func alignShift(alignment rules.Alignment, size float64, direction int) float64 {
	switch alignment {
	case rules.AlignEnd:
		return size
	case rules.AlignCenter:
		if direction > 0 {
			return math.Ceil(size / 2)
		}

		return math.Floor(size / 2)
	default:
		return 0
	}
}

// padding resolves the container's leading-edge scroll padding to pixels at
// use time.
func (self *Resolver) padding(container *Container, axis geometry.Axis) float64 {
	viewport := container.Surface.Viewport()

	return container.Config.Padding.Start(axis).Resolve(viewport.Get(axis), viewport)
}

// atScrollEnd reports whether a scrollable axis is flush against its maximum
// extent.
func atScrollEnd(surface geometry.Surface, axis geometry.Axis) bool {
	viewport := surface.Viewport().Get(axis)
	total := surface.ScrollSize().Get(axis)

	if total <= viewport {
		return false
	}

	return surface.Offset().Get(axis)+viewport >= total
}
