package snap

import (
	"math"
	"time"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/mathutil"
)

// BaseDuration is the animation length for a move spanning one full
// viewport height. Shorter moves shrink proportionally, but never below
// BaseDuration/1.5.
const BaseDuration = 350 * time.Millisecond

// completion is a single-fire token: however the animation ends, the
// callback runs at most once.
type completion struct {
	fn    func()
	fired bool
}

func (self *completion) fire() {
	if self.fired {
		return
	}

	self.fired = true

	if self.fn != nil {
		self.fn()
	}
}

type animation struct {
	container *Container
	start     geometry.Point
	target    geometry.Point
	startedAt time.Time
	duration  time.Duration
	tick      Handle
	done      *completion
}

func (self *animation) cancel() {
	if self.tick != nil {
		self.tick.Cancel()
		self.tick = nil
	}
}

// Animator eases a container's scroll offset toward a resolved snap point.
// At most one animation runs per container; starting a new one cancels the
// old one before its first tick is scheduled.
type Animator struct {
	scheduler Scheduler
}

func NewAnimator(scheduler Scheduler) *Animator {
	return &Animator{
		scheduler: scheduler,
	}
}

// Animate moves the container to target and invokes onComplete exactly once
// when the offset lands. The move always starts from the container's actual
// current offsets, so superseding an in-flight animation picks up from
// wherever the previous one left the surface. Axes carrying the
// not-applicable marker are never written.
func (self *Animator) Animate(container *Container, target geometry.Point, onComplete func()) {
	self.Cancel(container)

	start := container.Surface.Offset()

	anim := &animation{
		container: container,
		start:     start,
		target:    target,
		startedAt: self.scheduler.Now(),
		duration:  animationDuration(travelDistance(start, target), container.Surface.Viewport().Y),
		done: &completion{
			fn: onComplete,
		},
	}

	log.Debugf("[animate] %v %v -> %v over %v", container.ID, start, target, anim.duration)

	if anim.duration <= 0 {
		// degenerate metrics: jump instead of failing
		self.writeOffsets(container, target)
		anim.done.fire()
		return
	}

	container.animation = anim
	anim.tick = self.scheduler.Frame(func() {
		self.step(anim)
	})
}

// Cancel invalidates a container's in-flight animation, if any. The
// cancelled animation's completion never fires.
func (self *Animator) Cancel(container *Container) {
	if container.animation != nil {
		container.animation.cancel()
		container.animation = nil
	}
}

func (self *Animator) Animating(container *Container) bool {
	return container.animation != nil
}

func (self *Animator) step(anim *animation) {
	// a superseded animation may still have one tick in flight
	if anim.container.animation != anim {
		return
	}

	elapsed := self.scheduler.Now().Sub(anim.startedAt)

	if elapsed > anim.duration {
		self.writeOffsets(anim.container, anim.target)
		anim.container.animation = nil
		anim.done.fire()
		return
	}

	point := geometry.Point{
		X: Position(anim.start.X, anim.target.X, elapsed, anim.duration),
		Y: Position(anim.start.Y, anim.target.Y, elapsed, anim.duration),
	}

	self.writeOffsets(anim.container, point)

	anim.tick = self.scheduler.Frame(func() {
		self.step(anim)
	})
}

func (self *Animator) writeOffsets(container *Container, point geometry.Point) {
	for _, axis := range []geometry.Axis{geometry.AxisX, geometry.AxisY} {
		if value := point.Get(axis); geometry.IsApplicable(value) {
			container.Surface.SetOffset(axis, value)
		}
	}
}

// Position interpolates one axis of an animation with a cubic ease-in.
// Sampling at or beyond the duration returns the end value exactly.
func Position(start float64, end float64, elapsed time.Duration, duration time.Duration) float64 {
	if !geometry.IsApplicable(start) || !geometry.IsApplicable(end) {
		return geometry.NotApplicable
	}

	if elapsed >= duration {
		return end
	}

	progress := float64(elapsed) / float64(duration)

	return start + (end-start)*progress*progress*progress
}

// animationDuration scales the base duration by the travelled distance
// normalized against the viewport height, clamped so short hops still ease
// and long ones don't drag. A non-numeric result collapses to zero for an
// instant jump.
func animationDuration(distance float64, viewportHeight float64) time.Duration {
	base := float64(BaseDuration / time.Millisecond)
	ms := base * (distance / viewportHeight)

	if math.IsNaN(ms) {
		return 0
	}

	return time.Duration(mathutil.Clamp(ms, base/1.5, base)) * time.Millisecond
}

// travelDistance is the straight-line distance of a move, ignoring axes the
// animator won't write.
func travelDistance(start geometry.Point, target geometry.Point) float64 {
	var dx float64
	var dy float64

	if geometry.IsApplicable(target.X) {
		dx = target.X - start.X
	}

	if geometry.IsApplicable(target.Y) {
		dy = target.Y - start.Y
	}

	return math.Hypot(dx, dy)
}
