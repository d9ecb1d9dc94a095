package snap

import (
	"time"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-stockutil/log"
)

// QuietPeriod is how long a container must go without a raw scroll
// notification before the gesture counts as settled.
const QuietPeriod = 45 * time.Millisecond

// SettleFunc receives the single settled event distilled from a scroll
// burst: where the gesture started, where it ended, and the per-axis
// direction it travelled.
type SettleFunc func(start geometry.Point, end geometry.Point, direction Direction)

// Coalescer buffers a burst of raw scroll notifications and emits one settle
// event after the quiet period elapses. While suspended it drops raw
// notifications entirely, so the animator's own offset writes never re-enter
// the pipeline.
type Coalescer struct {
	scheduler Scheduler
	settled   SettleFunc
	started   bool
	start     geometry.Point
	current   geometry.Point
	timer     Handle
	suspended bool
}

func NewCoalescer(scheduler Scheduler, settled SettleFunc) *Coalescer {
	return &Coalescer{
		scheduler: scheduler,
		settled:   settled,
	}
}

// OnScroll ingests one raw scroll notification. The first call since the
// previous settle records the gesture's starting offsets; every call
// restarts the quiet-period timer.
func (self *Coalescer) OnScroll(offsets geometry.Point) {
	if self.suspended {
		return
	}

	if !self.started {
		self.started = true
		self.start = offsets
	}

	self.current = offsets

	if self.timer != nil {
		self.timer.Cancel()
	}

	self.timer = self.scheduler.Timeout(QuietPeriod, self.settle)
}

// Suspend stops raw-scroll observation until Resume is called.
func (self *Coalescer) Suspend() {
	self.suspended = true
}

// Resume re-enables raw-scroll observation after an animation completes.
func (self *Coalescer) Resume() {
	self.suspended = false
}

func (self *Coalescer) Suspended() bool {
	return self.suspended
}

// Reset discards any partially observed gesture.
func (self *Coalescer) Reset() {
	if self.timer != nil {
		self.timer.Cancel()
		self.timer = nil
	}

	self.started = false
}

func (self *Coalescer) settle() {
	self.timer = nil
	self.started = false

	// a burst that went nowhere settles silently
	if self.start.Equal(self.current) {
		return
	}

	direction := directionBetween(self.start, self.current)

	log.Debugf("[settle] %v -> %v direction=%v", self.start, self.current, direction)

	// stop observing before anyone scrolls in response to this event
	self.Suspend()

	if self.settled != nil {
		self.settled(self.start, self.current, direction)
	}
}
