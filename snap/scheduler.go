// Package snap implements the core of the scroll-snap engine: coalescing raw
// scroll bursts into settle events, resolving which candidate a settled
// container should align to, and animating the scroll offset to that target.
package snap

import (
	"sync"
	"time"
)

// FrameInterval is the tick spacing used when the host has no real frame
// callback to offer.
const FrameInterval = 15 * time.Millisecond

// Handle identifies one scheduled callback so it can be invalidated before
// it fires.
type Handle interface {
	Cancel()
}

// Scheduler is the host event loop as the engine sees it: a clock, one-shot
// timers, frame callbacks, and a way to run host calls in the same stream.
// Callbacks and posted functions fire one at a time; the engine relies on
// that serialization instead of locking its own state.
type Scheduler interface {
	Now() time.Time
	Timeout(delay time.Duration, fn func()) Handle
	Frame(fn func()) Handle

	// Post runs fn serialized with every scheduled callback. Host entry
	// points route through it so a firing timer never observes state the
	// host is mid-way through changing.
	Post(fn func())
}

type timerHandle struct {
	lock      sync.Mutex
	timer     *time.Timer
	cancelled bool
}

func (self *timerHandle) Cancel() {
	self.lock.Lock()
	defer self.lock.Unlock()

	self.cancelled = true

	if self.timer != nil {
		self.timer.Stop()
	}
}

func (self *timerHandle) invalidated() bool {
	self.lock.Lock()
	defer self.lock.Unlock()

	return self.cancelled
}

// TimerScheduler runs callbacks off wall-clock timers, serialized through a
// single mutex so that callbacks and posted host calls never overlap.
type TimerScheduler struct {
	lock sync.Mutex
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (self *TimerScheduler) Now() time.Time {
	return time.Now()
}

func (self *TimerScheduler) Timeout(delay time.Duration, fn func()) Handle {
	handle := &timerHandle{}

	handle.timer = time.AfterFunc(delay, func() {
		self.lock.Lock()
		defer self.lock.Unlock()

		if handle.invalidated() {
			return
		}

		fn()
	})

	return handle
}

func (self *TimerScheduler) Frame(fn func()) Handle {
	return self.Timeout(FrameInterval, fn)
}

func (self *TimerScheduler) Post(fn func()) {
	self.lock.Lock()
	defer self.lock.Unlock()

	fn()
}

type manualTask struct {
	due       time.Time
	seq       int
	fn        func()
	cancelled bool
}

func (self *manualTask) Cancel() {
	self.cancelled = true
}

// ManualScheduler is a Scheduler with a virtual clock, advanced explicitly.
// Hosts that drive their own loop embed it and pump Advance; tests use it to
// make quiet periods and animation frames deterministic.
type ManualScheduler struct {
	now   time.Time
	tasks []*manualTask
	seq   int
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		now: time.Unix(0, 0),
	}
}

func (self *ManualScheduler) Now() time.Time {
	return self.now
}

func (self *ManualScheduler) Timeout(delay time.Duration, fn func()) Handle {
	task := &manualTask{
		due: self.now.Add(delay),
		seq: self.seq,
		fn:  fn,
	}

	self.seq += 1
	self.tasks = append(self.tasks, task)

	return task
}

func (self *ManualScheduler) Frame(fn func()) Handle {
	return self.Timeout(FrameInterval, fn)
}

// Post runs fn immediately; the host pumping Advance already provides the
// serialization.
func (self *ManualScheduler) Post(fn func()) {
	fn()
}

// Advance moves the virtual clock forward, firing every due callback in
// order. Callbacks scheduled while advancing also fire if they come due
// before the clock reaches its destination.
func (self *ManualScheduler) Advance(duration time.Duration) {
	target := self.now.Add(duration)

	for {
		task := self.nextDue(target)

		if task == nil {
			break
		}

		if task.due.After(self.now) {
			self.now = task.due
		}

		task.fn()
	}

	self.now = target
}

// Pending reports whether any scheduled callback is still waiting to fire.
func (self *ManualScheduler) Pending() bool {
	for _, task := range self.tasks {
		if !task.cancelled {
			return true
		}
	}

	return false
}

func (self *ManualScheduler) nextDue(until time.Time) *manualTask {
	// cancelled tasks are pruned here rather than lingering until they
	// would have come due
	kept := self.tasks[:0]

	for _, task := range self.tasks {
		if !task.cancelled {
			kept = append(kept, task)
		}
	}

	self.tasks = kept

	var next *manualTask
	var nextAt = -1

	for i, task := range self.tasks {
		if task.due.After(until) {
			continue
		}

		if next == nil || task.due.Before(next.due) || (task.due.Equal(next.due) && task.seq < next.seq) {
			next = task
			nextAt = i
		}
	}

	if next != nil {
		self.tasks = append(self.tasks[:nextAt], self.tasks[nextAt+1:]...)
	}

	return next
}
