// Package snapscroll emulates CSS scroll-snap behavior for hosts without
// native support: once a scroll gesture settles, the engine resolves which
// snap candidate the viewport should rest on and eases the scroll offset
// there.
package snapscroll

import (
	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-snapscroll/rules"
	"github.com/ghetzel/go-snapscroll/snap"
	"github.com/ghetzel/go-stockutil/log"
)

// Engine wires the pieces together: the rule matcher reports snap
// containers, raw scroll notifications are coalesced per container, settled
// gestures are resolved to a snap point, and the animator carries the
// surface there. Exported fields may be replaced before Attach.
type Engine struct {
	// Scheduler is the host event loop. Defaults to wall-clock timers;
	// hosts with their own loop supply a scheduler pumped by it.
	Scheduler snap.Scheduler

	// Probe detects native snap support. When the host already snaps on
	// its own, Attach does nothing at all.
	Probe rules.Probe

	matcher    rules.Matcher
	resolver   *snap.Resolver
	animator   *snap.Animator
	containers map[string]*snap.Container
	attached   bool
	wired      bool
}

func New(matcher rules.Matcher) *Engine {
	return &Engine{
		Scheduler:  snap.NewTimerScheduler(),
		Probe:      &rules.StyleProbe{},
		matcher:    matcher,
		resolver:   snap.NewResolver(),
		containers: make(map[string]*snap.Container),
	}
}

// Attach activates the engine: it subscribes to the rule matcher and begins
// tracking matched containers. If the host snaps natively the call is a
// complete no-op. Attach is idempotent.
func (self *Engine) Attach() {
	if self.attached {
		return
	}

	if self.Probe != nil && self.Probe.HasNativeSupport() {
		log.Debugf("native scroll snapping detected; standing down")
		return
	}

	self.animator = snap.NewAnimator(self.Scheduler)
	self.attached = true

	// subscribe once, even across detach/reattach cycles
	if !self.wired {
		self.wired = true
		self.matcher.OnMatch(self.handleMatch)
		self.matcher.OnUnmatch(self.handleUnmatch)
	}
}

// Detach tears down every tracked container and stops reacting to matches.
func (self *Engine) Detach() {
	for id := range self.containers {
		self.handleUnmatch(id)
	}

	self.attached = false
}

// OnScroll is the raw scroll notification entry point; the host's event
// wiring calls it with the container's current offsets as often as it
// likes, from whatever goroutine it runs on. Delivery is serialized with the
// engine's own timers through the scheduler. Bursts are coalesced into a
// single settle per gesture.
func (self *Engine) OnScroll(id string, offsets geometry.Point) {
	if container, ok := self.containers[id]; ok {
		self.Scheduler.Post(func() {
			container.Coalescer().OnScroll(offsets)
		})
	}
}

// Container returns the tracked container with the given id, or nil.
func (self *Engine) Container(id string) *snap.Container {
	return self.containers[id]
}

func (self *Engine) handleMatch(match rules.Match) {
	self.Scheduler.Post(func() {
		self.applyMatch(match)
	})
}

func (self *Engine) applyMatch(match rules.Match) {
	if !self.attached {
		return
	}

	config := rules.ConfigFromDeclarations(match.Declarations)

	if config.Type == rules.SnapNone {
		log.Debugf("[match] %v declares no snap type; ignoring", match.ID)
		return
	}

	candidates := make([]*snap.Candidate, 0, len(match.Candidates))

	for _, spec := range match.Candidates {
		candidates = append(candidates, &snap.Candidate{
			Region: spec.Region,
			Align:  rules.AlignmentFromDeclarations(spec.Declarations),
		})
	}

	container := snap.NewContainer(match.ID, match.Surface, config, candidates)

	container.SetCoalescer(snap.NewCoalescer(self.Scheduler, func(start geometry.Point, end geometry.Point, direction snap.Direction) {
		self.handleSettle(container, direction)
	}))

	self.containers[match.ID] = container

	log.Debugf("[match] %v type=%v candidates=%d", match.ID, config.Type, len(candidates))
}

func (self *Engine) handleUnmatch(id string) {
	self.Scheduler.Post(func() {
		if container, ok := self.containers[id]; ok {
			self.animator.Cancel(container)
			container.Destroy()
			delete(self.containers, id)

			log.Debugf("[unmatch] %v", id)
		}
	})
}

func (self *Engine) handleSettle(container *snap.Container, direction snap.Direction) {
	// a container with nothing to snap to never moves
	if len(container.Candidates) == 0 {
		container.Coalescer().Resume()
		return
	}

	point, _ := self.resolver.Resolve(container, direction)

	self.animator.Animate(container, point, func() {
		container.Coalescer().Resume()
	})
}
