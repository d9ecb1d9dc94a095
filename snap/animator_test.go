package snap

import (
	"testing"
	"time"

	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/ghetzel/go-snapscroll/rules"
	"github.com/ghetzel/testify/require"
)

func TestPositionEndpoints(t *testing.T) {
	assert := require.New(t)

	duration := 200 * time.Millisecond

	assert.Equal(float64(0), Position(0, 100, 0, duration))
	assert.Equal(float64(100), Position(0, 100, duration, duration))
	assert.Equal(float64(100), Position(0, 100, duration+time.Second, duration))
}

func TestPositionEaseInCubic(t *testing.T) {
	assert := require.New(t)

	duration := 200 * time.Millisecond

	// cubic ease-in lags behind linear progress
	half := Position(0, 100, duration/2, duration)
	assert.Equal(float64(12.5), half)

	// monotonic
	previous := float64(0)

	for elapsed := time.Duration(0); elapsed <= duration; elapsed += 10 * time.Millisecond {
		value := Position(0, 100, elapsed, duration)
		assert.True(value >= previous, "position regressed at %v", elapsed)
		previous = value
	}
}

func TestAnimateReachesExactTarget(t *testing.T) {
	assert := require.New(t)

	scheduler := NewManualScheduler()
	container, surface := carousel()
	animator := NewAnimator(scheduler)

	surface.SetOffset(geometry.AxisX, 250)

	completions := 0

	animator.Animate(container, geometry.Point{X: 300, Y: geometry.NotApplicable}, func() {
		completions += 1
	})

	assert.True(animator.Animating(container))

	scheduler.Advance(BaseDuration + 2*FrameInterval)

	assert.False(animator.Animating(container))
	assert.Equal(float64(300), surface.Offset().X)
	assert.Equal(1, completions)
}

func TestAnimateCompletionFiresExactlyOnce(t *testing.T) {
	assert := require.New(t)

	scheduler := NewManualScheduler()
	container, surface := carousel()
	animator := NewAnimator(scheduler)

	surface.SetOffset(geometry.AxisX, 100)

	completions := 0

	animator.Animate(container, geometry.Point{X: 0, Y: geometry.NotApplicable}, func() {
		completions += 1
	})

	// well past the animation's own duration
	scheduler.Advance(5 * BaseDuration)

	assert.Equal(1, completions)
}

func TestAnimateLeavesInapplicableAxisUntouched(t *testing.T) {
	assert := require.New(t)

	scheduler := NewManualScheduler()

	surface := geometry.NewElementSurface(geometry.NewBox(0, 0, 400, 300), 1000, 900)
	surface.SetOffset(geometry.AxisY, 120)
	surface.SetOffset(geometry.AxisX, 50)

	container := NewContainer(`axes`, surface, &rules.Config{
		Type: rules.SnapX,
	}, nil)

	animator := NewAnimator(scheduler)
	animator.Animate(container, geometry.Point{X: 300, Y: geometry.NotApplicable}, nil)

	scheduler.Advance(BaseDuration + 2*FrameInterval)

	assert.Equal(float64(300), surface.Offset().X)
	assert.Equal(float64(120), surface.Offset().Y)
}

func TestAnimateSupersedeRestartsFromCurrentOffset(t *testing.T) {
	assert := require.New(t)

	scheduler := NewManualScheduler()
	container, surface := carousel()
	animator := NewAnimator(scheduler)

	firstCompleted := false
	secondCompleted := false

	animator.Animate(container, geometry.Point{X: 300, Y: geometry.NotApplicable}, func() {
		firstCompleted = true
	})

	// let the first animation get partway there
	scheduler.Advance(6 * FrameInterval)

	partial := surface.Offset().X
	assert.True(partial > 0)
	assert.True(partial < 300)

	animator.Animate(container, geometry.Point{X: 600, Y: geometry.NotApplicable}, func() {
		secondCompleted = true
	})

	// the superseding animation begins at the partial offset, not at the
	// first animation's target
	scheduler.Advance(FrameInterval)
	assert.True(surface.Offset().X >= partial)
	assert.True(surface.Offset().X < 300)

	scheduler.Advance(BaseDuration + 2*FrameInterval)

	assert.False(firstCompleted)
	assert.True(secondCompleted)
	assert.Equal(float64(600), surface.Offset().X)
}

func TestAnimateDegenerateViewportJumpsInstantly(t *testing.T) {
	assert := require.New(t)

	scheduler := NewManualScheduler()

	// zero-height viewport over zero travel: the duration math degenerates
	// and the animator jumps instead
	surface := geometry.NewElementSurface(geometry.NewBox(0, 0, 400, 0), 1000, 0)
	container := NewContainer(`degenerate`, surface, &rules.Config{
		Type: rules.SnapX,
	}, nil)

	completions := 0

	NewAnimator(scheduler).Animate(container, geometry.Point{X: surface.Offset().X, Y: geometry.NotApplicable}, func() {
		completions += 1
	})

	// no clock advance needed at all
	assert.Equal(1, completions)
	assert.False(scheduler.Pending())
}

func TestAnimationDuration(t *testing.T) {
	assert := require.New(t)

	// a full viewport of travel takes the whole base duration
	assert.Equal(BaseDuration, animationDuration(300, 300))

	// longer moves are capped
	assert.Equal(BaseDuration, animationDuration(3000, 300))

	// short hops still ease
	assert.Equal(233*time.Millisecond, animationDuration(1, 300))

	// degenerate metrics collapse to an instant jump
	assert.Equal(time.Duration(0), animationDuration(0, 0))
}
