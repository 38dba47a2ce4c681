package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	frameInterval = 33 * time.Millisecond

	// maxMotionFrames ends a motion that has not come to rest on its own
	maxMotionFrames = 60

	// flickVelocity is the release speed, in cells per second, that counts as a flick
	flickVelocity = 40.0

	// a motion is at rest when it is this close to the target and this slow
	restDistance = 0.5
	restVelocity = 5.0
)

var (
	animationSpring    = harmonica.NewSpring(harmonica.FPS(int(time.Second/frameInterval)), 12.0, 1.0)
	decelerationSpring = harmonica.NewSpring(harmonica.FPS(int(time.Second/frameInterval)), 8.0, 1.0)
)

type motion int

const (
	motionNone motion = iota
	motionAnimating
	motionDecelerating
)

// terminalViewport is the scroll surface of the pager frame.
// One page spans extent cells along the paging axis.
type terminalViewport struct {
	offset float64
	extent float64

	motion   motion
	spring   harmonica.Spring
	to       float64
	velocity float64 // cells per second
	frame    int
}

func newTerminalViewport() *terminalViewport {
	return &terminalViewport{extent: 1}
}

// Offset implements paging.Viewport
func (v *terminalViewport) Offset() float64 { return v.offset }

// Extent implements paging.Viewport
func (v *terminalViewport) Extent() float64 { return v.extent }

// SetOffset implements paging.Viewport. A jump stops any running motion.
func (v *terminalViewport) SetOffset(offset float64) {
	v.offset = offset
	v.stop()
}

// AnimateOffset implements paging.Viewport. The model calls Engine.AnimationFinished on the last frame.
// A retarget keeps the current velocity.
func (v *terminalViewport) AnimateOffset(offset float64) {
	velocity := 0.0
	if v.motion != motionNone {
		velocity = v.velocity
	}
	v.start(motionAnimating, animationSpring, offset, velocity)
}

// drag moves the offset under the pointer and stops any motion
func (v *terminalViewport) drag(offset float64) {
	v.offset = offset
	v.stop()
}

// decelerate coasts to the page boundary ahead of velocity.
// Velocity is in offset units per second.
func (v *terminalViewport) decelerate(velocity float64) float64 {
	pos := v.offset / v.extent
	target := math.Round(pos)
	switch {
	case velocity > 0:
		target = math.Ceil(pos)
	case velocity < 0:
		target = math.Floor(pos)
	}
	to := target * v.extent
	v.start(motionDecelerating, decelerationSpring, to, velocity)
	return to
}

func (v *terminalViewport) start(kind motion, spring harmonica.Spring, to, velocity float64) {
	v.motion = kind
	v.spring = spring
	v.to = to
	v.velocity = velocity
	v.frame = 0
}

func (v *terminalViewport) stop() {
	v.motion = motionNone
	v.velocity = 0
}

// moving reports the kind of motion in progress
func (v *terminalViewport) moving() motion {
	return v.motion
}

// step advances one frame and reports the new offset and whether the motion ended
func (v *terminalViewport) step() (float64, bool) {
	if v.motion == motionNone {
		return v.offset, true
	}
	v.frame++
	before := v.to - v.offset
	offset, velocity := v.spring.Update(v.offset, v.velocity, v.to)
	after := v.to - offset

	// a coasting page stops at the boundary instead of bouncing back
	crossed := v.motion == motionDecelerating && (before == 0 || before*after <= 0)
	rest := math.Abs(after) < restDistance && math.Abs(velocity) < restVelocity
	if crossed || rest || v.frame >= maxMotionFrames {
		v.offset = v.to
		v.stop()
		return v.offset, true
	}
	v.offset = offset
	v.velocity = velocity
	return v.offset, false
}

// setExtent resizes a page, keeping every position at the same page fraction
func (v *terminalViewport) setExtent(extent float64) {
	if extent <= 0 || extent == v.extent {
		return
	}
	scale := extent / v.extent
	v.offset *= scale
	v.to *= scale
	v.velocity *= scale
	v.extent = extent
}
