package debug

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultPulseTicks is how long one movement key press is held, about 180ms at 60 Hz.
	DefaultPulseTicks = 11
	// ArrowPixels is the mouse travel one arrow key press stands for.
	ArrowPixels = 25
)

// Keyboard turns discrete key presses into per-tick controller input. A terminal only
// reports presses, not releases, so each movement key holds its direction for a fixed
// number of ticks. Presses arrive from the reader goroutine; Advance and the poll methods
// run on the simulation goroutine.
type Keyboard struct {
	mu         sync.Mutex
	pulseTicks int

	forward  int
	backward int
	left     int
	right    int
	sprint   bool

	jumpQueued   bool
	toggleQueued bool
	pendingLook  mgl32.Vec2

	axes     mgl32.Vec2
	jump     bool
	toggle   bool
	look     mgl32.Vec2
	captured bool
}

func NewKeyboard(pulseTicks int) *Keyboard {
	if pulseTicks <= 0 {
		pulseTicks = DefaultPulseTicks
	}
	return &Keyboard{pulseTicks: pulseTicks}
}

// Advance latches queued presses into the tick about to run. It never runs dry.
func (k *Keyboard) Advance() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.axes = mgl32.Vec2{}
	if k.right > 0 {
		k.axes[0]++
		k.right--
	}
	if k.left > 0 {
		k.axes[0]--
		k.left--
	}
	if k.forward > 0 {
		k.axes[1]++
		k.forward--
	}
	if k.backward > 0 {
		k.axes[1]--
		k.backward--
	}

	k.jump, k.jumpQueued = k.jumpQueued, false
	k.toggle, k.toggleQueued = k.toggleQueued, false
	k.look, k.pendingLook = k.pendingLook, mgl32.Vec2{}
	return true
}

func (k *Keyboard) PressForward() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.forward, k.backward = k.pulseTicks, 0
}

func (k *Keyboard) PressBackward() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.backward, k.forward = k.pulseTicks, 0
}

func (k *Keyboard) PressLeft() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.left, k.right = k.pulseTicks, 0
}

func (k *Keyboard) PressRight() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.right, k.left = k.pulseTicks, 0
}

func (k *Keyboard) PressJump() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.jumpQueued = true
}

func (k *Keyboard) PressToggleCapture() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.toggleQueued = true
}

// ToggleSprint flips sprint and returns the new value.
func (k *Keyboard) ToggleSprint() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.sprint = !k.sprint
	return k.sprint
}

// Look queues mouse travel in pixels for the next tick.
func (k *Keyboard) Look(dx, dy float32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pendingLook = k.pendingLook.Add(mgl32.Vec2{dx, dy})
}

// Clear drops every held and queued input.
func (k *Keyboard) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.forward, k.backward, k.left, k.right = 0, 0, 0, 0
	k.sprint = false
	k.jumpQueued, k.toggleQueued = false, false
	k.pendingLook = mgl32.Vec2{}
}

func (k *Keyboard) MovementAxes() mgl32.Vec2 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.axes
}

func (k *Keyboard) SprintHeld() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sprint
}

func (k *Keyboard) JumpJustPressed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.jump
}

func (k *Keyboard) MouseDelta() mgl32.Vec2 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.look
}

func (k *Keyboard) ToggleCaptureRequested() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.toggle
}

func (k *Keyboard) SetMouseCaptured(captured bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.captured = captured
}

func (k *Keyboard) MouseCaptured() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.captured
}
