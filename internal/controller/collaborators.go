package controller

import "github.com/go-gl/mathgl/mgl32"

// Body is the physics side: it owns ground contact and moves the character.
type Body interface {
	IsGrounded() bool
	// MoveAndSlide applies velocity for dt seconds and returns the velocity after
	// collision, which the next tick treats as authoritative.
	MoveAndSlide(velocity mgl32.Vec3, dt float32) mgl32.Vec3
}

// Orientable is implemented by bodies that want the look yaw applied to them.
type Orientable interface {
	SetYaw(yaw float32)
}

// Input is polled once per tick.
type Input interface {
	// MovementAxes is (strafe right, forward), each in [-1, 1].
	MovementAxes() mgl32.Vec2
	SprintHeld() bool
	JumpJustPressed() bool
	// MouseDelta is the pixel motion since the last poll.
	MouseDelta() mgl32.Vec2
	ToggleCaptureRequested() bool
}

// CursorLock is implemented by inputs that can capture and release the mouse.
type CursorLock interface {
	SetMouseCaptured(captured bool)
}

// Camera is the first-person camera attached to the body.
type Camera interface {
	LocalOffset() mgl32.Vec3
	SetLocalOffset(offset mgl32.Vec3)
	SetFov(degrees float32)
	SetPitch(radians float32)
}
