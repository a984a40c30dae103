// Package controller runs one first-person character: it polls input, integrates
// velocity, hands it to the physics body, then drives the camera and the animation sink
// from the result. One Controller owns all of its state and is not safe for concurrent use.
package controller

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Versifine/stride/internal/animation"
	"github.com/Versifine/stride/internal/camera"
	"github.com/Versifine/stride/internal/locomotion"
)

// KinematicState is the movement state mutated every tick.
type KinematicState struct {
	Velocity mgl32.Vec3
	Grounded bool
	// Yaw is the body facing in radians, wrapped into (-Pi, Pi].
	Yaw float32
	// Pitch is the camera pitch in radians, within +/-80 degrees.
	Pitch float32
}

// Snapshot is a read-only copy of everything the controller tracks.
type Snapshot struct {
	Kinematic    KinematicState
	Presentation camera.Presentation
	Animation    animation.State
	Phase        animation.Phase
	Clip         string
	Captured     bool
	Ticks        uint64
}

type Option func(*Controller)

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(c *Controller) {
		c.id = id
	}
}

type Controller struct {
	id       uuid.UUID
	cfg      Config
	body     Body
	input    Input
	camera   Camera
	sink     animation.Sink
	animator *animation.Animator

	kin      KinematicState
	view     camera.Presentation
	clip     string
	captured bool
	active   bool
	ticks    uint64
	log      *slog.Logger
}

// New validates the configuration and collaborators and activates the controller. Body and
// input are required. A missing camera or sink is reported once here; the controller then
// runs without camera feel or without animations.
func New(cfg Config, body Body, input Input, cam Camera, sink animation.Sink, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: body is nil", ErrMissingCollaborator)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input is nil", ErrMissingCollaborator)
	}

	c := &Controller{
		id:     uuid.New(),
		cfg:    cfg,
		body:   body,
		input:  input,
		camera: cam,
		sink:   sink,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("controller", c.id.String())
	c.animator = animation.NewAnimator(sink, cfg.Animation, c.log)
	c.activate()
	return c, nil
}

func (c *Controller) activate() {
	c.active = true
	c.kin.Grounded = c.body.IsGrounded()
	c.setCaptured(true)

	if c.camera == nil {
		c.log.Warn("Camera missing, camera feel disabled")
	} else {
		c.view = camera.NewPresentation(c.cfg.Camera, c.camera.LocalOffset())
		c.camera.SetFov(c.view.Fov)
		c.camera.SetPitch(c.kin.Pitch)
	}

	if c.sink == nil {
		c.log.Warn("Animation sink missing, animations will be skipped")
	} else if lister, ok := c.sink.(interface{ Names() []string }); ok {
		c.log.Info("Animation sink connected", "clips", lister.Names())
	}

	c.log.Info("Controller activated", "grounded", c.kin.Grounded)
}

func (c *Controller) ID() uuid.UUID { return c.id }

func (c *Controller) Config() Config { return c.cfg }

// Tick runs one fixed step of dt seconds. Non-positive dt is ignored.
func (c *Controller) Tick(dt float32) error {
	if c == nil {
		return fmt.Errorf("controller is nil")
	}
	if !c.active {
		return ErrDeactivated
	}
	if dt <= 0 {
		return nil
	}

	c.pollLook()

	in := locomotion.Input{
		Axes:        c.input.MovementAxes(),
		Sprint:      c.input.SprintHeld(),
		JumpPressed: c.input.JumpJustPressed(),
	}
	grounded := c.body.IsGrounded()
	velocity := locomotion.Integrate(c.kin.Velocity, c.kin.Yaw, c.cfg.Movement, in, grounded, dt)

	velocity = c.body.MoveAndSlide(velocity, dt)
	c.kin.Velocity = velocity
	c.kin.Grounded = c.body.IsGrounded()

	if c.camera != nil {
		c.view = c.view.Step(camera.Motion{
			Velocity:     velocity,
			Grounded:     c.kin.Grounded,
			WalkSpeed:    c.cfg.Movement.WalkSpeed,
			CurrentSpeed: c.cfg.Movement.CurrentSpeed(in.Sprint),
		}, c.cfg.Camera, c.cfg.Movement.SprintSpeed, dt)
		c.camera.SetFov(c.view.Fov)
		c.camera.SetLocalOffset(c.view.Bob.Offset)
	}

	res := c.animator.Update(velocity, c.kin.Grounded, in.Sprint)
	if res.Clip != "" {
		c.clip = res.Clip
	}

	c.ticks++
	return nil
}

func (c *Controller) pollLook() {
	if d := c.input.MouseDelta(); d != (mgl32.Vec2{}) {
		c.HandleMouseMotion(d.X(), d.Y())
	}
	if c.input.ToggleCaptureRequested() {
		c.ToggleCapture()
	}
}

// HandleMouseMotion applies a mouse delta in pixels to yaw and pitch. It never touches
// velocity, so hosts may call it straight from their input events between ticks. Motion
// is ignored while the mouse is released or when there is no camera.
func (c *Controller) HandleMouseMotion(dx, dy float32) {
	if c == nil || !c.active || !c.captured || c.camera == nil {
		return
	}
	c.kin.Pitch, c.kin.Yaw = camera.UpdateLook(c.kin.Pitch, c.kin.Yaw, mgl32.Vec2{dx, dy}, c.cfg.Camera.Sensitivity)
	c.camera.SetPitch(c.kin.Pitch)
	if o, ok := c.body.(Orientable); ok {
		o.SetYaw(c.kin.Yaw)
	}
}

// ToggleCapture flips between captured and released mouse.
func (c *Controller) ToggleCapture() {
	if c == nil || !c.active {
		return
	}
	c.setCaptured(!c.captured)
	if c.captured {
		c.log.Info("Mouse captured")
	} else {
		c.log.Info("Mouse released")
	}
}

func (c *Controller) setCaptured(captured bool) {
	c.captured = captured
	if lock, ok := c.input.(CursorLock); ok {
		lock.SetMouseCaptured(captured)
	}
}

// Deactivate releases the mouse and stops the controller. Later ticks return
// ErrDeactivated.
func (c *Controller) Deactivate() {
	if c == nil || !c.active {
		return
	}
	c.setCaptured(false)
	c.active = false
	c.log.Info("Controller deactivated", "ticks", c.ticks)
}

func (c *Controller) Active() bool {
	return c != nil && c.active
}

func (c *Controller) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Kinematic:    c.kin,
		Presentation: c.view,
		Animation:    c.animator.State(),
		Phase:        c.animator.Phase(),
		Clip:         c.clip,
		Captured:     c.captured,
		Ticks:        c.ticks,
	}
}
