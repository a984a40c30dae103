package animation

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Sink is the animation player the resolved state is handed to.
type Sink interface {
	HasAnimation(name string) bool
	// CurrentAnimation returns "" when nothing is playing.
	CurrentAnimation() string
	Play(name string)
	SetSpeedScale(scale float32)
}

// Result reports what the animator did for one step.
type Result struct {
	Decision
	// Clip is the clip the sink was told to play, which differs from the state's own clip
	// after a fallback. Empty when nothing was dispatched.
	Clip string
	// Switched is true when Play was issued this step.
	Switched bool
}

// Animator owns the ground latch and applies decisions to a Sink. A nil sink is allowed;
// the state machine still advances.
type Animator struct {
	sink    Sink
	speeds  Speeds
	phase   Phase
	state   State
	missing map[string]struct{}
	log     *slog.Logger
}

func NewAnimator(sink Sink, speeds Speeds, log *slog.Logger) *Animator {
	if log == nil {
		log = slog.Default()
	}
	return &Animator{
		sink:    sink,
		speeds:  speeds,
		missing: make(map[string]struct{}),
		log:     log,
	}
}

func (a *Animator) Phase() Phase { return a.phase }

func (a *Animator) State() State { return a.state }

func (a *Animator) Update(velocity mgl32.Vec3, grounded, sprintHeld bool) Result {
	d := Resolve(velocity, grounded, sprintHeld, a.phase, a.speeds)
	if d.Phase != a.phase || d.State != a.state {
		a.log.Debug("Animation state changed",
			"from", a.state, "to", d.State, "phase", d.Phase)
	}
	a.phase = d.Phase
	a.state = d.State

	res := Result{Decision: d}
	if !d.Dispatch || a.sink == nil {
		return res
	}

	if clip, switched, ok := a.dispatch(d.ClipName(), d.Speed); ok {
		res.Clip, res.Switched = clip, switched
		return res
	}
	if d.State == Jump {
		// Checked again on every airborne entry; availability is never cached.
		if clip, switched, ok := a.dispatch(ClipIdle, a.speeds.Idle); ok {
			res.Clip, res.Switched = clip, switched
		}
	}
	return res
}

func (a *Animator) dispatch(name string, speed float32) (string, bool, bool) {
	if !a.sink.HasAnimation(name) {
		if _, seen := a.missing[name]; !seen {
			a.missing[name] = struct{}{}
			a.log.Warn("Animation not found", "clip", name)
		}
		return "", false, false
	}
	switched := false
	if a.sink.CurrentAnimation() != name {
		a.sink.Play(name)
		switched = true
		a.log.Debug("Playing animation", "clip", name, "speed", speed)
	}
	a.sink.SetSpeedScale(speed)
	return name, switched, true
}
