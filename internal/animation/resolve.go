package animation

import "github.com/go-gl/mathgl/mgl32"

// Decision is the outcome of resolving one step.
type Decision struct {
	State State
	Speed float32
	Phase Phase
	// Dispatch is false while the character stays airborne, so the jump clip is not
	// restarted every step.
	Dispatch bool
}

func (d Decision) ClipName() string {
	return d.State.ClipName()
}

// Resolve is the pure state transition. prev is the latch carried from the previous step.
func Resolve(velocity mgl32.Vec3, grounded, sprintHeld bool, prev Phase, speeds Speeds) Decision {
	if !grounded {
		if prev == Airborne {
			return Decision{State: Jump, Speed: speeds.Idle, Phase: Airborne}
		}
		return Decision{State: Jump, Speed: speeds.Idle, Phase: Airborne, Dispatch: true}
	}

	state := Idle
	if velocity.Len() > MovingThreshold {
		state = Walk
		if sprintHeld {
			state = Run
		}
	}
	return Decision{State: state, Speed: speeds.For(state), Phase: Grounded, Dispatch: true}
}
