package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Versifine/stride/internal/ease"
)

const (
	// BobSpeedThreshold is the speed above which the head bobs, and below which the
	// phase resets.
	BobSpeedThreshold = 0.1
	// Side sway runs at half the vertical frequency with a smaller amplitude.
	swayFrequencyRatio = 0.5
	swayAmplitudeRatio = 0.3
	restReturnRate     = 5.0
)

// Bob is the head bob state of one camera.
type Bob struct {
	Phase float32
	// Offset is the camera's current local position.
	Offset mgl32.Vec3
	// Rest is the local position recorded at activation.
	Rest mgl32.Vec3
}

func NewBob(rest mgl32.Vec3) Bob {
	return Bob{Offset: rest, Rest: rest}
}

// Motion is what the bob reads from the locomotion side for one step.
type Motion struct {
	Velocity     mgl32.Vec3
	Grounded     bool
	WalkSpeed    float32
	CurrentSpeed float32
}

// UpdateBob advances the head bob by one step.
//
// The phase reset is gated on speed alone, not on the grounded flag, so a character that is
// airborne and slow loses its phase while a fast airborne one keeps advancing it unseen.
func UpdateBob(b Bob, m Motion, cfg Config, dt float32) Bob {
	if dt <= 0 {
		return b
	}
	speed := m.Velocity.Len()

	if m.Grounded && speed > BobSpeedThreshold && m.CurrentSpeed > 0 && m.WalkSpeed > 0 {
		speedFactor := speed / m.CurrentSpeed
		frequency := cfg.BobFrequency * (m.CurrentSpeed / m.WalkSpeed)
		b.Phase += dt * frequency * speedFactor

		bobY := math32.Sin(b.Phase) * cfg.BobAmplitude * speedFactor
		bobX := math32.Sin(b.Phase*swayFrequencyRatio) * cfg.BobAmplitude * swayAmplitudeRatio * speedFactor
		b.Offset = b.Rest.Add(mgl32.Vec3{bobX, bobY, 0})
		return b
	}

	b.Offset = ease.Vec3(b.Offset, b.Rest, ease.Weight(restReturnRate, dt))
	if speed < BobSpeedThreshold {
		b.Phase = 0
	}
	return b
}
