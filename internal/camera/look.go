// Package camera implements the first-person camera feel: mouse look, speed-reactive
// field of view and procedural head bob.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Versifine/stride/internal/ease"
)

var (
	minPitch = mgl32.DegToRad(-PitchLimitDegrees)
	maxPitch = mgl32.DegToRad(PitchLimitDegrees)
)

// UpdateLook applies one mouse delta (pixels) to the body yaw and camera pitch. Yaw is
// wrapped into (-Pi, Pi]; pitch is clamped to +/-80 degrees.
func UpdateLook(pitch, yaw float32, delta mgl32.Vec2, sensitivity float32) (float32, float32) {
	yaw = ease.WrapRadians(yaw - delta.X()*sensitivity)
	pitch = ClampPitch(pitch - delta.Y()*sensitivity)
	return pitch, yaw
}

func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, minPitch, maxPitch)
}

// PitchLimits returns the pitch range in radians.
func PitchLimits() (float32, float32) {
	return minPitch, maxPitch
}
