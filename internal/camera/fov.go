package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Versifine/stride/internal/ease"
)

// TargetFov maps a speed onto [BaseFov, BaseFov+MaxFovIncrease], reaching the top of the
// range at sprintSpeed.
func TargetFov(speed float32, cfg Config, sprintSpeed float32) float32 {
	lo, hi := cfg.FovBounds()
	var ratio float32
	if sprintSpeed > 0 {
		ratio = mgl32.Clamp(speed/sprintSpeed, 0, 1)
	}
	return mgl32.Clamp(cfg.BaseFov+ratio*cfg.MaxFovIncrease, lo, hi)
}

// UpdateFov eases current toward the speed-derived target. It never snaps and the result
// never leaves the configured bounds.
func UpdateFov(current float32, velocity mgl32.Vec3, cfg Config, sprintSpeed, dt float32) float32 {
	lo, hi := cfg.FovBounds()
	if dt <= 0 {
		return mgl32.Clamp(current, lo, hi)
	}
	target := TargetFov(velocity.Len(), cfg, sprintSpeed)
	next := ease.Float(current, target, ease.Weight(cfg.FovTransitionSpeed, dt))
	return mgl32.Clamp(next, lo, hi)
}
