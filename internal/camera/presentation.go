package camera

import "github.com/go-gl/mathgl/mgl32"

// Presentation is the per-character camera state threaded through every step.
type Presentation struct {
	Fov float32
	Bob Bob
}

func NewPresentation(cfg Config, rest mgl32.Vec3) Presentation {
	return Presentation{Fov: cfg.BaseFov, Bob: NewBob(rest)}
}

// Step advances FOV and head bob together.
func (p Presentation) Step(m Motion, cfg Config, sprintSpeed, dt float32) Presentation {
	p.Fov = UpdateFov(p.Fov, m.Velocity, cfg, sprintSpeed, dt)
	p.Bob = UpdateBob(p.Bob, m, cfg, dt)
	return p
}
