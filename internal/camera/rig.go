package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.05
	farPlane  = 1000.0
)

// Rig is a plain first-person camera mounted on a body. It keeps what the controller
// pushes into it and builds view and projection matrices from that.
type Rig struct {
	offset mgl32.Vec3
	fov    float32
	pitch  float32
}

// NewRig mounts a camera at offset (eye height above the feet, usually) with the given
// vertical FOV in degrees.
func NewRig(offset mgl32.Vec3, fov float32) *Rig {
	return &Rig{offset: offset, fov: fov}
}

func (r *Rig) LocalOffset() mgl32.Vec3 { return r.offset }

func (r *Rig) SetLocalOffset(offset mgl32.Vec3) { r.offset = offset }

func (r *Rig) Fov() float32 { return r.fov }

func (r *Rig) SetFov(degrees float32) { r.fov = degrees }

func (r *Rig) Pitch() float32 { return r.pitch }

func (r *Rig) SetPitch(radians float32) { r.pitch = radians }

// Front is the look direction for a body yaw. Zero yaw and pitch look down -Z.
func (r *Rig) Front(yaw float32) mgl32.Vec3 {
	cp := math32.Cos(r.pitch)
	return mgl32.Vec3{
		-math32.Sin(yaw) * cp,
		math32.Sin(r.pitch),
		-math32.Cos(yaw) * cp,
	}
}

// Eye is the world position of the camera for a body at feet position with the given yaw.
// The local offset turns with the body.
func (r *Rig) Eye(feet mgl32.Vec3, yaw float32) mgl32.Vec3 {
	return feet.Add(mgl32.Rotate3DY(yaw).Mul3x1(r.offset))
}

func (r *Rig) ViewMatrix(feet mgl32.Vec3, yaw float32) mgl32.Mat4 {
	eye := r.Eye(feet, yaw)
	return mgl32.LookAtV(eye, eye.Add(r.Front(yaw)), mgl32.Vec3{0, 1, 0})
}

func (r *Rig) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(r.fov), aspect, nearPlane, farPlane)
}
