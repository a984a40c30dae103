// Package physics is a voxel collision body that moves a character and reports ground
// contact. It plays the collision collaborator for the controller.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Body is an axis-aligned character box sliding through a BlockStore.
type Body struct {
	position mgl64.Vec3
	yaw      float32
	width    float64
	height   float64
	store    BlockStore
	onGround bool
}

func NewBody(position mgl64.Vec3, store BlockStore) *Body {
	b := &Body{
		position: position,
		width:    DefaultBodyWidth,
		height:   DefaultBodyHeight,
		store:    store,
	}
	b.onGround = b.probeGround()
	return b
}

func (b *Body) Position() mgl64.Vec3 { return b.position }

// SetPosition teleports the body and refreshes ground contact.
func (b *Body) SetPosition(pos mgl64.Vec3) {
	b.position = pos
	b.onGround = b.probeGround()
}

func (b *Body) Yaw() float32 { return b.yaw }

func (b *Body) SetYaw(yaw float32) { b.yaw = yaw }

func (b *Body) Box() AABB {
	return BoxAt(b.position, b.width, b.height)
}

// IsGrounded reports ground contact as of the last move.
func (b *Body) IsGrounded() bool { return b.onGround }

// MoveAndSlide moves the body by velocity*dt, stopping at solid voxels. Velocity along a
// blocked axis is zeroed, and the returned velocity is what the next step should read.
func (b *Body) MoveAndSlide(velocity mgl32.Vec3, dt float32) mgl32.Vec3 {
	if dt <= 0 {
		return velocity
	}
	delta := Vec32To64(velocity).Mul(float64(dt))
	applied, blocked := ResolveMovement(b.Box(), delta, b.store)
	b.position = b.position.Add(applied)

	for axis, hit := range blocked {
		if hit {
			velocity[axis] = 0
		}
	}
	zeroResidual(&velocity)
	b.onGround = b.probeGround()
	return velocity
}

func (b *Body) probeGround() bool {
	if b.store == nil {
		return false
	}
	probe := b.Box().Translate(mgl64.Vec3{0, -GroundProbeDistance, 0})
	return CollidesWithBlock(probe, b.store)
}

func zeroResidual(v *mgl32.Vec3) {
	for i := range v {
		if math.Abs(float64(v[i])) < MinimumResidualSpeed {
			v[i] = 0
		}
	}
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
