package locomotion

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tick = float32(1.0 / 60.0)

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tol) {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestIntegrate_GroundedWalkForward(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{}, 0, cfg, Input{Axes: mgl32.Vec2{0, 1}}, true, tick)

	approxEqual(t, Horizontal(v).Len(), 5, 1e-5, "horizontal speed")
	approxEqual(t, v.Z(), -5, 1e-5, "velocity.z")
	approxEqual(t, v.Y(), 0, 0, "velocity.y")
}

func TestIntegrate_GroundedSprintForward(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{}, 0, cfg, Input{Axes: mgl32.Vec2{0, 1}, Sprint: true}, true, tick)

	approxEqual(t, Horizontal(v).Len(), 8, 1e-5, "horizontal speed")
}

func TestIntegrate_GroundedSnapIgnoresPreviousHorizontal(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{20, 0, 20}, 0, cfg, Input{Axes: mgl32.Vec2{1, 0}}, true, tick)

	approxEqual(t, v.X(), 5, 1e-5, "velocity.x")
	approxEqual(t, v.Z(), 0, 1e-5, "velocity.z")
}

func TestIntegrate_DiagonalInputIsNormalized(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{}, 0, cfg, Input{Axes: mgl32.Vec2{1, 1}}, true, tick)

	approxEqual(t, Horizontal(v).Len(), 5, 1e-5, "horizontal speed")
}

func TestIntegrate_YawRotatesDirection(t *testing.T) {
	cfg := DefaultConfig()
	// A quarter turn to the left makes forward point along -X.
	v := Integrate(mgl32.Vec3{}, math.Pi/2, cfg, Input{Axes: mgl32.Vec2{0, 1}}, true, tick)

	approxEqual(t, v.X(), -5, 1e-4, "velocity.x")
	approxEqual(t, v.Z(), 0, 1e-4, "velocity.z")
}

func TestIntegrate_GroundedFrictionDecays(t *testing.T) {
	cfg := DefaultConfig()
	prev := mgl32.Vec3{3, 0, -4}
	for i := 0; i < 30; i++ {
		next := Integrate(prev, 0, cfg, Input{}, true, tick)
		if Horizontal(next).Len() >= Horizontal(prev).Len() {
			t.Fatalf("step %d: speed %.6f did not drop below %.6f", i, Horizontal(next).Len(), Horizontal(prev).Len())
		}
		prev = next
	}

	// lerp(h, 0, inertia*dt) scales by (1 - inertia*dt) each step.
	one := Integrate(mgl32.Vec3{3, 0, -4}, 0, cfg, Input{}, true, tick)
	approxEqual(t, Horizontal(one).Len(), 5*(1-cfg.Inertia*tick), 1e-5, "one step speed")
}

func TestIntegrate_GroundedFrictionLeavesVerticalUntouched(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{1, 2.5, 1}, 0, cfg, Input{}, true, tick)

	approxEqual(t, v.Y(), 2.5, 0, "velocity.y")
}

func TestIntegrate_ZeroHorizontalStaysZero(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{}, 0, cfg, Input{}, true, tick)
	if v != (mgl32.Vec3{}) {
		t.Fatalf("velocity = %v, want zero", v)
	}
}

func TestIntegrate_GravityWhileAirborne(t *testing.T) {
	cfg := DefaultConfig()
	v := mgl32.Vec3{}
	for i := 1; i <= 10; i++ {
		prevY := v.Y()
		v = Integrate(v, 0, cfg, Input{}, false, tick)
		approxEqual(t, prevY-v.Y(), cfg.Gravity*tick, 1e-5, "gravity delta")
	}
}

func TestIntegrate_JumpRequiresGround(t *testing.T) {
	cfg := DefaultConfig()

	grounded := Integrate(mgl32.Vec3{0, -0.2, 0}, 0, cfg, Input{JumpPressed: true}, true, tick)
	approxEqual(t, grounded.Y(), cfg.JumpVelocity, 0, "grounded jump velocity.y")

	airborne := Integrate(mgl32.Vec3{0, 1, 0}, 0, cfg, Input{JumpPressed: true}, false, tick)
	approxEqual(t, airborne.Y(), 1-cfg.Gravity*tick, 1e-6, "airborne velocity.y")
}

func TestIntegrate_AirControlBlendsTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{}, 0, cfg, Input{Axes: mgl32.Vec2{1, 0}}, false, tick)

	want := 5 * cfg.AirControl * tick * AirControlMultiplier
	approxEqual(t, v.X(), want, 1e-5, "velocity.x")
	if v.X() >= 5 {
		t.Fatalf("air steering snapped to target: %.4f", v.X())
	}
}

func TestIntegrate_AirborneWithoutInputKeepsMomentum(t *testing.T) {
	cfg := DefaultConfig()
	v := Integrate(mgl32.Vec3{3, 0, 2}, 0, cfg, Input{}, false, tick)

	approxEqual(t, v.X(), 3, 0, "velocity.x")
	approxEqual(t, v.Z(), 2, 0, "velocity.z")
}

func TestIntegrate_NonPositiveDtIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	in := mgl32.Vec3{1, 2, 3}
	if got := Integrate(in, 0, cfg, Input{Axes: mgl32.Vec2{0, 1}, JumpPressed: true}, false, 0); got != in {
		t.Fatalf("Integrate with dt=0 = %v, want %v", got, in)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sprint slower than walk", func(c *Config) { c.SprintSpeed = 2 }, true},
		{"zero walk", func(c *Config) { c.WalkSpeed = 0 }, true},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }, true},
		{"negative inertia", func(c *Config) { c.Inertia = -0.5 }, true},
		{"zero gravity allowed", func(c *Config) { c.Gravity = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}
