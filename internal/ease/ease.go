// Package ease holds the frame-rate independent interpolation helpers shared by the
// integrator and the camera layer.
package ease

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Weight turns a per-second rate into a lerp weight for one step of length dt.
// The result is clamped to [0, 1] so a long frame lands on the target instead of
// overshooting past it.
func Weight(rate, dt float32) float32 {
	return mgl32.Clamp(rate*dt, 0, 1)
}

// Float moves from toward to by the clamped weight w.
func Float(from, to, w float32) float32 {
	w = mgl32.Clamp(w, 0, 1)
	return from + (to-from)*w
}

// Vec3 is Float applied component-wise.
func Vec3(from, to mgl32.Vec3, w float32) mgl32.Vec3 {
	w = mgl32.Clamp(w, 0, 1)
	return from.Add(to.Sub(from).Mul(w))
}

// WrapRadians folds an angle into (-Pi, Pi].
func WrapRadians(v float32) float32 {
	v = math32.Mod(v+math32.Pi, 2*math32.Pi)
	if v <= 0 {
		v += 2 * math32.Pi
	}
	return v - math32.Pi
}

// ApproxEqual reports whether a and b are within tol of each other.
func ApproxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
