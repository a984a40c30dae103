package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BlockStore answers whether the unit voxel with the given minimum corner is solid.
type BlockStore interface {
	IsSolid(x, y, z int) bool
}

type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAt returns the box of a body whose feet are centred on pos.
func BoxAt(pos mgl64.Vec3, width, height float64) AABB {
	half := width / 2
	return AABB{
		Min: mgl64.Vec3{pos.X() - half, pos.Y(), pos.Z() - half},
		Max: mgl64.Vec3{pos.X() + half, pos.Y() + height, pos.Z() + half},
	}
}

func (a AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

func (a AABB) Intersects(b AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Min[i] >= b.Max[i] || a.Max[i] <= b.Min[i] {
			return false
		}
	}
	return true
}

func CollidesWithBlock(box AABB, store BlockStore) bool {
	if store == nil {
		return false
	}
	lo, hi := cellRange(box)
	for y := lo[1]; y <= hi[1]; y++ {
		for x := lo[0]; x <= hi[0]; x++ {
			for z := lo[2]; z <= hi[2]; z++ {
				if !store.IsSolid(x, y, z) {
					continue
				}
				cell := AABB{
					Min: mgl64.Vec3{float64(x), float64(y), float64(z)},
					Max: mgl64.Vec3{float64(x + 1), float64(y + 1), float64(z + 1)},
				}
				if box.Intersects(cell) {
					return true
				}
			}
		}
	}
	return false
}

// ResolveMovement sweeps box by delta one axis at a time (Y, then X, then Z) and returns
// the displacement actually applied plus which axes were cut short.
func ResolveMovement(box AABB, delta mgl64.Vec3, store BlockStore) (mgl64.Vec3, [3]bool) {
	var applied mgl64.Vec3
	var blocked [3]bool
	for _, axis := range [3]int{1, 0, 2} {
		allowed := sweepAxis(box, axis, delta[axis], store)
		blocked[axis] = !nearlyEqual(allowed, delta[axis])
		applied[axis] = allowed

		var step mgl64.Vec3
		step[axis] = allowed
		box = box.Translate(step)
	}
	return applied, blocked
}

func sweepAxis(box AABB, axis int, delta float64, store BlockStore) float64 {
	if store == nil || nearlyZero(delta) {
		return delta
	}

	lo, hi := cellRange(box)
	allowed := delta
	if delta > 0 {
		start := int(math.Floor(box.Max[axis]))
		end := int(math.Floor(box.Max[axis] + delta))
		for c := start; c <= end; c++ {
			if !layerHasSolid(store, axis, c, lo, hi) {
				continue
			}
			if candidate := float64(c) - box.Max[axis]; candidate < allowed {
				allowed = candidate
			}
		}
		return allowed
	}

	start := int(math.Floor(box.Min[axis] + delta))
	end := int(math.Floor(box.Min[axis] - CollisionAxisTolerance))
	for c := end; c >= start; c-- {
		if !layerHasSolid(store, axis, c, lo, hi) {
			continue
		}
		if candidate := float64(c+1) - box.Min[axis]; candidate > allowed {
			allowed = candidate
		}
	}
	return allowed
}

// layerHasSolid reports whether any cell in the slab axis == c, bounded by lo/hi on the
// other two axes, is solid.
func layerHasSolid(store BlockStore, axis, c int, lo, hi [3]int) bool {
	a1, a2 := (axis+1)%3, (axis+2)%3
	var cell [3]int
	cell[axis] = c
	for i := lo[a1]; i <= hi[a1]; i++ {
		for j := lo[a2]; j <= hi[a2]; j++ {
			cell[a1], cell[a2] = i, j
			if store.IsSolid(cell[0], cell[1], cell[2]) {
				return true
			}
		}
	}
	return false
}

func cellRange(box AABB) (lo, hi [3]int) {
	for i := 0; i < 3; i++ {
		lo[i] = floorForMin(box.Min[i])
		hi[i] = floorForMax(box.Max[i])
	}
	return lo, hi
}

func floorForMin(v float64) int {
	return int(math.Floor(v + CollisionAxisTolerance))
}

func floorForMax(v float64) int {
	return int(math.Floor(v - CollisionAxisTolerance))
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionAxisTolerance
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= CollisionAxisTolerance
}
