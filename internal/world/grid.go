// Package world holds the voxel layout a physics body collides with.
package world

type BlockPos struct {
	X int
	Y int
	Z int
}

// Grid is a sparse set of solid unit voxels.
type Grid struct {
	solid map[BlockPos]struct{}
}

func NewGrid() *Grid {
	return &Grid{solid: make(map[BlockPos]struct{})}
}

func (g *Grid) IsSolid(x, y, z int) bool {
	if g == nil {
		return false
	}
	_, ok := g.solid[BlockPos{X: x, Y: y, Z: z}]
	return ok
}

func (g *Grid) SetSolid(x, y, z int) {
	g.solid[BlockPos{X: x, Y: y, Z: z}] = struct{}{}
}

func (g *Grid) Clear(x, y, z int) {
	delete(g.solid, BlockPos{X: x, Y: y, Z: z})
}

// AddFloor fills the rectangle [minX,maxX] x [minZ,maxZ] at height y.
func (g *Grid) AddFloor(minX, maxX, minZ, maxZ, y int) {
	g.AddBox(BlockPos{X: minX, Y: y, Z: minZ}, BlockPos{X: maxX, Y: y, Z: maxZ})
}

// AddBox fills every voxel between a and b inclusive. Corners may be given in any order.
func (g *Grid) AddBox(a, b BlockPos) {
	lo, hi := order(a.X, b.X, a.Y, b.Y, a.Z, b.Z)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				g.SetSolid(x, y, z)
			}
		}
	}
}

func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.solid)
}

func order(x0, x1, y0, y1, z0, z1 int) (BlockPos, BlockPos) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	return BlockPos{X: x0, Y: y0, Z: z0}, BlockPos{X: x1, Y: y1, Z: z1}
}
