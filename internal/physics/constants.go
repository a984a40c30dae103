package physics

const (
	GroundProbeDistance    = 0.001
	CollisionAxisTolerance = 1e-9
	MinimumResidualSpeed   = 1e-4

	DefaultBodyWidth  = 0.6
	DefaultBodyHeight = 1.8
)
