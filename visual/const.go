package visual

// Workload constants
const (
	// MinInstances is the floor on draw instances submitted per tick.
	MinInstances = 41824

	// GrowthRate is k in MinInstances * 2^(k*elapsed). The instance count
	// doubles every ln(2)/k seconds and is never capped.
	GrowthRate = 0.2

	// OffsetStep is the time spacing between consecutive instance offsets.
	OffsetStep = 0.05

	// SteppedInteractionBoost multiplies the stepped policy's count while
	// the pointer is held.
	SteppedInteractionBoost = 1.5
)

// Interaction constants
const (
	// DecayRate is how much intensity is lost per second once released.
	DecayRate = 0.5
)

// Frame timing constants
const (
	// MeasurementWindow is the fps window length in milliseconds.
	MeasurementWindow = 1000.0

	// FrameHistoryLength caps the recent frame timestamp ring.
	FrameHistoryLength = 60
)

// Shader parameter names shared by every backend.
const (
	UniformResolution  = "u_resolution"
	UniformTime        = "u_time"
	UniformMouse       = "u_mouse"
	UniformInteraction = "u_interaction"
)

// QuadVertexCount is the number of vertices in QuadVertices.
const QuadVertexCount = 6

// QuadVertices is the full-viewport quad as two triangles in clip space.
var QuadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	-1, 1,
	1, -1,
	1, 1,
}
