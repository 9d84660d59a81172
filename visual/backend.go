package visual

// Program is a backend-specific compiled shader program handle.
type Program interface{}

// Backend is the rendering collaborator. Every method except Compile is
// called from inside a tick.
type Backend interface {
	// Compile builds a program from fragment source. Failures are
	// *ShaderCompileError or *ProgramLinkError.
	Compile(fragmentSource string) (Program, error)

	// BindStaticGeometry uploads the vertex positions drawn by every call.
	BindStaticGeometry(p Program, vertices []float32)

	// BeginFrame prepares a width x height target for this tick's draws.
	BeginFrame(p Program, width, height int)

	// SetUniform sets a float (one value) or vec2 (two values) parameter.
	SetUniform(p Program, name string, values ...float64)

	// Draw issues one draw call of vertexCount vertices.
	Draw(p Program, vertexCount int)
}

// Scheduler delivers display refresh callbacks. Timestamps are in
// milliseconds on a monotonic clock.
type Scheduler interface {
	Now() float64

	// RequestFrame runs fn once, at the next display refresh.
	RequestFrame(fn func(now float64))
}

// DiagnosticsSink receives the diagnostics snapshot once per tick.
type DiagnosticsSink interface {
	Report(d Diagnostics)
}

// DiagnosticsFunc adapts a function to DiagnosticsSink.
type DiagnosticsFunc func(d Diagnostics)

// Report implements DiagnosticsSink.
func (f DiagnosticsFunc) Report(d Diagnostics) { f(d) }
