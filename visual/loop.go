package visual

import (
	"fmt"

	"github.com/simukka/blackhole/audio"
	"go.uber.org/zap"
)

// State is the render loop lifecycle state.
type State int

const (
	// Idle is the state before the first tick.
	Idle State = iota
	// Running is the steady tick cycle.
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Config wires a RenderLoop to its collaborators.
type Config struct {
	Backend        Backend
	Scheduler      Scheduler
	FragmentSource string

	// Audio is the tone sink; nil disables audio feedback.
	Audio audio.Output

	// Diagnostics receives a snapshot every tick; optional.
	Diagnostics DiagnosticsSink

	// Growth sizes the workload; nil selects DefaultGrowth.
	Growth GrowthPolicy

	// Width and Height are the initial viewport size.
	Width, Height int

	Logger *zap.Logger
}

// RenderLoop owns all per-session state. It is driven from a single
// goroutine: ticks, pointer callbacks and resizes must not run concurrently.
type RenderLoop struct {
	// Collaborators
	backend     Backend
	scheduler   Scheduler
	diagnostics DiagnosticsSink
	program     Program
	log         *zap.Logger

	// Core state
	state       State
	closed      bool
	Interaction Interaction
	Frames      *FrameMonitor
	Synth       *audio.Synth
	Sizer       Sizer
	offsets     []float64

	// Timing (ms)
	StartTime    float64
	LastTickTime float64
	Ticks        uint64

	// Viewport
	Width  int
	Height int
}

// NewRenderLoop compiles the visualization program and binds its static
// geometry. A compile or link failure is returned and no loop is created.
func NewRenderLoop(cfg Config) (*RenderLoop, error) {
	if cfg.Backend == nil {
		return nil, ErrNoBackend
	}
	if cfg.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	program, err := cfg.Backend.Compile(cfg.FragmentSource)
	if err != nil {
		log.Error("program setup failed", zap.Error(err))
		return nil, fmt.Errorf("compile visualization program: %w", err)
	}
	cfg.Backend.BindStaticGeometry(program, QuadVertices)

	growth := cfg.Growth
	if growth == nil {
		growth = DefaultGrowth
	}

	return &RenderLoop{
		backend:     cfg.Backend,
		scheduler:   cfg.Scheduler,
		diagnostics: cfg.Diagnostics,
		program:     program,
		log:         log,
		state:       Idle,
		Synth:       audio.NewSynth(cfg.Audio, log),
		Sizer:       Sizer{Policy: growth},
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// Start records the loop start time and requests the first tick.
func (l *RenderLoop) Start() {
	now := l.scheduler.Now()
	l.StartTime = now
	l.LastTickTime = now
	l.Frames = NewFrameMonitor(now)
	l.log.Info("render loop started", zap.Int("width", l.Width), zap.Int("height", l.Height))
	l.scheduler.RequestFrame(l.Tick)
}

// Close tears the loop down: the pending tick becomes a no-op and any
// sounding tone is stopped.
func (l *RenderLoop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.Synth.Stop()
	l.log.Info("render loop closed", zap.Uint64("ticks", l.Ticks))
}

// State returns the lifecycle state.
func (l *RenderLoop) State() State {
	return l.state
}

// Tick runs one frame at now (ms) and re-arms for the next refresh.
func (l *RenderLoop) Tick(now float64) {
	if l.closed {
		return
	}
	if l.Frames == nil {
		l.StartTime = now
		l.LastTickTime = now
		l.Frames = NewFrameMonitor(now)
	}
	l.state = Running
	l.Ticks++

	deltaTime := (now - l.LastTickTime) / 1000
	elapsed := (now - l.StartTime) / 1000
	l.LastTickTime = now

	if fps, completed := l.Frames.RecordFrame(now); completed {
		l.log.Debug("measurement window", zap.Int("fps", fps), zap.Int("instances", len(l.offsets)))
		if fps > 0 {
			l.Synth.PlayBeep(fps)
		}
	}

	l.Interaction.Decay(deltaTime)
	l.offsets = l.Sizer.Compute(elapsed, l.Interaction)

	l.render()

	if l.diagnostics != nil {
		l.diagnostics.Report(l.snapshot(elapsed))
	}

	l.scheduler.RequestFrame(l.Tick)
}

// render pushes the shared parameters and one draw per instance.
func (l *RenderLoop) render() {
	b, p := l.backend, l.program
	b.BeginFrame(p, l.Width, l.Height)

	mouseX, mouseY := l.Interaction.Normalized(l.Width, l.Height)
	b.SetUniform(p, UniformResolution, float64(l.Width), float64(l.Height))
	b.SetUniform(p, UniformMouse, mouseX, mouseY)
	b.SetUniform(p, UniformInteraction, l.Interaction.Intensity)

	for _, t := range l.offsets {
		b.SetUniform(p, UniformTime, t)
		b.Draw(p, QuadVertexCount)
	}
}

func (l *RenderLoop) snapshot(elapsed float64) Diagnostics {
	return Diagnostics{
		FPS:              l.Frames.FPS,
		InstanceCount:    len(l.offsets),
		AverageFrameTime: l.Frames.AverageFrameTime(),
		ElapsedSeconds:   elapsed,
		ViewportWidth:    l.Width,
		ViewportHeight:   l.Height,
	}
}

// Offsets returns the workload computed by the latest tick.
func (l *RenderLoop) Offsets() []float64 {
	return l.offsets
}

// Diagnostics returns the current snapshot.
func (l *RenderLoop) Diagnostics() Diagnostics {
	if l.Frames == nil {
		return Diagnostics{ViewportWidth: l.Width, ViewportHeight: l.Height}
	}
	return l.snapshot((l.LastTickTime - l.StartTime) / 1000)
}

// --- Input ---

// PointerDown forwards a press to the interaction tracker.
func (l *RenderLoop) PointerDown(p PointerSample) { l.Interaction.PointerDown(p) }

// PointerMove forwards a move to the interaction tracker.
func (l *RenderLoop) PointerMove(p PointerSample) { l.Interaction.PointerMove(p) }

// PointerUp forwards a release to the interaction tracker.
func (l *RenderLoop) PointerUp() { l.Interaction.PointerUp() }

// PointerLeave forwards a leave to the interaction tracker.
func (l *RenderLoop) PointerLeave() { l.Interaction.PointerLeave() }

// UserGesture unlocks audio. Only the first gesture matters.
func (l *RenderLoop) UserGesture() { l.Synth.Enable() }

// Resize updates the viewport used by the next tick.
func (l *RenderLoop) Resize(width, height int) {
	l.Width = width
	l.Height = height
}
