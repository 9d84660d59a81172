//go:build !js
// +build !js

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/simukka/blackhole/audio"
	"github.com/simukka/blackhole/input"
	"github.com/simukka/blackhole/shaders"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
)

// Config controls the desktop window.
type Config struct {
	Width      int
	Height     int
	Fullscreen bool
	Mute       bool
	Growth     visual.GrowthPolicy
	Logger     *zap.Logger
}

type game struct {
	loop      *visual.RenderLoop
	renderer  *Renderer
	scheduler *frameScheduler
	source    ebitenSource
	input     input.Poller
	info      string
	width     int
	height    int
}

// Update polls input. The loop itself ticks from Draw.
func (g *game) Update() error {
	g.input.Poll(&g.source, g.loop, g.width, g.height)
	return nil
}

// Draw runs the pending tick against screen and prints diagnostics.
func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.scheduler.fire()
	g.renderer.screen = nil

	ebitenutil.DebugPrint(screen, g.info)
}

// Layout keeps one pixel per device-independent pixel and reports
// resizes to the loop.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run compiles the Kage program and blocks until the window closes. A
// compile failure is returned before any window opens.
func Run(cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}

	g := &game{
		renderer:  &Renderer{},
		scheduler: newFrameScheduler(),
		width:     cfg.Width,
		height:    cfg.Height,
	}

	var out audio.Output
	if !cfg.Mute {
		out = NewOutput()
	}

	loop, err := visual.NewRenderLoop(visual.Config{
		Backend:        g.renderer,
		Scheduler:      g.scheduler,
		FragmentSource: shaders.Kage,
		Audio:          out,
		Diagnostics:    visual.DiagnosticsFunc(func(d visual.Diagnostics) { g.info = d.String() }),
		Growth:         cfg.Growth,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Logger:         log,
	})
	if err != nil {
		return err
	}
	g.loop = loop
	defer loop.Close()

	ebiten.SetWindowTitle("Black Hole")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	loop.Start()
	return ebiten.RunGame(g)
}
