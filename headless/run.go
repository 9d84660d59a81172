package headless

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/simukka/blackhole/shaders"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
)

// Config controls the no-window runner.
type Config struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int
	Mute   bool
	Growth visual.GrowthPolicy
	Logger *zap.Logger

	// Out receives the report; nil means stdout.
	Out io.Writer
}

// Run drives the loop from a ticker until ctx is done or Ticks ticks have
// run. Audio is unlocked up front since there is no user to click.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Summary{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	backend := NewBackend()
	scheduler := newTickScheduler()
	report := NewReport(cfg.Out)

	vc := visual.Config{
		Backend:        backend,
		Scheduler:      scheduler,
		FragmentSource: shaders.Fragment,
		Growth:         cfg.Growth,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Logger:         log,
	}
	if !cfg.Mute {
		vc.Audio = NewToneLog(log)
	}

	loop, err := visual.NewRenderLoop(vc)
	if err != nil {
		return Summary{}, err
	}
	defer loop.Close()

	loop.UserGesture()
	loop.Start()

	t := time.NewTicker(d)
	defer t.Stop()

	var s Summary
	finish := func() Summary {
		s.Frames = backend.Frames
		s.Draws = backend.Draws
		s.FPS = loop.Frames.FPS
		s.Beeps = loop.Synth.Beeps()
		s.Elapsed = time.Since(scheduler.start)
		if err := report.Summary(s); err != nil {
			log.Warn("summary table failed", zap.Error(err))
		}
		return s
	}

	for {
		select {
		case <-ctx.Done():
			return finish(), ctx.Err()
		case <-t.C:
			if !scheduler.fire() {
				return finish(), nil
			}
			s.Ticks++
			if n := len(loop.Offsets()); n > s.MaxInstances {
				s.MaxInstances = n
			}
			// A window just completed when the frame counter was reset.
			if loop.Frames.FrameCount == 0 {
				report.Window(loop.Diagnostics())
			}
			if cfg.Ticks > 0 && s.Ticks >= cfg.Ticks {
				return finish(), nil
			}
		}
	}
}
