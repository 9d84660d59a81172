package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/simukka/blackhole/audio"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

// TestBackend_Counts tests frame, draw and uniform bookkeeping
func TestBackend_Counts(t *testing.T) {
	b := NewBackend()
	p, err := b.Compile("void main() {}")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	b.BindStaticGeometry(p, visual.QuadVertices)
	b.BeginFrame(p, 640, 480)
	b.SetUniform(p, visual.UniformMouse, 0.25, 0.75)
	b.SetUniform(p, visual.UniformMouse, 0.5, 0.5)
	b.Draw(p, visual.QuadVertexCount)
	b.Draw(p, visual.QuadVertexCount)

	if b.Frames != 1 || b.Draws != 2 {
		t.Errorf("Expected 1 frame and 2 draws, got %d and %d", b.Frames, b.Draws)
	}
	if b.Vertices != 2*visual.QuadVertexCount {
		t.Errorf("Expected %d vertices, got %d", 2*visual.QuadVertexCount, b.Vertices)
	}
	if got := b.Uniforms[visual.UniformMouse]; got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("Expected latest mouse value, got %v", got)
	}
	if b.Width != 640 || b.Height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", b.Width, b.Height)
	}
}

// TestBackend_RejectsEmptySource tests that compiling an empty shader fails
func TestBackend_RejectsEmptySource(t *testing.T) {
	_, err := NewBackend().Compile("  \n")

	var compileErr *visual.ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected *visual.ShaderCompileError, got %v", err)
	}
}

// TestToneLog_LogsBeeps tests that each beep is written to the log with its frequency
func TestToneLog_LogsBeeps(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	out := NewToneLog(zap.New(core))

	if err := out.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	v, err := out.Play(audio.ToneForFPS(60))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	v.Stop()

	if len(out.Tones) != 1 {
		t.Fatalf("Expected one tone, got %d", len(out.Tones))
	}
	entries := logs.FilterMessage("beep").All()
	if len(entries) != 1 {
		t.Fatalf("Expected one beep log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["frequency"]; got != 600.0 {
		t.Errorf("Expected frequency 600, got %v", got)
	}
}

// TestReport_Window tests the per-window line without colour
func TestReport_Window(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	NewReport(&buf).Window(visual.Diagnostics{
		FPS:              59,
		InstanceCount:    48045,
		AverageFrameTime: 16.9,
		ElapsedSeconds:   1.01,
		ViewportWidth:    1280,
		ViewportHeight:   720,
	})

	want := " 59 fps  instances=48045 frame=16.90ms elapsed=1.01s 1280x720\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestReport_Summary tests the end-of-run table and its header
func TestReport_Summary(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	err := NewReport(&buf).Summary(Summary{Ticks: 120, Draws: 5018880, FPS: 60, MaxInstances: 48045, Beeps: 2})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Ticks", "120", "Draw calls", "5018880", "Max instances", "48045", "Beeps"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q:\n%s", want, out)
		}
	}

	// Headers are auto-formatted in upper case; data rows are not.
	header := strings.Index(out, "METRIC")
	if header < 0 || header > strings.Index(out, "Ticks") {
		t.Errorf("Expected a METRIC header above the rows:\n%s", out)
	}
}

// TestRun_StopsAfterTicks tests that the runner stops at the tick limit and prints a summary
func TestRun_StopsAfterTicks(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	s, err := Run(context.Background(), Config{Hz: 1000, Ticks: 3, Width: 320, Height: 240, Out: &buf})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if s.Ticks != 3 || s.Frames != 3 {
		t.Errorf("Expected 3 ticks and frames, got %d and %d", s.Ticks, s.Frames)
	}
	if s.Draws < 3*visual.MinInstances {
		t.Errorf("Expected at least %d draws, got %d", 3*visual.MinInstances, s.Draws)
	}
	if s.MaxInstances < visual.MinInstances {
		t.Errorf("Expected max instances at or above the floor, got %d", s.MaxInstances)
	}
	if !strings.Contains(buf.String(), "Max instances") {
		t.Errorf("Expected a summary table, got:\n%s", buf.String())
	}
}

// TestRun_Canceled tests that a canceled context stops the runner
func TestRun_Canceled(t *testing.T) {
	withoutColor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Hz: 1, Out: &bytes.Buffer{}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestRun_InvalidHz tests that a tick rate above the clock resolution is rejected
func TestRun_InvalidHz(t *testing.T) {
	_, err := Run(context.Background(), Config{Hz: 2_000_000_000, Out: &bytes.Buffer{}})
	if err == nil {
		t.Error("Expected an error for a tick rate above the clock resolution")
	}
}
