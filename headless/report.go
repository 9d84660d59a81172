package headless

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/simukka/blackhole/audio"
	"github.com/simukka/blackhole/visual"
)

// Summary totals a headless run.
type Summary struct {
	Ticks        uint64
	Frames       uint64
	Draws        uint64
	FPS          int
	MaxInstances int
	Beeps        int
	Elapsed      time.Duration
}

// Report writes per-window lines and the final summary table.
type Report struct {
	w io.Writer

	good *color.Color
	fair *color.Color
	poor *color.Color
	dim  *color.Color
}

// NewReport writes to w.
func NewReport(w io.Writer) *Report {
	return &Report{
		w:    w,
		good: color.New(color.FgHiGreen, color.Bold),
		fair: color.New(color.FgHiYellow, color.Bold),
		poor: color.New(color.FgHiRed, color.Bold),
		dim:  color.New(color.FgHiBlack),
	}
}

// fpsColor bands fps; at or below the lowest pulse pitch is poor.
func (r *Report) fpsColor(fps int) *color.Color {
	switch {
	case fps >= 55:
		return r.good
	case fps > audio.MinFPS:
		return r.fair
	default:
		return r.poor
	}
}

// Window prints one line for a completed measurement window.
func (r *Report) Window(d visual.Diagnostics) {
	fps := r.fpsColor(d.FPS).Sprintf("%3d fps", d.FPS)
	rest := r.dim.Sprintf("instances=%d frame=%.2fms elapsed=%.2fs %dx%d",
		d.InstanceCount, d.AverageFrameTime, d.ElapsedSeconds, d.ViewportWidth, d.ViewportHeight)
	fmt.Fprintf(r.w, "%s  %s\n", fps, rest)
}

// Summary renders the totals table.
func (r *Report) Summary(s Summary) error {
	table := tablewriter.NewWriter(r.w)
	table.Header("Metric", "Value")
	rows := [][]string{
		{"Ticks", strconv.FormatUint(s.Ticks, 10)},
		{"Frames", strconv.FormatUint(s.Frames, 10)},
		{"Draw calls", strconv.FormatUint(s.Draws, 10)},
		{"Last FPS", strconv.Itoa(s.FPS)},
		{"Max instances", strconv.Itoa(s.MaxInstances)},
		{"Beeps", strconv.Itoa(s.Beeps)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("summary row %s: %w", row[0], err)
		}
	}
	return table.Render()
}
