package visual

import "strconv"

// Diagnostics is the observational snapshot published after each tick.
type Diagnostics struct {
	FPS              int
	InstanceCount    int
	AverageFrameTime float64 // ms
	ElapsedSeconds   float64
	ViewportWidth    int
	ViewportHeight   int
}

// String formats the snapshot for the info overlay.
func (d Diagnostics) String() string {
	return "FPS: " + strconv.Itoa(d.FPS) +
		" | Instances: " + strconv.Itoa(d.InstanceCount) +
		" | Frame: " + strconv.FormatFloat(d.AverageFrameTime, 'f', 2, 64) + "ms" +
		" | Elapsed: " + strconv.FormatFloat(d.ElapsedSeconds, 'f', 2, 64) + "s" +
		" | " + strconv.Itoa(d.ViewportWidth) + "x" + strconv.Itoa(d.ViewportHeight)
}
