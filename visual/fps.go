package visual

// FrameMonitor counts ticks per measurement window and keeps the most
// recent frame timestamps for frame time reporting.
type FrameMonitor struct {
	FrameCount  int
	WindowStart float64
	FPS         int

	recent [FrameHistoryLength]float64
	head   int
	size   int
}

// NewFrameMonitor starts the first window at start (milliseconds).
func NewFrameMonitor(start float64) *FrameMonitor {
	return &FrameMonitor{WindowStart: start}
}

// RecordFrame counts one tick at now. When a window has completed it
// returns the window's frame count and true.
func (m *FrameMonitor) RecordFrame(now float64) (int, bool) {
	m.FrameCount++
	completed := false

	if now-m.WindowStart >= MeasurementWindow {
		m.FPS = m.FrameCount
		m.FrameCount = 0
		m.WindowStart = now
		completed = true
	}

	m.push(now)
	return m.FPS, completed
}

// push appends to the ring, evicting the oldest sample when full.
func (m *FrameMonitor) push(ts float64) {
	idx := (m.head + m.size) % FrameHistoryLength
	if m.size == FrameHistoryLength {
		m.head = (m.head + 1) % FrameHistoryLength
	} else {
		m.size++
	}
	m.recent[idx] = ts
}

// Recent returns the retained timestamps, oldest first.
func (m *FrameMonitor) Recent() []float64 {
	out := make([]float64, m.size)
	for i := range out {
		out[i] = m.recent[(m.head+i)%FrameHistoryLength]
	}
	return out
}

// AverageFrameTime is the mean spacing of the retained timestamps in
// milliseconds, or zero with fewer than two samples.
func (m *FrameMonitor) AverageFrameTime() float64 {
	if m.size < 2 {
		return 0
	}
	first := m.recent[m.head]
	last := m.recent[(m.head+m.size-1)%FrameHistoryLength]
	return (last - first) / float64(m.size-1)
}
