package visual

// PointerSample is a pointer position in client coordinates. Mouse and
// touch adapters both produce it.
type PointerSample struct {
	X, Y float64
}

// Interaction tracks pointer activity and the decaying intensity scalar.
type Interaction struct {
	Active    bool
	PointerX  float64
	PointerY  float64
	Intensity float64
}

// PointerDown starts an interaction at p.
func (in *Interaction) PointerDown(p PointerSample) {
	in.Active = true
	in.PointerX = p.X
	in.PointerY = p.Y
}

// PointerMove updates the position and refreshes intensity, but only
// while the pointer is held.
func (in *Interaction) PointerMove(p PointerSample) {
	if !in.Active {
		return
	}
	in.PointerX = p.X
	in.PointerY = p.Y
	in.Intensity = 1.0
}

// PointerUp ends the interaction and lets intensity decay.
func (in *Interaction) PointerUp() {
	in.Active = false
}

// PointerLeave behaves like PointerUp.
func (in *Interaction) PointerLeave() {
	in.Active = false
}

// Decay lowers intensity by DecayRate per second while released.
// Holding the pointer still does not refresh intensity.
func (in *Interaction) Decay(deltaSeconds float64) {
	if in.Active {
		return
	}
	in.Intensity = maxFloat(0, in.Intensity-deltaSeconds*DecayRate)
}

// Normalized returns the pointer as viewport ratios with Y flipped so
// that 0 is the bottom edge. A degenerate viewport yields zero.
func (in *Interaction) Normalized(width, height int) (x, y float64) {
	if width > 0 {
		x = in.PointerX / float64(width)
	}
	if height > 0 {
		y = 1.0 - in.PointerY/float64(height)
	}
	return x, y
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
