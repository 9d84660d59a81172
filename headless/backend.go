// Package headless runs the render loop without a window or GPU. Draws are
// counted and the per-window frame rate is printed to a terminal.
package headless

import (
	"strings"

	"github.com/simukka/blackhole/visual"
)

// Backend implements visual.Backend by counting work.
type Backend struct {
	Frames   uint64
	Draws    uint64
	Vertices uint64

	// Uniforms holds the latest value of every uniform.
	Uniforms map[string][]float64

	Width, Height int
	quad          int
}

// NewBackend returns an empty counting backend.
func NewBackend() *Backend {
	return &Backend{Uniforms: make(map[string][]float64)}
}

// Compile accepts any non-empty source.
func (b *Backend) Compile(fragmentSource string) (visual.Program, error) {
	if strings.TrimSpace(fragmentSource) == "" {
		return nil, &visual.ShaderCompileError{Stage: "fragment", Log: "empty source"}
	}
	return fragmentSource, nil
}

// BindStaticGeometry records the quad vertex count.
func (b *Backend) BindStaticGeometry(_ visual.Program, vertices []float32) {
	b.quad = len(vertices) / 2
}

// BeginFrame counts a frame.
func (b *Backend) BeginFrame(_ visual.Program, width, height int) {
	b.Frames++
	b.Width, b.Height = width, height
}

// SetUniform stores the value, reusing the slot of a previous value.
func (b *Backend) SetUniform(_ visual.Program, name string, values ...float64) {
	slot := b.Uniforms[name]
	if len(slot) != len(values) {
		slot = make([]float64, len(values))
		b.Uniforms[name] = slot
	}
	copy(slot, values)
}

// Draw counts a draw call.
func (b *Backend) Draw(_ visual.Program, vertexCount int) {
	b.Draws++
	b.Vertices += uint64(vertexCount)
}
