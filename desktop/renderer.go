//go:build !js
// +build !js

// Package desktop runs the render loop in a native window with ebiten.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/blackhole/visual"
)

// kageNames maps loop uniform names to the exported Kage variables.
var kageNames = map[string]string{
	visual.UniformResolution:  "Resolution",
	visual.UniformTime:        "Time",
	visual.UniformMouse:       "Mouse",
	visual.UniformInteraction: "Interaction",
}

type kageProgram struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	vertices int
}

// Renderer implements visual.Backend with Kage shaders. Draw calls only
// land while a screen is attached, which happens inside ebiten's Draw.
type Renderer struct {
	screen *ebiten.Image
	width  int
	height int
}

// Compile builds a Kage program. Kage has no separate link step, so every
// failure is reported as a fragment compile error.
func (r *Renderer) Compile(fragmentSource string) (visual.Program, error) {
	shader, err := ebiten.NewShader([]byte(fragmentSource))
	if err != nil {
		return nil, &visual.ShaderCompileError{Stage: "fragment", Log: err.Error()}
	}
	return &kageProgram{shader: shader, uniforms: make(map[string]any, len(kageNames))}, nil
}

// BindStaticGeometry records the quad size. DrawRectShader always covers
// the destination rectangle, which is the same full viewport quad.
func (r *Renderer) BindStaticGeometry(p visual.Program, vertices []float32) {
	p.(*kageProgram).vertices = len(vertices) / 2
}

// BeginFrame records the frame size for the rect draws that follow.
func (r *Renderer) BeginFrame(_ visual.Program, width, height int) {
	r.width = width
	r.height = height
}

// SetUniform stores a float or vec2 under its Kage name.
func (r *Renderer) SetUniform(p visual.Program, name string, values ...float64) {
	prog := p.(*kageProgram)
	kageName, ok := kageNames[name]
	if !ok {
		kageName = name
	}

	switch len(values) {
	case 1:
		prog.uniforms[kageName] = float32(values[0])
	case 2:
		prog.uniforms[kageName] = []float32{float32(values[0]), float32(values[1])}
	}
}

// Draw renders one additive full-viewport rect with the current uniforms.
func (r *Renderer) Draw(p visual.Program, _ int) {
	if r.screen == nil {
		return
	}
	prog := p.(*kageProgram)
	opts := &ebiten.DrawRectShaderOptions{Uniforms: prog.uniforms}
	opts.Blend = ebiten.BlendLighter
	r.screen.DrawRectShader(r.width, r.height, prog.shader, opts)
}
