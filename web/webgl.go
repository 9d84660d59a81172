//go:build js
// +build js

// Package web adapts the render loop to the browser: WebGL drawing,
// requestAnimationFrame pacing, DOM input and the #info overlay.
package web

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
)

// ErrNoWebGL is returned when the canvas has no WebGL context.
var ErrNoWebGL = errors.New("web: WebGL not supported")

const vertexSource = `
attribute vec4 position;
void main() {
    gl_Position = position;
}
`

// glProgram is the visual.Program handle of the WebGL backend.
type glProgram struct {
	program  *js.Object
	buffer   *js.Object
	position int
	uniforms map[string]*js.Object
}

// WebGL implements visual.Backend on a canvas WebGL context.
type WebGL struct {
	Canvas *js.Object
	gl     *js.Object
	log    *zap.Logger
}

// NewWebGL acquires the WebGL context of canvas.
func NewWebGL(canvas *js.Object, log *zap.Logger) (*WebGL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	gl := canvas.Call("getContext", "webgl")
	if isMissing(gl) {
		gl = canvas.Call("getContext", "experimental-webgl")
	}
	if isMissing(gl) {
		return nil, ErrNoWebGL
	}
	return &WebGL{Canvas: canvas, gl: gl, log: log}, nil
}

// Compile builds the passthrough vertex shader and fragmentSource into a
// linked program.
func (w *WebGL) Compile(fragmentSource string) (visual.Program, error) {
	gl := w.gl

	vs, err := w.compileShader(gl.Get("VERTEX_SHADER").Int(), "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := w.compileShader(gl.Get("FRAGMENT_SHADER").Int(), "fragment", fragmentSource)
	if err != nil {
		return nil, err
	}

	program := gl.Call("createProgram")
	gl.Call("attachShader", program, vs)
	gl.Call("attachShader", program, fs)
	gl.Call("linkProgram", program)

	if !gl.Call("getProgramParameter", program, gl.Get("LINK_STATUS")).Bool() {
		infoLog := gl.Call("getProgramInfoLog", program).String()
		w.log.Error("program linking error", zap.String("log", infoLog))
		return nil, &visual.ProgramLinkError{Log: infoLog}
	}

	return &glProgram{
		program:  program,
		position: gl.Call("getAttribLocation", program, "position").Int(),
		uniforms: make(map[string]*js.Object),
	}, nil
}

func (w *WebGL) compileShader(kind int, stage, source string) (*js.Object, error) {
	gl := w.gl
	shader := gl.Call("createShader", kind)
	gl.Call("shaderSource", shader, source)
	gl.Call("compileShader", shader)

	if !gl.Call("getShaderParameter", shader, gl.Get("COMPILE_STATUS")).Bool() {
		infoLog := gl.Call("getShaderInfoLog", shader).String()
		w.log.Error("shader compilation error", zap.String("stage", stage), zap.String("log", infoLog))
		return nil, &visual.ShaderCompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// BindStaticGeometry uploads vertices to a STATIC_DRAW array buffer.
func (w *WebGL) BindStaticGeometry(p visual.Program, vertices []float32) {
	prog := p.(*glProgram)
	gl := w.gl

	prog.buffer = gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), prog.buffer)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"),
		js.Global.Get("Float32Array").New(vertices), gl.Get("STATIC_DRAW"))
}

// BeginFrame sets the viewport, clears to opaque black, enables additive
// blending so instances accumulate, and binds the program and quad.
func (w *WebGL) BeginFrame(p visual.Program, width, height int) {
	prog := p.(*glProgram)
	gl := w.gl

	gl.Call("viewport", 0, 0, width, height)
	gl.Call("clearColor", 0, 0, 0, 1)
	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT"))
	gl.Call("enable", gl.Get("BLEND"))
	gl.Call("blendFunc", gl.Get("ONE"), gl.Get("ONE"))
	gl.Call("useProgram", prog.program)
	gl.Call("enableVertexAttribArray", prog.position)
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), prog.buffer)
	gl.Call("vertexAttribPointer", prog.position, 2, gl.Get("FLOAT"), false, 0, 0)
}

// SetUniform sets a float or vec2 uniform. Locations are looked up once.
func (w *WebGL) SetUniform(p visual.Program, name string, values ...float64) {
	prog := p.(*glProgram)
	gl := w.gl

	loc, ok := prog.uniforms[name]
	if !ok {
		loc = gl.Call("getUniformLocation", prog.program, name)
		prog.uniforms[name] = loc
	}

	switch len(values) {
	case 1:
		gl.Call("uniform1f", loc, values[0])
	case 2:
		gl.Call("uniform2f", loc, values[0], values[1])
	}
}

// Draw issues drawArrays over the bound quad.
func (w *WebGL) Draw(_ visual.Program, vertexCount int) {
	w.gl.Call("drawArrays", w.gl.Get("TRIANGLES"), 0, vertexCount)
}

func isMissing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}
