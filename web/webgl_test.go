//go:build js
// +build js

package web

import (
	"testing"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
)

const (
	glBlend          = 0x0BE2
	glOne            = 1
	glColorBufferBit = 0x4000
	glArrayBuffer    = 0x8892
	glFloat          = 0x1406
	glTriangles      = 0x0004
)

// glCall is one recorded context call with its integer arguments.
type glCall struct {
	name string
	args []int
}

// newFakeGL returns a JS object standing in for a WebGL context.
func newFakeGL(calls *[]glCall) *js.Object {
	gl := js.Global.Get("Object").New()
	gl.Set("BLEND", glBlend)
	gl.Set("ONE", glOne)
	gl.Set("COLOR_BUFFER_BIT", glColorBufferBit)
	gl.Set("ARRAY_BUFFER", glArrayBuffer)
	gl.Set("FLOAT", glFloat)
	gl.Set("TRIANGLES", glTriangles)

	for _, name := range []string{
		"viewport", "clearColor", "clear", "enable", "blendFunc", "useProgram",
		"enableVertexAttribArray", "bindBuffer", "vertexAttribPointer", "drawArrays",
	} {
		name := name
		gl.Set(name, func(args ...*js.Object) {
			c := glCall{name: name}
			for _, a := range args {
				if js.Global.Get("Number").Call("isFinite", a).Bool() {
					c.args = append(c.args, a.Int())
				}
			}
			*calls = append(*calls, c)
		})
	}
	return gl
}

func findCall(calls []glCall, name string) (glCall, int) {
	for i, c := range calls {
		if c.name == name {
			return c, i
		}
	}
	return glCall{}, -1
}

// TestWebGL_BeginFrameEnablesAdditiveBlending tests that instance draws
// accumulate instead of replacing each other
func TestWebGL_BeginFrameEnablesAdditiveBlending(t *testing.T) {
	var calls []glCall
	w := &WebGL{gl: newFakeGL(&calls), log: zap.NewNop()}
	prog := &glProgram{uniforms: make(map[string]*js.Object)}

	w.BeginFrame(prog, 640, 480)
	w.Draw(prog, visual.QuadVertexCount)

	enable, enableAt := findCall(calls, "enable")
	if enableAt < 0 || len(enable.args) != 1 || enable.args[0] != glBlend {
		t.Fatalf("Expected enable(BLEND), got %+v", calls)
	}
	blend, blendAt := findCall(calls, "blendFunc")
	if blendAt < 0 || len(blend.args) != 2 || blend.args[0] != glOne || blend.args[1] != glOne {
		t.Errorf("Expected blendFunc(ONE, ONE), got %+v", blend)
	}
	_, drawAt := findCall(calls, "drawArrays")
	if drawAt < blendAt || drawAt < enableAt {
		t.Errorf("Expected blending to be set before drawing, got %+v", calls)
	}
	viewport, _ := findCall(calls, "viewport")
	if len(viewport.args) != 4 || viewport.args[2] != 640 || viewport.args[3] != 480 {
		t.Errorf("Expected viewport 640x480, got %+v", viewport)
	}
}
