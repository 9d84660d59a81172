package shaders

import (
	"strings"
	"testing"
)

// TestFragment_DeclaresUniforms tests that the GLSL fragment shader declares its uniforms
func TestFragment_DeclaresUniforms(t *testing.T) {
	for _, name := range []string{"u_resolution", "u_time", "u_mouse", "u_interaction"} {
		if !strings.Contains(Fragment, "uniform") || !strings.Contains(Fragment, name) {
			t.Errorf("Expected fragment shader to declare %s", name)
		}
	}
}

// TestKage_DeclaresUniforms tests that the Kage shader uses pixel units and declares its uniforms
func TestKage_DeclaresUniforms(t *testing.T) {
	if !strings.HasPrefix(Kage, "//kage:unit pixels") {
		t.Error("Expected Kage source to use pixel units")
	}
	for _, name := range []string{"var Resolution vec2", "var Time float", "var Mouse vec2", "var Interaction float"} {
		if !strings.Contains(Kage, name) {
			t.Errorf("Expected Kage source to declare %q", name)
		}
	}
}
