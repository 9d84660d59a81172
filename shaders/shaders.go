// Package shaders embeds the black hole fragment programs.
package shaders

import _ "embed"

// Fragment is the WebGL (GLSL ES 1.00) fragment shader. It reads the
// u_resolution, u_time, u_mouse and u_interaction uniforms.
//
//go:embed blackhole.frag
var Fragment string

// Kage is the same effect for ebiten, with the uniforms named Resolution,
// Time, Mouse and Interaction.
//
//go:embed blackhole.kage
var Kage string
