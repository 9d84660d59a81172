package visual

import "errors"

var (
	ErrNoBackend   = errors.New("visual: no rendering backend")
	ErrNoScheduler = errors.New("visual: no frame scheduler")
)

// ShaderCompileError reports a shader stage the backend rejected. Log holds
// the compiler's info log.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return "shader compilation error (" + e.Stage + "): " + e.Log
}

// ProgramLinkError reports a program the backend could not link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return "program linking error: " + e.Log
}
