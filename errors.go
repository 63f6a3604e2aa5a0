package triangle

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error kinds. All of them map to exit code -1.
var (
	ErrPlatformInit  = errors.New("platform init failed")
	ErrWindowCreate  = errors.New("window creation failed")
	ErrLoader        = errors.New("gl function loader failed")
	ErrShaderCompile = errors.New("shader compilation error")
	ErrProgramLink   = errors.New("shader linking error")
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderError reports a failed shader compilation.
type ShaderError struct {
	Stage ShaderStage
	Log   string // Driver info log, may be empty
}

func (e *ShaderError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Stage, ErrShaderCompile)
	if log := strings.TrimRight(e.Log, "\x00\n "); log != "" {
		msg += ": " + log
	}
	return msg
}

// Unwrap lets errors.Is match ErrShaderCompile.
func (e *ShaderError) Unwrap() error { return ErrShaderCompile }

// LinkError reports a failed program link.
type LinkError struct {
	Log string // Driver info log, may be empty
}

func (e *LinkError) Error() string {
	msg := ErrProgramLink.Error()
	if log := strings.TrimRight(e.Log, "\x00\n "); log != "" {
		msg += ": " + log
	}
	return msg
}

// Unwrap lets errors.Is match ErrProgramLink.
func (e *LinkError) Unwrap() error { return ErrProgramLink }

// ExitCode maps an error returned by App.Run to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}
