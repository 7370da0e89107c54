package pipeline

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

// ErrContextUnavailable is returned by every build when the pipeline was created without a
// graphics context. It is detected once at startup and has no recovery path.
var ErrContextUnavailable = errors.New("graphics context unavailable: shader preview is disabled")

// StageCompileError reports a shader stage that failed to compile.
type StageCompileError struct {
	// Stage is the stage that failed.
	Stage shader.ShaderType
	// Log is the driver's info log, verbatim.
	Log string
}

func (e *StageCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	// Log is the driver's info log, verbatim.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// DiagnosticStage identifies where in the build a diagnostic originated.
type DiagnosticStage int

const (
	// DiagnosticStageVertex marks a vertex stage compile failure.
	DiagnosticStageVertex DiagnosticStage = iota
	// DiagnosticStageFragment marks a fragment stage compile failure.
	DiagnosticStageFragment
	// DiagnosticStageLink marks a link failure.
	DiagnosticStageLink
	// DiagnosticStageContext marks a missing graphics context.
	DiagnosticStageContext
)

func (s DiagnosticStage) String() string {
	switch s {
	case DiagnosticStageVertex:
		return "vertex"
	case DiagnosticStageFragment:
		return "fragment"
	case DiagnosticStageLink:
		return "link"
	case DiagnosticStageContext:
		return "context"
	default:
		return fmt.Sprintf("DiagnosticStage(%d)", int(s))
	}
}

// Diagnostic is a structured, display-only build failure report.
type Diagnostic struct {
	Stage   DiagnosticStage
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Stage, d.Message)
}

// DiagnosticFromError converts a build error into a Diagnostic.
//
// Parameters:
//   - err: an error returned by Pipeline.Build
//
// Returns:
//   - Diagnostic: the structured report, carrying the full error text
//   - bool: false if err is nil or not a build error
func DiagnosticFromError(err error) (Diagnostic, bool) {
	if err == nil {
		return Diagnostic{}, false
	}
	var compileErr *StageCompileError
	var linkErr *LinkError
	switch {
	case errors.As(err, &compileErr):
		stage := DiagnosticStageFragment
		if compileErr.Stage == shader.ShaderTypeVertex {
			stage = DiagnosticStageVertex
		}
		return Diagnostic{Stage: stage, Message: compileErr.Error()}, true
	case errors.As(err, &linkErr):
		return Diagnostic{Stage: DiagnosticStageLink, Message: linkErr.Error()}, true
	case errors.Is(err, ErrContextUnavailable):
		return Diagnostic{Stage: DiagnosticStageContext, Message: err.Error()}, true
	default:
		return Diagnostic{}, false
	}
}
