package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

// State is the build state of a Pipeline.
type State int32

const (
	// StateUninitialized means no build has been attempted yet.
	StateUninitialized State = iota
	// StateBuilding means a build is in progress.
	StateBuilding
	// StateLive means the most recent build succeeded and its program is live.
	StateLive
	// StateFailed means the most recent build failed. A program from an earlier build may still be live.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilding:
		return "building"
	case StateLive:
		return "live"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// liveSlot is the single-owner cell holding the live program. Readers load it atomically
// and always observe either nothing or a program whose handle table is fully resolved.
type liveSlot struct {
	ptr atomic.Pointer[program]
}

// load returns the live program, or nil when no build has succeeded.
func (s *liveSlot) load() *program {
	return s.ptr.Load()
}

// swapAndDispose publishes next and then releases the program it replaced.
func (s *liveSlot) swapAndDispose(ctx GraphicsContext, next *program) {
	if prev := s.ptr.Swap(next); prev != nil {
		prev.dispose(ctx)
	}
}

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	// buildMu serializes Build and Close so two builds never interleave their context calls.
	buildMu sync.Mutex

	ctx          GraphicsContext
	vertexShader shader.Shader

	uniformNames   []string
	attributeNames []string

	live       liveSlot
	state      atomic.Int32
	generation uint64

	lastDiagnostic atomic.Pointer[Diagnostic]
	onBuild        func(Program, error)
}

// Pipeline compiles the fixed vertex stage and a fragment stage, links them, resolves the
// fixed uniform and attribute handles, and atomically replaces the live program.
//
// A failed build never touches the live program: the last good program keeps rendering and
// the failure is reported as an error convertible to a Diagnostic. Every resource created
// by a failed build is released before Build returns, and a superseded program is released
// right after its replacement is published.
type Pipeline interface {
	// Build runs the full build for a fragment shader.
	//
	// Parameters:
	//   - fragment: the fragment shader to compile
	//
	// Returns:
	//   - Program: the new live program, or nil on failure
	//   - error: ErrContextUnavailable, *StageCompileError or *LinkError on failure
	Build(fragment shader.Shader) (Program, error)

	// Live returns the live program.
	//
	// Returns:
	//   - Program: the program from the most recent successful build, or nil if none succeeded yet
	Live() Program

	// State returns the outcome of the most recent build.
	//
	// Returns:
	//   - State: the current build state
	State() State

	// LastDiagnostic returns the diagnostic of the most recent build if it failed.
	//
	// Returns:
	//   - Diagnostic: the failure report
	//   - bool: false if the most recent build succeeded or no build was attempted
	LastDiagnostic() (Diagnostic, bool)

	// VertexShader returns the fixed vertex shader.
	//
	// Returns:
	//   - shader.Shader: the vertex stage source
	VertexShader() shader.Shader

	// Available reports whether the pipeline has a graphics context to build with.
	//
	// Returns:
	//   - bool: false when every build fails with ErrContextUnavailable
	Available() bool

	// Close releases the live program. Further builds are still allowed.
	Close()
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new build pipeline over a graphics context.
// A nil context produces a disabled pipeline whose builds fail with ErrContextUnavailable.
//
// Parameters:
//   - ctx: the graphics capability used to compile and link, or nil if none is available
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline in StateUninitialized
func NewPipeline(ctx GraphicsContext, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		ctx:            ctx,
		uniformNames:   append([]string(nil), DefaultUniformNames...),
		attributeNames: append([]string(nil), DefaultAttributeNames...),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.vertexShader == nil {
		p.vertexShader = shader.NewVertexShader()
	}
	if p.vertexShader.ShaderType() != shader.ShaderTypeVertex {
		panic("pipeline: WithVertexShader requires a vertex shader")
	}
	return p
}

func (p *pipeline) Build(fragment shader.Shader) (Program, error) {
	if fragment == nil || fragment.ShaderType() != shader.ShaderTypeFragment {
		panic("pipeline: Build requires a fragment shader")
	}
	p.buildMu.Lock()
	defer p.buildMu.Unlock()

	prog, err := p.build(fragment)
	if err != nil {
		p.state.Store(int32(StateFailed))
		if d, ok := DiagnosticFromError(err); ok {
			p.lastDiagnostic.Store(&d)
		}
		common.Logger().Warn("shader build failed", "fragment", fragment.Key(), "error", err)
		if p.onBuild != nil {
			p.onBuild(nil, err)
		}
		return nil, err
	}

	p.lastDiagnostic.Store(nil)
	p.state.Store(int32(StateLive))
	common.Logger().Info("shader build succeeded",
		"fragment", fragment.Key(),
		"generation", prog.generation,
		"uniforms", prog.uniforms,
		"attributes", prog.attributes)
	if p.onBuild != nil {
		p.onBuild(prog, nil)
	}
	return prog, nil
}

// build performs one build attempt. The live slot is written only on full success.
func (p *pipeline) build(fragment shader.Shader) (*program, error) {
	if p.ctx == nil {
		return nil, ErrContextUnavailable
	}
	p.state.Store(int32(StateBuilding))

	vs, err := p.ctx.CompileStage(shader.ShaderTypeVertex, p.vertexShader.Source())
	if err != nil {
		return nil, &StageCompileError{Stage: shader.ShaderTypeVertex, Log: err.Error()}
	}

	fs, err := p.ctx.CompileStage(shader.ShaderTypeFragment, fragment.Source())
	if err != nil {
		p.ctx.DeleteStage(vs)
		return nil, &StageCompileError{Stage: shader.ShaderTypeFragment, Log: err.Error()}
	}

	handle, err := p.ctx.Link(vs, fs)
	if err != nil {
		p.ctx.DeleteStage(vs)
		p.ctx.DeleteStage(fs)
		return nil, &LinkError{Log: err.Error()}
	}

	p.generation++
	prog := &program{
		handle:         handle,
		vertexStage:    vs,
		fragmentStage:  fs,
		fragmentShader: fragment,
		generation:     p.generation,
	}
	prog.resolve(p.ctx, p.uniformNames, p.attributeNames)

	p.live.swapAndDispose(p.ctx, prog)
	return prog, nil
}

func (p *pipeline) Live() Program {
	// A nil *program must not leak out as a non-nil interface.
	if prog := p.live.load(); prog != nil {
		return prog
	}
	return nil
}

func (p *pipeline) State() State {
	return State(p.state.Load())
}

func (p *pipeline) LastDiagnostic() (Diagnostic, bool) {
	if d := p.lastDiagnostic.Load(); d != nil {
		return *d, true
	}
	return Diagnostic{}, false
}

func (p *pipeline) VertexShader() shader.Shader {
	return p.vertexShader
}

func (p *pipeline) Available() bool {
	return p.ctx != nil
}

func (p *pipeline) Close() {
	p.buildMu.Lock()
	defer p.buildMu.Unlock()
	if p.ctx == nil {
		return
	}
	p.live.swapAndDispose(p.ctx, nil)
}
