package pipeline_test

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline/pipelinetest"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragment(source string) shader.Shader {
	return shader.NewShader("test.frag", shader.ShaderTypeFragment, source)
}

func exampleFragment(t *testing.T, name string) shader.Shader {
	t.Helper()
	src, ok := shader.Example(name)
	require.True(t, ok)
	return shader.NewShader(name, shader.ShaderTypeFragment, src)
}

func TestBuildCircleResolvesHandles(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx)
	assert.Equal(t, pipeline.StateUninitialized, p.State())
	assert.Nil(t, p.Live())

	prog, err := p.Build(exampleFragment(t, "circle"))
	require.NoError(t, err)
	require.NotNil(t, prog)

	assert.Equal(t, pipeline.StateLive, p.State())
	assert.Same(t, prog, p.Live())
	assert.True(t, prog.Uniform(pipeline.UniformTime).Valid())
	assert.True(t, prog.Uniform(pipeline.UniformResolution).Valid())
	assert.False(t, prog.Uniform(pipeline.UniformMouse).Valid(), "u_mouse is not declared by the circle example")
	assert.GreaterOrEqual(t, int(prog.Attribute(pipeline.AttributePosition)), 0)
	assert.Equal(t, pipeline.InvalidLocation, prog.Uniform("u_unrequested"))

	_, ok := p.LastDiagnostic()
	assert.False(t, ok)
}

func TestBuildOrder(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx)
	_, err := p.Build(exampleFragment(t, "gradient"))
	require.NoError(t, err)
	assert.Equal(t, []string{"compile vertex", "compile fragment", "link"}, ctx.Calls())

	// The superseded program is released only after the new one is linked.
	ctx.ResetCalls()
	_, err = p.Build(exampleFragment(t, "wave"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"compile vertex", "compile fragment", "link",
		"delete program", "delete stage", "delete stage",
	}, ctx.Calls())
}

func TestFailedBuildKeepsLiveProgram(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx)
	good, err := p.Build(exampleFragment(t, "circle"))
	require.NoError(t, err)
	timeLoc := good.Uniform(pipeline.UniformTime)

	ctx.ResetCalls()
	prog, err := p.Build(fragment("void main() { #error }"))
	require.Error(t, err)
	assert.Nil(t, prog)

	var compileErr *pipeline.StageCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, shader.ShaderTypeFragment, compileErr.Stage)
	assert.Contains(t, compileErr.Log, "'#error'")

	assert.Equal(t, pipeline.StateFailed, p.State())
	assert.Same(t, good, p.Live())
	assert.Equal(t, timeLoc, p.Live().Uniform(pipeline.UniformTime))
	assert.True(t, ctx.HasProgram(good.Handle()), "live program must not be released by a failed build")

	// Only the freshly compiled vertex stage is released.
	assert.Equal(t, []string{"compile vertex", "compile fragment", "delete stage"}, ctx.Calls())

	d, ok := p.LastDiagnostic()
	require.True(t, ok)
	assert.Equal(t, pipeline.DiagnosticStageFragment, d.Stage)
}

func TestLinkFailureReleasesFreshStages(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx)
	good, err := p.Build(exampleFragment(t, "plasma"))
	require.NoError(t, err)

	_, err = p.Build(fragment("varying vec2 v_uv; // LINK_FAIL\nvoid main() {}"))
	var linkErr *pipeline.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Contains(t, linkErr.Log, "v_uv")

	assert.Same(t, good, p.Live())
	assert.Equal(t, 2, ctx.LiveStages(), "only the live program's stages remain")
	assert.Equal(t, 1, ctx.LivePrograms())

	d, ok := p.LastDiagnostic()
	require.True(t, ok)
	assert.Equal(t, pipeline.DiagnosticStageLink, d.Stage)
}

func TestVertexFailure(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx, pipeline.WithVertexShader(shader.NewShader("bad.vert", shader.ShaderTypeVertex, "#error")))
	_, err := p.Build(exampleFragment(t, "circle"))

	var compileErr *pipeline.StageCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, shader.ShaderTypeVertex, compileErr.Stage)
	assert.Equal(t, []string{"compile vertex"}, ctx.Calls(), "the fragment stage is never compiled")
	assert.Nil(t, p.Live())

	d, ok := pipeline.DiagnosticFromError(err)
	require.True(t, ok)
	assert.Equal(t, pipeline.DiagnosticStageVertex, d.Stage)
}

func TestRepeatedBuildsLeaveOneLiveProgram(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx)

	const n = 10
	var last pipeline.Program
	for i := 0; i < n; i++ {
		name := shader.ExampleNames()[i%len(shader.ExampleNames())]
		prog, err := p.Build(exampleFragment(t, name))
		require.NoError(t, err)
		last = prog
		// Interleave failures, which must not leak either.
		_, err = p.Build(fragment("#error"))
		require.Error(t, err)
	}

	assert.Equal(t, 1, ctx.LivePrograms())
	assert.Equal(t, 2, ctx.LiveStages())
	assert.Equal(t, n-1, ctx.DeletedPrograms())
	assert.Equal(t, uint64(n), last.Generation())

	p.Close()
	assert.Zero(t, ctx.LivePrograms())
	assert.Zero(t, ctx.LiveStages())
	assert.Nil(t, p.Live())
}

func TestMissingContext(t *testing.T) {
	p := pipeline.NewPipeline(nil)
	assert.False(t, p.Available())

	_, err := p.Build(exampleFragment(t, "circle"))
	require.ErrorIs(t, err, pipeline.ErrContextUnavailable)
	assert.Nil(t, p.Live())

	d, ok := p.LastDiagnostic()
	require.True(t, ok)
	assert.Equal(t, pipeline.DiagnosticStageContext, d.Stage)
	p.Close()
}

func TestCustomHandleSets(t *testing.T) {
	ctx := pipelinetest.NewFakeContext()
	p := pipeline.NewPipeline(ctx,
		pipeline.WithUniformNames("u_color"),
		pipeline.WithAttributeNames("a_position", "a_uv"),
	)
	prog, err := p.Build(fragment("uniform vec3 u_color; void main() {}"))
	require.NoError(t, err)
	assert.Equal(t, map[string]pipeline.Location{"u_color": 0}, prog.Uniforms())
	assert.Equal(t, map[string]pipeline.Location{"a_position": 0, "a_uv": pipeline.InvalidLocation}, prog.Attributes())
}

func TestBuildCallback(t *testing.T) {
	var got []error
	p := pipeline.NewPipeline(pipelinetest.NewFakeContext(), pipeline.WithBuildCallback(func(prog pipeline.Program, err error) {
		got = append(got, err)
	}))
	_, _ = p.Build(exampleFragment(t, "circle"))
	_, _ = p.Build(fragment("#error"))
	require.Len(t, got, 2)
	assert.NoError(t, got[0])
	assert.Error(t, got[1])
}

func TestBuildPanicsOnWrongStage(t *testing.T) {
	p := pipeline.NewPipeline(pipelinetest.NewFakeContext())
	assert.Panics(t, func() {
		_, _ = p.Build(shader.NewVertexShader())
	})
}

func TestDiagnosticFromError(t *testing.T) {
	_, ok := pipeline.DiagnosticFromError(nil)
	assert.False(t, ok)
	_, ok = pipeline.DiagnosticFromError(errors.New("other"))
	assert.False(t, ok)

	d, ok := pipeline.DiagnosticFromError(&pipeline.LinkError{Log: "boom"})
	require.True(t, ok)
	assert.Equal(t, "link: failed to link program: boom", d.String())
}
