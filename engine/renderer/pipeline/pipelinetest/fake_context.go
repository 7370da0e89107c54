// Package pipelinetest provides an in-memory pipeline.GraphicsContext for tests.
package pipelinetest

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

const (
	// CompileFailMarker makes any stage whose source contains it fail to compile.
	CompileFailMarker = "#error"
	// LinkFailMarker makes a link fail when the fragment source contains it.
	LinkFailMarker = "LINK_FAIL"
)

var attributeDeclRegex = regexp.MustCompile(`attribute\s+\w+\s+(\w+)\s*;`)

type stage struct {
	kind   shader.ShaderType
	source string
}

type program struct {
	uniforms   []string
	attributes []string
}

// FakeContext is an in-memory GraphicsContext. Declared uniforms and attributes are active and
// their locations are their declaration index. Every call is recorded.
type FakeContext struct {
	mu       sync.Mutex
	next     uint32
	stages   map[pipeline.StageHandle]stage
	programs map[pipeline.ProgramHandle]program
	calls    []string
}

var _ pipeline.GraphicsContext = &FakeContext{}

// NewFakeContext creates an empty FakeContext.
func NewFakeContext() *FakeContext {
	return &FakeContext{
		stages:   make(map[pipeline.StageHandle]stage),
		programs: make(map[pipeline.ProgramHandle]program),
	}
}

func (f *FakeContext) CompileStage(kind shader.ShaderType, source string) (pipeline.StageHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "compile "+kind.String())
	if strings.Contains(source, CompileFailMarker) {
		return 0, errors.New("ERROR: 0:1: '#error' : " + kind.String() + " stage rejected")
	}
	f.next++
	h := pipeline.StageHandle(f.next)
	f.stages[h] = stage{kind: kind, source: source}
	return h, nil
}

func (f *FakeContext) Link(vertex, fragment pipeline.StageHandle) (pipeline.ProgramHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "link")
	vs, fs := f.stages[vertex], f.stages[fragment]
	if strings.Contains(fs.source, LinkFailMarker) {
		return 0, errors.New("error: varying v_uv not written by vertex shader")
	}
	f.next++
	h := pipeline.ProgramHandle(f.next)
	var p program
	p.uniforms = append(p.uniforms, shader.ExtractUniformNames(vs.source)...)
	p.uniforms = append(p.uniforms, shader.ExtractUniformNames(fs.source)...)
	for _, m := range attributeDeclRegex.FindAllStringSubmatch(vs.source, -1) {
		p.attributes = append(p.attributes, m[1])
	}
	f.programs[h] = p
	return h, nil
}

func (f *FakeContext) UniformLocation(prog pipeline.ProgramHandle, name string) pipeline.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.programs[prog]
	if !ok {
		return pipeline.InvalidLocation
	}
	return pipeline.Location(slices.Index(p.uniforms, name))
}

func (f *FakeContext) AttributeLocation(prog pipeline.ProgramHandle, name string) pipeline.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.programs[prog]
	if !ok {
		return pipeline.InvalidLocation
	}
	return pipeline.Location(slices.Index(p.attributes, name))
}

func (f *FakeContext) DeleteStage(h pipeline.StageHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete stage")
	delete(f.stages, h)
}

func (f *FakeContext) DeleteProgram(h pipeline.ProgramHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete program")
	delete(f.programs, h)
}

// Calls returns the recorded build-side calls, e.g. "compile fragment", "link", "delete stage".
func (f *FakeContext) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// ResetCalls forgets the recorded calls.
func (f *FakeContext) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// LiveStages returns the number of stage objects not yet deleted.
func (f *FakeContext) LiveStages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stages)
}

// LivePrograms returns the number of program objects not yet deleted.
func (f *FakeContext) LivePrograms() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.programs)
}

// HasProgram reports whether h is a linked program that has not been deleted.
func (f *FakeContext) HasProgram(h pipeline.ProgramHandle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.programs[h]
	return ok
}

// DeletedPrograms counts the "delete program" calls recorded so far.
func (f *FakeContext) DeletedPrograms() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == "delete program" {
			n++
		}
	}
	return n
}
