package inspect

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

// Report is the analysis of one fragment shader file.
type Report struct {
	// Path is the inspected file.
	Path string
	// Shader is the analyzed source, nil if the file could not be read.
	Shader shader.Shader
	// Uniforms are the declared uniforms in source order.
	Uniforms []shader.Uniform
	// Formatted reports whether the source is already in reflowed form.
	Formatted bool
	// Categories counts the classified spans per category.
	Categories map[shader.Category]int
	// Err is the read error, if any.
	Err error
}

// inspector is the implementation of the Inspector interface.
type inspector struct {
	workers   int
	queueSize int
	pool      worker.DynamicWorkerPool
}

// Inspector analyzes many shader files in parallel on a bounded worker pool. Analysis is pure
// text work (classification, uniform extraction, format check), so it runs off the thread that
// owns the graphics context; builds are left to the caller.
type Inspector interface {
	// Inspect reads and analyzes every path.
	//
	// Parameters:
	//   - paths: the files to analyze
	//
	// Returns:
	//   - []Report: one report per path, in the order given
	Inspect(paths ...string) []Report

	// InspectSources analyzes in-memory sources.
	//
	// Parameters:
	//   - sources: key to source text; the key becomes the report path
	//   - keys: the keys to analyze, in report order
	//
	// Returns:
	//   - []Report: one report per key, in the order given
	InspectSources(sources map[string]string, keys ...string) []Report
}

var _ Inspector = &inspector{}

// NewInspector creates a new Inspector.
//
// Parameters:
//   - opts: a variadic list of InspectorBuilderOption functions to configure the inspector
//
// Returns:
//   - Inspector: the new inspector
func NewInspector(opts ...InspectorBuilderOption) Inspector {
	in := &inspector{
		workers:   max(runtime.NumCPU()-1, 1),
		queueSize: 256,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.pool = worker.NewDynamicWorkerPool(in.workers, in.queueSize, 1*time.Second)
	return in
}

func (in *inspector) Inspect(paths ...string) []Report {
	return in.run(len(paths), func(i int) Report {
		return analyzeFile(paths[i])
	})
}

func (in *inspector) InspectSources(sources map[string]string, keys ...string) []Report {
	return in.run(len(keys), func(i int) Report {
		src, ok := sources[keys[i]]
		if !ok {
			return Report{Path: keys[i], Err: fmt.Errorf("inspect: no source for %q", keys[i])}
		}
		return analyze(keys[i], src)
	})
}

// run submits n analysis tasks and waits for all of them. Each task writes only its own slot.
func (in *inspector) run(n int, analyzeOne func(i int) Report) []Report {
	reports := make([]Report, n)
	start := time.Now()

	// The pool bounds concurrency; the WaitGroup is the batch barrier.
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		id := i
		in.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				reports[id] = analyzeOne(id)
				return nil, reports[id].Err
			},
		})
	}
	wg.Wait()

	common.Logger().Debug("inspection finished", "files", n, "workers", in.workers, "elapsed", time.Since(start))
	return reports
}

func analyzeFile(path string) Report {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{Path: path, Err: fmt.Errorf("inspect: %w", err)}
	}
	return analyze(path, string(data))
}

func analyze(key, source string) Report {
	s := shader.NewShader(key, shader.ShaderTypeFragment, source)
	counts := make(map[shader.Category]int)
	for _, sp := range s.Spans() {
		counts[sp.Category]++
	}
	return Report{
		Path:       key,
		Shader:     s,
		Uniforms:   s.Uniforms(),
		Formatted:  shader.IsFormatted(source),
		Categories: counts,
	}
}
