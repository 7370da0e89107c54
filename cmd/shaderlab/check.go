package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/inspect"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
	"github.com/spf13/cobra"
)

// errCheckFailed is returned when a checked source fails to read or build, or is unformatted
// under --strict.
var errCheckFailed = errors.New("check: problems found")

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file|example:NAME ...]",
	Short: "Report format, uniform and build status for many shaders",
	Long: `check analyzes every source in parallel: whether it is formatted, which uniforms it
declares and how its tokens classify. With --build each source is also compiled and linked
against the fixed vertex stage in an offscreen OpenGL 2.1 context. Without arguments the
bundled examples are checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("build", false, "compile and link each source in an offscreen OpenGL context")
	checkCmd.Flags().Bool("strict", false, "treat unformatted sources as failures")
	checkCmd.Flags().IntP("jobs", "j", 0, "number of analysis workers (0 = CPU count - 1)")
}

// checkResult pairs an inspection report with its optional build outcome.
type checkResult struct {
	report   inspect.Report
	built    bool
	buildErr error
}

func runCheck(cmd *cobra.Command, args []string) error {
	build, _ := cmd.Flags().GetBool("build")
	strict, _ := cmd.Flags().GetBool("strict")
	jobs, _ := cmd.Flags().GetInt("jobs")
	colored, err := colorMode(cmd, os.Stdout)
	if err != nil {
		return err
	}

	sources := make(map[string]string)
	var keys []string
	if len(args) == 0 {
		for _, name := range shader.ExampleNames() {
			args = append(args, examplePrefix+name)
		}
	}
	for _, arg := range args {
		src, err := readSource(arg, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		sources[src.name] = src.source
		keys = append(keys, src.name)
	}

	reports := inspect.NewInspector(inspect.WithWorkers(jobs)).InspectSources(sources, keys...)
	results := make([]checkResult, len(reports))
	for i, r := range reports {
		results[i] = checkResult{report: r}
	}

	if build {
		if err := buildAll(results); err != nil {
			return err
		}
	}

	styles := newPanelStyles(colored)
	failed := false
	out := cmd.OutOrStdout()
	for _, res := range results {
		lines, ok := describeResult(res, styles, strict)
		failed = failed || !ok
		fmt.Fprintln(out, styles.panel(res.report.Path, lines))
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

// buildAll compiles every analyzed source on the calling thread, which owns the offscreen
// context. Builds are sequential because GL calls are bound to that thread.
func buildAll(results []checkResult) error {
	win, err := window.NewWindow(window.WithHidden(true), window.WithWidth(64), window.WithHeight(64))
	if err != nil {
		return fmt.Errorf("check: --build: %w", err)
	}
	defer win.Close()

	r, err := renderer.NewRenderer(renderer.BackendTypeOpenGL)
	if err != nil {
		return fmt.Errorf("check: --build: %w", err)
	}
	defer r.Release()

	p := pipeline.NewPipeline(r.GraphicsContext())
	defer p.Close()

	for i := range results {
		rep := results[i].report
		if rep.Err != nil {
			continue
		}
		_, err := p.Build(rep.Shader)
		results[i].built = true
		results[i].buildErr = err
		if err != nil {
			common.Logger().Warn("build failed", "source", rep.Path, "error", err)
		}
	}
	return nil
}

// describeResult renders the panel lines for one result and reports whether it passed.
func describeResult(res checkResult, styles panelStyles, strict bool) ([]string, bool) {
	rep := res.report
	if rep.Err != nil {
		return []string{styles.bad.Render("error: " + rep.Err.Error())}, false
	}

	ok := true
	var lines []string
	if rep.Formatted {
		lines = append(lines, "format:   "+styles.ok.Render("ok"))
	} else {
		lines = append(lines, "format:   "+styles.bad.Render("needs fmt"))
		ok = ok && !strict
	}

	names := make([]string, 0, len(rep.Uniforms))
	for _, u := range rep.Uniforms {
		names = append(names, u.Name)
	}
	lines = append(lines, "uniforms: "+strings.Join(shader.UniformDisplayList(names), ", "))
	lines = append(lines, "tokens:   "+styles.dim.Render(categorySummary(rep.Categories)))

	if res.built {
		if res.buildErr == nil {
			lines = append(lines, "build:    "+styles.ok.Render("ok"))
		} else {
			msg := res.buildErr.Error()
			if d, isDiag := pipeline.DiagnosticFromError(res.buildErr); isDiag {
				msg = d.String()
			}
			lines = append(lines, "build:    "+styles.bad.Render(msg))
			ok = false
		}
	}
	return lines, ok
}

// categorySummary lists the non-plain category counts in category order.
func categorySummary(counts map[shader.Category]int) string {
	var parts []string
	for c := shader.CategoryComment; c <= shader.CategoryOutput; c++ {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
