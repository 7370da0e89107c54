package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/config"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/session"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/status"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/watcher"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] [file|example:NAME]",
	Short: "Open a live preview window for a fragment shader",
	Long: `preview draws the shader over a quad and rebuilds it whenever the watched file changes.
Edits are debounced; a failed build keeps the last good program on screen and shows the
compiler log in the status line.

Keys: F5 build, F6 format, R reset to the default shader, 1-4 load an example, Esc quit.

Without a display the command keeps running headless and only reports status.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("no-watch", false, "do not follow the file for changes")
}

// exampleKeys maps the number keys to catalog entries in display order.
var exampleKeys = []uint32{common.Key1, common.Key2, common.Key3, common.Key4}

// previewView is the optional on-screen half of a preview: nil fields mean headless.
type previewView struct {
	win window.Window
	r   renderer.Renderer
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := labConfig
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	colored, err := colorMode(cmd, os.Stderr)
	if err != nil {
		return err
	}

	src, err := previewSource(cfg, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	view := openView(cfg)
	defer view.release()

	var gc pipeline.GraphicsContext
	if view.r != nil {
		gc = view.r.GraphicsContext()
	}
	p := pipeline.NewPipeline(gc, pipeline.WithBuildCallback(func(prog pipeline.Program, err error) {
		if err != nil {
			common.Logger().Warn("shader build failed", "source", src.name, "error", err)
			return
		}
		common.Logger().Info("shader built", "source", src.name, "generation", prog.Generation())
	}))
	if view.r != nil {
		view.r.SetPipeline(p)
	}

	eng := engine.NewEngine(
		engine.WithWindow(view.win),
		engine.WithFrameRate(cfg.Preview.FrameRate),
		engine.WithProfiling(cfg.Preview.Profile),
	)

	st := status.NewStatus(
		status.WithSuccessExpiry(cfg.StatusExpiry()),
		status.WithWriter(cmd.ErrOrStderr(), colored),
	)
	sess := session.NewSession(p,
		session.WithName(src.name),
		session.WithSource(src.source),
		session.WithStatus(st),
		session.WithDebounceDelay(cfg.DebounceDelay()),
		session.WithPost(eng.Post),
		session.WithChangeCallback(func(s session.Session) {
			common.Logger().Debug("source changed", "revision", s.Revision(), "uniforms", s.UniformList())
		}),
	)
	defer sess.Close()

	if view.win != nil {
		bindInput(view, sess)
		eng.SetFrameCallback(frameCallback(cfg.Preview.Title, view, sess))
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if src.path != "" && !noWatch {
		w, err := watcher.NewWatcher(src.path, func(text string) {
			eng.Post(func() {
				if text != sess.Source() {
					sess.SetSource(text)
				}
			})
		})
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		g.Go(func() error {
			return w.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		eng.Quit()
		return nil
	})

	eng.Post(func() {
		_ = sess.RequestBuild()
	})
	eng.Run()

	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// previewSource picks the shader to open: the argument, the configured initial example or
// the default fragment shader.
func previewSource(cfg config.Config, args []string) (namedSource, error) {
	if len(args) == 1 {
		return readSource(args[0], os.Stdin)
	}
	if name := cfg.Editor.InitialExample; name != "" {
		return readSource(examplePrefix+name, os.Stdin)
	}
	return namedSource{name: "default", source: shader.DefaultFragmentSource()}, nil
}

// openView creates the window and renderer. Any failure degrades to a headless preview.
func openView(cfg config.Config) previewView {
	win, err := window.NewWindow(
		window.WithTitle(cfg.Preview.Title),
		window.WithWidth(cfg.Preview.Width),
		window.WithHeight(cfg.Preview.Height),
		window.WithVSync(cfg.Preview.VSync),
	)
	if err != nil {
		common.Logger().Warn("preview window unavailable, running headless", "error", err)
		return previewView{}
	}

	r, err := renderer.NewRenderer(renderer.BackendTypeOpenGL,
		renderer.WithQuadSize(cfg.Preview.QuadSize),
		renderer.WithSize(win.Width(), win.Height()),
	)
	if err != nil {
		common.Logger().Warn("renderer unavailable, running headless", "error", err)
		_ = win.Close()
		return previewView{}
	}
	return previewView{win: win, r: r}
}

func (v previewView) release() {
	if v.r != nil {
		v.r.Release()
	}
	if v.win != nil {
		_ = v.win.Close()
	}
}

// bindInput wires the window callbacks to the session. Callbacks fire from PollEvents on the
// loop goroutine, so they may call the session and renderer directly.
func bindInput(view previewView, sess session.Session) {
	view.win.SetResizeCallback(func(width, height int) {
		view.r.Resize(width, height)
	})
	view.win.SetMouseMoveCallback(func(x, y float64) {
		width, height := view.win.WindowSize()
		sess.SetMouse(x, y, width, height)
	})
	view.win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyF5:
			_ = sess.RequestBuild()
		case common.KeyF6:
			_ = sess.RequestFormat()
		case common.KeyR:
			_ = sess.ResetToDefault()
		default:
			names := shader.ExampleNames()
			for i, k := range exampleKeys {
				if keyCode == k && i < len(names) {
					if err := sess.LoadNamedExample(names[i]); err != nil && !isBuildError(err) {
						common.Logger().Error("loading example failed", "example", names[i], "error", err)
					}
				}
			}
		}
	})
}

// frameCallback draws one frame and mirrors the status line into the window title.
func frameCallback(title string, view previewView, sess session.Session) func(float32) {
	lastTitle := ""
	return func(float32) {
		width, height := view.r.Size()
		view.r.DrawFrame(sess.FrameUniforms(width, height))
		view.win.SwapBuffers()

		next := title
		if msg, ok := sess.Status().Current(); ok {
			next = title + " | " + firstLine(msg.String())
		}
		if next != lastTitle {
			view.win.SetTitle(next)
			lastTitle = next
		}
	}
}

// isBuildError reports whether err is a shader build failure, already shown in the status line.
func isBuildError(err error) bool {
	_, ok := pipeline.DiagnosticFromError(err)
	return ok
}

// firstLine trims a multi-line compiler log to its first line for the title bar.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
