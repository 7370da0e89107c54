package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "shaderlab",
	Short: "GLSL fragment shader lab",
	Long: `shaderlab edits, highlights, formats and previews GLSL ES 1.00 fragment shaders
drawn over a centered quad.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// GLFW must run on the main thread; the preview and check --build commands open windows.
func init() {
	runtime.LockOSThread()

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(uniformsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: discovered upward from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error), overrides the config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

// main executes the root command. If command execution returns an error, the process exits
// with status code 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// labConfig is the configuration resolved by setupCommand for the running command.
var labConfig = config.Default()

// setupCommand loads the configuration and installs the shared logger.
func setupCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	levelName := cfg.Log.Level
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		levelName = flagLevel
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return err
	}
	common.SetLogger(newLogger(os.Stderr, level))

	if cfg.Path != "" {
		common.Logger().Debug("config loaded", "path", cfg.Path)
	}
	labConfig = cfg
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// colorMode resolves the --color flag against the given output file.
func colorMode(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (auto|on|off)", mode)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
