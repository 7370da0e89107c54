package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/spf13/cobra"
)

// errNeedsFormatting is returned by fmt --check when at least one source would change.
var errNeedsFormatting = errors.New("fmt: formatting changes required")

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <file|example:NAME|-> [...]",
	Short: "Reflow fragment shader sources",
	Long: `fmt puts a line break after every ';' and '{' and before every '}', then re-indents
with four spaces per brace depth. Without -w the result is printed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report sources that are not formatted and fail if any")
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	if check && write {
		return fmt.Errorf("fmt: --check cannot be used with -w")
	}

	out := cmd.OutOrStdout()
	var changed bool
	for _, arg := range args {
		src, err := readSource(arg, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("fmt: %w", err)
		}
		formatted := shader.Format(src.source)

		switch {
		case check:
			if formatted != src.source {
				changed = true
				fmt.Fprintln(out, src.name)
			}
		case write:
			if src.path == "" {
				return fmt.Errorf("fmt: -w needs a file, got %s", src.name)
			}
			if formatted == src.source {
				continue
			}
			info, err := os.Stat(src.path)
			if err != nil {
				return fmt.Errorf("fmt: %w", err)
			}
			if err := os.WriteFile(src.path, []byte(formatted), info.Mode().Perm()); err != nil {
				return fmt.Errorf("fmt: %w", err)
			}
			common.Logger().Info("formatted", "path", src.path)
		default:
			fmt.Fprint(out, formatted)
		}
	}

	if changed {
		return errNeedsFormatting
	}
	return nil
}
