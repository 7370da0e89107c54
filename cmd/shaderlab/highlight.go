package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/spf13/cobra"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] <file|example:NAME|->",
	Short: "Print a fragment shader with syntax highlighting",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().Bool("markup", false, "print class-span markup instead of a chroma rendering")
	highlightCmd.Flags().String("formatter", "", "chroma formatter (default from config)")
	highlightCmd.Flags().String("style", "", "chroma style (default from config)")
	highlightCmd.Flags().Bool("list", false, "list available formatters and styles")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if list {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "formatters: %s\n", strings.Join(shader.FormatterNames(), ", "))
		fmt.Fprintf(out, "styles: %s\n", strings.Join(shader.StyleNames(), ", "))
		return nil
	}

	src, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	markup, err := cmd.Flags().GetBool("markup")
	if err != nil {
		return err
	}
	if markup {
		_, err := fmt.Fprint(cmd.OutOrStdout(), shader.RenderMarkup(src.source))
		return err
	}

	formatterName, _ := cmd.Flags().GetString("formatter")
	styleName, _ := cmd.Flags().GetString("style")
	if formatterName == "" {
		formatterName = labConfig.Highlight.Formatter
		colored, err := colorMode(cmd, os.Stdout)
		if err != nil {
			return err
		}
		if !colored {
			formatterName = "noop"
		}
	}
	if styleName == "" {
		styleName = labConfig.Highlight.Style
	}
	return shader.Highlight(cmd.OutOrStdout(), src.source, formatterName, styleName)
}
