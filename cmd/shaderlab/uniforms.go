package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/spf13/cobra"
)

var uniformsCmd = &cobra.Command{
	Use:   "uniforms [flags] <file|example:NAME|-> [...]",
	Short: "List the uniforms a fragment shader declares",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUniforms,
}

func init() {
	uniformsCmd.Flags().Bool("plain", false, "print one name per line without a panel")
}

func runUniforms(cmd *cobra.Command, args []string) error {
	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}
	colored, err := colorMode(cmd, os.Stdout)
	if err != nil {
		return err
	}
	styles := newPanelStyles(colored)

	out := cmd.OutOrStdout()
	for _, arg := range args {
		src, err := readSource(arg, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("uniforms: %w", err)
		}
		uniforms := shader.ExtractUniforms(src.source)

		if plain {
			for _, u := range uniforms {
				fmt.Fprintln(out, u.Name)
			}
			continue
		}

		names := make([]string, 0, len(uniforms))
		for _, u := range uniforms {
			names = append(names, u.Name)
		}
		lines := shader.UniformDisplayList(names)
		if len(uniforms) > 0 {
			for i, u := range uniforms {
				lines[i] = fmt.Sprintf("%s %s", u.Name, styles.dim.Render(u.Type))
			}
		}
		fmt.Fprintln(out, styles.panel(src.name, lines))
	}
	return nil
}
