package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [name]",
	Short: "List the bundled example shaders or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamples,
}

func init() {
	examplesCmd.Flags().Bool("vertex", false, "print the fixed vertex stage")
	examplesCmd.Flags().Bool("default", false, "print the default fragment shader")
}

func runExamples(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if vertex, _ := cmd.Flags().GetBool("vertex"); vertex {
		_, err := fmt.Fprint(out, shader.VertexSource())
		return err
	}
	if def, _ := cmd.Flags().GetBool("default"); def {
		_, err := fmt.Fprint(out, shader.DefaultFragmentSource())
		return err
	}

	if len(args) == 0 {
		for i, name := range shader.ExampleNames() {
			fmt.Fprintf(out, "%d  %s\n", i+1, name)
		}
		return nil
	}

	src, ok := shader.Example(args[0])
	if !ok {
		return fmt.Errorf("examples: unknown example %q", args[0])
	}
	_, err := fmt.Fprint(out, src)
	return err
}
