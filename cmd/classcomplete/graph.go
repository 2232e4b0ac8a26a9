package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
	"github.com/yacobolo/classcomplete/internal/cssclass"
)

var graphCmd = &cobra.Command{
	Use:   "graph STYLESHEET",
	Short: "Print the @import graph of a stylesheet",
	Long: `Print the stylesheets reachable from STYLESHEET through @import, with
import cycles and unresolved imports. Use --format dot for Graphviz.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunLoadConfig,
	RunE:    runGraph,
}

func init() {
	graphCmd.Flags().String("format", "tree", "Output format: tree|dot")
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "tree" && format != "dot" {
		return fmt.Errorf("%w: unknown graph format %q (want tree or dot)", classcomplete.ErrInvalidConfig, format)
	}

	stylesheet, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve stylesheet path: %w", err)
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	ig, err := provider.Graph(stylesheet)
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}
	w := cmd.OutOrStdout()
	if format == "dot" {
		return ig.WriteDOT(w)
	}
	cssclass.NewReporter(w, useColors(), provider.Root()).PrintTree(ig)
	return nil
}
