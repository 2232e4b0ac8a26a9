package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
)

var importsCmd = &cobra.Command{
	Use:   "imports FILE",
	Short: "Show the stylesheet imports of a document and where they resolve",
	Long: `Scan a document for stylesheet imports and list every candidate path
each import resolves to, with its classname count or (missing).`,
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunLoadConfig,
	RunE:    runImports,
}

func init() {
	importsCmd.Flags().String("format", "text", "Output format: text|json")
}

func runImports(cmd *cobra.Command, args []string) error {
	docPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	// #nosec G304 - the document is named on the command line
	content, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	imports := provider.Imports(docPath, string(content))

	if getBool("quiet", false) {
		return nil
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	return classcomplete.WriteImports(cmd.OutOrStdout(), docPath, imports, classcomplete.DetermineOutputFormat(formatFlag))
}

// absPaths makes command line paths absolute against the working directory
func absPaths(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		p, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", arg, err)
		}
		out = append(out, p)
	}
	return out, nil
}
