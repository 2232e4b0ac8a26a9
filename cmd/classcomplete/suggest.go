package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest FILE",
	Short: "Print the classnames suggested inside a document",
	Long: `Print every classname available in a document: global classnames first,
then the classnames of each imported stylesheet in import order.
With --prefix, the suggestions are only printed when the cursor would be
inside a className string.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunLoadConfig,
	RunE:    runSuggest,
}

func init() {
	f := suggestCmd.Flags()
	f.String("prefix", "", "Line text before the cursor, as an editor would send it")
	f.String("format", "text", "Output format: text|json")
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	var suggestions []string
	if cmd.Flags().Changed("prefix") {
		prefix, _ := cmd.Flags().GetString("prefix")
		suggestions, err = provider.Complete(cmd.Context(), classcomplete.Request{
			LinePrefix:   prefix,
			DocumentPath: docPath,
			DocumentText: string(content),
		})
		if err != nil {
			return err
		}
	} else {
		suggestions = provider.Suggest(docPath, string(content))
	}

	if getBool("quiet", false) {
		return nil
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	return classcomplete.WriteSuggestions(cmd.OutOrStdout(), docPath, suggestions, classcomplete.DetermineOutputFormat(formatFlag))
}
