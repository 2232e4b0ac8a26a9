package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
	"github.com/yacobolo/classcomplete/internal/cssclass"
)

var classesCmd = &cobra.Command{
	Use:   "classes [STYLESHEET...]",
	Short: "List the classnames reachable from stylesheets",
	Long: `List the classnames each stylesheet defines, including everything it
pulls in through @import. Without arguments the global stylesheets are listed.`,
	PreRunE: preRunLoadConfig,
	RunE:    runClasses,
}

func init() {
	classesCmd.Flags().String("format", "text", "Output format: text|json")
}

func runClasses(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	stylesheets, err := absPaths(args)
	if err != nil {
		return err
	}
	if len(stylesheets) == 0 {
		stylesheets = provider.GlobalStylesheets()
	}

	sheets := make([]classcomplete.StylesheetClasses, 0, len(stylesheets))
	for _, s := range stylesheets {
		sheets = append(sheets, classcomplete.StylesheetClasses{
			Path:    s,
			Classes: provider.Classnames(s),
		})
	}

	if getBool("quiet", false) {
		return nil
	}
	w := cmd.OutOrStdout()
	formatFlag, _ := cmd.Flags().GetString("format")
	reporter := cssclass.NewReporter(w, useColors(), provider.Root())
	return classcomplete.WriteClasses(w, sheets, classcomplete.DetermineOutputFormat(formatFlag), reporter)
}
