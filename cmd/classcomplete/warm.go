package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
	"github.com/yacobolo/classcomplete/internal/cssclass"
)

var warmCmd = &cobra.Command{
	Use:   "warm [PATTERN...]",
	Short: "Parse stylesheets and report their classname counts",
	Long: `Parse every stylesheet matching the given patterns (doublestar globs,
relative to the project root) and report how many classnames each one
provides. Without patterns the global stylesheets are used.`,
	PreRunE: preRunLoadConfig,
	RunE:    runWarm,
}

func runWarm(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	stylesheets := provider.GlobalStylesheets()
	var stats classcomplete.ExpandStats
	if len(args) > 0 {
		if stylesheets, stats, err = classcomplete.ExpandStylesheets(provider.Root(), args); err != nil {
			return err
		}
	}

	warmed, err := provider.Warm(cmd.Context(), stylesheets)
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}

	w := cmd.OutOrStdout()
	colors := useColors()
	total := 0
	for _, s := range warmed {
		total += s.Classnames
		fmt.Fprintf(w, "  %s %s\n", s.Path,
			cssclass.RenderStyle(cssclass.StyleGray, fmt.Sprintf("(%d)", s.Classnames), colors))
	}
	fmt.Fprintln(w, cssclass.RenderStyle(cssclass.StyleGreen,
		fmt.Sprintf("Warmed %d stylesheets, %d classnames", len(warmed), total), colors))
	if stats.FilesSkipped > 0 {
		fmt.Fprintf(w, "  Skipped (gitignored): %d\n", stats.FilesSkipped)
	}

	if getBool("verbose", false) {
		cssclass.NewVerboseReporter(w, colors).PrintCacheStats(provider.Stats())
	}
	return nil
}
