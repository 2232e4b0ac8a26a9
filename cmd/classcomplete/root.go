package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
)

var rootCmd = &cobra.Command{
	Use:   "classcomplete",
	Short: "CSS classname completion for React/TSX projects",
	Long: `Suggest CSS class names inside className="..." attributes.
Suggestions come from the project's global stylesheets and from every
stylesheet a document imports, following @import chains.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().String("root", ".", "Project root")
	rootCmd.PersistentFlags().StringSlice("global-css", nil, "Stylesheets whose classes are always suggested (globs allowed)")
	rootCmd.PersistentFlags().StringSlice("module-search-paths", nil, "Prefixes tried for bare import specifiers")
	rootCmd.PersistentFlags().String("scanner", classcomplete.ScannerLexical, "Import scanner: lexical|syntax")

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(warmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// preRunLoadConfig is shared by every command that builds a provider
func preRunLoadConfig(cmd *cobra.Command, _ []string) error {
	return loadConfig(cmd)
}
