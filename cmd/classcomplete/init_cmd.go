package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classcomplete.yaml config file",
	Long:  `Create a .classcomplete.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# classcomplete configuration
# Docs: https://github.com/yacobolo/classcomplete

# Project root; relative paths below are taken from here
root: .

# Stylesheets whose classes are suggested in every document (globs allowed)
global-css:
  - "src/index.css"

# Prefixes tried, in order, for bare imports such as "lib/theme.css"
module-search-paths:
  - node_modules
  - src

scanner: lexical           # lexical | syntax

cache:
  size: 4096               # 0 = unbounded
  remember-missing: false  # never re-probe stylesheets found missing

limits:
  max-depth: 32            # @import nesting per request, 0 = unlimited
  max-files: 1024          # stylesheet reads per request, 0 = unlimited

log:
  level: warn              # debug | info | warn | error
  format: text             # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
