// Package main provides the classcomplete CLI for inspecting and serving
// CSS classname completions.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/classcomplete/internal/cssclass"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cssclass.RenderStyle(cssclass.StyleRed, "Error: "+err.Error(), useColors()))
		os.Exit(1)
	}
}
