package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "struct-changelog",
	Short: "Structural change tracking for nested documents",
	Long: `struct-changelog compares nested documents (mappings, sequences and
record objects) and reports every addition, edit and removal keyed by a
dotted path into the structure.`,
}

func main() {
	initLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
