package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "gridpad",
	Short: "Edit tabbed key-grid profiles for the keypad client",
	Long:  "gridpad is a terminal editor for the JSON keypad profiles the radio client loads: tabs, key grids, nested subpages, and station bindings, exported byte-identically to the client's own toolchain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the editor (on a new profile when no file
		// is given).
		return editCmd.RunE(cmd, args)
	},
	Args: cobra.MaximumNArgs(1),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridpad %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(stationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
