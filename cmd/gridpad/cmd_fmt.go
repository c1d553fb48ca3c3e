package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyfreq/gridpad/internal/profile"
)

var (
	fmtCheck  bool
	fmtStdout bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Rewrite profile files in canonical form",
	Long:  "Loads, validates, and normalizes each profile and writes it back in the canonical layout. With --check, files are not modified; the command exits nonzero if any file is not already canonical.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirty := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			p, err := profile.Load(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out := profile.Marshal(p)

			switch {
			case fmtStdout:
				fmt.Print(string(out))
			case bytes.Equal(data, out):
				// Already canonical.
			case fmtCheck:
				fmt.Printf("%s is not canonical\n", path)
				dirty++
			default:
				if err := os.WriteFile(path, out, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Printf("Rewrote %s\n", path)
			}
		}
		if dirty > 0 {
			return fmt.Errorf("%d file(s) not canonical", dirty)
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "report non-canonical files without rewriting")
	fmtCmd.Flags().BoolVar(&fmtStdout, "stdout", false, "print the canonical form instead of writing files")
}
