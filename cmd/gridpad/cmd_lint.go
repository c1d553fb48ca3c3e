package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyfreq/gridpad/internal/profile"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Validate profile files",
	Long:  "Parses and validates each file against the Tabbed profile schema, printing one path-and-message line per violation.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bad := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			_, err = profile.Load(data)
			if err == nil {
				fmt.Printf("%s: ok\n", path)
				continue
			}
			bad++
			var verr *profile.ValidationError
			if errors.As(err, &verr) {
				for _, issue := range verr.Issues {
					fmt.Printf("%s: %s\n", path, issue)
				}
				continue
			}
			fmt.Printf("%s: %v\n", path, err)
		}
		if bad > 0 {
			return fmt.Errorf("%d file(s) failed validation", bad)
		}
		return nil
	},
}
