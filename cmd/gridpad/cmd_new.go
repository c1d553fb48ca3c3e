package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/skyfreq/gridpad/internal/mutate"
	"github.com/skyfreq/gridpad/internal/profile"
)

var newID string

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Create a profile file with one empty tab",
	Long:  "Writes a fresh profile in canonical form. The profile id is taken from --id, prompted for otherwise; the filename defaults to <id>.json.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(newID)
		if id == "" {
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Profile id").
						Description("Used by the client to identify the layout, and as the filename").
						Value(&id).
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("id must not be empty")
							}
							return nil
						}),
				),
			).Run()
			if err != nil {
				return err
			}
		}

		p := mutate.SetID(profile.Default(), id)
		path := p.Filename()
		if len(args) == 1 {
			path = args[0]
			if !strings.HasSuffix(path, ".json") {
				path += ".json"
			}
		}

		if _, err := os.Stat(path); err == nil {
			overwrite := false
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
						Value(&overwrite),
				),
			).Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.WriteFile(path, profile.Marshal(p), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newID, "id", "", "profile id (skips the prompt)")
}
