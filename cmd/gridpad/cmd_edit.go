package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skyfreq/gridpad/cmd/gridpad/tui"
	"github.com/skyfreq/gridpad/internal/config"
	"github.com/skyfreq/gridpad/internal/session"
	"github.com/skyfreq/gridpad/internal/stations"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the profile editor",
	Long:  "Opens the terminal editor on the given profile file, or on a fresh default profile when no file is given. Saving writes the canonical form back to the file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read()
		if err != nil {
			return err
		}

		sess := session.New()
		path := ""
		if len(args) == 1 {
			path = args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if err := sess.Load(data); err != nil {
				return err
			}
		}

		// The dataset is advisory; the editor runs without it.
		idx, err := stations.Load(cfg.StationsFile)
		if err != nil {
			idx = stations.NewIndex(nil)
		}

		m := tui.NewModel(sess, idx, cfg, path)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("running editor: %w", err)
		}

		if fm, ok := final.(tui.Model); ok && fm.SavedTo != "" {
			fmt.Printf("Saved %s\n", fm.SavedTo)
		}
		return nil
	},
}
