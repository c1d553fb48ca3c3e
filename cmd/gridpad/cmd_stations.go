package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyfreq/gridpad/internal/config"
	"github.com/skyfreq/gridpad/internal/stations"
)

var stationsCmd = &cobra.Command{
	Use:   "stations <query>",
	Short: "Look up station ids in the dataset",
	Long:  "Searches the configured station dataset. An exact id prints the full entry; anything else prints autocomplete suggestions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read()
		if err != nil {
			return err
		}
		idx, err := stations.Load(cfg.StationsFile)
		if err != nil {
			return err
		}

		query := args[0]
		if st, ok := idx.Lookup(query); ok {
			fmt.Printf("%s  fir=%s", st.ID, st.FIR)
			if st.ParentID != "" {
				fmt.Printf("  parent=%s", st.ParentID)
			}
			if st.ControlledBy != "" {
				fmt.Printf("  controlled_by=%s", st.ControlledBy)
			}
			fmt.Println()
			return nil
		}

		matches := idx.Suggest(query, 15)
		if len(matches) == 0 {
			fmt.Printf("No stations match %q\n", query)
			return nil
		}
		for _, id := range matches {
			fmt.Println(id)
		}
		return nil
	},
}
