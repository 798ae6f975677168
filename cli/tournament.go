package cli

import (
	"connect4/experiments"
	"connect4/meta"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	var (
		configPath string
		outputDir  string
		games      int
	)

	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Play the matchups of a YAML setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup, err := experiments.LoadSetup(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				setup.OutputDir = outputDir
			}
			if games > 0 {
				setup.Games = games
			}

			results, err := experiments.Run(setup)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "AGENT1\tAGENT2\tWINS1\tWINS2\tDRAWS")
			for _, m := range results.MatchUps {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", m.Agent1, m.Agent2, m.Wins1, m.Wins2, m.Draws)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if results.Dir != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", results.Dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Tournament setup YAML file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for result files (overrides the setup)")
	cmd.Flags().Lookup("output").NoOptDefVal = meta.RESULTS_DIR
	cmd.Flags().IntVarP(&games, "games", "n", 0, "Games per matchup (overrides the setup)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
