package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Connect Four move search",
		Long: `connect4 picks Connect Four moves with alpha-beta minimax or Monte Carlo
tree search, and plays tournaments between search agents.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, verbose)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log search details")

	// Add subcommands
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newTournamentCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
