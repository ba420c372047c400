// memerun is a side-scrolling dodge game for the terminal.
//
// Usage:
//
//	memerun play            - Play locally
//	memerun serve           - Serve the game over SSH
//	memerun scores          - Show the leaderboard
//	memerun list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <dsn>      - SQLite path or mysql:// DSN (default: ~/.memerun/scores.db)
//
// MEMERUN_DB and MEMERUN_SEED, from the environment or a .env file, replace
// the defaults of --db and --seed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memerun",
	Short: "Meme Run - dodge rugs, bears and scams in your terminal",
	Long: `Meme Run is a side-scrolling dodge game. Steer with WASD or the arrow
keys, collect tokens and avoid everything else. Three hits end the run.

Examples:
  memerun play
  memerun play --difficulty hard --sound
  memerun serve --ssh :2222 --holders ./holders.yaml
  memerun scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd.Flags().Changed)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "SQLite path or mysql:// DSN for scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log gameplay events at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
