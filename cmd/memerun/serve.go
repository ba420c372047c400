package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memerun/internal/games/memerun"
	"github.com/vovakirdan/memerun/internal/platform/tui"
	"github.com/vovakirdan/memerun/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Meme Run over SSH",
	Long: `Start an SSH server where every connection plays its own run.

The SSH user name is the player name. With --holders, only players whose
listed balance reaches min_balance may start a run.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.memerun/host_key

Examples:
  memerun serve                             # Listen on :23234
  memerun serve --ssh :2222                 # Listen on port 2222
  memerun serve --holders ./holders.yaml    # Gate runs by token balance
  memerun serve --events :8080              # Spectator event feed

Users can connect with:
  ssh alice@localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	addSessionFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	memerun.SetConfigPath(flagConfig)
	memerun.SetDifficultyPreset(flagDifficulty)

	logger, closer, err := newLogger(os.Stderr, "memerun-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := openStack(logger, stackOptions{
		holdersPath: flagHolders,
		spritesPath: flagSprites,
		eventsAddr:  flagEvents,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}
	server, err := tui.NewSSHServer(cfg, func(player string) (registry.Game, error) {
		return st.newGame(player)
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Meme Run SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
