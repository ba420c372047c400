package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memerun/internal/core"
	"github.com/vovakirdan/memerun/internal/games/memerun"
	"github.com/vovakirdan/memerun/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagHolders    string
	flagSprites    string
	flagEvents     string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Meme Run",
	Long: `Start a local run.

Controls:
  WASD/Arrows  - Move
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options (every run starts with the configured lives and level):
  easy   - Level up every 20 seconds
  normal - Level up every 15 seconds
  hard   - Level up every 10 seconds
  fixed  - Stay at the start level

Examples:
  memerun play
  memerun play --difficulty hard
  memerun play --config ./my-memerun.yaml --sprites ./sprites.yaml
  memerun play --events :8080 --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded with scores")
	addSessionFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

// addSessionFlags registers the collaborator flags shared by play and serve.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagHolders, "holders", "", "Holder list YAML; players below min_balance cannot start")
	cmd.Flags().StringVar(&flagSprites, "sprites", "", "Sprite sheet YAML overriding the built-in sprites")
	cmd.Flags().StringVar(&flagEvents, "events", "", "Serve a websocket event feed on this address (e.g. :8080)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	memerun.SetConfigPath(flagConfig)
	memerun.SetDifficultyPreset(flagDifficulty)

	// The terminal belongs to the game; logs go to --log-file or nowhere.
	logger, closer, err := newLogger(io.Discard, "memerun")
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := openStack(logger, stackOptions{
		holdersPath: flagHolders,
		spritesPath: flagSprites,
		eventsAddr:  flagEvents,
		sound:       flagSound,
		volume:      flagVolume,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}

	game, err := st.newGame(flagPlayer)
	if err != nil {
		return err
	}
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	if notice := game.Notice(); notice != "" {
		fmt.Println(notice)
	}
	if game.Best() > 0 {
		fmt.Printf("Best: %d\n", game.Best())
	}
	return nil
}
