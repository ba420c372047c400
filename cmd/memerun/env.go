package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath = "~/.memerun/scores.db"
	envDB         = "MEMERUN_DB"
	envSeed       = "MEMERUN_SEED"
)

// applyEnv loads ./.env, if any, and fills flags the user did not set from
// MEMERUN_DB and MEMERUN_SEED. Variables already in the environment win
// over the file.
func applyEnv(changed func(name string) bool) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	if v := os.Getenv(envDB); v != "" && !changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envSeed); v != "" && !changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envSeed, v, err)
		}
		flagSeed = seed
	}
	return nil
}
