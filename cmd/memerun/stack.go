package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memerun/internal/assets"
	"github.com/vovakirdan/memerun/internal/audio"
	"github.com/vovakirdan/memerun/internal/games/memerun"
	"github.com/vovakirdan/memerun/internal/gate"
	"github.com/vovakirdan/memerun/internal/registry"
	"github.com/vovakirdan/memerun/internal/storage"
	"github.com/vovakirdan/memerun/internal/telemetry"
)

// stackOptions selects the collaborators wired around each game.
type stackOptions struct {
	holdersPath string
	spritesPath string
	eventsAddr  string
	sound       bool
	volume      float64
}

// stack owns the long-lived collaborators shared by every game it creates:
// score store, entry gate, sprites and event sinks.
type stack struct {
	logger *log.Logger
	store  *storage.Store
	gate   memerun.Gate
	sheet  *assets.Sheet
	sinks  telemetry.Fanout
	hub    *telemetry.Hub
	http   *http.Server
	audio  *audio.Player
}

// newLogger writes to --log-file when given, otherwise to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// openStack opens every collaborator named by opts. Optional parts that fail
// are logged and skipped; only a bad holder list is fatal, since it would
// silently change who may play.
func openStack(logger *log.Logger, opts stackOptions) (*stack, error) {
	s := &stack{logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "db", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	if opts.holdersPath != "" {
		g, err := gate.LoadHolders(opts.holdersPath)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.gate = g
	} else {
		s.gate = gate.AllowAll{}
	}

	s.sheet = assets.Default()
	if opts.spritesPath != "" {
		custom, err := assets.Load(opts.spritesPath)
		if err != nil {
			logger.Warn("sprite sheet unavailable, using built-in sprites", "path", opts.spritesPath, "err", err)
		} else {
			s.sheet = assets.Overlay(s.sheet, custom)
		}
	}

	s.sinks = telemetry.Fanout{telemetry.NewLogSink(logger)}

	if opts.eventsAddr != "" {
		s.hub = telemetry.NewHub(logger.WithPrefix("events"))
		mux := http.NewServeMux()
		mux.Handle("/events", s.hub)
		s.http = &http.Server{Addr: opts.eventsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("event feed stopped", "addr", opts.eventsAddr, "err", err)
			}
		}()
		logger.Info("event feed listening", "addr", opts.eventsAddr, "path", "/events")
		s.sinks = append(s.sinks, s.hub)
	}

	if opts.sound {
		p := audio.NewPlayer(opts.volume)
		if err := p.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			s.audio = p
			s.sinks = append(s.sinks, p)
		}
	}

	return s, nil
}

// newGame creates a registered Meme Run instance for player and wires it to
// the shared collaborators.
func (s *stack) newGame(player string) (*memerun.Game, error) {
	created, err := registry.Create(memerun.ID)
	if err != nil {
		return nil, err
	}
	game, ok := created.(*memerun.Game)
	if !ok {
		return nil, fmt.Errorf("game %q has unexpected type %T", memerun.ID, created)
	}

	opts := []memerun.Option{
		memerun.WithGate(s.gate),
		memerun.WithAssets(s.sheet),
		memerun.WithEventSink(s.sinks),
		memerun.WithLogger(s.logger.With("player", player)),
	}
	if s.store != nil {
		opts = append(opts, memerun.WithScoreSink(s.store))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		best, err := s.store.HighScore(ctx, memerun.ID)
		cancel()
		if err == nil {
			opts = append(opts, memerun.WithBestScore(best))
		}
	}
	game.Apply(opts...)
	return game, nil
}

// Close releases everything openStack acquired.
func (s *stack) Close() {
	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		s.http.Shutdown(ctx) //nolint:errcheck
		cancel()
	}
	if s.hub != nil {
		s.hub.Close()
	}
	if s.audio != nil {
		s.audio.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}
