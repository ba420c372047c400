package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	_, err := store.SaveScore(context.Background(), gameID, ScoreEntry{
		SessionID: uuid.NewString(),
		Score:     score,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	save(t, store, "memerun", 100)
	save(t, store, "memerun", 50)
	save(t, store, "memerun", 200)
	save(t, store, "other", 500)

	scores, err := store.TopScores(ctx, "memerun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	other, err := store.TopScores(ctx, "other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		save(t, store, "memerun", (i+1)*100)
	}

	scores, err := store.TopScores(context.Background(), "memerun", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx, "memerun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "memerun", 100)
	save(t, store, "memerun", 300)
	save(t, store, "memerun", 200)

	high, err = store.HighScore(ctx, "memerun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	save(t, store, "memerun", 100)
	save(t, store, "memerun", 200)
	save(t, store, "other", 300)

	if err := store.ClearScores(ctx, "memerun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores(ctx, "memerun", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	other, _ := store.TopScores(ctx, "other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing memerun")
	}
}

func TestStoreSubmitScore(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	result := memerun.SessionResult{
		SessionID:       uuid.New(),
		Player:          "alice",
		Score:           70,
		TokensCollected: 7,
		ObstaclesHit:    3,
		Duration:        42500 * time.Millisecond,
		Lives:           0,
	}
	if err := store.SubmitScore(ctx, result); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}

	got, err := store.ScoreBySession(ctx, result.SessionID.String())
	if err != nil {
		t.Fatalf("ScoreBySession() failed: %v", err)
	}
	if got == nil {
		t.Fatal("submitted session not found")
	}
	if got.GameID != memerun.ID || got.Player != "alice" || got.Score != 70 ||
		got.Tokens != 7 || got.Hits != 3 || got.Duration != 42500*time.Millisecond {
		t.Errorf("unexpected entry: %+v", got)
	}

	// A session is stored once.
	if err := store.SubmitScore(ctx, result); err == nil {
		t.Error("expected duplicate session to be rejected")
	}
}

func TestStoreScoreBySessionMissing(t *testing.T) {
	store := openTemp(t)

	got, err := store.ScoreBySession(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("ScoreBySession() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown session, got %+v", got)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	for _, r := range []memerun.SessionResult{
		{SessionID: uuid.New(), Score: 100, TokensCollected: 10, ObstaclesHit: 3},
		{SessionID: uuid.New(), Score: 50, TokensCollected: 5, ObstaclesHit: 3},
	} {
		if err := store.SubmitScore(ctx, r); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats(ctx, memerun.ID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 100 || stats.TotalTokens != 15 || stats.TotalHits != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 75 {
		t.Errorf("Expected average 75, got %v", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestMySQLDSN(t *testing.T) {
	got, err := mysqlDSN("runner:secret@tcp(db:3306)/memerun")
	if err != nil {
		t.Fatalf("mysqlDSN() failed: %v", err)
	}
	if !strings.Contains(got, "parseTime=true") {
		t.Errorf("expected parseTime in %q", got)
	}
	if !strings.HasPrefix(got, "runner:secret@tcp(db:3306)/memerun") {
		t.Errorf("unexpected dsn %q", got)
	}

	if _, err := mysqlDSN("not a dsn"); err == nil {
		t.Error("expected error for malformed dsn")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{"time", want},
		{"string", "2026-03-01 12:30:00"},
		{"bytes", []byte("2026-03-01 12:30:00")},
		{"rfc3339", "2026-03-01T12:30:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, want)
			}
		})
	}

	if !parseTime(nil).IsZero() {
		t.Error("nil should parse to zero time")
	}
}
