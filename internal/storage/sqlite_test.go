package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{1200, 450, 3100} {
		if _, err := store.SaveScore("worms", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("worms_sandbox", 9000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("worms", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 3100 || scores[1].Score != 1200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	high, err := store.HighScore("worms")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3100 {
		t.Errorf("HighScore() = %d, expected 3100", high)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("worms")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("worms", 10)
	store.SaveScore("worms_sandbox", 20)
	if err := store.ClearScores("worms"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("worms", 10); len(scores) != 0 {
		t.Errorf("Expected no worms scores, got %d", len(scores))
	}
	if scores, _ := store.TopScores("worms_sandbox", 10); len(scores) != 1 {
		t.Errorf("Other modes must keep their scores, got %d", len(scores))
	}
}

func TestStoreSaveMatch(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchRecord{
		GameID:    "worms",
		Winner:    "red",
		Turns:     14,
		Destroyed: 8123,
		Duration:  3*time.Minute + 250*time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveMatch() id %q is not a uuid: %v", id, err)
	}

	m, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if m.Winner != "red" || m.Turns != 14 || m.Destroyed != 8123 {
		t.Errorf("unexpected record %+v", m)
	}
	if m.Duration != 3*time.Minute+250*time.Millisecond {
		t.Errorf("Duration = %v", m.Duration)
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID(uuid.NewString())
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil for unknown match, got %+v", m)
	}
}

func TestStoreSaveMatchRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{ID: "not-a-uuid", GameID: "worms"}); err == nil {
		t.Error("SaveMatch() should reject a malformed id")
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 4; i++ {
		id, err := store.SaveMatch(MatchRecord{GameID: "worms", Turns: i})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
		ids = append(ids, id)
	}
	store.SaveMatch(MatchRecord{GameID: "worms_sandbox"})

	matches, err := store.RecentMatches("worms", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	if matches[0].ID != ids[3] || matches[2].ID != ids[1] {
		t.Errorf("RecentMatches() should be newest first, got %v", matches)
	}
}
