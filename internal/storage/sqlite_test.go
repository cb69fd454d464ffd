package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{GameID: "hangman", Word: "owl", Won: true}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieveResults(t *testing.T) {
	store := openTestStore(t)

	rounds := []Result{
		{GameID: "hangman", Word: "apple", Won: true, Misses: 2, Lives: 7, Score: 25, ArtPoints: 60, ArtVisible: 60},
		{GameID: "hangman", Word: "tiger", Won: false, Misses: 7, Lives: 7, Score: 0, ArtPoints: 60, ArtVisible: 10},
		{GameID: "hangman_reward", Word: "whale", Won: true, Misses: 1, Lives: 7, Score: 30, ArtPoints: 90, ArtVisible: 90},
	}
	for _, r := range rounds {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Newest first
	if results[0].Word != "whale" || results[1].Word != "tiger" {
		t.Errorf("Expected [whale tiger], got [%s %s]", results[0].Word, results[1].Word)
	}
	if results[1].Won || results[1].ArtVisible != 10 {
		t.Errorf("Unexpected fields for tiger: %+v", results[1])
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Played != 0 || empty.Won != 0 || empty.BestScore != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	for _, r := range []Result{
		{GameID: "hangman", Word: "a", Won: true, Score: 12},
		{GameID: "hangman", Word: "b", Won: false},
		{GameID: "hangman", Word: "c", Won: true, Score: 40},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Played != 3 || st.Won != 2 || st.BestScore != 40 {
		t.Errorf("Expected played=3 won=2 best=40, got %+v", st)
	}
}

func TestStoreArtGallery(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveArt("owl", "| (o o)\n"); err != nil {
		t.Fatalf("SaveArt() failed: %v", err)
	}
	if err := store.SaveArt("cat", "|=^.^=\n"); err != nil {
		t.Fatalf("SaveArt() failed: %v", err)
	}

	// Upsert replaces the body
	if err := store.SaveArt("owl", "| (O O)\n"); err != nil {
		t.Fatalf("SaveArt() update failed: %v", err)
	}

	a, err := store.Art("owl")
	if err != nil {
		t.Fatalf("Art() failed: %v", err)
	}
	if a.Text != "| (O O)\n" {
		t.Errorf("Expected updated text, got %q", a.Text)
	}

	arts, err := store.ListArt()
	if err != nil {
		t.Fatalf("ListArt() failed: %v", err)
	}
	if len(arts) != 2 || arts[0].Name != "cat" || arts[1].Name != "owl" {
		t.Errorf("Expected [cat owl], got %+v", arts)
	}

	if err := store.DeleteArt("cat"); err != nil {
		t.Fatalf("DeleteArt() failed: %v", err)
	}
	if _, err := store.Art("cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Art() after delete = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteArt("cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteArt() = %v, expected ErrNotFound", err)
	}
}

func TestStoreSaveArtRejectsNonImage(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveArt("empty", "just words\n"); err == nil {
		t.Error("SaveArt should reject text without image lines")
	}
	if err := store.SaveArt("  ", "| x\n"); err == nil {
		t.Error("SaveArt should reject a blank name")
	}
}

func TestStoreArtNamesAreTrimmed(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveArt(" cat", "|=^.^=\n"); err != nil {
		t.Fatalf("SaveArt() failed: %v", err)
	}

	a, err := store.Art(" cat ")
	if err != nil {
		t.Fatalf("Art(\" cat \") failed: %v", err)
	}
	if a.Name != "cat" {
		t.Errorf("Name = %q, expected \"cat\"", a.Name)
	}

	if err := store.DeleteArt("cat\t"); err != nil {
		t.Fatalf("DeleteArt(\"cat\\t\") failed: %v", err)
	}
	if _, err := store.Art("cat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Art() after delete = %v, expected ErrNotFound", err)
	}
}
