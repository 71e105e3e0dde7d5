package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunEntry{
		{Seed: 1, Score: 100, Distance: 820.5, Level: 2, Gems: 7, Letters: 3},
		{Seed: 2, Score: 50, Distance: 400.0, Level: 1, Gems: 3, Letters: 1},
		{Seed: 3, Score: 200, Distance: 1600.2, Level: 4, Gems: 15, Letters: 7, Won: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending by score
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if !top[0].Won {
		t.Error("Won flag not persisted")
	}
	if top[0].Distance != 1600.2 {
		t.Errorf("Distance = %v, want 1600.2", top[0].Distance)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(RunEntry{Seed: int64(i), Score: i * 10, Level: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 runs with limit, got %d", len(top))
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty table yields zero, not an error
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore on empty table = %d, want 0", best)
	}

	store.SaveRun(RunEntry{Seed: 1, Score: 120, Level: 1})
	store.SaveRun(RunEntry{Seed: 2, Score: 80, Level: 1})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 120 {
		t.Errorf("BestScore = %d, want 120", best)
	}
}
