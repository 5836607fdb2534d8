package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", path, err)
		}

		// The schema must survive across statements on the single connection.
		if _, err := store.RecordRun(Run{Score: 1, Outcome: "crashed"}); err != nil {
			t.Errorf("RecordRun() on %q failed: %v", path, err)
		}
		store.Close()
	}
}

func TestStoreRecordAndTopRuns(t *testing.T) {
	store := openMemory(t)

	runs := []Run{
		{Player: "alice", Score: 100, Outcome: "crashed", Frames: 101},
		{Player: "bob", Score: 50, Outcome: "crashed", Frames: 51},
		{Player: "carol", Score: 200, Outcome: "won", Frames: 200},
		{Score: 100, Outcome: "crashed", Frames: 101},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	wantOrder := []string{"carol", "alice", "local", "bob"}
	for i, want := range wantOrder {
		if top[i].Player != want {
			t.Errorf("top[%d].Player = %q, expected %q", i, top[i].Player, want)
		}
	}
	if top[0].Outcome != "won" || top[0].Frames != 200 {
		t.Errorf("top run = %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openMemory(t)

	for i := 0; i < 20; i++ {
		if _, err := store.RecordRun(Run{Score: i * 10, Outcome: "crashed"}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{-1, 10},
		{50, 20},
	}
	for _, tc := range tests {
		top, err := store.TopRuns(tc.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tc.limit, err)
		}
		if len(top) != tc.want {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tc.limit, len(top), tc.want)
		}
	}
}

func TestStoreBest(t *testing.T) {
	store := openMemory(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty ledger, got %d", best)
	}

	for _, score := range []int{30, 113, 7} {
		if _, err := store.RecordRun(Run{Score: score, Outcome: "crashed"}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	best, err = store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 113 {
		t.Errorf("Best() = %d, expected 113", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openMemory(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{
		{Score: 10, Outcome: "crashed"},
		{Score: 20, Outcome: "crashed"},
		{Score: 90, Outcome: "won"},
	} {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Best != 90 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 40 {
		t.Errorf("AvgScore = %v, expected 40", stats.AvgScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.spiderdash/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".spiderdash", "runs.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
