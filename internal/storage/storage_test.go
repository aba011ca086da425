package storage

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/solver"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Errorf("version = %d, want %d", version, len(migrations))
	}

	// a second run is a no-op
	if err := db.MigrateUp(); err != nil {
		t.Errorf("MigrateUp again: %v", err)
	}
	if v, _ := db.CurrentVersion(); v != version {
		t.Errorf("version moved to %d", v)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSolutionRepository(db).Save(pocketcube.Solved, nil); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Errorf("Path() = %s", db.Path())
	}
	if n, _ := NewSolutionRepository(db).Count(); n != 1 {
		t.Errorf("count after reopen = %d, want 1", n)
	}
}

func TestSaveAndLookup(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))
	state := pocketcube.State("WOGWBOOOGYGGRWRWYRYYBRBB")
	moves := []pocketcube.Move{pocketcube.U, pocketcube.R, pocketcube.UPrime, pocketcube.RPrime}

	id, err := repo.Save(state, moves)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty id")
	}

	got, ok, err := repo.Lookup(state)
	if err != nil || !ok {
		t.Fatalf("Lookup = %v, %v", ok, err)
	}
	if pocketcube.FormatMoves(got) != "U R U' R'" {
		t.Errorf("moves = %s", pocketcube.FormatMoves(got))
	}

	if _, ok, err := repo.Lookup(pocketcube.Solved); ok || err != nil {
		t.Errorf("miss = %v, %v", ok, err)
	}
}

func TestSaveOverwritesState(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))
	state := pocketcube.State("WWOOOYYOGGGGWRRWRRYYBBBB")

	first, err := repo.Save(state, []pocketcube.Move{pocketcube.F, pocketcube.F2})
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.Save(state, []pocketcube.Move{pocketcube.FPrime})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("overwrite changed id from %s to %s", first, second)
	}

	rec, err := repo.Get(state)
	if err != nil || rec == nil {
		t.Fatalf("Get = %v, %v", rec, err)
	}
	if len(rec.Moves) != 1 || rec.Moves[0] != pocketcube.FPrime {
		t.Errorf("moves = %v", rec.Moves)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestListDeleteClear(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))
	states := []pocketcube.State{
		"WWOOOYYOGGGGWRRWRRYYBBBB",
		"WWRROWWOGGGGYRRYOOYYBBBB",
		"WWWWGGOORRGGBBRRYYYYOOBB",
	}
	var ids []string
	for _, s := range states {
		id, err := repo.Save(s, []pocketcube.Move{pocketcube.U})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	list, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("List(2) returned %d", len(list))
	}
	if list[0].State != states[2] {
		t.Errorf("newest = %s, want %s", list[0].State, states[2])
	}

	if err := repo.Delete(ids[0]); err != nil {
		t.Fatal(err)
	}
	if rec, _ := repo.Get(states[0]); rec != nil {
		t.Error("deleted solution still present")
	}

	removed, err := repo.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Errorf("Clear removed %d, want 2", removed)
	}
	if n, _ := repo.Count(); n != 0 {
		t.Errorf("count after clear = %d", n)
	}
}

func TestRepositoryBacksSolverCache(t *testing.T) {
	repo := NewSolutionRepository(openTestDB(t))
	cached := solver.NewCached(solver.New(), repo, nil)

	state := pocketcube.State("WWWWGGOORRGGBBRRYYYYOOBB")
	moves, err := cached.Solve(state)
	if err != nil {
		t.Fatal(err)
	}
	if pocketcube.FormatMoves(moves) != "U'" {
		t.Errorf("moves = %s, want U'", pocketcube.FormatMoves(moves))
	}

	stored, ok, err := repo.Lookup(state)
	if err != nil || !ok {
		t.Fatalf("solution not stored: %v", err)
	}
	if pocketcube.FormatMoves(stored) != "U'" {
		t.Errorf("stored = %s", pocketcube.FormatMoves(stored))
	}
}
