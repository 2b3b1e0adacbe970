package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/okrensky/tourneybot/internal/model"
)

func fixtureTournament() *model.Tournament {
	return &model.Tournament{
		Slots: 4,
		Teams: []model.Team{
			{
				Name:         "Night Owls",
				Players:      []string{"alice", "bob"},
				CaptainID:    "1096012345678",
				RegisteredAt: time.Date(2026, 3, 1, 18, 4, 5, 0, time.UTC),
			},
			{
				Name:         "Daybreak",
				Players:      []string{"carol"},
				CaptainID:    "1096098765432",
				RegisteredAt: time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC),
			},
		},
		Confirmed: []string{"Night Owls"},
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "tourney_data.json"))

	tourney, recovered, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recovered {
		t.Error("missing file is not corruption")
	}
	if tourney.Slots != 0 || len(tourney.Teams) != 0 || len(tourney.Confirmed) != 0 {
		t.Errorf("expected empty tournament, got %+v", tourney)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "tourney_data.json"))
	saved := fixtureTournament()

	if err := store.Save(saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, recovered, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recovered {
		t.Error("did not expect corruption recovery")
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tourney_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tourney, recovered, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("corruption must not fail the load: %v", err)
	}
	if !recovered {
		t.Error("expected recovered flag for malformed document")
	}
	if tourney.Slots != 0 || len(tourney.Teams) != 0 {
		t.Errorf("expected fresh tournament, got %+v", tourney)
	}
}

func TestLoad_StructurallyInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tourney_data.json")
	if err := os.WriteFile(path, []byte(`{"slots":-3,"teams":[],"confirmed":[]}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tourney, recovered, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("corruption must not fail the load: %v", err)
	}
	if !recovered {
		t.Error("expected recovered flag for invalid document")
	}
	if tourney.Slots != 0 {
		t.Errorf("expected fresh tournament, got %+v", tourney)
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored for root")
	}

	path := filepath.Join(t.TempDir(), "tourney_data.json")
	if err := os.WriteFile(path, []byte(`{"slots":0,"teams":[],"confirmed":[]}`), 0o000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := NewFileStore(path).Load()
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *StoreError, got %v", err)
	}
	if storeErr.Op != "load" {
		t.Errorf("expected load op, got %q", storeErr.Op)
	}
}

func TestSave_Idempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tourney_data.json")
	store := NewFileStore(path)
	tourney := fixtureTournament()

	if err := store.Save(tourney); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Save(tourney); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("saving the same document twice must produce identical bytes")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "tourney_data.json"))

	if err := store.Save(fixtureTournament()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "tourney_data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the document file, got %v", names)
	}
}

// TestSave_DocumentFormat pins the on-disk document format. Regenerate with
// go test ./internal/storage -update if the schema deliberately changes.
func TestSave_DocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourney_data.json")
	store := NewFileStore(path)

	if err := store.Save(fixtureTournament()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "tournament", raw)
}
