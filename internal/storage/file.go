package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/okrensky/tourneybot/internal/model"
)

// FileStore persists the tournament document as a single JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file-backed store at the given path. The file does
// not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   path,
		logger: slog.Default(),
	}
}

// Load reads the document from disk. A missing file is equivalent to an empty
// tournament. Malformed JSON or a structurally invalid document is logged as
// recoverable corruption and replaced with an empty tournament rather than
// failing the process.
func (s *FileStore) Load() (*model.Tournament, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewTournament(), false, nil
	}
	if err != nil {
		return nil, false, &StoreError{Op: "load", Path: s.path, Err: err}
	}

	var tourney model.Tournament
	if err := json.Unmarshal(raw, &tourney); err != nil {
		s.logger.Warn("tournament file is malformed, starting fresh",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return model.NewTournament(), true, nil
	}
	if !tourney.Valid() {
		s.logger.Warn("tournament file failed validation, starting fresh",
			slog.String("path", s.path),
		)
		return model.NewTournament(), true, nil
	}

	tourney.Normalize()
	return &tourney, false, nil
}

// Save serializes the full document and replaces the file atomically: the
// bytes are written to a temp file in the same directory and renamed over the
// destination, so a crashed or failed save never leaves a torn document for
// the next Load.
func (s *FileStore) Save(tourney *model.Tournament) error {
	raw, err := json.MarshalIndent(tourney, "", "  ")
	if err != nil {
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tourney-*.json")
	if err != nil {
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Path returns the location of the persisted document.
func (s *FileStore) Path() string {
	return s.path
}
