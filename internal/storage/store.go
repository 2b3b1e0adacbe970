package storage

import (
	"fmt"

	"github.com/okrensky/tourneybot/internal/model"
)

// Store is the persistence contract for the tournament document.
type Store interface {
	// Load reads the persisted document. A missing document yields a fresh
	// empty tournament. A corrupt document also yields a fresh tournament,
	// with recovered set to true so callers can observe the recovery.
	Load() (tourney *model.Tournament, recovered bool, err error)

	// Save durably replaces the persisted document with the given one.
	// A failed save never leaves a partially written document behind.
	Save(tourney *model.Tournament) error
}

// StoreError reports an I/O failure while loading or saving the document.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
