// Package storage persists the tournament sign-up document.
//
// The storage package implements the StateStore side of the system: durable,
// atomic, all-or-nothing reads and writes of the single tournament document.
// It contains no business logic.
//
// # Store Interface
//
// The Store interface defines the persistence contract:
//
//	type Store interface {
//	    Load() (tourney *model.Tournament, recovered bool, err error)
//	    Save(tourney *model.Tournament) error
//	}
//
// # File Backend
//
// FileStore keeps the document as one JSON file:
//
//	store := storage.NewFileStore("tourney_data.json")
//	tourney, recovered, err := store.Load()
//
// Saves go through a write-to-temp-then-rename discipline so a failed or
// interrupted save never leaves a torn document visible to the next Load.
// Saving the same document twice yields identical bytes.
//
// # Corruption Recovery
//
// A missing file loads as an empty tournament. A malformed or structurally
// invalid file is logged as a recoverable-corruption warning and also loads
// as an empty tournament, with the recovered flag set so callers can surface
// the condition; only genuine I/O failures return a *StoreError.
package storage
