// Package service implements the tournament sign-up engine.
//
// The service package owns the single in-memory tournament document and
// applies every sign-up operation against it: set capacity, register,
// confirm, query and reset. It is the only place business rules live; the
// storage layer persists blindly and the adapter layers only translate.
//
// # Concurrency
//
// One TournamentService instance is shared by all command handlers. A single
// RWMutex serializes mutating operations over their full
// read-decide-mutate-persist span, and read-only operations take the read
// lock so they never observe a half-applied mutation. There are no
// background goroutines, retries or schedulers.
//
// # Error Handling
//
// Operations return sentinel errors (or one typed error carrying the slot
// deficit) defined in errors.go:
//
//	var (
//	    ErrSlotsFull         = errors.New("all slots are full")
//	    ErrDuplicateTeamName = errors.New("team name already registered")
//	)
//
// All of them are expected, recoverable outcomes of user input. A failed
// save is the one case where in-memory and persisted state can diverge: the
// mutation is kept, the wrapped *storage.StoreError is returned, and the
// next successful save reconverges the two.
package service
