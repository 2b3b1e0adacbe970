package service

import (
	"errors"
	"fmt"
)

// Centralized service layer errors.
// Every error returned by TournamentService methods is defined here so that
// error handling in the adapter layers stays predictable. All of these are
// expected outcomes of user input, not failures.

var (
	ErrNegativeCapacity  = errors.New("slot count must be zero or greater")
	ErrSlotsFull         = errors.New("all slots are full")
	ErrDuplicateTeamName = errors.New("team name already registered")
	ErrEmptyRoster       = errors.New("at least one player is required")
	ErrNoTeamForCaptain  = errors.New("no registered team for this captain")
	ErrAlreadyConfirmed  = errors.New("team already confirmed")
)

// CapacityBelowRegisteredError rejects a capacity change that would strand
// already-registered teams. The state is left untouched; the tournament has
// to be reset before shrinking that far.
type CapacityBelowRegisteredError struct {
	Requested  int
	Registered int
}

func (e *CapacityBelowRegisteredError) Error() string {
	return fmt.Sprintf("cannot set %d slots with %d teams registered", e.Requested, e.Registered)
}

// Deficit is the number of registered teams that would not fit.
func (e *CapacityBelowRegisteredError) Deficit() int {
	return e.Registered - e.Requested
}
