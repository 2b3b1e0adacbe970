package model

import (
	"strings"
	"time"
)

// Tournament is the singleton sign-up document for one tournament.
// Field order here defines the serialized field order of the persisted file.
type Tournament struct {
	Slots     int      `json:"slots"`
	Teams     []Team   `json:"teams"`
	Confirmed []string `json:"confirmed"`
}

// Team is a single registration. Teams keep their insertion order in
// Tournament.Teams; that order is the registration order.
type Team struct {
	Name         string    `json:"team_name"`
	Players      []string  `json:"players"`
	CaptainID    string    `json:"captain_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// StatusSnapshot is a consistent point-in-time view of the sign-up state.
type StatusSnapshot struct {
	Filled    int
	Slots     int
	Confirmed int
}

// TeamStatus is a read-only listing entry for one registered team.
type TeamStatus struct {
	Name      string
	CaptainID string
	Players   []string
	Confirmed bool
}

// NewTournament returns an empty tournament: zero slots, no teams, no
// confirmations. Slices are non-nil so the document always serializes as
// {"slots":0,"teams":[],"confirmed":[]} rather than with nulls.
func NewTournament() *Tournament {
	return &Tournament{
		Teams:     []Team{},
		Confirmed: []string{},
	}
}

// Normalize repairs nil slices after decoding so that a loaded document is
// structurally equal to the document that was saved.
func (t *Tournament) Normalize() {
	if t.Teams == nil {
		t.Teams = []Team{}
	}
	if t.Confirmed == nil {
		t.Confirmed = []string{}
	}
	for i := range t.Teams {
		if t.Teams[i].Players == nil {
			t.Teams[i].Players = []string{}
		}
	}
}

// Valid reports whether the document is structurally sound: a non-negative
// slot count and a name on every team. Anything else is treated as a corrupt
// persisted document.
func (t *Tournament) Valid() bool {
	if t.Slots < 0 {
		return false
	}
	for _, team := range t.Teams {
		if team.Name == "" {
			return false
		}
	}
	return true
}

// HasTeamNamed reports whether a team with the given name is already
// registered. Names are compared case-insensitively.
func (t *Tournament) HasTeamNamed(name string) bool {
	for _, team := range t.Teams {
		if strings.EqualFold(team.Name, name) {
			return true
		}
	}
	return false
}

// TeamByCaptain returns the first team, in registration order, whose captain
// matches the given identity, or nil if the caller has no registered team.
func (t *Tournament) TeamByCaptain(captainID string) *Team {
	for i := range t.Teams {
		if t.Teams[i].CaptainID == captainID {
			return &t.Teams[i]
		}
	}
	return nil
}

// IsConfirmed reports whether the named team has confirmed. Confirmation
// membership is by exact, case-preserving name.
func (t *Tournament) IsConfirmed(name string) bool {
	for _, confirmed := range t.Confirmed {
		if confirmed == name {
			return true
		}
	}
	return false
}
