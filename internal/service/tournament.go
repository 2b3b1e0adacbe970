package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/okrensky/tourneybot/internal/model"
	"github.com/okrensky/tourneybot/internal/storage"
)

// TournamentService applies sign-up operations against the single shared
// tournament document. All mutating operations hold the write lock for their
// full read-decide-mutate-persist span, so concurrent callers can never
// jointly overfill the slots; reads hold the read lock and always observe a
// consistent snapshot.
//
// When a save fails the in-memory mutation is kept and the store error is
// returned: in-memory and persisted state may diverge until the next
// successful save. Retrying is the caller's decision.
type TournamentService struct {
	mu     sync.RWMutex
	store  storage.Store
	state  *model.Tournament
	logger *slog.Logger

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewTournamentService loads the persisted document and returns a service
// owning it. Corruption recovery during the load is logged, not fatal.
func NewTournamentService(store storage.Store) (*TournamentService, error) {
	state, recovered, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tournament state: %w", err)
	}

	svc := &TournamentService{
		store:  store,
		state:  state,
		logger: slog.Default(),
		now:    time.Now,
	}
	if recovered {
		svc.logger.Warn("recovered from corrupt tournament state, starting empty")
	}
	return svc, nil
}

// SetCapacity sets the total number of tournament slots and returns the new
// capacity. Shrinking below the number of registered teams is rejected and
// leaves the state untouched; the tournament must be reset first.
func (s *TournamentService) SetCapacity(slots int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slots < 0 {
		return 0, ErrNegativeCapacity
	}
	if registered := len(s.state.Teams); slots < registered {
		return 0, &CapacityBelowRegisteredError{Requested: slots, Registered: registered}
	}

	s.state.Slots = slots
	if err := s.persist(); err != nil {
		return 0, err
	}

	s.logger.Info("tournament capacity set", slog.Int("slots", slots))
	return slots, nil
}

// RegisterTeam registers a new team for the caller and returns the created
// team along with the number of slots still open. Admission is decided
// against the current state under the lock: a full tournament, a
// case-insensitive duplicate name, or an empty roster is rejected.
func (s *TournamentService) RegisterTeam(name string, players []string, captainID string) (*model.Team, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Teams) >= s.state.Slots {
		return nil, 0, ErrSlotsFull
	}
	if s.state.HasTeamNamed(name) {
		return nil, 0, ErrDuplicateTeamName
	}
	if len(players) == 0 {
		return nil, 0, ErrEmptyRoster
	}

	team := model.Team{
		Name:         name,
		Players:      append([]string(nil), players...),
		CaptainID:    captainID,
		RegisteredAt: s.now().UTC(),
	}
	s.state.Teams = append(s.state.Teams, team)
	remaining := s.state.Slots - len(s.state.Teams)

	if err := s.persist(); err != nil {
		return nil, 0, err
	}

	s.logger.Info("team registered",
		slog.String("team", team.Name),
		slog.String("captain_id", captainID),
		slog.Int("remaining_slots", remaining),
	)
	return &team, remaining, nil
}

// ConfirmTeam confirms the caller's team. The lookup always picks the first
// team in registration order whose captain matches, so a caller who owns
// several teams confirms the earliest-registered one.
func (s *TournamentService) ConfirmTeam(captainID string) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.state.TeamByCaptain(captainID)
	if team == nil {
		return nil, ErrNoTeamForCaptain
	}
	if s.state.IsConfirmed(team.Name) {
		return nil, ErrAlreadyConfirmed
	}

	s.state.Confirmed = append(s.state.Confirmed, team.Name)
	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info("team confirmed",
		slog.String("team", team.Name),
		slog.String("captain_id", captainID),
	)
	confirmed := *team
	confirmed.Players = append([]string(nil), team.Players...)
	return &confirmed, nil
}

// Status returns a consistent snapshot of the sign-up state. Pure read, no
// persistence.
func (s *TournamentService) Status() model.StatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.StatusSnapshot{
		Filled:    len(s.state.Teams),
		Slots:     s.state.Slots,
		Confirmed: len(s.state.Confirmed),
	}
}

// ListTeams returns all registered teams in registration order, each with its
// confirmation status. Pure read, no persistence.
func (s *TournamentService) ListTeams() []model.TeamStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]model.TeamStatus, 0, len(s.state.Teams))
	for _, team := range s.state.Teams {
		teams = append(teams, model.TeamStatus{
			Name:      team.Name,
			CaptainID: team.CaptainID,
			Players:   append([]string(nil), team.Players...),
			Confirmed: s.state.IsConfirmed(team.Name),
		})
	}
	return teams
}

// Reset discards the whole tournament and persists a fresh empty document.
// Unconditional and idempotent.
func (s *TournamentService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.NewTournament()
	if err := s.persist(); err != nil {
		return err
	}

	s.logger.Info("tournament reset")
	return nil
}

// persist writes the current state through the store. Callers hold the write
// lock. The in-memory mutation is never rolled back on failure.
func (s *TournamentService) persist() error {
	if err := s.store.Save(s.state); err != nil {
		s.logger.Error("failed to persist tournament state",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("persist tournament state: %w", err)
	}
	return nil
}
