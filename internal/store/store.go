package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrTeamNotFound indicates the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrSprintNotFound indicates the requested sprint does not exist.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrTeamExists indicates a team with the same ID already exists.
	ErrTeamExists = errors.New("team already exists")
	// ErrValidation indicates input that violates the data contract. The
	// store is the validation boundary: nothing negative or non-finite may
	// reach the planning engine.
	ErrValidation = errors.New("validation failed")
)

// Store provides thread-safe persistence for teams and their sprint logs.
// Teams live in a single teams.json; each team's sprints are appended to a
// per-team JSONL file, mirroring a one-log-per-source layout.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	teams   map[string]Team
	sprints map[string][]Sprint // keyed by team ID, insertion order
}

// New creates an empty store rooted at dataDir. Call Load before first use.
func New(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		teams:   make(map[string]Team),
		sprints: make(map[string][]Sprint),
	}
}

// Load reads teams.json and every team's sprint log from disk. A missing
// data directory or teams file is an empty store, not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.teamsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read teams file: %w", err)
	}

	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return fmt.Errorf("failed to parse teams file: %w", err)
	}

	for _, team := range teams {
		s.teams[team.ID] = team
		if err := s.loadSprints(team.ID); err != nil {
			return err
		}
	}

	log.Info().Int("teams", len(s.teams)).Str("path", s.dataDir).Msg("Store loaded")
	return nil
}

func (s *Store) loadSprints(teamID string) error {
	file, err := os.Open(s.sprintsPath(teamID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Team has no sprints yet
		}
		return fmt.Errorf("failed to open sprint log for %s: %w", teamID, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var sp Sprint
		if err := json.Unmarshal(scanner.Bytes(), &sp); err != nil {
			log.Warn().Err(err).Str("team", teamID).Msg("Skipping invalid JSON line in sprint log")
			continue
		}
		s.sprints[teamID] = append(s.sprints[teamID], sp)
	}
	return scanner.Err()
}

// Teams returns all teams sorted by name.
func (s *Store) Teams() []Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

// GetTeam returns the team with the given ID.
func (s *Store) GetTeam(id string) (Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[id]
	if !ok {
		return Team{}, fmt.Errorf("%w: %s", ErrTeamNotFound, id)
	}
	return team, nil
}

// CreateTeam registers a new team. The ID is derived from the name.
func (s *Store) CreateTeam(name string, developers, periodDays int, baseline *float64) (Team, error) {
	if strings.TrimSpace(name) == "" {
		return Team{}, fmt.Errorf("%w: team name is required", ErrValidation)
	}
	if err := validateTeamConfig(developers, periodDays, baseline); err != nil {
		return Team{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := Slugify(name)
	if id == "" {
		return Team{}, fmt.Errorf("%w: team name %q yields no usable identifier", ErrValidation, name)
	}
	if _, ok := s.teams[id]; ok {
		return Team{}, fmt.Errorf("%w: %s", ErrTeamExists, id)
	}

	now := time.Now().UTC()
	team := Team{
		ID:         id,
		Name:       strings.TrimSpace(name),
		Developers: developers,
		PeriodDays: periodDays,
		Baseline:   baseline,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.teams[id] = team

	if err := s.saveTeams(); err != nil {
		delete(s.teams, id)
		return Team{}, err
	}
	return team, nil
}

// UpdateTeam applies a partial edit to a team. Changing Developers or
// PeriodDays affects future sprints only: logged sprints keep their
// snapshots.
func (s *Store) UpdateTeam(id string, upd TeamUpdate) (Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[id]
	if !ok {
		return Team{}, fmt.Errorf("%w: %s", ErrTeamNotFound, id)
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return Team{}, fmt.Errorf("%w: team name is required", ErrValidation)
		}
		team.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Developers != nil {
		team.Developers = *upd.Developers
	}
	if upd.PeriodDays != nil {
		team.PeriodDays = *upd.PeriodDays
	}
	if upd.ClearBaseline {
		team.Baseline = nil
	} else if upd.Baseline != nil {
		team.Baseline = upd.Baseline
	}

	if err := validateTeamConfig(team.Developers, team.PeriodDays, team.Baseline); err != nil {
		return Team{}, err
	}

	team.UpdatedAt = time.Now().UTC()
	prev := s.teams[id]
	s.teams[id] = team

	if err := s.saveTeams(); err != nil {
		s.teams[id] = prev
		return Team{}, err
	}
	return team, nil
}

// DeleteTeam removes a team and, cascading, its entire sprint log.
func (s *Store) DeleteTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTeamNotFound, id)
	}

	delete(s.teams, id)
	delete(s.sprints, id)

	if err := s.saveTeams(); err != nil {
		return err
	}
	if err := os.Remove(s.sprintsPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove sprint log for %s: %w", id, err)
	}

	log.Info().Str("team", id).Msg("Team and sprint log removed")
	return nil
}

// LogSprint records a completed sprint for a team, snapshotting the team's
// current configuration into the record. A zero completedAt means now.
func (s *Store) LogSprint(teamID, label string, completed, leaveUnits float64, completedAt time.Time) (Sprint, error) {
	if err := validateOutcome(completed, leaveUnits); err != nil {
		return Sprint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return Sprint{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	sprint := Sprint{
		ID:          s.nextSprintID(teamID),
		TeamID:      teamID,
		Label:       label,
		Completed:   completed,
		LeaveUnits:  leaveUnits,
		PeriodDays:  team.PeriodDays,
		Developers:  team.Developers,
		CompletedAt: completedAt,
	}
	s.sprints[teamID] = append(s.sprints[teamID], sprint)

	if err := s.saveSprints(teamID); err != nil {
		s.sprints[teamID] = s.sprints[teamID][:len(s.sprints[teamID])-1]
		return Sprint{}, err
	}
	return sprint, nil
}

// Sprints returns a team's sprints ordered most recent first. Consumers rely
// on this ordering; the planning engine never re-sorts.
func (s *Store) Sprints(teamID string) ([]Sprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[teamID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	sprints := make([]Sprint, len(s.sprints[teamID]))
	copy(sprints, s.sprints[teamID])

	sort.Slice(sprints, func(i, j int) bool {
		if !sprints[i].CompletedAt.Equal(sprints[j].CompletedAt) {
			return sprints[i].CompletedAt.After(sprints[j].CompletedAt)
		}
		return sprints[i].ID > sprints[j].ID
	})
	return sprints, nil
}

// UpdateSprint applies a corrective edit to a sprint's outcome fields. The
// PeriodDays and Developers snapshots are deliberately not editable.
func (s *Store) UpdateSprint(teamID string, sprintID int, upd SprintUpdate) (Sprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return Sprint{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	sprints := s.sprints[teamID]
	for i, sp := range sprints {
		if sp.ID != sprintID {
			continue
		}

		if upd.Label != nil {
			sp.Label = *upd.Label
		}
		if upd.Completed != nil {
			sp.Completed = *upd.Completed
		}
		if upd.LeaveUnits != nil {
			sp.LeaveUnits = *upd.LeaveUnits
		}
		if err := validateOutcome(sp.Completed, sp.LeaveUnits); err != nil {
			return Sprint{}, err
		}

		prev := sprints[i]
		sprints[i] = sp
		if err := s.saveSprints(teamID); err != nil {
			sprints[i] = prev
			return Sprint{}, err
		}
		return sp, nil
	}
	return Sprint{}, fmt.Errorf("%w: %s/%d", ErrSprintNotFound, teamID, sprintID)
}

// DeleteSprint removes a single sprint from a team's log.
func (s *Store) DeleteSprint(teamID string, sprintID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	sprints := s.sprints[teamID]
	for i, sp := range sprints {
		if sp.ID == sprintID {
			s.sprints[teamID] = append(sprints[:i:i], sprints[i+1:]...)
			if err := s.saveSprints(teamID); err != nil {
				s.sprints[teamID] = sprints
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s/%d", ErrSprintNotFound, teamID, sprintID)
}

func (s *Store) nextSprintID(teamID string) int {
	max := 0
	for _, sp := range s.sprints[teamID] {
		if sp.ID > max {
			max = sp.ID
		}
	}
	return max + 1
}

func (s *Store) teamsPath() string {
	return filepath.Join(s.dataDir, "teams.json")
}

func (s *Store) sprintsPath(teamID string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s.jsonl", teamID))
}

// saveTeams persists teams.json via a temp file and atomic rename.
// Caller holds the write lock.
func (s *Store) saveTeams() error {
	teams := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })

	data, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode teams: %w", err)
	}
	return s.atomicWrite(s.teamsPath(), data)
}

// saveSprints persists a team's sprint log as JSONL. Caller holds the write lock.
func (s *Store) saveSprints(teamID string) error {
	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	for _, sp := range s.sprints[teamID] {
		if err := encoder.Encode(sp); err != nil {
			return fmt.Errorf("failed to encode sprint: %w", err)
		}
	}
	return s.atomicWrite(s.sprintsPath(teamID), []byte(buf.String()))
}

func (s *Store) atomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Slugify derives a stable team ID from a display name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func validateTeamConfig(developers, periodDays int, baseline *float64) error {
	if developers < 1 {
		return fmt.Errorf("%w: developer count must be at least 1, got %d", ErrValidation, developers)
	}
	if periodDays < 1 {
		return fmt.Errorf("%w: period length must be at least 1 day, got %d", ErrValidation, periodDays)
	}
	if baseline != nil && !isFiniteNonNegative(*baseline) {
		return fmt.Errorf("%w: baseline must be a finite non-negative number, got %v", ErrValidation, *baseline)
	}
	return nil
}

func validateOutcome(completed, leaveUnits float64) error {
	if !isFiniteNonNegative(completed) {
		return fmt.Errorf("%w: completed points must be a finite non-negative number, got %v", ErrValidation, completed)
	}
	if !isFiniteNonNegative(leaveUnits) {
		return fmt.Errorf("%w: leave units must be a finite non-negative number, got %v", ErrValidation, leaveUnits)
	}
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
