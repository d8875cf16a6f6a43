// Package store keeps the studio's projects in memory.
//
// Projects are kept newest first. Intakes are never modified after creation and proposal packages
// are only ever prepended, so every read hands out a deep copy.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/proposal-studio/internal/metrics"
	"github.com/jonathan/proposal-studio/internal/types"
)

// Store is an in-memory, concurrency-safe project collection.
type Store struct {
	mu       sync.RWMutex
	projects []*types.Project
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the project id source (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		projects: make([]*types.Project, 0),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProject inserts a new Lead project at the front of the collection.
func (s *Store) CreateProject(intake types.IntakeData, profile types.StyleProfile) types.Project {
	intake = intake.Clone()
	profile = profile.Clone()
	p := &types.Project{
		ID:           s.newID(),
		ClientName:   intake.CoupleName,
		Status:       types.StatusLead,
		Intake:       &intake,
		StyleProfile: &profile,
		Proposals:    []types.ProposalPackage{},
	}

	s.mu.Lock()
	s.projects = append([]*types.Project{p}, s.projects...)
	created := p.Clone()
	s.mu.Unlock()

	metrics.ProjectsCreated.Inc()
	return created
}

// AppendProposal prepends pkg to the project's proposals. It does nothing and returns false when
// the project does not exist or holds neither an intake nor a style profile.
func (s *Store) AppendProposal(projectID string, pkg types.ProposalPackage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(projectID)
	if p == nil || !p.HasGenerationInputs() {
		return false
	}
	p.Proposals = append([]types.ProposalPackage{pkg.Clone()}, p.Proposals...)
	metrics.ProposalsTotal.WithLabelValues(string(pkg.Mode)).Inc()
	return true
}

// ToggleStatus swaps Lead and Contract Signed. Other statuses are left as they are.
// The second return value is false when the project does not exist.
func (s *Store) ToggleStatus(projectID string) (types.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(projectID)
	if p == nil {
		return types.Project{}, false
	}
	p.Status = p.Status.Toggled()
	return p.Clone(), true
}

// Get returns a copy of the project with the given id.
func (s *Store) Get(projectID string) (types.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.find(projectID)
	if p == nil {
		return types.Project{}, false
	}
	return p.Clone(), true
}

// List returns copies of all projects, newest first.
func (s *Store) List() []types.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]types.Project, len(s.projects))
	for i, p := range s.projects {
		projects[i] = p.Clone()
	}
	return projects
}

// Len returns the number of projects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// Seed appends pre-built projects after the existing ones, in the order given.
// Projects without an id get one; a nil proposal list becomes empty.
func (s *Store) Seed(projects ...types.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range projects {
		p = p.Clone()
		if p.ID == "" {
			p.ID = s.newID()
		}
		s.projects = append(s.projects, &p)
	}
}

// find must be called with s.mu held.
func (s *Store) find(projectID string) *types.Project {
	for _, p := range s.projects {
		if p.ID == projectID {
			return p
		}
	}
	return nil
}
