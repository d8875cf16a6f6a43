// Package studio coordinates intake submission and proposal generation over the project store.
package studio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/proposal-studio/internal/proposal"
	"github.com/jonathan/proposal-studio/internal/store"
	"github.com/jonathan/proposal-studio/internal/style"
	"github.com/jonathan/proposal-studio/internal/types"
)

// StyleGenerator produces a style profile for an intake.
type StyleGenerator interface {
	Generate(ctx context.Context, intake types.IntakeData) style.Result
}

// SectionGenerator produces proposal sections.
type SectionGenerator interface {
	Generate(ctx context.Context, intake types.IntakeData, profile types.StyleProfile, mode types.ProposalMode, opts types.GenerationOptions) proposal.Result
}

// IntakeResult is the project created from an intake and where its profile came from.
type IntakeResult struct {
	Project       types.Project
	ProfileSource types.Source
}

// ProposalResult is a stored proposal package and where its content came from.
type ProposalResult struct {
	Package types.ProposalPackage
	Source  types.Source
}

// Service is the studio's orchestration layer.
type Service struct {
	store     *store.Store
	styles    StyleGenerator
	proposals SectionGenerator
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string

	mu         sync.Mutex
	inflight   map[string]*semaphore.Weighted
	generating map[string]bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for proposal timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithProposalIDs overrides the proposal id source.
func WithProposalIDs(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithLogger sets the service logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service over st using the given generators.
func New(st *store.Store, styles StyleGenerator, proposals SectionGenerator, opts ...Option) *Service {
	s := &Service{
		store:      st,
		styles:     styles,
		proposals:  proposals,
		logger:     zerolog.Nop(),
		now:        time.Now,
		newID:      uuid.NewString,
		inflight:   make(map[string]*semaphore.Weighted),
		generating: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "studio").Logger()
	return s
}

// SubmitIntake validates intake, generates its style profile and creates a Lead project.
func (s *Service) SubmitIntake(ctx context.Context, intake types.IntakeData) (IntakeResult, error) {
	if err := intake.Validate(); err != nil {
		return IntakeResult{}, &InputError{Input: "intake", Cause: err}
	}

	result := s.styles.Generate(ctx, intake)
	project := s.store.CreateProject(intake, result.Profile)

	s.logger.Info().
		Str("project_id", project.ID).
		Str("client", project.ClientName).
		Str("profile_source", string(result.Source)).
		Msg("project created")

	return IntakeResult{Project: project, ProfileSource: result.Source}, nil
}

// GenerateProposal generates and stores a proposal package for a project.
//
// Full mode is refused unless the project's contract is signed, and only one generation per
// project runs at a time. The package is stored even when generation fell back to the error
// section.
func (s *Service) GenerateProposal(ctx context.Context, projectID string, mode types.ProposalMode, opts types.GenerationOptions) (ProposalResult, error) {
	if err := opts.Validate(); err != nil {
		return ProposalResult{}, &InputError{Input: "generation options", Cause: err}
	}
	if mode != types.ModeTeaser && mode != types.ModeFull {
		return ProposalResult{}, &InputError{Input: "mode", Cause: fmt.Errorf("unknown proposal mode %q", mode)}
	}

	project, ok := s.store.Get(projectID)
	if !ok {
		return ProposalResult{}, ErrProjectNotFound
	}
	if project.Intake == nil || project.StyleProfile == nil {
		return ProposalResult{}, ErrProjectIncomplete
	}
	if mode == types.ModeFull && !project.CanGenerateFull() {
		return ProposalResult{}, ErrContractRequired
	}

	sem := s.guard(projectID)
	if !sem.TryAcquire(1) {
		return ProposalResult{}, ErrGenerationInProgress
	}
	s.setGenerating(projectID, true)
	defer func() {
		s.setGenerating(projectID, false)
		sem.Release(1)
	}()

	result := s.proposals.Generate(ctx, *project.Intake, *project.StyleProfile, mode, opts)

	pkg := types.ProposalPackage{
		ID:             s.newID(),
		Mode:           mode,
		Title:          ProposalTitle(project.ClientName, mode),
		CreatedAt:      s.now().UTC(),
		Sections:       result.Sections,
		TeaserIncluded: mode == types.ModeTeaser && opts.TeaserIncluded,
		StyleProfile:   project.StyleProfile.Clone(),
	}

	if !s.store.AppendProposal(projectID, pkg) {
		return ProposalResult{}, ErrProjectNotFound
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("proposal_id", pkg.ID).
		Str("mode", string(mode)).
		Str("source", string(result.Source)).
		Msg("proposal generated")

	return ProposalResult{Package: pkg, Source: result.Source}, nil
}

// ProposalTitle returns the package title for a client and mode.
func ProposalTitle(clientName string, mode types.ProposalMode) string {
	if mode == types.ModeFull {
		return clientName + " - Design Master Plan"
	}
	return clientName + " - Vision Proposal"
}

// ToggleStatus flips a project between Lead and Contract Signed.
func (s *Service) ToggleStatus(projectID string) (types.Project, error) {
	project, ok := s.store.ToggleStatus(projectID)
	if !ok {
		return types.Project{}, ErrProjectNotFound
	}
	s.logger.Info().Str("project_id", projectID).Str("status", string(project.Status)).Msg("project status changed")
	return project, nil
}

// Projects returns all projects, newest first.
func (s *Service) Projects() []types.Project {
	return s.store.List()
}

// Project returns one project.
func (s *Service) Project(projectID string) (types.Project, error) {
	project, ok := s.store.Get(projectID)
	if !ok {
		return types.Project{}, ErrProjectNotFound
	}
	return project, nil
}

// Proposal returns one stored proposal package.
func (s *Service) Proposal(projectID, proposalID string) (types.ProposalPackage, error) {
	project, err := s.Project(projectID)
	if err != nil {
		return types.ProposalPackage{}, err
	}
	for _, pkg := range project.Proposals {
		if pkg.ID == proposalID {
			return pkg, nil
		}
	}
	return types.ProposalPackage{}, ErrProposalNotFound
}

// Generating reports whether a proposal generation is running for the project.
// It only reads state and never contends with GenerateProposal for the guard.
func (s *Service) Generating(projectID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating[projectID]
}

func (s *Service) setGenerating(projectID string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.generating[projectID] = true
		return
	}
	delete(s.generating, projectID)
}

func (s *Service) guard(projectID string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, ok := s.inflight[projectID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		s.inflight[projectID] = sem
	}
	return sem
}
