package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ProposalMode selects the teaser (pre-contract) or full (post-contract) proposal variant.
type ProposalMode string

const (
	// ModeTeaser is the conceptual, estimate-only pitch.
	ModeTeaser ProposalMode = "teaser"
	// ModeFull is the precise plan, available once a contract is signed.
	ModeFull ProposalMode = "full"
)

// ParseProposalMode accepts "teaser" (or its older name "light") and "full", case-insensitively.
func ParseProposalMode(s string) (ProposalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teaser", "light":
		return ModeTeaser, nil
	case "full":
		return ModeFull, nil
	default:
		return "", fmt.Errorf("unknown proposal mode %q (want teaser or full)", s)
	}
}

// SectionType tells the presentation layer how to interpret a section's content.
type SectionType string

// Section types.
const (
	SectionText        SectionType = "text"
	SectionGallery     SectionType = "gallery"
	SectionStats       SectionType = "stats"
	SectionBudgetChart SectionType = "budget_chart"
)

// Section identifiers, in package order.
const (
	SectionIDCover     = "cover"
	SectionIDVision    = "vision"
	SectionIDMoodboard = "moodboard"
	SectionIDBudget    = "budget"
	SectionIDError     = "error"
)

// ProposalSection is one typed block of a proposal.
type ProposalSection struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
	Data    any         `json:"data,omitempty"`
}

// ProposalPackage is a generated proposal. Packages are append-only: once stored they are never
// mutated or removed, and StyleProfile is a snapshot taken at generation time.
type ProposalPackage struct {
	ID             string            `json:"id"`
	Mode           ProposalMode      `json:"mode"`
	Title          string            `json:"title"`
	CreatedAt      time.Time         `json:"createdAt"`
	Sections       []ProposalSection `json:"sections"`
	TeaserIncluded bool              `json:"teaserIncluded"`
	StyleProfile   StyleProfile      `json:"styleProfile"`
}

// Clone returns a deep copy of the package.
func (p ProposalPackage) Clone() ProposalPackage {
	p.Sections = slices.Clone(p.Sections)
	p.StyleProfile = p.StyleProfile.Clone()
	return p
}

// SectionIDs returns the section identifiers in order.
func SectionIDs(sections []ProposalSection) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

// GenerationOptions are the planner's knobs for a single proposal generation.
type GenerationOptions struct {
	// TeaserIncluded adds the approximate "teaser concept" render. Only meaningful in teaser mode.
	TeaserIncluded bool `json:"teaserIncluded"`
	// PlannerNotes is internal guidance passed to the model, never shown to the client.
	PlannerNotes string `json:"plannerNotes" validate:"max=4000"`
}

// DecodeGenerationOptions parses options JSON, rejecting keys it does not recognise.
// Empty input yields zero options.
func DecodeGenerationOptions(data []byte) (GenerationOptions, error) {
	var opts GenerationOptions
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return opts, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return GenerationOptions{}, fmt.Errorf("invalid generation options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return GenerationOptions{}, err
	}
	return opts, nil
}

// Validate checks option limits.
func (o *GenerationOptions) Validate() error {
	return Validator().Struct(o)
}

// Source records whether a generator's output came from the model or from its fallback.
type Source string

// Generation sources.
const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)
