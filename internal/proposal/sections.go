package proposal

import (
	"fmt"

	"github.com/jonathan/proposal-studio/internal/types"
)

// Static section copy.
const (
	CoverTitle        = "Cover"
	VisionTitle       = "The Vision"
	MoodboardTitle    = "Mood & Atmosphere"
	MoodboardCaption  = "Curated inspiration for your unique celebration."
	TeaserBudgetTitle = "Estimated Investment"
	FullBudgetTitle   = "Budget Breakdown"

	TeaserBudgetCaption = "Based on your guest count and preferences, we project the following investment bands."
	FullBudgetCaption   = "Detailed allocation of funds based on signed vendor contracts."

	// VisionPlaceholder stands in for an empty generated vision.
	VisionPlaceholder = "Vision content unavailable."

	ErrorTitle   = "Error"
	ErrorContent = "Could not generate proposal content. Please check API configuration."
)

// CoverContent returns the cover line for a client.
func CoverContent(coupleName string) string {
	return fmt.Sprintf("Prepared for %s", coupleName)
}

// AssembleSections builds the fixed cover, vision, moodboard and budget sequence around the vision text.
func AssembleSections(intake types.IntakeData, mode types.ProposalMode, vision string) []types.ProposalSection {
	if vision == "" {
		vision = VisionPlaceholder
	}

	budgetTitle, budgetCaption := TeaserBudgetTitle, TeaserBudgetCaption
	if mode == types.ModeFull {
		budgetTitle, budgetCaption = FullBudgetTitle, FullBudgetCaption
	}

	return []types.ProposalSection{
		{ID: types.SectionIDCover, Title: CoverTitle, Type: types.SectionText, Content: CoverContent(intake.CoupleName)},
		{ID: types.SectionIDVision, Title: VisionTitle, Type: types.SectionText, Content: vision},
		{ID: types.SectionIDMoodboard, Title: MoodboardTitle, Type: types.SectionGallery, Content: MoodboardCaption},
		{ID: types.SectionIDBudget, Title: budgetTitle, Type: types.SectionBudgetChart, Content: budgetCaption},
	}
}

// ErrorSections is the single-section result returned when generation is unavailable.
func ErrorSections() []types.ProposalSection {
	return []types.ProposalSection{
		{ID: types.SectionIDError, Title: ErrorTitle, Type: types.SectionText, Content: ErrorContent},
	}
}

// IsErrorResult reports whether sections is the generation-unavailable result.
func IsErrorResult(sections []types.ProposalSection) bool {
	return len(sections) == 1 && sections[0].ID == types.SectionIDError
}
