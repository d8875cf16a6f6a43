package studio

import "github.com/jonathan/proposal-studio/internal/types"

// DemoProjectID is the id of the seeded demo project.
const DemoProjectID = "demo"

// DemoProject returns the sample signed-contract project shown on a fresh dashboard.
// Its values predate the current intake vocabulary and are stored as-is.
// The style profile has 2 motifs and 1 venue type, so StyleProfile.Validate
// rejects it; it is seeded directly and never passes through validation.
func DemoProject() types.Project {
	return types.Project{
		ID:         DemoProjectID,
		ClientName: "Sarah & Michael",
		Status:     types.StatusContractSigned,
		Intake: &types.IntakeData{
			CoupleName: "Sarah & Michael",
			Email:      "sarah@example.com",
			EventDate:  "Spring 2025",
			GuestCount: "150-200",
			BudgetBand: "$80k - $100k",
			Location:   "Charleston, SC",
			VibeTags:   []string{"Romantic", "Historic", "Garden"},
			Notes:      "Lots of moss and vintage brass.",
		},
		StyleProfile: &types.StyleProfile{
			Palette:    []string{"#5D737E", "#FFF0F5", "#E6E6FA", "#C0C0C0", "#2F4F4F"},
			Adjectives: []string{"Timeless", "Southern", "Lush"},
			Motifs:     []string{"Spanish Moss", "Wrought Iron"},
			VenueTypes: []string{"Historic Mansion"},
			Summary:    "A classic southern affair with lush garden elements.",
		},
		Proposals: []types.ProposalPackage{},
	}
}

// SeedDemo adds the demo project unless it is already present.
func (s *Service) SeedDemo() {
	if _, ok := s.store.Get(DemoProjectID); ok {
		return
	}
	s.store.Seed(DemoProject())
}
