package types

// ProjectStatus is a project's position in the sales lifecycle.
type ProjectStatus string

// Project statuses.
const (
	StatusLead           ProjectStatus = "Lead"
	StatusContractSigned ProjectStatus = "Contract Signed"
	StatusPlanning       ProjectStatus = "Planning"
)

// Project is one client engagement.
type Project struct {
	ID           string            `json:"id"`
	ClientName   string            `json:"clientName"`
	Status       ProjectStatus     `json:"status"`
	Intake       *IntakeData       `json:"intake,omitempty"`
	StyleProfile *StyleProfile     `json:"styleProfile,omitempty"`
	Proposals    []ProposalPackage `json:"proposals"`
}

// Clone returns a deep copy suitable for handing to read-only callers.
func (p Project) Clone() Project {
	if p.Intake != nil {
		intake := p.Intake.Clone()
		p.Intake = &intake
	}
	if p.StyleProfile != nil {
		profile := p.StyleProfile.Clone()
		p.StyleProfile = &profile
	}
	proposals := make([]ProposalPackage, len(p.Proposals))
	for i, pkg := range p.Proposals {
		proposals[i] = pkg.Clone()
	}
	p.Proposals = proposals
	return p
}

// CanGenerateFull reports whether a full-mode proposal may be produced for the project.
func (p *Project) CanGenerateFull() bool {
	return p.Status == StatusContractSigned
}

// HasGenerationInputs reports whether the project holds an intake or a style profile.
func (p *Project) HasGenerationInputs() bool {
	return p.Intake != nil || p.StyleProfile != nil
}

// Toggled returns the status after a planner toggle: Lead and Contract Signed swap,
// anything else stays put.
func (s ProjectStatus) Toggled() ProjectStatus {
	switch s {
	case StatusLead:
		return StatusContractSigned
	case StatusContractSigned:
		return StatusLead
	default:
		return s
	}
}
