package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/proposal-studio/internal/types"
)

func TestPrintStyleProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	profile := types.FallbackStyleProfile()

	p.PrintStyleProfile(&profile, types.SourceGenerated)
	output := buf.String()

	assert.Contains(t, output, "STYLE PROFILE")
	assert.Contains(t, output, "#F5E6E8")
	assert.Contains(t, output, "Timeless, Romantic, Intimate")
	assert.Contains(t, output, "Botanical Garden")
	assert.NotContains(t, output, "fallback")
}

func TestPrintStyleProfile_Fallback(t *testing.T) {
	var buf bytes.Buffer
	profile := types.FallbackStyleProfile()

	NewPrinter(&buf).PrintStyleProfile(&profile, types.SourceFallback)

	assert.Contains(t, buf.String(), "fallback profile")
}

func TestPrintStyleProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStyleProfile(nil, types.SourceGenerated)
	assert.Empty(t, buf.String())
}

func TestPrintProjects(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProjects([]types.Project{
		{ID: "p2", ClientName: "A & B", Status: types.StatusLead, Intake: &types.IntakeData{EventDate: "Fall 2025"}},
		{ID: "demo", ClientName: "Sarah & Michael", Status: types.StatusContractSigned, Proposals: []types.ProposalPackage{{ID: "x"}}},
	})
	output := buf.String()

	assert.Contains(t, output, "Total projects: 2")
	assert.Contains(t, output, "A & B")
	assert.Contains(t, output, "Contract Signed")
	assert.Contains(t, output, "Fall 2025")
	assert.Contains(t, output, "Proposals: 1")
	assert.Less(t, strings.Index(output, "A & B"), strings.Index(output, "Sarah & Michael"))
}

func TestPrintProjects_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProjects(nil)
	assert.Contains(t, buf.String(), "No projects yet.")
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSections("Proposal", []types.ProposalSection{
		{ID: "cover", Title: "Cover", Type: types.SectionText, Content: "Prepared for A & B"},
		{ID: "vision", Title: "The Vision", Type: types.SectionText, Content: strings.Repeat("line\n", 8)},
	})
	output := buf.String()

	assert.Contains(t, output, "PROPOSAL")
	assert.Contains(t, output, "[cover] Cover (text)")
	assert.Contains(t, output, "...")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
