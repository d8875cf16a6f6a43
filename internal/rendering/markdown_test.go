package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/proposal-studio/internal/proposal"
	"github.com/jonathan/proposal-studio/internal/types"
)

func testPackage(mode types.ProposalMode, teaserIncluded bool) *types.ProposalPackage {
	intake := types.IntakeData{CoupleName: "A & B"}
	title := "A & B - Vision Proposal"
	if mode == types.ModeFull {
		title = "A & B - Design Master Plan"
	}
	return &types.ProposalPackage{
		ID:             "p1",
		Mode:           mode,
		Title:          title,
		CreatedAt:      time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC),
		Sections:       proposal.AssembleSections(intake, mode, "Paragraph one.\n\n- Warm\n- Modern\n- Intimate"),
		TeaserIncluded: teaserIncluded,
		StyleProfile:   types.FallbackStyleProfile(),
	}
}

func TestRenderMarkdown_Teaser(t *testing.T) {
	out, err := RenderMarkdown(testPackage(types.ModeTeaser, false))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# A & B - Vision Proposal\n"))
	assert.Contains(t, out, "**Light Proposal** · _Conceptual Draft_")
	assert.Contains(t, out, "_A harmonious blend of organic_")
	assert.Contains(t, out, "Prepared for A & B")
	assert.Contains(t, out, "`#F5E6E8` `#D5C0C2`")
	assert.Contains(t, out, "- **Keywords:** Timeless, Romantic, Intimate")
	assert.Contains(t, out, "- **Motifs:** Soft Candlelight • Organic Florals • Silk Textures")
	assert.Contains(t, out, "## The Vision\n\nParagraph one.")
	assert.Contains(t, out, "All imagery is Conceptual.")
	assert.Contains(t, out, "## Estimated Investment")
	assert.Contains(t, out, "| Category | Estimated Range |")
	assert.Contains(t, out, "| Venue | $15,000 – $25,000 |")
	assert.Contains(t, out, "| Planning | $8,000 – $12,000 |")
	assert.Contains(t, out, TeaserBudgetFootnote)
	assert.NotContains(t, out, "Teaser Concept")
	assert.NotContains(t, out, "## Cover")
	assert.Contains(t, out, "Book Vision Call")
}

func TestRenderMarkdown_TeaserConcept(t *testing.T) {
	out, err := RenderMarkdown(testPackage(types.ModeTeaser, true))
	require.NoError(t, err)
	assert.Contains(t, out, "Teaser Concept")
}

func TestRenderMarkdown_Full(t *testing.T) {
	out, err := RenderMarkdown(testPackage(types.ModeFull, false))
	require.NoError(t, err)

	assert.Contains(t, out, "**Full Design Package**\n")
	assert.NotContains(t, out, "Conceptual")
	assert.Contains(t, out, "## Budget Breakdown")
	assert.Contains(t, out, "| Category | Amount |")
	assert.Contains(t, out, "| Venue | $22,500 |")
	assert.Contains(t, out, "| Catering | $28,400 |")
	assert.Contains(t, out, "| Decor | $15,600 |")
	assert.Contains(t, out, "| Planning | $10,000 |")
	assert.Contains(t, out, FullBudgetFootnote)
	assert.NotContains(t, out, TeaserBudgetFootnote)
}

func TestRenderMarkdown_ErrorSection(t *testing.T) {
	pkg := testPackage(types.ModeTeaser, false)
	pkg.Sections = proposal.ErrorSections()

	out, err := RenderMarkdown(pkg)
	require.NoError(t, err)
	assert.Contains(t, out, "## Error\n\nCould not generate proposal content.")
	assert.NotContains(t, out, "| Category |")
}

func TestRenderMarkdown_Nil(t *testing.T) {
	_, err := RenderMarkdown(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestBuildTemplateData(t *testing.T) {
	data := BuildTemplateData(testPackage(types.ModeTeaser, false))

	assert.Equal(t, "Light Proposal", data.ModeLabel)
	assert.True(t, data.Teaser)
	assert.Equal(t, "Prepared for A & B", data.Cover)
	require.Len(t, data.Sections, 3)
	assert.Equal(t, "The Vision", data.Sections[0].Title)
	assert.NotEmpty(t, data.Sections[1].Gallery)
	assert.Len(t, data.Sections[2].Budget, 4)
}

func TestRenderMarkdownWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.md.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Title}} ({{.ModeLabel}}) {{len .Sections}}"), 0644))

	out, err := RenderMarkdownWithTemplate(testPackage(types.ModeFull, false), path)
	require.NoError(t, err)
	assert.Equal(t, "A & B - Design Master Plan (Full Design Package) 3", out)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.md.tmpl")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.md.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.InvalidSyntax{{}}"), 0644))

	_, err := parseTemplate(path)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}
