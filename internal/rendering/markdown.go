package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/proposal-studio/internal/types"
)

//go:embed templates/proposal.md.tmpl
var templateFiles embed.FS

// Mode badges.
const (
	TeaserLabel = "Light Proposal"
	FullLabel   = "Full Design Package"
)

// Gallery notes.
const (
	galleryNote           = "Six inspiration images curated to the palette above."
	conceptualGalleryNote = "Six inspiration images curated to the palette above. All imagery is Conceptual."
	teaserConceptNote     = "> Includes a Teaser Concept (approximate render)."
)

// taglineWords is how many words of the style summary appear under the title.
const taglineWords = 5

// TemplateData is the view passed to the proposal template.
type TemplateData struct {
	Title      string
	ModeLabel  string
	Teaser     bool
	Tagline    string
	Cover      string
	Palette    []string
	Adjectives []string
	Motifs     []string
	VenueTypes []string
	Sections   []SectionView
	Footnote   string
}

// SectionView is a non-cover section prepared for the template.
type SectionView struct {
	Title   string
	Content string
	Gallery string
	Budget  []BudgetLine
}

// RenderMarkdown renders pkg with the built-in template.
func RenderMarkdown(pkg *types.ProposalPackage) (string, error) {
	content, err := templateFiles.ReadFile("templates/proposal.md.tmpl")
	if err != nil {
		return "", &TemplateError{Message: "failed to read built-in template", Cause: err}
	}
	tmpl, err := newTemplate(string(content))
	if err != nil {
		return "", err
	}
	return execute(tmpl, pkg)
}

// RenderMarkdownWithTemplate renders pkg with a template file on disk.
func RenderMarkdownWithTemplate(pkg *types.ProposalPackage, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, pkg)
}

func execute(tmpl *template.Template, pkg *types.ProposalPackage) (string, error) {
	if pkg == nil {
		return "", &RenderError{Message: "proposal package is required"}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, BuildTemplateData(pkg)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses a Markdown template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTemplate(string(content))
}

func newTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("proposal").Funcs(template.FuncMap{
		"escape": EscapeMarkdown,
		"join": func(items []string, sep string) string {
			escaped := make([]string, len(items))
			for i, item := range items {
				escaped[i] = EscapeMarkdown(item)
			}
			return strings.Join(escaped, sep)
		},
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// BuildTemplateData prepares the template view of a package.
// The cover section is shown under the title rather than as its own section.
func BuildTemplateData(pkg *types.ProposalPackage) *TemplateData {
	teaser := pkg.Mode != types.ModeFull
	data := &TemplateData{
		Title:      pkg.Title,
		ModeLabel:  ModeLabel(pkg.Mode),
		Teaser:     teaser,
		Tagline:    tagline(pkg.StyleProfile.Summary),
		Palette:    pkg.StyleProfile.Palette,
		Adjectives: pkg.StyleProfile.Adjectives,
		Motifs:     pkg.StyleProfile.Motifs,
		VenueTypes: pkg.StyleProfile.VenueTypes,
		Footnote:   BudgetFootnote(pkg.Mode),
	}

	for _, section := range pkg.Sections {
		if section.ID == types.SectionIDCover {
			data.Cover = section.Content
			continue
		}
		view := SectionView{Title: section.Title, Content: section.Content}
		switch section.Type {
		case types.SectionGallery:
			view.Gallery = galleryNote
			if teaser {
				view.Gallery = conceptualGalleryNote
			}
			if teaser && pkg.TeaserIncluded {
				view.Gallery += "\n\n" + teaserConceptNote
			}
		case types.SectionBudgetChart:
			view.Budget = BudgetLines(pkg.Mode)
		}
		data.Sections = append(data.Sections, view)
	}
	return data
}

// ModeLabel returns the badge shown for a mode.
func ModeLabel(mode types.ProposalMode) string {
	if mode == types.ModeFull {
		return FullLabel
	}
	return TeaserLabel
}

func tagline(summary string) string {
	words := strings.Fields(summary)
	if len(words) > taglineWords {
		words = words[:taglineWords]
	}
	return strings.Join(words, " ")
}
