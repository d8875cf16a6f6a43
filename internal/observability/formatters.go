// Package observability provides formatted terminal output for the studio CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/proposal-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStyleProfile outputs a style profile and whether it was generated or the fallback.
func (p *Printer) PrintStyleProfile(profile *types.StyleProfile, source types.Source) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Palette:   %s\n", strings.Join(profile.Palette, " ")))
	sb.WriteString(fmt.Sprintf("Keywords:  %s\n", strings.Join(profile.Adjectives, ", ")))
	sb.WriteString(fmt.Sprintf("Motifs:    %s\n", strings.Join(profile.Motifs, ", ")))
	sb.WriteString(fmt.Sprintf("Venues:    %s\n", strings.Join(profile.VenueTypes, ", ")))
	sb.WriteString("\n")
	sb.WriteString(profile.Summary)
	if source == types.SourceFallback {
		sb.WriteString("\n\n(fallback profile: generation unavailable)")
	}

	p.printBox("STYLE PROFILE", sb.String())
}

// PrintProjects outputs the project dashboard.
func (p *Printer) PrintProjects(projects []types.Project) {
	if len(projects) == 0 {
		p.printBox("PROJECTS", "No projects yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total projects: %d\n\n", len(projects)))
	for i, project := range projects {
		sb.WriteString(fmt.Sprintf("%s\n", project.ClientName))
		sb.WriteString(fmt.Sprintf("  Status:    %s\n", project.Status))
		sb.WriteString(fmt.Sprintf("  Proposals: %d\n", len(project.Proposals)))
		if project.Intake != nil && project.Intake.EventDate != "" {
			sb.WriteString(fmt.Sprintf("  Date:      %s\n", project.Intake.EventDate))
		}
		sb.WriteString(fmt.Sprintf("  ID:        %s", project.ID))
		if i < len(projects)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("PROJECTS", sb.String())
}

// PrintSections outputs a one-line summary per proposal section.
func (p *Printer) PrintSections(title string, sections []types.ProposalSection) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	for i, section := range sections {
		sb.WriteString(fmt.Sprintf("[%s] %s (%s)\n", section.ID, section.Title, section.Type))
		for j, line := range strings.Split(strings.TrimSpace(section.Content), "\n") {
			if j == maxItemsToShow {
				sb.WriteString("  ...\n")
				break
			}
			if line != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}
		if i < len(sections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
