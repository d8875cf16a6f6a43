package types

import (
	"fmt"
	"regexp"
	"slices"
)

// Style profile shape limits.
const (
	PaletteSize    = 5
	MinAdjectives  = 3
	MaxAdjectives  = 5
	MotifCount     = 3
	VenueTypeCount = 3
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}){1,2}$`)

// StyleProfile is the aesthetic summary generated from an intake.
// A project holds at most one and never regenerates it.
type StyleProfile struct {
	Palette    []string `json:"palette"`
	Adjectives []string `json:"adjectives"`
	Motifs     []string `json:"motifs"`
	VenueTypes []string `json:"venueTypes"`
	Summary    string   `json:"summary"`
}

// StyleProfileError reports a profile that does not have the required shape.
type StyleProfileError struct {
	Field   string
	Message string
}

func (e *StyleProfileError) Error() string {
	return fmt.Sprintf("invalid style profile: %s: %s", e.Field, e.Message)
}

// Validate checks counts, hex colors and the presence of a summary.
func (p *StyleProfile) Validate() error {
	if len(p.Palette) != PaletteSize {
		return &StyleProfileError{Field: "palette", Message: fmt.Sprintf("expected %d colors, got %d", PaletteSize, len(p.Palette))}
	}
	for _, c := range p.Palette {
		if !hexColorPattern.MatchString(c) {
			return &StyleProfileError{Field: "palette", Message: fmt.Sprintf("%q is not a hex color", c)}
		}
	}
	if n := len(p.Adjectives); n < MinAdjectives || n > MaxAdjectives {
		return &StyleProfileError{Field: "adjectives", Message: fmt.Sprintf("expected %d-%d entries, got %d", MinAdjectives, MaxAdjectives, n)}
	}
	if len(p.Motifs) != MotifCount {
		return &StyleProfileError{Field: "motifs", Message: fmt.Sprintf("expected %d entries, got %d", MotifCount, len(p.Motifs))}
	}
	if len(p.VenueTypes) != VenueTypeCount {
		return &StyleProfileError{Field: "venueTypes", Message: fmt.Sprintf("expected %d entries, got %d", VenueTypeCount, len(p.VenueTypes))}
	}
	if p.Summary == "" {
		return &StyleProfileError{Field: "summary", Message: "summary is required"}
	}
	return nil
}

// Clone returns a deep copy, used wherever a profile is snapshotted.
func (p StyleProfile) Clone() StyleProfile {
	return StyleProfile{
		Palette:    slices.Clone(p.Palette),
		Adjectives: slices.Clone(p.Adjectives),
		Motifs:     slices.Clone(p.Motifs),
		VenueTypes: slices.Clone(p.VenueTypes),
		Summary:    p.Summary,
	}
}

// FallbackStyleProfile returns the fixed demo profile used whenever generation is unavailable.
func FallbackStyleProfile() StyleProfile {
	return StyleProfile{
		Palette:    []string{"#F5E6E8", "#D5C0C2", "#9A8C98", "#4A4E69", "#22223B"},
		Adjectives: []string{"Timeless", "Romantic", "Intimate"},
		Motifs:     []string{"Soft Candlelight", "Organic Florals", "Silk Textures"},
		VenueTypes: []string{"Botanical Garden", "Historic Villa", "Private Estate"},
		Summary:    "A harmonious blend of organic elegance and modern sophistication, focusing on intimacy and warmth.",
	}
}
