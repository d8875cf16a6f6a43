//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProposalMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ProposalMode
		wantErr bool
	}{
		{in: "teaser", want: ModeTeaser},
		{in: "LIGHT", want: ModeTeaser},
		{in: " full ", want: ModeFull},
		{in: "draft", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProposalMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeGenerationOptions(t *testing.T) {
	opts, err := DecodeGenerationOptions([]byte(`{"teaserIncluded": true, "plannerNotes": "Emphasize the outdoor ceremony"}`))
	require.NoError(t, err)
	assert.True(t, opts.TeaserIncluded)
	assert.Equal(t, "Emphasize the outdoor ceremony", opts.PlannerNotes)
}

func TestDecodeGenerationOptions_Empty(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "{}"} {
		opts, err := DecodeGenerationOptions([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, GenerationOptions{}, opts)
	}
}

func TestDecodeGenerationOptions_RejectsUnknownKeys(t *testing.T) {
	_, err := DecodeGenerationOptions([]byte(`{"teaserIncluded": true, "discount": 10}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestDecodeGenerationOptions_NotesTooLong(t *testing.T) {
	notes := strings.Repeat("x", 4001)
	_, err := DecodeGenerationOptions([]byte(`{"plannerNotes": "` + notes + `"}`))
	assert.Error(t, err)
}

func TestProposalPackage_Clone(t *testing.T) {
	pkg := ProposalPackage{
		ID:   "p1",
		Mode: ModeTeaser,
		Sections: []ProposalSection{
			{ID: SectionIDCover, Title: "Cover", Type: SectionText, Content: "Prepared for A & B"},
		},
		StyleProfile: FallbackStyleProfile(),
	}

	c := pkg.Clone()
	c.Sections[0].Content = "changed"
	c.StyleProfile.Palette[0] = "#000000"

	assert.Equal(t, "Prepared for A & B", pkg.Sections[0].Content)
	assert.Equal(t, "#F5E6E8", pkg.StyleProfile.Palette[0])
}

func TestSectionIDs(t *testing.T) {
	sections := []ProposalSection{{ID: "cover"}, {ID: "vision"}}
	assert.Equal(t, []string{"cover", "vision"}, SectionIDs(sections))
	assert.Empty(t, SectionIDs(nil))
}
