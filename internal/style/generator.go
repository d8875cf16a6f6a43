// Package style turns a client intake into a StyleProfile using the generation service.
// Generation never fails outward: any problem yields the fixed fallback profile.
package style

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/proposal-studio/internal/llm"
	"github.com/jonathan/proposal-studio/internal/metrics"
	"github.com/jonathan/proposal-studio/internal/prompts"
	"github.com/jonathan/proposal-studio/internal/schemas"
	"github.com/jonathan/proposal-studio/internal/types"
)

// ProfileShape is the structure the generation service is asked to return.
var ProfileShape = llm.ResponseShape{
	Name: "StyleProfile",
	Fields: []llm.ShapeField{
		{Name: "palette", Kind: llm.KindStringArray, Description: "exactly 5 hex color codes", Required: true},
		{Name: "adjectives", Kind: llm.KindStringArray, Description: "3-5 style keywords", Required: true},
		{Name: "motifs", Kind: llm.KindStringArray, Description: "exactly 3 design motifs", Required: true},
		{Name: "venueTypes", Kind: llm.KindStringArray, Description: "exactly 3 venue suggestions", Required: true},
		{Name: "summary", Kind: llm.KindString, Description: "a 2-sentence executive summary of the design vision", Required: true},
	},
}

// Result is the outcome of one generation. Err is set only when Source is fallback.
type Result struct {
	Profile types.StyleProfile
	Source  types.Source
	Err     error
}

// Generator produces style profiles.
type Generator struct {
	client llm.Client
	logger zerolog.Logger
}

// NewGenerator creates a generator backed by client. A nil client behaves like an unconfigured one.
func NewGenerator(client llm.Client, logger zerolog.Logger) *Generator {
	return &Generator{client: client, logger: logger.With().Str("component", "style").Logger()}
}

// GenerateStyleProfile returns a valid profile for intake, falling back when generation fails.
func (g *Generator) GenerateStyleProfile(ctx context.Context, intake types.IntakeData) types.StyleProfile {
	return g.Generate(ctx, intake).Profile
}

// Generate makes a single attempt and reports where the profile came from.
func (g *Generator) Generate(ctx context.Context, intake types.IntakeData) Result {
	start := time.Now()
	profile, err := g.generate(ctx, intake)

	result := Result{Profile: profile, Source: types.SourceGenerated}
	if err != nil {
		g.logger.Warn().
			Err(err).
			Str("client", intake.CoupleName).
			Msg("style profile generation failed, using fallback profile")
		result = Result{
			Profile: types.FallbackStyleProfile(),
			Source:  types.SourceFallback,
			Err:     &GenerationUnavailableError{Cause: err},
		}
	}

	metrics.ObserveGeneration(metrics.KindStyleProfile, string(result.Source), time.Since(start))
	return result
}

func (g *Generator) generate(ctx context.Context, intake types.IntakeData) (types.StyleProfile, error) {
	if g.client == nil {
		return types.StyleProfile{}, &APICallError{Message: "no generation client configured", Cause: llm.ErrMissingAPIKey}
	}

	responseText, err := g.client.GenerateJSON(ctx, llm.Request{
		Prompt:            buildProfilePrompt(intake),
		SystemInstruction: prompts.MustGet("style.json", "system"),
		Schema:            ProfileShape.Schema(),
		Tier:              llm.TierStandard,
	})
	if err != nil {
		return types.StyleProfile{}, &APICallError{
			Message: "failed to generate style profile",
			Cause:   err,
		}
	}

	return parseProfile(responseText)
}

// buildProfilePrompt constructs the profile prompt from the intake
func buildProfilePrompt(intake types.IntakeData) string {
	template := prompts.MustGet("style.json", "generate-style-profile")
	return prompts.Format(template, map[string]string{
		"CoupleName": intake.CoupleName,
		"Location":   intake.Location,
		"VibeTags":   strings.Join(intake.VibeTags, ", "),
		"Notes":      intake.Notes,
		"EventDate":  intake.EventDate,
		"Shape":      ProfileShape.PromptHint(),
	})
}

// parseProfile decodes and checks a profile document.
func parseProfile(responseText string) (types.StyleProfile, error) {
	responseText = llm.CleanJSONBlock(responseText)
	if responseText == "" {
		return types.StyleProfile{}, &ParseError{Message: "empty response"}
	}

	var profile types.StyleProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return types.StyleProfile{}, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	if err := schemas.ValidateStyleProfile(responseText); err != nil {
		return types.StyleProfile{}, err
	}
	if err := profile.Validate(); err != nil {
		return types.StyleProfile{}, err
	}
	return profile, nil
}
