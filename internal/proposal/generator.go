// Package proposal writes the client-facing proposal sections for a project.
// The generation service supplies only the vision copy; every other section is fixed scaffolding.
package proposal

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/proposal-studio/internal/llm"
	"github.com/jonathan/proposal-studio/internal/metrics"
	"github.com/jonathan/proposal-studio/internal/prompts"
	"github.com/jonathan/proposal-studio/internal/types"
)

// Result is the outcome of one generation. Err is set only when Source is fallback.
type Result struct {
	Sections []types.ProposalSection
	Source   types.Source
	Err      error
}

// Generator produces proposal sections.
type Generator struct {
	client llm.Client
	logger zerolog.Logger
}

// NewGenerator creates a generator backed by client. A nil client behaves like an unconfigured one.
func NewGenerator(client llm.Client, logger zerolog.Logger) *Generator {
	return &Generator{client: client, logger: logger.With().Str("component", "proposal").Logger()}
}

// GenerateProposalSections returns the four proposal sections, or the single error section when
// the generation service is unavailable.
func (g *Generator) GenerateProposalSections(ctx context.Context, intake types.IntakeData, profile types.StyleProfile, mode types.ProposalMode, opts types.GenerationOptions) []types.ProposalSection {
	return g.Generate(ctx, intake, profile, mode, opts).Sections
}

// Generate makes a single attempt and reports where the sections came from.
func (g *Generator) Generate(ctx context.Context, intake types.IntakeData, profile types.StyleProfile, mode types.ProposalMode, opts types.GenerationOptions) Result {
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.WithLabelValues(metrics.KindProposal).Observe(time.Since(start).Seconds())
	}()

	vision, err := g.vision(ctx, intake, profile, mode, opts)
	if err != nil {
		g.logger.Warn().
			Err(err).
			Str("client", intake.CoupleName).
			Str("mode", string(mode)).
			Msg("proposal generation failed, returning error section")
		metrics.GenerationTotal.WithLabelValues(metrics.KindProposal, string(types.SourceFallback)).Inc()
		return Result{
			Sections: ErrorSections(),
			Source:   types.SourceFallback,
			Err:      &GenerationUnavailableError{Mode: string(mode), Cause: err},
		}
	}

	metrics.GenerationTotal.WithLabelValues(metrics.KindProposal, string(types.SourceGenerated)).Inc()
	return Result{
		Sections: AssembleSections(intake, mode, vision),
		Source:   types.SourceGenerated,
	}
}

func (g *Generator) vision(ctx context.Context, intake types.IntakeData, profile types.StyleProfile, mode types.ProposalMode, opts types.GenerationOptions) (string, error) {
	if g.client == nil {
		return "", &APICallError{Message: "no generation client configured", Cause: llm.ErrMissingAPIKey}
	}

	text, err := g.client.GenerateContent(ctx, llm.Request{
		Prompt:            buildSectionsPrompt(intake, profile, opts),
		SystemInstruction: SystemDirective(mode),
		Tier:              llm.TierStandard,
	})
	if err != nil {
		return "", &APICallError{
			Message: "failed to generate proposal content",
			Cause:   err,
		}
	}
	return text, nil
}

// SystemDirective returns the mode-specific directive sent with the prompt.
func SystemDirective(mode types.ProposalMode) string {
	if mode == types.ModeFull {
		return prompts.MustGet("proposal.json", "system-full")
	}
	return prompts.MustGet("proposal.json", "system-teaser")
}

// buildSectionsPrompt constructs the vision prompt. Planner notes are appended only when present.
func buildSectionsPrompt(intake types.IntakeData, profile types.StyleProfile, opts types.GenerationOptions) string {
	var notes string
	if trimmed := strings.TrimSpace(opts.PlannerNotes); trimmed != "" {
		notes = prompts.Format(prompts.MustGet("proposal.json", "planner-notes"), map[string]string{
			"Notes": trimmed,
		})
	}

	template := prompts.MustGet("proposal.json", "generate-sections")
	return prompts.Format(template, map[string]string{
		"CoupleName":   intake.CoupleName,
		"Summary":      profile.Summary,
		"BudgetBand":   intake.BudgetBand,
		"GuestCount":   intake.GuestCount,
		"PlannerNotes": notes,
	})
}
