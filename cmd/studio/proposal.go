package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/observability"
	"github.com/jonathan/proposal-studio/internal/proposal"
	"github.com/jonathan/proposal-studio/internal/store"
	"github.com/jonathan/proposal-studio/internal/studio"
	"github.com/jonathan/proposal-studio/internal/style"
	"github.com/jonathan/proposal-studio/internal/types"
)

var (
	proposalIntakeFile  string
	proposalProfileFile string
	proposalMode        string
	proposalTeaser      bool
	proposalNotes       string
	proposalSigned      bool
	proposalOutFile     string
	proposalVerbose     bool
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Generate a proposal package from an intake",
	Long: `Generates a teaser or full proposal package for an intake and writes it as JSON.

The style profile is read from --profile when given, otherwise generated first.
Full proposals are only produced for signed contracts (--signed).`,
	RunE: runProposal,
}

func init() {
	proposalCmd.Flags().StringVarP(&proposalIntakeFile, "intake", "i", "", "Path to intake JSON file (required)")
	proposalCmd.Flags().StringVarP(&proposalProfileFile, "profile", "p", "", "Path to style profile JSON file")
	proposalCmd.Flags().StringVarP(&proposalMode, "mode", "m", string(types.ModeTeaser), "Proposal mode: teaser or full")
	proposalCmd.Flags().BoolVar(&proposalTeaser, "teaser", false, "Include the approximate teaser concept render (teaser mode only)")
	proposalCmd.Flags().StringVar(&proposalNotes, "notes", "", "Internal planner notes for the generator")
	proposalCmd.Flags().BoolVar(&proposalSigned, "signed", false, "Treat the client's contract as signed")
	proposalCmd.Flags().StringVarP(&proposalOutFile, "out", "o", "", "Path to output proposal JSON file (default stdout)")
	proposalCmd.Flags().BoolVarP(&proposalVerbose, "verbose", "v", false, "Print the sections to stderr")

	if err := proposalCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}

	rootCmd.AddCommand(proposalCmd)
}

func runProposal(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode, err := types.ParseProposalMode(proposalMode)
	if err != nil {
		return err
	}
	opts := types.GenerationOptions{TeaserIncluded: proposalTeaser, PlannerNotes: proposalNotes}

	intakeData, err := readIntake(proposalIntakeFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg.LLMConfig(), cfg.Generation.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	st := store.New()
	svc := studio.New(st,
		style.NewGenerator(client, logger),
		proposal.NewGenerator(client, logger),
		studio.WithLogger(logger),
	)

	var project types.Project
	if proposalProfileFile != "" {
		profile, err := readStyleProfile(proposalProfileFile)
		if err != nil {
			return err
		}
		project = st.CreateProject(intakeData, profile)
	} else {
		created, err := svc.SubmitIntake(ctx, intakeData)
		if err != nil {
			return err
		}
		project = created.Project
	}

	if proposalSigned {
		if _, err := svc.ToggleStatus(project.ID); err != nil {
			return err
		}
	}

	result, err := svc.GenerateProposal(ctx, project.ID, mode, opts)
	if errors.Is(err, studio.ErrContractRequired) {
		return fmt.Errorf("%w (pass --signed once the contract is signed)", err)
	}
	if err != nil {
		return err
	}

	if proposalVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSections(result.Package.Title, result.Package.Sections)
	}

	return writeJSON(cmd.OutOrStdout(), proposalOutFile, result.Package)
}
