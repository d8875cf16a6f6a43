package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/observability"
	"github.com/jonathan/proposal-studio/internal/proposal"
	"github.com/jonathan/proposal-studio/internal/store"
	"github.com/jonathan/proposal-studio/internal/studio"
	"github.com/jonathan/proposal-studio/internal/style"
	"github.com/jonathan/proposal-studio/internal/types"
)

var demoGenerate string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the demo dashboard",
	Long:  "Seeds the demo project, optionally generates a proposal for it, and prints the dashboard.",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoGenerate, "generate", "g", "", "Generate a proposal in this mode (teaser or full) before printing")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg.LLMConfig(), cfg.Generation.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	svc := studio.New(store.New(),
		style.NewGenerator(client, logger),
		proposal.NewGenerator(client, logger),
		studio.WithLogger(logger),
	)
	svc.SeedDemo()

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if demoGenerate != "" {
		mode, err := types.ParseProposalMode(demoGenerate)
		if err != nil {
			return err
		}
		result, err := svc.GenerateProposal(ctx, studio.DemoProjectID, mode, types.GenerationOptions{})
		if err != nil {
			return err
		}
		printer.PrintSections(result.Package.Title, result.Package.Sections)
	}

	printer.PrintProjects(svc.Projects())
	return nil
}
