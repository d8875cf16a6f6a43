package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/observability"
	"github.com/jonathan/proposal-studio/internal/style"
)

var (
	styleProfileIntakeFile string
	styleProfileOutFile    string
	styleProfileVerbose    bool
)

var styleProfileCmd = &cobra.Command{
	Use:   "style-profile",
	Short: "Generate a style profile from an intake",
	Long:  "Generates the five-color palette, keywords, motifs and venue suggestions for an intake. Falls back to the default profile when generation is unavailable.",
	RunE:  runStyleProfile,
}

func init() {
	styleProfileCmd.Flags().StringVarP(&styleProfileIntakeFile, "intake", "i", "", "Path to intake JSON file (required)")
	styleProfileCmd.Flags().StringVarP(&styleProfileOutFile, "out", "o", "", "Path to output style profile JSON file (default stdout)")
	styleProfileCmd.Flags().BoolVarP(&styleProfileVerbose, "verbose", "v", false, "Print the profile summary to stderr")

	if err := styleProfileCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}

	rootCmd.AddCommand(styleProfileCmd)
}

func runStyleProfile(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	intakeData, err := readIntake(styleProfileIntakeFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg.LLMConfig(), cfg.Generation.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	result := style.NewGenerator(client, logger).Generate(ctx, intakeData)

	if styleProfileVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintStyleProfile(&result.Profile, result.Source)
	}

	return writeJSON(cmd.OutOrStdout(), styleProfileOutFile, result.Profile)
}
