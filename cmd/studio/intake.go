package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/intake"
	"github.com/jonathan/proposal-studio/internal/schemas"
)

var intakeOutFile string

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Collect a client intake interactively",
	Long:  "Walks through the three intake steps on the terminal and writes the completed intake as JSON.",
	RunE:  runIntake,
}

func init() {
	intakeCmd.Flags().StringVarP(&intakeOutFile, "out", "o", "", "Path to output intake JSON file (default stdout)")
	rootCmd.AddCommand(intakeCmd)
}

func runIntake(cmd *cobra.Command, _ []string) error {
	// Prompts go to stderr so stdout carries only the JSON.
	data, err := intake.NewInterview(cmd.InOrStdin(), cmd.ErrOrStderr()).Run()
	if err != nil {
		return fmt.Errorf("intake interview failed: %w", err)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal intake: %w", err)
	}
	if err := schemas.ValidateIntake(string(content)); err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), intakeOutFile, append(content, '\n'))
}
