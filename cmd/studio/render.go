package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/rendering"
	"github.com/jonathan/proposal-studio/internal/schemas"
	"github.com/jonathan/proposal-studio/internal/types"
)

var (
	renderProposalFile string
	renderTemplateFile string
	renderOutFile      string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a proposal package as Markdown",
	Long:  "Renders a proposal package JSON file (as written by the proposal command) into a client-facing Markdown document.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderProposalFile, "proposal", "p", "", "Path to proposal package JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to a custom Markdown template (default embedded)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Path to output Markdown file (default stdout)")

	if err := renderCmd.MarkFlagRequired("proposal"); err != nil {
		panic(fmt.Sprintf("failed to mark proposal flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	var pkg types.ProposalPackage
	if err := readJSONFile(renderProposalFile, schemas.ProposalPackage, &pkg); err != nil {
		return err
	}

	var doc string
	var err error
	if renderTemplateFile != "" {
		doc, err = rendering.RenderMarkdownWithTemplate(&pkg, renderTemplateFile)
	} else {
		doc, err = rendering.RenderMarkdown(&pkg)
	}
	if err != nil {
		return fmt.Errorf("failed to render proposal: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), renderOutFile, []byte(doc))
}
