// Package main provides the studio command: the HTTP API server plus offline intake,
// generation and rendering tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/config"
	"github.com/jonathan/proposal-studio/internal/llm"
	"github.com/jonathan/proposal-studio/internal/logging"
)

var configPath string

// newClient builds the generation client; tests replace it.
var newClient = llm.NewClient

var rootCmd = &cobra.Command{
	Use:           "studio",
	Short:         "Wedding proposal studio",
	Long:          "Proposal studio turns client intakes into style profiles and teaser or full wedding proposals, over a REST API or from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads and validates configuration and builds a logger writing to cmd's stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format), nil
}
