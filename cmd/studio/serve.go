package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/proposal-studio/internal/logging"
	"github.com/jonathan/proposal-studio/internal/proposal"
	"github.com/jonathan/proposal-studio/internal/server"
	"github.com/jonathan/proposal-studio/internal/store"
	"github.com/jonathan/proposal-studio/internal/studio"
	"github.com/jonathan/proposal-studio/internal/style"
)

var (
	servePort     int
	serveSeedDemo bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the intake, project and proposal endpoints. Projects are kept in memory.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveSeedDemo, "seed-demo", false, "Add the demo project at startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg.LLMConfig(), cfg.Generation.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	cliLogger := logging.Component(logger, "cli")
	if cfg.Generation.APIKey == "" {
		cliLogger.Warn().Msg("GEMINI_API_KEY is not set; generation will use fallback content")
	}

	svc := studio.New(store.New(),
		style.NewGenerator(client, logger),
		proposal.NewGenerator(client, logger),
		studio.WithLogger(logger),
	)
	if cfg.Server.SeedDemo || serveSeedDemo {
		svc.SeedDemo()
		cliLogger.Info().Str("project_id", studio.DemoProjectID).Msg("demo project seeded")
	}

	return server.New(cfg, svc, logger).Start(ctx)
}
