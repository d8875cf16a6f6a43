package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/proposal-studio/internal/llm"
	"github.com/jonathan/proposal-studio/internal/llm/llmtest"
)

const profileJSON = `{
	"palette": ["#F5E6E8", "#D5C0C2", "#9A8C98", "#4A4E69", "#22223B"],
	"adjectives": ["Timeless", "Romantic", "Intimate"],
	"motifs": ["Soft Candlelight", "Organic Florals", "Silk Textures"],
	"venueTypes": ["Botanical Garden", "Historic Villa", "Private Estate"],
	"summary": "A harmonious blend of organic elegance and modern sophistication."
}`

const intakeJSON = `{
	"coupleName": "A & B",
	"email": "a@b.com",
	"eventDate": "Fall 2025",
	"guestCount": "100-200",
	"budgetBand": "$70k - $100k",
	"location": "Austin, TX",
	"vibeTags": ["Modern"],
	"notes": ""
}`

// useClient makes commands build client instead of a real generation client.
func useClient(t *testing.T, client llm.Client) {
	t.Helper()
	original := newClient
	newClient = func(context.Context, *llm.Config, string) (llm.Client, error) { return client, nil }
	t.Cleanup(func() { newClient = original })
}

func workingClient() *llmtest.MockClient {
	return &llmtest.MockClient{
		GenerateJSONFunc: func(context.Context, llm.Request) (string, error) { return profileJSON, nil },
		GenerateContentFunc: func(context.Context, llm.Request) (string, error) {
			return "An evening of candlelight among the olive trees.", nil
		},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag to its default so commands can run repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args and returns its stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("STUDIO_LOG_LEVEL", "disabled")
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
