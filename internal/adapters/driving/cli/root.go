// Package cli implements the docdex command line interface.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex-cli/internal/core/services"
	"github.com/custodia-labs/docdex-cli/internal/logger"
	"github.com/custodia-labs/docdex-cli/internal/readers"
	"github.com/custodia-labs/docdex-cli/internal/readers/pdf"
	"github.com/custodia-labs/docdex-cli/internal/readers/plaintext"
)

// version is set from the main package at build time.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "docdex",
	Short: "Convert documents into knowledge cards and retrieval chunks",
	Long: `docdex ingests a folder of text-bearing documents (plain text,
markdown, PDF) and produces deterministic, content-addressed artifacts:
per-document knowledge cards, overlapping text chunks for retrieval,
and a manifest summarising the run.

Re-running over unchanged input reproduces byte-identical identifiers.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default: ~/.docdex)")
}

// Execute runs the root command. Interrupt signals cancel the command
// context so long-running commands (watch) shut down cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// newPipeline wires the pipeline orchestrator from configuration.
// Chunk size and overlap come from flags when set, otherwise from the
// config file defaults.
func newPipeline(cfg *file.Config, size, overlap int) *services.Pipeline {
	registry := readers.NewRegistry(plaintext.New(), pdf.New())
	extractor := services.NewCardExtractor(cfg.ToExtractorConfig())
	engine := services.NewChunkEngine(
		services.WithChunkSize(size),
		services.WithOverlap(overlap),
	)
	return services.NewPipeline(registry, extractor, engine, services.NewManifestBuilder())
}
