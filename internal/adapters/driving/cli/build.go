package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/sink/jsonl"
	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/sink/sqlite"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// DatabaseFile is the SQLite artifact name within the output folder.
const DatabaseFile = "docdex.db"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build cards, chunks and a manifest from an input folder",
	Long: `Processes every supported document under the input folder in
deterministic order and writes cards.jsonl, chunks.jsonl and
manifest.json to the output folder.

A document that fails to process is recorded in the manifest's skip
list and does not abort the run.`,
	RunE: runBuild,
}

var (
	buildIn        string
	buildOut       string
	buildChunkSize int
	buildOverlap   int
	buildDB        bool
)

func init() {
	buildCmd.Flags().StringVar(&buildIn, "in", "", "Input folder containing documents")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output folder for artifacts")
	buildCmd.Flags().IntVar(&buildChunkSize, "chunk-size", 0, "Chunk size in words (default from config, 800)")
	buildCmd.Flags().IntVar(&buildOverlap, "overlap", -1, "Chunk overlap in words (default from config, 120)")
	buildCmd.Flags().BoolVar(&buildDB, "db", false, "Also write artifacts to a SQLite database")
	_ = buildCmd.MarkFlagRequired("in")
	_ = buildCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	result, err := runPipeline(cmd.Context(), buildIn, buildChunkSize, buildOverlap)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if err := writeArtifacts(cmd.Context(), result, buildOut, buildDB); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Build complete: %d cards, %d chunks, %d skipped -> %s\n",
		result.Manifest.TotalCards, result.Manifest.TotalChunks,
		len(result.Manifest.SkippedFiles), buildOut)
	return nil
}

// runPipeline loads configuration and runs a full build over inputDir.
func runPipeline(ctx context.Context, inputDir string, size, overlap int) (*driving.BuildResult, error) {
	cfg, err := file.Load(configDir)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = cfg.Chunk.Size
	}
	if overlap < 0 {
		overlap = cfg.Chunk.Overlap
	}

	return newPipeline(cfg, size, overlap).Build(ctx, inputDir)
}

// writeArtifacts persists the build result. Sink failures are the only
// fatal errors of a run.
func writeArtifacts(ctx context.Context, result *driving.BuildResult, outDir string, withDB bool) error {
	jsonlSink, err := jsonl.NewSink(outDir)
	if err != nil {
		return err
	}
	if err := writeAll(ctx, jsonlSink, result); err != nil {
		return err
	}

	if !withDB {
		return nil
	}

	dbSink, err := sqlite.NewSink(filepath.Join(outDir, DatabaseFile))
	if err != nil {
		return err
	}
	defer dbSink.Close()
	return writeAll(ctx, dbSink, result)
}

// writeAll writes all three artifacts through one sink.
func writeAll(ctx context.Context, sink driven.ArtifactSink, result *driving.BuildResult) error {
	if err := sink.WriteCards(ctx, result.Cards); err != nil {
		return err
	}
	if err := sink.WriteChunks(ctx, result.Chunks); err != nil {
		return err
	}
	return sink.WriteManifest(ctx, &result.Manifest)
}
