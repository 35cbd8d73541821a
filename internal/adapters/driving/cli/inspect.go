package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/config/file"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Build one knowledge card and print it as JSON",
	Long: `Processes a single file and prints its knowledge card as indented
JSON to standard output. No chunk or manifest artifacts are written.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := file.Load(configDir)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	pipeline := newPipeline(cfg, cfg.Chunk.Size, cfg.Chunk.Overlap)
	card, err := pipeline.Inspect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	cmd.Println(string(data))
	return nil
}
