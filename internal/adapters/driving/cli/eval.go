package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex-cli/internal/core/services"
)

var evalCmd = &cobra.Command{
	Use:   "eval [cards.jsonl]",
	Short: "Score a cards artifact for completeness",
	Long: `Reads an existing cards.jsonl file and prints aggregate quality
ratios: field completeness and citation coverage. A missing or empty
file scores zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	report, err := services.NewEvaluator().Evaluate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}

	cmd.Printf("Cards:             %d\n", report.CardCount)
	cmd.Printf("Completeness:      %.2f\n", report.Completeness)
	cmd.Printf("Citation coverage: %.2f\n", report.CitationCoverage)
	return nil
}
