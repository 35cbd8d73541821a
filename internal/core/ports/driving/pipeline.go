package driving

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// BuildResult is the accumulated output of one full pipeline run.
type BuildResult struct {
	// Cards holds one knowledge card per successfully processed document.
	Cards []domain.KnowledgeCard

	// Chunks holds all chunks across all processed documents, in
	// document order.
	Chunks []domain.Chunk

	// Manifest summarises the run.
	Manifest domain.Manifest
}

// PipelineRunner drives the document ingestion pipeline.
type PipelineRunner interface {
	// Build processes every supported document under inputDir in
	// deterministic order and returns the accumulated artifacts.
	// Per-document failures are recorded in the manifest's skip list;
	// Build itself fails only when the input folder cannot be read.
	Build(ctx context.Context, inputDir string) (*BuildResult, error)

	// Inspect processes a single file and returns its knowledge card
	// without producing chunk artifacts.
	Inspect(ctx context.Context, path string) (*domain.KnowledgeCard, error)
}

// EvalReport holds aggregate quality ratios over produced cards.
type EvalReport struct {
	// CardCount is the number of cards evaluated.
	CardCount int

	// Completeness is the ratio of filled fields to expected fields,
	// in [0, 1].
	Completeness float64

	// CitationCoverage is the ratio of cards carrying at least one
	// citation, in [0, 1].
	CitationCoverage float64
}

// Evaluator computes aggregate ratios over an existing cards artifact.
type Evaluator interface {
	// Evaluate reads a cards.jsonl file and scores it. Missing, empty
	// or unparseable input yields a zero report, not an error.
	Evaluate(ctx context.Context, cardsPath string) (*EvalReport, error)
}
