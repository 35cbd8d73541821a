package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineRunner = (*Pipeline)(nil)

// Pipeline orchestrates the ingestion run: it walks the document set
// in deterministic order, derives identities, extracts cards, chunks
// text and aggregates the manifest. Processing is strictly sequential,
// one document at a time, so determinism needs no synchronisation.
type Pipeline struct {
	registry  driven.ReaderRegistry
	extractor *CardExtractor
	engine    *ChunkEngine
	manifest  *ManifestBuilder
}

// NewPipeline creates the pipeline orchestrator.
func NewPipeline(
	registry driven.ReaderRegistry,
	extractor *CardExtractor,
	engine *ChunkEngine,
	manifest *ManifestBuilder,
) *Pipeline {
	return &Pipeline{
		registry:  registry,
		extractor: extractor,
		engine:    engine,
		manifest:  manifest,
	}
}

// Build processes every supported document under inputDir.
//
// A failure inside a single document's processing never aborts the
// run: the document is recorded as skipped and the pipeline moves on.
// Build fails only when the input folder itself cannot be read.
func (p *Pipeline) Build(ctx context.Context, inputDir string) (*driving.BuildResult, error) {
	paths, err := p.registry.Discover(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover input: %w", err)
	}

	results := make([]domain.DocumentResult, 0, len(paths))
	cards := make([]domain.KnowledgeCard, 0, len(paths))
	chunks := []domain.Chunk{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := p.processOne(ctx, path)
		if result.Skipped() {
			logger.Warn("Skipped %s: %s", path, result.SkipReason)
		} else {
			logger.Info("%s %d chunks card_ok", path, len(result.Chunks))
			cards = append(cards, *result.Card)
			chunks = append(chunks, result.Chunks...)
		}
		results = append(results, result)
	}

	return &driving.BuildResult{
		Cards:    cards,
		Chunks:   chunks,
		Manifest: p.manifest.Build(results),
	}, nil
}

// Inspect processes a single file and returns its card only.
func (p *Pipeline) Inspect(ctx context.Context, path string) (*domain.KnowledgeCard, error) {
	reader, ok := p.registry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}

	card, _, _, err := p.processDocument(ctx, reader, path)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// processOne converts any failure inside a single document's
// processing into a skipped result. This is the skip-isolation
// boundary: no error propagates past it.
func (p *Pipeline) processOne(ctx context.Context, path string) domain.DocumentResult {
	reader, ok := p.registry.Lookup(path)
	if !ok {
		return domain.SkippedResult(path, domain.ErrUnsupportedType.Error())
	}

	card, chunks, checksum, err := p.processDocument(ctx, reader, path)
	if err != nil {
		return domain.SkippedResult(path, err.Error())
	}

	return domain.OkResult(path, card, chunks, checksum)
}

// processDocument runs the per-document steps: checksum, identity,
// read, extract, validate, chunk.
func (p *Pipeline) processDocument(
	ctx context.Context,
	reader driven.DocumentReader,
	path string,
) (*domain.KnowledgeCard, []domain.Chunk, string, error) {
	checksum, err := Checksum(path)
	if err != nil {
		return nil, nil, "", err
	}

	canonical, err := CanonicalPath(path)
	if err != nil {
		return nil, nil, "", err
	}
	docID := DocumentID(canonical, checksum)

	doc, err := reader.Read(ctx, path)
	if err != nil {
		return nil, nil, "", err
	}

	card := p.extractor.Extract(doc, docID)
	if err := card.Validate(); err != nil {
		return nil, nil, "", err
	}

	chunks := p.engine.Chunk(doc, docID)
	return &card, chunks, checksum, nil
}
