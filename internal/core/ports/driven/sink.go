package driven

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// ArtifactSink persists the three run artifacts. Sink failures are the
// only fatal errors of a run: the pipeline isolates per-document
// failures, but an unwritable destination aborts.
type ArtifactSink interface {
	// WriteCards persists the knowledge cards.
	WriteCards(ctx context.Context, cards []domain.KnowledgeCard) error

	// WriteChunks persists the chunks.
	WriteChunks(ctx context.Context, chunks []domain.Chunk) error

	// WriteManifest persists the run manifest.
	WriteManifest(ctx context.Context, manifest *domain.Manifest) error

	// Close releases resources.
	Close() error
}
