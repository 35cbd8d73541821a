package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// ManifestBuilder aggregates per-document results into the run
// manifest.
type ManifestBuilder struct {
	clock func() time.Time
}

// ManifestOption configures the manifest builder.
type ManifestOption func(*ManifestBuilder)

// WithClock overrides the timestamp source. Useful for testing.
func WithClock(clock func() time.Time) ManifestOption {
	return func(b *ManifestBuilder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// NewManifestBuilder creates a manifest builder.
func NewManifestBuilder(opts ...ManifestOption) *ManifestBuilder {
	b := &ManifestBuilder{clock: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build aggregates totals, checksums and the skip list from results,
// which must be in the pipeline's deterministic processing order. The
// manifest's skip list preserves that order.
func (b *ManifestBuilder) Build(results []domain.DocumentResult) domain.Manifest {
	manifest := domain.Manifest{
		RunID:          uuid.New().String(),
		TotalDocuments: len(results),
		SkippedFiles:   []string{},
		Checksums:      make(map[string]string, len(results)),
		CreatedAt:      b.clock(),
	}

	for i := range results {
		r := &results[i]
		if r.Skipped() {
			manifest.SkippedFiles = append(manifest.SkippedFiles, r.Path)
			continue
		}
		manifest.TotalCards++
		manifest.TotalChunks += len(r.Chunks)
		manifest.Checksums[r.Path] = r.Checksum
	}

	return manifest
}
