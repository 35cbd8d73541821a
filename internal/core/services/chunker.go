package services

import (
	"strings"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// DefaultChunkSize is the default window size in words.
const DefaultChunkSize = 800

// DefaultChunkOverlap is the default overlap between windows in words.
const DefaultChunkOverlap = 120

// ChunkEngine splits document text into overlapping word windows with
// stable, content-addressed ids.
type ChunkEngine struct {
	size    int
	overlap int
}

// ChunkOption configures the chunk engine.
type ChunkOption func(*ChunkEngine)

// WithChunkSize sets the window size in words.
func WithChunkSize(size int) ChunkOption {
	return func(e *ChunkEngine) {
		if size > 0 {
			e.size = size
		}
	}
}

// WithOverlap sets the overlap between windows in words.
func WithOverlap(overlap int) ChunkOption {
	return func(e *ChunkEngine) {
		if overlap >= 0 {
			e.overlap = overlap
		}
	}
}

// NewChunkEngine creates a chunk engine with the given options.
// An overlap at or above the window size would keep the window from
// ever advancing, so it is clamped to a quarter of the size.
func NewChunkEngine(opts ...ChunkOption) *ChunkEngine {
	e := &ChunkEngine{
		size:    DefaultChunkSize,
		overlap: DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.overlap >= e.size {
		e.overlap = e.size / 4
	}

	return e
}

// Size returns the configured window size in words.
func (e *ChunkEngine) Size() int {
	return e.size
}

// Overlap returns the configured overlap in words.
func (e *ChunkEngine) Overlap() int {
	return e.overlap
}

// Chunk splits the document into ordered chunks. Empty text produces
// no chunks; text of up to Size words produces exactly one. Longer
// text is covered by sliding windows where window n+1 starts overlap
// words before the end of window n. Ordinals are contiguous from 1.
func (e *ChunkEngine) Chunk(doc *domain.Document, docID string) []domain.Chunk {
	words := strings.Fields(doc.Text)
	if len(words) == 0 {
		return nil
	}

	if len(words) <= e.size {
		return []domain.Chunk{{
			ID:         ChunkID(docID, 1),
			DocID:      docID,
			Ordinal:    1,
			Text:       strings.Join(words, " "),
			SourcePath: doc.Path,
		}}
	}

	chunks := make([]domain.Chunk, 0, len(words)/(e.size-e.overlap)+1)
	ordinal := 1
	start := 0

	for start < len(words) {
		end := start + e.size
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, domain.Chunk{
			ID:         ChunkID(docID, ordinal),
			DocID:      docID,
			Ordinal:    ordinal,
			Text:       strings.Join(words[start:end], " "),
			SourcePath: doc.Path,
		})

		// A window that reached the end covers the remainder; emitting
		// another would repeat the tail under a new ordinal.
		if end >= len(words) {
			break
		}

		start = end - e.overlap
		ordinal++
	}

	return chunks
}
