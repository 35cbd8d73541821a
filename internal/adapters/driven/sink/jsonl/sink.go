// Package jsonl persists run artifacts as JSON Lines files plus a
// single JSON manifest, the primary output format of docdex.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ArtifactSink = (*Sink)(nil)

// Artifact file names within the output folder.
const (
	CardsFile    = "cards.jsonl"
	ChunksFile   = "chunks.jsonl"
	ManifestFile = "manifest.json"
)

// Sink writes cards.jsonl, chunks.jsonl and manifest.json into an
// output folder. Each Write replaces the target file whole; docdex
// runs are full reprocesses, never appends.
type Sink struct {
	dir string
}

// NewSink creates a sink rooted at dir, creating the folder if needed.
// Inability to create the folder is fatal to the run.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}
	return &Sink{dir: dir}, nil
}

// WriteCards writes one card per line to cards.jsonl.
func (s *Sink) WriteCards(_ context.Context, cards []domain.KnowledgeCard) error {
	return writeLines(filepath.Join(s.dir, CardsFile), len(cards), func(i int) any {
		return cards[i]
	})
}

// WriteChunks writes one chunk per line to chunks.jsonl.
func (s *Sink) WriteChunks(_ context.Context, chunks []domain.Chunk) error {
	return writeLines(filepath.Join(s.dir, ChunksFile), len(chunks), func(i int) any {
		return chunks[i]
	})
}

// WriteManifest writes the manifest as a single indented JSON document.
func (s *Sink) WriteManifest(_ context.Context, manifest *domain.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.dir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Close releases resources. The JSONL sink holds none between writes.
func (s *Sink) Close() error {
	return nil
}

// Path returns the output folder.
func (s *Sink) Path() string {
	return s.dir
}

// writeLines streams n records through a buffered writer, one JSON
// object per line.
func writeLines(path string, n int, record func(int) any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := 0; i < n; i++ {
		if err := enc.Encode(record(i)); err != nil {
			f.Close()
			return fmt.Errorf("encode record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
