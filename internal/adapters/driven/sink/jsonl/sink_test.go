package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	require.NoError(t, scanner.Err())
	return n
}

func TestWriteCards(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	cards := []domain.KnowledgeCard{
		{
			ID:         "doc1",
			Title:      "alpha",
			SourcePath: "/docs/alpha.txt",
			Facts:      []string{"a fact"},
			Acronyms:   []string{"ML"},
			Entities:   []string{"Alice"},
			Citations: []domain.Citation{
				{DocID: "doc1", SourcePath: "/docs/alpha.txt", TextExcerpt: "a fact"},
			},
		},
		{ID: "doc2", Title: "beta", SourcePath: "/docs/beta.txt"},
	}
	require.NoError(t, sink.WriteCards(context.Background(), cards))

	path := filepath.Join(dir, CardsFile)
	assert.Equal(t, 2, countLines(t, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var first domain.KnowledgeCard
	require.NoError(t, json.NewDecoder(f).Decode(&first))
	assert.Equal(t, cards[0], first)
}

func TestWriteChunks(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	chunks := []domain.Chunk{
		{ID: "c1", DocID: "doc1", Ordinal: 1, Text: "window one", SourcePath: "/docs/a.txt"},
		{ID: "c2", DocID: "doc1", Ordinal: 2, Text: "window two", SourcePath: "/docs/a.txt"},
		{ID: "c3", DocID: "doc2", Ordinal: 1, Text: "window one", SourcePath: "/docs/b.txt"},
	}
	require.NoError(t, sink.WriteChunks(context.Background(), chunks))

	assert.Equal(t, 3, countLines(t, filepath.Join(dir, ChunksFile)))
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	manifest := &domain.Manifest{
		RunID:          "run-1",
		TotalDocuments: 2,
		TotalCards:     1,
		TotalChunks:    3,
		SkippedFiles:   []string{"/docs/bad.pdf"},
		Checksums:      map[string]string{"/docs/a.txt": "aaa"},
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, sink.WriteManifest(context.Background(), manifest))

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)

	var got domain.Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *manifest, got)
}

func TestWrite_ReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	many := make([]domain.Chunk, 5)
	require.NoError(t, sink.WriteChunks(context.Background(), many))
	require.NoError(t, sink.WriteChunks(context.Background(), many[:2]))

	assert.Equal(t, 2, countLines(t, filepath.Join(dir, ChunksFile)))
}

func TestWrite_EmptyRun(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.WriteCards(context.Background(), nil))
	require.NoError(t, sink.WriteChunks(context.Background(), nil))

	// Empty artifacts still exist so downstream consumers find them.
	assert.Equal(t, 0, countLines(t, filepath.Join(dir, CardsFile)))
	assert.Equal(t, 0, countLines(t, filepath.Join(dir, ChunksFile)))
}

func TestNewSink_CreatesFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink, err := NewSink(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, sink.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
