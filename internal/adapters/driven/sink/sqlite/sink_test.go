package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	sink, err := NewSink(filepath.Join(t.TempDir(), "docdex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	return sink
}

func countRows(t *testing.T, s *Sink, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestWriteCards(t *testing.T) {
	sink := newTestSink(t)

	cards := []domain.KnowledgeCard{
		{
			ID:         "doc1",
			Title:      "alpha",
			Date:       "2024-03-15",
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
	assert.Equal(t, 2, countRows(t, sink, "cards"))

	var title, facts string
	require.NoError(t, sink.db.QueryRow(
		"SELECT title, facts FROM cards WHERE id = ?", "doc1",
	).Scan(&title, &facts))
	assert.Equal(t, "alpha", title)
	assert.JSONEq(t, `["a fact"]`, facts)
}

func TestWriteCards_Upsert(t *testing.T) {
	sink := newTestSink(t)

	card := domain.KnowledgeCard{ID: "doc1", Title: "before", SourcePath: "/docs/a.txt"}
	require.NoError(t, sink.WriteCards(context.Background(), []domain.KnowledgeCard{card}))

	card.Title = "after"
	require.NoError(t, sink.WriteCards(context.Background(), []domain.KnowledgeCard{card}))

	assert.Equal(t, 1, countRows(t, sink, "cards"))

	var title string
	require.NoError(t, sink.db.QueryRow("SELECT title FROM cards WHERE id = ?", "doc1").Scan(&title))
	assert.Equal(t, "after", title)
}

func TestWriteChunks(t *testing.T) {
	sink := newTestSink(t)
	page := 2

	// Chunks reference their card row, so the card goes in first.
	require.NoError(t, sink.WriteCards(context.Background(),
		[]domain.KnowledgeCard{{ID: "doc1", Title: "a", SourcePath: "/docs/a.txt"}}))

	chunks := []domain.Chunk{
		{ID: "c1", DocID: "doc1", Ordinal: 1, Text: "window one", SourcePath: "/docs/a.txt"},
		{ID: "c2", DocID: "doc1", Ordinal: 2, Text: "window two", SourcePath: "/docs/a.txt", Page: &page},
	}
	require.NoError(t, sink.WriteChunks(context.Background(), chunks))
	assert.Equal(t, 2, countRows(t, sink, "chunks"))

	var gotPage *int
	require.NoError(t, sink.db.QueryRow("SELECT page FROM chunks WHERE id = ?", "c1").Scan(&gotPage))
	assert.Nil(t, gotPage)

	require.NoError(t, sink.db.QueryRow("SELECT page FROM chunks WHERE id = ?", "c2").Scan(&gotPage))
	require.NotNil(t, gotPage)
	assert.Equal(t, 2, *gotPage)
}

func TestWriteManifest(t *testing.T) {
	sink := newTestSink(t)

	manifest := &domain.Manifest{
		RunID:          "run-1",
		TotalDocuments: 3,
		TotalCards:     2,
		TotalChunks:    7,
		SkippedFiles:   []string{"/docs/bad.pdf"},
		Checksums:      map[string]string{"/docs/a.txt": "aaa"},
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, sink.WriteManifest(context.Background(), manifest))
	assert.Equal(t, 1, countRows(t, sink, "manifests"))

	var totalCards int
	var skipped string
	require.NoError(t, sink.db.QueryRow(
		"SELECT total_cards, skipped_files FROM manifests WHERE run_id = ?", "run-1",
	).Scan(&totalCards, &skipped))
	assert.Equal(t, 2, totalCards)
	assert.JSONEq(t, `["/docs/bad.pdf"]`, skipped)
}

func TestWriteManifest_PerRunRows(t *testing.T) {
	sink := newTestSink(t)

	require.NoError(t, sink.WriteManifest(context.Background(), &domain.Manifest{RunID: "run-1"}))
	require.NoError(t, sink.WriteManifest(context.Background(), &domain.Manifest{RunID: "run-2"}))

	assert.Equal(t, 2, countRows(t, sink, "manifests"))
}

func TestNewSink_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docdex.db")

	first, err := NewSink(path)
	require.NoError(t, err)
	require.NoError(t, first.WriteCards(context.Background(),
		[]domain.KnowledgeCard{{ID: "doc1", Title: "t", SourcePath: "/docs/a.txt"}}))
	require.NoError(t, first.Close())

	// Migrations are idempotent across reopens.
	second, err := NewSink(path)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, 1, countRows(t, second, "cards"))
}
