package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func textDoc(text string) *domain.Document {
	return &domain.Document{
		Kind: domain.KindText,
		Path: "/docs/sample.txt",
		Text: text,
	}
}

func wordText(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestChunkEngine_Empty(t *testing.T) {
	engine := NewChunkEngine()

	if got := engine.Chunk(textDoc(""), "doc1"); got != nil {
		t.Errorf("expected no chunks for empty text, got %d", len(got))
	}
	if got := engine.Chunk(textDoc("   \n\t  "), "doc1"); got != nil {
		t.Errorf("expected no chunks for whitespace-only text, got %d", len(got))
	}
}

func TestChunkEngine_ShortText(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(10), WithOverlap(3))

	chunks := engine.Chunk(textDoc("just a few words here"), "doc1")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Ordinal != 1 {
		t.Errorf("expected ordinal 1, got %d", chunks[0].Ordinal)
	}
	if chunks[0].Text != "just a few words here" {
		t.Errorf("unexpected chunk text: %q", chunks[0].Text)
	}
	if chunks[0].ID != ChunkID("doc1", 1) {
		t.Errorf("unexpected chunk id: %s", chunks[0].ID)
	}
}

func TestChunkEngine_ExactSize(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(10), WithOverlap(3))

	chunks := engine.Chunk(textDoc(wordText(10)), "doc1")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for text of exactly the window size, got %d", len(chunks))
	}
}

func TestChunkEngine_OneOverSize(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(10), WithOverlap(3))

	chunks := engine.Chunk(textDoc(wordText(11)), "doc1")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks for text one word over the window size, got %d", len(chunks))
	}
}

func TestChunkEngine_OverlapWindows(t *testing.T) {
	// 8 words, windows of 5 with overlap 2: words 0..4, then 3..7.
	engine := NewChunkEngine(WithChunkSize(5), WithOverlap(2))

	chunks := engine.Chunk(textDoc("a b c d e f g h"), "doc1")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "a b c d e" {
		t.Errorf("unexpected first window: %q", chunks[0].Text)
	}
	if chunks[1].Text != "d e f g h" {
		t.Errorf("unexpected second window: %q", chunks[1].Text)
	}
}

func TestChunkEngine_OrdinalsContiguous(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(5), WithOverlap(1))

	chunks := engine.Chunk(textDoc(wordText(30)), "doc1")
	if len(chunks) < 3 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Ordinal != i+1 {
			t.Errorf("chunk %d has ordinal %d, want %d", i, c.Ordinal, i+1)
		}
		if c.ID != ChunkID("doc1", i+1) {
			t.Errorf("chunk %d has id %s, want %s", i, c.ID, ChunkID("doc1", i+1))
		}
		if c.DocID != "doc1" {
			t.Errorf("chunk %d has doc id %s", i, c.DocID)
		}
	}
}

func TestChunkEngine_CoversAllWords(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(7), WithOverlap(2))
	text := wordText(25)

	chunks := engine.Chunk(textDoc(text), "doc1")

	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(last.Text, "w24") {
		t.Errorf("final chunk must reach the last word, got %q", last.Text)
	}
}

func TestNewChunkEngine_ClampsOverlap(t *testing.T) {
	engine := NewChunkEngine(WithChunkSize(100), WithOverlap(100))
	if engine.Overlap() != 25 {
		t.Errorf("overlap at window size must clamp to a quarter, got %d", engine.Overlap())
	}

	engine = NewChunkEngine(WithChunkSize(100), WithOverlap(150))
	if engine.Overlap() != 25 {
		t.Errorf("overlap above window size must clamp to a quarter, got %d", engine.Overlap())
	}
}

func TestNewChunkEngine_Defaults(t *testing.T) {
	engine := NewChunkEngine()
	if engine.Size() != DefaultChunkSize {
		t.Errorf("expected default size %d, got %d", DefaultChunkSize, engine.Size())
	}
	if engine.Overlap() != DefaultChunkOverlap {
		t.Errorf("expected default overlap %d, got %d", DefaultChunkOverlap, engine.Overlap())
	}

	// Non-positive values fall back to the defaults.
	engine = NewChunkEngine(WithChunkSize(0), WithOverlap(-1))
	if engine.Size() != DefaultChunkSize || engine.Overlap() != DefaultChunkOverlap {
		t.Errorf("invalid options must keep defaults, got size=%d overlap=%d", engine.Size(), engine.Overlap())
	}
}
