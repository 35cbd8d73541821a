// Package plaintext reads plain text and markdown files.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader loads .txt and .md files as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. Markdown is read verbatim: the
// extraction heuristics work on raw text, so formatting markers are
// left in place.
type Reader struct{}

// New creates a plain text reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".txt", ".md"}
}

// Read loads the file at path into a text-kind document with a
// per-line breakdown.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDecodeFailure, path)
	}

	return &domain.Document{
		Kind:       domain.KindText,
		Path:       path,
		Text:       text,
		Lines:      splitLines(text),
		ByteLength: int64(len(data)),
	}, nil
}

// decode interprets data as UTF-8, falling back to Latin-1. Latin-1
// maps every byte to a rune, so the fallback cannot fail; the error
// return exists for future stricter encodings.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// splitLines splits on line endings without keeping them, handling
// both LF and CRLF. Empty text yields no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
