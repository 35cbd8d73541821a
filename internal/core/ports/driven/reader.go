package driven

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// DocumentReader turns a file on disk into a domain.Document.
// Each reader handles a fixed set of file extensions. How a particular
// binary format is parsed is the reader's concern; the pipeline only
// sees the resulting Document.
type DocumentReader interface {
	// Extensions returns the lowercase file extensions this reader
	// handles, including the leading dot.
	Extensions() []string

	// Read loads the file at path. Failures are recoverable at the
	// per-document level: the pipeline records them as skips.
	Read(ctx context.Context, path string) (*domain.Document, error)
}

// ReaderRegistry selects readers by file extension and enumerates
// the supported files of an input folder.
type ReaderRegistry interface {
	// Lookup returns the reader for the path's extension.
	Lookup(path string) (DocumentReader, bool)

	// Discover walks root recursively and returns the supported files
	// sorted lexicographically by path. Unsupported files are not
	// enumerated. The sort order fixes the processing order of a run.
	Discover(root string) ([]string, error)
}
