// Package pdf reads page-structured PDF documents through the
// external pdftotext tool (poppler-utils).
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes an external command and returns its stdout.
// Injectable so tests can run without pdftotext installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands through os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, ErrPDFToolNotFound
	}
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

// Reader loads .pdf files as paged documents. pdftotext separates
// pages with form feeds; a page whose extraction produced nothing is
// kept as an empty page so page numbering stays intact.
type Reader struct {
	runner CommandRunner
}

// New creates a PDF reader using the real pdftotext tool.
func New() *Reader {
	return NewWithRunner(execRunner{})
}

// NewWithRunner creates a PDF reader with an injected command runner.
func NewWithRunner(runner CommandRunner) *Reader {
	return &Reader{runner: runner}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".pdf"}
}

// Read extracts the text of the PDF at path into a paged document.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	out, err := r.runner.Run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	pages := splitPages(string(out))

	return &domain.Document{
		Kind:       domain.KindPaged,
		Path:       path,
		Text:       joinPages(pages),
		Pages:      pages,
		ByteLength: info.Size(),
	}, nil
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform hints for installing pdftotext.
func InstallInstructions() string {
	return "pdftotext is part of poppler: brew install poppler (macOS) " +
		"or apt install poppler-utils (Debian/Ubuntu)"
}

// splitPages splits pdftotext output on form feeds. The tool emits a
// trailing form feed after the last page, producing one empty trailing
// element; that artefact is dropped, interior empty pages are kept.
func splitPages(out string) []string {
	if out == "" {
		return nil
	}
	pages := strings.Split(out, "\f")
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	for i, page := range pages {
		pages[i] = strings.TrimSpace(page)
	}
	return pages
}

// joinPages rebuilds the full document text from its pages.
func joinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n"))
}
