package readers

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ReaderRegistry = (*Registry)(nil)

// Registry maps file extensions to readers and enumerates the
// supported files of an input folder.
type Registry struct {
	byExt map[string]driven.DocumentReader
}

// NewRegistry creates a registry over the given readers. A later
// reader claiming an extension already registered wins; in practice
// extensions are disjoint.
func NewRegistry(readers ...driven.DocumentReader) *Registry {
	byExt := make(map[string]driven.DocumentReader)
	for _, r := range readers {
		for _, ext := range r.Extensions() {
			byExt[strings.ToLower(ext)] = r
		}
	}
	return &Registry{byExt: byExt}
}

// Lookup returns the reader for the path's extension.
func (r *Registry) Lookup(path string) (driven.DocumentReader, bool) {
	reader, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return reader, ok
}

// Discover walks root recursively and returns every supported file,
// sorted lexicographically by path. The sort fixes the processing
// order of a run; files with unsupported extensions are silently left
// out.
func (r *Registry) Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := r.Lookup(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
