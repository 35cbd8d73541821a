package services

import (
	"crypto/sha1" //nolint:gosec // Non-adversarial content addressing, not authentication
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Identity is a pure function scheme: identical inputs always produce
// identical ids, so two runs over byte-identical input reproduce the
// same documents and chunks byte for byte.

// DocumentID derives the content-addressed id for a document from its
// canonical path and content checksum. Ids are deliberately
// path-sensitive: the same bytes at two different absolute paths get
// two different ids.
func DocumentID(canonicalPath, checksum string) string {
	return sha1Hex(fmt.Sprintf("%s:%s", canonicalPath, checksum))
}

// ChunkID derives the content-addressed id for a chunk from its
// document id and 1-based ordinal.
func ChunkID(docID string, ordinal int) string {
	return sha1Hex(fmt.Sprintf("%s:%d", docID, ordinal))
}

// CanonicalPath returns the absolute, cleaned form of path used as
// hashing input. Relative spellings of the same file canonicalise to
// the same id input.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("canonicalise %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// Checksum computes the hex content checksum of the file at path,
// streaming so large documents do not load fully into memory.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for checksum: %w", err)
	}
	defer f.Close()

	h := sha1.New() //nolint:gosec // See package note on content addressing
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// sha1Hex returns the hex digest of s.
func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec // See package note on content addressing
	return hex.EncodeToString(sum[:])
}
