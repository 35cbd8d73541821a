package domain

// DocumentResult is the per-document outcome of one pipeline step.
// The skip policy is explicit data flow: a failed document yields a
// Skipped result instead of an error escaping its processing boundary.
type DocumentResult struct {
	// Path is the document path, set for both outcomes.
	Path string

	// Card is the knowledge card, nil when the document was skipped.
	Card *KnowledgeCard

	// Chunks are the document's chunks, nil when skipped.
	Chunks []Chunk

	// Checksum is the content checksum, empty when skipped.
	Checksum string

	// SkipReason explains why the document was skipped, empty on success.
	SkipReason string
}

// OkResult builds a successful per-document result.
func OkResult(path string, card *KnowledgeCard, chunks []Chunk, checksum string) DocumentResult {
	return DocumentResult{
		Path:     path,
		Card:     card,
		Chunks:   chunks,
		Checksum: checksum,
	}
}

// SkippedResult builds a skipped per-document result.
func SkippedResult(path, reason string) DocumentResult {
	return DocumentResult{
		Path:       path,
		SkipReason: reason,
	}
}

// Skipped reports whether the document failed processing.
func (r *DocumentResult) Skipped() bool {
	return r.Card == nil
}
