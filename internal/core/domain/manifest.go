package domain

import "time"

// Manifest summarises a single pipeline run: what was processed,
// skipped and produced. Built once after all documents are handled.
type Manifest struct {
	// RunID labels this run. Unlike document and chunk ids it is not
	// content-addressed; identical inputs still get fresh run ids.
	RunID string `json:"run_id"`

	// TotalDocuments is the number of documents discovered.
	TotalDocuments int `json:"total_documents"`

	// TotalCards is the number of cards emitted. Always <= TotalDocuments.
	TotalCards int `json:"total_cards"`

	// TotalChunks is the sum of chunks across all processed documents.
	TotalChunks int `json:"total_chunks"`

	// SkippedFiles lists paths that failed processing, in discovery order.
	SkippedFiles []string `json:"skipped_files"`

	// Checksums maps each processed path to its content checksum.
	Checksums map[string]string `json:"checksums"`

	// CreatedAt is when the manifest was built.
	CreatedAt time.Time `json:"created_at"`
}
