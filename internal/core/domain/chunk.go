package domain

// Chunk is a contiguous, possibly overlapping window of words from a
// document, used as a downstream retrieval unit.
type Chunk struct {
	// ID is the content-addressed chunk id, unique within a run.
	ID string `json:"id"`

	// DocID references the card produced for the same document.
	DocID string `json:"doc_id"`

	// Ordinal is the 1-based position of the chunk within its document.
	// Ordinals are contiguous: 1..N with no gaps or repeats.
	Ordinal int `json:"ordinal"`

	// Text is the space-joined words of the window. Never empty.
	Text string `json:"text"`

	// SourcePath is inherited from the document.
	SourcePath string `json:"source_path"`

	// Page is the 1-based page number, if applicable.
	Page *int `json:"page,omitempty"`

	// LineStart is the 1-based first line covered, if applicable.
	LineStart *int `json:"line_start,omitempty"`

	// LineEnd is the 1-based last line covered, if applicable.
	// When both are set, LineEnd >= LineStart.
	LineEnd *int `json:"line_end,omitempty"`
}
