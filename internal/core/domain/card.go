package domain

// MaxFacts is the upper bound on facts a well-formed card may carry.
// The extractor caps its own output; validation enforces the bound a
// second time so that extraction bugs surface as rejected cards rather
// than silently truncated ones.
const MaxFacts = 5

// Citation points from extracted knowledge back to its source document.
type Citation struct {
	// DocID is the id of the card this citation belongs to.
	DocID string `json:"doc_id"`

	// SourcePath is the path of the source file.
	SourcePath string `json:"source_path"`

	// TextExcerpt is at most 200 characters of source text, with a
	// truncation marker appended when the source was longer.
	TextExcerpt string `json:"text_excerpt"`

	// Page is the 1-based page number, if applicable.
	Page *int `json:"page,omitempty"`

	// Line is the 1-based line number, if applicable.
	Line *int `json:"line,omitempty"`
}

// KnowledgeCard is the structured per-document summary record.
// It is created once per document and immutable thereafter.
type KnowledgeCard struct {
	// ID is the content-addressed document id, unique within a run.
	ID string `json:"id"`

	// Title is the source filename without extension.
	Title string `json:"title"`

	// Date is an optional document date found in the filename.
	Date string `json:"date,omitempty"`

	// SourcePath is the path of the source file.
	SourcePath string `json:"source_path"`

	// Facts holds at most MaxFacts extracted sentences, in source order.
	Facts []string `json:"facts"`

	// Acronyms holds deduplicated uppercase runs found in the text.
	Acronyms []string `json:"acronyms"`

	// Entities holds deduplicated capitalised word runs found in the text.
	Entities []string `json:"entities"`

	// Citations is non-empty for every well-formed card.
	Citations []Citation `json:"citations"`
}

// Validate reports whether the card is well-formed: id, title and source
// path present, and the facts bound respected. Malformed cards are
// rejected by the pipeline, not repaired.
func (c *KnowledgeCard) Validate() error {
	if c.ID == "" || c.Title == "" || c.SourcePath == "" {
		return ErrMalformedCard
	}
	if len(c.Facts) > MaxFacts {
		return ErrMalformedCard
	}
	return nil
}
