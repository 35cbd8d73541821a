package domain

// DocumentKind discriminates the kind-specific payload of a Document.
// Text documents carry a per-line breakdown, paged documents a per-page one.
type DocumentKind int

const (
	// KindText is a plain text or markdown document. Lines is populated.
	KindText DocumentKind = iota

	// KindPaged is a page-structured document (e.g. PDF). Pages is populated.
	KindPaged
)

// String returns the kind name for logging.
func (k DocumentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPaged:
		return "paged"
	default:
		return "unknown"
	}
}

// Document is a loaded source document as produced by a reader.
// It is transient: the pipeline consumes it once to produce a card
// and chunks, then discards it.
//
// Exactly one of Pages or Lines is populated, according to Kind.
type Document struct {
	// Kind selects which per-format payload is valid.
	Kind DocumentKind

	// Path is the location the document was read from.
	Path string

	// Text is the full extracted text. May be empty.
	Text string

	// Pages holds per-page text for KindPaged documents.
	// A page that failed to extract is present as an empty string.
	Pages []string

	// Lines holds the per-line breakdown for KindText documents.
	Lines []string

	// ByteLength is the size of the source file in bytes.
	ByteLength int64
}

// PageCount returns the number of pages, zero for text documents.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// LineCount returns the number of lines, zero for paged documents.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
