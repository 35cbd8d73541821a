package services

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// Extraction patterns. Acronyms are maximal runs of two or more
// uppercase letters; entities are runs of capitalised words; the date
// pattern matches ISO dates, day-first dates and bare years in
// filenames.
var (
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	entityPattern  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	datePattern    = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}|\d{2}-\d{2}-\d{4}|\d{4})`)
)

// ExtractorConfig lifts the extraction thresholds into an explicit
// value so they are testable and overridable rather than buried as
// module constants.
type ExtractorConfig struct {
	// MaxFacts caps the number of facts per card.
	MaxFacts int

	// MinFactLength discards sentences at or under this many characters.
	MinFactLength int

	// ExcerptLength is the citation excerpt cap in characters.
	ExcerptLength int

	// TruncationMarker is appended to excerpts cut at ExcerptLength.
	TruncationMarker string
}

// DefaultExtractorConfig returns the standard thresholds.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxFacts:         domain.MaxFacts,
		MinFactLength:    20,
		ExcerptLength:    200,
		TruncationMarker: "...",
	}
}

// CardExtractor derives a knowledge card from document text using
// pattern heuristics. It is a pure function over its inputs: no file
// access, no state beyond configuration.
type CardExtractor struct {
	cfg ExtractorConfig
}

// NewCardExtractor creates an extractor with the given thresholds.
// Zero or negative values fall back to the defaults.
func NewCardExtractor(cfg ExtractorConfig) *CardExtractor {
	def := DefaultExtractorConfig()
	if cfg.MaxFacts <= 0 {
		cfg.MaxFacts = def.MaxFacts
	}
	if cfg.MinFactLength <= 0 {
		cfg.MinFactLength = def.MinFactLength
	}
	if cfg.ExcerptLength <= 0 {
		cfg.ExcerptLength = def.ExcerptLength
	}
	if cfg.TruncationMarker == "" {
		cfg.TruncationMarker = def.TruncationMarker
	}
	return &CardExtractor{cfg: cfg}
}

// Extract builds the knowledge card for a document. The card's id must
// already be derived by the identity scheme; Extract never invents
// identifiers.
func (e *CardExtractor) Extract(doc *domain.Document, docID string) domain.KnowledgeCard {
	return domain.KnowledgeCard{
		ID:         docID,
		Title:      titleFromPath(doc.Path),
		Date:       dateFromFilename(doc.Path),
		SourcePath: doc.Path,
		Facts:      e.Facts(doc.Text),
		Acronyms:   Acronyms(doc.Text),
		Entities:   Entities(doc.Text),
		Citations: []domain.Citation{
			{
				DocID:       docID,
				SourcePath:  doc.Path,
				TextExcerpt: e.Excerpt(doc.Text),
			},
		},
	}
}

// Facts splits text on sentence-terminating periods, trims whitespace,
// discards short sentences and keeps the first MaxFacts in source
// order. This is a rubric heuristic, not summarisation.
func (e *CardExtractor) Facts(text string) []string {
	facts := []string{}
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) <= e.cfg.MinFactLength {
			continue
		}
		facts = append(facts, sentence)
		if len(facts) == e.cfg.MaxFacts {
			break
		}
	}
	return facts
}

// Excerpt returns the first ExcerptLength characters of text with the
// truncation marker appended, or the full text when it fits. The cap
// counts characters, not bytes: a byte slice could cut mid-rune and
// leave the excerpt as invalid UTF-8.
func (e *CardExtractor) Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > e.cfg.ExcerptLength {
		return string(runes[:e.cfg.ExcerptLength]) + e.cfg.TruncationMarker
	}
	return text
}

// Acronyms extracts all maximal uppercase runs of length >= 2,
// deduplicated. The result is sorted: the card's acronym set has set
// semantics, and sorting keeps output bytes reproducible across runs.
func Acronyms(text string) []string {
	return dedupeSorted(acronymPattern.FindAllString(text, -1))
}

// Entities extracts all maximal capitalised word runs, deduplicated
// and sorted for the same reproducibility reason as Acronyms.
func Entities(text string) []string {
	return dedupeSorted(entityPattern.FindAllString(text, -1))
}

// titleFromPath returns the filename without its extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// dateFromFilename returns the first date-looking token in the
// filename, or empty when none is present.
func dateFromFilename(path string) string {
	return datePattern.FindString(filepath.Base(path))
}

// dedupeSorted removes duplicates and sorts the remainder.
func dedupeSorted(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
