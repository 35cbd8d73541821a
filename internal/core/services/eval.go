package services

import (
	"bufio"
	"context"
	"encoding/json"
	"os"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// Ensure Evaluator implements the interface.
var _ driving.Evaluator = (*Evaluator)(nil)

// fieldsPerCard is the number of scored fields: three required scalars
// (id, title, source_path) and four lists (facts, acronyms, entities,
// citations).
const fieldsPerCard = 7

// Evaluator scores an existing cards artifact for completeness and
// citation coverage. It is a simple aggregate-ratio computation over
// already-produced cards; it never modifies anything.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate reads a cards.jsonl file and returns aggregate ratios.
// A missing, empty or unparseable file scores zero rather than
// erroring: an absent artifact is simply an incomplete one.
func (e *Evaluator) Evaluate(_ context.Context, cardsPath string) (*driving.EvalReport, error) {
	cards, err := readCards(cardsPath)
	if err != nil || len(cards) == 0 {
		return &driving.EvalReport{}, nil
	}

	var filled, withCitations int
	for i := range cards {
		filled += filledFields(&cards[i])
		if len(cards[i].Citations) > 0 {
			withCitations++
		}
	}

	total := len(cards) * fieldsPerCard
	return &driving.EvalReport{
		CardCount:        len(cards),
		Completeness:     float64(filled) / float64(total),
		CitationCoverage: float64(withCitations) / float64(len(cards)),
	}, nil
}

// readCards parses one card per line, skipping blank lines.
func readCards(path string) ([]domain.KnowledgeCard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cards []domain.KnowledgeCard
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var card domain.KnowledgeCard
		if err := json.Unmarshal(line, &card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// filledFields counts the card's non-empty scored fields.
func filledFields(card *domain.KnowledgeCard) int {
	n := 0
	if card.ID != "" {
		n++
	}
	if card.Title != "" {
		n++
	}
	if card.SourcePath != "" {
		n++
	}
	if len(card.Facts) > 0 {
		n++
	}
	if len(card.Acronyms) > 0 {
		n++
	}
	if len(card.Entities) > 0 {
		n++
	}
	if len(card.Citations) > 0 {
		n++
	}
	return n
}
