package categorizer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

// minKeywordScore is the confidence floor: below it a transaction stays
// uncategorized rather than getting a bad guess.
const minKeywordScore = 0.5

// KeywordMatcher scores token overlap between the transaction description
// and the category name. It is the default matcher when no AI backend is
// configured, and needs no network.
type KeywordMatcher struct{}

func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{}
}

func (m *KeywordMatcher) Match(_ context.Context, txs []transaction.CreateParams, catalog []category.Category) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID, len(txs))

	for _, tx := range txs {
		if id, ok := bestMatch(tx, catalog); ok {
			out[tx.ExternalID] = id
		}
	}

	return out, nil
}

func bestMatch(tx transaction.CreateParams, catalog []category.Category) (uuid.UUID, bool) {
	desc := strings.ToLower(tx.Description)
	descTokens := tokenize(desc)

	var bestID uuid.UUID

	bestScore := 0.0

	for _, c := range catalog {
		if !c.Matches(tx.Type) {
			continue
		}

		score := nameScore(desc, descTokens, c.Name)
		if score > bestScore {
			bestScore = score
			bestID = c.ID
		}
	}

	if bestScore < minKeywordScore {
		return uuid.Nil, false
	}

	return bestID, true
}

// nameScore is 1.0 for a whole-name substring hit, else the fraction of
// category-name tokens found in the description.
func nameScore(desc string, descTokens map[string]struct{}, name string) float64 {
	lowered := strings.ToLower(name)
	if strings.Contains(desc, lowered) {
		return 1.0
	}

	nameTokens := tokenize(lowered)
	if len(nameTokens) == 0 {
		return 0
	}

	matched := 0

	for t := range nameTokens {
		if _, ok := descTokens[t]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(nameTokens))
}

func tokenize(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	tokens := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if len(f) < 2 {
			continue
		}

		tokens[f] = struct{}{}
	}

	return tokens
}
