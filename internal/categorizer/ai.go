package categorizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

// AIMatcher asks a Gemini model to pick the closest category name for each
// transaction description. The model only ever sees category names from the
// caller's catalog; its answers are resolved back to ids here, so a
// hallucinated name simply leaves the transaction uncategorized.
type AIMatcher struct {
	client *genai.Client
	model  string
}

func NewAIMatcher(client *genai.Client, model string) *AIMatcher {
	return &AIMatcher{client: client, model: model}
}

func (m *AIMatcher) Match(ctx context.Context, txs []transaction.CreateParams, catalog []category.Category) (map[string]uuid.UUID, error) {
	prompt := buildPrompt(txs, catalog)

	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generating matches: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, errors.New("empty response from model")
	}

	var assignments map[string]string
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &assignments); err != nil {
		return nil, fmt.Errorf("unmarshaling model response: %w", err)
	}

	return resolve(assignments, txs, catalog), nil
}

// buildPrompt lists the eligible category names per transaction type and
// the transactions to classify, and demands a strict JSON object back.
func buildPrompt(txs []transaction.CreateParams, catalog []category.Category) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Assign each transaction the best-fitting category.\n\n")
	b.WriteString("Use ONLY the following category names (case-sensitive):\n\n")

	b.WriteString("Expense categories:\n")
	writeNames(&b, catalog, transaction.TypeExpense)

	b.WriteString("\nIncome categories:\n")
	writeNames(&b, catalog, transaction.TypeIncome)

	b.WriteString("\nTransactions (id | type | description):\n")

	for _, tx := range txs {
		fmt.Fprintf(&b, "%s | %s | %s\n", tx.ExternalID, tx.Type, tx.Description)
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- An expense transaction may only get an expense category, an income transaction only an income category.\n")
	b.WriteString("- If no listed category clearly fits, use an empty string \"\".\n")
	b.WriteString("- Return ONLY a valid raw JSON object mapping every transaction id to a category name.\n")
	b.WriteString("- Do NOT wrap the response in code fences or Markdown.\n")
	b.WriteString("- Output must begin with \"{\" and end with \"}\".\n")

	return b.String()
}

func writeNames(b *strings.Builder, catalog []category.Category, t transaction.Type) {
	for _, c := range catalog {
		if c.Matches(t) {
			b.WriteString("- " + c.Name + "\n")
		}
	}
}

// resolve maps the model's category names back to catalog ids, enforcing
// type eligibility regardless of what the model answered.
func resolve(assignments map[string]string, txs []transaction.CreateParams, catalog []category.Category) map[string]uuid.UUID {
	// First occurrence wins so a duplicate name later in the catalog (a
	// shared copy of a personal category, say) cannot shadow the earlier one.
	byName := make(map[string]category.Category, len(catalog))

	for _, c := range catalog {
		key := strings.ToLower(c.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = c
		}
	}

	out := make(map[string]uuid.UUID, len(assignments))

	for _, tx := range txs {
		name := strings.TrimSpace(assignments[tx.ExternalID])
		if name == "" {
			continue
		}

		c, ok := byName[strings.ToLower(name)]
		if !ok || !c.Matches(tx.Type) {
			continue
		}

		out[tx.ExternalID] = c.ID
	}

	return out
}

// cleanModelJSON strips Markdown fences and surrounding junk if the model
// ignored the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}

		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}

		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = s[start : end+1]
		}
	}

	return strings.TrimSpace(s)
}
