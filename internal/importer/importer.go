// Package importer composes the statement import pipeline: parse the
// uploaded OFX/QFX file, normalize its transactions, categorize them, and
// hand the merged batch back for persistence.
package importer

import (
	"context"
	"io"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/categorizer"
	"github.com/budgetron-org/budgetron-sub001/internal/statement"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Service struct {
	reader      *statement.Reader
	normalizer  *transaction.Normalizer
	categorizer *categorizer.Service
}

func NewService(reader *statement.Reader, normalizer *transaction.Normalizer, categorizer *categorizer.Service) *Service {
	return &Service{
		reader:      reader,
		normalizer:  normalizer,
		categorizer: categorizer,
	}
}

// Result is the in-memory outcome of one import, ready for persistence.
// Nothing has been written yet when it is returned.
type Result struct {
	Kind        statement.Kind
	Currency    string
	Params      []transaction.CreateParams
	Categorized int
}

// Import runs the pipeline on one uploaded file. Parse and validation
// failures abort with an error; a categorization failure does not, the
// batch just comes back uncategorized.
func (s *Service) Import(ctx context.Context, r io.Reader, ictx transaction.ImportContext, catalog []category.Category) (*Result, error) {
	doc, err := s.reader.Read(r)
	if err != nil {
		return nil, err
	}

	params, err := s.normalizer.Normalize(doc, ictx)
	if err != nil {
		return nil, err
	}

	matches := s.categorizer.Categorize(ctx, params, catalog)

	// Merge by external id: the matcher may have batched or reordered,
	// so index-based merging would be wrong.
	categorized := 0

	for i := range params {
		if id, ok := matches[params[i].ExternalID]; ok {
			catID := id
			params[i].CategoryID = &catID
			categorized++
		}
	}

	return &Result{
		Kind:        doc.Kind,
		Currency:    doc.Currency,
		Params:      params,
		Categorized: categorized,
	}, nil
}
