package importofx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/bankaccount"
	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/http/middleware"
	"github.com/budgetron-org/budgetron-sub001/internal/importer"
	"github.com/budgetron-org/budgetron-sub001/internal/statement"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Handler struct {
	importSvc   *importer.Service
	txSvc       *transaction.Service
	accountSvc  *bankaccount.Service
	categorySvc *category.Service
	maxBytes    int64
}

func NewHandler(
	importSvc *importer.Service,
	txSvc *transaction.Service,
	accountSvc *bankaccount.Service,
	categorySvc *category.Service,
	maxBytes int64,
) *Handler {
	return &Handler{
		importSvc:   importSvc,
		txSvc:       txSvc,
		accountSvc:  accountSvc,
		categorySvc: categorySvc,
		maxBytes:    maxBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	ExternalID  string           `json:"external_id"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Currency    string           `json:"currency"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type importSuccessResponse struct {
	Kind         statement.Kind        `json:"kind"`
	Currency     string                `json:"currency"`
	Imported     int                   `json:"imported"`
	Categorized  int                   `json:"categorized"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("bank_account_id"))
	if err != nil {
		http.Error(w, "bank_account_id field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".ofx" && ext != ".qfx" {
		http.Error(w, "expected an .ofx or .qfx file", http.StatusBadRequest)
		return
	}

	ictx, err := h.accountSvc.ImportContextFor(r.Context(), accountID, userID)
	if err != nil {
		if errors.Is(err, bankaccount.ErrNotFound) {
			http.Error(w, "bank account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	catalog, err := h.categorySvc.CatalogFor(r.Context(), userID, ictx.GroupID)
	if err != nil {
		// A missing catalog only costs auto-categorization, not the import.
		slog.Warn("failed to load category catalog", "error", err)

		catalog = nil
	}

	result, err := h.importSvc.Import(r.Context(), file, ictx, catalog)
	if err != nil {
		var parseErr *statement.ParseError
		if errors.As(err, &parseErr) {
			http.Error(w, "file could not be read as a bank or credit-card statement", http.StatusBadRequest)
			return
		}

		var validationErr *transaction.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	txs, err := h.txSvc.ImportBatch(r.Context(), result.Params)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := importSuccessResponse{
		Kind:         result.Kind,
		Currency:     result.Currency,
		Imported:     len(txs),
		Categorized:  result.Categorized,
		Transactions: make([]transactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTxResponse(tx))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toTxResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		ExternalID:  tx.ExternalID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Currency:    tx.Currency,
		Description: tx.Description,
		Date:        tx.Date,
		CategoryID:  tx.CategoryID,
		CreatedAt:   tx.CreatedAt,
	}
}
