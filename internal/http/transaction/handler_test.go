package transaction_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/http/middleware"
	handler "github.com/budgetron-org/budgetron-sub001/internal/http/transaction"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

const testSecret = "test-secret"

func bearerFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return "Bearer " + token
}

func newRouter(repo transaction.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/transactions", func(r chi.Router) {
		r.Use(middleware.Auth(testSecret))
		handler.NewHandler(transaction.NewService(repo)).Routes(r)
	})

	return r
}

func TestHandler_ScopesToAuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	// Every call carries the token's subject; the repository answers not
	// found for ids the subject does not own.
	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().GetTransaction(gomock.Any(), txID, stranger).Return(nil, transaction.ErrNotFound)
	repo.EXPECT().DeleteTransaction(gomock.Any(), txID, stranger).Return(transaction.ErrNotFound)
	repo.EXPECT().UpdateCategory(gomock.Any(), txID, stranger, gomock.Nil()).Return(transaction.ErrNotFound)
	repo.EXPECT().GetTransaction(gomock.Any(), txID, owner).
		Return(&transaction.Transaction{ID: txID, BankAccountID: uuid.New()}, nil)

	router := newRouter(repo)

	t.Run("GetForeignIsNotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/"+txID.String(), nil)
		req.Header.Set("Authorization", bearerFor(t, stranger))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DeleteForeignIsNotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/transactions/"+txID.String(), nil)
		req.Header.Set("Authorization", bearerFor(t, stranger))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("RecategorizeForeignIsNotFound", func(t *testing.T) {
		body := strings.NewReader(`{"category_id": null}`)
		req := httptest.NewRequest(http.MethodPatch, "/transactions/"+txID.String()+"/category", body)
		req.Header.Set("Authorization", bearerFor(t, stranger))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GetOwnSucceeds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/"+txID.String(), nil)
		req.Header.Set("Authorization", bearerFor(t, owner))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_ListUsesTokenSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Equal(t, userID, filter.UserID)
			return nil, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/transactions/", nil)
	req.Header.Set("Authorization", bearerFor(t, userID))

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
