package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/report"
)

func TestService_CashFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		MonthlyTotals(gomock.Any(), userID, 2026).
		Return([]report.MonthlyTotal{
			{Month: time.February, Income: 150000, Expenses: 4250},
			{Month: time.July, Income: 0, Expenses: 990},
		}, nil)

	svc := report.NewService(repo)

	flow, err := svc.CashFlow(context.Background(), userID, 2026)
	require.NoError(t, err)
	require.Len(t, flow, 12)

	// Every month is present in order, quiet months zero-filled.
	assert.Equal(t, time.January, flow[0].Month)
	assert.Zero(t, flow[0].Income)
	assert.Equal(t, int64(150000), flow[1].Income)
	assert.Equal(t, int64(4250), flow[1].Expenses)
	assert.Equal(t, int64(990), flow[6].Expenses)
	assert.Equal(t, time.December, flow[11].Month)
}

func TestService_CashFlow_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		MonthlyTotals(gomock.Any(), userID, 2026).
		Return(nil, errors.New("db error"))

	svc := report.NewService(repo)

	_, err := svc.CashFlow(context.Background(), userID, 2026)
	assert.Error(t, err)
}

func TestService_CategoryBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	groceriesID := uuid.New()
	totals := []report.CategoryTotal{
		{CategoryID: &groceriesID, CategoryName: "Groceries", Total: 4250},
		{CategoryID: nil, CategoryName: "Uncategorized", Total: 990},
	}

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().CategoryTotals(gomock.Any(), userID, from, to).Return(totals, nil)

	svc := report.NewService(repo)

	got, err := svc.CategoryBreakdown(context.Background(), userID, from, to)
	require.NoError(t, err)
	assert.Equal(t, totals, got)
}
