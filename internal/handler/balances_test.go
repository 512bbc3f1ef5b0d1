package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) Credit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error {
	args := m.Called(ctx, tx, owner, resource, amount)
	return args.Error(0)
}

func (m *mockLedgerService) CreditAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error {
	args := m.Called(ctx, tx, owner, amounts)
	return args.Error(0)
}

func (m *mockLedgerService) Debit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error {
	args := m.Called(ctx, tx, owner, resource, amount)
	return args.Error(0)
}

func (m *mockLedgerService) DebitAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error {
	args := m.Called(ctx, tx, owner, amounts)
	return args.Error(0)
}

func (m *mockLedgerService) Balances(ctx context.Context, owner string) ([]domain.ResourceBalance, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceBalance), args.Error(1)
}

func TestHandleGetBalances(t *testing.T) {
	t.Run("lists the owner's balances", func(t *testing.T) {
		svc := &mockLedgerService{}
		svc.On("Balances", mock.Anything, "alice").Return([]domain.ResourceBalance{
			{Owner: "alice", Resource: "wood", Amount: 12.5},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/?owner=alice", nil)
		rr := httptest.NewRecorder()
		HandleGetBalances(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp BalancesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Balances, 1)
		assert.Equal(t, "wood", resp.Balances[0].Resource)
	})

	t.Run("returns an empty list for an unknown owner", func(t *testing.T) {
		svc := &mockLedgerService{}
		svc.On("Balances", mock.Anything, "bob").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/?owner=bob", nil)
		rr := httptest.NewRecorder()
		HandleGetBalances(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp BalancesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Balances)
		assert.Empty(t, resp.Balances)
	})

	t.Run("requires the owner parameter", func(t *testing.T) {
		svc := &mockLedgerService{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		HandleGetBalances(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Balances", mock.Anything, mock.Anything)
	})
}
