package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

type mockStakingService struct {
	mock.Mock
}

func (m *mockStakingService) StakeFarmingItem(ctx context.Context, owner string, assetID uint64) error {
	args := m.Called(ctx, owner, assetID)
	return args.Error(0)
}

func (m *mockStakingService) StakeItems(ctx context.Context, owner string, farmingItemID uint64, itemIDs []uint64) error {
	args := m.Called(ctx, owner, farmingItemID, itemIDs)
	return args.Error(0)
}

func (m *mockStakingService) Claim(ctx context.Context, owner string, farmingItemID uint64) (map[string]float64, error) {
	args := m.Called(ctx, owner, farmingItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandleClaim(t *testing.T) {
	t.Run("returns the claimed amounts", func(t *testing.T) {
		svc := &mockStakingService{}
		svc.On("Claim", mock.Anything, "alice", uint64(10)).
			Return(map[string]float64{"wood": 42.5}, nil)

		rr := postJSON(t, HandleClaim(svc), ClaimRequest{Owner: "alice", FarmingItemID: 10})

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ClaimResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.InDelta(t, 42.5, resp.Claimed["wood"], 1e-9)
		svc.AssertExpectations(t)
	})

	t.Run("maps nothing-to-claim to a bad request", func(t *testing.T) {
		svc := &mockStakingService{}
		svc.On("Claim", mock.Anything, "alice", uint64(10)).
			Return(nil, domain.ErrNothingToClaim)

		rr := postJSON(t, HandleClaim(svc), ClaimRequest{Owner: "alice", FarmingItemID: 10})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgNothingToClaim, resp.Error)
	})

	t.Run("rejects a missing owner", func(t *testing.T) {
		svc := &mockStakingService{}
		rr := postJSON(t, HandleClaim(svc), ClaimRequest{FarmingItemID: 10})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects an uppercase owner name", func(t *testing.T) {
		svc := &mockStakingService{}
		rr := postJSON(t, HandleClaim(svc), ClaimRequest{Owner: "Alice", FarmingItemID: 10})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
