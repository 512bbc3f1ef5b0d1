package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

type mockSwapService struct {
	mock.Mock
}

func (m *mockSwapService) SetRatio(ctx context.Context, resource string, ratio float64) error {
	args := m.Called(ctx, resource, ratio)
	return args.Error(0)
}

func (m *mockSwapService) Swap(ctx context.Context, owner, resource string, amount float64) (domain.TokenAmount, error) {
	args := m.Called(ctx, owner, resource, amount)
	return args.Get(0).(domain.TokenAmount), args.Error(1)
}

func TestHandleSwap(t *testing.T) {
	t.Run("returns the payout", func(t *testing.T) {
		svc := &mockSwapService{}
		svc.On("Swap", mock.Anything, "alice", "wood", 100.0).
			Return(domain.TokenAmount{Amount: 40000, Symbol: "GAME", Precision: 4}, nil)

		rr := postJSON(t, HandleSwap(svc), SwapRequest{Owner: "alice", Resource: "wood", Amount: 100})

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp SwapResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "4.0000 GAME", resp.Payout)
		svc.AssertExpectations(t)
	})

	t.Run("maps an overdraw to a bad request", func(t *testing.T) {
		svc := &mockSwapService{}
		svc.On("Swap", mock.Anything, "alice", "wood", 100.0).
			Return(domain.TokenAmount{}, domain.ErrOverdrawn)

		rr := postJSON(t, HandleSwap(svc), SwapRequest{Owner: "alice", Resource: "wood", Amount: 100})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgOverdrawn, resp.Error)
	})

	t.Run("rejects a non-positive amount before the service", func(t *testing.T) {
		svc := &mockSwapService{}
		rr := postJSON(t, HandleSwap(svc), SwapRequest{Owner: "alice", Resource: "wood", Amount: 0})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Swap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleSetRatio(t *testing.T) {
	t.Run("sets the ratio", func(t *testing.T) {
		svc := &mockSwapService{}
		svc.On("SetRatio", mock.Anything, "wood", 25.0).Return(nil)

		rr := postJSON(t, HandleSetRatio(svc), SetRatioRequest{Resource: "wood", Ratio: 25})

		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("rejects a missing resource", func(t *testing.T) {
		svc := &mockSwapService{}
		rr := postJSON(t, HandleSetRatio(svc), SetRatioRequest{Ratio: 25})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "SetRatio", mock.Anything, mock.Anything, mock.Anything)
	})
}
