package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/ledger"
)

// BalancesResponse lists an owner's resource balances.
type BalancesResponse struct {
	Owner    string                   `json:"owner"`
	Balances []domain.ResourceBalance `json:"balances"`
}

// HandleGetBalances lists the owner's resource balances
func HandleGetBalances(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := GetQueryParam(r, w, "owner")
		if !ok {
			return
		}

		balances, err := svc.Balances(r.Context(), owner)
		if err != nil {
			respondServiceError(w, r, "get balances", err)
			return
		}
		if balances == nil {
			balances = []domain.ResourceBalance{}
		}

		respondJSON(w, http.StatusOK, BalancesResponse{Owner: owner, Balances: balances})
	}
}
