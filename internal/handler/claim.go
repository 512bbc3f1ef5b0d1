package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/staking"
)

// ClaimRequest asks to settle accrual for one staked farming item.
type ClaimRequest struct {
	Owner         string `json:"owner" validate:"required,account"`
	FarmingItemID uint64 `json:"farming_item_id" validate:"required"`
}

// ClaimResponse reports the credited amounts by resource.
type ClaimResponse struct {
	Claimed map[string]float64 `json:"claimed"`
}

// HandleClaim settles accrual for a staked farming item
func HandleClaim(svc staking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim"); err != nil {
			return
		}

		claimed, err := svc.Claim(r.Context(), req.Owner, req.FarmingItemID)
		if err != nil {
			respondServiceError(w, r, "claim rewards", err)
			return
		}

		log.Info("Rewards claimed", "owner", req.Owner, "farming_item", req.FarmingItemID)
		respondJSON(w, http.StatusOK, ClaimResponse{Claimed: claimed})
	}
}
