package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/progression"
)

// UpgradeItemRequest asks to raise a staked producing item to a higher level.
type UpgradeItemRequest struct {
	Owner         string `json:"owner" validate:"required,account"`
	AssetID       uint64 `json:"asset_id" validate:"required"`
	NextLevel     uint8  `json:"next_level" validate:"required,gt=1"`
	FarmingItemID uint64 `json:"farming_item_id" validate:"required"`
}

// UpgradeFarmingItemRequest asks to grow a farming item by one slot.
type UpgradeFarmingItemRequest struct {
	Owner   string `json:"owner" validate:"required,account"`
	AssetID uint64 `json:"asset_id" validate:"required"`
	Staked  bool   `json:"staked"`
}

// HandleUpgradeItem raises a staked item's level
func HandleUpgradeItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade item"); err != nil {
			return
		}

		if err := svc.UpgradeItem(r.Context(), req.Owner, req.AssetID, req.NextLevel, req.FarmingItemID); err != nil {
			respondServiceError(w, r, "upgrade item", err)
			return
		}

		log.Info("Item upgrade started", "owner", req.Owner, "asset_id", req.AssetID, "next_level", req.NextLevel)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUpgradeStarted})
	}
}

// HandleUpgradeFarmingItem grows a farming item's slot capacity
func HandleUpgradeFarmingItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeFarmingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade farming item"); err != nil {
			return
		}

		if err := svc.UpgradeFarmingItem(r.Context(), req.Owner, req.AssetID, req.Staked); err != nil {
			respondServiceError(w, r, "grow slots", err)
			return
		}

		log.Info("Farming item slots grown", "owner", req.Owner, "asset_id", req.AssetID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSlotsGrown})
	}
}
