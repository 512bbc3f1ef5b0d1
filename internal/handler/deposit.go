package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/staking"
)

// DepositRequest mirrors an incoming asset transfer notification.
type DepositRequest struct {
	From     string   `json:"from" validate:"required,account"`
	AssetIDs []uint64 `json:"asset_ids" validate:"required,min=1"`
	Memo     string   `json:"memo" validate:"required"`
}

// HandleDeposit routes a deposit notification by its memo
func HandleDeposit(router *staking.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
			return
		}

		if err := router.ReceiveDeposit(r.Context(), req.From, req.AssetIDs, req.Memo); err != nil {
			respondServiceError(w, r, "process deposit", err)
			return
		}

		log.Info("Deposit processed", "from", req.From, "assets", len(req.AssetIDs))
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDepositAccepted})
	}
}
