package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/swap"
)

// SwapRequest asks to convert a resource balance into the game currency.
type SwapRequest struct {
	Owner    string  `json:"owner" validate:"required,account"`
	Resource string  `json:"resource" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// SwapResponse reports the paid out token quantity.
type SwapResponse struct {
	Payout string `json:"payout"`
}

// HandleSwap converts resources into a currency payout
func HandleSwap(svc swap.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SwapRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Swap"); err != nil {
			return
		}

		quantity, err := svc.Swap(r.Context(), req.Owner, req.Resource, req.Amount)
		if err != nil {
			respondServiceError(w, r, "swap resources", err)
			return
		}

		log.Info("Swap completed", "owner", req.Owner, "resource", req.Resource, "payout", quantity.String())
		respondJSON(w, http.StatusOK, SwapResponse{Payout: quantity.String()})
	}
}
