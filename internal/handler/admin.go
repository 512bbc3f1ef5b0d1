package handler

import (
	"net/http"

	"github.com/dapplicaio/FarmGame/internal/blend"
	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/swap"
)

// AddRecipeRequest registers a new blend recipe.
type AddRecipeRequest struct {
	Components     []int32 `json:"components" validate:"required,min=1"`
	OutputTemplate int32   `json:"output_template" validate:"required"`
}

// AddRecipeResponse returns the assigned recipe id.
type AddRecipeResponse struct {
	Message string `json:"message"`
	BlendID int64  `json:"blend_id"`
}

// SetRatioRequest sets the swap ratio for a resource.
type SetRatioRequest struct {
	Resource string  `json:"resource" validate:"required"`
	Ratio    float64 `json:"ratio" validate:"required,gt=0"`
}

// HandleAddRecipe registers a blend recipe
func HandleAddRecipe(svc blend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add recipe"); err != nil {
			return
		}

		blendID, err := svc.AddRecipe(r.Context(), req.Components, req.OutputTemplate)
		if err != nil {
			respondServiceError(w, r, "add recipe", err)
			return
		}

		log.Info("Recipe added", "blend_id", blendID)
		respondJSON(w, http.StatusCreated, AddRecipeResponse{Message: MsgRecipeAdded, BlendID: blendID})
	}
}

// HandleSetRatio sets the swap ratio for a resource
func HandleSetRatio(svc swap.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetRatioRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set ratio"); err != nil {
			return
		}

		if err := svc.SetRatio(r.Context(), req.Resource, req.Ratio); err != nil {
			respondServiceError(w, r, "set ratio", err)
			return
		}

		log.Info("Swap ratio set", "resource", req.Resource, "ratio", req.Ratio)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRatioSet})
	}
}
