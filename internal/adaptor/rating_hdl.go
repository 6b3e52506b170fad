package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"store-ratings/internal/dto/request"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// Submit handles POST /api/ratings/submit (normal_user)
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitRatingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit rating")
		return
	}

	utils.ResponseCreated(w, "Rating submitted successfully", rating)
}

// GetUserRating handles GET /api/ratings/user/{store_id} (normal_user)
func (h *RatingHandler) GetUserRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(chi.URLParam(r, "store_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid store ID", nil)
		return
	}

	rating, err := h.service.GetUserRating(r.Context(), userID, storeID)
	if err != nil {
		h.handleServiceError(w, err, "get user rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// GetStoreRatings handles GET /api/ratings/store/{store_id} (store_owner,
// must own the store)
func (h *RatingHandler) GetStoreRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(chi.URLParam(r, "store_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid store ID", nil)
		return
	}

	ratings, err := h.service.GetStoreRatings(r.Context(), userID, storeID)
	if err != nil {
		h.handleServiceError(w, err, "get store ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

// ListAll handles GET /api/ratings/admin/all (admin)
func (h *RatingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list all ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

func (h *RatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrStoreNotFound),
		errors.Is(err, usecase.ErrRatingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrNotStoreOwner):
		h.log.Warn(operation+" failed - not owner", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
