package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// Create handles POST /api/stores (admin)
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created successfully", store)
}

// ListAdmin handles GET /api/stores/admin/all (admin)
func (h *StoreHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListStoresQuery{
		Name:    query.Get("name"),
		Email:   query.Get("email"),
		Address: query.Get("address"),
		SortBy:  query.Get("sortBy"),
		Order:   query.Get("order"),
	}

	stores, err := h.service.ListAdmin(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "success", stores)
}

// ListForUser handles GET /api/stores/user/list (normal_user, store_owner)
func (h *StoreHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	query := r.URL.Query()
	req := &request.UserStoresQuery{
		Search:    query.Get("search"),
		OwnerOnly: query.Get("owner") == "true",
		SortBy:    query.Get("sortBy"),
		Order:     query.Get("order"),
	}

	stores, err := h.service.ListForUser(r.Context(), userID, entity.UserRole(role), req)
	if err != nil {
		h.handleServiceError(w, err, "list stores for user")
		return
	}

	utils.ResponseSuccess(w, "success", stores)
}

// GetByID handles GET /api/stores/{id} (any authenticated user)
func (h *StoreHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid store ID", nil)
		return
	}

	store, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "success", store)
}

// Delete handles DELETE /api/stores/{id} (admin)
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid store ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete store")
		return
	}

	utils.ResponseSuccess(w, "Store deleted successfully", nil)
}

func (h *StoreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrStoreEmailTaken),
		errors.Is(err, usecase.ErrInvalidOwner):
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrStoreNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
