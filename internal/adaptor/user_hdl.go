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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Create handles POST /api/users (admin)
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// List handles GET /api/users/all (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListUsersQuery{
		Name:    query.Get("name"),
		Email:   query.Get("email"),
		Address: query.Get("address"),
		Role:    query.Get("role"),
		SortBy:  query.Get("sortBy"),
		Order:   query.Get("order"),
	}

	users, err := h.service.List(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetByID handles GET /api/users/{id} (admin)
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Dashboard handles GET /api/users/dashboard (admin)
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// Delete handles DELETE /api/users/{id} (admin)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken):
		h.log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
